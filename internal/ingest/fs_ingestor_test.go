package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlen/vinkallaren/gen/ent"
)

type memPhotoRepo struct {
	byHash map[string]*ent.LabelPhoto
}

func newMemPhotoRepo() *memPhotoRepo {
	return &memPhotoRepo{byHash: make(map[string]*ent.LabelPhoto)}
}

func (m *memPhotoRepo) GetByID(context.Context, uuid.UUID) (*ent.LabelPhoto, error) {
	return nil, errors.New("not implemented")
}

func (m *memPhotoRepo) GetByHash(_ context.Context, hash string) (*ent.LabelPhoto, error) {
	if row, ok := m.byHash[hash]; ok {
		return row, nil
	}
	return nil, errors.New("not found")
}

func (m *memPhotoRepo) Create(_ context.Context, sourcePath, filename, ext string, size int, hash string, uploadedAt time.Time) (*ent.LabelPhoto, error) {
	row := &ent.LabelPhoto{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		ContentHash: hash,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		UploadedAt:  uploadedAt,
	}
	m.byHash[hash] = row
	return row, nil
}

func (m *memPhotoRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash string, uploadedAt time.Time) (*ent.LabelPhoto, bool, error) {
	if row, ok := m.byHash[hash]; ok {
		return row, true, nil
	}
	row, err := m.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	return row, false, err
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestIngestPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "etikett.jpg", []byte("jpeg-bytes"))
	ing := NewFSIngestor(newMemPhotoRepo(), nil)

	res, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, res.SourcePath)
	assert.NotEmpty(t, res.PhotoID)
	assert.Len(t, res.HashHex, 64)
	assert.Equal(t, "jpg", res.FileExt)
	assert.False(t, res.Deduplicated)
}

func TestIngestPath_DeduplicatesByContent(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.jpg", []byte("same-bytes"))
	second := writeFile(t, dir, "b.jpg", []byte("same-bytes"))
	ing := NewFSIngestor(newMemPhotoRepo(), nil)

	r1, err := ing.IngestPath(context.Background(), first)
	require.NoError(t, err)
	r2, err := ing.IngestPath(context.Background(), second)
	require.NoError(t, err)

	assert.False(t, r1.Deduplicated)
	assert.True(t, r2.Deduplicated)
	assert.Equal(t, r1.PhotoID, r2.PhotoID)
}

func TestIngestPath_RejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", []byte("not a photo"))
	ing := NewFSIngestor(newMemPhotoRepo(), nil)

	_, err := ing.IngestPath(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported or missing extension")
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.jpg", []byte("one"))
	writeFile(t, dir, "two.png", []byte("two"))
	writeFile(t, dir, "skip.txt", []byte("skip"))
	writeFile(t, dir, ".hidden.jpg", []byte("hidden"))
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "three.jpeg", []byte("three"))

	ing := NewFSIngestor(newMemPhotoRepo(), nil)
	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(3), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 3)
}

func TestIngestDirectory_EmptyRoot(t *testing.T) {
	ing := NewFSIngestor(newMemPhotoRepo(), nil)
	_, _, err := ing.IngestDirectory(context.Background(), "  ", false)
	assert.Error(t, err)
}
