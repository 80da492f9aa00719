package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/gen/ent"
	entphoto "github.com/sahlen/vinkallaren/gen/ent/labelphoto"
)

type LabelPhotoRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.LabelPhoto, error)
	GetByHash(ctx context.Context, hash string) (*ent.LabelPhoto, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash string, uploadedAt time.Time) (*ent.LabelPhoto, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash string, uploadedAt time.Time) (*ent.LabelPhoto, bool, error)
}

type labelPhotoRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewLabelPhotoRepository(entc *ent.Client, logger *slog.Logger) LabelPhotoRepository {
	return &labelPhotoRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *labelPhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.LabelPhoto, error) {
	return r.ent.LabelPhoto.Get(ctx, id)
}

func (r *labelPhotoRepo) GetByHash(ctx context.Context, hash string) (*ent.LabelPhoto, error) {
	row, err := r.ent.LabelPhoto.Query().
		Where(entphoto.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *labelPhotoRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash string, uploadedAt time.Time) (*ent.LabelPhoto, error) {
	row, err := r.ent.LabelPhoto.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create label photo", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing photo when the content hash is
// already registered, so re-ingesting a directory never duplicates rows.
func (r *labelPhotoRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash string, uploadedAt time.Time) (*ent.LabelPhoto, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert label photo by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
