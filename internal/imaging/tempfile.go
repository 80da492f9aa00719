package imaging

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTempMaxAge is how long cropped label files survive before the
// sweep removes them.
const DefaultTempMaxAge = 24 * time.Hour

// TempStore writes cropped label images into a cache directory and
// removes stale ones. Files are named by creation timestamp so repeated
// scans never collide.
type TempStore struct {
	dir    string
	maxAge time.Duration
	logger *slog.Logger
}

// NewTempStore creates the cache directory if needed. A zero maxAge
// falls back to DefaultTempMaxAge.
func NewTempStore(dir string, maxAge time.Duration, logger *slog.Logger) (*TempStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if maxAge <= 0 {
		maxAge = DefaultTempMaxAge
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &TempStore{dir: dir, maxAge: maxAge, logger: logger}, nil
}

// Dir returns the cache directory path.
func (s *TempStore) Dir() string {
	return s.dir
}

// SaveJPEG encodes img and writes it under the cache directory,
// returning the full path of the new file.
func (s *TempStore) SaveJPEG(img image.Image) (string, error) {
	data, err := EncodeJPEG(img)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s%d%s", tempFilePrefix, time.Now().UnixNano(), tempFileSuffix)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write cropped image: %w", err)
	}
	return path, nil
}

// Sweep removes cropped files older than the store's max age. Removal
// failures are logged and skipped; the count of deleted files is
// returned.
func (s *TempStore) Sweep() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("temp sweep: read cache dir", "dir", s.dir, "error", err)
		return 0
	}

	cutoff := time.Now().Add(-s.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), tempFilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.logger.Warn("temp sweep: remove", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("temp sweep finished", "dir", s.dir, "removed", removed)
	}
	return removed
}
