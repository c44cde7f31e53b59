package imagestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const thumbnailWidth = 400

// LocalStore keeps gallery files on the local disk under the directory
// served at /uploads, with a resized thumbnail variant next to each file.
type LocalStore struct {
	baseDir string
	folder  string
}

// NewLocalStore creates a disk-backed image store
func NewLocalStore(cfg *Config) (*LocalStore, error) {
	st := &LocalStore{
		baseDir: cfg.LocalDir,
		folder:  "gallery",
	}
	if err := os.MkdirAll(filepath.Join(st.baseDir, st.folder, "thumbs"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return st, nil
}

// Upload writes the file to disk and returns its public /uploads path
func (l *LocalStore) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext
	fullPath := filepath.Join(l.baseDir, l.folder, name)

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", fullPath, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write %s: %w", fullPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(fullPath)
		return "", err
	}

	// Thumbnail generation is best-effort; the original is what counts
	if err := l.writeThumbnail(fullPath, name); err != nil {
		log.Warnf("[ImageStore] Thumbnail for %s failed: %v", name, err)
	}

	return "/uploads/" + l.folder + "/" + name, nil
}

// Delete removes the backing file and its thumbnail for a local /uploads path
func (l *LocalStore) Delete(_ context.Context, imagePath string) error {
	rel := strings.TrimPrefix(imagePath, "/uploads/")
	if rel == imagePath {
		// Not a locally hosted file (external URL from an earlier setup)
		return nil
	}

	fullPath := filepath.Join(l.baseDir, filepath.FromSlash(rel))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", fullPath, err)
	}

	thumbPath := filepath.Join(filepath.Dir(fullPath), "thumbs", filepath.Base(fullPath))
	if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
		log.Warnf("[ImageStore] Could not delete thumbnail %s: %v", thumbPath, err)
	}

	return nil
}

func (l *LocalStore) writeThumbnail(fullPath, name string) error {
	img, err := imaging.Open(fullPath)
	if err != nil {
		return err
	}
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	return imaging.Save(thumb, filepath.Join(l.baseDir, l.folder, "thumbs", name))
}
