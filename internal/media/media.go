package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Allowed upload extensions. Everything else is rejected before touching
// the disk.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
	".mp4":  true,
	".webm": true,
}

var (
	ErrUnsupportedType = errors.New("media: unsupported file type")
	ErrInvalidSubdir   = errors.New("media: invalid target directory")
)

// cleanSubdir normalizes the caller-supplied subdirectory and rejects
// anything that would resolve outside the media root.
func cleanSubdir(subdir string) (string, error) {
	cleaned := path.Clean(filepath.ToSlash(subdir))
	if cleaned == "" || cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, "../") || strings.HasPrefix(cleaned, "/") {
		return "", ErrInvalidSubdir
	}
	return cleaned, nil
}

// Store saves uploaded files under a local root and hands out the relative
// paths the database keeps.
type Store struct {
	root      string
	urlPrefix string
}

// NewStore ensures the root directory exists.
func NewStore(root, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("media: create root %s: %w", root, err)
	}
	return &Store{root: root, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Save writes the uploaded file into subdir under a random name, keeping only
// the original extension. It returns the path relative to the media root,
// which is what gets stored on the owning row.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader, subdir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}
	subdir, err := cleanSubdir(subdir)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, filepath.FromSlash(subdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("media: create dir %s: %w", dir, err)
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("media: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("media: write file: %w", err)
	}
	return path.Join(subdir, name), nil
}

// Remove deletes a previously saved file. A missing file is not an error;
// the row is the source of truth and the file may already be gone.
func (s *Store) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	full := filepath.Join(s.root, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("media: remove %s: %w", relPath, err)
	}
	return nil
}

// URL maps a stored relative path to its public URL.
func (s *Store) URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	return s.urlPrefix + "/" + strings.TrimPrefix(relPath, "/")
}

// Handler serves the media root with directory listings disabled.
func (s *Store) Handler() http.Handler {
	fs := http.FileServer(http.Dir(s.root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}
