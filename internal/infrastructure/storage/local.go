package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	ErrInvalidName = errors.New("invalid file name")
	ErrNotFound    = errors.New("file not found")
)

// FileStore keeps uploaded files in a flat directory.
type FileStore struct {
	fs     afero.Fs
	logger *zap.Logger
}

// NewLocal creates dir if needed and confines all access to it.
func NewLocal(dir string, logger *zap.Logger) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("empty upload dir")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), abs), logger), nil
}

func New(fsys afero.Fs, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{fs: fsys, logger: logger}
}

// ValidName reports whether name is a plain file name without directory parts.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}

// Save writes r to a new file. It fails when name already exists.
func (s *FileStore) Save(ctx context.Context, name string, r io.Reader) (int64, error) {
	if !ValidName(name) {
		return 0, ErrInvalidName
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(name)
		return 0, err
	}

	s.logger.Info("file stored", zap.String("name", name), zap.Int64("bytes", n))
	return n, nil
}

// Open returns the named file for reading. The caller closes it.
func (s *FileStore) Open(name string) (afero.File, fs.FileInfo, error) {
	if !ValidName(name) {
		return nil, nil, ErrInvalidName
	}
	info, err := s.fs.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, ErrNotFound
	}
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, info, nil
}

func (s *FileStore) Delete(name string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}
	if err := s.fs.Remove(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
