package usecase

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"prison-jobs/internal/infrastructure/storage"
	"prison-jobs/internal/metrics"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileNotFound        = errors.New("file not found")
)

const uploadsURLPrefix = "/api/v1/uploads/"

var allowedCVExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (int64, error)
	Open(name string) (afero.File, fs.FileInfo, error)
	Delete(name string) error
}

type UploadedFile struct {
	FileID       string
	FileName     string
	FileURL      string
	OriginalName string
	Size         int64
}

type UploadUsecase interface {
	UploadCV(ctx context.Context, originalName string, size int64, r io.Reader) (UploadedFile, error)
	Open(name string) (afero.File, fs.FileInfo, error)
}

type Upload struct {
	store    FileStore
	maxBytes int64
	logger   *zap.Logger
}

func NewUploadUsecase(store FileStore, maxBytes int64, logger *zap.Logger) *Upload {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Upload{store: store, maxBytes: maxBytes, logger: logger}
}

// UploadCV stores r as cv_<uuid><ext>. size is the declared size and may be
// unknown (<= 0); the stream is cut off at the limit either way.
func (u *Upload) UploadCV(ctx context.Context, originalName string, size int64, r io.Reader) (UploadedFile, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(originalName)))
	if _, ok := allowedCVExtensions[ext]; !ok {
		metrics.CVUploads.WithLabelValues("rejected").Inc()
		return UploadedFile{}, ErrUnsupportedFileType
	}
	if u.maxBytes > 0 && size > u.maxBytes {
		metrics.CVUploads.WithLabelValues("rejected").Inc()
		return UploadedFile{}, ErrFileTooLarge
	}

	id := uuid.New().String()
	name := "cv_" + id + ext

	src := r
	if u.maxBytes > 0 {
		src = io.LimitReader(r, u.maxBytes+1)
	}
	n, err := u.store.Save(ctx, name, src)
	if err != nil {
		metrics.CVUploads.WithLabelValues("error").Inc()
		u.logger.Error("cv store failed", zap.String("name", name), zap.Error(err))
		return UploadedFile{}, ErrInternal
	}
	if u.maxBytes > 0 && n > u.maxBytes {
		if err := u.store.Delete(name); err != nil {
			u.logger.Warn("oversized cv cleanup failed", zap.String("name", name), zap.Error(err))
		}
		metrics.CVUploads.WithLabelValues("rejected").Inc()
		return UploadedFile{}, ErrFileTooLarge
	}

	metrics.CVUploads.WithLabelValues("stored").Inc()
	return UploadedFile{
		FileID:       id,
		FileName:     name,
		FileURL:      uploadsURLPrefix + name,
		OriginalName: filepath.Base(originalName),
		Size:         n,
	}, nil
}

func (u *Upload) Open(name string) (afero.File, fs.FileInfo, error) {
	f, info, err := u.store.Open(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, ErrInternal
	}
	return f, info, nil
}
