package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	appconfig "jobboard/internal/config"
	"jobboard/internal/utils/logger"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

var _ Storage = (*LocalService)(nil)

// LocalService stores uploads on the local disk and serves them under
// the public URL's /uploads prefix. Default backend for development
// and tests.
type LocalService struct {
	basePath  string
	publicURL string
	logger    *logger.Logger
}

func NewLocalService(cfg appconfig.StorageConfig, publicURL string) (*LocalService, error) {
	log := logger.New("local_storage")

	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, log.Error("Failed to create storage directory ❌", err)
	}

	log.Success("Local storage initialized at %s ✅", cfg.BasePath)

	return &LocalService{
		basePath:  cfg.BasePath,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		logger:    log,
	}, nil
}

func (s *LocalService) UploadFile(ctx context.Context, file []byte, filename string, acl types.ObjectCannedACL, contentType string) (string, error) {
	_ = acl

	ext := filepath.Ext(filename)
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	if err := os.WriteFile(filepath.Join(s.basePath, name), file, 0o644); err != nil {
		return "", s.logger.Error("Failed to write file to disk ❌", err)
	}

	url := fmt.Sprintf("%s/uploads/%s", s.publicURL, name)
	s.logger.Success("✅ File stored: %s", url)
	return url, nil
}

func (s *LocalService) DeleteFile(ctx context.Context, fileURL string) error {
	idx := strings.LastIndex(fileURL, "/")
	if idx < 0 || idx == len(fileURL)-1 {
		return fmt.Errorf("malformed file URL: %s", fileURL)
	}
	name := fileURL[idx+1:]

	if err := os.Remove(filepath.Join(s.basePath, name)); err != nil && !os.IsNotExist(err) {
		return s.logger.Error("Failed to delete file from disk ❌", err)
	}
	return nil
}

// GetSignedURL on local storage just returns the public URL; there is
// nothing to sign.
func (s *LocalService) GetSignedURL(ctx context.Context, path string, duration time.Duration) (string, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path, nil
	}
	return fmt.Sprintf("%s/uploads/%s", s.publicURL, path), nil
}
