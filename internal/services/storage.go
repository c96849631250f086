package services

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Storage abstracts where uploaded resumes and logos live. UploadFile
// returns a URL the stored row keeps; DeleteFile takes that same URL
// back, so replacement is write-new-then-delete-old and a failed write
// never loses the previous file.
type Storage interface {
	UploadFile(ctx context.Context, file []byte, filename string, acl types.ObjectCannedACL, contentType string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	GetSignedURL(ctx context.Context, path string, duration time.Duration) (string, error)
}

var (
	storage   Storage
	storageMu sync.RWMutex
)

// RegisterStorage sets the active storage backend.
func RegisterStorage(s Storage) {
	storageMu.Lock()
	defer storageMu.Unlock()
	storage = s
}

// GetStorage returns the registered storage backend.
func GetStorage() Storage {
	storageMu.RLock()
	defer storageMu.RUnlock()
	return storage
}
