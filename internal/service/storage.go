package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoredFile is what the upload endpoint hands back to the form: the public
// URL, the original file name and the storage key.
type StoredFile struct {
	URL  string
	Name string
	Key  string
}

// FileStorage persists uploaded receipt files.
type FileStorage interface {
	Save(fileName string, data []byte) (StoredFile, error)
}

// DiskStorage stores receipts on the local filesystem under a directory
// served as static content.
type DiskStorage struct {
	dir       string
	publicURL string
	logger    *zap.Logger
}

func NewDiskStorage(dir, publicURL string, logger *zap.Logger) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &DiskStorage{
		dir:       dir,
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

func (s *DiskStorage) Save(fileName string, data []byte) (StoredFile, error) {
	key := uuid.New().String()
	storedName := key + filepath.Ext(fileName)
	path := filepath.Join(s.dir, storedName)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return StoredFile{}, fmt.Errorf("write file: %w", err)
	}

	s.logger.Debug("Stored receipt file",
		zap.String("file_name", fileName),
		zap.String("path", path),
	)

	return StoredFile{
		URL:  s.publicURL + "/" + storedName,
		Name: fileName,
		Key:  key,
	}, nil
}
