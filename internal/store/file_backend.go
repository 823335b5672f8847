package store

import (
	"errors"
	"os"
	"path/filepath"
)

// FileBackend keeps each key in its own file under a data directory.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Error("Failed to create data dir: ", err)
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (f *FileBackend) Save(key string, value []byte) error {
	return os.WriteFile(f.path(key), value, 0o600)
}

func (f *FileBackend) Delete(key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
