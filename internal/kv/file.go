package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

const (
	fileStoreName = "store.json"
	fileLockName  = "store.lock"
)

// File is a Store that keeps every key in one JSON object on disk.
// Writes take an exclusive lock and replace the file atomically, so
// concurrent processes never observe a partial write.
type File struct {
	dir string
}

// NewFile returns a file store rooted at dir. The directory is created on
// first write.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Path returns the path to the store file.
func (f *File) Path() string {
	return filepath.Join(f.dir, fileStoreName)
}

func (f *File) lockPath() string {
	return filepath.Join(f.dir, fileLockName)
}

// Get returns the value stored under key.
func (f *File) Get(ctx context.Context, key string) ([]byte, bool, error) {
	values, err := f.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := values[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Set stores value under key.
func (f *File) Set(ctx context.Context, key string, value []byte) error {
	return f.update(func(values map[string]string) bool {
		values[key] = string(value)
		return true
	})
}

// Remove deletes key.
func (f *File) Remove(ctx context.Context, key string) error {
	return f.update(func(values map[string]string) bool {
		if _, ok := values[key]; !ok {
			return false
		}
		delete(values, key)
		return true
	})
}

// Close is a no-op; the file store holds no open handles between calls.
func (f *File) Close() error {
	return nil
}

// load reads the store file. A missing file is an empty store.
func (f *File) load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path())
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return make(map[string]string), nil
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.Path(), err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

// save writes values atomically via a temp file.
func (f *File) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmpFile, err := os.CreateTemp(f.dir, fileStoreName+".tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp store file: %w", err)
	}

	if err := os.Rename(name, f.Path()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename store file: %w", err)
	}
	return nil
}

// update reads, modifies and writes the store while holding the lock.
// fn reports whether it changed anything; unchanged stores are not rewritten.
func (f *File) update(fn func(values map[string]string) bool) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	lockFile, err := os.OpenFile(f.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	values, err := f.load()
	if err != nil {
		return err
	}
	if !fn(values) {
		return nil
	}
	return f.save(values)
}
