// Package filex has file-system helpers for the client's data directory.
package filex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) when missing and returns its absolute
// path. Relative paths are resolved against the working directory.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// ErrTooLarge is returned for attachments above the configured size.
var ErrTooLarge = errors.New("attachment too large")

// ReadAttachment loads a user-supplied file of at most maxSize bytes and
// returns its base name and content. The content is not inspected.
func ReadAttachment(path string, maxSize int64) (name string, data []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("read attachment: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", nil, fmt.Errorf("read attachment: %w", err)
	}
	if !fi.Mode().IsRegular() {
		return "", nil, fmt.Errorf("read attachment: %s is not a regular file", path)
	}
	if fi.Size() > maxSize {
		return "", nil, fmt.Errorf("%s is %d bytes, limit %d: %w", filepath.Base(path), fi.Size(), maxSize, ErrTooLarge)
	}

	// The file may grow between Stat and the read.
	data, err = io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("read attachment: %w", err)
	}
	if int64(len(data)) > maxSize {
		return "", nil, fmt.Errorf("%s exceeds limit %d: %w", filepath.Base(path), maxSize, ErrTooLarge)
	}
	return filepath.Base(path), data, nil
}
