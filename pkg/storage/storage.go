// Package storage reads text sources and writes reports.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ErrNotFound is returned when a text source path does not exist.
var ErrNotFound = errors.New("file not found")

type Storage struct {
	// Stdin is read when the path is "-". Defaults to os.Stdin.
	Stdin io.Reader
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// SaveFile writes content to filePath, creating parent directories.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// ReadFile reads a whole file into memory.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// ReadText reads a text source in one go. "-" reads standard input.
// A missing file is reported as ErrNotFound before any read is attempted.
func (s *Storage) ReadText(path string) (string, error) {
	if path == "-" {
		in := s.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}

	if !s.HasFile(path) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	data, err := s.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// HasFile reports whether fn exists and is a regular file or symlink to one.
func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
