//go:build windows

package mmfile

import (
	"os"
)

// Map reads the entire file. Modifications are written back when the cleanup
// function runs.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	cleanup := func() error {
		return os.WriteFile(path, data, 0o644)
	}
	return data, cleanup, nil
}

// MapAnon returns a plain zero-filled buffer.
func MapAnon(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}

// Sync is a no-op without a mapping; Map's cleanup persists changes.
func Sync(_ []byte) error {
	return nil
}
