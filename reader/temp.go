package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempExtension marks rewrite files. ReplaceFile and RemoveTempFile refuse
// paths without it.
const TempExtension = ".tmp"

// ErrNotTempFile is returned when a path lacks TempExtension
var ErrNotTempFile = errors.New("tried to replace with a non-temporary file")

// CreateTempFile creates a new file next to tablePath for rewriting table.
// The name combines the table, the process id and a random UUID; the file
// takes the permissions of the table.
func CreateTempFile(table, tablePath string) (*os.File, string, error) {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(tablePath); err == nil {
		perm = info.Mode().Perm()
	}

	name := fmt.Sprintf("%s_%d_%s%s", table, os.Getpid(), uuid.NewString(), TempExtension)
	path := filepath.Join(filepath.Dir(tablePath), name)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create temp file: %w", err)
	}
	return f, path, nil
}

// ReplaceFile renames tempPath over tablePath
func ReplaceFile(tablePath, tempPath string) error {
	if filepath.Ext(tempPath) != TempExtension {
		return fmt.Errorf("%w: %s", ErrNotTempFile, tempPath)
	}
	if err := os.Rename(tempPath, tablePath); err != nil {
		return fmt.Errorf("failed to replace table: %w", err)
	}
	return nil
}

// RemoveTempFile deletes an abandoned rewrite file
func RemoveTempFile(tempPath string) error {
	if filepath.Ext(tempPath) != TempExtension {
		return fmt.Errorf("%w: %s", ErrNotTempFile, tempPath)
	}
	if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temp file: %w", err)
	}
	return nil
}
