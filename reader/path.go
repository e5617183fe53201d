package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Table file extensions, in lookup order
const (
	CSVExtension     = ".csv"
	ParquetExtension = ".parquet"
)

// Format is the storage format of a table file
type Format int

const (
	FormatCSV Format = iota
	FormatParquet
)

func (f Format) String() string {
	if f == FormatParquet {
		return "parquet"
	}
	return "csv"
}

var (
	// ErrTableNotFound is returned when no file backs the table name
	ErrTableNotFound = errors.New("table does not exist")

	// ErrReadOnlyTable is returned when a write targets a non-CSV table
	ErrReadOnlyTable = errors.New("table is read-only")
)

// Location is a resolved table file
type Location struct {
	Table  string
	Path   string
	Format Format
}

// Writable returns ErrReadOnlyTable unless the table is stored as CSV
func (l Location) Writable() error {
	if l.Format != FormatCSV {
		return fmt.Errorf("%w: %s is stored as %s", ErrReadOnlyTable, l.Table, l.Format)
	}
	return nil
}

// ValidatePath checks that dir exists, is a directory and is not empty
func ValidatePath(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path '%s' does not exist", dir)
		}
		return fmt.Errorf("failed to stat path '%s': %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path '%s' is not a valid directory", dir)
	}

	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open directory '%s': %w", dir, err)
	}
	defer func() { _ = d.Close() }()

	if _, err := d.Readdirnames(1); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("path '%s' is an empty directory", dir)
		}
		return fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}
	return nil
}

// Resolve finds the file for table in dir: <table>.csv first, then
// <table>.parquet
func Resolve(dir, table string) (Location, error) {
	for _, candidate := range []struct {
		ext    string
		format Format
	}{
		{CSVExtension, FormatCSV},
		{ParquetExtension, FormatParquet},
	} {
		path := filepath.Join(dir, table+candidate.ext)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return Location{Table: table, Path: path, Format: candidate.format}, nil
	}
	return Location{}, fmt.Errorf("%w: %s in directory: %s", ErrTableNotFound, table, dir)
}
