package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Separator is the field separator of table files. Fields are never
// quoted, so a value containing it cannot be stored.
const Separator = ","

// ErrMissingHeader is returned when a table file has no header line
var ErrMissingHeader = errors.New("table has no header")

// SplitLine splits a record on commas and trims every field
func SplitLine(line string) []string {
	fields := strings.Split(line, Separator)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// JoinLine is the inverse of SplitLine for fields without separators
func JoinLine(fields []string) string {
	return strings.Join(fields, Separator)
}

// OpenForRead opens a table file for reading
func OpenForRead(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	return f, nil
}

// OpenForAppend opens a table file for reading and appending
func OpenForAppend(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open table for append: %w", err)
	}
	return f, nil
}

// ReadHeader reads the first line of a table and returns its fields and
// the raw line without the line terminator
func ReadHeader(r *bufio.Reader) ([]string, string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("failed to read header: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return nil, "", ErrMissingHeader
	}
	return SplitLine(line), line, nil
}

// EnsureTrailingNewline appends '\n' to a non-empty file whose last byte is
// not one. f must be open for reading and appending.
func EnsureTrailingNewline(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat table: %w", err)
	}
	if info.Size() == 0 {
		return nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return fmt.Errorf("failed to read table end: %w", err)
	}
	if last[0] == '\n' {
		return nil
	}
	if _, err := f.WriteString("\n"); err != nil {
		return fmt.Errorf("failed to terminate last line: %w", err)
	}
	return nil
}
