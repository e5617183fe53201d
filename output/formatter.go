package output

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedFormat is returned by NewFormatter for unknown format names
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a result set in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the header and rows in the formatter's specific format.
	// Every row has one field per header column.
	Format(header []string, rows [][]string) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the names accepted by NewFormatter
var Formats = []string{"csv", "jsonl", "table"}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedFormat, name)
	}
}
