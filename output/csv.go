package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CSVFormatter writes the header and each row as comma-joined lines, the
// same layout the tables are stored in
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header line followed by one line per row
func (c *CSVFormatter) Format(header []string, rows [][]string) error {
	bw := bufio.NewWriter(c.writer)

	if err := writeLine(bw, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeLine(bw, row); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

func writeLine(w *bufio.Writer, fields []string) error {
	if _, err := w.WriteString(strings.Join(fields, ",")); err != nil {
		return fmt.Errorf("failed to write CSV line: %w", err)
	}
	return w.WriteByte('\n')
}
