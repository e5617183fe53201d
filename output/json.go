package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line). Keys follow
// header order; values are always strings.
func (j *JSONFormatter) Format(header []string, rows [][]string) error {
	var buf bytes.Buffer
	for _, row := range rows {
		buf.Reset()
		buf.WriteByte('{')
		for i, column := range header {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, column); err != nil {
				return err
			}
			buf.WriteByte(':')

			value := ""
			if i < len(row) {
				value = row[i]
			}
			if err := writeJSONString(&buf, value); err != nil {
				return err
			}
		}
		buf.WriteString("}\n")

		if _, err := j.writer.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write JSON line: %w", err)
		}
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", s, err)
	}
	buf.Write(encoded)
	return nil
}
