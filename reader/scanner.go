package reader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// maxLineSize bounds a single table line
const maxLineSize = 1024 * 1024

// Record is one data line of a table
type Record struct {
	Fields []string
	Line   string // Raw text without the line terminator
}

// Blank reports whether the line holds no data
func (r Record) Blank() bool {
	return strings.TrimSpace(r.Line) == ""
}

// Scanner streams the records of a table after its header. Its methods
// follow bufio.Scanner: call Scan until it returns false, then check Err.
type Scanner interface {
	Header() []string
	HeaderLine() string
	Scan() bool
	Record() Record
	Err() error
	Close() error
}

// OpenScanner opens a scanner for the table at loc
func OpenScanner(loc Location) (Scanner, error) {
	switch loc.Format {
	case FormatParquet:
		return newParquetScanner(loc.Path)
	default:
		return newCSVScanner(loc.Path)
	}
}

// csvScanner reads one line at a time so tables never need to fit in memory
type csvScanner struct {
	file       *os.File
	header     []string
	headerLine string
	lines      *bufio.Scanner
	current    Record
}

func newCSVScanner(path string) (*csvScanner, error) {
	f, err := OpenForRead(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(f)
	header, line, err := ReadHeader(br)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	lines := bufio.NewScanner(br)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &csvScanner{
		file:       f,
		header:     header,
		headerLine: line,
		lines:      lines,
	}, nil
}

func (s *csvScanner) Header() []string {
	return s.header
}

// HeaderLine returns the header exactly as stored
func (s *csvScanner) HeaderLine() string {
	return s.headerLine
}

func (s *csvScanner) Scan() bool {
	if !s.lines.Scan() {
		return false
	}
	line := s.lines.Text()
	s.current = Record{Fields: SplitLine(line), Line: line}
	return true
}

func (s *csvScanner) Record() Record {
	return s.current
}

func (s *csvScanner) Err() error {
	if err := s.lines.Err(); err != nil {
		return fmt.Errorf("failed to read table: %w", err)
	}
	return nil
}

func (s *csvScanner) Close() error {
	return s.file.Close()
}

// parquetScanner serves records from a fully loaded parquet file
type parquetScanner struct {
	header  []string
	records [][]string
	pos     int
	current Record
}

func newParquetScanner(path string) (*parquetScanner, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	return &parquetScanner{
		header:  r.Header(),
		records: records,
	}, nil
}

func (s *parquetScanner) Header() []string {
	return s.header
}

func (s *parquetScanner) HeaderLine() string {
	return JoinLine(s.header)
}

func (s *parquetScanner) Scan() bool {
	if s.pos >= len(s.records) {
		return false
	}
	fields := s.records[s.pos]
	s.pos++
	s.current = Record{Fields: fields, Line: JoinLine(fields)}
	return true
}

func (s *parquetScanner) Record() Record {
	return s.current
}

func (s *parquetScanner) Err() error {
	return nil
}

func (s *parquetScanner) Close() error {
	return nil
}
