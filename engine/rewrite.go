package engine

import (
	"bufio"
	"fmt"

	"go.uber.org/zap"

	"github.com/gabokatta/rustic-sql/reader"
)

// rewriteFunc maps one record to its replacement line. keep false drops
// the record.
type rewriteFunc func(row *Row, record reader.Record) (line string, keep bool, err error)

// rewrite copies the table into a temp file next to it, passing every
// non-blank record through fn, and renames the copy over the table. The
// header and blank lines are copied as they are. On any error the temp
// file is removed and the table is left untouched.
func (e *Executor) rewrite(loc reader.Location, validate func(header []string) error, fn rewriteFunc) (err error) {
	if err := loc.Writable(); err != nil {
		return err
	}

	s, err := reader.OpenScanner(loc)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	header := s.Header()
	if validate != nil {
		if err := validate(header); err != nil {
			return err
		}
	}

	tmp, tmpPath, err := reader.CreateTempFile(loc.Table, loc.Path)
	if err != nil {
		return err
	}
	e.logger.Debug("created temp file", zap.String("path", tmpPath))

	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tmp.Close()
		if rmErr := reader.RemoveTempFile(tmpPath); rmErr != nil {
			e.logger.Debug("failed to remove temp file", zap.String("path", tmpPath), zap.Error(rmErr))
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := writeLine(w, s.HeaderLine()); err != nil {
		return err
	}

	scanned, written := 0, 0
	for s.Scan() {
		record := s.Record()
		if record.Blank() {
			if err := writeLine(w, record.Line); err != nil {
				return err
			}
			continue
		}
		scanned++

		row := NewRow(header)
		if err := row.Read(record.Fields); err != nil {
			return err
		}
		line, keep, err := fn(row, record)
		if err != nil {
			return err
		}
		if !keep {
			continue
		}
		if err := writeLine(w, line); err != nil {
			return err
		}
		written++
	}
	if err := s.Err(); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	committed = true

	if err := reader.ReplaceFile(loc.Path, tmpPath); err != nil {
		_ = reader.RemoveTempFile(tmpPath)
		return err
	}
	e.logger.Debug("replaced table",
		zap.String("path", loc.Path),
		zap.Int("scanned", scanned),
		zap.Int("written", written))
	return nil
}

func writeLine(w *bufio.Writer, line string) error {
	if _, err := w.WriteString(line); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	return nil
}
