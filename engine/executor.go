// Package engine executes parsed queries against the tables of a directory.
//
// SELECT streams the table, keeps the matching rows, sorts and projects
// them. UPDATE and DELETE write a full copy of the table to a temp file and
// rename it over the original; INSERT appends.
package engine

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gabokatta/rustic-sql/output"
	"github.com/gabokatta/rustic-sql/query"
	"github.com/gabokatta/rustic-sql/reader"
)

// Executor runs parsed queries against the tables of one directory
type Executor struct {
	dir       string
	logger    *zap.Logger
	formatter output.Formatter
}

// Option configures an Executor
type Option func(*Executor)

// WithLogger sets the logger used for debug tracing
func WithLogger(logger *zap.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithFormatter sets where and how SELECT results are written
func WithFormatter(f output.Formatter) Option {
	return func(e *Executor) {
		if f != nil {
			e.formatter = f
		}
	}
}

// New validates dir and returns an executor for its tables. By default
// results go to stdout as CSV and nothing is logged.
func New(dir string, opts ...Option) (*Executor, error) {
	if err := reader.ValidatePath(dir); err != nil {
		return nil, err
	}

	e := &Executor{
		dir:       dir,
		logger:    zap.NewNop(),
		formatter: output.NewCSVFormatter(os.Stdout),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Execute parses sql and runs it
func (e *Executor) Execute(sql string) error {
	q, err := query.Parse(sql)
	if err != nil {
		return err
	}
	return e.Run(q)
}

// Run executes q. SELECT writes its result through the formatter; the
// other operations change the table file and write nothing.
func (e *Executor) Run(q *query.Query) error {
	e.logger.Debug("running query", zap.Stringer("query", q))

	loc, err := reader.Resolve(e.dir, q.Table)
	if err != nil {
		return err
	}
	e.logger.Debug("resolved table",
		zap.String("table", loc.Table),
		zap.String("path", loc.Path),
		zap.Stringer("format", loc.Format))

	switch q.Operation {
	case query.OperationSelect:
		return e.runSelect(q, loc)
	case query.OperationInsert:
		return e.runInsert(q, loc)
	case query.OperationUpdate:
		return e.runUpdate(q, loc)
	case query.OperationDelete:
		return e.runDelete(q, loc)
	default:
		return fmt.Errorf("unsupported operation: %s", q.Operation)
	}
}
