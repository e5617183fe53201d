package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/gabokatta/rustic-sql/engine"
	"github.com/gabokatta/rustic-sql/output"
	"github.com/gabokatta/rustic-sql/query"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one query and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("rustic-sql", flag.ContinueOnError)
	flags.SetOutput(stderr)
	formatFlag := flags.String("f", "csv", "Output format for SELECT: "+strings.Join(output.Formats, ", "))
	debugFlag := flags.Bool("debug", false, "Log execution details to stderr")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rustic-sql [options] <tables-dir> <query>\n\n")
		fmt.Fprintf(stderr, "Run one SQL statement against the CSV tables in a directory.\n\n")
		fmt.Fprintf(stderr, "IMPORTANT: All flags must come BEFORE the positional arguments.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  rustic-sql ./tables \"SELECT * FROM users\"\n")
		fmt.Fprintf(stderr, "  rustic-sql -f table ./tables \"SELECT name, email FROM users WHERE age > 30 ORDER BY age DESC\"\n")
		fmt.Fprintf(stderr, "  rustic-sql ./tables \"INSERT INTO users (user_id, name) VALUES (1, 'Ana')\"\n")
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if flags.NArg() != 2 {
		fmt.Fprintf(stderr, "[ERROR]: expected 2 arguments, got %d\n\n", flags.NArg())
		flags.Usage()
		return 1
	}
	dir, sql := flags.Arg(0), flags.Arg(1)

	formatter, err := output.NewFormatter(*formatFlag, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR]: %v\n", err)
		fmt.Fprintf(stderr, "Supported formats: %s\n", strings.Join(output.Formats, ", "))
		return 1
	}

	logger, err := newLogger(*debugFlag)
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR]: failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	exec, err := engine.New(dir, engine.WithLogger(logger), engine.WithFormatter(formatter))
	if err != nil {
		printError(stderr, err)
		return 1
	}
	if err := exec.Execute(sql); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// printError writes err as a single "[KIND]: message" line
func printError(w io.Writer, err error) {
	var qerr *query.Error
	if errors.As(err, &qerr) {
		fmt.Fprintln(w, qerr.Error())
		return
	}
	fmt.Fprintf(w, "[ERROR]: %v\n", err)
}
