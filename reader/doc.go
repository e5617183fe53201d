// Package reader locates and reads table files.
//
// A table named T lives in the data directory as T.csv or, read-only, as
// T.parquet. CSV tables start with a header line of column names; every
// following line is one record with fields separated by commas. Fields are
// trimmed and never quoted.
//
// # Basic Usage
//
// Resolve a table and stream its records:
//
//	loc, err := reader.Resolve("tables", "users")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s, err := reader.OpenScanner(loc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	for s.Scan() {
//	    fmt.Println(s.Record().Fields)
//	}
//	if err := s.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Rewrites
//
// Statements that change existing lines write a fresh copy of the table to
// a temporary file next to it (CreateTempFile) and rename it over the
// original (ReplaceFile). Only files ending in TempExtension are ever
// renamed or removed, so a bad path can never clobber a table.
//
// The package uses github.com/parquet-go/parquet-go for parquet tables.
package reader
