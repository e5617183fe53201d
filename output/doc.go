// Package output provides formatters for SELECT results.
//
// A result set is a header (the projected column names) and rows of text
// fields in header order.
//
// # Supported Formats
//
//   - csv: comma-joined lines, header first (the default)
//   - jsonl: one JSON object per row, keys in header order
//   - table: an aligned ASCII table
//
// # Basic Usage
//
//	formatter, err := output.NewFormatter("jsonl", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format([]string{"id", "name"}, [][]string{{"1", "Ana"}}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	var buf bytes.Buffer
//	formatter.SetOutput(&buf)
package output
