package tabular

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// CSVOptions configures the streaming CSV parser.
type CSVOptions struct {
	Delimiter  rune // default ','
	Comment    rune // comment character (0 = none)
	LazyQuotes bool
	TrimSpace  bool
}

// StreamCSV reads CSV records and sends them to a channel, header row
// included. Caller must consume the returned row channel. Errors are sent on
// the error channel. Both channels are closed when processing completes.
func StreamCSV(ctx context.Context, r io.Reader, opts CSVOptions) (<-chan []string, <-chan error) {
	rowCh := make(chan []string, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(rowCh)
		defer close(errCh)

		reader := csv.NewReader(r)
		if opts.Delimiter != 0 {
			reader.Comma = opts.Delimiter
		}
		if opts.Comment != 0 {
			reader.Comment = opts.Comment
		}
		reader.LazyQuotes = opts.LazyQuotes
		reader.FieldsPerRecord = -1 // allow variable fields

		for {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}

			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errCh <- eris.Wrap(err, "csv: read row")
				return
			}

			if opts.TrimSpace {
				for i, field := range record {
					record[i] = strings.TrimSpace(field)
				}
			}

			select {
			case rowCh <- record:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}
		}
	}()

	return rowCh, errCh
}

// ReadCSV loads a whole CSV file. The first record is the header. Any
// failure is a SourceLoadError.
func ReadCSV(ctx context.Context, path string, opts CSVOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewSourceLoadError(path, eris.Wrap(err, "csv: open file"))
	}
	defer f.Close()

	rowCh, errCh := StreamCSV(ctx, f, opts)

	t := &Table{}
	first := true
	for row := range rowCh {
		if first {
			t.Header = stripBOM(row)
			first = false
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	for err := range errCh {
		if err != nil {
			return nil, NewSourceLoadError(path, err)
		}
	}
	if first {
		return nil, NewSourceLoadError(path, eris.New("csv: file has no header"))
	}
	return t, nil
}

// WriteCSV writes the table, header first.
func WriteCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "csv: create file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return eris.Wrap(err, "csv: write header")
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "csv: write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "csv: flush")
	}
	return nil
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
func stripBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header
}
