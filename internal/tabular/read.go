package tabular

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Format is a supported table file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatOf picks the format from a path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", eris.Errorf("tabular: unsupported file type %q", filepath.Ext(path))
	}
}

// ReadOptions configures Read.
type ReadOptions struct {
	CSV  CSVOptions
	XLSX XLSXOptions
}

// Read loads a CSV or XLSX table chosen by extension. Any failure is a
// SourceLoadError.
func Read(ctx context.Context, path string, opts ReadOptions) (*Table, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, NewSourceLoadError(path, err)
	}
	if format == FormatXLSX {
		return ReadXLSX(path, opts.XLSX)
	}
	return ReadCSV(ctx, path, opts.CSV)
}

// Write saves a table as CSV or XLSX chosen by extension. sheetName and
// numericCols only apply to XLSX.
func Write(path, sheetName string, t *Table, numericCols ...string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if format == FormatXLSX {
		return WriteXLSX(path, sheetName, t, numericCols...)
	}
	return WriteCSV(path, t)
}
