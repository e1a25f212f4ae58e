package tabular

import "errors"

// SourceLoadError reports an input dataset that could not be read at all.
// It is the only failure that aborts a run.
type SourceLoadError struct {
	Path string
	Err  error
}

func (e *SourceLoadError) Error() string {
	return "load " + e.Path + ": " + e.Err.Error()
}

func (e *SourceLoadError) Unwrap() error {
	return e.Err
}

// NewSourceLoadError wraps err as a load failure for path.
func NewSourceLoadError(path string, err error) *SourceLoadError {
	return &SourceLoadError{Path: path, Err: err}
}

// IsSourceLoad returns true if the error (or any error in its chain) is a
// SourceLoadError.
func IsSourceLoad(err error) bool {
	if err == nil {
		return false
	}
	var le *SourceLoadError
	return errors.As(err, &le)
}
