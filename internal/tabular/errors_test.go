package tabular

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsSourceLoad_Explicit(t *testing.T) {
	err := NewSourceLoadError("roads.csv", errors.New("permission denied"))
	if !IsSourceLoad(err) {
		t.Error("expected SourceLoadError to be a load failure")
	}
	if got := err.Error(); got != "load roads.csv: permission denied" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestIsSourceLoad_Wrapped(t *testing.T) {
	inner := NewSourceLoadError("bridges.xlsx", errors.New("zip: not a valid zip file"))
	wrapped := fmt.Errorf("pipeline: load bridges: %w", inner)
	if !IsSourceLoad(wrapped) {
		t.Error("expected wrapped SourceLoadError to be a load failure")
	}
}

func TestIsSourceLoad_Nil(t *testing.T) {
	if IsSourceLoad(nil) {
		t.Error("nil error should not be a load failure")
	}
}

func TestIsSourceLoad_Regular(t *testing.T) {
	if IsSourceLoad(errors.New("something else")) {
		t.Error("regular error should not be a load failure")
	}
}

func TestSourceLoadError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewSourceLoadError("x.csv", cause)
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
}
