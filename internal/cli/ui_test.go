package cli

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/typable/crates/pkg/errors"
)

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.Wrap(errors.ErrCodeNetwork, stderrors.New("connection refused"), "request https://crates.io/api/v1/crates/foo"))

	out := buf.String()
	for _, want := range []string{"connection refused", "NETWORK_ERROR", "crates/foo"} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintError() output %q should contain %q", out, want)
		}
	}
}

func TestPrintErrorSkipsUsageErrors(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New(errors.ErrCodeInvalidArgument, "unknown selector"))
	PrintError(&buf, nil)

	if buf.Len() != 0 {
		t.Errorf("PrintError() wrote %q, want nothing", buf.String())
	}
}

func TestPrintErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, stderrors.New("boom"))

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("PrintError() output %q should contain message", buf.String())
	}
}
