package errors_test

import (
	"testing"

	"github.com/aledsdavies/slha/errors"
)

func TestErrorChaining(t *testing.T) {
	leaf := errors.NewUnexpectedEolError()
	line := errors.NewInvalidBlockLineError(3, leaf)
	block := errors.NewInvalidBlockError("mass", line)

	if !errors.Is(block, errors.KindInvalidBlock) {
		t.Fatalf("expected KindInvalidBlock in chain")
	}
	if !errors.Is(block, errors.KindInvalidBlockLine) {
		t.Fatalf("expected KindInvalidBlockLine in chain")
	}
	if !errors.Is(block, errors.KindUnexpectedEol) {
		t.Fatalf("expected KindUnexpectedEol in chain")
	}
	if errors.Is(block, errors.KindDuplicateKey) {
		t.Fatalf("did not expect KindDuplicateKey in chain")
	}

	want := `malformed block: "mass": failed to parse the 3th data line in the body: the parser reached the end of the line before finishing`
	if got := block.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrap(t *testing.T) {
	leaf := errors.NewUnexpectedEolError()
	wrapped := errors.NewInvalidBlockLineError(1, leaf)

	if wrapped.Unwrap() != leaf {
		t.Fatalf("Unwrap() did not return the original cause")
	}
}
