package errors

import (
	"errors"
	"testing"
)

func TestWrapAndUnwrap(t *testing.T) {
	e := New(ErrRange, "coefficient %d is negative", -3)
	if !errors.Is(e, ErrRange) {
		t.Fatal("errors.Is failed to recognize wrapped sentinel")
	}
	if errors.Is(e, ErrDivByZero) {
		t.Fatal("errors.Is matched the wrong sentinel")
	}
	want := ErrRange.Error() + " [coefficient -3 is negative]"
	if e.Error() != want {
		t.Fatalf("got %q, want %q", e.Error(), want)
	}
}
