package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(ErrCodeInvalidVariants, "no valid variant rows")
	if got := err.Error(); got != "INVALID_VARIANTS: no valid variant rows" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(ErrCodeInvalidDocument, stderrors.New("unexpected EOF"), "read doc.json")
	if got := wrapped.Error(); !strings.Contains(got, "unexpected EOF") {
		t.Errorf("wrapped Error() = %q, want cause included", got)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNoEligibleIcons, "no eligible icons in selection")
	if !Is(err, ErrCodeNoEligibleIcons) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeRunInFlight, "busy")); got != ErrCodeRunInFlight {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeSelectionTooLarge, "select at most 100 nodes")
	if got := UserMessage(err); got != "select at most 100 nodes" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("boom")); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := New(ErrCodeNodeNotFound, "node abc")
	err := Wrap(ErrCodeInternal, cause, "build variant")

	// errors.As walks the chain, so the outermost code wins for Is.
	if !Is(err, ErrCodeInternal) {
		t.Error("outer code should match")
	}
	var inner *Error
	if !stderrors.As(stderrors.Unwrap(err), &inner) || inner.Code != ErrCodeNodeNotFound {
		t.Error("cause should be reachable via Unwrap")
	}
}

func TestIsInputRejection(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidSelection, true},
		{ErrCodeSelectionTooLarge, true},
		{ErrCodeInvalidVariants, true},
		{ErrCodeNoEligibleIcons, true},
		{ErrCodeInternal, false},
		{ErrCodeInvalidDocument, false},
	}
	for _, tt := range tests {
		if got := IsInputRejection(New(tt.code, "x")); got != tt.want {
			t.Errorf("IsInputRejection(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
