package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedRow, "row %d: missing pin name", 12)

	if err.Code != ErrCodeMalformedRow {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeMalformedRow)
	}
	if err.Message != "row 12: missing pin name" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Error() != "MALFORMED_ROW: row 12: missing pin name" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(ErrCodeFileNotFound, cause, "open %s", "pins.csv")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if GetCode(err) != ErrCodeFileNotFound {
		t.Errorf("GetCode = %s, want %s", GetCode(err), ErrCodeFileNotFound)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidPinType, "unknown pin type %q", "Wibble")

	if !Is(err, ErrCodeInvalidPinType) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is matched a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is matched a plain error")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeMalformedCSV, "file too short")
	if got := UserMessage(err); got != "file too short" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
