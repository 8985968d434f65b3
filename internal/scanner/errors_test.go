package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/mrjoshuak/xmlscan/types"
)

func TestWrapError(t *testing.T) {
	baseErr := errors.New("base error")
	wrapped := WrapError(baseErr, ParseError, "TestFunc", "test message")

	if !strings.Contains(wrapped.Error(), "[parse:TestFunc]") {
		t.Errorf("Error message should contain formatted prefix, got: %s", wrapped.Error())
	}
	if !strings.Contains(wrapped.Error(), "test message") {
		t.Errorf("Error message should contain the message, got: %s", wrapped.Error())
	}
	if !errors.Is(wrapped, baseErr) {
		t.Errorf("errors.Is should return true for the base error")
	}
	if WrapError(nil, ParseError, "TestFunc", "msg") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapErrorSpecificTypes(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name      string
		wrapFunc  func(error, string, string) error
		errorType ErrorType
		checkFunc func(error) bool
	}{
		{"ParseError", WrapParseError, ParseError, IsParseError},
		{"ExtractionError", WrapExtractionError, ExtractionError, IsExtractionError},
		{"ValidationError", WrapValidationError, ValidationError, IsValidationError},
		{"TimeoutError", WrapTimeoutError, TimeoutError, IsTimeoutError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedErr := tt.wrapFunc(baseErr, "TestFunc", "")
			if !tt.checkFunc(wrappedErr) {
				t.Errorf("%s should be detected by Is%s", tt.name, tt.name)
			}
			if !IsErrorType(wrappedErr, tt.errorType) {
				t.Errorf("IsErrorType should identify %s as type %s", tt.name, tt.errorType)
			}
		})
	}
}

func TestResultError(t *testing.T) {
	r := Scan(`<doc><p>open`, 0, Named("p"), Full)
	err := ResultError(r, "Extract")
	if !IsParseError(err) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if !errors.Is(err, types.ErrUnclosedElement) {
		t.Errorf("expected ErrUnclosedElement, got %v", err)
	}
	if !strings.Contains(err.Error(), "<p> at offset 5") {
		t.Errorf("error should name the element and offset, got %v", err)
	}

	if err := ResultError(Scan(`<p>x</p>`, 0, Named("p"), Full), "Extract"); err != nil {
		t.Errorf("found result should not produce an error, got %v", err)
	}
	if err := ResultError(Scan(`<q/>`, 0, Named("p"), Full), "Extract"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
