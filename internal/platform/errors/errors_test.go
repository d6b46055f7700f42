package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(CodeInputUnavailable, "failed to read line", io.ErrUnexpectedEOF)
	if got, want := err.Error(), "failed to read line: unexpected EOF"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if got := New(CodeGuessInvalid, "bad guess").Error(); got != "bad guess" {
		t.Fatalf("Error() = %q, want %q", got, "bad guess")
	}
	if got := Wrap(CodeUnknown, "", io.EOF).Error(); got != "EOF" {
		t.Fatalf("Error() = %q, want %q", got, "EOF")
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("play: %w", Wrap(CodeInputUnavailable, "failed to read line", io.EOF))

	if !stderrors.Is(err, New(CodeInputUnavailable, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeGuessInvalid, "")) {
		t.Fatal("expected errors.Is to reject a different code")
	}
	if !stderrors.Is(err, io.EOF) {
		t.Fatal("expected errors.Is to reach the cause")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: CodeUnknown},
		{name: "plain", err: io.EOF, want: CodeUnknown},
		{name: "direct", err: New(CodeGuessInvalid, "x"), want: CodeGuessInvalid},
		{name: "wrapped", err: fmt.Errorf("seed: %w", New(CodeSeedUnavailable, "x")), want: CodeSeedUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Fatalf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	if IsFatal(nil) {
		t.Fatal("nil error must not be fatal")
	}
	if IsFatal(New(CodeGuessInvalid, "x")) {
		t.Fatal("invalid guess must be recoverable")
	}
	if !IsFatal(New(CodeInputUnavailable, "x")) {
		t.Fatal("input failure must be fatal")
	}
	if !IsFatal(New(CodeSeedUnavailable, "x")) {
		t.Fatal("seed failure must be fatal")
	}
	if !IsFatal(io.EOF) {
		t.Fatal("uncoded errors must be fatal")
	}
}

func TestWrapWithMetadataKeepsFields(t *testing.T) {
	err := WrapWithMetadata(CodeGuessInvalid, "invalid guess", map[string]string{"input": "abc"}, io.EOF)
	if err.Metadata["input"] != "abc" {
		t.Fatalf("expected metadata input, got %v", err.Metadata)
	}
	if err.Unwrap() != io.EOF {
		t.Fatalf("expected cause EOF, got %v", err.Unwrap())
	}
}
