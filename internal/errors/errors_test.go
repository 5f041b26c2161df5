package errors

import (
	"errors"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindDecode, "decode error"},
		{KindClipboard, "clipboard error"},
		{KindTransport, "transport error"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"}, // Unknown kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Op: "test.Op", Err: underlying}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", got, underlying)
	}
}

func TestE(t *testing.T) {
	err := E(Op("staging.Decode"), KindDecode, "bad image", errors.New("short read"))
	if got := err.Error(); got != "staging.Decode: bad image: short read" {
		t.Errorf("E() = %q", got)
	}

	// Context-only errors promote context to the underlying error
	err = E(Op("x.Y"), KindInvalid, "just context")
	if got := err.Error(); got != "x.Y: just context" {
		t.Errorf("E() context-only = %q", got)
	}
}

func TestIs(t *testing.T) {
	err := DecodeFailed("photo.png", errors.New("truncated"))
	if !Is(err, KindDecode) {
		t.Error("Is() should match KindDecode")
	}
	if Is(err, KindTransport) {
		t.Error("Is() should not match KindTransport")
	}
	if Is(errors.New("plain"), KindDecode) {
		t.Error("Is() should not match plain errors")
	}
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"decode error", DecodeFailed("a.png", errors.New("x")), KindDecode},
		{"clipboard error", ClipboardWriteFailed(errors.New("x")), KindClipboard},
		{"dial error", TransportDialFailed("ws://h", errors.New("x")), KindTransport},
		{"not found", EntryNotFound("abc"), KindNotFound},
		{"plain error", errors.New("plain"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetKind(tt.err); got != tt.expected {
				t.Errorf("GetKind() = %v, want %v", got, tt.expected)
			}
		})
	}
}
