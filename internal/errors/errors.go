// Package errors provides structured error types for the parley application.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindDecode
	KindClipboard
	KindTransport
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindDecode:
		return "decode error"
	case KindClipboard:
		return "clipboard error"
	case KindTransport:
		return "transport error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for parley.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Staging errors
func DecodeFailed(name string, err error) error {
	return E(Op("staging.Decode"), KindDecode, fmt.Sprintf("failed to decode %s", name), err)
}

func NotAnImage(mediaType string) error {
	return E(Op("staging.Select"), KindInvalid, fmt.Sprintf("media type %q is not an image", mediaType))
}

// Clipboard errors
func ClipboardWriteFailed(err error) error {
	return E(Op("clipboard.WriteText"), KindClipboard, "failed to write to system clipboard", err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Transport errors
func TransportDialFailed(url string, err error) error {
	return E(Op("transport.Dial"), KindTransport, fmt.Sprintf("failed to connect to %s", url), err)
}

func TransportSendFailed(err error) error {
	return E(Op("transport.Send"), KindTransport, "failed to send message", err)
}

// Transcript errors
func EntryNotFound(id string) error {
	return E(Op("transcript.Get"), KindNotFound, fmt.Sprintf("entry %s not found", id))
}

func TranscriptLoadFailed(path string, err error) error {
	return E(Op("transcript.LoadFile"), KindIO, fmt.Sprintf("failed to load transcript %s", path), err)
}
