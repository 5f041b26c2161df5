// Package transport carries composed messages to the conversation backend
// and delivers transcript entries coming back.
package transport

import "github.com/parley-sh/parley/internal/transcript"

// Sender accepts outgoing messages. Implementations are fire-and-forget
// from the UI's point of view: delivery failures surface through the
// error return and the diagnostic log, never through the feed.
type Sender interface {
	// SendText sends a plain text message exactly as typed.
	SendText(text string) error

	// SendImage sends a staged image as a data URI with an optional
	// caption. An empty caption means the message is image-only.
	SendImage(dataURI, caption string) error

	// Close tears down the connection. Safe to call more than once.
	Close() error
}

// Events receives backend activity. All callbacks fire on the transport's
// read goroutine; receivers hand off to their own loop.
type Events struct {
	// OnEntry delivers a transcript entry produced by the backend.
	OnEntry func(transcript.Entry)

	// OnPermitted reports whether the backend currently accepts input.
	OnPermitted func(bool)

	// OnClosed fires once when the connection ends, with the cause.
	OnClosed func(error)
}

// frame is the wire envelope in both directions.
type frame struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Image   string `json:"image,omitempty"`
	Caption string `json:"caption,omitempty"`
}

const (
	frameText  = "text"
	frameImage = "image"
)
