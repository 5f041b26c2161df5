package transport

import (
	"fmt"
	"strings"

	"github.com/parley-sh/parley/internal/logger"
	"github.com/parley-sh/parley/internal/transcript"
)

// Loopback is an offline Sender that echoes everything it is given back
// as transcript entries. Used when no backend URL is configured, and in
// tests.
type Loopback struct {
	events Events
}

// NewLoopback creates a loopback sender and immediately reports input as
// permitted.
func NewLoopback(events Events) *Loopback {
	l := &Loopback{events: events}
	if events.OnPermitted != nil {
		events.OnPermitted(true)
	}
	return l
}

// SendText echoes the text back as a user message followed by an
// assistant acknowledgement.
func (l *Loopback) SendText(text string) error {
	l.emit(transcript.Entry{
		Kind:    transcript.KindMessage,
		RawKind: transcript.TagMessage,
		Role:    transcript.RoleUser,
		Title:   text,
	})
	l.emit(transcript.Entry{
		Kind:    transcript.KindMessage,
		RawKind: transcript.TagMessage,
		Role:    transcript.RoleAssistant,
		Title:   "echo: " + text,
	})
	return nil
}

// SendImage records the staged image as a user message plus a breadcrumb
// describing the attachment.
func (l *Loopback) SendImage(dataURI, caption string) error {
	title := caption
	if title == "" {
		title = "(image)"
	}
	l.emit(transcript.Entry{
		Kind:    transcript.KindMessage,
		RawKind: transcript.TagMessage,
		Role:    transcript.RoleUser,
		Title:   title,
	})

	mime := dataURI
	if i := strings.IndexByte(mime, ';'); i > 0 {
		mime = strings.TrimPrefix(mime[:i], "data:")
	}
	l.emit(transcript.Entry{
		Kind:    transcript.KindBreadcrumb,
		RawKind: transcript.TagBreadcrumb,
		Title:   "[image received]",
		Payload: transcript.Payload(fmt.Sprintf(`{"media_type":%q,"encoded_bytes":%d}`, mime, len(dataURI))),
	})
	return nil
}

// Close is a no-op.
func (l *Loopback) Close() error {
	logger.Debug("Transport: loopback closed")
	return nil
}

func (l *Loopback) emit(e transcript.Entry) {
	if l.events.OnEntry != nil {
		l.events.OnEntry(e)
	}
}
