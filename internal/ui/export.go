package ui

import (
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/parley-sh/parley/internal/clipboard"
	"github.com/parley-sh/parley/internal/errors"
	"github.com/parley-sh/parley/internal/logger"
	"github.com/parley-sh/parley/internal/transcript"
)

// CopyFlashDuration is how long the copy confirmation stays visible.
const CopyFlashDuration = 1500 * time.Millisecond

// CopyDoneMsg reports the outcome of a clipboard export.
type CopyDoneMsg struct {
	Err error
}

// CopyFlashExpiredMsg ends the copy confirmation.
type CopyFlashExpiredMsg struct{}

// TranscriptText serializes entries to plain text in display order.
// Hidden entries are excluded and expanded payloads are included, so the
// export matches what the feed shows.
func TranscriptText(entries []transcript.Entry) string {
	var sb strings.Builder
	first := true
	for _, e := range VisibleEntries(entries) {
		if !first {
			sb.WriteString("\n")
		}
		first = false

		switch e.Kind {
		case transcript.KindMessage:
			if e.Role == transcript.RoleUser {
				sb.WriteString("You: ")
			} else {
				sb.WriteString("Assistant: ")
			}
			title, _ := transcript.StripAnnotationBrackets(e.Title)
			sb.WriteString(title)
			if e.Guardrail != nil {
				sb.WriteString("\n  [guardrail: " + e.Guardrail.Verdict)
				if e.Guardrail.Detail != "" {
					sb.WriteString(", " + e.Guardrail.Detail)
				}
				sb.WriteString("]")
			}

		case transcript.KindBreadcrumb:
			title, _ := transcript.StripAnnotationBrackets(e.Title)
			if e.Timestamp != "" {
				sb.WriteString(e.Timestamp + " ")
			}
			sb.WriteString("· " + title)
			if e.Expanded && !e.Payload.Empty() {
				sb.WriteString("\n")
				sb.WriteString(e.Payload.Indented(payloadIndent))
			}

		default:
			sb.WriteString("? " + e.RawKind)
			if e.Timestamp != "" {
				sb.WriteString(" (" + e.Timestamp + ")")
			}
		}
	}
	return sb.String()
}

// CopyTranscript writes the serialized transcript to the system clipboard.
// Failures go to the diagnostic log only; the feed is never touched.
func CopyTranscript(entries []transcript.Entry) tea.Cmd {
	text := TranscriptText(entries)
	return func() tea.Msg {
		if err := clipboard.WriteText(text); err != nil {
			logger.Warn("Export: clipboard write failed: %v", err)
			return CopyDoneMsg{Err: errors.ClipboardWriteFailed(err)}
		}
		logger.Debug("Export: copied %d bytes to clipboard", len(text))
		return CopyDoneMsg{}
	}
}

// CopyFlashExpire schedules the end of the copy confirmation.
func CopyFlashExpire() tea.Cmd {
	return tea.Tick(CopyFlashDuration, func(time.Time) tea.Msg {
		return CopyFlashExpiredMsg{}
	})
}

// SaveTranscript writes the serialized transcript to a file.
func SaveTranscript(entries []transcript.Entry, path string) error {
	text := TranscriptText(entries)
	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		return errors.E(errors.Op("ui.SaveTranscript"), errors.KindIO, err)
	}
	logger.Info("Export: wrote transcript to %s", path)
	return nil
}
