// Package transcript defines the conversation feed model: entries, their
// kinds, and the store the UI reads them from.
package transcript

import "time"

// Kind is the closed set of entry kinds the feed knows how to render.
// Anything outside the known tags parses to KindUnrecognized so malformed
// or future entries degrade visibly instead of being dropped.
type Kind int

const (
	// KindMessage is a conversational message with a role.
	KindMessage Kind = iota
	// KindBreadcrumb is a diagnostic/trace entry, optionally expandable.
	KindBreadcrumb
	// KindUnrecognized is the fallback for unknown kind tags.
	KindUnrecognized
)

// Known kind tags on the wire and in transcript files.
const (
	TagMessage    = "message"
	TagBreadcrumb = "breadcrumb"
)

// ParseKind maps a wire tag to a Kind. Unknown tags map to KindUnrecognized.
func ParseKind(tag string) Kind {
	switch tag {
	case TagMessage:
		return KindMessage
	case TagBreadcrumb:
		return KindBreadcrumb
	default:
		return KindUnrecognized
	}
}

func (k Kind) String() string {
	switch k {
	case KindMessage:
		return TagMessage
	case KindBreadcrumb:
		return TagBreadcrumb
	default:
		return "unrecognized"
	}
}

// Role identifies the author of a message entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Guardrail is a moderation result attached to a message entry.
// The feed only arranges layout for it; producing it is the backend's job.
type Guardrail struct {
	Verdict string `json:"verdict"`
	Detail  string `json:"detail,omitempty"`
}

// Entry is one unit in the conversation feed.
//
// CreatedAt orders entries for display; entries are not guaranteed to
// arrive in creation order. Timestamp is the pre-formatted display string
// and is independent of CreatedAt.
type Entry struct {
	ID        string     // Unique, stable for the entry's lifetime
	Kind      Kind       // Message, Breadcrumb, or Unrecognized
	RawKind   string     // Original wire tag, shown for unrecognized entries
	Role      Role       // Messages only
	Title     string     // Display text (markdown for messages)
	Payload   Payload    // Optional structured data, mostly on breadcrumbs
	Guardrail *Guardrail // Optional moderation annotation on messages
	Expanded  bool       // Whether Payload is shown
	Hidden    bool       // Excluded from rendering entirely when true
	CreatedAt int64      // Unix milliseconds, ordering only
	Timestamp string     // Pre-formatted display time
}

// IsAnnotation reports whether the title follows the [bracketed] system
// message convention: fully wrapped in a single pair of brackets.
func (e Entry) IsAnnotation() bool {
	_, ok := StripAnnotationBrackets(e.Title)
	return ok
}

// StripAnnotationBrackets strips the bracket pair from a fully-wrapped
// title. Returns the inner text and true when the title matches the
// convention, the original title and false otherwise.
func StripAnnotationBrackets(title string) (string, bool) {
	if len(title) >= 2 && title[0] == '[' && title[len(title)-1] == ']' {
		return title[1 : len(title)-1], true
	}
	return title, false
}

// FormatTimestamp renders a CreatedAt value as the display timestamp used
// when an entry arrives without one.
func FormatTimestamp(unixMillis int64) string {
	return time.UnixMilli(unixMillis).Format("15:04:05")
}
