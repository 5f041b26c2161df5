package ui

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/parley-sh/parley/internal/transcript"
)

// VisibleEntries returns the entries that participate in rendering, in
// display order: a stable sort by CreatedAt (ties keep arrival order)
// with hidden entries removed.
func VisibleEntries(entries []transcript.Entry) []transcript.Entry {
	sorted := append([]transcript.Entry{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt < sorted[j].CreatedAt
	})

	visible := sorted[:0]
	for _, e := range sorted {
		if e.Hidden {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// SelectableBreadcrumbs returns the ids of visible breadcrumbs that carry
// a payload, in display order. These are the entries the user can cycle
// through and expand.
func SelectableBreadcrumbs(entries []transcript.Entry) []string {
	var ids []string
	for _, e := range VisibleEntries(entries) {
		if e.Kind == transcript.KindBreadcrumb && !e.Payload.Empty() {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// RenderFeed produces the conversation view for the given entries.
// selectedID highlights one breadcrumb; pass "" for no selection.
func RenderFeed(entries []transcript.Entry, width int, selectedID string) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var sb strings.Builder
	first := true
	for _, e := range VisibleEntries(entries) {
		if !first {
			sb.WriteString("\n\n")
		}
		first = false

		switch e.Kind {
		case transcript.KindMessage:
			renderMessage(&sb, e, width)
		case transcript.KindBreadcrumb:
			renderBreadcrumb(&sb, e, width, e.ID == selectedID)
		default:
			renderUnrecognized(&sb, e)
		}
	}
	return sb.String()
}

// renderMessage writes a role-labelled message with markdown content and
// any guardrail annotation. A title fully wrapped in brackets is a system
// annotation: the brackets are stripped and the text rendered muted
// instead of going through the markdown path.
func renderMessage(sb *strings.Builder, e transcript.Entry, width int) {
	if e.Role == transcript.RoleUser {
		sb.WriteString(ChatUserStyle.Render("You:"))
	} else {
		sb.WriteString(ChatAssistantStyle.Render("Assistant:"))
	}
	sb.WriteString("\n")

	if title, ok := transcript.StripAnnotationBrackets(e.Title); ok {
		sb.WriteString(ChatAnnotationStyle.Render(wrapText(title, width)))
	} else {
		sb.WriteString(renderMarkdown(strings.TrimSpace(e.Title), width))
	}

	if e.Guardrail != nil {
		sb.WriteString("\n")
		annotation := "⚠ " + e.Guardrail.Verdict
		if e.Guardrail.Detail != "" {
			annotation += ": " + e.Guardrail.Detail
		}
		sb.WriteString(GuardrailStyle.Render(annotation))
	}
}

// renderBreadcrumb writes a one-line breadcrumb with its display
// timestamp, expanding its payload below when toggled open.
func renderBreadcrumb(sb *strings.Builder, e transcript.Entry, width int, selected bool) {
	title, _ := transcript.StripAnnotationBrackets(e.Title)
	prefix := "· "
	if e.Timestamp != "" {
		prefix = e.Timestamp + " · "
	}
	line := prefix + truncate(title, width-runewidth.StringWidth(prefix))

	style := BreadcrumbStyle
	if selected {
		style = BreadcrumbSelectedStyle
	}
	sb.WriteString(style.Render(line))

	if e.Expanded && !e.Payload.Empty() {
		sb.WriteString("\n")
		sb.WriteString(BreadcrumbPayloadStyle.Render(e.Payload.Indented(payloadIndent)))
	}
}

// renderUnrecognized writes the fallback row for entries whose kind tag
// this build does not know. The raw tag is shown verbatim.
func renderUnrecognized(sb *strings.Builder, e transcript.Entry) {
	line := "? " + e.RawKind
	if e.Timestamp != "" {
		line += " (" + e.Timestamp + ")"
	}
	sb.WriteString(UnrecognizedStyle.Render(line))
}

// truncate cuts s to the given display width, appending an ellipsis when
// anything was removed. Width is measured in terminal cells, not bytes.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
