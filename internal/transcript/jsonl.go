package transcript

import (
	"bufio"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/parley-sh/parley/internal/errors"
	"github.com/parley-sh/parley/internal/logger"
)

// ParseEntry decodes one transcript line into an Entry. Field extraction is
// tolerant: a line missing optional fields still parses, and an unknown
// kind tag becomes KindUnrecognized rather than an error.
func ParseEntry(line []byte) (Entry, error) {
	if !gjson.ValidBytes(line) {
		return Entry{}, errors.E(errors.Op("transcript.ParseEntry"), errors.KindInvalid, "not valid JSON")
	}

	doc := gjson.ParseBytes(line)
	rawKind := doc.Get("kind").String()

	e := Entry{
		ID:        doc.Get("id").String(),
		Kind:      ParseKind(rawKind),
		RawKind:   rawKind,
		Title:     doc.Get("title").String(),
		Hidden:    doc.Get("hidden").Bool(),
		Expanded:  doc.Get("expanded").Bool(),
		CreatedAt: doc.Get("created_at").Int(),
		Timestamp: doc.Get("timestamp").String(),
	}

	if role := doc.Get("role"); role.Exists() {
		switch role.String() {
		case string(RoleUser):
			e.Role = RoleUser
		default:
			// Assistant and system messages share a side of the feed.
			e.Role = RoleAssistant
		}
	}

	if payload := doc.Get("payload"); payload.Exists() {
		e.Payload = Payload(payload.Raw)
	}

	if g := doc.Get("guardrail"); g.Exists() {
		e.Guardrail = &Guardrail{
			Verdict: g.Get("verdict").String(),
			Detail:  g.Get("detail").String(),
		}
	}

	if e.Timestamp == "" && e.CreatedAt != 0 {
		e.Timestamp = FormatTimestamp(e.CreatedAt)
	}

	return e, nil
}

// LoadFile reads a JSONL transcript file into a slice of entries.
// Malformed lines are logged and skipped; a transcript with a few bad
// lines still loads.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.TranscriptLoadFailed(path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		e, err := ParseEntry([]byte(line))
		if err != nil {
			logger.Warn("Transcript: skipping malformed line %d in %s: %v", lineNo, path, err)
			continue
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.TranscriptLoadFailed(path, err)
	}

	logger.Info("Transcript: loaded %d entries from %s", len(entries), path)
	return entries, nil
}

// LoadInto loads a transcript file and appends its entries to the store.
func LoadInto(s *Store, path string) (int, error) {
	entries, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		s.Append(e)
	}
	return len(entries), nil
}
