package ui

import "github.com/parley-sh/parley/internal/transcript"

// fingerprint is the part of an entry the scroll logic compares. Layout
// changes that leave title and payload alone (expand, collapse) do not
// count as new content.
type fingerprint struct {
	title   string
	payload string
}

// ScrollSync decides when the viewport should jump to the bottom. It
// keeps a snapshot of the previous visible entry set and compares each
// new set against it.
type ScrollSync struct {
	prev []fingerprint
}

// ShouldScroll reports whether the given visible entries differ from the
// previous snapshot in a way that warrants scrolling: more entries than
// before, or a changed title or payload at a shared index. The snapshot
// is replaced on every call regardless of the result.
func (s *ScrollSync) ShouldScroll(visible []transcript.Entry) bool {
	next := make([]fingerprint, len(visible))
	for i, e := range visible {
		next[i] = fingerprint{title: e.Title, payload: string(e.Payload)}
	}

	prev := s.prev
	s.prev = next

	if len(next) > len(prev) {
		return true
	}

	shared := len(next)
	if len(prev) < shared {
		shared = len(prev)
	}
	for i := 0; i < shared; i++ {
		if next[i] != prev[i] {
			return true
		}
	}
	return false
}

// Reset forgets the snapshot so the next comparison starts fresh.
func (s *ScrollSync) Reset() {
	s.prev = nil
}
