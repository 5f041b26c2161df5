package ui

import (
	"encoding/base64"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/parley-sh/parley/internal/errors"
	"github.com/parley-sh/parley/internal/logger"
)

// Item is one offered payload from a paste or drop event.
type Item struct {
	MIME string
	Data []byte
}

// StagedImage is a fully decoded attachment ready to send.
type StagedImage struct {
	DataURI   string
	MediaType string
	SizeKB    int
}

// StagedMsg reports the outcome of an async decode.
type StagedMsg struct {
	Gen int
	Img StagedImage
	Err error
}

// Staging holds at most one pending attachment. Staging a new image
// replaces whatever was there; the generation counter makes sure a slow
// decode cannot resurrect a replaced or removed attachment.
type Staging struct {
	gen     int
	pending *StagedImage
}

// Stage picks the first image item from the offered set and starts its
// decode. Returns nil when no item is an image; the caller should let
// the event fall through to text handling.
func (s *Staging) Stage(items []Item) tea.Cmd {
	var img *Item
	for i := range items {
		if strings.HasPrefix(items[i].MIME, "image/") {
			img = &items[i]
			break
		}
	}
	if img == nil {
		return nil
	}

	s.gen++
	gen := s.gen
	mime := img.MIME
	data := img.Data

	logger.Debug("Staging: decoding %d bytes of %s (gen %d)", len(data), mime, gen)

	return func() tea.Msg {
		if len(data) == 0 {
			return StagedMsg{Gen: gen, Err: errors.NotAnImage(mime)}
		}
		return StagedMsg{
			Gen: gen,
			Img: StagedImage{
				DataURI:   EncodeDataURI(mime, data),
				MediaType: mime,
				SizeKB:    len(data) / 1024,
			},
		}
	}
}

// Complete applies a finished decode. Stale completions, from a decode
// that was superseded before it finished, are discarded. Returns true
// when the attachment changed.
func (s *Staging) Complete(msg StagedMsg) bool {
	if msg.Gen != s.gen {
		logger.Debug("Staging: discarding stale decode (gen %d, current %d)", msg.Gen, s.gen)
		return false
	}
	if msg.Err != nil {
		logger.Warn("Staging: decode failed: %v", msg.Err)
		return false
	}

	img := msg.Img
	s.pending = &img
	logger.Debug("Staging: attached %s (%dKB)", img.MediaType, img.SizeKB)
	return true
}

// Remove discards the pending attachment and invalidates any decode
// still in flight.
func (s *Staging) Remove() {
	s.gen++
	s.pending = nil
}

// Pending returns the staged attachment, or nil.
func (s *Staging) Pending() *StagedImage {
	return s.pending
}

// EncodeDataURI packs raw bytes into a data: URI with the given MIME type.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
