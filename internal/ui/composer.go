package ui

import "strings"

// OutgoingKind distinguishes the two shapes a composed message can take.
type OutgoingKind int

const (
	// OutgoingText is a plain text message.
	OutgoingText OutgoingKind = iota

	// OutgoingImage is a staged image with an optional caption.
	OutgoingImage
)

// Outgoing is a composed message ready for the transport.
type Outgoing struct {
	Kind    OutgoingKind
	Text    string // OutgoingText: the input exactly as typed
	DataURI string // OutgoingImage: the staged attachment
	Caption string // OutgoingImage: trimmed caption, empty when absent
}

// Dispatch decides what, if anything, the composer sends. When an image
// is staged it wins: the input becomes a trimmed caption and an empty
// caption means image-only. With no image, the input is sent exactly as
// typed; whitespace-only input is a no-op, as is any send while input
// is not permitted.
//
// Dispatch itself never clears the input. The caller clears it after a
// successful send, along with the staged attachment for image sends.
func Dispatch(input string, pending *StagedImage, permitted bool) (Outgoing, bool) {
	if !permitted {
		return Outgoing{}, false
	}

	if pending != nil {
		return Outgoing{
			Kind:    OutgoingImage,
			DataURI: pending.DataURI,
			Caption: strings.TrimSpace(input),
		}, true
	}

	if strings.TrimSpace(input) == "" {
		return Outgoing{}, false
	}

	return Outgoing{Kind: OutgoingText, Text: input}, true
}
