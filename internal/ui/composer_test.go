package ui

import "testing"

func TestDispatch_NotPermitted(t *testing.T) {
	img := &StagedImage{DataURI: "data:image/png;base64,AAAA"}
	if _, ok := Dispatch("hello", img, false); ok {
		t.Error("nothing should send while input is not permitted")
	}
}

func TestDispatch_EmptyInputNoImage(t *testing.T) {
	tests := []string{"", "   ", "\n\t  \n"}
	for _, input := range tests {
		if _, ok := Dispatch(input, nil, true); ok {
			t.Errorf("Dispatch(%q) with no image should be a no-op", input)
		}
	}
}

func TestDispatch_TextSentUntrimmed(t *testing.T) {
	input := "  keep my spaces  \n"
	out, ok := Dispatch(input, nil, true)
	if !ok {
		t.Fatal("non-blank text should send")
	}
	if out.Kind != OutgoingText {
		t.Errorf("kind = %v, want OutgoingText", out.Kind)
	}
	if out.Text != input {
		t.Errorf("text = %q, should be exactly as typed", out.Text)
	}
}

func TestDispatch_ImageWithCaption(t *testing.T) {
	img := &StagedImage{DataURI: "data:image/png;base64,AAAA"}
	out, ok := Dispatch("  a caption  ", img, true)
	if !ok {
		t.Fatal("image send should proceed")
	}
	if out.Kind != OutgoingImage {
		t.Errorf("kind = %v, want OutgoingImage", out.Kind)
	}
	if out.DataURI != img.DataURI {
		t.Errorf("data URI = %q", out.DataURI)
	}
	if out.Caption != "a caption" {
		t.Errorf("caption = %q, should be trimmed", out.Caption)
	}
}

func TestDispatch_ImageWhitespaceCaptionMeansNone(t *testing.T) {
	img := &StagedImage{DataURI: "data:image/png;base64,AAAA"}
	out, ok := Dispatch("   \n ", img, true)
	if !ok {
		t.Fatal("an image with no caption still sends")
	}
	if out.Caption != "" {
		t.Errorf("caption = %q, whitespace-only input means no caption", out.Caption)
	}
}

func TestDispatch_ImageWinsOverText(t *testing.T) {
	img := &StagedImage{DataURI: "data:image/png;base64,AAAA"}
	out, _ := Dispatch("words", img, true)
	if out.Kind != OutgoingImage {
		t.Error("a staged image takes the image branch even with text present")
	}
	if out.Text != "" {
		t.Errorf("image sends carry a caption, not text, got %q", out.Text)
	}
}
