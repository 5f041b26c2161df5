package ui

import (
	"strings"
	"testing"
)

func TestStaging_SelectsFirstImageItem(t *testing.T) {
	var s Staging
	cmd := s.Stage([]Item{
		{MIME: "text/plain", Data: []byte("nope")},
		{MIME: "image/png", Data: []byte{1, 2, 3}},
		{MIME: "image/jpeg", Data: []byte{4, 5, 6}},
	})
	if cmd == nil {
		t.Fatal("Stage should start a decode when an image item is offered")
	}

	msg, ok := cmd().(StagedMsg)
	if !ok {
		t.Fatal("decode should produce a StagedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("decode error = %v", msg.Err)
	}
	if msg.Img.MediaType != "image/png" {
		t.Errorf("media type = %q, want the first image item", msg.Img.MediaType)
	}
}

func TestStaging_NoImageItems(t *testing.T) {
	var s Staging
	cmd := s.Stage([]Item{{MIME: "text/plain", Data: []byte("just text")}})
	if cmd != nil {
		t.Error("Stage should return nil when nothing is an image")
	}
	if s.Pending() != nil {
		t.Error("nothing should be staged")
	}
}

func TestStaging_CompleteAttaches(t *testing.T) {
	var s Staging
	cmd := s.Stage([]Item{{MIME: "image/png", Data: []byte{1, 2, 3}}})

	msg := cmd().(StagedMsg)
	if !s.Complete(msg) {
		t.Fatal("Complete should accept a current-generation decode")
	}

	p := s.Pending()
	if p == nil {
		t.Fatal("attachment should be pending after Complete")
	}
	if !strings.HasPrefix(p.DataURI, "data:image/png;base64,") {
		t.Errorf("data URI = %q", p.DataURI)
	}
}

func TestStaging_LastStagedWins(t *testing.T) {
	var s Staging
	firstCmd := s.Stage([]Item{{MIME: "image/png", Data: []byte{1}}})
	firstMsg := firstCmd().(StagedMsg)

	secondCmd := s.Stage([]Item{{MIME: "image/jpeg", Data: []byte{2}}})
	secondMsg := secondCmd().(StagedMsg)

	// The slow first decode finishes after the second was staged
	if s.Complete(firstMsg) {
		t.Error("a superseded decode should be discarded")
	}
	if !s.Complete(secondMsg) {
		t.Error("the latest decode should attach")
	}
	if s.Pending().MediaType != "image/jpeg" {
		t.Errorf("pending = %q, want the last staged image", s.Pending().MediaType)
	}
}

func TestStaging_RemoveInvalidatesInFlight(t *testing.T) {
	var s Staging
	cmd := s.Stage([]Item{{MIME: "image/png", Data: []byte{1}}})
	msg := cmd().(StagedMsg)

	s.Remove()
	if s.Complete(msg) {
		t.Error("a decode staged before Remove should not resurrect the attachment")
	}
	if s.Pending() != nil {
		t.Error("nothing should be pending after Remove")
	}
}

func TestStaging_AtMostOnePending(t *testing.T) {
	var s Staging
	first := s.Stage([]Item{{MIME: "image/png", Data: []byte{1}}})
	s.Complete(first().(StagedMsg))

	second := s.Stage([]Item{{MIME: "image/gif", Data: []byte{2}}})
	s.Complete(second().(StagedMsg))

	if s.Pending().MediaType != "image/gif" {
		t.Error("staging a second image should replace the first")
	}
}

func TestStaging_EmptyDataFails(t *testing.T) {
	var s Staging
	cmd := s.Stage([]Item{{MIME: "image/png"}})
	msg := cmd().(StagedMsg)
	if msg.Err == nil {
		t.Error("empty image data should fail to decode")
	}
	if s.Complete(msg) {
		t.Error("a failed decode should not attach")
	}
}

func TestEncodeDataURI(t *testing.T) {
	got := EncodeDataURI("image/png", []byte{0x89, 0x50})
	want := "data:image/png;base64,iVA="
	if got != want {
		t.Errorf("EncodeDataURI() = %q, want %q", got, want)
	}
}
