package transcript

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		tag      string
		expected Kind
	}{
		{"message", KindMessage},
		{"breadcrumb", KindBreadcrumb},
		{"hologram", KindUnrecognized},
		{"", KindUnrecognized},
		{"MESSAGE", KindUnrecognized}, // tags are case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ParseKind(tt.tag); got != tt.expected {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestStripAnnotationBrackets(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
		stripped bool
	}{
		{"fully wrapped", "[session started]", "session started", true},
		{"plain title", "hello there", "hello there", false},
		{"leading only", "[partial", "[partial", false},
		{"trailing only", "partial]", "partial]", false},
		{"empty brackets", "[]", "", true},
		{"empty string", "", "", false},
		{"single char", "[", "[", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StripAnnotationBrackets(tt.title)
			if got != tt.expected || ok != tt.stripped {
				t.Errorf("StripAnnotationBrackets(%q) = (%q, %v), want (%q, %v)",
					tt.title, got, ok, tt.expected, tt.stripped)
			}
		})
	}
}

func TestPayload_Equal(t *testing.T) {
	a := Payload(`{"x":1}`)
	b := Payload(`{"x":1}`)
	c := Payload(`{"x":2}`)

	if !a.Equal(b) {
		t.Error("byte-equal payloads should be Equal")
	}
	if a.Equal(c) {
		t.Error("different payloads should not be Equal")
	}
	if !Payload(nil).Equal(Payload{}) {
		t.Error("nil and empty payloads should be Equal")
	}
}

func TestPayload_Indented(t *testing.T) {
	p := Payload(`{"b":2,"a":1}`)
	got := p.Indented("  ")

	want := "  {\n    \"a\": 1,\n    \"b\": 2\n  }"
	if got != want {
		t.Errorf("Indented() = %q, want %q", got, want)
	}
}

func TestPayload_Indented_Invalid(t *testing.T) {
	p := Payload("not json")
	if got := p.Indented(""); got != "not json" {
		t.Errorf("Indented() on invalid JSON = %q, want original text", got)
	}
}

func TestPayload_Empty(t *testing.T) {
	if !Payload(nil).Empty() {
		t.Error("nil payload should be Empty")
	}
	if Payload(`{}`).Empty() {
		t.Error("non-empty payload should not be Empty")
	}
	if got := Payload(nil).Indented("  "); got != "" {
		t.Errorf("Indented() on empty payload = %q, want empty", got)
	}
}
