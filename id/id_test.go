package id_test

import (
	"strings"
	"testing"

	"github.com/frenofclaw/ledger/id"
)

func TestNewEventID(t *testing.T) {
	i := id.NewEventID()
	if i.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if i.Prefix() != id.PrefixEvent {
		t.Errorf("expected prefix %q, got %q", id.PrefixEvent, i.Prefix())
	}
	if !strings.HasPrefix(i.String(), "evt_") {
		t.Errorf("expected evt_ prefix, got %q", i.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	original := id.NewEventID()
	parsed, err := id.Parse(original.String())
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(original) {
		t.Errorf("round trip: got %q, want %q", parsed, original)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Garbage", "not-a-typeid"},
		{"BadSuffix", "evt_!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := id.Parse(tt.input); err == nil {
				t.Errorf("expected error parsing %q", tt.input)
			}
		})
	}
}

func TestParseWithPrefix(t *testing.T) {
	original := id.NewEventID()

	if _, err := id.ParseWithPrefix(original.String(), id.PrefixEvent); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := id.ParseWithPrefix(original.String(), "other"); err == nil {
		t.Error("expected prefix mismatch error")
	}
}

func TestNilID(t *testing.T) {
	if !id.Nil.IsNil() {
		t.Error("Nil must be nil")
	}
	if id.Nil.String() != "" {
		t.Errorf("Nil.String: got %q", id.Nil.String())
	}
	if !id.Nil.Equal(id.Nil) {
		t.Error("Nil must equal Nil")
	}
	if id.Nil.Equal(id.NewEventID()) {
		t.Error("Nil must not equal a real ID")
	}
}

func TestUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		s := id.NewEventID().String()
		if seen[s] {
			t.Fatalf("duplicate ID generated: %s", s)
		}
		seen[s] = true
	}
}

func TestTextRoundTrip(t *testing.T) {
	original := id.NewEventID()
	text, err := original.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var decoded id.ID
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if !decoded.Equal(original) {
		t.Errorf("round trip: got %q, want %q", decoded, original)
	}

	var empty id.ID
	if err := empty.UnmarshalText(nil); err != nil {
		t.Fatal(err)
	}
	if !empty.IsNil() {
		t.Error("unmarshal of empty text must yield Nil")
	}
}
