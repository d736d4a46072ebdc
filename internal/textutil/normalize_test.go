package textutil

import "testing"

func TestNormalizeStripsDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"München", "munchen"},
		{"Munchen", "munchen"},
		{"San José", "san jose"},
		{"ROMA", "roma"},
		{"Győr", "gyor"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"München", "Köln", "plain ascii", "São Paulo"}
	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestHasAccent(t *testing.T) {
	if !HasAccent("San José") {
		t.Error("expected accent in San José")
	}
	if HasAccent("San Jose") {
		t.Error("did not expect accent in San Jose")
	}
}
