package theme

import (
	"sort"
	"strings"
	"testing"
)

func TestGetKnownThemes(t *testing.T) {
	for _, name := range Names() {
		th := Get(name)
		if th.Name != name {
			t.Errorf("Get(%q) returned theme %q", name, th.Name)
		}
	}
}

func TestGetNormalizesInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dialogue", "dialogue"},
		{"DIALOGUE", "dialogue"},
		{"  Alien  ", "alien"},
		{"Wine", "wine"},
		{"OCEAN", "ocean"},
	}
	for _, tt := range tests {
		if got := Get(tt.input); got.Name != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.input, got.Name, tt.want)
		}
	}
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	for _, input := range []string{"", "nope", "cyberpunk", "dark-mode"} {
		th := Get(input)
		if th.Name != DefaultName {
			t.Errorf("Get(%q) = %q, want default %q", input, th.Name, DefaultName)
		}
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != 8 {
		t.Fatalf("expected 8 themes, got %d: %v", len(names), names)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	found := false
	for _, n := range names {
		if n == DefaultName {
			found = true
		}
	}
	if !found {
		t.Errorf("default theme %q missing from Names()", DefaultName)
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{255, 255, 255}, "FFFFFF"},
		{Color{0, 0, 0}, "000000"},
		{Color{99, 102, 241}, "6366F1"},
		{Color{15, 23, 42}, "0F172A"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestHexIsUppercase(t *testing.T) {
	for _, name := range Names() {
		th := Get(name)
		for _, c := range []Color{th.Background, th.Text, th.Accent, th.Card, th.Border} {
			hex := c.Hex()
			if len(hex) != 6 {
				t.Fatalf("theme %q: hex %q has length %d", name, hex, len(hex))
			}
			if hex != strings.ToUpper(hex) {
				t.Errorf("theme %q: hex %q not uppercase", name, hex)
			}
		}
	}
}
