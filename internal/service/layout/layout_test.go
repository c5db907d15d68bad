package layout

import "testing"

func TestKindForTag(t *testing.T) {
	tests := []struct {
		tag  string
		want Kind
	}{
		{"centered", KindHero},
		{"hero", KindHero},
		{"title", KindHero},
		{"split_box", KindSplit},
		{"split", KindSplit},
		{"grid_4", KindGrid},
		{"grid", KindGrid},
		{"cards", KindGrid},
		{"roadmap", KindRoadmap},
		{"timeline", KindRoadmap},
		{"process", KindRoadmap},
		{"steps", KindRoadmap},
		{"comparison", KindComparison},
		{"quote", KindQuote},
		{"image_focus", KindImageFocus},
		{"two_column", KindTwoColumn},
		{"chart", KindChart},
		{"table", KindTable},
		{"standard", KindStandard},
		{"", KindStandard},
		{"bogus_layout", KindStandard},
	}
	for _, tt := range tests {
		if got := KindForTag(tt.tag); got != tt.want {
			t.Errorf("KindForTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestKindForTagNormalizesInput(t *testing.T) {
	tests := []struct {
		tag  string
		want Kind
	}{
		{"ROADMAP", KindRoadmap},
		{"  Timeline  ", KindRoadmap},
		{"Grid_4", KindGrid},
		{"QUOTE", KindQuote},
	}
	for _, tt := range tests {
		if got := KindForTag(tt.tag); got != tt.want {
			t.Errorf("KindForTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestSupportedTagsRoundTrip(t *testing.T) {
	for _, tag := range SupportedTags() {
		kind := KindForTag(tag)
		if tag != "standard" && kind == KindStandard {
			t.Errorf("supported tag %q fell through to the standard kind", tag)
		}
		if kind == KindError {
			t.Errorf("supported tag %q maps to the error kind", tag)
		}
	}
}
