package layout

import (
	"strings"
)

// Record is one slide's input: title, raw body text, the layout tag
// selecting a builder, and an optional image URL. The tag is never
// validated upstream; unknown values route to the standard builder.
type Record struct {
	Title   string
	Content string
	Layout  string
	Image   string
}

// Kind identifies one builder family. Several tags are synonyms for
// the same kind.
type Kind int

const (
	KindStandard Kind = iota
	KindHero
	KindSplit
	KindGrid
	KindRoadmap
	KindComparison
	KindQuote
	KindImageFocus
	KindTwoColumn
	KindChart
	KindTable
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindSplit:
		return "split"
	case KindGrid:
		return "grid"
	case KindRoadmap:
		return "roadmap"
	case KindComparison:
		return "comparison"
	case KindQuote:
		return "quote"
	case KindImageFocus:
		return "image_focus"
	case KindTwoColumn:
		return "two_column"
	case KindChart:
		return "chart"
	case KindTable:
		return "table"
	case KindError:
		return "error"
	default:
		return "standard"
	}
}

// KindForTag maps a layout tag onto a builder kind. This is a total
// function: any unrecognized tag resolves to the standard kind.
func KindForTag(tag string) Kind {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "centered", "hero", "title":
		return KindHero
	case "split_box", "split":
		return KindSplit
	case "grid_4", "grid", "cards":
		return KindGrid
	case "roadmap", "timeline", "process", "steps":
		return KindRoadmap
	case "comparison":
		return KindComparison
	case "quote":
		return KindQuote
	case "image_focus":
		return KindImageFocus
	case "two_column":
		return KindTwoColumn
	case "chart":
		return KindChart
	case "table":
		return KindTable
	default:
		return KindStandard
	}
}

// SupportedTags lists every tag the dispatcher recognizes.
func SupportedTags() []string {
	return []string{
		"centered", "hero", "title",
		"split_box", "split",
		"grid_4", "grid", "cards",
		"roadmap", "timeline", "process", "steps",
		"comparison", "quote",
		"image_focus", "two_column",
		"chart", "table",
		"standard",
	}
}
