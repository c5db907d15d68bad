package content

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	itemPrefixRe = regexp.MustCompile(`^[\s]*(?:\d+[.)]\s*|[-*•#]+\s*)`)
)

// Clean normalizes raw slide body text for rendering. It strips
// HTML-like tags and markdown emphasis, turns hyphen and asterisk
// bullet markers into a bullet glyph, normalizes line endings, and
// drops blank lines with each remaining line trimmed.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	s := htmlTagRe.ReplaceAllString(raw, "")

	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "*", "•")
	s = strings.ReplaceAll(s, "- ", "• ")

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// ExtractItems splits raw text into discrete points, one per non-empty
// line, with leading numbering, bullet, and hash markers removed.
// Empty input yields an empty slice, never an error.
func ExtractItems(raw string) []string {
	items := []string{}
	if raw == "" {
		return items
	}

	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	for _, line := range strings.Split(s, "\n") {
		line = itemPrefixRe.ReplaceAllString(line, "")
		line = strings.ReplaceAll(line, "*", "")
		line = strings.ReplaceAll(line, "#", "")
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
