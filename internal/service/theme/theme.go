package theme

import (
	"sort"
	"strings"
)

// Color is an opaque sRGB triple.
type Color struct {
	R, G, B uint8
}

// Hex renders the color as an uppercase RRGGBB string, the form
// DrawingML expects in a:srgbClr val attributes.
func (c Color) Hex() string {
	const digits = "0123456789ABCDEF"
	b := make([]byte, 6)
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[i*2] = digits[v>>4]
		b[i*2+1] = digits[v&0x0F]
	}
	return string(b)
}

// Theme is a named palette. Every slot is always populated, so
// builders never have to check for a missing color.
type Theme struct {
	Name        string
	Display     string
	Background  Color
	Text        Color
	Accent      Color
	AccentLight Color
	Card        Color
	Border      Color
	Success     Color
	Warning     Color
	Error       Color
}

// DefaultName is the theme used when a requested name is unknown.
const DefaultName = "dialogue"

var registry = map[string]Theme{
	"dialogue": {
		Name:        "dialogue",
		Display:     "Dialogue",
		Background:  Color{255, 255, 255},
		Text:        Color{0, 0, 0},
		Accent:      Color{99, 102, 241},
		AccentLight: Color{165, 180, 252},
		Card:        Color{245, 247, 250},
		Border:      Color{226, 232, 240},
		Success:     Color{34, 197, 94},
		Warning:     Color{251, 191, 36},
		Error:       Color{239, 68, 68},
	},
	"alien": {
		Name:        "alien",
		Display:     "Alien Dark",
		Background:  Color{15, 23, 42},
		Text:        Color{255, 255, 255},
		Accent:      Color{34, 211, 238},
		AccentLight: Color{103, 232, 249},
		Card:        Color{30, 41, 59},
		Border:      Color{51, 65, 85},
		Success:     Color{52, 211, 153},
		Warning:     Color{250, 204, 21},
		Error:       Color{248, 113, 113},
	},
	"wine": {
		Name:        "wine",
		Display:     "Wine Elegance",
		Background:  Color{76, 29, 51},
		Text:        Color{255, 255, 255},
		Accent:      Color{244, 114, 182},
		AccentLight: Color{249, 168, 212},
		Card:        Color{100, 40, 70},
		Border:      Color{157, 23, 77},
		Success:     Color{167, 243, 208},
		Warning:     Color{253, 224, 71},
		Error:       Color{252, 165, 165},
	},
	"business": {
		Name:        "business",
		Display:     "Business Professional",
		Background:  Color{255, 255, 255},
		Text:        Color{15, 23, 42},
		Accent:      Color{37, 99, 235},
		AccentLight: Color{147, 197, 253},
		Card:        Color{241, 245, 249},
		Border:      Color{203, 213, 225},
		Success:     Color{16, 185, 129},
		Warning:     Color{245, 158, 11},
		Error:       Color{220, 38, 38},
	},
	"ocean": {
		Name:        "ocean",
		Display:     "Ocean Breeze",
		Background:  Color{240, 249, 255},
		Text:        Color{12, 74, 110},
		Accent:      Color{14, 165, 233},
		AccentLight: Color{125, 211, 252},
		Card:        Color{224, 242, 254},
		Border:      Color{186, 230, 253},
		Success:     Color{6, 182, 212},
		Warning:     Color{251, 146, 60},
		Error:       Color{239, 68, 68},
	},
	"forest": {
		Name:        "forest",
		Display:     "Forest Green",
		Background:  Color{236, 253, 245},
		Text:        Color{6, 78, 59},
		Accent:      Color{5, 150, 105},
		AccentLight: Color{110, 231, 183},
		Card:        Color{209, 250, 229},
		Border:      Color{167, 243, 208},
		Success:     Color{34, 197, 94},
		Warning:     Color{234, 179, 8},
		Error:       Color{220, 38, 38},
	},
	"sunset": {
		Name:        "sunset",
		Display:     "Sunset Orange",
		Background:  Color{255, 247, 237},
		Text:        Color{124, 45, 18},
		Accent:      Color{249, 115, 22},
		AccentLight: Color{251, 146, 60},
		Card:        Color{254, 215, 170},
		Border:      Color{253, 186, 116},
		Success:     Color{132, 204, 22},
		Warning:     Color{234, 179, 8},
		Error:       Color{239, 68, 68},
	},
	"midnight": {
		Name:        "midnight",
		Display:     "Midnight Purple",
		Background:  Color{24, 24, 27},
		Text:        Color{250, 250, 250},
		Accent:      Color{168, 85, 247},
		AccentLight: Color{196, 181, 253},
		Card:        Color{39, 39, 42},
		Border:      Color{63, 63, 70},
		Success:     Color{134, 239, 172},
		Warning:     Color{250, 204, 21},
		Error:       Color{248, 113, 113},
	},
}

// Get resolves a theme by name, case-insensitively with surrounding
// whitespace ignored. Unknown or empty names fall back to the default
// theme rather than failing.
func Get(name string) Theme {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := registry[key]; ok {
		return t
	}
	return registry[DefaultName]
}

// Names returns the registered theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
