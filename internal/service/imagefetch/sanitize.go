package imagefetch

import (
	"strings"
)

// Characters left untouched when encoding a full URL. Covers the
// delimiters that keep scheme, host, path and query intact.
const urlSafe = ":/?#[]@!$&'()*+,;="

// SanitizeURL percent-encodes a raw image URL that may contain spaces
// or unescaped query characters. When the URL carries a free-text
// "prompt/" path segment, only that segment is encoded, so the rest of
// the URL keeps its delimiters. Already-clean URLs pass through
// unchanged.
func SanitizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, " &=?") {
		return raw
	}

	if idx := strings.LastIndex(raw, "prompt/"); idx >= 0 {
		base := raw[:idx+len("prompt/")]
		return base + escapeAll(raw[idx+len("prompt/"):])
	}
	return escapeKeepingDelims(raw)
}

// escapeAll percent-encodes every byte except unreserved characters.
func escapeAll(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(hexDigit(c >> 4))
			b.WriteByte(hexDigit(c & 0x0F))
		}
	}
	return b.String()
}

// escapeKeepingDelims percent-encodes bytes that are neither
// unreserved nor URL delimiters, leaving the URL structure alone.
func escapeKeepingDelims(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(urlSafe, c) >= 0 {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(hexDigit(c >> 4))
			b.WriteByte(hexDigit(c & 0x0F))
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func hexDigit(v byte) byte {
	return "0123456789ABCDEF"[v&0x0F]
}
