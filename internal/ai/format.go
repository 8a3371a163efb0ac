package ai

import "strings"

// RenderInlineMarkup converts the model's markdown-style inline emphasis
// into HTML before storage: **text** becomes <strong>text</strong> and
// *text* becomes <em>text</em>. Unpaired markers are left untouched.
func RenderInlineMarkup(s string) string {
	s = replacePaired(s, "**", "<strong>", "</strong>")
	s = replacePaired(s, "*", "<em>", "</em>")
	return s
}

func replacePaired(s, marker, open, close string) string {
	var b strings.Builder
	b.Grow(len(s))

	for {
		start := strings.Index(s, marker)
		if start < 0 {
			break
		}
		rest := s[start+len(marker):]
		end := strings.Index(rest, marker)
		if end < 0 {
			break
		}

		inner := rest[:end]
		// A marker pair around nothing (e.g. "****") is not emphasis.
		if inner == "" {
			b.WriteString(s[:start+len(marker)])
			s = rest
			continue
		}

		b.WriteString(s[:start])
		b.WriteString(open)
		b.WriteString(inner)
		b.WriteString(close)
		s = rest[end+len(marker):]
	}

	b.WriteString(s)
	return b.String()
}
