package spritetext

import (
	"strings"
	"unicode/utf8"
)

// WrapText wraps text at word boundaries so each line fits within maxWidth
// when drawn with cellWidth cells. Words longer than a line are split at
// rune boundaries. Returns a slice of lines.
func (l *Layout) WrapText(text string, maxWidth, cellWidth float32) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	perLine := l.fitRunes(maxWidth, cellWidth)
	if perLine < 1 {
		perLine = 1
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)

		// Split words that can never fit on one line
		for wordLen > perLine {
			flush()
			head, tail := splitRunes(word, perLine)
			lines = append(lines, head)
			word = tail
			wordLen -= perLine
		}

		need := wordLen
		if currentLen > 0 {
			need++ // separating space
		}
		if currentLen+need > perLine {
			flush()
			need = wordLen
		}
		if currentLen > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
		currentLen += need
	}
	flush()

	return lines
}

// TruncateText shortens text to fit within maxWidth, ending it with suffix
// when anything was cut. If even the suffix does not fit, the result is "".
func (l *Layout) TruncateText(text string, maxWidth, cellWidth float32, suffix string) string {
	fit := l.fitRunes(maxWidth, cellWidth)
	n := utf8.RuneCountInString(text)
	if n <= fit {
		return text
	}

	suffixLen := utf8.RuneCountInString(suffix)
	if suffixLen > fit {
		return ""
	}
	head, _ := splitRunes(text, fit-suffixLen)
	return head + suffix
}

// fitRunes returns how many glyphs fit in width. The last glyph needs only
// its cell, not the spacing after it.
func (l *Layout) fitRunes(width, cellWidth float32) int {
	advance := l.Advance(cellWidth)
	if advance <= 0 || width < cellWidth {
		return 0
	}
	return 1 + int((width-cellWidth)/advance)
}

// splitRunes splits s after n runes.
func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
