// FILE: lixenwraith/simpleconfig/format.go
package simpleconfig

import (
	"strings"
	"unicode/utf8"
)

// CommentPrefix starts every comment line written to a config file.
const CommentPrefix = "# "

// ParseLine splits one physical line into key and raw value. Everything from
// the first '#' on is dropped, so values cannot contain '#'. The value is the
// text after the first '=', with any further '=' kept. ok is false for blank,
// comment-only and key-less lines.
func ParseLine(line string) (key, value string, ok bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}

	key, value, _ = strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

// Banner renders a section title as three comment lines: a rule of '='
// matching the title's character count, the title, and the rule again.
func Banner(title string) []string {
	rule := CommentPrefix + strings.Repeat("=", utf8.RuneCountInString(title))
	return []string{rule, CommentPrefix + title, rule}
}

// Comment renders comment text as one comment line per line of text.
func Comment(text string) []string {
	segments := splitLines(text)
	lines := make([]string, len(segments))
	for i, segment := range segments {
		lines[i] = CommentPrefix + segment
	}
	return lines
}

// entryLine renders "key=value".
func entryLine(key, value string) string {
	return key + "=" + value
}
