package model

import (
	"strings"
	"unicode/utf8"
)

// StripColors removes Quake 3 color codes (^0-^9 and friends) from s.
// A caret followed by any character except another caret is a color code;
// the whole character is dropped, multibyte ones included.
func StripColors(s string) string {
	if !strings.Contains(s, "^") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '^' && i+1 < len(s) && s[i+1] != '^' {
			_, size := utf8.DecodeRuneInString(s[i+1:])
			i += size
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
