package share

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s for use inside a URL query value, the
// way browsers' encodeURIComponent does: letters, digits and -_.!~*'() are
// kept, every other UTF-8 byte becomes %XX. Unlike url.QueryEscape, a space
// is %20 rather than '+', which messaging apps and mail clients expect.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
