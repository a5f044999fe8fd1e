package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// scanQuoted scans a double-quoted string starting at d[0] == '"'. It
// returns the token length including both quotes and the number of
// backslash escapes inside it. Raw control bytes below 0x20 are
// rejected; escapes are validated against escTable.
func scanQuoted(d []byte) (int, int, error) {
	i := 1
	escapes := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, escapes, nil
		case c == '\\':
			if i+1 >= len(d) {
				return i, escapes, ErrUnterminated
			}
			e := d[i+1]
			if e >= 0x80 || !escTable[e] {
				return i, escapes, ErrBadEscape
			}
			escapes++
			i += 2
			if e == 'u' {
				if i+4 > len(d) {
					return i, escapes, ErrUnterminated
				}
				if !allHex(d[i : i+4]) {
					return i, escapes, ErrBadUnicode
				}
				i += 4
			}
		case c < 0x20:
			return i, escapes, ErrUnicodeControl
		default:
			i++
		}
	}
	return i, escapes, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// Unescape decodes the backslash escapes of a string body, the bytes
// between the quotes of an already scanned token. \uXXXX escapes become
// the UTF-8 encoding of the code point. Each \uXXXX decodes on its own;
// surrogate pairs are not combined, so each half encodes as U+FFFD.
func Unescape(d []byte) string {
	b := &strings.Builder{}
	b.Grow(len(d))
	i := 0
	for i < len(d) {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		switch d[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			dst := []byte{0, 0}
			hex.Decode(dst, d[i+1:i+5])
			r := rune(dst[0])<<8 | rune(dst[1])
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			b.Write(buf[:n])
			i += 4
		}
		i++
	}
	return b.String()
}
