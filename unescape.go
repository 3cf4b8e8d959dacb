package json

import (
	"unicode/utf8"
	"unsafe"
)

// unescapeInPlace resolves the backslash escapes in buf, writing the
// decoded UTF-8 bytes starting at the front of buf and returning the
// number of bytes written. Per spec §4.3/invariant: the write cursor
// never gets ahead of the read cursor, so every multi-byte UTF-8
// sequence emitted by a \uXXXX (or surrogate pair) escape fits in the
// space already consumed — the result is always the same length or
// shorter than the input.
func unescapeInPlace(buf []byte) (int, bool) {
	r, w := 0, 0
	for r < len(buf) {
		c := buf[r]
		if c != '\\' {
			buf[w] = c
			r++
			w++
			continue
		}
		if r+1 >= len(buf) {
			return 0, false
		}
		switch buf[r+1] {
		case 'b':
			buf[w] = '\b'
			r += 2
			w++
		case 'f':
			buf[w] = '\f'
			r += 2
			w++
		case 'n':
			buf[w] = '\n'
			r += 2
			w++
		case 'r':
			buf[w] = '\r'
			r += 2
			w++
		case 't':
			buf[w] = '\t'
			r += 2
			w++
		case 'u':
			n, consumed, ok := decodeUnicodeEscape(buf[r:])
			if !ok {
				return 0, false
			}
			w += utf8.EncodeRune(buf[w:w+4], n)
			r += consumed
		default:
			buf[w] = buf[r+1]
			r += 2
			w++
		}
	}
	return w, true
}

// decodeUnicodeEscape decodes a \uXXXX escape (and, for a high
// surrogate, the \uYYYY low surrogate that must follow it) from the
// front of in, which begins with "\u". It returns the decoded rune and
// how many input bytes it consumed.
func decodeUnicodeEscape(in []byte) (r rune, consumed int, ok bool) {
	if len(in) < 6 {
		return 0, 0, false
	}
	code, ok := hex4(in[2:6])
	if !ok {
		return 0, 0, false
	}
	if code < 0xD800 || code > 0xDFFF {
		return rune(code), 6, true
	}
	if code > 0xDBFF {
		return 0, 0, false // unpaired low surrogate
	}
	if len(in) < 12 || in[6] != '\\' || in[7] != 'u' {
		return 0, 0, false
	}
	low, ok := hex4(in[8:12])
	if !ok || low < 0xDC00 || low > 0xDFFF {
		return 0, 0, false
	}
	cp := (rune(code-0xD800)<<10 | rune(low-0xDC00)) + 0x10000
	return cp, 12, true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

func hex4(b []byte) (uint32, bool) {
	var v uint32
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(b[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint32(d)
	}
	return v, true
}

// unescapeString unescapes raw (which must not include the surrounding
// quotes) in place and returns the result as a string that aliases
// raw's backing array — no copy, the same zero-copy string/byte
// aliasing axiomhq-fsst's table.go uses via
// unsafe.Slice(unsafe.StringData(s), len(s)) for the opposite
// direction.
func unescapeString(raw []byte) (string, bool) {
	n, ok := unescapeInPlace(raw)
	if !ok {
		return "", false
	}
	if n == 0 {
		return "", true
	}
	return unsafe.String(&raw[0], n), true
}
