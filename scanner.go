package json

import (
	"encoding/binary"
	"math/bits"
)

// Scanner primitives per spec §4.1: skip whitespace, skip digits, and
// skip to the next string terminator. Each has a scalar byte-loop
// implementation and an SWAR ("SIMD within a register") implementation
// that processes 16 bytes (two uint64 loads) per iteration, matching
// the byte against a small character set the way
// other_examples/...shapestone-shape-core__pkg-tokenizer-swar.go.go
// does for a single target byte — generalized here to match against
// several target bytes at once. Both variants must agree byte-for-byte;
// scanner_test.go checks this directly against random inputs.
//
// Neither variant reads past len(data): the chunked path only runs
// while at least 16 bytes remain, and the remainder always finishes
// on the scalar loop. This is the
// "bounded-read primitive" spec §9 anticipates in place of requiring
// the caller to pad the input.
const (
	lsb  uint64 = 0x0101010101010101
	msb  uint64 = 0x8080808080808080
	low7 uint64 = 0x7F7F7F7F7F7F7F7F
)

func broadcast(b byte) uint64 {
	return lsb * uint64(b)
}

// hasZeroByte sets the MSB of each byte lane of x that is exactly
// zero, and clears the rest. Adding 0x7F to each lane's low seven
// bits never carries into the next lane, so every lane is judged on
// its own bits only (no false positives above a zero lane).
func hasZeroByte(x uint64) uint64 {
	y := (x & low7) + low7
	return ^(y | x | low7)
}

func matchByte(chunk uint64, b byte) uint64 {
	return hasZeroByte(chunk ^ broadcast(b))
}

// matchAny ORs together a per-lane "equals one of targets" mask. Since
// each matchByte result only ever sets the MSB of a lane, ORing several
// together is safe: a lane's bit ends up set if ANY target matched it.
func matchAny(chunk uint64, targets []byte) uint64 {
	var m uint64
	for _, b := range targets {
		m |= matchByte(chunk, b)
	}
	return m
}

var whitespaceBytes = []byte{' ', '\t', '\r', '\n'}
var digitBytes = []byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// skipWhileScalar returns the index of the first byte in data[pos:] for
// which in reports false, scanning one byte at a time.
func skipWhileScalar(data []byte, pos int, in func(byte) bool) int {
	for pos < len(data) && in(data[pos]) {
		pos++
	}
	return pos
}

// skipWhileSWAR returns the index of the first byte in data[pos:] not
// present in targets, using 16-byte SWAR chunks while enough input
// remains and falling back to the scalar loop for the tail.
func skipWhileSWAR(data []byte, pos int, targets []byte, in func(byte) bool) int {
	for pos+16 <= len(data) {
		c0 := binary.LittleEndian.Uint64(data[pos:])
		c1 := binary.LittleEndian.Uint64(data[pos+8:])
		m0 := matchAny(c0, targets)
		notMatch0 := msb &^ m0
		if notMatch0 != 0 {
			return pos + bits.TrailingZeros64(notMatch0)/8
		}
		m1 := matchAny(c1, targets)
		notMatch1 := msb &^ m1
		if notMatch1 != 0 {
			return pos + 8 + bits.TrailingZeros64(notMatch1)/8
		}
		pos += 16
	}
	return skipWhileScalar(data, pos, in)
}

// skipUntilScalar returns the index of the first byte in data[pos:]
// for which in reports true, scanning one byte at a time.
func skipUntilScalar(data []byte, pos int, in func(byte) bool) int {
	for pos < len(data) && !in(data[pos]) {
		pos++
	}
	return pos
}

// skipUntilSWAR returns the index of the first byte in data[pos:]
// present in targets, using 16-byte SWAR chunks while enough input
// remains and falling back to the scalar loop for the tail.
func skipUntilSWAR(data []byte, pos int, targets []byte, in func(byte) bool) int {
	for pos+16 <= len(data) {
		c0 := binary.LittleEndian.Uint64(data[pos:])
		m0 := matchAny(c0, targets)
		if m0 != 0 {
			return pos + bits.TrailingZeros64(m0)/8
		}
		c1 := binary.LittleEndian.Uint64(data[pos+8:])
		m1 := matchAny(c1, targets)
		if m1 != 0 {
			return pos + 8 + bits.TrailingZeros64(m1)/8
		}
		pos += 16
	}
	return skipUntilScalar(data, pos, in)
}

// skipWhitespace advances past ' ', '\t', '\r', '\n'.
func skipWhitespace(data []byte, pos int) int {
	return skipWhileSWAR(data, pos, whitespaceBytes, isWhitespace)
}

func skipWhitespaceScalar(data []byte, pos int) int {
	return skipWhileScalar(data, pos, isWhitespace)
}

// skipDigits advances past '0'-'9'.
func skipDigits(data []byte, pos int) int {
	return skipWhileSWAR(data, pos, digitBytes, isDigit)
}

func skipDigitsScalar(data []byte, pos int) int {
	return skipWhileScalar(data, pos, isDigit)
}

var stringTerminatorBytes = []byte{'"', '\\', 0}

func isStringTerminator(c byte) bool {
	return c == '"' || c == '\\' || c == 0
}

// skipToStringTerminator advances to the next unescaped '"' or a NUL
// byte (or to a backslash that is the last byte of data), reporting
// whether any backslash was seen along the way. It does not interpret
// escapes beyond skipping the two bytes of
// "\X" (including "\u", whose four hex digits are plain bytes to this
// scan and are walked over on the next iteration).
func skipToStringTerminator(data []byte, pos int) (next int, sawEscape bool) {
	for {
		pos = skipUntilSWAR(data, pos, stringTerminatorBytes, isStringTerminator)
		if pos >= len(data) || data[pos] != '\\' || pos+1 >= len(data) {
			return pos, sawEscape
		}
		sawEscape = true
		pos += 2
	}
}

func skipToStringTerminatorScalar(data []byte, pos int) (next int, sawEscape bool) {
	for {
		pos = skipUntilScalar(data, pos, isStringTerminator)
		if pos >= len(data) || data[pos] != '\\' || pos+1 >= len(data) {
			return pos, sawEscape
		}
		sawEscape = true
		pos += 2
	}
}
