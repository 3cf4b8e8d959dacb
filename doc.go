// Package json is an in-memory codec for JSON documents, built around a
// tagged value tree whose strings and numbers can borrow from the input
// buffer instead of being copied and converted up front.
//
// Decoding produces a Document wrapping a Value tree. Strings may point
// directly into the byte slice passed to Parse; callers must keep that
// slice alive and unmodified for as long as the Document is in use.
// Numbers may be left as an unconverted raw-number until something
// actually asks for their value, and conversion is cached on the Value
// itself so it only happens once.
//
// Encoding goes the other way: an EncodeContext is a depth-tracked
// state machine that a caller drives with a sequence of Begin/End
// Array/Object and Append calls, producing well-formed JSON into a
// buffer it grows as needed.
//
// Both a DecodeContext and an EncodeContext are meant for single
// goroutine use; callers needing concurrency should give each goroutine
// its own context.
package json
