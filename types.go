package json

// Type identifies the kind of value held by a Value.
type Type int

// The possible kinds of a JSON value. numRaw is never observed through
// the public API: any accessor or Type() call on a value still carrying
// it triggers conversion to Integer or Number first.
const (
	Null Type = iota
	Number
	Integer
	String
	Boolean
	Array
	Object
	numRaw
	numTypes
	typeUnknown Type = -1
)

var typeStrings = [numTypes]string{
	"<null>",
	"<number>",
	"<integer>",
	"<string>",
	"<boolean>",
	"<array>",
	"<object>",
	"<numraw>",
}

// String returns a human-readable name for t, or "<unknown>" if t isn't
// one of the defined constants.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "<unknown>"
	}
	return typeStrings[t]
}

// flag holds the independent per-value bits described in spec §3: a
// string value may be separately-owned, may still carry unresolved
// backslash escapes, or (for objects) may have had its pair array
// sorted for binary search.
type flag uint8

const (
	flagNone    flag = 0
	flagAlloc   flag = 1 << 0
	flagEscapes flag = 1 << 1
	flagSort    flag = 1 << 2
)

// numLit is the three-slice view of an unconverted number literal: the
// integer part (which may carry a leading sign), the fraction digits,
// and the exponent digits (which may carry a leading sign). It borrows
// directly from the decoder's input buffer.
type numLit struct {
	intPart, fracPart, expPart string
}

// pair is one field of an object: a STRING-typed name and its value,
// held by value (not pointer) so that an object's pair array is one
// contiguous allocation, same as the array/pair layout in
// original_source/Json.h's Json_obj_t/Json_pair_t.
type pair struct {
	key string
	val Value
}

// Value is a single node of a decoded or hand-built JSON value tree.
//
// Only one of the payload fields is meaningful at a time, selected by
// typ. Strings borrow from whatever buffer produced them (the decoder's
// input, for parsed documents) unless flagAlloc is set. A value whose
// typ is numRaw has not yet been converted to Integer or Number; that
// conversion happens lazily the first time something reads it, and the
// result is cached back into the same Value.
//
// Array and object children are held by value in contiguous slices
// (arr, obj), not as slices of pointers: indexing and field lookup
// return a pointer into that slice. This mirrors the original's
// Json_arr_t/Json_obj_t, which each carry a single malloc'd block
// rather than an array of pointers, and keeps the decoder's allocation
// count at one block per container (spec §5).
type Value struct {
	typ   Type
	flags flag

	i   int64
	r   float64
	s   string
	lit numLit

	arr []Value
	obj []pair
}

// Document wraps the root of a parsed value tree. Strings within the
// tree may point into the byte slice that was passed to Parse; the
// caller must keep that slice alive and must not mutate it for as long
// as the Document is used.
type Document struct {
	root Value
}

// Root returns the top-level value of the document.
func (d *Document) Root() *Value {
	if d == nil {
		return &Value{}
	}
	return &d.root
}

// Close releases the document's reference to its tree. It exists for
// symmetry with the decode context's resource-scoped API; Go's garbage
// collector reclaims the tree's memory regardless, so calling Close is
// optional and safe to omit.
func (d *Document) Close() {
	if d != nil {
		d.root = Value{}
	}
}
