package json

import (
	"fmt"
	"strconv"
	"unsafe"
)

// Type reports v's kind, resolving a still-deferred number first (spec
// §4.4: "reading a numeric value that still carries the NUM_RAW tag
// triggers number conversion").
func (v *Value) Type() Type {
	v.ensureNumber()
	if v.typ < 0 || v.typ >= numTypes {
		return typeUnknown
	}
	return v.typ
}

// ensureNumber converts a NUM_RAW value to Integer or Number in
// place, caching the result and discarding the source slices so
// repeat calls are free.
func (v *Value) ensureNumber() {
	if v.typ != numRaw {
		return
	}
	typ, i, r := convertNumber(v.lit)
	v.typ, v.i, v.r = typ, i, r
	v.lit = numLit{}
}

// ensureUnescaped resolves a deferred string's backslash escapes in
// place, the same way the decoder itself does for a non-deferred
// string, and reports whether the escapes were well-formed.
func (v *Value) ensureUnescaped() bool {
	if v.typ != String || v.flags&flagEscapes == 0 {
		return true
	}
	buf := unsafe.Slice(unsafe.StringData(v.s), len(v.s))
	n, ok := unescapeInPlace(buf)
	if !ok {
		return false
	}
	if n == 0 {
		v.s = ""
	} else {
		v.s = unsafe.String(&buf[0], n)
	}
	v.flags &^= flagEscapes
	return true
}

// AsNull extracts a null value. Returns ErrType if v is not null.
func (v *Value) AsNull() (struct{}, error) {
	if v.Type() == Null {
		return struct{}{}, nil
	}
	return struct{}{}, fmt.Errorf("%w: value not null: %s", ErrType, v.Type())
}

// AsNumber extracts a float64. Integer values widen to float64;
// use AsInteger when exact 64-bit precision matters.
func (v *Value) AsNumber() (float64, error) {
	switch v.Type() {
	case Integer:
		return float64(v.i), nil
	case Number:
		return v.r, nil
	default:
		return 0, fmt.Errorf("%w: value not a number: %s", ErrType, v.Type())
	}
}

// AsInteger extracts an int64. Returns ErrType for a Number value;
// JSON numbers with a fraction or exponent never convert to Integer,
// so no implicit truncation happens here.
func (v *Value) AsInteger() (int64, error) {
	if v.Type() == Integer {
		return v.i, nil
	}
	return 0, fmt.Errorf("%w: value not an integer: %s", ErrType, v.Type())
}

// AsString extracts a string, resolving any deferred escapes first.
func (v *Value) AsString() (string, error) {
	if v.Type() != String {
		return "", fmt.Errorf("%w: value not a string: %s", ErrType, v.Type())
	}
	if !v.ensureUnescaped() {
		return "", fmt.Errorf("%w: invalid escape sequence in deferred string", ErrParse)
	}
	return v.s, nil
}

// AsBoolean extracts a bool.
func (v *Value) AsBoolean() (bool, error) {
	if v.Type() != Boolean {
		return false, fmt.Errorf("%w: value not a boolean: %s", ErrType, v.Type())
	}
	return v.i != 0, nil
}

// AsArray extracts the element slice. The returned slice aliases v's
// storage; callers must not retain it past v's document's lifetime.
func (v *Value) AsArray() ([]Value, error) {
	if v.Type() != Array {
		return nil, fmt.Errorf("%w: value not an array: %s", ErrType, v.Type())
	}
	return v.arr, nil
}

// AsObject extracts the field list as a map keyed by field name. The
// teacher's AsObject builds the same kind of map; unlike Key, which
// searches the pair array itself via linear/sorted lookup, this
// collapses duplicate keys to whichever occurs last.
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.Type() != Object {
		return nil, fmt.Errorf("%w: value not an object: %s", ErrType, v.Type())
	}
	m := make(map[string]*Value, len(v.obj))
	for i := range v.obj {
		m[v.obj[i].key] = &v.obj[i].val
	}
	return m, nil
}

// Index is the fluent array accessor: out-of-range or non-array
// returns a typed-Null placeholder rather than an error.
func (v *Value) Index(i int) *Value {
	if v.Type() != Array || i < 0 || i >= len(v.arr) {
		return &Value{}
	}
	return &v.arr[i]
}

// Key is the fluent object accessor: a missing field or non-object
// value returns a typed-Null placeholder rather than an error. It
// uses the same linear/sorted lookup regime as ObjectField in
// query.go.
func (v *Value) Key(k string) *Value {
	p := v.field(k)
	if p == nil {
		return &Value{}
	}
	return &p.val
}

// String renders v as JSON-like text for debugging; it is NOT
// guaranteed to be valid JSON (object field order reflects storage
// order, not necessarily insertion order once SORT has kicked in) and
// is not the encoder.
func (v *Value) String() string {
	switch v.Type() {
	case Null:
		return "null"
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Number:
		return strconv.FormatFloat(v.r, 'g', -1, 64)
	case String:
		s, _ := v.AsString()
		return strconv.Quote(s)
	case Boolean:
		if v.i != 0 {
			return "true"
		}
		return "false"
	case Array:
		s := "["
		for i := range v.arr {
			if i > 0 {
				s += ", "
			}
			s += v.arr[i].String()
		}
		return s + "]"
	case Object:
		s := "{"
		for i := range v.obj {
			if i > 0 {
				s += ", "
			}
			s += strconv.Quote(v.obj[i].key) + ": " + v.obj[i].val.String()
		}
		return s + "}"
	default:
		return "<unknown>"
	}
}
