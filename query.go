package json

import "sort"

// objectFieldsSortNum is the field-count threshold at and above which
// an object's pair array is sorted once and then binary-searched,
// taken directly from original_source/Json.h's
// OBJECT_FIELDS_SORT_NUM.
const objectFieldsSortNum = 16

// ArrayIndex returns the element at i, or (nil, false) if v is
// not an array or i is out of range. O(1).
func (v *Value) ArrayIndex(i int) (*Value, bool) {
	if v.Type() != Array || i < 0 || i >= len(v.arr) {
		return nil, false
	}
	return &v.arr[i], true
}

// ObjectField looks up a field by name. Below objectFieldsSortNum
// fields it scans linearly; at or above the threshold it sorts the
// pair array in place (once, tracked by flagSort) and binary-searches
// it on this and every subsequent call, per spec §4.7.
func (v *Value) ObjectField(name string) (*Value, bool) {
	p := v.field(name)
	if p == nil {
		return nil, false
	}
	return &p.val, true
}

// field is the shared lookup behind ObjectField and the fluent Key
// accessor.
func (v *Value) field(name string) *pair {
	if v.Type() != Object {
		return nil
	}
	if len(v.obj) < objectFieldsSortNum {
		for i := range v.obj {
			if v.obj[i].key == name {
				return &v.obj[i]
			}
		}
		return nil
	}

	if v.flags&flagSort == 0 {
		sort.Slice(v.obj, func(i, j int) bool { return v.obj[i].key < v.obj[j].key })
		v.flags |= flagSort
	}
	lo, hi := 0, len(v.obj)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case v.obj[mid].key < name:
			lo = mid + 1
		case v.obj[mid].key > name:
			hi = mid
		default:
			return &v.obj[mid]
		}
	}
	return nil
}

// queryStep is one instruction in a Query path: 'o' steps into an
// object field (arg is the field name), 'a' steps into an array
// index (arg is the decimal index).
type queryStep struct {
	kind byte
	arg  string
}

// Query walks v through a chain of object/array steps described by a
// small format string, e.g. "o:users a:0 o:name", and returns the
// value found, or false if any step misses. Each step is
// "kind:argument" separated by whitespace; kind is 'o' for an object
// field step or 'a' for an array index step.
func Query(v *Value, path string) (*Value, bool) {
	steps, ok := parseQueryPath(path)
	if !ok {
		return nil, false
	}
	cur := v
	for _, s := range steps {
		switch s.kind {
		case 'o':
			next, found := cur.ObjectField(s.arg)
			if !found {
				return nil, false
			}
			cur = next
		case 'a':
			idx := 0
			for _, c := range s.arg {
				if c < '0' || c > '9' {
					return nil, false
				}
				idx = idx*10 + int(c-'0')
			}
			next, found := cur.ArrayIndex(idx)
			if !found {
				return nil, false
			}
			cur = next
		default:
			return nil, false
		}
	}
	return cur, true
}

func parseQueryPath(path string) ([]queryStep, bool) {
	var steps []queryStep
	for _, field := range splitFields(path) {
		kind, arg, ok := splitStep(field)
		if !ok {
			return nil, false
		}
		steps = append(steps, queryStep{kind: kind, arg: arg})
	}
	return steps, true
}

func splitFields(s string) []string {
	var fields []string
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}

func splitStep(field string) (kind byte, arg string, ok bool) {
	if len(field) < 2 || field[1] != ':' {
		return 0, "", false
	}
	if field[0] != 'o' && field[0] != 'a' {
		return 0, "", false
	}
	return field[0], field[2:], true
}
