package domain

// Kind tags the concrete type held by a Value
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindInt
	KindArray
	KindDict
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	default:
		return "other"
	}
}

// Value is a property value as returned by a PropertySource.
// The zero Value has KindNone. Accessors never panic; they report whether
// the value holds the requested kind.
type Value struct {
	kind Kind
	str  string
	num  int64
	arr  []Value
	dict map[string]Value
}

// StringValue wraps a string
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue wraps an integer
func IntValue(n int64) Value { return Value{kind: KindInt, num: n} }

// ArrayValue wraps an ordered list of values
func ArrayValue(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// DictValue wraps a string-keyed dictionary
func DictValue(m map[string]Value) Value { return Value{kind: KindDict, dict: m} }

// OtherValue marks a value whose type has no Kind of its own
func OtherValue() Value { return Value{kind: KindOther} }

// Kind returns the tag of v
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string held by v
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsInt returns the integer held by v
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// AsArray returns the items held by v
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsDict returns the dictionary held by v
func (v Value) AsDict() (map[string]Value, bool) {
	if v.kind != KindDict {
		return nil, false
	}
	return v.dict, true
}
