package rjson

import "fmt"

// Kind identifies which variant of a Value is active.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// member is a single name/value pair of an object.
type member struct {
	name  string
	value *Value
}

// Value represents a single document node.
type Value struct {
	kind Kind

	// Scalar payloads (only one valid based on kind)
	boolVal   bool
	intVal    int64
	doubleVal float64
	strVal    string

	// Array elements
	elems []*Value

	// Object members in insertion order, plus a name index for O(1) lookup.
	// The index always mirrors the members slice.
	members []member
	index   map[string]int

	// Optional free-text annotation; metadata only
	comment string
}

// undefinedValue is the shared placeholder returned by read-only lookups of
// missing object members. It is read-only after initialization and must
// never be mutated.
var undefinedValue = &Value{kind: KindUndefined}

// ============================================================
// Constructors
// ============================================================

// Undefined creates an undefined value.
func Undefined() *Value {
	return &Value{kind: KindUndefined}
}

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Double creates a floating-point value.
func Double(v float64) *Value {
	return &Value{kind: KindDouble, doubleVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Array creates an array value.
func Array(values ...*Value) *Value {
	return &Value{kind: KindArray, elems: values}
}

// Object creates an empty object value.
func Object() *Value {
	return &Value{kind: KindObject, index: make(map[string]int)}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the active variant of the value.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindUndefined
	}
	return v.kind
}

// IsUndefined returns true if this is an undefined value.
func (v *Value) IsUndefined() bool {
	return v == nil || v.kind == KindUndefined
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v != nil && v.kind == KindNull
}

// AsBool returns the boolean payload.
func (v *Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, &TypeError{Want: KindBool, Got: v.kind}
	}
	return v.boolVal, nil
}

// AsInt returns the integer payload.
func (v *Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, &TypeError{Want: KindInt, Got: v.kind}
	}
	return v.intVal, nil
}

// AsDouble returns the floating-point payload.
func (v *Value) AsDouble() (float64, error) {
	if v.kind != KindDouble {
		return 0, &TypeError{Want: KindDouble, Got: v.kind}
	}
	return v.doubleVal, nil
}

// AsStr returns the string payload.
func (v *Value) AsStr() (string, error) {
	if v.kind != KindString {
		return "", &TypeError{Want: KindString, Got: v.kind}
	}
	return v.strVal, nil
}

// Comment returns the free-text annotation attached to the value.
func (v *Value) Comment() string {
	return v.comment
}

// SetComment sets the free-text annotation. Comments never take part in
// equality or rendering.
func (v *Value) SetComment(comment string) {
	v.comment = comment
}

// Len returns the number of elements of an array or members of an object.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.elems)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// ============================================================
// Array operations
// ============================================================

// Add appends a value to an array.
func (v *Value) Add(val *Value) {
	if v.kind != KindArray {
		panic("rjson: cannot add to non-array")
	}
	v.elems = append(v.elems, val)
}

// At returns the i-th element of an array. Out-of-range indices are a
// checked error.
func (v *Value) At(i int) (*Value, error) {
	if v.kind != KindArray {
		return nil, &TypeError{Want: KindArray, Got: v.kind}
	}
	if i < 0 || i >= len(v.elems) {
		return nil, fmt.Errorf("rjson: index %d out of bounds (len=%d)", i, len(v.elems))
	}
	return v.elems[i], nil
}

// ============================================================
// Object operations
// ============================================================

// Set sets a member value on an object. An existing member is replaced in
// place without changing its position; a new name is appended.
func (v *Value) Set(name string, val *Value) {
	if v.kind != KindObject {
		panic("rjson: cannot set on non-object")
	}
	if i, ok := v.index[name]; ok {
		v.members[i].value = val
		return
	}
	v.index[name] = len(v.members)
	v.members = append(v.members, member{name: name, value: val})
}

// Get returns the member value by name. Missing names return a shared
// undefined placeholder without mutating the object.
func (v *Value) Get(name string) *Value {
	if v.kind != KindObject {
		return undefinedValue
	}
	if i, ok := v.index[name]; ok {
		return v.members[i].value
	}
	return undefinedValue
}

// Member returns the member value by name, inserting a fresh undefined
// member at the end when the name is missing. This mirrors mutable index
// access: the lookup is an order-visible side effect.
func (v *Value) Member(name string) *Value {
	if v.kind != KindObject {
		panic("rjson: cannot access member on non-object")
	}
	if i, ok := v.index[name]; ok {
		return v.members[i].value
	}
	val := Undefined()
	v.index[name] = len(v.members)
	v.members = append(v.members, member{name: name, value: val})
	return val
}

// Has returns true if the object has a member with the given name.
func (v *Value) Has(name string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.index[name]
	return ok
}

// Keys returns the member names of an object in insertion order.
func (v *Value) Keys() []string {
	if v.kind != KindObject || len(v.members) == 0 {
		return nil
	}
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.name
	}
	return keys
}

// ============================================================
// Equality and deep copy
// ============================================================

// Equal reports structural, kind-sensitive equality. Comments are metadata
// and never compared; Int(4) and Double(4) differ by kind alone.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindInt:
		return v.intVal == other.intVal
	case KindDouble:
		return v.doubleVal == other.doubleVal
	case KindString:
		return v.strVal == other.strVal
	case KindArray:
		if len(v.elems) != len(other.elems) {
			return false
		}
		for i, e := range v.elems {
			if !e.Equal(other.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for i, m := range v.members {
			om := other.members[i]
			if m.name != om.name || !m.value.Equal(om.value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy. Mutating the copy never affects the original;
// array elements and object members are cloned recursively.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	dup := &Value{
		kind:      v.kind,
		boolVal:   v.boolVal,
		intVal:    v.intVal,
		doubleVal: v.doubleVal,
		strVal:    v.strVal,
		comment:   v.comment,
	}
	switch v.kind {
	case KindArray:
		if v.elems != nil {
			dup.elems = make([]*Value, len(v.elems))
			for i, e := range v.elems {
				dup.elems[i] = e.Clone()
			}
		}
	case KindObject:
		dup.index = make(map[string]int, len(v.members))
		if v.members != nil {
			dup.members = make([]member, len(v.members))
			for i, m := range v.members {
				dup.members[i] = member{name: m.name, value: m.value.Clone()}
				dup.index[m.name] = i
			}
		}
	}
	return dup
}
