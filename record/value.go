package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupportedType is returned if a Go value cannot be represented as a
// record value, e.g. nested maps.
var ErrUnsupportedType = errors.New("unsupported value type")

// Kind is the tag of a Value.
type Kind uint8

// Kinds of values
const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a tagged scalar or array value. The zero value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	a    []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Int creates an integer value.
func Int(i int64) Value { return Value{kind: IntKind, i: i} }

// Float creates a float value.
func Float(f float64) Value { return Value{kind: FloatKind, f: f} }

// String creates a string value.
func String(s string) Value { return Value{kind: StringKind, s: s} }

// Array creates an array value from a list of values.
func Array(vs ...Value) Value {
	a := make([]Value, len(vs))
	copy(a, vs)
	return Value{kind: ArrayKind, a: a}
}

// ValueOf converts a Go value into a Value. Supported are nil, bools, all
// integer and float types, strings, byte slices, json.Number, time.Time and
// slices of supported types.
func ValueOf(x interface{}) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Int(int64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Float(float64(v)), nil
		}
		return Int(int64(v)), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case []byte:
		return String(string(v)), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Null(), fmt.Errorf("number %q: %w", v.String(), ErrUnsupportedType)
		}
		return Float(f), nil
	case time.Time:
		return String(v.Format(time.RFC3339Nano)), nil
	case []Value:
		return Array(v...), nil
	case []string:
		a := make([]Value, len(v))
		for i, s := range v {
			a[i] = String(s)
		}
		return Value{kind: ArrayKind, a: a}, nil
	case []int:
		a := make([]Value, len(v))
		for i, n := range v {
			a[i] = Int(int64(n))
		}
		return Value{kind: ArrayKind, a: a}, nil
	case []interface{}:
		a := make([]Value, len(v))
		for i, e := range v {
			ev, err := ValueOf(e)
			if err != nil {
				return Null(), err
			}
			a[i] = ev
		}
		return Value{kind: ArrayKind, a: a}, nil
	}
	return Null(), fmt.Errorf("%T: %w", x, ErrUnsupportedType)
}

// MustValue is like ValueOf, but panics on unsupported types.
func MustValue(x interface{}) Value {
	v, err := ValueOf(x)
	assertThat(err == nil, "cannot convert %v: %v", x, err)
	return v
}

// Kind returns the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull is true for the null value.
func (v Value) IsNull() bool { return v.kind == NullKind }

// AsBool returns the boolean content of v. ok is false for non-bools.
func (v Value) AsBool() (b bool, ok bool) {
	return v.b, v.kind == BoolKind
}

// AsInt returns v as an integer. Integral floats and strings holding an
// integer are converted.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case IntKind:
		return v.i, true
	case FloatKind:
		if v.f == math.Trunc(v.f) && math.Abs(v.f) < 1<<62 {
			return int64(v.f), true
		}
	case StringKind:
		if i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// AsFloat returns v as a float, if v is numeric (see IsNumeric).
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case IntKind:
		return float64(v.i), true
	case FloatKind:
		return v.f, true
	case StringKind:
		s := strings.TrimSpace(v.s)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// IsNumeric is true for integers, floats and strings which hold a number.
func (v Value) IsNumeric() bool {
	_, ok := v.AsFloat()
	return ok
}

// Elements returns the elements of an array value, or nil for scalars.
func (v Value) Elements() []Value {
	if v.kind != ArrayKind {
		return nil
	}
	a := make([]Value, len(v.a))
	copy(a, v.a)
	return a
}

// Len returns the number of elements of an array value, 0 otherwise.
func (v Value) Len() int {
	return len(v.a)
}

// String returns the textual form of v. Null is the empty string.
func (v Value) String() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b)
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case FloatKind:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case StringKind:
		return v.s
	case ArrayKind:
		parts := make([]string, len(v.a))
		for i, e := range v.a {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return ""
}

// Interface returns v as a plain Go value (nil, bool, int64, float64, string
// or []interface{}).
func (v Value) Interface() interface{} {
	switch v.kind {
	case BoolKind:
		return v.b
	case IntKind:
		return v.i
	case FloatKind:
		return v.f
	case StringKind:
		return v.s
	case ArrayKind:
		a := make([]interface{}, len(v.a))
		for i, e := range v.a {
			a[i] = e.Interface()
		}
		return a
	}
	return nil
}

// Key returns a string usable as a map key for identities. Values which
// compare equal as identities have the same key, i.e. Int(7), Float(7.0)
// and String("7") all map to "7".
func (v Value) Key() string {
	if i, ok := v.AsInt(); ok && v.kind != StringKind {
		return strconv.FormatInt(i, 10)
	}
	if v.kind == StringKind {
		if i, ok := v.AsInt(); ok && strconv.FormatInt(i, 10) == v.s {
			return v.s
		}
	}
	return v.String()
}

// Compare compares v to w in natural order: numerically if both are numeric,
// element-wise for two arrays, lexically by textual form otherwise.
// The result is -1, 0 or +1.
func (v Value) Compare(w Value) int {
	if v.kind == ArrayKind && w.kind == ArrayKind {
		for i := 0; i < len(v.a) && i < len(w.a); i++ {
			if c := v.a[i].Compare(w.a[i]); c != 0 {
				return c
			}
		}
		return cmpInt(int64(len(v.a)), int64(len(w.a)))
	}
	if vi, ok := v.exactInt(); ok {
		if wi, ok := w.exactInt(); ok {
			return cmpInt(vi, wi)
		}
	}
	if vf, ok := v.AsFloat(); ok {
		if wf, ok := w.AsFloat(); ok {
			switch {
			case vf < wf:
				return -1
			case vf > wf:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(v.String(), w.String())
}

// Equal is true if v and w compare equal. Arrays are never equal to scalars.
func (v Value) Equal(w Value) bool {
	if (v.kind == ArrayKind) != (w.kind == ArrayKind) {
		return false
	}
	if v.kind == NullKind || w.kind == NullKind {
		return v.kind == w.kind || v.String() == w.String()
	}
	return v.Compare(w) == 0
}

// exactInt is like AsInt but refuses floats, to keep integer comparison exact.
func (v Value) exactInt() (int64, bool) {
	if v.kind == FloatKind {
		return 0, false
	}
	return v.AsInt()
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CompareIDs is a total order for identities: null first, then numeric
// identities in numeric order, then all other identities in lexical order.
func CompareIDs(a, b Value) int {
	ra, rb := idRank(a), idRank(b)
	if ra != rb {
		return cmpInt(int64(ra), int64(rb))
	}
	switch ra {
	case 0:
		return 0
	case 1:
		return a.Compare(b)
	}
	return strings.Compare(a.String(), b.String())
}

func idRank(v Value) int {
	if v.IsNull() {
		return 0
	}
	if v.kind != ArrayKind && v.IsNumeric() {
		return 1
	}
	return 2
}
