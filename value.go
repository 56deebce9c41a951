package neatjson

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies which JSON kind a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a parsed JSON value: null, bool, number, string, array or object.
// The zero Value is JSON null. Values are treated as immutable by the
// formatter; the encoder works on local copies when it needs to normalize
// object keys.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  string
	Arr  []Value
	Obj  []Member
}

// Member is one object entry. Key is itself a Value so that non-string keys
// (most notably the null sentinel) survive until key normalization, which
// stringifies them. Object member order is preserved on input; when two keys
// normalize to the same text the last value wins and the entry keeps the
// position of the first occurrence.
type Member struct {
	Key   Value
	Value Value
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Number returns a JSON number value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// String returns a JSON string value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Array returns a JSON array of the given elements.
func Array(elems ...Value) Value { return Value{Kind: KindArray, Arr: elems} }

// Object returns a JSON object with the given members, order preserved.
func Object(members ...Member) Value { return Value{Kind: KindObject, Obj: members} }

// Field builds an object member with a string key.
func Field(key string, v Value) Member {
	return Member{Key: String(key), Value: v}
}

// FromAny converts the dynamic tree produced by encoding/json (nil, bool,
// float64, json.Number, string, []any, map[string]any) into a Value. Common
// Go numeric types are accepted as a convenience for hand-built trees.
// Because Go maps are unordered, map members are emitted in sorted key order
// so the conversion is deterministic even when formatting with SortKeys off.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: number %q: %v", ErrUnsupportedType, x.String(), err)
		}
		return Number(f), nil
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return Value{Kind: KindArray, Arr: elems}, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, k := range keys {
			mv, err := FromAny(x[k])
			if err != nil {
				return Value{}, err
			}
			members[i] = Field(k, mv)
		}
		return Value{Kind: KindObject, Obj: members}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}
