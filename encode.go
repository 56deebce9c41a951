package neatjson

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
)

// Options controls the formatting behavior. The zero value of a field falls
// back to the corresponding DefaultOptions field, except for the booleans,
// which are taken as given.
type Options struct {
	// Indent is the text inserted once per nesting level. Default two spaces.
	Indent string
	// Width is the max column width for single-line containers, counting the
	// indentation the line would carry at its depth. Default 79.
	Width int
	// MaxItems is the max number of items in a container that may still be
	// put on a single line. Default 10.
	MaxItems int
	// SortKeys sorts object keys lexicographically when true.
	SortKeys bool
	// AllowNaN permits NaN and ±Infinity numbers, emitted as the literals
	// NaN, Infinity and -Infinity. When false (the default) such numbers
	// make the encode fail with ErrNonFiniteNumber.
	AllowNaN bool
	// ASCIIOnly escapes every non-ASCII character as \uXXXX. When false,
	// non-ASCII text is emitted as literal UTF-8.
	ASCIIOnly bool
	// MaxDepth bounds container nesting so malformed input cannot exhaust
	// the call stack. Default 1000.
	MaxDepth int
}

// DefaultOptions holds the canonical on-disk configuration: two-space indent,
// inline width 79, item cap 10, sorted keys.
var DefaultOptions = &Options{Indent: "  ", Width: 79, MaxItems: 10, SortKeys: true, MaxDepth: 1000}

// Format renders v as indented JSON where small scalar-only containers are
// collapsed to a single line. A nil opts means DefaultOptions. On error no
// partial output is returned.
func Format(v Value, opts *Options) ([]byte, error) {
	e := acquireEncoder(opts)
	defer releaseEncoder(e)
	if err := e.encode(v, 0); err != nil {
		return nil, err
	}
	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	return out, nil
}

// FormatTo formats v fully in memory and then writes the result to w in a
// single Write call.
func FormatTo(w io.Writer, v Value, opts *Options) error {
	out, err := Format(v, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

type encoder struct {
	indent    string
	width     int
	maxItems  int
	sortKeys  bool
	allowNaN  bool
	asciiOnly bool
	maxDepth  int
	buf       []byte
}

func (e *encoder) reset(opts *Options) {
	if opts == nil {
		opts = DefaultOptions
	}
	e.indent = opts.Indent
	if e.indent == "" {
		e.indent = DefaultOptions.Indent
	}
	e.width = opts.Width
	if e.width <= 0 {
		e.width = DefaultOptions.Width
	}
	e.maxItems = opts.MaxItems
	if e.maxItems <= 0 {
		e.maxItems = DefaultOptions.MaxItems
	}
	e.maxDepth = opts.MaxDepth
	if e.maxDepth <= 0 {
		e.maxDepth = DefaultOptions.MaxDepth
	}
	e.sortKeys = opts.SortKeys
	e.allowNaN = opts.AllowNaN
	e.asciiOnly = opts.ASCIIOnly
	e.buf = e.buf[:0]
}

// encode appends the rendering of v at the given nesting depth. Depth is
// threaded as a parameter rather than kept in encoder state so an error
// return can never leave a stale level behind.
func (e *encoder) encode(v Value, depth int) error {
	switch v.Kind {
	case KindNull:
		e.buf = append(e.buf, "null"...)
	case KindBool:
		e.buf = strconv.AppendBool(e.buf, v.Bool)
	case KindNumber:
		var err error
		e.buf, err = appendNumber(e.buf, v.Num, e.allowNaN)
		return err
	case KindString:
		e.buf = appendQuoted(e.buf, v.Str, e.asciiOnly)
	case KindArray:
		return e.encodeArray(v.Arr, depth)
	case KindObject:
		return e.encodeObject(v.Obj, depth)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedType, v.Kind)
	}
	return nil
}

func (e *encoder) encodeArray(elems []Value, depth int) error {
	if depth >= e.maxDepth {
		return fmt.Errorf("%w: more than %d levels", ErrDepthExceeded, e.maxDepth)
	}
	if scalarsOnly(elems) && len(elems) <= e.maxItems {
		mark := len(e.buf)
		e.buf = append(e.buf, '[')
		for i, el := range elems {
			if i > 0 {
				e.buf = append(e.buf, ", "...)
			}
			if err := e.encode(el, depth+1); err != nil {
				return err
			}
		}
		e.buf = append(e.buf, ']')
		if len(e.buf)-mark+depth*len(e.indent) < e.width {
			return nil
		}
		// too wide for one line; drop the attempt and expand
		e.buf = e.buf[:mark]
	}
	e.buf = append(e.buf, '[', '\n')
	for i, el := range elems {
		if i > 0 {
			e.buf = append(e.buf, ',', '\n')
		}
		e.appendIndent(depth + 1)
		if err := e.encode(el, depth+1); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, '\n')
	e.appendIndent(depth)
	e.buf = append(e.buf, ']')
	return nil
}

func (e *encoder) encodeObject(members []Member, depth int) error {
	if depth >= e.maxDepth {
		return fmt.Errorf("%w: more than %d levels", ErrDepthExceeded, e.maxDepth)
	}
	if len(members) == 0 {
		e.buf = append(e.buf, '{', '}')
		return nil
	}
	entries, err := e.normalizeMembers(members)
	if err != nil {
		return err
	}
	if scalarValuesOnly(entries) && len(entries) <= e.maxItems {
		mark := len(e.buf)
		e.buf = append(e.buf, '{')
		for i, ent := range entries {
			if i > 0 {
				e.buf = append(e.buf, ", "...)
			}
			e.buf = appendQuoted(e.buf, ent.key, e.asciiOnly)
			e.buf = append(e.buf, ':', ' ')
			if err := e.encode(ent.value, depth+1); err != nil {
				return err
			}
		}
		e.buf = append(e.buf, '}')
		if len(e.buf)-mark+depth*len(e.indent) < e.width {
			return nil
		}
		e.buf = e.buf[:mark]
	}
	e.buf = append(e.buf, '{', '\n')
	for i, ent := range entries {
		if i > 0 {
			e.buf = append(e.buf, ',', '\n')
		}
		e.appendIndent(depth + 1)
		e.buf = appendQuoted(e.buf, ent.key, e.asciiOnly)
		e.buf = append(e.buf, ':', ' ')
		if err := e.encode(ent.value, depth+1); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, '\n')
	e.appendIndent(depth)
	e.buf = append(e.buf, '}')
	return nil
}

type entry struct {
	key   string
	value Value
}

// normalizeMembers stringifies keys on a working copy, collapsing keys that
// normalize to the same text (last value wins, first position kept) and
// sorting when SortKeys is set. The caller's member slice is left untouched.
func (e *encoder) normalizeMembers(members []Member) ([]entry, error) {
	entries := make([]entry, 0, len(members))
	seen := make(map[string]int, len(members))
	for _, m := range members {
		key, err := e.keyText(m.Key)
		if err != nil {
			return nil, err
		}
		if i, ok := seen[key]; ok {
			entries[i].value = m.Value
			continue
		}
		seen[key] = len(entries)
		entries = append(entries, entry{key: key, value: m.Value})
	}
	if e.sortKeys {
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	}
	return entries, nil
}

// keyText converts an object key to its textual form: the null sentinel
// becomes the literal text "null", other scalars their encoded text.
// Container keys are rejected.
func (e *encoder) keyText(k Value) (string, error) {
	switch k.Kind {
	case KindNull:
		return "null", nil
	case KindString:
		return k.Str, nil
	case KindBool:
		return strconv.FormatBool(k.Bool), nil
	case KindNumber:
		b, err := appendNumber(nil, k.Num, e.allowNaN)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("%w: %v used as object key", ErrUnsupportedType, k.Kind)
	}
}

func (e *encoder) appendIndent(depth int) {
	for range depth {
		e.buf = append(e.buf, e.indent...)
	}
}

func scalarsOnly(elems []Value) bool {
	for _, el := range elems {
		if el.Kind == KindArray || el.Kind == KindObject {
			return false
		}
	}
	return true
}

func scalarValuesOnly(entries []entry) bool {
	for _, ent := range entries {
		if ent.value.Kind == KindArray || ent.value.Kind == KindObject {
			return false
		}
	}
	return true
}

// appendNumber renders f the way the formatter wants numbers on disk:
// integral values without a decimal point, everything else at 6 fractional
// digits with trailing zeros and a dangling point stripped. 1e-6 precision is
// plenty for the coordinate-style data this formatter targets.
func appendNumber(dst []byte, f float64, allowNaN bool) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if !allowNaN {
			return dst, fmt.Errorf("%w: %v", ErrNonFiniteNumber, f)
		}
		switch {
		case math.IsNaN(f):
			return append(dst, "NaN"...), nil
		case f > 0:
			return append(dst, "Infinity"...), nil
		default:
			return append(dst, "-Infinity"...), nil
		}
	}
	if f == math.Trunc(f) {
		return strconv.AppendFloat(dst, f, 'f', -1, 64), nil
	}
	dst = strconv.AppendFloat(dst, f, 'f', 6, 64)
	for dst[len(dst)-1] == '0' {
		dst = dst[:len(dst)-1]
	}
	if dst[len(dst)-1] == '.' {
		dst = dst[:len(dst)-1]
	}
	return dst, nil
}
