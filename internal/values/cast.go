package values

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"reflect"
	"strconv"
)

// Cast converts raw towards the type of def and returns def when raw does
// not fit. The result always has the exact Go type of def. Defaults of an
// unsupported type, including nil, are returned unchanged.
func Cast(raw string, def any) any {
	target := reflect.TypeOf(def)

	switch KindOf(def) {
	case Structured:
		return ToArray(raw, def)
	case Bool:
		if b, ok := ParseBool(raw); ok {
			return reflect.ValueOf(b).Convert(target).Interface()
		}
	case Int:
		if v, ok := castInt(raw, target); ok {
			return v
		}
	case Float:
		if f, ok := ParseFloat(raw, target.Bits()); ok {
			out := reflect.New(target).Elem()
			out.SetFloat(f)
			return out.Interface()
		}
	case String:
		if raw != "" {
			return reflect.ValueOf(raw).Convert(target).Interface()
		}
	}
	return def
}

func castInt(raw string, target reflect.Type) (any, bool) {
	out := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := ParseUint(raw, target.Bits())
		if !ok {
			return nil, false
		}
		out.SetUint(n)
	default:
		n, ok := ParseInt(raw, target.Bits())
		if !ok {
			return nil, false
		}
		out.SetInt(n)
	}
	return out.Interface(), true
}

// InferType guesses the type of raw from its shape alone. Candidates are
// tried in a fixed order and the first match wins:
//
//  1. the empty string is returned unchanged
//  2. JSON object or array
//  3. legacy serialized array
//  4. strict integer (int)
//  5. strict float (float64)
//  6. boolean word
//  7. the raw string
func InferType(raw string) any {
	if raw == "" {
		return raw
	}
	if v, ok := decodeJSON(raw); ok && isContainer(v) {
		return v
	}
	if v, err := DecodeSerialized(raw); err == nil && isContainer(v) {
		return v
	}
	if n, ok := ParseInt(raw, strconv.IntSize); ok {
		return int(n)
	}
	if f, ok := ParseFloat(raw, 64); ok {
		return f
	}
	if b, ok := ParseBool(raw); ok {
		return b
	}
	return raw
}

// ToArray decodes raw as JSON and then as legacy serialized data, returning
// the first mapping or sequence that can be shaped like def. A nil def means
// an empty map[string]any. When neither decoder yields a usable container the
// default is returned.
func ToArray(raw string, def any) any {
	if def == nil {
		def = map[string]any{}
	}
	target := reflect.TypeOf(def)

	if v, ok := decodeJSON(raw); ok && isContainer(v) {
		if out, ok := conform(v, target); ok {
			return out.Interface()
		}
	}
	if v, err := DecodeSerialized(raw); err == nil && isContainer(v) {
		if out, ok := conform(v, target); ok {
			return out.Interface()
		}
	}
	return def
}

// decodeJSON decodes a single JSON document. Integral numbers become int,
// everything else follows encoding/json defaults.
func decodeJSON(raw string) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}
	return normalizeNumbers(v), true
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	}
	return v
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}
