package values

import (
	"math"
	"reflect"
	"strconv"
)

// conform reshapes a decoded value (map[string]any, []any or a scalar) into
// target. Sequences become string-keyed maps by index when target is a map;
// numbers convert between widths only when no precision is lost.
func conform(v any, target reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch target.Kind() {
		case reflect.Interface, reflect.Map, reflect.Slice, reflect.Pointer:
			return reflect.Zero(target), true
		}
		return reflect.Value{}, false
	}

	src := reflect.ValueOf(v)
	if src.Type().AssignableTo(target) {
		return src, true
	}

	switch target.Kind() {
	case reflect.Map:
		return conformMap(v, target)
	case reflect.Slice:
		items, ok := v.([]any)
		if !ok {
			return reflect.Value{}, false
		}
		out := reflect.MakeSlice(target, len(items), len(items))
		for i, item := range items {
			elem, ok := conform(item, target.Elem())
			if !ok {
				return reflect.Value{}, false
			}
			out.Index(i).Set(elem)
		}
		return out, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := integral(v)
		if !ok {
			return reflect.Value{}, false
		}
		out := reflect.New(target).Elem()
		if out.OverflowInt(n) {
			return reflect.Value{}, false
		}
		out.SetInt(n)
		return out, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := integral(v)
		if !ok || n < 0 {
			return reflect.Value{}, false
		}
		out := reflect.New(target).Elem()
		if out.OverflowUint(uint64(n)) {
			return reflect.Value{}, false
		}
		out.SetUint(uint64(n))
		return out, true
	case reflect.Float32, reflect.Float64:
		var f float64
		switch t := v.(type) {
		case int:
			f = float64(t)
		case float64:
			f = t
		default:
			return reflect.Value{}, false
		}
		out := reflect.New(target).Elem()
		if out.OverflowFloat(f) {
			return reflect.Value{}, false
		}
		out.SetFloat(f)
		return out, true
	case reflect.String, reflect.Bool:
		if src.Kind() == target.Kind() {
			return src.Convert(target), true
		}
	}
	return reflect.Value{}, false
}

func conformMap(v any, target reflect.Type) (reflect.Value, bool) {
	if target.Key().Kind() != reflect.String {
		return reflect.Value{}, false
	}

	var entries map[string]any
	switch t := v.(type) {
	case map[string]any:
		entries = t
	case []any:
		entries = make(map[string]any, len(t))
		for i, item := range t {
			entries[strconv.Itoa(i)] = item
		}
	default:
		return reflect.Value{}, false
	}

	out := reflect.MakeMapWithSize(target, len(entries))
	for k, item := range entries {
		elem, ok := conform(item, target.Elem())
		if !ok {
			return reflect.Value{}, false
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(target.Key()), elem)
	}
	return out, true
}

func integral(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case float64:
		if t != math.Trunc(t) || t < math.MinInt64 || t >= math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	}
	return 0, false
}
