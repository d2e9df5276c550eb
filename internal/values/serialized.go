package values

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/elliotchance/phpserialize"
)

// ErrSerializedSyntax reports input that is not a valid serialized array.
var ErrSerializedSyntax = errors.New("invalid serialized data")

// minSerializedEntry is the shortest encoding of one array entry ("i:0;N;").
const minSerializedEntry = 6

// DecodeSerialized decodes a legacy "a:N:{...}" serialized array. Arrays
// whose keys are exactly 0..n-1 decode to []any, all other arrays to
// map[string]any with integer keys rendered in decimal. Object payloads and
// non-array input are rejected.
func DecodeSerialized(raw string) (out any, err error) {
	if err := checkArrayHeader(raw); err != nil {
		return nil, err
	}

	// The decoder slices by declared lengths and can panic on hostile input.
	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrSerializedSyntax, rec)
		}
	}()

	decoded, err := phpserialize.UnmarshalAssociativeArray([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializedSyntax, err)
	}
	return shapeSerialized(decoded)
}

// checkArrayHeader rejects non-array input and element counts the input
// cannot possibly hold.
func checkArrayHeader(raw string) error {
	rest, ok := strings.CutPrefix(raw, "a:")
	if !ok {
		return fmt.Errorf("%w: not an array", ErrSerializedSyntax)
	}
	countText, _, ok := strings.Cut(rest, ":")
	if !ok {
		return fmt.Errorf("%w: missing array length", ErrSerializedSyntax)
	}
	count, err := strconv.Atoi(countText)
	if err != nil || count < 0 || count > len(raw)/minSerializedEntry {
		return fmt.Errorf("%w: invalid array length %q", ErrSerializedSyntax, countText)
	}
	return nil
}

func shapeSerialized(v any) (any, error) {
	switch t := v.(type) {
	case nil, bool, string, float64:
		return t, nil
	case int64:
		return int(t), nil
	case int:
		return t, nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			shaped, err := shapeSerialized(item)
			if err != nil {
				return nil, err
			}
			out[i] = shaped
		}
		return out, nil
	case map[any]any:
		return shapeSerializedArray(t)
	}
	return nil, fmt.Errorf("%w: unsupported value %T", ErrSerializedSyntax, v)
}

func shapeSerializedArray(entries map[any]any) (any, error) {
	vals := make(map[string]any, len(entries))
	ints := make(map[int]any, len(entries))
	for k, v := range entries {
		shaped, err := shapeSerialized(v)
		if err != nil {
			return nil, err
		}
		switch key := k.(type) {
		case int64:
			ints[int(key)] = shaped
			vals[strconv.FormatInt(key, 10)] = shaped
		case int:
			ints[key] = shaped
			vals[strconv.Itoa(key)] = shaped
		case string:
			vals[key] = shaped
		default:
			return nil, fmt.Errorf("%w: array keys must be integers or strings", ErrSerializedSyntax)
		}
	}

	if len(ints) != len(vals) {
		return vals, nil
	}
	out := make([]any, len(ints))
	for i := range out {
		v, ok := ints[i]
		if !ok {
			return vals, nil
		}
		out[i] = v
	}
	return out, nil
}
