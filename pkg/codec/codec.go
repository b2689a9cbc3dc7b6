// Package codec converts state values to and from the plain-text form kept in
// storage. Time values are wrapped as {"__type":"Date","value":<ISO-8601>} so
// they survive the round trip as instants instead of bare strings.
package codec

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

const (
	TypeKey    = "__type"
	ValueKey   = "value"
	DateMarker = "Date"

	// ISO-8601 with millisecond precision, UTC rendered as "Z".
	DateLayout = "2006-01-02T15:04:05.000Z07:00"
)

var (
	timeType          = reflect.TypeOf(time.Time{})
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// Encode returns the storage form of v.
func Encode(v any) (string, error) {
	tree, err := toTree(reflect.ValueOf(v))
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(tree)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses data and stores the result in out, which must be a pointer.
func Decode(data string, out any) error {
	tree, err := parse(data)
	if err != nil {
		return err
	}
	b, err := json.Marshal(flattenDates(tree))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// DecodeValue parses data into generic maps and slices, turning tagged dates
// back into time.Time leaves.
func DecodeValue(data string) (any, error) {
	tree, err := parse(data)
	if err != nil {
		return nil, err
	}
	return restoreDates(tree), nil
}

// EncodeDate renders t the way Encode tags it.
func EncodeDate(t time.Time) map[string]any {
	return map[string]any{
		TypeKey:  DateMarker,
		ValueKey: t.UTC().Format(DateLayout),
	}
}

func parse(data string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing data after value")
	}
	return tree, nil
}

func toTree(v reflect.Value) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}

	if v.Type() == timeType {
		return EncodeDate(v.Interface().(time.Time)), nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
		return toTree(v.Elem())
	}

	if v.Type().Implements(jsonMarshalerType) || v.Type().Implements(textMarshalerType) {
		return v.Interface(), nil
	}

	switch v.Kind() {
	case reflect.Struct:
		out := map[string]any{}
		if err := structFields(v, out); err != nil {
			return nil, err
		}
		return out, nil
	case reflect.Map:
		if v.IsNil() {
			return nil, nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("codec: unsupported map key type %s", v.Type().Key())
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			elem, err := toTree(iter.Value())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = elem
		}
		return out, nil
	case reflect.Slice:
		if v.IsNil() {
			return nil, nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Interface(), nil
		}
		fallthrough
	case reflect.Array:
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := toTree(v.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = elem
		}
		return out, nil
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return nil, fmt.Errorf("codec: unsupported type %s", v.Type())
	default:
		return v.Interface(), nil
	}
}

func structFields(v reflect.Value, out map[string]any) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, opts := parseTag(field.Tag.Get("json"))
		if name == "-" && opts == "" {
			continue
		}

		fv := v.Field(i)
		if field.Anonymous && name == "" {
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				ft = ft.Elem()
				fv = fv.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != timeType {
				if err := structFields(fv, out); err != nil {
					return err
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}
		if strings.Contains(opts, "omitempty") && isEmpty(fv) {
			continue
		}

		elem, err := toTree(fv)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out[name] = elem
	}
	return nil
}

func parseTag(tag string) (string, string) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

func dateValue(m map[string]any) (string, bool) {
	if len(m) != 2 {
		return "", false
	}
	marker, ok := m[TypeKey].(string)
	if !ok || marker != DateMarker {
		return "", false
	}
	value, ok := m[ValueKey].(string)
	return value, ok
}

// flattenDates swaps each tagged date for its ISO string so encoding/json can
// fill time.Time fields.
func flattenDates(node any) any {
	switch n := node.(type) {
	case map[string]any:
		if iso, ok := dateValue(n); ok {
			return iso
		}
		for k, v := range n {
			n[k] = flattenDates(v)
		}
		return n
	case []any:
		for i, v := range n {
			n[i] = flattenDates(v)
		}
		return n
	default:
		return node
	}
}

func restoreDates(node any) any {
	switch n := node.(type) {
	case map[string]any:
		if iso, ok := dateValue(n); ok {
			if t, err := time.Parse(time.RFC3339Nano, iso); err == nil {
				return t
			}
			return n
		}
		for k, v := range n {
			n[k] = restoreDates(v)
		}
		return n
	case []any:
		for i, v := range n {
			n[i] = restoreDates(v)
		}
		return n
	default:
		return node
	}
}

// Equal reports whether two storage forms hold the same value.
func Equal(a, b string) bool {
	va, errA := DecodeValue(a)
	vb, errB := DecodeValue(b)
	if errA != nil || errB != nil {
		return false
	}
	return reflect.DeepEqual(va, vb)
}
