package kernel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"

	"tracking/internal/pkg/errs"
)

// Attributes is an opaque string-keyed map of JSON-like values (nil, bool,
// string, numbers, sequences and nested maps). The core checks that the data
// is structured and serializable and never interprets it.
//
// Attributes owns its data: input maps are deep-copied on construction and
// ToMap returns a fresh copy.
type Attributes struct {
	values map[string]any
}

// EmptyAttributes returns an Attributes value with no keys.
func EmptyAttributes() Attributes {
	return Attributes{values: map[string]any{}}
}

// NewAttributes validates and copies raw. field names the owning attribute
// ("preferences", "details") in validation errors. A nil map is treated as empty.
func NewAttributes(field string, raw map[string]any) (Attributes, error) {
	copied := make(map[string]any, len(raw))
	for _, key := range sortedKeys(raw) {
		value, err := normalizeValue(reflect.ValueOf(raw[key]))
		if err != nil {
			return Attributes{}, errs.NewValidationErrorWithCause(
				field,
				"Attributes must be serializable structured data: "+key,
				err,
			)
		}
		copied[key] = value
	}

	return Attributes{values: copied}, nil
}

// AttributesFromJSON decodes a stored JSON object. Numbers are kept as
// json.Number so they survive a round trip unchanged.
func AttributesFromJSON(field string, data []byte) (Attributes, error) {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return EmptyAttributes(), nil
	}

	var raw map[string]any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return Attributes{}, errs.NewValidationErrorWithCause(field, "Attributes must be a JSON object", err)
	}

	return NewAttributes(field, raw)
}

// ToMap returns a deep copy of the attribute map.
func (a Attributes) ToMap() map[string]any {
	copied := make(map[string]any, len(a.values))
	for key, value := range a.values {
		copied[key] = deepCopy(value)
	}
	return copied
}

// Get returns a copy of the value stored under key.
func (a Attributes) Get(key string) (any, bool) {
	value, ok := a.values[key]
	if !ok {
		return nil, false
	}
	return deepCopy(value), true
}

func (a Attributes) Len() int {
	return len(a.values)
}

// IsEqual compares the JSON encodings, so 1 and json.Number("1") are equal.
func (a Attributes) IsEqual(other Attributes) bool {
	left, errLeft := a.MarshalJSON()
	right, errRight := other.MarshalJSON()
	return errLeft == nil && errRight == nil && bytes.Equal(left, right)
}

func (a Attributes) MarshalJSON() ([]byte, error) {
	if a.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a.values)
}

func (a *Attributes) UnmarshalJSON(data []byte) error {
	decoded, err := AttributesFromJSON("attributes", data)
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

func normalizeValue(v reflect.Value) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}

	if number, ok := v.Interface().(json.Number); ok {
		return number, nil
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%v is not a finite number", f)
		}
		return f, nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return []any{}, nil
		}
		items := make([]any, v.Len())
		for i := range v.Len() {
			item, err := normalizeValue(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = item
		}
		return items, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key type %s is not a string", v.Type().Key())
		}
		nested := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			item, err := normalizeValue(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			nested[key] = item
		}
		return nested, nil
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil, nil
		}
		return normalizeValue(v.Elem())
	default:
		return nil, fmt.Errorf("unsupported value of type %s", v.Type())
	}
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(typed))
		for key, item := range typed {
			copied[key] = deepCopy(item)
		}
		return copied
	case []any:
		copied := make([]any, len(typed))
		for i, item := range typed {
			copied[i] = deepCopy(item)
		}
		return copied
	default:
		return typed
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
