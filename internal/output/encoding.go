// Package output renders CLI responses deterministically: stable key order,
// bounded float precision, byte-identical output for identical input.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// EncodeJSON produces indented, byte-stable JSON: all keys sorted
// alphabetically, floats rounded to six decimal places.
func EncodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalizeFloats(v)); err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	// Encode appends a newline; callers add their own.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EncodeYAML produces YAML with the same float normalization. yaml.v3 already
// sorts map keys.
func EncodeYAML(v interface{}) ([]byte, error) {
	data, err := yaml.Marshal(normalizeFloats(v))
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return bytes.TrimRight(data, "\n"), nil
}

// RoundFloat rounds a float to max 6 decimal places.
func RoundFloat(f float64) float64 {
	const multiplier = 1e6
	return math.Round(f*multiplier) / multiplier
}

// normalizeFloats rewrites every float in v to its rounded form so encoders
// cannot leak representation noise into the output.
func normalizeFloats(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		return RoundFloat(val.Float())
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return nil
		}
		out := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = normalizeFloats(val.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if val.IsNil() {
			return nil
		}
		out := make(map[string]interface{}, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out[fmt.Sprintf("%v", iter.Key().Interface())] = normalizeFloats(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		return normalizeStruct(val)
	default:
		return val.Interface()
	}
}

// normalizeStruct converts a struct to a field map, honoring json tags so the
// normalized form encodes under the same keys as the original.
func normalizeStruct(val reflect.Value) interface{} {
	typ := val.Type()
	out := make(map[string]interface{}, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitEmpty := parseJSONTag(field.Tag.Get("json"))
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		normalized := normalizeFloats(val.Field(i).Interface())
		if omitEmpty && isZeroValue(normalized) {
			continue
		}
		out[name] = normalized
	}
	return out
}

func parseJSONTag(tag string) (name string, omitEmpty bool) {
	if tag == "" {
		return "", false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}

func isZeroValue(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	default:
		return false
	}
}
