package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Infer derives parameter descriptors from an args struct using reflection.
// The struct type is the declared parameter list of a tool; there is no
// runtime introspection of function signatures in Go, so typed args structs
// carry the same information a dynamic signature would.
//
// Rules per exported field, in declaration order:
//
//   - name: the `json` tag name, or the lower-snake form of the field name;
//     fields tagged `json:"-"` are skipped
//   - type: mapped from the field's Go kind (string, integer, number,
//     boolean, array, object); unrecognized kinds fall back to the
//     lower-cased kind name
//   - required: true unless the field is a pointer, has `,omitempty`, or
//     carries a `default` tag
//   - description: the `description` tag, or "Parameter <name>"
//   - enum: the comma-separated `enum` tag values
//   - default: the `default` tag value, parsed per the field type
//
// A struct with no exported fields yields an empty, non-nil slice.
// Infer accepts a struct value or a pointer to one; anything else is an
// error.
func Infer(argsValue any) ([]Param, error) {
	if argsValue == nil {
		return nil, fmt.Errorf("cannot infer parameters from nil")
	}

	t := reflect.TypeOf(argsValue)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot infer parameters from %s, want struct", t.Kind())
	}

	params := make([]Param, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitempty, skip := parseJSONTag(field)
		if skip {
			continue
		}

		p := Param{
			Name:        name,
			Type:        typeTag(field.Type),
			Description: field.Tag.Get("description"),
			Required:    true,
		}

		if p.Description == "" {
			p.Description = "Parameter " + name
		}

		if enumTag := field.Tag.Get("enum"); enumTag != "" {
			for _, v := range strings.Split(enumTag, ",") {
				p.Enum = append(p.Enum, strings.TrimSpace(v))
			}
		}

		if defaultTag, ok := field.Tag.Lookup("default"); ok {
			value, err := parseDefault(defaultTag, p.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			p.Default = value
			p.Required = false
		}

		if omitempty || field.Type.Kind() == reflect.Ptr {
			p.Required = false
		}

		params = append(params, p)
	}

	return params, nil
}

// MustInfer is like Infer but panics on error. Intended for package-level
// tool declarations where the args type is known at compile time.
func MustInfer(argsValue any) []Param {
	params, err := Infer(argsValue)
	if err != nil {
		panic(err)
	}
	return params
}

func parseJSONTag(field reflect.StructField) (name string, omitempty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name = snakeCase(field.Name)
	if tag != "" {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			name = parts[0]
		}
		for _, part := range parts[1:] {
			if part == "omitempty" {
				omitempty = true
			}
		}
	}
	return name, omitempty, false
}

// typeTag maps a Go type to a parameter type tag.
func typeTag(t reflect.Type) Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == reflect.TypeOf(time.Time{}) {
		return TypeString
	}

	switch t.Kind() {
	case reflect.String:
		return TypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger
	case reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Bool:
		return TypeBoolean
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Map, reflect.Struct, reflect.Interface:
		return TypeObject
	default:
		return Type(strings.ToLower(t.Kind().String()))
	}
}

func parseDefault(raw string, tag Type) (any, error) {
	switch tag {
	case TypeString:
		return raw, nil
	case TypeInteger:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer default %q", raw)
		}
		return v, nil
	case TypeNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number default %q", raw)
		}
		return v, nil
	case TypeBoolean:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean default %q", raw)
		}
		return v, nil
	case TypeArray, TypeObject:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("invalid %s default %q", tag, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

// snakeCase converts an exported Go field name to lower_snake_case.
// Acronym runs stay together: "CrawlID" becomes "crawl_id", "URL" becomes
// "url".
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			startsWord := i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if startsWord {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
