package schema

import (
	"fmt"
	"reflect"
)

// Type is a parameter type tag. The set is closed: values outside the
// constants below only appear when inference falls back to an unrecognized
// Go kind name.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Param describes one tool input. A Param is immutable once constructed;
// the With* methods return modified copies.
type Param struct {
	// Name is the parameter name, unique within a tool.
	Name string `json:"name"`

	// Type is the declared type tag.
	Type Type `json:"type"`

	// Description is the human-readable parameter description.
	Description string `json:"description,omitempty"`

	// Required reports whether the caller must supply a value.
	// Required=false implies a default exists.
	Required bool `json:"required"`

	// Enum restricts the value to an ordered set of allowed literals.
	Enum []any `json:"enum,omitempty"`

	// Default is the value applied when an optional parameter is absent.
	Default any `json:"default,omitempty"`
}

// String creates a required string parameter.
func String(name, description string) Param {
	return Param{Name: name, Type: TypeString, Description: description, Required: true}
}

// Integer creates a required integer parameter.
func Integer(name, description string) Param {
	return Param{Name: name, Type: TypeInteger, Description: description, Required: true}
}

// Number creates a required number parameter.
func Number(name, description string) Param {
	return Param{Name: name, Type: TypeNumber, Description: description, Required: true}
}

// Bool creates a required boolean parameter.
func Bool(name, description string) Param {
	return Param{Name: name, Type: TypeBoolean, Description: description, Required: true}
}

// Array creates a required array parameter.
func Array(name, description string) Param {
	return Param{Name: name, Type: TypeArray, Description: description, Required: true}
}

// Object creates a required object parameter.
func Object(name, description string) Param {
	return Param{Name: name, Type: TypeObject, Description: description, Required: true}
}

// Optional returns a copy of the parameter marked as not required.
func (p Param) Optional() Param {
	p.Required = false
	return p
}

// WithEnum returns a copy of the parameter restricted to the given values.
func (p Param) WithEnum(values ...any) Param {
	p.Enum = values
	return p
}

// WithDefault returns a copy of the parameter with a default value.
// A parameter with a default is implicitly optional.
func (p Param) WithDefault(value any) Param {
	p.Default = value
	p.Required = false
	return p
}

// Validate checks a provided value against the parameter's declared type
// and enum. A nil value is rejected for every type tag.
func (p Param) Validate(value any) error {
	if value == nil {
		return fmt.Errorf("parameter %q: expected %s, got nil", p.Name, p.Type)
	}

	if err := p.validateType(value); err != nil {
		return err
	}

	return p.validateEnum(value)
}

func (p Param) validateType(value any) error {
	switch p.Type {
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("parameter %q: expected string, got %T", p.Name, value)
		}
	case TypeInteger:
		if !isInteger(value) {
			return fmt.Errorf("parameter %q: expected integer, got %T", p.Name, value)
		}
	case TypeNumber:
		if !isNumber(value) {
			return fmt.Errorf("parameter %q: expected number, got %T", p.Name, value)
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("parameter %q: expected boolean, got %T", p.Name, value)
		}
	case TypeArray:
		kind := reflect.ValueOf(value).Kind()
		if kind != reflect.Slice && kind != reflect.Array {
			return fmt.Errorf("parameter %q: expected array, got %T", p.Name, value)
		}
	case TypeObject:
		kind := reflect.ValueOf(value).Kind()
		if kind != reflect.Map && kind != reflect.Struct {
			return fmt.Errorf("parameter %q: expected object, got %T", p.Name, value)
		}
	default:
		// Unrecognized tags (inference fallbacks) accept any value.
	}
	return nil
}

func (p Param) validateEnum(value any) error {
	if len(p.Enum) == 0 {
		return nil
	}

	for _, allowed := range p.Enum {
		if reflect.DeepEqual(value, allowed) {
			return nil
		}
		// JSON decoding turns numbers into float64; compare textual forms
		// so enum entries declared as ints still match.
		if fmt.Sprintf("%v", value) == fmt.Sprintf("%v", allowed) {
			return nil
		}
	}

	return fmt.Errorf("parameter %q: value %v is not one of the allowed values %v", p.Name, value, p.Enum)
}

// isInteger reports whether the value is an integer, accepting whole
// floats because JSON decoding produces float64 for all numbers.
func isInteger(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return v == float64(int64(v))
	case float32:
		return v == float32(int32(v))
	default:
		return false
	}
}

func isNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}
