package schema

import (
	"fmt"

	"github.com/outpostql/graphql/ast"
)

type EnumType struct {
	Name        string
	Description string
	Directives  []*Directive
	Values      map[string]*EnumValueDefinition
}

// EnumValueDefinition defines one of an enum type's values. Value is the Go representation that
// this member is coerced to/from. If nil, the member's name is used as its value.
type EnumValueDefinition struct {
	Description       string
	Directives        []*Directive
	Value             interface{}
	DeprecationReason string
}

func (t *EnumType) String() string {
	return t.Name
}

func (t *EnumType) IsInputType() bool {
	return true
}

func (t *EnumType) IsOutputType() bool {
	return true
}

func (t *EnumType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *EnumType) IsSameType(other Type) bool {
	return t == other
}

func (t *EnumType) TypeName() string {
	return t.Name
}

func (t *EnumType) valueOf(name string) (interface{}, bool) {
	def, ok := t.Values[name]
	if !ok {
		return nil, false
	}
	if def.Value != nil {
		return def.Value, true
	}
	return name, true
}

func (t *EnumType) nameOf(value interface{}) (string, bool) {
	for name, def := range t.Values {
		if def.Value != nil {
			if def.Value == value {
				return name, true
			}
		} else if name == value {
			return name, true
		}
	}
	return "", false
}

// CoerceLiteral coerces an enum value literal (which must be an ast.EnumValue) into this enum's Go
// representation.
func (t *EnumType) CoerceLiteral(from ast.Value) (interface{}, error) {
	enumValue, ok := from.(*ast.EnumValue)
	if !ok {
		return nil, fmt.Errorf("expected an enum value")
	}
	if v, ok := t.valueOf(enumValue.Value); ok {
		return v, nil
	}
	return nil, fmt.Errorf("%v is not a valid value for %v", enumValue.Value, t.Name)
}

// CoerceVariableValue coerces a runtime value (typically the enum's name as a string) into this
// enum's Go representation.
func (t *EnumType) CoerceVariableValue(v interface{}) (interface{}, error) {
	name, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected a string")
	}
	if value, ok := t.valueOf(name); ok {
		return value, nil
	}
	return nil, fmt.Errorf("%v is not a valid value for %v", name, t.Name)
}

// CoerceResult serializes a resolver's return value (either the Go representation registered via
// EnumValueDefinition.Value, or the member's name itself) into the member's name.
func (t *EnumType) CoerceResult(v interface{}) (interface{}, error) {
	if name, ok := t.nameOf(v); ok {
		return name, nil
	}
	return nil, fmt.Errorf("%v is not a valid value for %v", v, t.Name)
}

func (d *EnumType) shallowValidate() error {
	if len(d.Values) == 0 {
		return fmt.Errorf("%v must have at least one field", d.Name)
	} else {
		for name := range d.Values {
			if !isName(name) || name == "true" || name == "false" || name == "null" {
				return fmt.Errorf("illegal field name: %v", name)
			}
		}
	}
	return nil
}

func IsEnumType(t Type) bool {
	_, ok := t.(*EnumType)
	return ok
}
