package schema

import (
	"fmt"

	"github.com/outpostql/graphql/ast"
)

type ListType struct {
	Type Type
}

func NewListType(t Type) *ListType {
	return &ListType{
		Type: t,
	}
}

func (t *ListType) String() string {
	return "[" + t.Type.String() + "]"
}

func (t *ListType) IsInputType() bool {
	return t.Type.IsInputType()
}

func (t *ListType) IsOutputType() bool {
	return t.Type.IsOutputType()
}

func (t *ListType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *ListType) IsSameType(other Type) bool {
	if nn, ok := other.(*ListType); ok {
		return t.Type.IsSameType(nn.Type)
	}
	return false
}

func (t *ListType) Unwrap() Type {
	return t.Type
}

func (t *ListType) coerceVariableValue(v interface{}, allowItemToListCoercion bool) (interface{}, error) {
	switch v := v.(type) {
	case []interface{}:
		ret := make([]interface{}, len(v))
		for i, item := range v {
			coerced, err := coerceVariableValue(item, t.Type, false)
			if err != nil {
				return nil, fmt.Errorf("index %v: %w", i, err)
			}
			ret[i] = coerced
		}
		return ret, nil
	default:
		if !allowItemToListCoercion {
			return nil, fmt.Errorf("expected a list")
		}
		coerced, err := coerceVariableValue(v, t.Type, true)
		if err != nil {
			return nil, err
		}
		return []interface{}{coerced}, nil
	}
}

func (t *ListType) coerceLiteral(from ast.Value, variableValues map[string]interface{}, allowItemToListCoercion bool) (interface{}, error) {
	switch from := from.(type) {
	case *ast.ListValue:
		ret := make([]interface{}, len(from.Values))
		for i, item := range from.Values {
			coerced, err := coerceLiteral(item, t.Type, variableValues, false)
			if err != nil {
				return nil, fmt.Errorf("index %v: %w", i, err)
			}
			ret[i] = coerced
		}
		return ret, nil
	default:
		if !allowItemToListCoercion {
			return nil, fmt.Errorf("expected a list")
		}
		coerced, err := coerceLiteral(from, t.Type, variableValues, true)
		if err != nil {
			return nil, err
		}
		return []interface{}{coerced}, nil
	}
}

func (t *ListType) shallowValidate() error {
	return nil
}

func IsListType(t Type) bool {
	_, ok := t.(*ListType)
	return ok
}
