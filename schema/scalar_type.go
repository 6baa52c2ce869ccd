package schema

import (
	"fmt"

	"github.com/outpostql/graphql/ast"
)

// ScalarType represents a custom scalar type. The three coercion functions correspond to the
// three places GraphQL needs to move a value across the wire/AST boundary: parsing a literal out
// of a query document, parsing a runtime value out of a decoded variables/arguments payload, and
// serializing a resolver's return value into the response.
type ScalarType struct {
	Name        string
	Description string
	Directives  []*Directive

	// LiteralCoercion coerces an AST literal into this type's Go representation. It should return
	// nil if coercion isn't possible.
	LiteralCoercion func(ast.Value) interface{}

	// VariableValueCoercion coerces a runtime value (e.g. a decoded JSON variable) into this
	// type's Go representation. It should return nil if coercion isn't possible.
	VariableValueCoercion func(interface{}) interface{}

	// ResultCoercion serializes a resolver's return value for inclusion in a response. It should
	// return nil if the value can't be serialized as this type.
	ResultCoercion func(interface{}) interface{}
}

func (t *ScalarType) String() string {
	return t.Name
}

func (t *ScalarType) IsInputType() bool {
	return true
}

func (t *ScalarType) IsOutputType() bool {
	return true
}

func (t *ScalarType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *ScalarType) IsSameType(other Type) bool {
	return t == other
}

func (t *ScalarType) TypeName() string {
	return t.Name
}

// CoerceVariableValue coerces a runtime value into this scalar's Go representation.
func (t *ScalarType) CoerceVariableValue(v interface{}) (interface{}, error) {
	if t.VariableValueCoercion != nil {
		if coerced := t.VariableValueCoercion(v); coerced != nil {
			return coerced, nil
		}
	}
	return nil, fmt.Errorf("cannot coerce to %v", t.Name)
}

// CoerceResult serializes a resolver's return value for this scalar type.
func (t *ScalarType) CoerceResult(v interface{}) (interface{}, error) {
	if t.ResultCoercion != nil {
		if coerced := t.ResultCoercion(v); coerced != nil {
			return coerced, nil
		}
	}
	return nil, fmt.Errorf("cannot coerce result to %v", t.Name)
}

func IsScalarType(t Type) bool {
	_, ok := t.(*ScalarType)
	return ok
}
