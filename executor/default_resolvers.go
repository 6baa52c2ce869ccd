package executor

import (
	"fmt"
	"reflect"
	"unicode"

	"github.com/outpostql/graphql/schema"
)

// DefaultFieldResolver resolves a field the way the executor does whenever neither the field's own
// FieldDefinition.Resolve nor the request's FieldResolver supplies one: it looks up fc.FieldName as
// a property of fc.Object. If fc.Object is a map[string]interface{}, that's a map key lookup.
// Otherwise it's treated as a (possibly pointer-to) struct, and fc.FieldName is looked up first as
// an exported field, then as a zero-or-one-argument method, capitalizing the first rune of
// fc.FieldName to reach Go's exported-identifier convention. A method may take no arguments, a
// single map[string]interface{} of the field's coerced arguments, or a single *schema.FieldContext.
func DefaultFieldResolver(fc *schema.FieldContext) (interface{}, error) {
	if fc.Object == nil {
		return nil, nil
	}

	if m, ok := fc.Object.(map[string]interface{}); ok {
		return m[fc.FieldName], nil
	}

	rv := reflect.ValueOf(fc.Object)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, nil
	}

	name := exportedName(fc.FieldName)
	if field := rv.FieldByName(name); field.IsValid() {
		return field.Interface(), nil
	}

	if method := reflect.ValueOf(fc.Object).MethodByName(name); method.IsValid() {
		return callResolverMethod(method, fc)
	}

	return nil, nil
}

func exportedName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func callResolverMethod(method reflect.Value, fc *schema.FieldContext) (interface{}, error) {
	t := method.Type()

	var args []reflect.Value
	switch t.NumIn() {
	case 0:
	case 1:
		switch t.In(0) {
		case reflect.TypeOf(fc):
			args = []reflect.Value{reflect.ValueOf(fc)}
		case reflect.TypeOf(fc.Arguments):
			args = []reflect.Value{reflect.ValueOf(fc.Arguments)}
		default:
			return nil, fmt.Errorf("unsupported resolver method signature for field %q", fc.FieldName)
		}
	default:
		return nil, fmt.Errorf("unsupported resolver method signature for field %q", fc.FieldName)
	}

	out := method.Call(args)
	switch len(out) {
	case 1:
		return out[0].Interface(), nil
	case 2:
		err, _ := out[1].Interface().(error)
		return out[0].Interface(), err
	default:
		return nil, fmt.Errorf("unsupported resolver method signature for field %q", fc.FieldName)
	}
}

// DefaultTypeResolver resolves an abstract (interface or union) type's concrete object type for a
// result value the way the executor does by default: if the value carries an explicit
// "__typename" (a map key, or an exported "Typename" struct field), that name is trusted directly;
// otherwise each possible concrete type's IsTypeOf is tried in declaration order and the first
// match wins. Returns nil if no concrete type could be determined.
func DefaultTypeResolver(s *schema.Schema, abstractType schema.NamedType, result interface{}) *schema.ObjectType {
	possibleTypes := possibleTypesOf(s, abstractType)

	if name, ok := typenameOf(result); ok {
		for _, t := range possibleTypes {
			if t.Name == name {
				return t
			}
		}
		return nil
	}

	for _, t := range possibleTypes {
		if t.IsTypeOf != nil && t.IsTypeOf(result) {
			return t
		}
	}
	return nil
}

func possibleTypesOf(s *schema.Schema, t schema.NamedType) []*schema.ObjectType {
	switch t := t.(type) {
	case *schema.InterfaceType:
		return s.InterfaceImplementations(t.Name)
	case *schema.UnionType:
		return t.MemberTypes
	case *schema.ObjectType:
		return []*schema.ObjectType{t}
	}
	return nil
}

func typenameOf(value interface{}) (string, bool) {
	if m, ok := value.(map[string]interface{}); ok {
		if name, ok := m["__typename"].(string); ok {
			return name, true
		}
		return "", false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		if f := rv.FieldByName("Typename"); f.IsValid() && f.Kind() == reflect.String {
			return f.String(), true
		}
	}
	return "", false
}
