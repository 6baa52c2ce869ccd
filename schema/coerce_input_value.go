package schema

import "fmt"

// CoerceInputValue coerces a runtime (non-AST) value against an input type, reporting every
// leaf-level failure to onError instead of aborting on the first one. Unlike CoerceVariableValue,
// which returns as soon as any single value fails to coerce, this keeps descending into sibling
// fields and list elements so a caller can surface every offending leaf from one pass, each
// located by a response path built the same way executor.Path flattens one (string field names,
// int list indices).
//
// This is the entry point used when an input value arrives already as a Go value rather than as
// an AST literal or a top-level variable -- for example a resolver computing a derived argument
// object to pass into a nested coercion. onError must not be nil.
func CoerceInputValue(value interface{}, t Type, onError func(path []interface{}, value interface{}, err error)) interface{} {
	return coerceInputValue(nil, value, t, onError)
}

func appendPath(path []interface{}, segment interface{}) []interface{} {
	next := make([]interface{}, len(path)+1)
	copy(next, path)
	next[len(path)] = segment
	return next
}

func coerceInputValue(path []interface{}, value interface{}, t Type, onError func([]interface{}, interface{}, error)) interface{} {
	if nn, ok := t.(*NonNullType); ok {
		if value == nil {
			onError(path, value, fmt.Errorf("a value is required"))
			return nil
		}
		return coerceInputValue(path, value, nn.Type, onError)
	}

	if value == nil {
		return nil
	}

	switch t := t.(type) {
	case *ListType:
		items, ok := value.([]interface{})
		if !ok {
			// A non-list value is coerced as though it were a single-element list.
			return []interface{}{coerceInputValue(appendPath(path, 0), value, t.Type, onError)}
		}
		result := make([]interface{}, len(items))
		for i, item := range items {
			result[i] = coerceInputValue(appendPath(path, i), item, t.Type, onError)
		}
		return result
	case *InputObjectType:
		obj, ok := value.(map[string]interface{})
		if !ok {
			onError(path, value, fmt.Errorf("expected an object"))
			return nil
		}

		fieldNames := make([]string, 0, len(t.Fields))
		for name := range t.Fields {
			fieldNames = append(fieldNames, name)
		}

		result := map[string]interface{}{}
		for name, field := range t.Fields {
			if v, ok := obj[name]; ok {
				result[name] = coerceInputValue(appendPath(path, name), v, field.Type, onError)
			} else if field.DefaultValue != nil {
				if field.DefaultValue == Null {
					result[name] = nil
				} else {
					result[name] = field.DefaultValue
				}
			} else if IsNonNullType(field.Type) {
				onError(appendPath(path, name), nil, fmt.Errorf("the %v field is required", name))
			}
		}
		for name, v := range obj {
			if _, ok := t.Fields[name]; !ok {
				suggestions := SuggestionMessage(NearestNames(name, fieldNames))
				onError(appendPath(path, name), v, fmt.Errorf("unknown field.%s", suggestions))
			}
		}

		if t.InputCoercion != nil {
			if coerced, err := t.InputCoercion(result); err != nil {
				onError(path, value, err)
				return nil
			} else {
				return coerced
			}
		}
		return result
	case *ScalarType, *EnumType:
		coerced, err := CoerceVariableValue(value, t)
		if err != nil {
			onError(path, value, err)
			return nil
		}
		return coerced
	default:
		panic("unexpected input coercion type")
	}
}
