package validator

import (
	"github.com/outpostql/graphql/ast"
	"github.com/outpostql/graphql/schema"
)

func validateVariables(ctx *Context) []*Error {
	var ret []*Error
	for _, def := range ctx.Document.Definitions {
		if def, ok := def.(*ast.OperationDefinition); ok {
			variableDefinitions := map[string]*ast.VariableDefinition{}
			for _, def := range def.VariableDefinitions {
				name := def.Variable.Name.Name
				if _, ok := variableDefinitions[name]; ok {
					ret = append(ret, newError(def.Variable.Name, "a variable with this name already exists"))
				} else {
					variableDefinitions[def.Variable.Name.Name] = def
				}

				if t := schemaType(def.Type, ctx.Schema); t == nil {
					ret = append(ret, newError(def.Type, "unknown type"))
				} else if !t.IsInputType() {
					ret = append(ret, newError(def.Type, "%v is not an input type", t))
				}
			}

			encounteredVariables := map[string]struct{}{}
			for _, usage := range ctx.RecursiveVariableUsages(def) {
				name := usage.Node.Name.Name
				if varDef, ok := variableDefinitions[name]; !ok {
					ret = append(ret, newError(usage.Node, "undefined variable"))
				} else if err := validateVariableUsage(varDef, usage, ctx.Schema); err != nil {
					ret = append(ret, err)
				}
				encounteredVariables[name] = struct{}{}
			}

			for _, v := range def.VariableDefinitions {
				if _, ok := encounteredVariables[v.Variable.Name.Name]; !ok {
					ret = append(ret, newError(v.Variable, "unused variable"))
				}
			}
		}
	}
	return ret
}

func validateVariableUsage(def *ast.VariableDefinition, usage *VariableUsage, s *schema.Schema) *Error {
	variableType := schemaType(def.Type, s)
	locationType := usage.Type

	if variableType == nil {
		return newSecondaryError(def, "no type info for variable type")
	} else if locationType == nil {
		return newSecondaryError(usage.Node, "no type info for location type")
	}

	if nonNullLocationType, ok := locationType.(*schema.NonNullType); ok && !schema.IsNonNullType(variableType) {
		hasNonNullVariableDefaultValue := def.DefaultValue != nil && !ast.IsNullValue(def.DefaultValue)
		hasLocationDefaultValue := usage.DefaultValue != nil
		if !hasNonNullVariableDefaultValue && !hasLocationDefaultValue {
			return newError(usage.Node, "cannot use nullable variable where non-null type is expected")
		}
		locationType = nonNullLocationType.Type
	}

	if !areTypesCompatible(variableType, locationType) {
		return newError(usage.Node, "incompatible variable type")
	}

	return nil
}

func areTypesCompatible(variableType, locationType schema.Type) bool {
	if nonNullLocationType, ok := locationType.(*schema.NonNullType); ok {
		if nonNullVariableType, ok := variableType.(*schema.NonNullType); ok {
			return areTypesCompatible(nonNullVariableType.Type, nonNullLocationType.Type)
		}
		return false
	}

	if nonNullVariableType, ok := variableType.(*schema.NonNullType); ok {
		return areTypesCompatible(nonNullVariableType.Type, locationType)
	}

	if listLocationType, ok := locationType.(*schema.ListType); ok {
		if listVariableType, ok := variableType.(*schema.ListType); ok {
			return areTypesCompatible(listVariableType.Type, listLocationType.Type)
		}
		return false
	}

	if _, ok := variableType.(*schema.ListType); ok {
		return false
	}

	return variableType.IsSameType(locationType)
}
