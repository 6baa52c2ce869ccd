package validator

import (
	"github.com/outpostql/graphql/ast"
	"github.com/outpostql/graphql/schema"
)

func validateArguments(ctx *Context) []*Error {
	var ret []*Error
	ast.Inspect(ctx.Document, func(node ast.Node) bool {
		var arguments []*ast.Argument
		var argumentDefinitions map[string]*schema.InputValueDefinition

		switch node := node.(type) {
		case *ast.Directive:
			if def := ctx.Schema.Directives()[node.Name.Name]; def != nil {
				arguments = node.Arguments
				argumentDefinitions = def.Arguments
			} else {
				ret = append(ret, newSecondaryError(node, "undefined directive"))
				return false
			}
		case *ast.Field:
			arguments = node.Arguments
			if def := ctx.FieldDefinitions[node]; def != nil {
				argumentDefinitions = def.Arguments
			} else if node.Name.Name != "__typename" {
				ret = append(ret, newSecondaryError(node, "no type info for field"))
				return false
			}
		}

		if len(arguments) == 0 && len(argumentDefinitions) == 0 {
			return true
		}

		argumentNames := make([]string, 0, len(argumentDefinitions))
		for name := range argumentDefinitions {
			argumentNames = append(argumentNames, name)
		}

		argumentsByName := map[string]*ast.Argument{}
		for _, argument := range arguments {
			name := argument.Name.Name
			if def := argumentDefinitions[name]; def == nil {
				ret = append(ret, newError(argument, "undefined argument.%s", schema.SuggestionMessage(schema.NearestNames(name, argumentNames))))
			} else if _, ok := argumentsByName[name]; ok {
				ret = append(ret, newError(argument, "duplicate argument"))
			} else {
				argumentsByName[name] = argument
			}
		}

		for name, def := range argumentDefinitions {
			if schema.IsNonNullType(def.Type) && def.DefaultValue == nil {
				if arg, ok := argumentsByName[name]; !ok {
					ret = append(ret, newError(node, "the %v argument is required", name))
				} else if ast.IsNullValue(arg.Value) {
					// primarily checked during value validation
					ret = append(ret, newSecondaryError(arg.Value, "the %v argument cannot be null", name))
				}
			}
		}

		return false
	})
	return ret
}
