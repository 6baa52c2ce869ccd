package validator

import (
	"github.com/outpostql/graphql/ast"
	"github.com/outpostql/graphql/schema"
)

// GetDirectiveValues returns the coerced argument values for directiveName's occurrence among
// directives, or (nil, nil) if directiveName isn't defined on s or doesn't appear in directives.
// This generalizes the lookup the executor already performs for @skip/@include's "if" argument to
// any directive definition.
func GetDirectiveValues(s *schema.Schema, directiveName string, directives []*ast.Directive, variableValues map[string]interface{}) (map[string]interface{}, *Error) {
	def := s.Directives()[directiveName]
	if def == nil {
		return nil, nil
	}
	for _, directive := range directives {
		if directive.Name.Name != directiveName {
			continue
		}
		return CoerceArgumentValues(directive, def.Arguments, directive.Arguments, variableValues)
	}
	return nil, nil
}
