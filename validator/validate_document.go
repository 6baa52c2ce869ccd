package validator

import (
	"github.com/outpostql/graphql/ast"
)

func validateDocument(ctx *Context) []*Error {
	var ret []*Error
	for _, def := range ctx.Document.Definitions {
		switch def.(type) {
		case *ast.OperationDefinition, *ast.FragmentDefinition:
		default:
			ret = append(ret, newError(def, "definitions must define an operation or fragment"))
		}
	}
	return ret
}
