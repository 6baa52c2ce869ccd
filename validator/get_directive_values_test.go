package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outpostql/graphql/ast"
	"github.com/outpostql/graphql/parser"
	"github.com/outpostql/graphql/schema"
)

func directivesOnFieldForTest(t *testing.T, src, fieldName string) []*ast.Directive {
	doc, parseErrs := parser.ParseDocument([]byte(src))
	require.Empty(t, parseErrs)
	require.NotNil(t, doc)

	var directives []*ast.Directive
	ast.Inspect(doc, func(n ast.Node) bool {
		if field, ok := n.(*ast.Field); ok && field.Name.Name == fieldName {
			directives = field.Directives
			return false
		}
		return true
	})
	return directives
}

func TestGetDirectiveValues(t *testing.T) {
	s, err := schema.New(&schema.SchemaDefinition{
		Query: objectType,
		Directives: map[string]*schema.DirectiveDefinition{
			"include": schema.IncludeDirective,
			"skip":    schema.SkipDirective,
		},
	})
	require.NoError(t, err)

	directives := directivesOnFieldForTest(t, `{ scalar @include(if: $shouldInclude) }`, "scalar")
	require.Len(t, directives, 1)

	values, vErr := GetDirectiveValues(s, "include", directives, map[string]interface{}{"shouldInclude": true})
	assert.Nil(t, vErr)
	assert.Equal(t, map[string]interface{}{"if": true}, values)
}

func TestGetDirectiveValues_NotPresent(t *testing.T) {
	s, err := schema.New(&schema.SchemaDefinition{
		Query: objectType,
		Directives: map[string]*schema.DirectiveDefinition{
			"include": schema.IncludeDirective,
			"skip":    schema.SkipDirective,
		},
	})
	require.NoError(t, err)

	directives := directivesOnFieldForTest(t, `{ scalar @include(if: true) }`, "scalar")
	require.Len(t, directives, 1)

	values, vErr := GetDirectiveValues(s, "skip", directives, nil)
	assert.Nil(t, vErr)
	assert.Nil(t, values)
}

func TestGetDirectiveValues_UndefinedDirective(t *testing.T) {
	s, err := schema.New(&schema.SchemaDefinition{
		Query: objectType,
	})
	require.NoError(t, err)

	values, vErr := GetDirectiveValues(s, "nope", nil, nil)
	assert.Nil(t, vErr)
	assert.Nil(t, values)
}
