package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/outpostql/graphql/schema"
)

type widget struct {
	Name string
}

func (w widget) Volume(args map[string]interface{}) interface{} {
	if loud, _ := args["loud"].(bool); loud {
		return 11
	}
	return 1
}

func TestDefaultFieldResolver_Map(t *testing.T) {
	fc := &schema.FieldContext{Object: map[string]interface{}{"name": "gadget"}, FieldName: "name"}
	v, err := DefaultFieldResolver(fc)
	assert.NoError(t, err)
	assert.Equal(t, "gadget", v)
}

func TestDefaultFieldResolver_StructField(t *testing.T) {
	fc := &schema.FieldContext{Object: widget{Name: "gadget"}, FieldName: "name"}
	v, err := DefaultFieldResolver(fc)
	assert.NoError(t, err)
	assert.Equal(t, "gadget", v)
}

func TestDefaultFieldResolver_StructMethod(t *testing.T) {
	fc := &schema.FieldContext{
		Object:    widget{Name: "gadget"},
		FieldName: "volume",
		Arguments: map[string]interface{}{"loud": true},
	}
	v, err := DefaultFieldResolver(fc)
	assert.NoError(t, err)
	assert.Equal(t, 11, v)
}

func TestDefaultFieldResolver_NilObject(t *testing.T) {
	v, err := DefaultFieldResolver(&schema.FieldContext{FieldName: "name"})
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestDefaultFieldResolver_UnknownStructField(t *testing.T) {
	fc := &schema.FieldContext{Object: widget{Name: "gadget"}, FieldName: "color"}
	v, err := DefaultFieldResolver(fc)
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func petSchemaForTest(t *testing.T) *schema.Schema {
	s, err := schema.New(&schema.SchemaDefinition{
		Query:           objectType,
		AdditionalTypes: []schema.NamedType{dogType, catType},
	})
	assert.NoError(t, err)
	return s
}

func TestDefaultTypeResolver_TypenameShortcut(t *testing.T) {
	s := petSchemaForTest(t)

	result := map[string]interface{}{"__typename": "Cat", "nickname": "fluffy"}
	objectType := DefaultTypeResolver(s, petType, result)
	assert.Equal(t, catType, objectType)
}

func TestDefaultTypeResolver_IsTypeOfFallback(t *testing.T) {
	s := petSchemaForTest(t)

	objectType := DefaultTypeResolver(s, petType, dog{})
	assert.Equal(t, dogType, objectType)
}

func TestDefaultTypeResolver_NoMatch(t *testing.T) {
	s := petSchemaForTest(t)

	objectType := DefaultTypeResolver(s, petType, "neither")
	assert.Nil(t, objectType)
}
