package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInputValue(t *testing.T) {
	inputType := &InputObjectType{
		Fields: map[string]*InputValueDefinition{
			"a": &InputValueDefinition{
				Type: StringType,
			},
			"b": &InputValueDefinition{
				Type: NewNonNullType(IntType),
			},
		},
	}

	t.Run("Valid", func(t *testing.T) {
		var errs []error
		result := CoerceInputValue(map[string]interface{}{
			"a": "abc",
			"b": 123,
		}, inputType, func(path []interface{}, value interface{}, err error) {
			errs = append(errs, err)
		})
		assert.Empty(t, errs)
		assert.Equal(t, map[string]interface{}{"a": "abc", "b": 123}, result)
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		var paths [][]interface{}
		CoerceInputValue(map[string]interface{}{
			"a": "abc",
		}, inputType, func(path []interface{}, value interface{}, err error) {
			paths = append(paths, path)
		})
		assert.Equal(t, [][]interface{}{{"b"}}, paths)
	})

	t.Run("UnknownFieldSuggestsNearestName", func(t *testing.T) {
		var messages []string
		CoerceInputValue(map[string]interface{}{
			"a":  "abc",
			"b":  123,
			"aa": "xyz",
		}, inputType, func(path []interface{}, value interface{}, err error) {
			messages = append(messages, err.Error())
		})
		assert.Equal(t, []string{`unknown field. Did you mean "a"?`}, messages)
	})

	t.Run("ScalarLeafError", func(t *testing.T) {
		var errs []error
		CoerceInputValue(map[string]interface{}{
			"a": "abc",
			"b": "not an int",
		}, inputType, func(path []interface{}, value interface{}, err error) {
			errs = append(errs, err)
		})
		assert.Len(t, errs, 1)
	})

	t.Run("NonListCoercesToSingleElementList", func(t *testing.T) {
		listType := NewListType(IntType)
		result := CoerceInputValue(123, listType, func(path []interface{}, value interface{}, err error) {
			t.Fatalf("unexpected error at %v: %v", path, err)
		})
		assert.Equal(t, []interface{}{123}, result)
	})

	t.Run("ListElementErrorsUseIndexPaths", func(t *testing.T) {
		listType := NewListType(IntType)
		var paths [][]interface{}
		CoerceInputValue([]interface{}{1, "bad", 3}, listType, func(path []interface{}, value interface{}, err error) {
			paths = append(paths, path)
		})
		assert.Equal(t, [][]interface{}{{1}}, paths)
	})

	t.Run("NonNullNilFails", func(t *testing.T) {
		var errs []error
		CoerceInputValue(nil, NewNonNullType(StringType), func(path []interface{}, value interface{}, err error) {
			errs = append(errs, err)
		})
		assert.Len(t, errs, 1)
	})
}
