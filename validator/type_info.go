package validator

import (
	"fmt"

	"github.com/outpostql/graphql/ast"
	"github.com/outpostql/graphql/schema"
	"github.com/outpostql/graphql/schema/introspection"
)

// typenameFieldDefinition describes the "__typename" meta-field, which is selectable on any
// composite type without being part of its Fields map.
var typenameFieldDefinition = &schema.FieldDefinition{
	Type: schema.NewNonNullType(schema.StringType),
}

// TypeInfo tracks the schema types implicated by a position within a document as the document is
// walked. It implements ast.Visitor, pushing onto a handful of stacks on Enter and popping them on
// Leave, so that at any point during the walk, the accessor methods describe the current
// position: the type of the node being visited, the type of its enclosing selection set, the
// input type a value is expected to satisfy, and so on.
//
// TypeInfo also retains the legacy map-shaped views used by the rest of the package's validation
// rules (SelectionSetTypes, FieldDefinitions, etc.), populated as a side effect of the same walk.
type TypeInfo struct {
	SelectionSetTypes       map[*ast.SelectionSet]schema.NamedType
	VariableDefinitionTypes map[*ast.VariableDefinition]schema.Type
	FieldDefinitions        map[*ast.Field]*schema.FieldDefinition
	ExpectedTypes           map[ast.Value]schema.Type
	DefaultValues           map[ast.Value]interface{}

	schema *schema.Schema

	typeStack         []schema.Type
	parentTypeStack   []schema.NamedType
	inputTypeStack    []schema.Type
	fieldDefStack     []*schema.FieldDefinition
	directiveStack    []*schema.DirectiveDefinition
	argumentStack     []*schema.InputValueDefinition
	enumValueStack    []*schema.EnumValueDefinition
	defaultValueStack []*defaultValueEntry
}

type defaultValueEntry struct {
	value interface{}
}

func schemaType(t ast.Type, s *schema.Schema) schema.Type {
	switch t := t.(type) {
	case *ast.ListType:
		if inner := schemaType(t.Type, s); inner != nil {
			return schema.NewListType(inner)
		}
	case *ast.NonNullType:
		if inner := schemaType(t.Type, s); inner != nil {
			return schema.NewNonNullType(inner)
		}
	case *ast.NamedType:
		return s.NamedType(t.Name.Name)
	default:
		panic(fmt.Sprintf("unsupported ast type: %T", t))
	}
	return nil
}

// NewTypeInfo builds a TypeInfo by walking doc with s as the governing schema.
func NewTypeInfo(doc *ast.Document, s *schema.Schema) *TypeInfo {
	ret := newScopedTypeInfo(s)
	ast.Walk(doc, ret)
	return ret
}

// newScopedTypeInfo builds an empty TypeInfo against s without walking anything, for callers that
// drive their own (possibly narrower) ast.Walk via VisitWithTypeInfo rather than walking an entire
// document up front.
func newScopedTypeInfo(s *schema.Schema) *TypeInfo {
	return &TypeInfo{
		SelectionSetTypes:       map[*ast.SelectionSet]schema.NamedType{},
		VariableDefinitionTypes: map[*ast.VariableDefinition]schema.Type{},
		FieldDefinitions:        map[*ast.Field]*schema.FieldDefinition{},
		ExpectedTypes:           map[ast.Value]schema.Type{},
		DefaultValues:           map[ast.Value]interface{}{},
		schema:                  s,
	}
}

// typeInfoVisitor wraps a visitor so that ti's stacks stay synchronized with the node v is
// currently visiting: ti.Enter runs before v.Enter, so by the time v's callback observes a node,
// ti's accessors (Type, ParentType, InputType, FieldDefinition, ...) already describe it, and
// ti.Leave runs after v.Leave, mirroring the same order on the way out.
type typeInfoVisitor struct {
	ti *TypeInfo
	v  ast.Visitor
}

// VisitWithTypeInfo returns a visitor that drives ti's stack-based accessors in lockstep with v as
// both walk the same document. This is how a rule reaches TypeInfo's live accessors instead of its
// precomputed maps: build a scoped TypeInfo with newScopedTypeInfo (or reuse an existing one),
// wrap the rule's own ast.Visitor with this function, and pass the result to ast.Walk.
func VisitWithTypeInfo(ti *TypeInfo, v ast.Visitor) ast.Visitor {
	return &typeInfoVisitor{ti: ti, v: v}
}

func (w *typeInfoVisitor) Enter(node ast.Node) ast.VisitAction {
	w.ti.Enter(node)
	return w.v.Enter(node)
}

func (w *typeInfoVisitor) Leave(node ast.Node) {
	w.v.Leave(node)
	w.ti.Leave(node)
}

// Type returns the output type of the node currently being visited, if any.
func (ti *TypeInfo) Type() schema.Type {
	if n := len(ti.typeStack); n > 0 {
		return ti.typeStack[n-1]
	}
	return nil
}

// ParentType returns the type whose fields are being selected from at the current position, i.e.
// the type of the innermost enclosing selection set.
func (ti *TypeInfo) ParentType() schema.NamedType {
	if n := len(ti.parentTypeStack); n > 0 {
		return ti.parentTypeStack[n-1]
	}
	return nil
}

// InputType returns the input type a value at the current position is expected to satisfy.
func (ti *TypeInfo) InputType() schema.Type {
	if n := len(ti.inputTypeStack); n > 0 {
		return ti.inputTypeStack[n-1]
	}
	return nil
}

// FieldDefinition returns the definition of the field currently being visited, if any.
func (ti *TypeInfo) FieldDefinition() *schema.FieldDefinition {
	if n := len(ti.fieldDefStack); n > 0 {
		return ti.fieldDefStack[n-1]
	}
	return nil
}

// Directive returns the definition of the directive currently being visited, if any.
func (ti *TypeInfo) Directive() *schema.DirectiveDefinition {
	if n := len(ti.directiveStack); n > 0 {
		return ti.directiveStack[n-1]
	}
	return nil
}

// Argument returns the definition of the argument currently being visited, if any.
func (ti *TypeInfo) Argument() *schema.InputValueDefinition {
	if n := len(ti.argumentStack); n > 0 {
		return ti.argumentStack[n-1]
	}
	return nil
}

// EnumValue returns the definition of the enum value currently being visited, if any.
func (ti *TypeInfo) EnumValue() *schema.EnumValueDefinition {
	if n := len(ti.enumValueStack); n > 0 {
		return ti.enumValueStack[n-1]
	}
	return nil
}

// DefaultValue returns the default value applicable at the current position and whether one is
// defined. An explicit null default is reported as (nil, true).
func (ti *TypeInfo) DefaultValue() (interface{}, bool) {
	if n := len(ti.defaultValueStack); n > 0 {
		if e := ti.defaultValueStack[n-1]; e != nil {
			return e.value, true
		}
	}
	return nil, false
}

// fieldDefinitionOf looks up the field definition for name on parent, including the "__typename"
// meta-field (selectable on any composite type) and the "__schema"/"__type" meta-fields
// (selectable only on the query root).
func (ti *TypeInfo) fieldDefinitionOf(parent schema.NamedType, name string) *schema.FieldDefinition {
	var field *schema.FieldDefinition
	switch parent := parent.(type) {
	case *schema.InterfaceType:
		field = parent.Fields[name]
	case *schema.ObjectType:
		field = parent.Fields[name]
		if field == nil && parent == ti.schema.QueryType() {
			field = introspection.MetaFields[name]
		}
	}
	if field == nil && name == "__typename" {
		switch parent.(type) {
		case *schema.ObjectType, *schema.InterfaceType, *schema.UnionType:
			field = typenameFieldDefinition
		}
	}
	return field
}

func (ti *TypeInfo) Enter(node ast.Node) ast.VisitAction {
	var t schema.Type
	var parentType schema.NamedType
	var inputType schema.Type
	var fieldDef *schema.FieldDefinition
	var directive *schema.DirectiveDefinition
	var argument *schema.InputValueDefinition
	var enumValue *schema.EnumValueDefinition
	var defaultValue *defaultValueEntry

	switch node := node.(type) {
	case *ast.OperationDefinition:
		var opType *schema.ObjectType
		switch op := node.OperationType; {
		case op == nil || op.Value == "query":
			opType = ti.schema.QueryType()
		case op.Value == "mutation":
			opType = ti.schema.MutationType()
		case op.Value == "subscription":
			opType = ti.schema.SubscriptionType()
		}
		if opType != nil {
			t = opType
			parentType = opType
		}
	case *ast.FragmentDefinition:
		t = ti.schema.NamedType(node.TypeCondition.Name.Name)
		if t != nil {
			parentType = t.(schema.NamedType)
		}
	case *ast.InlineFragment:
		if node.TypeCondition == nil {
			parentType = ti.ParentType()
		} else if named := ti.schema.NamedType(node.TypeCondition.Name.Name); named != nil {
			parentType = named
			t = named
		}
	case *ast.SelectionSet:
		if pt := ti.ParentType(); pt != nil {
			ti.SelectionSetTypes[node] = pt
		}
		parentType = ti.ParentType()
	case *ast.Field:
		fieldDef = ti.fieldDefinitionOf(ti.ParentType(), node.Name.Name)
		if fieldDef != nil {
			ti.FieldDefinitions[node] = fieldDef

			for _, arg := range node.Arguments {
				if expected, ok := fieldDef.Arguments[arg.Name.Name]; ok {
					ti.ExpectedTypes[arg.Value] = expected.Type
					if expected.DefaultValue != nil {
						if expected.DefaultValue == schema.Null {
							ti.DefaultValues[arg.Value] = nil
						} else {
							ti.DefaultValues[arg.Value] = expected.DefaultValue
						}
					}
				}
			}

			t = fieldDef.Type
			if named := schema.UnwrappedType(fieldDef.Type); named != nil {
				parentType = named
			}
		}
	case *ast.VariableDefinition:
		if vt := schemaType(node.Type, ti.schema); vt != nil {
			ti.VariableDefinitionTypes[node] = vt
			inputType = vt
			if node.DefaultValue != nil {
				ti.ExpectedTypes[node.DefaultValue] = vt
			}
		}
	case *ast.Directive:
		directive = ti.schema.DirectiveDefinition(node.Name.Name)
		if directive != nil {
			for _, arg := range node.Arguments {
				if expected, ok := directive.Arguments[arg.Name.Name]; ok {
					ti.ExpectedTypes[arg.Value] = expected.Type
					if expected.DefaultValue != nil {
						if expected.DefaultValue == schema.Null {
							ti.DefaultValues[arg.Value] = nil
						} else {
							ti.DefaultValues[arg.Value] = expected.DefaultValue
						}
					}
				}
			}
		}
	case *ast.Argument:
		var argumentDefinitions map[string]*schema.InputValueDefinition
		if d := ti.Directive(); d != nil {
			argumentDefinitions = d.Arguments
		} else if fd := ti.FieldDefinition(); fd != nil {
			argumentDefinitions = fd.Arguments
		}
		if argumentDefinitions != nil {
			argument = argumentDefinitions[node.Name.Name]
			if argument != nil {
				inputType = argument.Type
				if argument.DefaultValue != nil {
					if argument.DefaultValue == schema.Null {
						defaultValue = &defaultValueEntry{value: nil}
					} else {
						defaultValue = &defaultValueEntry{value: argument.DefaultValue}
					}
				}
			}
		}
	case *ast.ListValue:
		if expected, ok := ti.ExpectedTypes[node].(*schema.ListType); ok {
			inputType = expected.Type
			for _, value := range node.Values {
				ti.ExpectedTypes[value] = expected.Type
			}
		} else if lt, ok := ti.InputType().(*schema.ListType); ok {
			inputType = lt.Type
		}
	case *ast.ObjectValue:
		if expected, ok := ti.ExpectedTypes[node].(*schema.InputObjectType); ok {
			for _, field := range node.Fields {
				if expected, ok := expected.Fields[field.Name.Name]; ok {
					ti.ExpectedTypes[field.Value] = expected.Type
					if expected.DefaultValue != nil {
						if expected.DefaultValue == schema.Null {
							ti.DefaultValues[field.Value] = nil
						} else {
							ti.DefaultValues[field.Value] = expected.DefaultValue
						}
					}
				}
			}
			inputType = expected
		} else if iot, ok := ti.InputType().(*schema.InputObjectType); ok {
			inputType = iot
		}
	case *ast.ObjectField:
		if iot, ok := ti.InputType().(*schema.InputObjectType); ok {
			if def, ok := iot.Fields[node.Name.Name]; ok {
				inputType = def.Type
				if def.DefaultValue != nil {
					if def.DefaultValue == schema.Null {
						defaultValue = &defaultValueEntry{value: nil}
					} else {
						defaultValue = &defaultValueEntry{value: def.DefaultValue}
					}
				}
			}
		}
	case *ast.EnumValue:
		if et, ok := schema.UnwrappedType(ti.InputType()).(*schema.EnumType); ok {
			enumValue = et.Values[node.Value]
		}
	}

	if it, ok := ti.ExpectedTypes[asValue(node)]; ok && inputType == nil {
		inputType = it
	}

	ti.typeStack = append(ti.typeStack, t)
	ti.parentTypeStack = append(ti.parentTypeStack, parentType)
	ti.inputTypeStack = append(ti.inputTypeStack, inputType)
	ti.fieldDefStack = append(ti.fieldDefStack, fieldDef)
	ti.directiveStack = append(ti.directiveStack, directive)
	ti.argumentStack = append(ti.argumentStack, argument)
	ti.enumValueStack = append(ti.enumValueStack, enumValue)
	ti.defaultValueStack = append(ti.defaultValueStack, defaultValue)

	return ast.Continue
}

func (ti *TypeInfo) Leave(node ast.Node) {
	ti.typeStack = ti.typeStack[:len(ti.typeStack)-1]
	ti.parentTypeStack = ti.parentTypeStack[:len(ti.parentTypeStack)-1]
	ti.inputTypeStack = ti.inputTypeStack[:len(ti.inputTypeStack)-1]
	ti.fieldDefStack = ti.fieldDefStack[:len(ti.fieldDefStack)-1]
	ti.directiveStack = ti.directiveStack[:len(ti.directiveStack)-1]
	ti.argumentStack = ti.argumentStack[:len(ti.argumentStack)-1]
	ti.enumValueStack = ti.enumValueStack[:len(ti.enumValueStack)-1]
	ti.defaultValueStack = ti.defaultValueStack[:len(ti.defaultValueStack)-1]
}

// asValue returns node as an ast.Value, or nil if it isn't one. Used to look up expected types
// that were pre-populated by an enclosing list/object/argument/directive before this node was
// reached.
func asValue(node ast.Node) ast.Value {
	v, _ := node.(ast.Value)
	return v
}
