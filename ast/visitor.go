package ast

import "reflect"

// VisitAction tells Walk how to proceed after a Visitor callback runs.
type VisitAction int

const (
	// Continue descends into the node's children as usual.
	Continue VisitAction = iota
	// SkipChildren visits the node's Leave callback but does not descend into its children.
	SkipChildren
	// Break stops the walk entirely. No further Enter or Leave calls are made, including the
	// Leave call for the node that returned Break.
	Break
)

// Visitor observes a Walk over a document. Enter is called before a node's children are
// visited and Leave afterward, mirroring the enter/leave pair a type-aware traversal companion
// (see validator.TypeInfo) needs to stay synchronized with the walk.
type Visitor interface {
	Enter(node Node) VisitAction
	Leave(node Node)
}

// VisitorFunc adapts a pair of plain functions to the Visitor interface. Either may be nil.
type VisitorFunc struct {
	EnterFunc func(Node) VisitAction
	LeaveFunc func(Node)
}

func (v *VisitorFunc) Enter(node Node) VisitAction {
	if v.EnterFunc == nil {
		return Continue
	}
	return v.EnterFunc(node)
}

func (v *VisitorFunc) Leave(node Node) {
	if v.LeaveFunc != nil {
		v.LeaveFunc(node)
	}
}

// Walk traverses node and its children depth-first, calling v.Enter before descending into a
// node's children and v.Leave after. Unlike Inspect, Enter and Leave are distinct calls rather
// than a single callback invoked twice with a nil sentinel, which is what lets a stateful
// companion such as TypeInfo keep push/pop pairs straightforward. Walk returns Break if the walk
// was aborted early by a visitor.
func Walk(node Node, v Visitor) VisitAction {
	if node == nil || reflect.ValueOf(node).IsNil() {
		return Continue
	}

	action := v.Enter(node)
	if action == Break {
		return Break
	}
	if action != SkipChildren {
		if walkChildren(node, v) == Break {
			return Break
		}
	}
	v.Leave(node)
	return Continue
}

func walkChildren(node Node, v Visitor) VisitAction {
	switch n := node.(type) {
	case *Document:
		for _, d := range n.Definitions {
			if Walk(d, v) == Break {
				return Break
			}
		}
	case *OperationDefinition:
		if Walk(n.Name, v) == Break {
			return Break
		}
		for _, d := range n.VariableDefinitions {
			if Walk(d, v) == Break {
				return Break
			}
		}
		for _, d := range n.Directives {
			if Walk(d, v) == Break {
				return Break
			}
		}
		if Walk(n.SelectionSet, v) == Break {
			return Break
		}
	case *FragmentDefinition:
		if Walk(n.Name, v) == Break {
			return Break
		}
		for _, d := range n.Directives {
			if Walk(d, v) == Break {
				return Break
			}
		}
		if Walk(n.SelectionSet, v) == Break {
			return Break
		}
	case *VariableDefinition:
		if Walk(n.Variable, v) == Break {
			return Break
		}
		if Walk(n.Type, v) == Break {
			return Break
		}
		if Walk(n.DefaultValue, v) == Break {
			return Break
		}
	case *ListType:
		return Walk(n.Type, v)
	case *NonNullType:
		return Walk(n.Type, v)
	case *Directive:
		if Walk(n.Name, v) == Break {
			return Break
		}
		for _, a := range n.Arguments {
			if Walk(a, v) == Break {
				return Break
			}
		}
	case *SelectionSet:
		for _, s := range n.Selections {
			if Walk(s, v) == Break {
				return Break
			}
		}
	case *Field:
		if Walk(n.Alias, v) == Break {
			return Break
		}
		if Walk(n.Name, v) == Break {
			return Break
		}
		for _, a := range n.Arguments {
			if Walk(a, v) == Break {
				return Break
			}
		}
		for _, d := range n.Directives {
			if Walk(d, v) == Break {
				return Break
			}
		}
		if Walk(n.SelectionSet, v) == Break {
			return Break
		}
	case *FragmentSpread:
		if Walk(n.FragmentName, v) == Break {
			return Break
		}
		for _, d := range n.Directives {
			if Walk(d, v) == Break {
				return Break
			}
		}
	case *InlineFragment:
		if Walk(n.TypeCondition, v) == Break {
			return Break
		}
		for _, d := range n.Directives {
			if Walk(d, v) == Break {
				return Break
			}
		}
		if Walk(n.SelectionSet, v) == Break {
			return Break
		}
	case *Argument:
		if Walk(n.Name, v) == Break {
			return Break
		}
		if Walk(n.Value, v) == Break {
			return Break
		}
	case *NamedType:
		return Walk(n.Name, v)
	case *Variable:
		return Walk(n.Name, v)
	case *Name, *BooleanValue, *IntValue, *FloatValue, *StringValue, *EnumValue, *NullValue:
	case *ListValue:
		for _, val := range n.Values {
			if Walk(val, v) == Break {
				return Break
			}
		}
	case *ObjectValue:
		for _, f := range n.Fields {
			if Walk(f, v) == Break {
				return Break
			}
		}
	case *ObjectField:
		if Walk(n.Name, v) == Break {
			return Break
		}
		if Walk(n.Value, v) == Break {
			return Break
		}
	default:
		panic("unknown node type")
	}
	return Continue
}
