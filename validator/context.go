package validator

import (
	"github.com/outpostql/graphql/ast"
	"github.com/outpostql/graphql/schema"
)

// Context is shared state passed to every validation rule: the document and schema being
// validated, the feature set gating which parts of the schema are visible, the TypeInfo built for
// the document, and a handful of memoized analyses that more than one rule needs (which fragments
// a selection set spreads, which fragments a document recursively references, which variables a
// node uses). Rules that need one of these analyses should ask the Context for it rather than
// recomputing it with their own traversal, so the work (and the AST-identity-keyed cache) is
// shared across rules.
type Context struct {
	Document *ast.Document
	Schema   *schema.Schema
	Features schema.FeatureSet
	*TypeInfo

	fragmentsByName map[string]*ast.FragmentDefinition

	fragmentSpreads                map[*ast.SelectionSet][]*ast.FragmentSpread
	recursivelyReferencedFragments map[ast.Node][]*ast.FragmentDefinition
	variableUsages                 map[ast.Node][]*VariableUsage
	recursiveVariableUsages        map[ast.Node][]*VariableUsage
}

// VariableUsage describes a single use of a variable within a document: the ast.Variable node
// itself, the variable definition it refers to (if any), and the type and default value expected
// at the location where it's used, as reported by a TypeInfo scoped to the walk that found it.
type VariableUsage struct {
	Node               *ast.Variable
	VariableDefinition *ast.VariableDefinition
	Type               schema.Type
	DefaultValue       interface{}
}

// NewContext builds a Context for doc against s, gating schema visibility by features.
func NewContext(doc *ast.Document, s *schema.Schema, features schema.FeatureSet) *Context {
	ctx := &Context{
		Document: doc,
		Schema:   s,
		Features: features,
		TypeInfo: NewTypeInfo(doc, s),
	}
	ctx.fragmentsByName = map[string]*ast.FragmentDefinition{}
	for _, def := range doc.Definitions {
		if def, ok := def.(*ast.FragmentDefinition); ok {
			ctx.fragmentsByName[def.Name.Name] = def
		}
	}
	return ctx
}

// FragmentByName returns the document's fragment definition with the given name, or nil if there
// isn't one.
func (ctx *Context) FragmentByName(name string) *ast.FragmentDefinition {
	return ctx.fragmentsByName[name]
}

// FragmentSpreads returns the fragment spreads that appear within selectionSet, including those in
// the selection sets of its fields and inline fragments (but not inside the fragments it spreads),
// memoized by the identity of selectionSet.
func (ctx *Context) FragmentSpreads(selectionSet *ast.SelectionSet) []*ast.FragmentSpread {
	if selectionSet == nil {
		return nil
	}
	if ctx.fragmentSpreads == nil {
		ctx.fragmentSpreads = map[*ast.SelectionSet][]*ast.FragmentSpread{}
	}
	if spreads, ok := ctx.fragmentSpreads[selectionSet]; ok {
		return spreads
	}
	var spreads []*ast.FragmentSpread
	for _, selection := range selectionSet.Selections {
		switch selection := selection.(type) {
		case *ast.FragmentSpread:
			spreads = append(spreads, selection)
		case *ast.InlineFragment:
			spreads = append(spreads, ctx.FragmentSpreads(selection.SelectionSet)...)
		case *ast.Field:
			spreads = append(spreads, ctx.FragmentSpreads(selection.SelectionSet)...)
		}
	}
	ctx.fragmentSpreads[selectionSet] = spreads
	return spreads
}

// RecursivelyReferencedFragments returns every fragment definition transitively reachable from
// node (an *ast.OperationDefinition or *ast.FragmentDefinition) via fragment spreads, memoized by
// the identity of node. Each fragment is returned at most once, regardless of how many times or
// at what depth it's spread, and fragment cycles are tolerated (the cycle itself is reported by
// NoFragmentCycles, not here).
func (ctx *Context) RecursivelyReferencedFragments(node ast.Node) []*ast.FragmentDefinition {
	if ctx.recursivelyReferencedFragments == nil {
		ctx.recursivelyReferencedFragments = map[ast.Node][]*ast.FragmentDefinition{}
	}
	if fragments, ok := ctx.recursivelyReferencedFragments[node]; ok {
		return fragments
	}

	selectionSet := selectionSetOf(node)

	var fragments []*ast.FragmentDefinition
	seen := map[string]struct{}{}
	var visit func(*ast.SelectionSet)
	visit = func(ss *ast.SelectionSet) {
		for _, spread := range ctx.FragmentSpreads(ss) {
			name := spread.FragmentName.Name
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			def := ctx.FragmentByName(name)
			if def == nil {
				continue
			}
			fragments = append(fragments, def)
			visit(def.SelectionSet)
		}
	}
	visit(selectionSet)

	ctx.recursivelyReferencedFragments[node] = fragments
	return fragments
}

// VariableUsages returns the variable usages that appear within node itself (variable definitions
// are skipped); usages inside the fragments node spreads are not included (RecursiveVariableUsages
// adds those). Memoized by the identity of node.
func (ctx *Context) VariableUsages(node ast.Node) []*VariableUsage {
	if ctx.variableUsages == nil {
		ctx.variableUsages = map[ast.Node][]*VariableUsage{}
	}
	if usages, ok := ctx.variableUsages[node]; ok {
		return usages
	}

	var usages []*VariableUsage
	var variableDefinitions map[string]*ast.VariableDefinition
	if op, ok := node.(*ast.OperationDefinition); ok {
		variableDefinitions = map[string]*ast.VariableDefinition{}
		for _, def := range op.VariableDefinitions {
			variableDefinitions[def.Variable.Name.Name] = def
		}
	}

	ti := newScopedTypeInfo(ctx.Schema)
	visitor := &ast.VisitorFunc{
		EnterFunc: func(n ast.Node) ast.VisitAction {
			switch n := n.(type) {
			case *ast.VariableDefinition:
				return ast.SkipChildren
			case *ast.Variable:
				defaultValue, _ := ti.DefaultValue()
				usages = append(usages, &VariableUsage{
					Node:               n,
					VariableDefinition: variableDefinitions[n.Name.Name],
					Type:               ti.InputType(),
					DefaultValue:       defaultValue,
				})
			}
			return ast.Continue
		},
	}
	ast.Walk(node, VisitWithTypeInfo(ti, visitor))

	ctx.variableUsages[node] = usages
	return usages
}

// RecursiveVariableUsages returns the variable usages reachable from node (an
// *ast.OperationDefinition), including those within any fragment it spreads, transitively,
// memoized by the identity of node.
func (ctx *Context) RecursiveVariableUsages(node ast.Node) []*VariableUsage {
	if ctx.recursiveVariableUsages == nil {
		ctx.recursiveVariableUsages = map[ast.Node][]*VariableUsage{}
	}
	if usages, ok := ctx.recursiveVariableUsages[node]; ok {
		return usages
	}

	usages := append([]*VariableUsage{}, ctx.VariableUsages(node)...)
	for _, fragment := range ctx.RecursivelyReferencedFragments(node) {
		usages = append(usages, ctx.VariableUsages(fragment)...)
	}

	ctx.recursiveVariableUsages[node] = usages
	return usages
}

func selectionSetOf(node ast.Node) *ast.SelectionSet {
	switch node := node.(type) {
	case *ast.OperationDefinition:
		return node.SelectionSet
	case *ast.FragmentDefinition:
		return node.SelectionSet
	}
	return nil
}
