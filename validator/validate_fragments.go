package validator

import (
	"fmt"

	"github.com/outpostql/graphql/ast"
	"github.com/outpostql/graphql/schema"
)

func validateFragments(ctx *Context) []*Error {
	ret := validateFragmentDeclarations(ctx)
	ret = append(ret, validateFragmentSpreads(ctx)...)
	return ret
}

// namedType looks up name in s, returning nil if it doesn't exist or if it's a union type whose
// RequiredFeatures aren't satisfied by features.
func namedType(s *schema.Schema, features schema.FeatureSet, name string) schema.NamedType {
	t := s.NamedType(name)
	if t, ok := t.(*schema.UnionType); ok && !t.TypeRequiredFeatures().IsSubsetOf(features) {
		return nil
	}
	return t
}

func validateFragmentDeclarations(ctx *Context) []*Error {
	var ret []*Error

	validateTypeCondition := func(tc *ast.NamedType) {
		switch namedType(ctx.Schema, ctx.Features, tc.Name.Name).(type) {
		case *schema.ObjectType, *schema.InterfaceType, *schema.UnionType:
		case nil:
			ret = append(ret, newError(tc.Name, "undefined type"))
		default:
			ret = append(ret, newError(tc.Name, "fragments may only be defined on objects, interfaces, and unions"))
		}
	}

	seen := map[string]struct{}{}
	for _, def := range ctx.Document.Definitions {
		if def, ok := def.(*ast.FragmentDefinition); ok {
			if _, ok := seen[def.Name.Name]; ok {
				ret = append(ret, newError(def.Name, "a fragment with this name already exists"))
			} else {
				seen[def.Name.Name] = struct{}{}
			}
			validateTypeCondition(def.TypeCondition)
		}
	}

	usedFragments := map[string]struct{}{}
	ast.Inspect(ctx.Document, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.FragmentSpread:
			usedFragments[node.FragmentName.Name] = struct{}{}
		case *ast.InlineFragment:
			if node.TypeCondition != nil {
				validateTypeCondition(node.TypeCondition)
			}
		}
		return true
	})

	for _, def := range ctx.Document.Definitions {
		if def, ok := def.(*ast.FragmentDefinition); ok {
			if _, ok := usedFragments[def.Name.Name]; !ok {
				ret = append(ret, newError(def, "unused fragment"))
			}
		}
	}

	return ret
}

func validateFragmentSpreads(ctx *Context) []*Error {
	var ret []*Error

	for _, def := range ctx.Document.Definitions {
		def, ok := def.(*ast.FragmentDefinition)
		if !ok {
			continue
		}

		name := def.Name.Name
		toVisit := []string{name}
		encountered := map[string]struct{}{}
		cycleFound := false
		for i := 0; i < len(toVisit) && !cycleFound; i++ {
			fragDef := ctx.FragmentByName(toVisit[i])
			if fragDef == nil {
				continue
			}
			for _, spread := range ctx.FragmentSpreads(fragDef.SelectionSet) {
				dep := spread.FragmentName.Name
				if _, ok := encountered[dep]; !ok {
					if dep == name {
						cycleFound = true
						break
					}
					toVisit = append(toVisit, dep)
					encountered[dep] = struct{}{}
				}
			}
		}
		if cycleFound {
			ret = append(ret, newError(def, "fragment cycle detected"))
		}
	}

	validateSpread := func(tc *ast.NamedType, parentType schema.NamedType) {
		if parentType == nil {
			ret = append(ret, newSecondaryError(tc, "no type info for fragment spread parent"))
			return
		}
		switch fragmentType := namedType(ctx.Schema, ctx.Features, tc.Name.Name).(type) {
		case *schema.ObjectType, *schema.InterfaceType, *schema.UnionType:
			a := getPossibleTypes(ctx.Schema, fragmentType)
			b := getPossibleTypes(ctx.Schema, parentType)
			hasIntersection := false
			for k := range a {
				if _, ok := b[k]; ok {
					hasIntersection = true
					break
				}
			}
			if !hasIntersection {
				ret = append(ret, newError(tc, "impossible fragment spread"))
			}
		default:
		}
	}

	var selectionSetTypes []schema.NamedType
	ast.Inspect(ctx.Document, func(node ast.Node) bool {
		if node == nil {
			selectionSetTypes = selectionSetTypes[:len(selectionSetTypes)-1]
			return true
		}

		var selectionSetType schema.NamedType
		switch node := node.(type) {
		case *ast.SelectionSet:
			selectionSetType = ctx.SelectionSetTypes[node]
		case *ast.FragmentSpread:
			name := node.FragmentName.Name
			if def := ctx.FragmentByName(name); def == nil {
				ret = append(ret, newError(node.FragmentName, "undefined fragment"))
			} else {
				validateSpread(def.TypeCondition, selectionSetTypes[len(selectionSetTypes)-1])
			}
		case *ast.InlineFragment:
			if node.TypeCondition != nil {
				validateSpread(node.TypeCondition, selectionSetTypes[len(selectionSetTypes)-1])
			}
		}
		selectionSetTypes = append(selectionSetTypes, selectionSetType)
		return true
	})

	return ret
}

func getPossibleTypes(s *schema.Schema, t schema.NamedType) map[string]schema.NamedType {
	ret := map[string]schema.NamedType{}
	switch t := t.(type) {
	case *schema.ObjectType:
		ret[t.Name] = t
	case *schema.InterfaceType:
		for _, obj := range s.InterfaceImplementations(t.Name) {
			ret[obj.Name] = obj
		}
	case *schema.UnionType:
		for _, t := range t.MemberTypes {
			ret[t.TypeName()] = t
		}
	default:
		panic(fmt.Sprintf("unexpected type: %T", t))
	}
	return ret
}
