// Package validator implements GraphQL document validation: the closed set of rules that must
// all pass before a document is eligible for execution.
package validator

import (
	"fmt"

	"github.com/outpostql/graphql/ast"
	"github.com/outpostql/graphql/schema"
)

// Location identifies a line/column within a query's source text.
type Location struct {
	Line   int
	Column int
}

// Error represents a validation error.
type Error struct {
	Message   string
	Locations []Location

	// If a validator is unable to perform its job due to an error unrelated to its purpose, it
	// emits a secondary error. Secondary errors are always errors that should be caught by other
	// validators, so if there are any primary errors, secondary errors are discarded as they
	// should all be duplicates. If a secondary error makes it out of validation, there's probably
	// a mistake in one of the validators.
	isSecondary bool
}

func (err *Error) Error() string {
	return err.Message
}

func newError(node ast.Node, message string, args ...interface{}) *Error {
	ret := &Error{
		Message: fmt.Sprintf(message, args...),
	}
	if node != nil {
		pos := node.Position()
		ret.Locations = []Location{{Line: pos.Line, Column: pos.Column}}
	}
	return ret
}

func newSecondaryError(node ast.Node, message string, args ...interface{}) *Error {
	ret := newError(node, message, args...)
	ret.isSecondary = true
	return ret
}

func newErrorWithNodes(nodes []ast.Node, message string, args ...interface{}) *Error {
	ret := &Error{
		Message: fmt.Sprintf(message, args...),
	}
	for _, node := range nodes {
		if node != nil {
			pos := node.Position()
			ret.Locations = append(ret.Locations, Location{Line: pos.Line, Column: pos.Column})
		}
	}
	return ret
}

// Rule is a pluggable validation rule. Rules are given a Context built for the document and
// schema being validated, and report any errors they find.
type Rule func(ctx *Context) []*Error

// MaxErrors bounds how many errors ValidateDocument will report before giving up and returning a
// single terminal error. A pathological document (e.g. one with deeply nested, broadly invalid
// selections) can otherwise produce an unbounded number of errors.
const MaxErrors = 100

// builtinRules is the closed set of validation rules defined by the GraphQL specification.
var builtinRules = []Rule{
	validateDocument,
	validateOperations,
	validateFields,
	validateArguments,
	validateFragments,
	validateValues,
	validateDirectives,
	validateVariables,
}

// ValidateDocument validates doc against s, applying the closed set of built-in rules plus any
// additionalRules given (e.g. ValidateCost). features gates access to fields, and to union types
// named in fragment type conditions, whose RequiredFeatures have not been enabled for this
// request (enum values are not gated); pass nil (or an empty schema.FeatureSet) if the schema
// doesn't use feature gating.
func ValidateDocument(doc *ast.Document, s *schema.Schema, features schema.FeatureSet, additionalRules ...Rule) []*Error {
	ctx := NewContext(doc, s, features)

	var errs []*Error
	for _, rule := range builtinRules {
		errs = append(errs, rule(ctx)...)
		if len(errs) > MaxErrors {
			break
		}
	}
	if len(errs) <= MaxErrors {
		for _, rule := range additionalRules {
			errs = append(errs, rule(ctx)...)
			if len(errs) > MaxErrors {
				break
			}
		}
	}

	var primary []*Error
	for _, err := range errs {
		if !err.isSecondary {
			primary = append(primary, err)
		}
	}
	if len(primary) == 0 {
		primary = errs
	}

	if len(primary) > MaxErrors {
		primary = primary[:MaxErrors]
		primary = append(primary, newError(nil, "too many validation errors"))
	}
	return primary
}
