/*
File : go-bruno/function/function.go
*/

// Package function defines the user-function runtime object. It lives in
// its own package because a function value references both the parser's AST
// (its parameter list and body) and a scope, while the objects package must
// stay importable from the parser side without a cycle.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-bruno/objects"
	"github.com/akashmaji946/go-bruno/parser"
	"github.com/akashmaji946/go-bruno/scope"
)

// Function represents a user-defined function value.
//
// Fields:
//   - Params: The parameter identifier nodes, bound to argument values when
//     the function is called.
//   - Body: The block statement evaluated on invocation. The AST is
//     immutable after parsing, so the body is shared, not copied.
//   - Scp: The scope that was current at the function's creation site.
//     This is the closure: calls extend this scope, not the caller's, so
//     the function sees the bindings of its defining environment for as
//     long as it lives.
type Function struct {
	Params []*parser.IdentifierExpressionNode // Function parameter names
	Body   *parser.BlockStatementNode         // Function body (statements to execute)
	Scp    *scope.Scope                       // Captured scope for closures
}

// GetType returns the type identifier for this Function object.
func (f *Function) GetType() objects.BrunoType {
	return objects.FunctionType
}

// ToString renders the function with its parameter list and body:
//
//	fn(a, b) {
//		(a + b)
//	}
func (f *Function) ToString() string {
	params := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		params = append(params, param.Literal())
	}
	return fmt.Sprintf("fn(%s) {\n\t%s\n}", strings.Join(params, ", "), f.Body.Literal())
}
