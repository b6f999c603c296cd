/*
File : go-bruno/scope/scope.go
*/
package scope

import "github.com/akashmaji946/go-bruno/objects"

// Scope defines a lexical scope boundary for variable lifetime and
// accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping
// and closures. Each scope maintains its own variable bindings and can read
// variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine names from outer scopes
// - Closures: functions capture their defining scope and can access outer
//   variables long after the defining call has returned
//
// The scope chain is traversed upward (from child to parent) during lookup.
// Writes always land in the innermost scope; there is no operation that
// mutates an outer frame, which is what makes cycle formation impossible:
// Parent is set once, at creation, to an already-existing ancestor.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.BrunoObject

	// Parent points to the enclosing scope, forming a scope chain.
	// nil indicates this is the global (root) scope.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent
// scope. The parent parameter determines the scope's position in the
// hierarchy:
// - parent == nil: creates a global (root) scope with no parent
// - parent != nil: creates a nested scope that can read parent variables
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.BrunoObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent
// scopes. The first binding found wins, so inner scopes shadow outer ones.
//
// Returns:
//   - objects.BrunoObject: The value bound to the name (if found)
//   - bool: true if the name was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.BrunoObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.BrunoObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates or replaces a variable binding in the current scope only.
// Parent scopes are never touched; rebinding a name that exists in an outer
// scope shadows it rather than mutating it.
func (s *Scope) Bind(varName string, value objects.BrunoObject) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.BrunoObject)
	}
	s.Variables[varName] = value
}
