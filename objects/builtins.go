// Package objects - builtins.go
// This file defines the builtin functions available in the Bruno language:
// len, first, last, rest, and push. The builtin table is closed; builtins
// are consulted during identifier lookup only after the environment chain
// misses, so user bindings may shadow them.
/*
File : go-bruno/objects/builtins.go
*/
package objects

import (
	"fmt"
)

// CallbackFunc is the function signature for builtin functions.
// It takes the already-evaluated argument list and returns a BrunoObject
// result. A nil result is converted to NULL by the evaluator.
type CallbackFunc func(args ...BrunoObject) BrunoObject

// Builtin represents a builtin function with a name and its implementation
// callback. Builtin values render as "builtin function".
type Builtin struct {
	Name     string       // The name of the builtin function (e.g., "len")
	Callback CallbackFunc // The function that implements the builtin behavior
}

// GetType returns the type of the Builtin object
func (b *Builtin) GetType() BrunoType {
	return BuiltinType
}

// ToString renders builtins uniformly, without their name
func (b *Builtin) ToString() string {
	return "builtin function"
}

// Builtins is the global table of builtin functions, registered at package
// initialization.
var Builtins = []*Builtin{
	{
		Name:     "len", // String byte count or array length
		Callback: lenFunc,
	},
	{
		Name:     "first", // First element of an array
		Callback: firstFunc,
	},
	{
		Name:     "last", // Last element of an array
		Callback: lastFunc,
	},
	{
		Name:     "rest", // New array without the first element
		Callback: restFunc,
	},
	{
		Name:     "push", // New array with one element appended
		Callback: pushFunc,
	},
}

// CreateError is a utility function to create an Error object with a
// formatted message. It takes a format string and variadic arguments,
// similar to fmt.Sprintf.
func CreateError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// checkArgSize guards a builtin against being called with the wrong number
// of arguments. It returns nil when the arity matches and the exact
// "wrong number of arguments" error otherwise.
func checkArgSize(expected int, args []BrunoObject) *Error {
	if len(args) != expected {
		return CreateError("wrong number of arguments. got=%d, want=%d", len(args), expected)
	}
	return nil
}

// checkArray guards the array builtins against non-array arguments.
// It returns the argument as an *Array when it is one and the exact
// "must be ARRAY" error otherwise.
func checkArray(name string, arg BrunoObject) (*Array, *Error) {
	array, ok := arg.(*Array)
	if !ok {
		return nil, CreateError("argument to `%s` must be ARRAY, got %s", name, arg.GetType())
	}
	return array, nil
}

// lenFunc returns the length of a string (in bytes) or an array.
func lenFunc(args ...BrunoObject) BrunoObject {
	if err := checkArgSize(1, args); err != nil {
		return err
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return CreateError("argument to `len` not supported, got %s", arg.GetType())
	}
}

// firstFunc returns the first element of an array, or NULL when empty.
func firstFunc(args ...BrunoObject) BrunoObject {
	if err := checkArgSize(1, args); err != nil {
		return err
	}
	array, err := checkArray("first", args[0])
	if err != nil {
		return err
	}
	if len(array.Elements) > 0 {
		return array.Elements[0]
	}
	return NULL
}

// lastFunc returns the last element of an array, or NULL when empty.
func lastFunc(args ...BrunoObject) BrunoObject {
	if err := checkArgSize(1, args); err != nil {
		return err
	}
	array, err := checkArray("last", args[0])
	if err != nil {
		return err
	}
	if length := len(array.Elements); length > 0 {
		return array.Elements[length-1]
	}
	return NULL
}

// restFunc returns a new array holding every element but the first, or NULL
// when the array is empty. The receiver array is never mutated.
func restFunc(args ...BrunoObject) BrunoObject {
	if err := checkArgSize(1, args); err != nil {
		return err
	}
	array, err := checkArray("rest", args[0])
	if err != nil {
		return err
	}
	length := len(array.Elements)
	if length <= 0 {
		return NULL
	}
	elements := make([]BrunoObject, length-1)
	copy(elements, array.Elements[1:])
	return &Array{Elements: elements}
}

// pushFunc returns a new array with the second argument appended. The
// receiver array is never mutated.
func pushFunc(args ...BrunoObject) BrunoObject {
	if err := checkArgSize(2, args); err != nil {
		return err
	}
	array, err := checkArray("push", args[0])
	if err != nil {
		return err
	}
	length := len(array.Elements)
	elements := make([]BrunoObject, length+1)
	copy(elements, array.Elements)
	elements[length] = args[1]
	return &Array{Elements: elements}
}
