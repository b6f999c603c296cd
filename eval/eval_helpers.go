/*
File : go-bruno/eval/eval_helpers.go
*/
package eval

import (
	"github.com/akashmaji946/go-bruno/objects"
)

// IsError checks if a BrunoObject represents an error condition.
//
// This helper is used throughout the evaluator to detect Error values and
// enable early termination: when an Error is detected it is propagated up
// the call stack unchanged rather than evaluated further. The nil check
// makes the helper safe on the nil results that recovered parse errors
// leave behind.
func IsError(obj objects.BrunoObject) bool {
	if obj != nil {
		return obj.GetType() == objects.ErrorType
	}
	return false
}

// UnwrapReturnValue extracts the payload from a ReturnValue wrapper.
//
// Function application calls this on the body's result so that a return
// unwinds exactly to the function boundary and no further. Non-wrapper
// values pass through unchanged, which makes the helper safe to call on
// any object.
func UnwrapReturnValue(obj objects.BrunoObject) objects.BrunoObject {
	if returnValue, ok := obj.(*objects.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}

// CreateError builds an Error value with a formatted message.
func (e *Evaluator) CreateError(format string, args ...interface{}) *objects.Error {
	return objects.CreateError(format, args...)
}

// isTruthy implements the language's truthiness rule: false and null are
// falsy; every other value (including 0, "" and empty composites) is
// truthy.
func isTruthy(obj objects.BrunoObject) bool {
	switch obj {
	case objects.FALSE, objects.NULL:
		return false
	default:
		return true
	}
}
