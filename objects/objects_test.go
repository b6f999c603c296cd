/*
File : go-bruno/objects/objects_test.go
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestObjects_HashKeys checks that hash keys are stable per value and
// distinguish values of different types
func TestObjects_HashKeys(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff := &String{Value: "My name is johnny"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff.HashKey())

	one := &Integer{Value: 1}
	alsoOne := &Integer{Value: 1}
	two := &Integer{Value: 2}
	assert.Equal(t, one.HashKey(), alsoOne.HashKey())
	assert.NotEqual(t, one.HashKey(), two.HashKey())

	// the type tag keeps 1 and true apart even though both hash to 1
	assert.Equal(t, uint64(1), one.HashKey().Value)
	assert.Equal(t, uint64(1), TRUE.HashKey().Value)
	assert.NotEqual(t, one.HashKey(), TRUE.HashKey())
	assert.NotEqual(t, TRUE.HashKey(), FALSE.HashKey())
}

// TestObjects_ToString checks the rendering rules for each value variant
func TestObjects_ToString(t *testing.T) {
	assert.Equal(t, "-42", (&Integer{Value: -42}).ToString())
	assert.Equal(t, "true", TRUE.ToString())
	assert.Equal(t, "false", FALSE.ToString())
	assert.Equal(t, "null", NULL.ToString())
	assert.Equal(t, "hello", (&String{Value: "hello"}).ToString())
	assert.Equal(t, "ERROR: boom", (&Error{Message: "boom"}).ToString())
	assert.Equal(t, "builtin function", Builtins[0].ToString())

	array := &Array{Elements: []BrunoObject{
		&Integer{Value: 1},
		&String{Value: "two"},
		TRUE,
	}}
	assert.Equal(t, "[1, two, true]", array.ToString())

	wrapped := &ReturnValue{Value: &Integer{Value: 7}}
	assert.Equal(t, "7", wrapped.ToString())

	key := &String{Value: "name"}
	hash := &Hash{Pairs: map[HashKey]HashPair{
		key.HashKey(): {Key: key, Value: &String{Value: "Bruno"}},
	}}
	assert.Equal(t, "{name: Bruno}", hash.ToString())
}

// TestObjects_Equals checks the language equality rules
func TestObjects_Equals(t *testing.T) {
	assert.True(t, Equals(&Integer{Value: 5}, &Integer{Value: 5}))
	assert.False(t, Equals(&Integer{Value: 5}, &Integer{Value: 6}))
	assert.True(t, Equals(&String{Value: "a"}, &String{Value: "a"}))
	assert.False(t, Equals(&String{Value: "a"}, &String{Value: "b"}))
	assert.True(t, Equals(TRUE, TRUE))
	assert.False(t, Equals(TRUE, FALSE))
	assert.True(t, Equals(NULL, NULL))

	// mixed types are never equal
	assert.False(t, Equals(&Integer{Value: 1}, TRUE))
	assert.False(t, Equals(&String{Value: "1"}, &Integer{Value: 1}))
}

// TestObjects_FromNativeBool checks the canonical singleton mapping
func TestObjects_FromNativeBool(t *testing.T) {
	assert.Same(t, TRUE, FromNativeBool(true))
	assert.Same(t, FALSE, FromNativeBool(false))
}
