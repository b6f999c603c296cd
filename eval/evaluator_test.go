/*
File : go-bruno/eval/evaluator_test.go
*/
package eval

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-bruno/function"
	"github.com/akashmaji946/go-bruno/objects"
	"github.com/akashmaji946/go-bruno/parser"
)

// evalSource runs one source text through the full parse+eval pipeline with
// a fresh evaluator.
func evalSource(t *testing.T, src string) objects.BrunoObject {
	t.Helper()
	par := parser.NewParser(src)
	root := par.Parse()
	assert.Empty(t, par.Errors, "src: %q", src)
	return NewEvaluator().Eval(root)
}

// assertInteger checks that obj is an Integer with the expected value.
func assertInteger(t *testing.T, obj objects.BrunoObject, expected int64) {
	t.Helper()
	integer, can := obj.(*objects.Integer)
	if assert.True(t, can, "expected MInteger, got %T (%v)", obj, obj) {
		assert.Equal(t, expected, integer.Value)
	}
}

// assertBoolean checks that obj is one of the Boolean singletons with the
// expected value.
func assertBoolean(t *testing.T, obj objects.BrunoObject, expected bool) {
	t.Helper()
	boolean, can := obj.(*objects.Boolean)
	if assert.True(t, can, "expected MBoolean, got %T (%v)", obj, obj) {
		assert.Equal(t, expected, boolean.Value)
		assert.Same(t, objects.FromNativeBool(expected), boolean)
	}
}

// assertError checks that obj is an Error carrying exactly the expected
// message.
func assertError(t *testing.T, obj objects.BrunoObject, expected string) {
	t.Helper()
	errObj, can := obj.(*objects.Error)
	if assert.True(t, can, "expected MError, got %T (%v)", obj, obj) {
		assert.Equal(t, expected, errObj.Message)
	}
}

func TestEvaluator_IntegerExpressions(t *testing.T) {

	tests := []struct {
		Input    string
		Expected int64
	}{
		{`5`, 5},
		{`10`, 10},
		{`-5`, -5},
		{`-10`, -10},
		{`5 + 5 + 5 + 5 - 10`, 10},
		{`2 * 2 * 2 * 2 * 2`, 32},
		{`-50 + 100 + -50`, 0},
		{`5 * 2 + 10`, 20},
		{`5 + 2 * 10`, 25},
		{`20 + 2 * -10`, 0},
		{`50 / 2 * 2 + 10`, 60},
		{`2 * (5 + 10)`, 30},
		{`3 * 3 * 3 + 10`, 37},
		{`3 * (3 * 3) + 10`, 37},
		{`(5 + 10 * 2 + 15 / 3) * 2 + -10`, 50},
		{`7 / 2`, 3},
	}

	for _, test := range tests {
		assertInteger(t, evalSource(t, test.Input), test.Expected)
	}
}

func TestEvaluator_BooleanExpressions(t *testing.T) {

	tests := []struct {
		Input    string
		Expected bool
	}{
		{`true`, true},
		{`false`, false},
		{`1 < 2`, true},
		{`1 > 2`, false},
		{`1 < 1`, false},
		{`1 > 1`, false},
		{`1 == 1`, true},
		{`1 != 1`, false},
		{`1 == 2`, false},
		{`1 != 2`, true},
		{`true == true`, true},
		{`false == false`, true},
		{`true == false`, false},
		{`true != false`, true},
		{`false != true`, true},
		{`(1 < 2) == true`, true},
		{`(1 < 2) == false`, false},
		{`(1 > 2) == true`, false},
		{`(1 > 2) == false`, true},
		{`"a" == "a"`, true},
		{`"a" == "b"`, false},
		{`"a" != "b"`, true},
		// mixed types compare unequal rather than erroring
		{`1 == true`, false},
		{`1 != true`, true},
		{`"1" == 1`, false},
	}

	for _, test := range tests {
		assertBoolean(t, evalSource(t, test.Input), test.Expected)
	}
}

func TestEvaluator_BangOperator(t *testing.T) {

	tests := []struct {
		Input    string
		Expected bool
	}{
		{`!true`, false},
		{`!false`, true},
		{`!5`, false},
		{`!!true`, true},
		{`!!false`, false},
		{`!!5`, true},
		{`!0`, false},
		{`!""`, false},
	}

	for _, test := range tests {
		assertBoolean(t, evalSource(t, test.Input), test.Expected)
	}
}

func TestEvaluator_IfElseExpressions(t *testing.T) {

	tests := []struct {
		Input    string
		Expected interface{}
	}{
		{`if (true) { 10 }`, int64(10)},
		{`if (false) { 10 }`, nil},
		{`if (1) { 10 }`, int64(10)},
		{`if (1 < 2) { 10 }`, int64(10)},
		{`if (1 > 2) { 10 }`, nil},
		{`if (1 > 2) { 10 } else { 20 }`, int64(20)},
		{`if (1 < 2) { 10 } else { 20 }`, int64(10)},
		{`if (0) { 10 }`, int64(10)},
	}

	for _, test := range tests {
		result := evalSource(t, test.Input)
		if expected, isInt := test.Expected.(int64); isInt {
			assertInteger(t, result, expected)
		} else {
			assert.Same(t, objects.NULL, result, "input: %q", test.Input)
		}
	}
}

func TestEvaluator_ReturnStatements(t *testing.T) {

	tests := []struct {
		Input    string
		Expected int64
	}{
		{`return 10;`, 10},
		{`return 10; 9;`, 10},
		{`return 2 * 5; 9;`, 10},
		{`9; return 2 * 5; 9;`, 10},
		{`if (10 > 1) { if (10 > 1) { return 10; } return 1; }`, 10},
	}

	for _, test := range tests {
		assertInteger(t, evalSource(t, test.Input), test.Expected)
	}
}

func TestEvaluator_ErrorHandling(t *testing.T) {

	tests := []struct {
		Input    string
		Expected string
	}{
		{`5 + true;`, "type mismatch: MInteger + MBoolean"},
		{`5 + true; 5;`, "type mismatch: MInteger + MBoolean"},
		{`-true`, "unknown operator: -MBoolean"},
		{`true + false;`, "unknown operator: MBoolean + MBoolean"},
		{`5; true + false; 5`, "unknown operator: MBoolean + MBoolean"},
		{`if (10 > 1) { true + false; }`, "unknown operator: MBoolean + MBoolean"},
		{`if (10 > 1) { if (10 > 1) { return true + false; } return 1; }`, "unknown operator: MBoolean + MBoolean"},
		{`foobar`, "identifier not found: foobar"},
		{`"Hello" - "World"`, "unknown operator: MString - MString"},
		{`"Hello" < "World"`, "unknown operator: MString < MString"},
		{`5()`, "not a function: MInteger"},
		{`5[0]`, "index operator not supported: MInteger"},
		{`"text"[0]`, "index operator not supported: MString"},
		{`[1, 2, 3][fn(x) { x }]`, "index operator not supported: MArray"},
		{`{"name": "Monkey"}[fn(x) { x }];`, "unusable as a hash key: MFunction"},
		{`{fn(x) { x }: "Monkey"}`, "unusable as hash key: MFunction"},
		{`{[1]: 2}`, "unusable as hash key: MArray"},
		{`let a = b;`, "identifier not found: b"},
		{`[1, foo, 3]`, "identifier not found: foo"},
		{`len(1, 2)(3)`, "wrong number of arguments. got=2, want=1"},
	}

	for _, test := range tests {
		assertError(t, evalSource(t, test.Input), test.Expected)
	}
}

func TestEvaluator_LetStatements(t *testing.T) {

	tests := []struct {
		Input    string
		Expected int64
	}{
		{`let a = 5; a;`, 5},
		{`let a = 5 * 5; a;`, 25},
		{`let a = 5; let b = a; b;`, 5},
		{`let a = 5; let b = a; let c = a + b + 5; c;`, 15},
		// rebinding in the same scope is permitted
		{`let a = 1; let a = 2; a;`, 2},
		// the binding's value is also the statement's value
		{`let a = 41 + 1`, 42},
	}

	for _, test := range tests {
		assertInteger(t, evalSource(t, test.Input), test.Expected)
	}
}

func TestEvaluator_FunctionObject(t *testing.T) {
	result := evalSource(t, `fn(x) { x + 2; };`)

	fn, can := result.(*function.Function)
	assert.True(t, can)
	assert.Equal(t, 1, len(fn.Params))
	assert.Equal(t, "x", fn.Params[0].Literal())
	assert.Equal(t, "(x + 2)", fn.Body.Literal())
	assert.Equal(t, "fn(x) {\n\t(x + 2)\n}", fn.ToString())
	assert.Equal(t, objects.FunctionType, fn.GetType())
}

func TestEvaluator_FunctionApplication(t *testing.T) {

	tests := []struct {
		Input    string
		Expected int64
	}{
		{`let identity = fn(x) { x; }; identity(5);`, 5},
		{`let identity = fn(x) { return x; }; identity(5);`, 5},
		{`let double = fn(x) { x * 2; }; double(5);`, 10},
		{`let add = fn(x, y) { x + y; }; add(5, 5);`, 10},
		{`let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));`, 20},
		{`fn(x) { x; }(5)`, 5},
	}

	for _, test := range tests {
		assertInteger(t, evalSource(t, test.Input), test.Expected)
	}
}

func TestEvaluator_Closures(t *testing.T) {
	src := `
	let newAdder = fn(x) {
		fn(y) { x + y };
	};
	let addTwo = newAdder(2);
	addTwo(2);`
	assertInteger(t, evalSource(t, src), 4)
}

// a function sees its defining scope, parameters shadow outer bindings, and
// inner lets never leak outward
func TestEvaluator_ClosureScoping(t *testing.T) {
	src := `
	let first = 10;
	let second = 10;
	let third = 10;

	let ourFunction = fn(first) {
		let second = 20;
		first + second + third;
	};

	ourFunction(20) + first + second;`
	assertInteger(t, evalSource(t, src), 70)
}

// bindings added to the defining scope after the function is created are
// visible through the closure, which is what makes recursion work
func TestEvaluator_RecursiveFunctions(t *testing.T) {
	src := `
	let f = fn(x) {
		if (x < 2) {
			return x;
		} else {
			f(x - 1) + f(x - 2);
		}
	};
	f(15);`
	assertInteger(t, evalSource(t, src), 610)
}

func TestEvaluator_HigherOrderFunctions(t *testing.T) {
	src := `
	let add = fn(a, b) { a + b };
	let applyFunc = fn(a, b, func) { func(a, b) };
	applyFunc(2, 2, add);`
	assertInteger(t, evalSource(t, src), 4)
}

func TestEvaluator_StringLiteral(t *testing.T) {
	result := evalSource(t, `"Hello World!"`)

	str, can := result.(*objects.String)
	assert.True(t, can)
	assert.Equal(t, "Hello World!", str.Value)
}

func TestEvaluator_StringConcatenation(t *testing.T) {
	result := evalSource(t, `"Hello" + " " + "World!"`)

	str, can := result.(*objects.String)
	assert.True(t, can)
	assert.Equal(t, "Hello World!", str.Value)
}

func TestEvaluator_Builtins(t *testing.T) {

	tests := []struct {
		Input    string
		Expected interface{}
	}{
		{`len("")`, int64(0)},
		{`len("four")`, int64(4)},
		{`len("hello world")`, int64(11)},
		{`len([1, 2, 3])`, int64(3)},
		{`len([])`, int64(0)},
		{`len(1)`, "argument to `len` not supported, got MInteger"},
		{`len("one", "two")`, "wrong number of arguments. got=2, want=1"},
		{`len()`, "wrong number of arguments. got=0, want=1"},
		{`first([1, 2, 3])`, int64(1)},
		{`first([])`, nil},
		{`first(1)`, "argument to `first` must be ARRAY, got MInteger"},
		{`last([1, 2, 3])`, int64(3)},
		{`last([])`, nil},
		{`last("abc")`, "argument to `last` must be ARRAY, got MString"},
		{`rest([])`, nil},
		{`rest(true)`, "argument to `rest` must be ARRAY, got MBoolean"},
		{`push(1, 1)`, "argument to `push` must be ARRAY, got MInteger"},
		{`push([1])`, "wrong number of arguments. got=1, want=2"},
	}

	for _, test := range tests {
		result := evalSource(t, test.Input)
		switch expected := test.Expected.(type) {
		case int64:
			assertInteger(t, result, expected)
		case string:
			assertError(t, result, expected)
		default:
			assert.Same(t, objects.NULL, result, "input: %q", test.Input)
		}
	}
}

// rest and push build new arrays; the original is untouched
func TestEvaluator_BuiltinsDoNotMutate(t *testing.T) {
	src := `
	let a = [1, 2, 3];
	let b = rest(a);
	let c = push(a, 4);
	[len(a), len(b), len(c), first(b), last(c)];`
	result := evalSource(t, src)

	array, can := result.(*objects.Array)
	assert.True(t, can)
	assert.Equal(t, "[3, 2, 4, 2, 4]", array.ToString())
}

func TestEvaluator_ArrayLiterals(t *testing.T) {
	result := evalSource(t, `[1, 2 * 2, 3 + 3]`)

	array, can := result.(*objects.Array)
	assert.True(t, can)
	assert.Equal(t, 3, len(array.Elements))
	assertInteger(t, array.Elements[0], 1)
	assertInteger(t, array.Elements[1], 4)
	assertInteger(t, array.Elements[2], 6)
}

func TestEvaluator_ArrayIndexExpressions(t *testing.T) {

	tests := []struct {
		Input    string
		Expected interface{}
	}{
		{`[1, 2, 3][0]`, int64(1)},
		{`[1, 2, 3][1]`, int64(2)},
		{`[1, 2, 3][2]`, int64(3)},
		{`let i = 0; [1][i];`, int64(1)},
		{`[1, 2, 3][1 + 1];`, int64(3)},
		{`let myArray = [1, 2, 3]; myArray[2];`, int64(3)},
		{`let myArray = [1, 2, 3]; myArray[0] + myArray[1] + myArray[2];`, int64(6)},
		{`let myArray = [1, 2, 3]; let i = myArray[0]; myArray[i]`, int64(2)},
		{`[1, 2, 3][3]`, nil},
		// negative indices do not wrap
		{`[1, 2, 3][-1]`, nil},
	}

	for _, test := range tests {
		result := evalSource(t, test.Input)
		if expected, isInt := test.Expected.(int64); isInt {
			assertInteger(t, result, expected)
		} else {
			assert.Same(t, objects.NULL, result, "input: %q", test.Input)
		}
	}
}

func TestEvaluator_HashLiterals(t *testing.T) {
	src := `
	let two = "two";
	{
		"one": 10 - 9,
		two: 1 + 1,
		"thr" + "ee": 6 / 2,
		4: 4,
		true: 5,
		false: 6
	}`
	result := evalSource(t, src)

	hash, can := result.(*objects.Hash)
	assert.True(t, can)

	expected := map[objects.HashKey]int64{
		(&objects.String{Value: "one"}).HashKey():   1,
		(&objects.String{Value: "two"}).HashKey():   2,
		(&objects.String{Value: "three"}).HashKey(): 3,
		(&objects.Integer{Value: 4}).HashKey():      4,
		objects.TRUE.HashKey():                      5,
		objects.FALSE.HashKey():                     6,
	}
	assert.Equal(t, len(expected), len(hash.Pairs))
	for key, value := range expected {
		pair, ok := hash.Pairs[key]
		assert.True(t, ok)
		assertInteger(t, pair.Value, value)
	}
}

func TestEvaluator_HashIndexExpressions(t *testing.T) {

	tests := []struct {
		Input    string
		Expected interface{}
	}{
		{`{"foo": 5}["foo"]`, int64(5)},
		{`{"foo": 5}["bar"]`, nil},
		{`let key = "foo"; {"foo": 5}[key]`, int64(5)},
		{`{}["foo"]`, nil},
		{`{5: 5}[5]`, int64(5)},
		{`{true: 5}[true]`, int64(5)},
		{`{false: 5}[false]`, int64(5)},
	}

	for _, test := range tests {
		result := evalSource(t, test.Input)
		if expected, isInt := test.Expected.(int64); isInt {
			assertInteger(t, result, expected)
		} else {
			assert.Same(t, objects.NULL, result, "input: %q", test.Input)
		}
	}
}

// the observable result of a returning function body is always the payload,
// never the ReturnValue wrapper
func TestEvaluator_ReturnValueDoesNotLeak(t *testing.T) {

	tests := []struct {
		Input    string
		Expected int64
	}{
		{`let f = fn() { return 1; 2; }; f();`, 1},
		{`let f = fn() { if (true) { return 1; } return 2; }; f();`, 1},
		{`let f = fn() { return 1; }; let g = fn() { f() + 1 }; g();`, 2},
		{`let f = fn(x) { if (x) { return 10; } 20; }; f(false) + f(true);`, 30},
	}

	for _, test := range tests {
		result := evalSource(t, test.Input)
		assertInteger(t, result, test.Expected)
		assert.NotEqual(t, objects.ReturnValueType, result.GetType())
	}
}

// deeply nested blocks resolve an outer binding through the scope chain
func TestEvaluator_NestedBlockLookup(t *testing.T) {
	for depth := 1; depth <= 10; depth++ {
		src := "let x = 7; " + strings.Repeat("if (true) { ", depth) + "x" + strings.Repeat(" }", depth)
		assertInteger(t, evalSource(t, src), 7)
	}
}

// genIntegerExpression builds a random fully-parenthesized expression over
// {+, -, *} and returns its source form together with its value computed
// host-side.
func genIntegerExpression(r *rand.Rand, depth int) (string, int64) {
	if depth == 0 || r.Intn(3) == 0 {
		n := int64(r.Intn(201) - 100)
		return fmt.Sprintf("(%d)", n), n
	}

	leftSrc, leftVal := genIntegerExpression(r, depth-1)
	rightSrc, rightVal := genIntegerExpression(r, depth-1)

	switch r.Intn(3) {
	case 0:
		return fmt.Sprintf("(%s + %s)", leftSrc, rightSrc), leftVal + rightVal
	case 1:
		return fmt.Sprintf("(%s - %s)", leftSrc, rightSrc), leftVal - rightVal
	default:
		return fmt.Sprintf("(%s * %s)", leftSrc, rightSrc), leftVal * rightVal
	}
}

// the evaluator agrees with the host's integer arithmetic on random
// expressions
func TestEvaluator_RandomIntegerExpressions(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		src, expected := genIntegerExpression(r, 4)
		assertInteger(t, evalSource(t, src), expected)
	}
}
