/*
File : go-bruno/eval/benchmark_test.go
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/go-bruno/objects"
	"github.com/akashmaji946/go-bruno/parser"
)

// the doubly-recursive fibonacci exercises closures, recursion depth, and
// return unwinding all at once
const fibonacciSource = `
let fibonacci = fn(x) {
	if (x < 2) {
		return x;
	} else {
		fibonacci(x - 1) + fibonacci(x - 2);
	}
};
fibonacci(20);
`

func BenchmarkEvaluator_Fibonacci(b *testing.B) {
	par := parser.NewParser(fibonacciSource)
	root := par.Parse()
	if len(par.Errors) > 0 {
		b.Fatalf("parser errors: %v", par.Errors)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := NewEvaluator().Eval(root)
		if integer, ok := result.(*objects.Integer); !ok || integer.Value != 6765 {
			b.Fatalf("unexpected result: %v", result)
		}
	}
}

func BenchmarkParser_Fibonacci(b *testing.B) {
	for i := 0; i < b.N; i++ {
		par := parser.NewParser(fibonacciSource)
		root := par.Parse()
		if len(par.Errors) > 0 || len(root.Statements) != 2 {
			b.Fatalf("parse failed: %v", par.Errors)
		}
	}
}
