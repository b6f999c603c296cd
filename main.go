/*
File : go-bruno/main.go

Package main is the entry point for the Bruno interpreter.
It provides the command-line interface with the following modes:
1. REPL Mode (default): interactive Read-Eval-Print Loop for live coding
2. File Mode: execute a Bruno source file given as an argument
3. Expression Mode (-e): evaluate a single expression from the command line
4. bench: time the fibonacci(35) workload through the full pipeline
5. version: print version information

The interpreter uses a lexer-parser-evaluator pipeline to process Bruno
code.
*/
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/go-bruno/eval"
	"github.com/akashmaji946/go-bruno/parser"
	"github.com/akashmaji946/go-bruno/repl"
)

// VERSION represents the current version of the Bruno interpreter
var VERSION = "v1.0.0"

// LICENSE specifies the software license (MIT License)
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "bruno >>> "

// BANNER is the ASCII logo displayed when starting the REPL
var BANNER = `
 ____
| __ ) _ __ _   _ _ __   ___
|  _ \| '__| | | | '_ \ / _ \
| |_) | |  | |_| | | | | (_) |
|____/|_|   \__,_|_| |_|\___/
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for CLI output:
// - redColor: error messages
// - yellowColor: results
// - cyanColor: informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// fibonacciSource is the workload the bench subcommand runs, the classic
// doubly-recursive fibonacci at depth 35.
var fibonacciSource = `
let fibonacci = fn(x) {
	if (x < 2) {
		return x;
	} else {
		fibonacci(x - 1) + fibonacci(x - 2);
	}
};
fibonacci(35);
`

// expression holds the -e flag value: an expression to evaluate in place of
// a source file.
var expression string

// showAST enables the AST dump: the parsed tree is printed before the
// program is evaluated.
var showAST bool

// rootCmd runs a source file when given an argument, evaluates -e when
// given one, and starts the REPL otherwise.
var rootCmd = &cobra.Command{
	Use:   "go-bruno [file]",
	Short: "The Bruno language interpreter",
	Long: "go-bruno is a tree-walking interpreter for Bruno, a small language\n" +
		"with first-class functions, closures, arrays and hash maps.\n\n" +
		"With no arguments it starts an interactive REPL.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if expression != "" {
			return runSource(expression)
		}
		if len(args) == 1 {
			return runFile(args[0])
		}
		r := repl.NewRepl(BANNER, VERSION, LINE, LICENSE, PROMPT)
		r.Start(os.Stdout)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// versionCmd prints the interpreter version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version",
	Run: func(cmd *cobra.Command, args []string) {
		cyanColor.Printf("go-bruno %s (%s)\n", VERSION, LICENSE)
	},
}

// benchCmd times the fibonacci(35) workload through the full
// lexer-parser-evaluator pipeline.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the fibonacci(35) workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		par := parser.NewParser(fibonacciSource)
		root := par.Parse()
		if len(par.Errors) > 0 {
			return fmt.Errorf("parser errors: %v", par.Errors)
		}

		ev := eval.NewEvaluator()
		start := time.Now()
		result := ev.Eval(root)
		duration := time.Since(start)

		yellowColor.Printf("%s, duration=%s\n", result.ToString(), duration)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&expression, "eval", "e", "", "evaluate an expression and exit")
	rootCmd.Flags().BoolVar(&showAST, "ast", false, "print the parsed AST before evaluating")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(benchCmd)
}

// runFile reads a Bruno source file and runs it.
func runFile(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", filename, err)
	}
	return runSource(string(src))
}

// runSource runs one source text through the pipeline: parse, optionally
// dump the AST, evaluate, and print the rendered result. Parser errors are
// printed together and stop the run; runtime errors are values and print
// through the normal rendering path (with an ERROR: prefix).
func runSource(src string) error {
	par := parser.NewParser(src)
	root := par.Parse()

	if len(par.Errors) > 0 {
		redColor.Fprintf(os.Stderr, "%s\n", "parser errors:")
		for _, parseError := range par.Errors {
			redColor.Fprintf(os.Stderr, "\t%s\n", parseError)
		}
		return fmt.Errorf("%d parser errors", len(par.Errors))
	}

	if showAST {
		visitor := &parser.PrintingVisitor{}
		root.Accept(visitor)
		cyanColor.Print(visitor.String())
	}

	ev := eval.NewEvaluator()
	result := ev.Eval(root)
	if result != nil {
		yellowColor.Printf("%s\n", result.ToString())
	}
	return nil
}

// main delegates to cobra.
func main() {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
