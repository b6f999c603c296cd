/*
File : go-bruno/repl/repl.go

Package repl implements the Read-Eval-Print Loop (REPL) for the Bruno
interpreter. The REPL provides an interactive environment where users can:
- Enter Bruno code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for results and errors

Bindings persist across lines: every input line is evaluated against the
same evaluator, so a `let` on one line is visible on the next. The REPL
uses the readline library for line editing and integrates with the parser
and evaluator to execute user input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/go-bruno/eval"
	"github.com/akashmaji946/go-bruno/parser"
)

// Color definitions for REPL output:
// - blueColor: decorative lines and separators
// - yellowColor: expression results and version info
// - redColor: parser and runtime errors
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "bruno >>> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions:
// the Bruno logo, version and license information, and basic navigation
// tips.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Bruno!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates one evaluator instance shared by every line
// 4. Reads, parses and evaluates lines until '.exit' or EOF (Ctrl+D)
func (r *Repl) Start(writer io.Writer) {

	r.PrintBannerInfo(writer)

	// Readline provides command history and line editing
	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	// One evaluator for the whole session keeps bindings alive across lines
	ev := eval.NewEvaluator()

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			cyanColor.Fprintf(writer, "%s\n", "Goodbye!")
			break
		}

		r.EvalAndPrint(line, ev, writer)
	}
}

// EvalAndPrint runs one line of source through the parser and evaluator and
// prints either the rendered result or the errors encountered.
func (r *Repl) EvalAndPrint(src string, ev *eval.Evaluator, writer io.Writer) {
	par := parser.NewParser(src)
	root := par.Parse()

	if len(par.Errors) > 0 {
		redColor.Fprintf(writer, "%s\n", "parser errors:")
		for _, parseError := range par.Errors {
			redColor.Fprintf(writer, "\t%s\n", parseError)
		}
		return
	}

	evaluated := ev.Eval(root)
	if evaluated != nil {
		yellowColor.Fprintf(writer, "%s\n", evaluated.ToString())
	}
}
