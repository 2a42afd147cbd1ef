// Package repl reads, parses and evaluates units of input (a -c string, a
// file, a terminal line) and prints the results.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"fortio.org/log"
	"fortio.org/terminal"
	"risp.io/risp/ast"
	"risp.io/risp/eval"
	"risp.io/risp/extensions"
	"risp.io/risp/parser"
)

const PROMPT = "risp> "

// Parse tree output formats.
const (
	FormatCanonical = "canonical"
	FormatDebug     = "debug"
	FormatYAML      = "yaml"
)

type Options struct {
	ShowParse   bool
	ParseFormat string // one of FormatCanonical (default), FormatDebug or FormatYAML.
	ShowEval    bool
	FormatOnly  bool
	AllowAtoms  bool
	All         bool // whole input at once instead of line by line.
	Color       bool
	HistoryFile string
	MaxHistory  int
	MaxDepth    int
	PanicOk     bool
	// PreInput is called on the new state before evaluating, e.g. to Defn
	// additional functions.
	PreInput func(*eval.State)
}

// EvalAll reads all of in and evaluates it as one unit. Returns the errors.
func EvalAll(s *eval.State, in io.Reader, out io.Writer, options Options) []string {
	b, err := io.ReadAll(in)
	if err != nil {
		log.Errf("Error reading input: %v", err)
		return []string{err.Error()}
	}
	options.All = true
	errs, _ := EvalOne(s, string(b), out, options)
	return errs
}

// EvalString can be used from playground etc... for single eval.
// returns the eval result and errors along with the canonical formatted input.
//
//nolint:revive // repl.EvalString is fine.
func EvalString(what string) (string, []string, string) {
	return EvalStringWithOption(EvalStringOptions(), what)
}

// EvalStringOptions returns the default options for EvalString.
func EvalStringOptions() Options {
	return Options{ShowEval: true, All: true}
}

// EvalStringWithOption evaluates what in a new state configured by o. The
// extensions are registered with their default configuration if that wasn't
// done already.
func EvalStringWithOption(o Options, what string) (string, []string, string) {
	if err := extensions.Init(nil); err != nil {
		log.Errf("Error initializing extensions: %v", err)
		return "", []string{err.Error()}, what
	}
	s := eval.NewState()
	configure(s, o)
	if o.PreInput != nil {
		o.PreInput(s)
	}
	o.All = true
	o.Color = false
	out := strings.Builder{}
	errs, formatted := EvalOne(s, what, &out, o)
	return out.String(), errs, formatted
}

func configure(s *eval.State, options Options) {
	if options.MaxDepth > 0 {
		s.MaxDepth = options.MaxDepth
	}
	s.AllowAtoms = options.AllowAtoms
}

// Interactive runs the terminal read-eval-print loop until EOF.
// Returns the exit code.
func Interactive(options Options) int {
	options.Color = true
	s := eval.NewState()
	configure(s, options)
	t, err := terminal.Open(context.Background())
	if err != nil {
		return log.FErrf("Error creating terminal: %v", err)
	}
	defer t.Close()
	t.SetPrompt(PROMPT)
	autoComplete := NewCompletion()
	s.Namespace().RegisterTrie(autoComplete.Trie)
	t.SetAutoCompleteCallback(autoComplete.AutoComplete())
	if options.MaxHistory > 0 {
		t.NewHistory(options.MaxHistory)
		if err = t.SetHistoryFile(options.HistoryFile); err != nil {
			log.Warnf("Unable to use history file %q: %v", options.HistoryFile, err)
		}
	}
	log.Infof("Type an S expression, e.g. (+ 1 2), tab to complete function names, ^D to exit")
	for {
		rd, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Infof("Bye!")
			return 0
		}
		if errors.Is(err, terminal.ErrUserInterrupt) {
			log.Infof("Interrupted, ^D to exit")
			continue
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		l := strings.TrimSpace(rd)
		if l == "" {
			continue
		}
		log.Debugf("Read: %q", l)
		EvalOne(s, l, t.Out, options)
	}
}

// EvalOne parses and evaluates one unit of input. Nothing is evaluated if
// any part of it fails to parse and nothing but the error is printed if any
// form fails to evaluate. Returns the errors and the canonical form of the
// input (the input itself when it can't be parsed).
func EvalOne(s *eval.State, what string, out io.Writer, options Options) (errs []string, formatted string) {
	formatted = what
	if !options.PanicOk {
		defer func() {
			if r := recover(); r != nil {
				log.Critf("Caught panic: %v", r)
				log.Debugf("Stack trace: %s", debug.Stack())
				s.Reset()
				errs = append(errs, fmt.Sprintf("panic: %v", r))
				printError(out, options, errs[len(errs)-1])
			}
		}()
	}
	p := parser.NewString(what)
	p.AllowAtoms = options.AllowAtoms
	if options.MaxDepth > 0 {
		p.MaxDepth = options.MaxDepth
	}
	program, err := p.ParseProgram()
	if err != nil {
		log.LogVf("parser error on %q: %v", what, err)
		errs = append(errs, "parsing error: "+err.Error())
		printError(out, options, errs[0])
		return errs, formatted
	}
	formatted = canonical(program)
	if options.FormatOnly {
		fmt.Fprint(out, formatted)
		return nil, formatted
	}
	if options.ShowParse {
		if err = showParse(out, program, options.ParseFormat); err != nil {
			errs = append(errs, err.Error())
			return errs, formatted
		}
	}
	results, err := s.EvalProgram(program)
	if err != nil {
		errs = append(errs, "eval error: "+err.Error())
		printError(out, options, errs[0])
		return errs, formatted
	}
	if !options.ShowEval {
		return nil, formatted
	}
	for _, r := range results {
		if options.Color {
			fmt.Fprint(out, log.ANSIColors.Green)
		}
		fmt.Fprint(out, r.Inspect())
		if options.Color {
			fmt.Fprint(out, log.ANSIColors.Reset)
		}
		fmt.Fprintln(out)
	}
	return nil, formatted
}

func canonical(program *ast.Program) string {
	buf := strings.Builder{}
	for _, f := range program.Forms {
		buf.WriteString(f.String())
		buf.WriteByte('\n')
	}
	return buf.String()
}

func showParse(out io.Writer, program *ast.Program, format string) error {
	for _, f := range program.Forms {
		switch format {
		case "", FormatCanonical:
			fmt.Fprintln(out, "== Parse ==>", f.String())
		case FormatDebug:
			fmt.Fprintln(out, "== Parse ==>", ast.DebugString(f))
		case FormatYAML:
			y, err := ast.YAML(f)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "== Parse ==>")
			fmt.Fprint(out, y)
		default:
			return fmt.Errorf("unknown parse format %q", format)
		}
	}
	return nil
}

// Errors go to the output interactively, otherwise to the log.
func printError(out io.Writer, options Options, msg string) {
	if !options.Color {
		log.Errf("%s", msg)
		return
	}
	fmt.Fprint(out, log.ANSIColors.Red)
	fmt.Fprint(out, msg)
	fmt.Fprintln(out, log.ANSIColors.Reset)
}
