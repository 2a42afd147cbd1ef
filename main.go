// Risp is a minimal S expression language: a reader and a tree walking
// evaluator of native functions.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/sets"
	"fortio.org/struct2env"
	"fortio.org/terminal"
	"risp.io/risp/eval"
	"risp.io/risp/extensions"
	"risp.io/risp/repl"
	"risp.io/risp/token"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	HistoryFile string
	AllowAtoms  bool
}

var config = Config{}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("RISP_", res, true)
	fmt.Fprintln(w, "# Risp environment variables:")
	fmt.Fprint(w, str)
}

// Set by main_pprof.go unless built with the no_pprof tag.
var startProfiling, stopProfiling func() int

func Main() (exitCode int) {
	commandFlag := flag.String("c", "", "command/inline script to run instead of interactive mode")
	showParse := flag.Bool("parse", false, "show parse tree")
	parseFormat := flag.String("parse-format", repl.FormatCanonical, "parse tree `format`: canonical, debug or yaml")
	format := flag.Bool("format", false, "don't execute, just parse and re format the input")
	showEval := flag.Bool("eval", true, "show eval results")
	sharedState := flag.Bool("shared-state", false, "All files share same interpreter state (default is new state for each)")
	showInfo := flag.Bool("info", false, "print the builtin and extension function names and exit")
	const historyDefault = "~/.risp_history" // virtual/token filename, will be replaced by actual home dir if not changed.
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	defaultHistoryFile := historyDefault
	errs := struct2env.SetFromEnv("RISP_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	if config.HistoryFile != "" {
		defaultHistoryFile = config.HistoryFile
	}
	allowAtoms := flag.Bool("atoms", config.AllowAtoms, "allow bare atoms and strings as top level forms")
	historyFile := flag.String("history", defaultHistoryFile, "history `file` to use")
	maxHistory := flag.Int("max-history", terminal.DefaultHistoryCapacity, "max history `size`, use 0 to disable.")
	maxDepth := flag.Int("max-depth", eval.DefaultMaxDepth, "Maximum list nesting `depth` for parsing and evaluation")
	panicOk := flag.Bool("panic", false, "Don't catch panic - only for development/debugging")

	cli.ArgsHelp = "files to interpret or `-` for stdin without prompt or no arguments for stdin repl..."
	cli.MaxArgs = -1
	cli.Main()
	err := extensions.Init(nil)
	if err != nil {
		return log.FErrf("Error initializing extensions: %v", err)
	}
	if *showInfo {
		info := token.Info()
		fmt.Println("Builtins and extensions:", strings.Join(sets.Sort(info.Builtins), " "))
		return 0
	}
	histFile := *historyFile
	if histFile == historyDefault {
		homeDir, err := os.UserHomeDir()
		histFile = filepath.Join(homeDir, ".risp_history")
		if err != nil {
			log.Warnf("Couldn't get user home dir: %v", err)
			histFile = ""
		}
	}
	log.Infof("risp %s - welcome!", cli.LongVersion)
	memlimit := debug.SetMemoryLimit(-1)
	if memlimit == math.MaxInt64 {
		log.LogVf("Memory limit not set, consider setting GOMEMLIMIT env var; e.g. GOMEMLIMIT=1GiB")
	}
	options := repl.Options{
		ShowParse:   *showParse,
		ParseFormat: *parseFormat,
		ShowEval:    *showEval,
		FormatOnly:  *format,
		AllowAtoms:  *allowAtoms,
		HistoryFile: histFile,
		MaxHistory:  *maxHistory,
		MaxDepth:    *maxDepth,
		PanicOk:     *panicOk,
	}
	if startProfiling != nil {
		if ret := startProfiling(); ret != 0 {
			return ret
		}
		// Profiles are written whatever the mode, -c and interactive included.
		defer func() {
			if ret := stopProfiling(); ret != 0 && exitCode == 0 {
				exitCode = ret
			}
		}()
	}
	return run(*commandFlag, *sharedState, options)
}

func run(command string, sharedState bool, options repl.Options) int {
	if command != "" {
		res, errs, _ := repl.EvalStringWithOption(options, command)
		if len(errs) > 0 {
			log.Errf("Errors: %v", errs)
		}
		fmt.Print(res)
		return len(errs)
	}
	if len(flag.Args()) == 0 {
		return repl.Interactive(options)
	}
	options.All = true
	s := newState(options)
	for _, file := range flag.Args() {
		ret := processOneFile(file, s, options)
		if ret != 0 {
			return ret
		}
		if !sharedState {
			s = newState(options)
		}
	}
	log.Infof("All done")
	return 0
}

func newState(options repl.Options) *eval.State {
	s := eval.NewState()
	s.MaxDepth = options.MaxDepth
	s.AllowAtoms = options.AllowAtoms
	return s
}

func processOneStream(s *eval.State, in io.Reader, options repl.Options) int {
	errs := repl.EvalAll(s, in, os.Stdout, options)
	if len(errs) > 0 {
		log.Errf("Errors: %v", errs)
	}
	return len(errs)
}

func processOneFile(file string, s *eval.State, options repl.Options) int {
	if file == "-" {
		if options.FormatOnly {
			log.Infof("Formatting stdin")
		} else {
			log.Infof("Running on stdin")
		}
		return processOneStream(s, os.Stdin, options)
	}
	f, err := os.Open(file)
	if err != nil {
		return log.FErrf("%v", err)
	}
	defer f.Close()
	verb := "Running"
	if options.FormatOnly {
		verb = "Formatting"
	}
	log.Infof("%s %s", verb, file)
	return processOneStream(s, f, options)
}
