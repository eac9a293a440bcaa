package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/funvibe/funlam/internal/analyzer"
	"github.com/funvibe/funlam/internal/ast"
	"github.com/funvibe/funlam/internal/config"
	"github.com/funvibe/funlam/internal/lexer"
	"github.com/funvibe/funlam/internal/parser"
	"github.com/funvibe/funlam/internal/pipeline"
	"github.com/funvibe/funlam/internal/prettyprinter"
	"github.com/funvibe/funlam/internal/reducer"
	"github.com/mattn/go-isatty"
)

const usage = `funlam parses, type-checks and reduces lambda terms.

Usage:
  funlam [flags] <file>
  funlam [flags] -          read the term from stdin

Flags:
  -a, --arg <file>     apply the term to the term in <file>
  -d, --debug          print the term tree instead of source form
      --trace          write one line per reduction step to stderr
      --max-steps <n>  stop after n reduction steps (0 = unbounded)
      --ascii          print \ and -> instead of λ and →
      --config <file>  use <file> instead of the nearest funlam.yaml
  -h, --help           show this help
  -v, --version        show the version

The output is itself a valid term, so results can be piped into
another run. Exit status is 0 on success and 1 on any error.
`

// options collects what the command line decides; unset numeric flags
// stay negative so funlam.yaml values show through.
type options struct {
	filePath   string
	argPath    string
	configPath string
	maxSteps   int
	debug      bool
	trace      bool
	ascii      bool
}

func handleHelp() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	if arg != "-h" && arg != "-help" && arg != "--help" && arg != "help" {
		return false
	}
	fmt.Print(usage)
	return true
}

func handleVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	if arg != "-v" && arg != "-version" && arg != "--version" && arg != "version" {
		return false
	}
	fmt.Printf("funlam %s\n", config.Version)
	return true
}

func parseArgs(args []string) (*options, error) {
	opts := &options{maxSteps: -1}

	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-a" || arg == "--arg":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("%s requires a file argument", arg)
			}
			opts.argPath = args[i]
		case arg == "--config":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("--config requires a file argument")
			}
			opts.configPath = args[i]
		case arg == "--max-steps":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("--max-steps requires a number")
			}
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("--max-steps wants a non-negative integer, got %q", args[i])
			}
			opts.maxSteps = n
		case arg == "-d" || arg == "--debug":
			opts.debug = true
		case arg == "--trace":
			opts.trace = true
		case arg == "--ascii":
			opts.ascii = true
		case arg == "-":
			if opts.filePath != "" {
				return nil, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.filePath = "-"
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown flag %s", arg)
		default:
			if opts.filePath != "" {
				return nil, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.filePath = arg
		}
	}

	return opts, nil
}

// loadConfig resolves the effective configuration: an explicit --config
// path, else the nearest funlam.yaml above the input file, else the
// defaults.
func loadConfig(opts *options) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadConfig(opts.configPath)
	}

	dir := "."
	if opts.filePath != "" && opts.filePath != "-" {
		dir = filepath.Dir(opts.filePath)
	}

	path, err := config.FindConfig(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

func readInput(opts *options) (sourceCode string, filePath string, err error) {
	if opts.filePath == "" || opts.filePath == "-" {
		if opts.filePath == "" {
			stat, _ := os.Stdin.Stat()
			if (stat.Mode() & os.ModeCharDevice) != 0 {
				return "", "", fmt.Errorf("usage: %s <file> or pipe from stdin", os.Args[0])
			}
		}
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(input), "", nil
	}

	input, err := os.ReadFile(opts.filePath)
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}
	absPath, err := filepath.Abs(opts.filePath)
	if err != nil {
		absPath = opts.filePath
	}
	return string(input), absPath, nil
}

// processSource runs lexing, parsing and the per-source type check.
// Each source's ascription is verified against that source's own term.
func processSource(sourceCode, filePath string) *pipeline.PipelineContext {
	initialContext := pipeline.NewPipelineContext(sourceCode)
	initialContext.FilePath = filePath

	processingPipeline := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.TypeCheckProcessor{},
	)
	return processingPipeline.Run(initialContext)
}

// reportErrors prints the error listing and reports whether the
// context failed.
func reportErrors(ctx *pipeline.PipelineContext, cfg *config.Config) bool {
	if len(ctx.Errors) == 0 {
		return false
	}

	fmt.Fprintln(os.Stderr, "Processing failed with errors:")
	color := shouldColor(cfg)
	for _, err := range ctx.Errors {
		if color {
			fmt.Fprintf(os.Stderr, "- \x1b[31m%s\x1b[0m\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "- %s\n", err.Error())
		}
	}
	return true
}

func shouldColor(cfg *config.Config) bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// renderResult builds the final stdout line: the reduced term in
// parentheses, with the term's type appended when the source opted
// into typed mode.
func renderResult(ctx *pipeline.PipelineContext, debug, ascii bool) string {
	if debug {
		out := prettyprinter.NewTreePrinter().Print(ctx.Term)
		if ctx.Typed && ctx.TermType != nil {
			out += "\nType: " + prettyprinter.NewCodePrinter().TypeString(ctx.TermType)
		}
		return out
	}

	printer := prettyprinter.NewCodePrinter()
	if ascii {
		printer = prettyprinter.NewCodePrinterASCII()
	}
	out := "(" + printer.Print(ctx.Term) + ")"
	if ctx.Typed && ctx.TermType != nil {
		out += ":" + printer.TypeString(ctx.TermType)
	}
	return out
}

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			// Print stack trace for debugging
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if handleHelp() {
		return
	}
	if handleVersion() {
		return
	}

	opts, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	maxSteps := cfg.MaxSteps
	if opts.maxSteps >= 0 {
		maxSteps = opts.maxSteps
	}
	ascii := cfg.ASCII || opts.ascii

	sourceCode, filePath, err := readInput(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	mainCtx := processSource(sourceCode, filePath)
	if reportErrors(mainCtx, cfg) {
		os.Exit(1)
	}

	term := mainCtx.Term
	typed := mainCtx.Typed

	if opts.argPath != "" {
		argSource, err := os.ReadFile(opts.argPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading argument: %s\n", err)
			os.Exit(1)
		}
		argPath, err := filepath.Abs(opts.argPath)
		if err != nil {
			argPath = opts.argPath
		}

		argCtx := processSource(string(argSource), argPath)
		if reportErrors(argCtx, cfg) {
			os.Exit(1)
		}

		term = &ast.Application{Token: term.GetToken(), Function: term, Argument: argCtx.Term}
		typed = typed || argCtx.Typed
	}

	// The composed term gets its own check: applying the argument must
	// itself be well-typed, and one annotated side makes the whole term
	// typed.
	finalCtx := pipeline.NewPipelineContext(sourceCode)
	finalCtx.FilePath = filePath
	finalCtx.Term = term
	finalCtx.Typed = typed
	finalCtx.MaxSteps = maxSteps
	if opts.trace {
		finalCtx.Trace = os.Stderr
	}

	processingPipeline := pipeline.New(
		&analyzer.TypeCheckProcessor{},
		&reducer.ReduceProcessor{},
	)
	finalCtx = processingPipeline.Run(finalCtx)
	if reportErrors(finalCtx, cfg) {
		os.Exit(1)
	}

	fmt.Println(renderResult(finalCtx, opts.debug, ascii))
}
