/*
File    : go-mix-core/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the go-mix-core interpreter. It wires
three modes: run a file once, start an interactive REPL (default), or
start a `server <port>` REPL-over-TCP listener, using
github.com/spf13/cobra for flag/command parsing in place of the teacher's
hand-rolled os.Args switch (SPEC_FULL.md §2).
*/
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/go-mix-core/builtin"
	"github.com/akashmaji946/go-mix-core/config"
	"github.com/akashmaji946/go-mix-core/eval"
	"github.com/akashmaji946/go-mix-core/lexer"
	"github.com/akashmaji946/go-mix-core/logx"
	"github.com/akashmaji946/go-mix-core/parser"
	"github.com/akashmaji946/go-mix-core/repl"
)

// version, author, license, defaultPrompt, banner and line mirror the teacher's
// package-level identity constants in main/main.go.
const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
)

var defaultPrompt = "gomix> "

var banner = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄     ██
  ██▀▀▀▀█                      ███  ███     ▀▀
 ██         ▄████▄             ████████   ████     ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██   	       ██ ██ ██     ██       ████
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██     ██       ▄██▄
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ▄▄▄██▄▄▄   ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ▀▀▀▀▀▀▀▀  ▀▀▀  ▀▀▀
`

var line = "----------------------------------------------------------------"

var (
	flagFile  string
	flagRepl  bool
	flagDebug bool
)

func main() {
	root := &cobra.Command{
		Use:   "gomix",
		Short: "go-mix-core: a call-by-need lambda calculus interpreter",
		RunE:  runRoot,
	}
	root.Flags().StringVar(&flagFile, "file", "", "run a source file once and exit")
	root.Flags().BoolVar(&flagRepl, "repl", false, "start the interactive REPL (default if --file is not given)")
	root.Flags().BoolVar(&flagDebug, "debug", false, "dump tokens/AST and enable debug logging")

	root.AddCommand(serverCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if flagFile != "" {
		return runFile(flagFile, flagDebug, os.Stdout, os.Stderr)
	}
	runRepl(flagDebug)
	return nil
}

func serverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server <port>",
		Short: "start a REPL-over-TCP server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.ServeTCP(args[0], banner, version, author, line, license, defaultPrompt)
		},
	}
}

// runFile reads and executes a source file once against writer/errWriter,
// returning a non-nil error on any IO, lex, parse, or runtime failure
// (spec §6's process interface contract: exit code 0 on success, non-zero
// otherwise — main() is the only place that calls os.Exit).
func runFile(path string, debug bool, out, errOut *os.File) error {
	colorOutput := isatty.IsTerminal(out.Fd())
	logger := logx.NewLogger(errOut, colorOutput)
	logger.DebugOn = debug

	ev := eval.NewEvaluator()
	ev.Writer = out
	ev.Logger = logger
	builtin.Register(ev)

	resolver := parser.NewResolver()
	par, err := parser.NewParserFromFile(path, resolver)
	if err != nil {
		return fmt.Errorf("[IO ERROR] %w", err)
	}
	prog, err := par.Parse()
	if err != nil {
		return fmt.Errorf("[PARSE ERROR] %w", err)
	}

	if debug {
		if lex, lexErr := lexer.NewLexerFromFile(path); lexErr == nil {
			if toks, lexErr := lex.ConsumeTokens(); lexErr == nil {
				for _, tok := range toks {
					logger.Debug("token: ", tok.String())
				}
			}
		}
		logger.Debug("AST: ", prog.String())
	}

	_, last, _, err := ev.Interpret(prog, nil, eval.InterpretOptions{OwnExpr: false})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, last.String())
	return nil
}

// runRepl starts an interactive session on stdin/stdout, merging a
// .gomixrc.yaml (if any) under the --debug CLI flag.
func runRepl(debug bool) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	cfg, _ := config.Load(cwd)
	cfg = cfg.Merge(config.Config{Debug: debug})

	prompt := defaultPrompt
	if cfg.Prompt != "" {
		prompt = cfg.Prompt
	}

	r := repl.NewRepl(banner, version, author, line, license, prompt)
	r.EntryDir = cwd
	r.InitialDebug = cfg.Debug
	r.InitialForceOnDump = cfg.ForceOnDump
	r.Start(os.Stdin, os.Stdout)
}
