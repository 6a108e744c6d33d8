/*
File    : go-mix-core/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter.
The REPL provides an interactive environment where users can:
- Enter source line by line, with backtick (`) continuation for multi-line entries
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses github.com/chzyer/readline for line editing when talking to
a real terminal, and falls back to a plain line-at-a-time reader otherwise
(piped input, the `server` TCP mode) — detected via github.com/mattn/go-isatty.
*/
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/akashmaji946/go-mix-core/builtin"
	"github.com/akashmaji946/go-mix-core/eval"
	"github.com/akashmaji946/go-mix-core/lexer"
	"github.com/akashmaji946/go-mix-core/logx"
	"github.com/akashmaji946/go-mix-core/parser"
	"github.com/akashmaji946/go-mix-core/value"
)

// Color definitions for REPL output, grounded on the teacher's
// blueColor/yellowColor/redColor/greenColor/cyanColor convention.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// continuationMarker is the backtick line-ending that tells the REPL to
// keep accumulating lines into the current entry (spec §6).
const continuationMarker = "`"

// Repl represents one Read-Eval-Print Loop instance. It owns the live
// evaluator and environment, so state (bindings, debug/force toggles)
// persists across lines the way spec §6's REPL commands require.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// EntryDir anchors relative `:l/:load` paths and is also where the
	// config package looks for a .gomixrc.yaml (cmd/gomix wires this).
	EntryDir string

	// InitialDebug/InitialForceOnDump seed the :d/:force toggles from a
	// merged config.Config (cmd/gomix wires these before calling Start).
	InitialDebug       bool
	InitialForceOnDump bool

	evaluator   *eval.Evaluator
	env         *value.Env
	resolver    *parser.Resolver
	debugOn     bool
	forceOnDump bool
	colorOutput bool
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	r.colorFprintf(writer, blueColor, "%s\n", r.Line)
	r.colorFprintf(writer, greenColor, "%s\n", r.Banner)
	r.colorFprintf(writer, blueColor, "%s\n", r.Line)
	r.colorFprintf(writer, yellowColor, "Version: %s | Author: %s | License: %s\n", r.Version, r.Author, r.License)
	r.colorFprintf(writer, blueColor, "%s\n", r.Line)
	r.colorFprintf(writer, cyanColor, "Welcome to Go-Mix!\n")
	r.colorFprintf(writer, cyanColor, "Type your code and press enter. A line ending in '%s' continues onto the next line.\n", continuationMarker)
	r.colorFprintf(writer, cyanColor, "Type ':h' for a list of commands, ':q' to quit.\n")
	r.colorFprintf(writer, blueColor, "%s\n", r.Line)
}

func (r *Repl) colorFprintf(w io.Writer, c *color.Color, format string, args ...any) {
	if r.colorOutput {
		c.Fprintf(w, format, args...)
		return
	}
	fmt.Fprintf(w, format, args...)
}

// Start begins the REPL main loop, reading from reader and writing to
// writer until the user quits, EOF is reached, or reader is exhausted.
// reader/writer are typically os.Stdin/os.Stdout for an interactive
// session, or a net.Conn for the `server` TCP mode (spec §4's
// supplemented feature), or in-memory buffers in tests.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.colorOutput = isTerminalWriter(writer)
	r.evaluator = eval.NewEvaluator()
	r.evaluator.Writer = writer
	r.evaluator.Logger = logx.NewLogger(writer, r.colorOutput)
	builtin.Register(r.evaluator)
	r.resolver = parser.NewResolver()
	r.env = r.evaluator.NewRootEnv()
	r.debugOn = r.InitialDebug
	r.forceOnDump = r.InitialForceOnDump
	r.evaluator.Logger.DebugOn = r.debugOn

	r.PrintBannerInfo(writer)

	if isTerminalReader(reader) {
		r.runReadline(writer)
		return
	}
	r.runPlain(reader, writer)
}

// isTerminalReader/isTerminalWriter gate readline and color on an actual
// TTY (spec's `server`/piped-input note in SPEC_FULL.md §3's go-isatty row).
func isTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// runReadline drives the loop with github.com/chzyer/readline: command
// history and cursor editing, continuation-aware prompt re-indentation.
func (r *Repl) runReadline(writer io.Writer) {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	var buf []string
	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprint(writer, "Good Bye!\n")
			return
		}
		rl.SaveHistory(line)

		done, quit := r.feedLine(writer, line, &buf)
		if quit {
			fmt.Fprint(writer, "Good Bye!\n")
			return
		}
		if done {
			rl.SetPrompt(r.Prompt)
		} else {
			rl.SetPrompt(r.continuationPrompt(buf))
		}
	}
}

// runPlain drives the loop over a bufio.Scanner for non-TTY readers
// (piped input, TCP server connections, and tests): no history, no
// cursor editing, but identical command/continuation semantics.
func (r *Repl) runPlain(reader io.Reader, writer io.Writer) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var buf []string
	fmt.Fprint(writer, r.Prompt)
	for scanner.Scan() {
		line := scanner.Text()
		done, quit := r.feedLine(writer, line, &buf)
		if quit {
			fmt.Fprint(writer, "Good Bye!\n")
			return
		}
		if done {
			fmt.Fprint(writer, r.Prompt)
		} else {
			fmt.Fprint(writer, r.continuationPrompt(buf))
		}
	}
	fmt.Fprint(writer, "Good Bye!\n")
}

// feedLine accumulates one raw input line into buf, handling commands and
// continuation. It returns done=true once a complete entry has been
// evaluated (buf is reset) and quit=true if the session should end.
func (r *Repl) feedLine(writer io.Writer, rawLine string, buf *[]string) (done bool, quit bool) {
	line := strings.TrimRight(rawLine, "\r")

	if len(*buf) == 0 {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return true, false
		}
		if strings.HasPrefix(trimmed, ":") {
			return true, r.runCommand(writer, trimmed)
		}
	}

	if strings.HasSuffix(line, continuationMarker) {
		*buf = append(*buf, strings.TrimSuffix(line, continuationMarker))
		return false, false
	}

	*buf = append(*buf, line)
	entry := strings.Join(*buf, "\n")
	*buf = nil
	r.evalEntry(writer, entry)
	return true, false
}

// continuationPrompt computes the indentation of the next continuation
// line from the unmatched '(' depth accumulated in buf so far, plus one
// extra level if the last non-whitespace character just entered was '.'
// (spec §6's continuation-indentation rule, settled against
// original_source's repl.cpp behavior).
func (r *Repl) continuationPrompt(buf []string) string {
	depth := 0
	lastNonSpace := byte(0)
	for _, l := range buf {
		depth += parenDepth(l)
		for i := len(l) - 1; i >= 0; i-- {
			if l[i] != ' ' && l[i] != '\t' {
				lastNonSpace = l[i]
				break
			}
		}
	}
	if depth < 0 {
		depth = 0
	}
	indentLevels := depth
	if lastNonSpace == '.' {
		indentLevels++
	}
	return strings.Repeat("  ", indentLevels) + "... "
}

// parenDepth counts '(' minus ')' in s, ignoring parens inside string
// literals so a quoted ")" in source text never perturbs the continuation
// indentation.
func parenDepth(s string) int {
	depth := 0
	inString := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inString = !inString
		case '(':
			if !inString {
				depth++
			}
		case ')':
			if !inString {
				depth--
			}
		}
	}
	return depth
}

// runCommand dispatches a `:`-prefixed REPL command (spec §6's table).
// It returns true if the session should terminate.
func (r *Repl) runCommand(writer io.Writer, cmd string) bool {
	fields := strings.Fields(cmd)
	name := fields[0]
	switch name {
	case ":q", ":quit", ":exit":
		return true
	case ":c", ":clear", ":cls":
		fmt.Fprint(writer, "\033[H\033[2J")
	case ":h", ":help", ":?":
		r.printHelp(writer)
	case ":l", ":load":
		if len(fields) < 2 {
			redColor.Fprintf(writer, "usage: :l <path>\n")
			return false
		}
		r.loadFile(writer, fields[1])
	case ":r", ":reset":
		r.env = r.evaluator.NewRootEnv()
		r.colorFprintf(writer, cyanColor, "environment reset\n")
	case ":d", ":debug":
		r.debugOn = !r.debugOn
		r.evaluator.Logger.DebugOn = r.debugOn
		r.colorFprintf(writer, cyanColor, "debug: %v\n", r.debugOn)
	case ":e", ":env":
		r.printEnv(writer)
	case ":force":
		r.forceOnDump = !r.forceOnDump
		r.colorFprintf(writer, cyanColor, "force-on-dump: %v\n", r.forceOnDump)
	default:
		redColor.Fprintf(writer, "unrecognized command '%s' (try ':h')\n", name)
	}
	return false
}

func (r *Repl) printHelp(writer io.Writer) {
	lines := []string{
		":q :quit :exit   terminate",
		":c :clear :cls   clear the screen",
		":h :help :?      show this help",
		":l :load <path>  lex+parse+evaluate file, merge resulting bindings",
		":r :reset        drop the live environment",
		":d :debug        toggle debug dumps",
		":e :env          tabulate current env",
		":force           toggle force-on-dump",
	}
	for _, l := range lines {
		r.colorFprintf(writer, cyanColor, "%s\n", l)
	}
}

// loadFile runs path's program directly against r.env, so its top-level
// Defs land straight in the live environment (spec §6: "merge resulting
// environment's bindings into the live environment" — since Interpret
// never replaces a non-nil env, handing it r.env already achieves that,
// with no separate copy-then-merge step needed).
func (r *Repl) loadFile(writer io.Writer, path string) {
	dir := r.EntryDir
	if dir == "" {
		dir = "."
	}
	if !strings.HasPrefix(path, "/") {
		path = dir + "/" + path
	}
	par, err := parser.NewParserFromFile(path, r.resolver)
	if err != nil {
		redColor.Fprintf(writer, "[IO ERROR] %v\n", err)
		return
	}
	prog, err := par.Parse()
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		return
	}
	_, last, _, err := r.evaluator.Interpret(prog, r.env, eval.InterpretOptions{OwnExpr: false})
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	r.colorFprintf(writer, yellowColor, "%s\n", last.String())
}

// printEnv tabulates the live environment as an aligned two-column table
// (spec §6's `:e`/`:env`), grounded on the teacher's color-by-category
// convention: names cyan, values yellow, unevaluated thunks dimmed red.
func (r *Repl) printEnv(writer io.Writer) {
	var forcer value.Evaluator
	if r.forceOnDump {
		forcer = r.evaluator
	}
	entries := r.env.ToVector(forcer)

	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	for _, e := range entries {
		padded := e.Name + strings.Repeat(" ", width-len(e.Name))
		r.colorFprintf(writer, cyanColor, "%s", padded)
		fmt.Fprint(writer, "  ")
		if e.Value == "<thunk: unevaluated>" {
			r.colorFprintf(writer, redColor, "%s\n", e.Value)
		} else {
			r.colorFprintf(writer, yellowColor, "%s\n", e.Value)
		}
	}
}

// evalEntry parses and evaluates one complete REPL entry (after
// continuation joining), displaying the result or error the way the
// teacher's executeWithRecovery does. Lex, parse and runtime errors
// (including every *logx.InterpError) come back as return values and are
// printed; any panic is also recovered and printed (spec §7's REPL-mode
// propagation policy: the error is caught here, the environment survives).
func (r *Repl) evalEntry(writer io.Writer, entry string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par, err := parser.NewParser(entry, "<repl>", r.resolver)
	if err != nil {
		redColor.Fprintf(writer, "[LEX ERROR] %v\n", err)
		return
	}
	prog, err := par.Parse()
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		return
	}

	if r.debugOn {
		lex := lexer.NewLexer(entry, "<repl>")
		if toks, lexErr := lex.ConsumeTokens(); lexErr == nil {
			for _, tok := range toks {
				r.evaluator.Logger.Debug("token: ", tok.String())
			}
		}
		r.evaluator.Logger.Debug("AST: ", prog.String())
	}

	_, last, _, err := r.evaluator.Interpret(prog, r.env, eval.InterpretOptions{OwnExpr: true})
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	r.colorFprintf(writer, yellowColor, "%s\n", last.String())
}
