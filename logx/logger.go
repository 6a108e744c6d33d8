/*
File    : go-mix-core/logx/logger.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package logx

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/akashmaji946/go-mix-core/lexer"
)

// Color definitions, grounded on repl/repl.go's blueColor/yellowColor/
// redColor/greenColor/cyanColor convention: one color per category of
// output across the whole interpreter, not just the REPL.
var (
	errorColor = color.New(color.FgRed)
	infoColor  = color.New(color.FgCyan)
	debugColor = color.New(color.FgBlue)
)

// Logger is the diagnostics sink consumed by the evaluator (spec §6):
// Error builds an *InterpError instead of terminating the process
// directly — the caller (file-mode main, or the REPL loop) decides
// whether that becomes os.Exit or a recovered prompt (spec §7).
type Logger struct {
	Writer      io.Writer
	ColorOutput bool
	DebugOn     bool
}

// NewLogger builds a Logger writing to w. colorOutput disables ANSI color
// codes when the destination is not a terminal (the repl package decides
// this via mattn/go-isatty before constructing a Logger).
func NewLogger(w io.Writer, colorOutput bool) *Logger {
	return &Logger{Writer: w, ColorOutput: colorOutput}
}

// Error builds and returns an *InterpError; it does not itself terminate
// anything — that decision belongs to the driver (spec §7's propagation
// policy split between file-mode and REPL-mode).
func (l *Logger) Error(kind ErrorKind, loc lexer.Loc, parts ...any) *InterpError {
	return NewError(kind, loc, parts...)
}

// PrintError renders an error to the Logger's writer in red (when
// ColorOutput is set).
func (l *Logger) PrintError(err error) {
	if l.ColorOutput {
		errorColor.Fprintf(l.Writer, "%s\n", err.Error())
		return
	}
	fmt.Fprintf(l.Writer, "%s\n", err.Error())
}

// Info prints an informational line in cyan (when ColorOutput is set).
func (l *Logger) Info(parts ...any) {
	msg := fmt.Sprint(parts...)
	if l.ColorOutput {
		infoColor.Fprintf(l.Writer, "%s\n", msg)
		return
	}
	fmt.Fprintf(l.Writer, "%s\n", msg)
}

// Debug prints a debug line in blue, gated by DebugOn — the fix for the
// spec's flagged bug (§9 "Debug print on every application"): callers
// must check DebugOn (or simply always call Debug, since Debug itself
// checks it) rather than unconditionally writing to stdout from the
// application engine.
func (l *Logger) Debug(parts ...any) {
	if !l.DebugOn {
		return
	}
	msg := fmt.Sprint(parts...)
	if l.ColorOutput {
		debugColor.Fprintf(l.Writer, "debug: %s\n", msg)
		return
	}
	fmt.Fprintf(l.Writer, "debug: %s\n", msg)
}
