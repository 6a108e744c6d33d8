/*
File    : go-mix-core/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for the language's
// small grammar: top-level definitions and expressions built from
// identifiers, string/float literals, single-parameter lambdas, and
// prefix-style n-ary application, plus a `use "path"` file-inclusion
// directive (spec §4.2, §6).
package parser

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-mix-core/lexer"
)

// Parser holds two-token lookahead over a Lexer's token stream, grounded
// on the teacher's CurrToken/NextToken shape, re-targeted at this
// grammar's top-level loop. Parse stops at the first lex or syntax error
// and returns it rather than panicking, so file-mode and REPL-mode callers
// can decide how to report it; Errors only holds messages added through
// addError.
type Parser struct {
	Lex       lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token
	Errors    []string

	resolver *Resolver
	baseDir  string
}

// NewParser builds a Parser over src. file is the logical source name
// recorded in Locs; resolver is shared across an entire top-level parse
// (including everything reached through `use`). Relative-path `use`
// targets are resolved against the directory of file.
func NewParser(src string, file string, resolver *Resolver) (*Parser, error) {
	lex := lexer.NewLexer(src, file)
	par := &Parser{
		Lex:      lex,
		Errors:   make([]string, 0),
		resolver: resolver,
		baseDir:  filepath.Dir(file),
	}
	if err := par.advance(); err != nil {
		return nil, err
	}
	if err := par.advance(); err != nil {
		return nil, err
	}
	return par, nil
}

// NewParserFromFile builds a Parser that reads its source from path,
// sharing resolver with the rest of the current top-level parse.
func NewParserFromFile(path string, resolver *Resolver) (*Parser, error) {
	lex, err := lexer.NewLexerFromFile(path)
	if err != nil {
		return nil, err
	}
	par := &Parser{
		Lex:      *lex,
		Errors:   make([]string, 0),
		resolver: resolver,
		baseDir:  filepath.Dir(path),
	}
	if err := par.advance(); err != nil {
		return nil, err
	}
	if err := par.advance(); err != nil {
		return nil, err
	}
	return par, nil
}

// advance shifts NextToken into CurrToken and lexes a new NextToken.
func (par *Parser) advance() error {
	par.CurrToken = par.NextToken
	tok, err := par.Lex.NextToken()
	if err != nil {
		return err
	}
	par.NextToken = tok
	return nil
}

// expectAdvance checks CurrToken.Type == typ, advances past it, or returns
// a syntax error naming both the expected and actual token.
func (par *Parser) expectAdvance(typ lexer.TokenType) error {
	if par.CurrToken.Type != typ {
		return fmt.Errorf("%s: syntax error: expected %s, got %s", par.CurrToken.Loc, typ, par.CurrToken.Type)
	}
	return par.advance()
}

// addError appends a formatted message to par.Errors without aborting the
// parse, so multiple diagnostics can surface from a single pass.
func (par *Parser) addError(format string, args ...any) {
	par.Errors = append(par.Errors, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any parse errors have been collected.
func (par *Parser) HasErrors() bool { return len(par.Errors) > 0 }

// Parse runs the top-level loop (spec §4.2): while not at Eof, dispatch on
// CurrToken to `use`, a definition, or a bare expression, returning the
// resulting Program. A `use` splices the included file's nodes in place.
func (par *Parser) Parse() (*Program, error) {
	prog := &Program{Nodes: make([]Node, 0)}
	if par.resolver == nil {
		par.resolver = NewResolver()
	}
	for par.CurrToken.Type != lexer.EOF {
		if par.CurrToken.Type == lexer.IDENT && par.CurrToken.Literal == "use" && par.NextToken.Type == lexer.STR {
			included, err := par.parseUse()
			if err != nil {
				return nil, err
			}
			prog.Nodes = append(prog.Nodes, included...)
			continue
		}
		switch par.CurrToken.Type {
		case lexer.IDENT:
			def, err := par.parseDef()
			if err != nil {
				return nil, err
			}
			prog.Nodes = append(prog.Nodes, Node{Def: def})
		case lexer.STR, lexer.FLOAT, lexer.BACKSLASH, lexer.LPAREN:
			expr, err := par.parseExpr()
			if err != nil {
				return nil, err
			}
			prog.Nodes = append(prog.Nodes, Node{Expr: expr})
		default:
			return nil, fmt.Errorf("%s: syntax error: unexpected token %s", par.CurrToken.Loc, par.CurrToken.Type)
		}
	}
	return prog, nil
}

// parseUse consumes `use "path"`, resolves the path relative to the
// including file's directory, and (unless already loaded) recursively
// lexes and parses it through the same Resolver, returning its top-level
// nodes for splicing. Already-loaded paths are a silent no-op, giving
// idempotence and cycle safety (spec §4.2, §8).
func (par *Parser) parseUse() ([]Node, error) {
	if err := par.advance(); err != nil { // consume 'use'
		return nil, err
	}
	pathTok := par.CurrToken
	path := unescape(pathTok.Literal)
	if err := par.advance(); err != nil { // consume the string literal
		return nil, err
	}

	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(par.baseDir, resolved)
	}
	if !par.resolver.MarkLoaded(resolved) {
		return nil, nil
	}

	sub, err := NewParserFromFile(resolved, par.resolver)
	if err != nil {
		return nil, err
	}
	subProg, err := sub.Parse()
	if err != nil {
		return nil, err
	}
	if sub.HasErrors() {
		return nil, fmt.Errorf("%s", strings.Join(sub.Errors, "\n"))
	}
	return subProg.Nodes, nil
}

// parseDef parses `name ':' type '=' expression`.
func (par *Parser) parseDef() (*Def, error) {
	loc := par.CurrToken.Loc
	name := par.CurrToken.Literal
	if err := par.advance(); err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.COLON); err != nil {
		return nil, err
	}
	typ, err := par.parseType()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.EQUAL); err != nil {
		return nil, err
	}
	body, err := par.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Def{Name: name, DeclaredType: typ, Body: body, Loc_: loc}, nil
}

// parseType parses `primitive ('->' primitive)*`, folding right-
// associatively via foldTypeList.
func (par *Parser) parseType() (Type, error) {
	prims := make([]Primitive, 0, 1)
	first, err := par.parsePrimitive()
	if err != nil {
		return nil, err
	}
	prims = append(prims, first)
	for par.CurrToken.Type == lexer.ARROW {
		if err := par.advance(); err != nil {
			return nil, err
		}
		next, err := par.parsePrimitive()
		if err != nil {
			return nil, err
		}
		prims = append(prims, next)
	}
	return foldTypeList(prims), nil
}

func (par *Parser) parsePrimitive() (Primitive, error) {
	if par.CurrToken.Type != lexer.IDENT {
		return Primitive{}, fmt.Errorf("%s: syntax error: expected %s, got %s", par.CurrToken.Loc, lexer.IDENT, par.CurrToken.Type)
	}
	name := par.CurrToken.Literal
	if err := par.advance(); err != nil {
		return Primitive{}, err
	}
	return primitiveFromIdent(name), nil
}

// parseExpr dispatches on CurrToken to build one of the five expression
// kinds (spec §4.2).
func (par *Parser) parseExpr() (Expr, error) {
	tok := par.CurrToken
	switch tok.Type {
	case lexer.IDENT:
		if err := par.advance(); err != nil {
			return nil, err
		}
		return Ident{Name: tok.Literal, Loc_: tok.Loc}, nil
	case lexer.STR:
		if err := par.advance(); err != nil {
			return nil, err
		}
		return StrLit{Value: unescape(tok.Literal), Loc_: tok.Loc}, nil
	case lexer.FLOAT:
		if err := par.advance(); err != nil {
			return nil, err
		}
		val, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: syntax error: malformed float %q", tok.Loc, tok.Literal)
		}
		return FloatLit{Value: val, Loc_: tok.Loc}, nil
	case lexer.BACKSLASH:
		return par.parseLambda()
	case lexer.LPAREN:
		return par.parseApply()
	default:
		return nil, fmt.Errorf("%s: syntax error: unexpected token %s", tok.Loc, tok.Type)
	}
}

// parseLambda parses `'\' ident ':' type '.' expression`.
func (par *Parser) parseLambda() (Expr, error) {
	loc := par.CurrToken.Loc
	if err := par.expectAdvance(lexer.BACKSLASH); err != nil {
		return nil, err
	}
	if par.CurrToken.Type != lexer.IDENT {
		return nil, fmt.Errorf("%s: syntax error: expected %s, got %s", par.CurrToken.Loc, lexer.IDENT, par.CurrToken.Type)
	}
	param := par.CurrToken.Literal
	if err := par.advance(); err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.COLON); err != nil {
		return nil, err
	}
	paramType, err := par.parseType()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.DOT); err != nil {
		return nil, err
	}
	body, err := par.parseExpr()
	if err != nil {
		return nil, err
	}
	return Lambda{Param: param, ParamType: paramType, Body: body, Loc_: loc}, nil
}

// parseApply parses `'(' ident expression* ')'`.
func (par *Parser) parseApply() (Expr, error) {
	loc := par.CurrToken.Loc
	if err := par.expectAdvance(lexer.LPAREN); err != nil {
		return nil, err
	}
	if par.CurrToken.Type != lexer.IDENT {
		return nil, fmt.Errorf("%s: syntax error: expected %s, got %s", par.CurrToken.Loc, lexer.IDENT, par.CurrToken.Type)
	}
	calleeTok := par.CurrToken
	if err := par.advance(); err != nil {
		return nil, err
	}
	args := make([]Expr, 0)
	for par.CurrToken.Type != lexer.RPAREN {
		if par.CurrToken.Type == lexer.EOF {
			return nil, fmt.Errorf("%s: syntax error: expected %s, got %s", par.CurrToken.Loc, lexer.RPAREN, lexer.EOF)
		}
		arg, err := par.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if err := par.expectAdvance(lexer.RPAREN); err != nil {
		return nil, err
	}
	return Apply{
		Callee: Ident{Name: calleeTok.Literal, Loc_: calleeTok.Loc},
		Args:   args,
		Loc_:   loc,
	}, nil
}

// unescape resolves the backslash escapes recognized when producing a
// string AST value: \n \t \r \\ \"; any other \x yields x (spec §4.2,
// grounded on original_source's unescape_string).
func unescape(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				b.WriteByte(raw[i+1])
			}
			i++
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}
