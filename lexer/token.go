/*
File    : go-mix-core/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenType represents the type of a lexical token in the language.
// It is defined as a string to allow for easy comparison and debugging.
type TokenType string

// TokenType constants. The language has a deliberately small grammar
// (identifiers, two literal kinds, and seven structural symbols), so unlike
// a general-purpose scripting language there is no keyword table: `use` is
// recognized positionally by the parser, not lexed specially.
const (
	IDENT     TokenType = "IDENT"     // identifier: [A-Za-z_][A-Za-z0-9_]*
	STR       TokenType = "STR"       // string literal, raw (unescaped) content
	FLOAT     TokenType = "FLOAT"     // floating point literal, possibly negative
	COLON     TokenType = "COLON"     // ':'
	EQUAL     TokenType = "EQUAL"     // '='
	ARROW     TokenType = "ARROW"     // '->'
	BACKSLASH TokenType = "BACKSLASH" // '\'
	DOT       TokenType = "DOT"       // '.'
	LPAREN    TokenType = "LPAREN"    // '('
	RPAREN    TokenType = "RPAREN"    // ')'
	EOF       TokenType = "EOF"       // end of input
)

// Token is a single lexical token: its type, the literal text it was
// scanned from, and the source location of its first character.
type Token struct {
	Type    TokenType
	Literal string
	Loc     Loc
}

// NewToken builds a Token at the given location. literal is the raw matched
// text (for STR tokens this is the content between the quotes, unescaped
// only later by the parser per spec §4.2).
func NewToken(typ TokenType, literal string, loc Loc) Token {
	return Token{Type: typ, Literal: literal, Loc: loc}
}

// String renders a token for debug dumps, e.g. "FLOAT(3.14) at <repl>:1:1".
func (t Token) String() string {
	return fmt.Sprintf("%s(%s) at %s", t.Type, t.Literal, t.Loc)
}
