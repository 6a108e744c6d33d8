/*
File    : go-mix-core/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func consumeLiterals(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer(src, "<test>")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	return toks
}

func TestNextToken_Symbols(t *testing.T) {
	toks := consumeLiterals(t, `: = -> \ . ( )`)
	want := []TokenType{COLON, EQUAL, ARROW, BACKSLASH, DOT, LPAREN, RPAREN, EOF}
	assert.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type)
	}
}

func TestNextToken_IdentAndFloat(t *testing.T) {
	toks := consumeLiterals(t, `sq -5 12.5`)
	assert.Equal(t, IDENT, toks[0].Type)
	assert.Equal(t, "sq", toks[0].Literal)
	assert.Equal(t, FLOAT, toks[1].Type)
	assert.Equal(t, "-5", toks[1].Literal)
	assert.Equal(t, FLOAT, toks[2].Type)
	assert.Equal(t, "12.5", toks[2].Literal)
}

func TestNextToken_StringRawNoEscapeProcessing(t *testing.T) {
	toks := consumeLiterals(t, `"hello\nworld"`)
	assert.Equal(t, STR, toks[0].Type)
	assert.Equal(t, `hello\nworld`, toks[0].Literal)
}

func TestNextToken_CommentToEndOfLine(t *testing.T) {
	toks := consumeLiterals(t, "1 -- a comment\n2")
	assert.Equal(t, FLOAT, toks[0].Type)
	assert.Equal(t, "1", toks[0].Literal)
	assert.Equal(t, FLOAT, toks[1].Type)
	assert.Equal(t, "2", toks[1].Literal)
}

func TestNextToken_UnbalancedQuoteIsError(t *testing.T) {
	lex := NewLexer(`"abc`, "<test>")
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
}

func TestNextToken_StrayMinusIsError(t *testing.T) {
	lex := NewLexer(`- a`, "<test>")
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
}

func TestNextToken_LineColumnTracking(t *testing.T) {
	lex := NewLexer("a\nb", "<test>")
	first, err := lex.NextToken()
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Loc.Row)
	second, err := lex.NextToken()
	assert.NoError(t, err)
	assert.Equal(t, 2, second.Loc.Row)
	assert.Equal(t, 1, second.Loc.Col)
}
