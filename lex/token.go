// Package lex tokenizes GSS source text. It is grounded on the teacher's
// parser/lexer.go: a hand-rolled rune-at-a-time scanner producing a flat
// token slice, generalized from LESS's token set to GSS's (reference
// identifiers, namespace-qualified names, `@for`/`@if` keywords, and the
// `!default`/`!important` priority markers).
package lex

import "github.com/gssc/gss/source"

// Kind names one lexical token category.
type Kind int

const (
	EOF Kind = iota
	Error

	Ident     // bare identifier / keyword / element name
	Reference // [A-Z_][A-Z0-9_]* @def-bound name, written bare in value position
	Property  // identifier immediately followed by ':' in declaration position
	String
	Number
	Hash // #rgb / #rrggbb / #rrggbbaa or an id-selector hash, disambiguated by the parser
	AtKeyword
	Function // identifier immediately followed by '('
	URL

	Plus
	Minus
	Star
	Slash
	Percent
	Equals
	Bang // '!' for !important / !default

	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	KwAnd
	KwOr
	KwNot

	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Colon
	DoubleColon
	Semicolon
	Comma
	Dot
	Tilde
	Greater
	Ampersand
	DoublePipe // || namespace separator (spec.md's namespacing syntax)

	CommentLine
	CommentBlock
)

// Token is one lexical token with its half-open source span.
type Token struct {
	Kind  Kind
	Text  string
	Quote byte // '\'' or '"' for String tokens
	Begin int
	End   int
}

// Location resolves the token's span using b, which must be bound to the
// same file the token's offsets were recorded against.
func (t Token) Location(b *source.Builder) source.Location {
	return b.Span(t.Begin, t.End)
}
