// Package parse implements GSS's recursive-descent parser: a single
// Parser walks the lex.Token stream and builds an *ast.Root directly,
// grounded on the teacher's parser/parser.go (token-index cursor,
// peek/advance/expect helpers, comment reattachment by position) but
// simplified from the teacher's two-pass comment-by-line-number scheme:
// cur() collects comment tokens as it skips past them, and every
// statement/declarative loop attaches whatever accumulated since the last
// node to the node it's about to parse.
package parse

import (
	"strings"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/diag"
	"github.com/gssc/gss/lex"
	"github.com/gssc/gss/source"
)

// Parser consumes a token stream for one source file and produces its
// *ast.Root. Parse errors are reported to Diags and recovered from by
// skipping to the next statement boundary (';' or the enclosing '}'),
// rather than aborting the whole parse — spec.md §4.2's "a malformed
// statement is diagnosed and skipped, parsing continues with its
// siblings."
type Parser struct {
	toks    []lex.Token
	pos     int
	file    *source.File
	loc     *source.Builder
	Diags   *diag.Manager
	pending []*ast.Comment
}

// New creates a parser for file's contents, reporting diagnostics to diags.
func New(file *source.File, diags *diag.Manager) *Parser {
	toks := lex.New(file.Contents).Tokenize()
	return &Parser{toks: toks, file: file, loc: source.NewBuilder(file, source.DefaultTabWidth), Diags: diags}
}

func (p *Parser) cur() lex.Token {
	for p.pos < len(p.toks) && (p.toks[p.pos].Kind == lex.CommentLine || p.toks[p.pos].Kind == lex.CommentBlock) {
		p.pending = append(p.pending, commentNode(p.toks[p.pos]))
		p.pos++
	}
	if p.pos >= len(p.toks) {
		return lex.Token{Kind: lex.EOF}
	}
	return p.toks[p.pos]
}

// commentNode strips a comment token's delimiters into an ast.Comment.
func commentNode(t lex.Token) *ast.Comment {
	if t.Kind == lex.CommentBlock {
		text := strings.TrimSuffix(strings.TrimPrefix(t.Text, "/*"), "*/")
		return ast.NewComment(strings.TrimSpace(text), true)
	}
	text := strings.TrimPrefix(t.Text, "//")
	return ast.NewComment(strings.TrimSpace(text), false)
}

// takeComments returns and clears every comment token skipped since the
// last call, for attaching to whichever node is about to be parsed
// (invariant 8: comments are attached to the node they lead).
func (p *Parser) takeComments() []*ast.Comment {
	if len(p.pending) == 0 {
		return nil
	}
	c := p.pending
	p.pending = nil
	return c
}

func (p *Parser) at(k lex.Kind) bool { return p.cur().Kind == k }

func (p *Parser) advance() lex.Token {
	t := p.cur()
	p.pos++
	return t
}

func (p *Parser) expect(k lex.Kind, what string) (lex.Token, bool) {
	if !p.at(k) {
		p.errorf("expected %s, found %q", what, p.cur().Text)
		return lex.Token{}, false
	}
	return p.advance(), true
}

func (p *Parser) errorf(format string, args ...any) {
	loc := p.cur().Location(p.loc)
	p.Diags.ReportError(loc, format, args...)
}

// syncToStatement skips tokens until a statement boundary, for error
// recovery.
func (p *Parser) syncToStatement() {
	depth := 0
	for {
		t := p.cur()
		switch t.Kind {
		case lex.EOF:
			return
		case lex.LBrace:
			depth++
			p.advance()
		case lex.RBrace:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
		case lex.Semicolon:
			p.advance()
			if depth == 0 {
				return
			}
		default:
			p.advance()
		}
	}
}

func setLoc(n ast.Node, b *source.Builder, begin, end int) {
	n.SetLocation(b.Span(begin, end))
}

// Parse parses the whole token stream into an *ast.Root.
func (p *Parser) Parse() *ast.Root {
	root := ast.NewRoot(p.file.Name)
	p.parseImports(root)
	for !p.at(lex.EOF) {
		begin := p.cur().Begin
		comments := p.takeComments()
		stmt := p.parseStatement()
		if stmt == nil {
			// Recovery stops before a '}'; at the top level there is no
			// enclosing block to consume it, so skip it here.
			if p.at(lex.RBrace) {
				p.advance()
			}
			continue
		}
		setLoc(stmt, p.loc, begin, p.toks[p.pos-1].End)
		stmt.SetComments(comments)
		root.Statements.Add(stmt)
	}
	return root
}

// parseImports consumes a leading run of `@import` rules, per spec.md's
// import pipeline running before the rest of the tree is built.
func (p *Parser) parseImports(root *ast.Root) {
	for p.at(lex.AtKeyword) && p.cur().Text == "@import" {
		begin := p.cur().Begin
		p.advance()
		imp := p.parseImportRule()
		if imp != nil {
			setLoc(imp, p.loc, begin, p.toks[p.pos-1].End)
			root.Imports.Imports.Add(imp)
		}
	}
}

func (p *Parser) parseImportRule() *ast.ImportRule {
	reference := false
	if p.at(lex.LParen) {
		p.advance()
		if p.at(lex.Ident) && p.cur().Text == "reference" {
			reference = true
			p.advance()
		}
		p.expect(lex.RParen, "')'")
	}
	var path string
	isURL := false
	switch {
	case p.at(lex.String):
		path = unquote(p.advance())
	case p.at(lex.Function) && p.cur().Text == "url":
		p.advance()
		p.expect(lex.LParen, "'('")
		if p.at(lex.String) {
			path = unquote(p.advance())
		} else {
			path = p.readRawUntil(lex.RParen)
		}
		p.expect(lex.RParen, "')'")
		isURL = true
	default:
		p.errorf("expected import path, found %q", p.cur().Text)
		p.syncToStatement()
		return nil
	}
	media := p.readRawUntil(lex.Semicolon)
	p.expect(lex.Semicolon, "';'")
	r := ast.NewImportRule(path)
	r.IsURL = isURL
	r.MediaRaw = media
	r.Reference = reference
	return r
}

// readRawUntil collects the literal text of every token up to (but not
// including) a token of kind stop, for the at-rule forms (e.g. @media's
// query list) this parser doesn't fully grammar-ize.
func (p *Parser) readRawUntil(stop lex.Kind) string {
	var out []byte
	for !p.at(stop) && !p.at(lex.EOF) && !p.at(lex.LBrace) {
		t := p.advance()
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, t.Text...)
	}
	return string(out)
}

func unquote(t lex.Token) string {
	if len(t.Text) >= 2 {
		return t.Text[1 : len(t.Text)-1]
	}
	return t.Text
}
