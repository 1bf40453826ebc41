package parse

import (
	"strings"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/lex"
)

// parseSelectorList parses a comma-separated selector group up to (but not
// including) the '{' that opens the ruleset body.
func (p *Parser) parseSelectorList() *ast.SelectorList {
	sl := ast.NewSelectorList()
	for {
		begin := p.cur().Begin
		sel := p.parseSelector()
		setLoc(sel, p.loc, begin, p.toks[p.pos-1].End)
		sl.Selectors.Add(sel)
		if p.at(lex.Comma) {
			p.advance()
			continue
		}
		break
	}
	return sl
}

// parseSelector parses one compound selector followed by its combinator
// chain (spec.md §3 Selector: "name, refiners, combinator").
func (p *Parser) parseSelector() *ast.Selector {
	name := ""
	switch {
	case p.at(lex.Star):
		p.advance()
		name = "*"
	case p.at(lex.Ampersand):
		p.advance()
		name = "&"
	case p.at(lex.Ident), p.at(lex.Property):
		name = p.advance().Text
	}
	sel := ast.NewSelector(name)
	p.parseRefiners(sel)

	switch {
	case p.at(lex.Greater):
		p.advance()
		child := p.parseSelector()
		sel.SetCombinator(ast.NewCombinator(ast.Child, child))
	case p.at(lex.Plus):
		p.advance()
		child := p.parseSelector()
		sel.SetCombinator(ast.NewCombinator(ast.AdjacentSibling, child))
	case p.at(lex.Tilde):
		p.advance()
		child := p.parseSelector()
		sel.SetCombinator(ast.NewCombinator(ast.GeneralSibling, child))
	case p.at(lex.Ident), p.at(lex.Property), p.at(lex.Dot), p.at(lex.Hash), p.at(lex.Colon), p.at(lex.LBracket), p.at(lex.Star), p.at(lex.Ampersand):
		child := p.parseSelector()
		sel.SetCombinator(ast.NewCombinator(ast.Descendant, child))
	}
	return sel
}

func (p *Parser) parseRefiners(sel *ast.Selector) {
	for {
		// The lexer drops whitespace, so a gap between tokens is the only
		// trace of a descendant combinator: stop the compound selector there.
		if t := p.cur(); (sel.Name != "" || sel.Refiners.Items.Len() > 0) && p.pos > 0 && p.toks[p.pos-1].End < t.Begin {
			return
		}
		switch {
		case p.at(lex.Dot):
			p.advance()
			var name lex.Token
			if p.at(lex.Property) {
				name = p.advance()
			} else {
				name, _ = p.expect(lex.Ident, "class name")
			}
			sel.Refiners.Items.Add(&ast.ClassRefiner{Name: name.Text})
		case p.at(lex.Hash):
			h := p.advance()
			sel.Refiners.Items.Add(&ast.IDRefiner{Name: strings.TrimPrefix(h.Text, "#")})
		case p.at(lex.Colon):
			p.advance()
			p.parsePseudoClass(sel)
		case p.at(lex.DoubleColon):
			p.advance()
			name, _ := p.expect(lex.Ident, "pseudo-element name")
			sel.Refiners.Items.Add(&ast.PseudoElementRefiner{Name: name.Text})
		case p.at(lex.LBracket):
			p.advance()
			p.parseAttribute(sel)
		default:
			return
		}
	}
}

func (p *Parser) parsePseudoClass(sel *ast.Selector) {
	// A name directly before '(' lexes as Function, before ':' as Property.
	var name lex.Token
	if p.at(lex.Function) || p.at(lex.Property) {
		name = p.advance()
	} else {
		name, _ = p.expect(lex.Ident, "pseudo-class name")
	}
	if name.Text == "not" && p.at(lex.LParen) {
		p.advance()
		inner := p.parseSelectorList()
		p.expect(lex.RParen, "')'")
		sel.Refiners.Items.Add(&ast.PseudoClassRefiner{Name: "not", NotSelector: inner})
		return
	}
	if p.at(lex.LParen) {
		p.advance()
		raw := p.readRawUntil(lex.RParen)
		p.expect(lex.RParen, "')'")
		sel.Refiners.Items.Add(&ast.PseudoClassRefiner{Name: name.Text, RawArgs: raw})
		return
	}
	sel.Refiners.Items.Add(&ast.PseudoClassRefiner{Name: name.Text})
}

func (p *Parser) parseAttribute(sel *ast.Selector) {
	name, _ := p.expect(lex.Ident, "attribute name")
	r := &ast.AttributeRefiner{Name: name.Text}
	if !p.at(lex.RBracket) {
		op := p.advance().Text
		r.Operator = op
		switch {
		case p.at(lex.String):
			r.Value = unquote(p.advance())
		case p.at(lex.Ident):
			r.Value = p.advance().Text
		}
		if p.at(lex.Ident) && (p.cur().Text == "i" || p.cur().Text == "I") {
			r.CaseInsensitive = true
			p.advance()
		}
	}
	p.expect(lex.RBracket, "']'")
	sel.Refiners.Items.Add(r)
}
