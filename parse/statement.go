package parse

import (
	"strings"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/lex"
)

// parseStatement parses one top-level or nested-block statement: a
// ruleset or an at-rule (comments are collected separately by cur() and
// attached to whichever node follows them, so they never reach here as a
// token kind to dispatch on).
func (p *Parser) parseStatement() ast.Statement {
	if p.at(lex.AtKeyword) {
		return p.parseAtConstruct()
	}
	return p.parseRuleset()
}

func (p *Parser) parseRuleset() ast.Statement {
	sel := p.parseSelectorList()
	if !p.at(lex.LBrace) {
		p.errorf("expected '{' after selector, found %q", p.cur().Text)
		p.syncToStatement()
		return nil
	}
	block := p.parseDeclarationBlock()
	return ast.NewRuleset(sel, block)
}

// parseDeclarationBlock parses `{ ... }` containing declarations, nested
// @def/@mixin calls, and comments (invariant 3's Declarative set).
func (p *Parser) parseDeclarationBlock() *ast.DeclarationBlock {
	p.expect(lex.LBrace, "'{'")
	db := ast.NewDeclarationBlock()
	for !p.at(lex.RBrace) && !p.at(lex.EOF) {
		begin := p.cur().Begin
		comments := p.takeComments()
		d := p.parseDeclarative()
		if d == nil {
			continue
		}
		setLoc(d, p.loc, begin, p.toks[p.pos-1].End)
		d.SetComments(comments)
		db.Declarations.Add(d)
	}
	p.expect(lex.RBrace, "'}'")
	return db
}

func (p *Parser) parseDeclarative() ast.Declarative {
	if p.at(lex.AtKeyword) {
		if r := p.parseAtConstruct(); r != nil {
			if d, ok := r.(ast.Declarative); ok {
				return d
			}
			p.errorf("%q is not valid inside a declaration block", p.cur().Text)
			return nil
		}
		return nil
	}
	return p.parseDeclaration()
}

func (p *Parser) parseDeclaration() ast.Declarative {
	starHack := false
	if p.at(lex.Star) {
		starHack = true
		p.advance()
	}
	if !p.at(lex.Property) && !p.at(lex.Ident) {
		p.errorf("expected property name, found %q", p.cur().Text)
		p.syncToStatement()
		return nil
	}
	name := p.advance()
	prop := ast.NewProperty(name.Text)
	p.expect(lex.Colon, "':'")
	values := p.parsePropertyValue()
	decl := ast.NewDeclaration(prop, values)
	decl.StarHack = starHack
	if p.at(lex.Semicolon) {
		p.advance()
	}
	return decl
}

// parseBlock parses `{ ... }` containing nested statements (an @media or
// @for body).
func (p *Parser) parseBlock() *ast.Block {
	p.expect(lex.LBrace, "'{'")
	b := ast.NewBlock()
	for !p.at(lex.RBrace) && !p.at(lex.EOF) {
		begin := p.cur().Begin
		comments := p.takeComments()
		s := p.parseStatement()
		if s == nil {
			continue
		}
		setLoc(s, p.loc, begin, p.toks[p.pos-1].End)
		s.SetComments(comments)
		b.Statements.Add(s)
	}
	p.expect(lex.RBrace, "'}'")
	return b
}

// parseAtConstruct dispatches on an `@`-keyword to the right AtRule kind,
// or to an `@if` conditional chain.
func (p *Parser) parseAtConstruct() ast.Statement {
	kw := strings.ToLower(strings.TrimPrefix(p.cur().Text, "@"))
	switch kw {
	case "if":
		return p.parseConditionalBlock()
	case "def":
		return p.parseDefRule()
	case "defmixin":
		return p.parseDefMixin()
	case "mixin":
		return p.parseMixinCall()
	case "media":
		return p.parseSimpleAtRule(ast.AtMedia, true)
	case "page":
		return p.parsePageRule()
	case "font-face":
		return p.parseDeclBodyAtRule(ast.AtFontFace)
	case "keyframes", "-webkit-keyframes", "-moz-keyframes":
		return p.parseKeyframesRule()
	case "component":
		return p.parseComponentRule(ast.AtComponent)
	case "abstract_component":
		return p.parseComponentRule(ast.AtAbstractComponent)
	case "for":
		return p.parseForRule()
	case "provide":
		return p.parseNamespaceRule(ast.AtProvide)
	case "require":
		return p.parseNamespaceRule(ast.AtRequire)
	default:
		p.advance()
		raw := p.readRawUntil(lex.Semicolon)
		r := ast.NewAtRule(ast.AtUnknown, kw)
		r.RawParams = raw
		if p.at(lex.LBrace) {
			r.SetBody(p.parseBlock())
		} else if p.at(lex.Semicolon) {
			p.advance()
		}
		return r
	}
}

func (p *Parser) parseDefRule() ast.Statement {
	p.advance()
	// The ':' after the name is optional; a name written directly before
	// ':' lexes as a Property token.
	var name lex.Token
	if p.at(lex.Property) {
		name = p.advance()
	} else {
		name, _ = p.expect(lex.Reference, "a reference name (UPPER_CASE)")
	}
	if p.at(lex.Colon) {
		p.advance()
	}
	values := p.parsePropertyValue()
	if p.at(lex.Semicolon) {
		p.advance()
	}
	r := ast.NewAtRule(ast.AtDef, name.Text)
	r.SetDefValue(values)
	return r
}

func (p *Parser) parseDefMixin() ast.Statement {
	p.advance()
	// A name written directly before '(' lexes as a Function token, and a
	// parameter name directly before ':' as a Property token.
	var name lex.Token
	if p.at(lex.Function) {
		name = p.advance()
	} else {
		name, _ = p.expect(lex.Ident, "mixin name")
	}
	r := ast.NewAtRule(ast.AtDefMixin, name.Text)
	if p.at(lex.LParen) {
		p.advance()
		for !p.at(lex.RParen) && !p.at(lex.EOF) {
			var pname lex.Token
			if p.at(lex.Property) {
				pname = p.advance()
			} else {
				pname, _ = p.expect(lex.Ident, "parameter name")
			}
			param := ast.MixinParam{Name: pname.Text}
			if p.at(lex.Colon) {
				p.advance()
				param.Default = p.parseSpaceComposite()
			}
			r.MixinParams = append(r.MixinParams, param)
			if p.at(lex.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(lex.RParen, "')'")
	}
	r.SetBody(p.parseDeclarationBlock())
	return r
}

func (p *Parser) parseMixinCall() ast.Statement {
	p.advance()
	var name lex.Token
	if p.at(lex.Function) {
		name = p.advance()
	} else {
		name, _ = p.expect(lex.Ident, "mixin name")
	}
	r := ast.NewAtRule(ast.AtMixin, name.Text)
	if p.at(lex.LParen) {
		p.advance()
		for !p.at(lex.RParen) && !p.at(lex.EOF) {
			r.MixinArgs.Add(p.parseSpaceComposite())
			if p.at(lex.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(lex.RParen, "')'")
	}
	if p.at(lex.Bang) {
		p.advance()
		p.expect(lex.Ident, "'important'")
		r.Important = true
	}
	if p.at(lex.Semicolon) {
		p.advance()
	}
	return r
}

func (p *Parser) parseSimpleAtRule(kind ast.AtRuleKind, hasBlockBody bool) ast.Statement {
	p.advance()
	raw := p.readRawUntil(lex.LBrace)
	r := ast.NewAtRule(kind, "")
	r.RawParams = strings.TrimSpace(raw)
	if hasBlockBody && p.at(lex.LBrace) {
		r.SetBody(p.parseBlock())
	} else if p.at(lex.Semicolon) {
		p.advance()
	}
	return r
}

func (p *Parser) parsePageRule() ast.Statement {
	p.advance()
	raw := p.readRawUntil(lex.LBrace)
	kind := ast.AtPage
	if strings.TrimSpace(raw) != "" {
		kind = ast.AtPageSelector
	}
	r := ast.NewAtRule(kind, "")
	r.RawParams = strings.TrimSpace(raw)
	r.SetBody(p.parseDeclarationBlock())
	return r
}

func (p *Parser) parseDeclBodyAtRule(kind ast.AtRuleKind) ast.Statement {
	p.advance()
	r := ast.NewAtRule(kind, "")
	r.SetBody(p.parseDeclarationBlock())
	return r
}

func (p *Parser) parseComponentRule(kind ast.AtRuleKind) ast.Statement {
	p.advance()
	name := ""
	if p.at(lex.Ident) {
		name = p.advance().Text
	}
	r := ast.NewAtRule(kind, name)
	r.SetBody(p.parseBlock())
	return r
}

func (p *Parser) parseNamespaceRule(kind ast.AtRuleKind) ast.Statement {
	p.advance()
	name, _ := p.expect(lex.Ident, "namespace name")
	ns := name.Text
	for p.at(lex.Dot) {
		p.advance()
		part, _ := p.expect(lex.Ident, "namespace name")
		ns += "." + part.Text
	}
	r := ast.NewAtRule(kind, "")
	r.Namespace = ns
	if p.at(lex.Semicolon) {
		p.advance()
	}
	return r
}

func (p *Parser) parseForRule() ast.Statement {
	p.advance()
	p.expect(lex.LParen, "'('")
	varName, _ := p.expect(lex.Ident, "loop variable")
	return p.finishForRule(varName.Text)
}

// finishForRule parses `from <expr> to <expr> [by <expr>]) { ... }`.
func (p *Parser) finishForRule(varName string) ast.Statement {
	spec := &ast.ForLoopSpec{Var: varName}
	if p.at(lex.Ident) && p.cur().Text == "from" {
		p.advance()
		spec.From = p.parseAdditive()
	}
	if p.at(lex.Ident) && p.cur().Text == "to" {
		p.advance()
		spec.To = p.parseAdditive()
	}
	if p.at(lex.Ident) && p.cur().Text == "by" {
		p.advance()
		spec.Step = p.parseAdditive()
	}
	p.expect(lex.RParen, "')'")
	spec.Body = p.parseBlock()
	r := ast.NewAtRule(ast.AtFor, "")
	r.For = spec
	return r
}

func (p *Parser) parseKeyframesRule() ast.Statement {
	p.advance()
	name := ""
	if p.at(lex.Ident) {
		name = p.advance().Text
	}
	r := ast.NewAtRule(ast.AtKeyframes, name)
	r.InitKeyframes()
	p.expect(lex.LBrace, "'{'")
	for !p.at(lex.RBrace) && !p.at(lex.EOF) {
		keys := p.parseKeyList()
		block := p.parseDeclarationBlock()
		r.Keyframes.Add(ast.NewKeyframeRuleset(keys, block))
	}
	p.expect(lex.RBrace, "'}'")
	return r
}

func (p *Parser) parseKeyList() *ast.KeyList {
	kl := ast.NewKeyList()
	for {
		switch {
		case p.at(lex.Ident) && p.cur().Text == "from":
			p.advance()
			kl.Keys.Add(ast.NewKey(0, "from"))
		case p.at(lex.Ident) && p.cur().Text == "to":
			p.advance()
			kl.Keys.Add(ast.NewKey(100, "to"))
		case p.at(lex.Number):
			n := p.advance()
			v := parseNumeric(n.Text)
			kl.Keys.Add(ast.NewKey(v.Number, ""))
		}
		if p.at(lex.Comma) {
			p.advance()
			continue
		}
		break
	}
	return kl
}

// parseConditionalBlock parses an `@if`/`@elseif`*/`@else`? chain.
func (p *Parser) parseConditionalBlock() ast.Statement {
	cb := ast.NewConditionalBlock()
	p.advance()
	cond := p.parseBooleanExpr()
	body := p.parseBlock()
	cb.Arms.Add(ast.NewConditionalRule(ast.CondIf, cond, body))
	for p.at(lex.AtKeyword) && strings.EqualFold(strings.TrimPrefix(p.cur().Text, "@"), "elseif") {
		p.advance()
		c := p.parseBooleanExpr()
		b := p.parseBlock()
		cb.Arms.Add(ast.NewConditionalRule(ast.CondElseIf, c, b))
	}
	if p.at(lex.AtKeyword) && strings.EqualFold(strings.TrimPrefix(p.cur().Text, "@"), "else") {
		p.advance()
		b := p.parseBlock()
		cb.Arms.Add(ast.NewConditionalRule(ast.CondElse, nil, b))
	}
	return cb
}

// parseBooleanExpr parses the condition of an `@if`/`@elseif`, with
// `and`/`or`/`not` and parenthesized grouping (spec's BooleanExpression
// grammar). Parentheses around the whole condition are optional: `(A)`
// is read as a parenthesized group.
func (p *Parser) parseBooleanExpr() ast.BooleanExpr {
	return p.parseOrExpr()
}

func (p *Parser) parseOrExpr() ast.BooleanExpr {
	left := p.parseAndExpr()
	ops := []ast.BooleanExpr{left}
	for p.at(lex.KwOr) {
		p.advance()
		ops = append(ops, p.parseAndExpr())
	}
	if len(ops) == 1 {
		return left
	}
	return ast.NewOrCondition(ops...)
}

func (p *Parser) parseAndExpr() ast.BooleanExpr {
	left := p.parseUnaryBoolean()
	ops := []ast.BooleanExpr{left}
	for p.at(lex.KwAnd) {
		p.advance()
		ops = append(ops, p.parseUnaryBoolean())
	}
	if len(ops) == 1 {
		return left
	}
	return ast.NewAndCondition(ops...)
}

func (p *Parser) parseUnaryBoolean() ast.BooleanExpr {
	// `not(` lexes as a Function token named "not".
	if p.at(lex.KwNot) || (p.at(lex.Function) && p.cur().Text == "not") {
		p.advance()
		return ast.NewNotCondition(p.parseUnaryBoolean())
	}
	if p.at(lex.LParen) {
		p.advance()
		inner := p.parseOrExpr()
		p.expect(lex.RParen, "')'")
		return inner
	}
	if p.at(lex.Reference) {
		return ast.NewConstantCondition(p.advance().Text, false)
	}
	name, _ := p.expect(lex.Ident, "condition name")
	return ast.NewConstantCondition(name.Text, false)
}
