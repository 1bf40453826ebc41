package parse

import (
	"strconv"
	"strings"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/lex"
)

// parsePropertyValue parses the value list of a declaration up to ';' or
// '}', splitting on top-level commas into a Composite(OpComma) when more
// than one comma-separated group is present.
func (p *Parser) parsePropertyValue() *ast.PropertyValue {
	pv := ast.NewPropertyValue()
	var groups []ast.Value
	for {
		v := p.parseSpaceComposite()
		if v != nil {
			groups = append(groups, v)
		}
		if p.at(lex.Comma) {
			p.advance()
			continue
		}
		break
	}
	if len(groups) == 1 {
		pv.Values.Add(groups[0])
	} else if len(groups) > 1 {
		c := ast.NewComposite(ast.OpComma)
		for _, g := range groups {
			c.Values.Add(g)
		}
		pv.Values.Add(c)
	}
	return pv
}

// parseSpaceComposite parses a whitespace-separated run of additive
// expressions, e.g. `1px solid red`, wrapping more than one term in a
// Composite(OpSpace).
func (p *Parser) parseSpaceComposite() ast.Value {
	var terms []ast.Value
	for p.startsValue() {
		terms = append(terms, p.parseAdditive())
		if p.at(lex.Bang) {
			p.advance()
			kw, _ := p.expect(lex.Ident, "'important' or 'default'")
			_ = kw
			terms = append(terms, &ast.Priority{})
		}
	}
	if len(terms) == 0 {
		return nil
	}
	if len(terms) == 1 {
		return terms[0]
	}
	c := ast.NewComposite(ast.OpSpace)
	for _, t := range terms {
		c.Values.Add(t)
	}
	return c
}

func (p *Parser) startsValue() bool {
	switch p.cur().Kind {
	case lex.Comma, lex.Semicolon, lex.RBrace, lex.RParen, lex.EOF, lex.Bang:
		return false
	default:
		return true
	}
}

// parseAdditive parses `+`/`-` separated terms, producing a Math node
// (spec.md's `calc`-equivalent arithmetic) when more than one operator
// appears, mirroring the teacher's renderer/renderer_math.go precedence
// (additive binds looser than multiplicative).
func (p *Parser) parseAdditive() ast.Value {
	left := p.parseMultiplicative()
	for p.at(lex.Plus) || p.at(lex.Minus) {
		op := ast.OpPlus
		if p.cur().Kind == lex.Minus {
			op = ast.OpMinus
		}
		p.advance()
		right := p.parseMultiplicative()
		m := ast.NewMath(op)
		m.Values.Add(left)
		m.Values.Add(right)
		left = m
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Value {
	left := p.parseUnary()
	for p.at(lex.Star) || p.at(lex.Slash) {
		op := ast.OpMul
		if p.cur().Kind == lex.Slash {
			op = ast.OpDiv
		}
		p.advance()
		right := p.parseUnary()
		m := ast.NewMath(op)
		m.Values.Add(left)
		m.Values.Add(right)
		left = m
	}
	return left
}

func (p *Parser) parseUnary() ast.Value {
	if p.at(lex.Minus) {
		p.advance()
		inner := p.parseUnary()
		m := ast.NewMath(ast.OpMinus)
		m.Values.Add(ast.NewNumeric(0, ""))
		m.Values.Add(inner)
		return m
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Value {
	t := p.cur()
	switch t.Kind {
	case lex.Number:
		p.advance()
		return parseNumeric(t.Text)
	case lex.String:
		p.advance()
		return ast.NewStringValue(unquote(t), t.Quote)
	case lex.Hash:
		p.advance()
		return ast.NewHexColor(strings.ToLower(strings.TrimPrefix(t.Text, "#")))
	case lex.Reference:
		p.advance()
		return ast.NewConstantRef(t.Text)
	case lex.Function:
		return p.parseFunctionCall()
	case lex.LParen:
		p.advance()
		inner := p.parseAdditive()
		p.expect(lex.RParen, "')'")
		if m, ok := inner.(*ast.Math); ok {
			m.Parenthesised = true
		}
		if c, ok := inner.(*ast.Composite); ok {
			c.Parenthesised = true
		}
		return inner
	case lex.Ident:
		p.advance()
		return ast.NewLiteral(t.Text)
	default:
		p.advance()
		return ast.NewLiteral(t.Text)
	}
}

// parseFunctionCall parses `name(arg, arg, ...)`. The CSS functions
// isBuiltinFunction lists become ast.Function; every other name, including
// the gssfunc registry's own functions, becomes ast.CustomFunction,
// resolved at fold time.
func (p *Parser) parseFunctionCall() ast.Value {
	t := p.advance()
	name := strings.TrimSuffix(t.Text, "(")
	p.expect(lex.LParen, "'('")
	var args []ast.Value
	for !p.at(lex.RParen) && !p.at(lex.EOF) {
		args = append(args, p.parseAdditive())
		if p.at(lex.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lex.RParen, "')'")

	if isBuiltinFunction(name) {
		f := ast.NewFunction(name)
		for _, a := range args {
			f.Arguments.Add(a)
		}
		return f
	}
	cf := ast.NewCustomFunction(name)
	for _, a := range args {
		cf.Arguments.Add(a)
	}
	return cf
}

// isBuiltinFunction reports whether name is one of the CSS functions the
// parser keeps as ast.Function (url(), rgb/rgba/hsl/hsla) rather than
// ast.CustomFunction. FunctionFoldPass still folds rgb/rgba/hsl/hsla
// through the gssfunc registry.
func isBuiltinFunction(name string) bool {
	switch strings.ToLower(name) {
	case "url", "rgb", "rgba", "hsl", "hsla":
		return true
	default:
		return false
	}
}

func parseNumeric(text string) *ast.Numeric {
	i := 0
	for i < len(text) && (isDigitByte(text[i]) || text[i] == '.') {
		i++
	}
	numPart := text[:i]
	unit := text[i:]
	n, _ := strconv.ParseFloat(numPart, 64)
	v := ast.NewNumeric(n, unit)
	v.Raw = text
	return v
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }
