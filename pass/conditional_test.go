package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/diag"
	"github.com/gssc/gss/parse"
	"github.com/gssc/gss/source"
)

func parseForPass(t *testing.T, src string) (*ast.Root, *diag.Manager) {
	t.Helper()
	f := source.New("t.gss", src)
	d := diag.New()
	root := parse.New(f, d).Parse()
	require.Empty(t, d.Errors())
	return root, d
}

func TestConditionalPassTakesMatchingIfArm(t *testing.T) {
	root, d := parseForPass(t, `
		@def DEBUG: true;
		@if (DEBUG) { .a { color: red; } } @else { .a { color: blue; } }
	`)
	ctx := NewContext(d)
	ConstantsPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())
	ConditionalPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	var rulesets []*ast.Ruleset
	for i := 0; i < root.Statements.Len(); i++ {
		if rs, ok := root.Statements.Item(i).(*ast.Ruleset); ok {
			rulesets = append(rulesets, rs)
		}
	}
	require.Len(t, rulesets, 1)
	decl := rulesets[0].Block.Declarations.Item(0).(*ast.Declaration)
	val := decl.Values.Values.Item(0).(*ast.Literal)
	assert.Equal(t, "red", val.Text)
}

func TestConditionalPassFallsThroughToElse(t *testing.T) {
	root, d := parseForPass(t, `
		@def DEBUG: false;
		@if (DEBUG) { .a { color: red; } } @else { .a { color: blue; } }
	`)
	ctx := NewContext(d)
	ConstantsPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())
	ConditionalPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	var rs *ast.Ruleset
	for i := 0; i < root.Statements.Len(); i++ {
		if r, ok := root.Statements.Item(i).(*ast.Ruleset); ok {
			rs = r
		}
	}
	require.NotNil(t, rs)
	decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
	val := decl.Values.Values.Item(0).(*ast.Literal)
	assert.Equal(t, "blue", val.Text)
}

func TestConditionalPassRemovesUnmatchedWithNoElse(t *testing.T) {
	root, d := parseForPass(t, `
		@def DEBUG: false;
		@if (DEBUG) { .a { color: red; } }
		.keep { color: green; }
	`)
	ctx := NewContext(d)
	ConstantsPass{}.Run(root, ctx)
	ConditionalPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	var rulesets []*ast.Ruleset
	for i := 0; i < root.Statements.Len(); i++ {
		if rs, ok := root.Statements.Item(i).(*ast.Ruleset); ok {
			rulesets = append(rulesets, rs)
		}
	}
	require.Len(t, rulesets, 1)
	assert.Equal(t, "keep", rulesets[0].Selectors.Selectors.Item(0).Refiners.Items.Item(0).(*ast.ClassRefiner).Name)
}

func TestConditionalPassAndOrNot(t *testing.T) {
	root, d := parseForPass(t, `
		@def A: true;
		@def B: false;
		@if (A and not B) { .a { color: red; } } @else { .a { color: blue; } }
	`)
	ctx := NewContext(d)
	ConstantsPass{}.Run(root, ctx)
	ConditionalPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	var rs *ast.Ruleset
	for i := 0; i < root.Statements.Len(); i++ {
		if r, ok := root.Statements.Item(i).(*ast.Ruleset); ok {
			rs = r
		}
	}
	require.NotNil(t, rs)
	decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
	val := decl.Values.Values.Item(0).(*ast.Literal)
	assert.Equal(t, "red", val.Text)
}
