package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/diag"
	"github.com/gssc/gss/source"
)

func parseString(t *testing.T, src string) (*ast.Root, *diag.Manager) {
	t.Helper()
	f := source.New("test.gss", src)
	d := diag.New()
	root := New(f, d).Parse()
	return root, d
}

func TestParseSimpleRuleset(t *testing.T) {
	root, d := parseString(t, `.foo { color: red; width: 10px; }`)
	require.Empty(t, d.Errors())
	require.Equal(t, 1, root.Statements.Len())

	rs, ok := root.Statements.Item(0).(*ast.Ruleset)
	require.True(t, ok)
	assert.Equal(t, 1, rs.Selectors.Selectors.Len())
	assert.Equal(t, 2, rs.Block.Declarations.Len())

	decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
	assert.Equal(t, "color", decl.Prop.Name)
}

func TestParseDefAndReference(t *testing.T) {
	root, d := parseString(t, `@def BRAND_COLOR: #336699;
.btn { color: BRAND_COLOR; }`)
	require.Empty(t, d.Errors())
	require.Equal(t, 2, root.Statements.Len())

	def, ok := root.Statements.Item(0).(*ast.AtRule)
	require.True(t, ok)
	assert.Equal(t, ast.AtDef, def.Kind)
	assert.Equal(t, "BRAND_COLOR", def.Name)
}

func TestParseConditionalChain(t *testing.T) {
	root, d := parseString(t, `@if (DEBUG) {
  .a { color: red; }
} @elseif (not(DEBUG)) {
  .a { color: blue; }
} @else {
  .a { color: green; }
}`)
	require.Empty(t, d.Errors())
	require.Equal(t, 1, root.Statements.Len())

	cb, ok := root.Statements.Item(0).(*ast.ConditionalBlock)
	require.True(t, ok)
	assert.Equal(t, 3, cb.Arms.Len())
	assert.Equal(t, ast.CondIf, cb.Arms.Item(0).Kind)
	assert.Equal(t, ast.CondElseIf, cb.Arms.Item(1).Kind)
	assert.Equal(t, ast.CondElse, cb.Arms.Item(2).Kind)
}

func TestParseForLoop(t *testing.T) {
	root, d := parseString(t, `@for (i from 1 to 3) {
  .col-i { width: 10px; }
}`)
	require.Empty(t, d.Errors())
	rule, ok := root.Statements.Item(0).(*ast.AtRule)
	require.True(t, ok)
	assert.Equal(t, ast.AtFor, rule.Kind)
	assert.Equal(t, "i", rule.For.Var)
}

func TestParseImportBeforeStatements(t *testing.T) {
	root, d := parseString(t, `@import "base.gss";
.a { color: red; }`)
	require.Empty(t, d.Errors())
	require.Equal(t, 1, root.Imports.Imports.Len())
	assert.Equal(t, "base.gss", root.Imports.Imports.Item(0).Path)
	require.Equal(t, 1, root.Statements.Len())
}

func TestParseMalformedRulesetRecovers(t *testing.T) {
	root, d := parseString(t, `.a color: red; }
.b { color: blue; }`)
	require.NotEmpty(t, d.Errors())
	// Parsing continues with the next statement despite the first error.
	assert.GreaterOrEqual(t, root.Statements.Len(), 1)
}
