package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
)

func TestFunctionFoldPassFoldsMath(t *testing.T) {
	root, d := parseForPass(t, `.a { width: 2px + 3px; }`)
	ctx := NewContext(d)
	FunctionFoldPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	rs := root.Statements.Item(0).(*ast.Ruleset)
	decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
	num := decl.Values.Values.Item(0).(*ast.Numeric)
	assert.Equal(t, 5.0, num.Number)
	assert.Equal(t, "px", num.Unit)
}

func TestFunctionFoldPassFoldsColorFunction(t *testing.T) {
	root, d := parseForPass(t, `.a { color: darken(#808080, 10%); }`)
	ctx := NewContext(d)
	FunctionFoldPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	rs := root.Statements.Item(0).(*ast.Ruleset)
	decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
	_, ok := decl.Values.Values.Item(0).(*ast.HexColor)
	assert.True(t, ok)
}

func TestFunctionFoldPassReportsUnknownFunction(t *testing.T) {
	root, d := parseForPass(t, `.a { color: mystery(1, 2); }`)
	ctx := NewContext(d)
	FunctionFoldPass{}.Run(root, ctx)
	assert.True(t, d.HasErrors())
}
