package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
)

func declAt(t *testing.T, root *ast.Root, stmtIndex, declIndex int) *ast.Declaration {
	t.Helper()
	rs := root.Statements.Item(stmtIndex).(*ast.Ruleset)
	return rs.Block.Declarations.Item(declIndex).(*ast.Declaration)
}

func TestFlipPassIsNoOpWhenNotRTL(t *testing.T) {
	root, d := parseForPass(t, `.logo { margin-left: 10px; }`)
	ctx := NewContext(d)
	FlipPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())
	decl := declAt(t, root, 0, 0)
	assert.Equal(t, "margin-left", decl.Prop.Name)
}

func TestFlipPassSwapsPropertyName(t *testing.T) {
	root, d := parseForPass(t, `.logo { margin-left: 10px; }`)
	ctx := NewContext(d)
	ctx.RTL = true
	FlipPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())
	decl := declAt(t, root, 0, 0)
	assert.Equal(t, "margin-right", decl.Prop.Name)
}

func TestFlipPassHonorsNoFlipMarker(t *testing.T) {
	root, d := parseForPass(t, `.x {
		/* @noflip */direction: ltr;
		border-right: 2px solid #ccc;
	}`)
	ctx := NewContext(d)
	ctx.RTL = true
	FlipPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	direction := declAt(t, root, 0, 0)
	assert.Equal(t, "direction", direction.Prop.Name)
	lit := direction.Values.Values.Item(0).(*ast.Literal)
	assert.Equal(t, "ltr", lit.Text)

	border := declAt(t, root, 0, 1)
	assert.Equal(t, "border-left", border.Prop.Name)
}

func TestFlipPassReordersPositionalShorthand(t *testing.T) {
	root, d := parseForPass(t, `.x { padding: 0 2px 0 4px; }`)
	ctx := NewContext(d)
	ctx.RTL = true
	FlipPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	decl := declAt(t, root, 0, 0)
	composite := decl.Values.Values.Item(0).(*ast.Composite)
	require.Equal(t, 4, composite.Values.Len())
	assert.Equal(t, 4.0, composite.Values.Item(1).(*ast.Numeric).Number)
	assert.Equal(t, 2.0, composite.Values.Item(3).(*ast.Numeric).Number)
}
