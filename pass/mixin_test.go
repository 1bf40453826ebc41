package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
)

func findRuleset(t *testing.T, root *ast.Root, selector string) *ast.Ruleset {
	t.Helper()
	for i := 0; i < root.Statements.Len(); i++ {
		if rs, ok := root.Statements.Item(i).(*ast.Ruleset); ok {
			sel := rs.Selectors.Selectors.Item(0)
			if sel.Refiners.Items.Len() == 0 {
				continue
			}
			if c, ok := sel.Refiners.Items.Item(0).(*ast.ClassRefiner); ok && "."+c.Name == selector {
				return rs
			}
		}
	}
	t.Fatalf("no ruleset found for selector %q", selector)
	return nil
}

func TestMixinPassExpandsCallWithArgsAndDefaults(t *testing.T) {
	root, d := parseForPass(t, `
		@defmixin button(size, color: blue) {
			width: size;
			background: color;
		}
		.a { @mixin button(10px); }
	`)
	ctx := NewContext(d)
	MixinPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	rs := findRuleset(t, root, ".a")
	require.Equal(t, 2, rs.Block.Declarations.Len())

	width := rs.Block.Declarations.Item(0).(*ast.Declaration)
	assert.Equal(t, "width", width.Prop.Name)
	num := width.Values.Values.Item(0).(*ast.Numeric)
	assert.Equal(t, 10.0, num.Number)
	assert.Equal(t, "px", num.Unit)

	bg := rs.Block.Declarations.Item(1).(*ast.Declaration)
	lit := bg.Values.Values.Item(0).(*ast.Literal)
	assert.Equal(t, "blue", lit.Text)
}

func TestMixinPassAppliesImportant(t *testing.T) {
	root, d := parseForPass(t, `
		@defmixin reset() {
			margin: 0;
		}
		.a { @mixin reset() !important; }
	`)
	ctx := NewContext(d)
	MixinPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	rs := findRuleset(t, root, ".a")
	decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
	require.Equal(t, 2, decl.Values.Values.Len())
	_, isPriority := decl.Values.Values.Item(1).(*ast.Priority)
	assert.True(t, isPriority)
}

func TestMixinPassReportsUndefinedMixin(t *testing.T) {
	root, d := parseForPass(t, `.a { @mixin ghost(); }`)
	ctx := NewContext(d)
	MixinPass{}.Run(root, ctx)
	assert.True(t, d.HasErrors())
}

func TestMixinPassReportsMissingArgument(t *testing.T) {
	root, d := parseForPass(t, `
		@defmixin button(size) { width: size; }
		.a { @mixin button(); }
	`)
	ctx := NewContext(d)
	MixinPass{}.Run(root, ctx)
	assert.True(t, d.HasErrors())
}
