package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
)

func TestNamespacePassScopesComponentSelectors(t *testing.T) {
	root, d := parseForPass(t, `
		@component button {
			.icon { color: red; }
			#main { color: blue; }
		}
	`)
	ctx := NewContext(d)
	NamespacePass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	require.Equal(t, 2, root.Statements.Len())
	rs0 := root.Statements.Item(0).(*ast.Ruleset)
	assert.Equal(t, "button", rs0.Namespace)
	class := rs0.Selectors.Selectors.Item(0).Refiners.Items.Item(0).(*ast.ClassRefiner)
	assert.Equal(t, "button-icon", class.Name)

	rs1 := root.Statements.Item(1).(*ast.Ruleset)
	id := rs1.Selectors.Selectors.Item(0).Refiners.Items.Item(0).(*ast.IDRefiner)
	assert.Equal(t, "button-main", id.Name)
}

func TestNamespacePassFlattensNestedComponents(t *testing.T) {
	root, d := parseForPass(t, `
		@component outer {
			@component inner {
				.leaf { color: red; }
			}
		}
	`)
	ctx := NewContext(d)
	NamespacePass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	require.Equal(t, 1, root.Statements.Len())
	rs := root.Statements.Item(0).(*ast.Ruleset)
	assert.Equal(t, "outer-inner", rs.Namespace)
	class := rs.Selectors.Selectors.Item(0).Refiners.Items.Item(0).(*ast.ClassRefiner)
	assert.Equal(t, "outer-inner-leaf", class.Name)
}

func TestNamespacePassWarnsOnUnresolvedRequire(t *testing.T) {
	root, d := parseForPass(t, `
		@require missing.namespace;
		.a { color: red; }
	`)
	ctx := NewContext(d)
	NamespacePass{}.Run(root, ctx)
	require.False(t, d.HasErrors())
	assert.NotEmpty(t, d.Warnings())
}
