package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
)

func TestRenamePassIsNoOpByDefault(t *testing.T) {
	root, d := parseForPass(t, `.widget-header#main { color: red; }`)
	ctx := NewContext(d)
	RenamePass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	rs := root.Statements.Item(0).(*ast.Ruleset)
	sel := rs.Selectors.Selectors.Item(0)
	class := sel.Refiners.Items.Item(0).(*ast.ClassRefiner)
	assert.Equal(t, "widget-header", class.Name)
}

func TestRenamePassRenamesClassesOnly(t *testing.T) {
	root, d := parseForPass(t, `.widget-header#main { color: red; }`)
	ctx := NewContext(d)
	ctx.RenameClasses = true
	RenamePass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	rs := root.Statements.Item(0).(*ast.Ruleset)
	sel := rs.Selectors.Selectors.Item(0)
	class := sel.Refiners.Items.Item(0).(*ast.ClassRefiner)
	id := sel.Refiners.Items.Item(1).(*ast.IDRefiner)
	assert.NotEqual(t, "widget-header", class.Name)
	assert.Equal(t, "main", id.Name)
}

func TestRenamePassHonorsExcludedClasses(t *testing.T) {
	root, d := parseForPass(t, `.keep-me { color: red; }`)
	ctx := NewContext(d)
	ctx.RenameClasses = true
	ctx.RenameExcluded = map[string]bool{"keep-me": true}
	RenamePass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	rs := root.Statements.Item(0).(*ast.Ruleset)
	class := rs.Selectors.Selectors.Item(0).Refiners.Items.Item(0).(*ast.ClassRefiner)
	assert.Equal(t, "keep-me", class.Name)
}

func TestRenamePassIsStableAcrossRepeatedClasses(t *testing.T) {
	root, d := parseForPass(t, `.a { color: red; } .b .a { color: blue; }`)
	ctx := NewContext(d)
	ctx.RenameClasses = true
	RenamePass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	first := root.Statements.Item(0).(*ast.Ruleset)
	firstClass := first.Selectors.Selectors.Item(0).Refiners.Items.Item(0).(*ast.ClassRefiner)

	second := root.Statements.Item(1).(*ast.Ruleset)
	secondSel := second.Selectors.Selectors.Item(0)
	outerClass := secondSel.Refiners.Items.Item(0).(*ast.ClassRefiner)
	innerSel := secondSel.Combinator.Child
	innerClass := innerSel.Refiners.Items.Item(0).(*ast.ClassRefiner)

	assert.Equal(t, firstClass.Name, innerClass.Name)
	assert.NotEqual(t, outerClass.Name, innerClass.Name)
}
