package visit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/diag"
	"github.com/gssc/gss/parse"
	"github.com/gssc/gss/source"
)

func parseRoot(t *testing.T, src string) *ast.Root {
	t.Helper()
	f := source.New("t.gss", src)
	d := diag.New()
	root := parse.New(f, d).Parse()
	require.Empty(t, d.Errors())
	return root
}

type countingVisitor struct {
	Base
	entered int
}

func (v *countingVisitor) Enter(n ast.Node, c *Controller) { v.entered++ }

func TestWalkVisitsEveryNode(t *testing.T) {
	root := parseRoot(t, `.a { color: red; width: 10px; }`)
	v := &countingVisitor{}
	Walk(root, v)
	assert.Greater(t, v.entered, 5)
}

type removeDeclarations struct {
	Base
}

func (removeDeclarations) Enter(n ast.Node, c *Controller) {
	if d, ok := n.(*ast.Declaration); ok && d.Prop.Name == "color" {
		c.RemoveCurrentNode()
	}
}

func TestRemoveCurrentNodePropagatesToOwningList(t *testing.T) {
	root := parseRoot(t, `.a { color: red; width: 10px; }`)
	Walk(root, removeDeclarations{})

	rs := root.Statements.Item(0).(*ast.Ruleset)
	require.Equal(t, 1, rs.Block.Declarations.Len())
	decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
	assert.Equal(t, "width", decl.Prop.Name)
}

type replaceWidthWithTwo struct {
	Base
}

func (replaceWidthWithTwo) Enter(n ast.Node, c *Controller) {
	if d, ok := n.(*ast.Declaration); ok && d.Prop.Name == "width" {
		other := ast.NewDeclaration(ast.NewProperty("height"), ast.NewPropertyValue())
		c.ReplaceCurrentNodeWith(false, d, other)
	}
}

func TestReplaceCurrentNodeWithSplicesWithoutRevisiting(t *testing.T) {
	root := parseRoot(t, `.a { width: 10px; }`)
	Walk(root, replaceWidthWithTwo{})

	rs := root.Statements.Item(0).(*ast.Ruleset)
	require.Equal(t, 2, rs.Block.Declarations.Len())
	assert.Equal(t, "width", rs.Block.Declarations.Item(0).(*ast.Declaration).Prop.Name)
	assert.Equal(t, "height", rs.Block.Declarations.Item(1).(*ast.Declaration).Prop.Name)
}

// expandChain simulates a mixin/for-loop-style visitor that expands a
// construct into a replacement that itself needs expanding: "a" becomes
// "b" becomes "c", each step asking the walker to revisit.
type expandChain struct {
	Base
	expansions int
}

func (v *expandChain) Enter(n ast.Node, c *Controller) {
	d, ok := n.(*ast.Declaration)
	if !ok {
		return
	}
	switch d.Prop.Name {
	case "a":
		v.expansions++
		c.ReplaceCurrentNodeWith(true, ast.NewDeclaration(ast.NewProperty("b"), ast.NewPropertyValue()))
	case "b":
		v.expansions++
		c.ReplaceCurrentNodeWith(true, ast.NewDeclaration(ast.NewProperty("c"), ast.NewPropertyValue()))
	}
}

// TestReplaceCurrentNodeWithRevisitEntersFirstReplacement covers testable
// property 7 (spec.md §8): revisit=true makes the walker enter the first
// replacement node next, so a chained expansion ("a" -> "b" -> "c")
// fully resolves within a single Walk call instead of needing the caller
// to re-walk the tree to a fixed point.
func TestReplaceCurrentNodeWithRevisitEntersFirstReplacement(t *testing.T) {
	root := parseRoot(t, `.a { a: 1; }`)
	v := &expandChain{}
	Walk(root, v)

	rs := root.Statements.Item(0).(*ast.Ruleset)
	require.Equal(t, 1, rs.Block.Declarations.Len())
	assert.Equal(t, "c", rs.Block.Declarations.Item(0).(*ast.Declaration).Prop.Name)
	assert.Equal(t, 2, v.expansions)
}

type stopAtFirstDeclaration struct {
	Base
	seen int
}

func (v *stopAtFirstDeclaration) Enter(n ast.Node, c *Controller) {
	if _, ok := n.(*ast.Declaration); ok {
		v.seen++
		c.StopVisit()
	}
}

func TestStopVisitHaltsTraversal(t *testing.T) {
	root := parseRoot(t, `.a { color: red; } .b { width: 1px; }`)
	v := &stopAtFirstDeclaration{}
	Walk(root, v)
	assert.Equal(t, 1, v.seen)
}
