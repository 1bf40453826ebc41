package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func buildFixtureRoot() *Root {
	root := NewRoot("fixture.gss")

	sel := NewSelector("")
	sel.Refiners.Items.Add(&ClassRefiner{Name: "widget"})

	sl := NewSelectorList()
	sl.Selectors.Add(sel)

	pv := NewPropertyValue()
	pv.Values.Add(NewHexColor("336699"))

	db := NewDeclarationBlock()
	db.Declarations.Add(NewDeclaration(NewProperty("color"), pv))

	rs := NewRuleset(sl, db)
	root.Statements.Add(rs)
	return root
}

// TestDeepCopyIsStructurallyEqualButIndependent covers testable property 2:
// deep_copy(t) is structurally equal to t but shares no node, and mutating
// the copy never reaches back into the original.
func TestDeepCopyIsStructurallyEqualButIndependent(t *testing.T) {
	root := buildFixtureRoot()
	copyNode := DeepCopy(root)
	copyRoot, ok := copyNode.(*Root)
	require.True(t, ok)

	// Node trees hold unexported bookkeeping (parent pointers, NodeList's
	// backing slice) that cmp can't walk directly without an unsafe-access
	// escape hatch, and parent pointers make the graph cyclic besides; Dump
	// renders both trees to address-independent text first, so cmp.Diff
	// only ever compares two plain strings.
	diff := cmp.Diff(Dump(root), Dump(copyRoot))
	require.Empty(t, diff, "deep copy must be structurally equal to the original")

	copyRuleset := copyRoot.Statements.Item(0).(*Ruleset)
	copyClass := copyRuleset.Selectors.Selectors.Item(0).Refiners.Items.Item(0).(*ClassRefiner)
	copyClass.Name = "mutated"

	origRuleset := root.Statements.Item(0).(*Ruleset)
	origClass := origRuleset.Selectors.Selectors.Item(0).Refiners.Items.Item(0).(*ClassRefiner)
	require.Equal(t, "widget", origClass.Name, "mutating the copy must not affect the original")

	copyDecl := copyRuleset.Block.Declarations.Item(0).(*Declaration)
	copyHex := copyDecl.Values.Values.Item(0).(*HexColor)
	copyHex.Hex = "000000"

	origDecl := origRuleset.Block.Declarations.Item(0).(*Declaration)
	origHex := origDecl.Values.Values.Item(0).(*HexColor)
	require.Equal(t, "336699", origHex.Hex, "mutating a copied value node must not affect the original")
}
