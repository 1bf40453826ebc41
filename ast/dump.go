package ast

import "github.com/davecgh/go-spew/spew"

// dumpConfig renders a tree with pointer addresses and slice capacities
// suppressed, so two structurally identical trees (e.g. an original and
// its DeepCopy) dump to identical text even though every node lives at a
// different address.
var dumpConfig = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	Indent:                  "  ",
	SortKeys:                true,
}

// Dump renders n and its descendants as a human-readable tree, including
// unexported bookkeeping fields (parent, location, chunk). It exists for
// debugging failing pass/parser tests — printing Dump(root) alongside a
// failed assertion shows the shape of the tree the pass actually produced,
// which a bare require.Equal failure message does not.
func Dump(n Node) string {
	return dumpConfig.Sdump(n)
}
