package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
)

func TestForLoopPassUnrollsAscendingRange(t *testing.T) {
	root, d := parseForPass(t, `
		@for (i from 1 to 3) {
			.col-i { width: i; }
		}
	`)
	ctx := NewContext(d)
	ForLoopPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	var rulesets []*ast.Ruleset
	for i := 0; i < root.Statements.Len(); i++ {
		if rs, ok := root.Statements.Item(i).(*ast.Ruleset); ok {
			rulesets = append(rulesets, rs)
		}
	}
	require.Len(t, rulesets, 3)
	for idx, rs := range rulesets {
		decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
		num := decl.Values.Values.Item(0).(*ast.Numeric)
		assert.Equal(t, float64(idx+1), num.Number)
	}
}

func TestForLoopPassHonorsStep(t *testing.T) {
	root, d := parseForPass(t, `
		@for (i from 10 to 0 by -5) {
			.x { opacity: i; }
		}
	`)
	ctx := NewContext(d)
	ForLoopPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	var got []float64
	for i := 0; i < root.Statements.Len(); i++ {
		if rs, ok := root.Statements.Item(i).(*ast.Ruleset); ok {
			decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
			got = append(got, decl.Values.Values.Item(0).(*ast.Numeric).Number)
		}
	}
	assert.Equal(t, []float64{10, 5, 0}, got)
}

// TestForLoopPassExpandsNestedLoops covers a `@for` nested inside another
// `@for`'s body: the outer iteration's unrolled copy still contains an
// unexpanded inner `@for`, and ReplaceCurrentNodeWith's revisit=true makes
// the walker enter it next so it unrolls within the same walk.
func TestForLoopPassExpandsNestedLoops(t *testing.T) {
	root, d := parseForPass(t, `
		@for (i from 1 to 2) {
			@for (j from 1 to 2) {
				.cell-i-j { width: i; }
			}
		}
	`)
	ctx := NewContext(d)
	ForLoopPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())

	var rulesets []*ast.Ruleset
	for i := 0; i < root.Statements.Len(); i++ {
		if rs, ok := root.Statements.Item(i).(*ast.Ruleset); ok {
			rulesets = append(rulesets, rs)
		}
	}
	require.Len(t, rulesets, 4)
	for _, rs := range rulesets {
		decl := rs.Block.Declarations.Item(0).(*ast.Declaration)
		num := decl.Values.Values.Item(0).(*ast.Numeric)
		assert.Contains(t, []float64{1, 2}, num.Number)
	}
}

func TestForLoopPassRejectsZeroStep(t *testing.T) {
	root, d := parseForPass(t, `
		@for (i from 1 to 3 by 0) { .x { width: i; } }
	`)
	ctx := NewContext(d)
	ForLoopPass{}.Run(root, ctx)
	assert.True(t, d.HasErrors())
}
