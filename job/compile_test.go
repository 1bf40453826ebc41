package job

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompileScenarioA covers the end-to-end "fold a color constant, then
// compress" pipeline: @def BG rgb(...) folds to a hex color at constant
// substitution + function-fold time, and compressed output drops all
// non-significant whitespace and the final declaration's trailing ";".
func TestCompileScenarioA(t *testing.T) {
	src := `@def BG rgb(235,239,249); body{background:BG;}`
	opts := NewOptions()
	opts.OutputFormat = Compressed
	res := Compile([]string{src}, "a.gss", opts)
	require.False(t, res.Diags.HasErrors())
	assert.Equal(t, "body{background:#ebeff9}", res.CSS)
}

// TestCompileScenarioB covers variadic arithmetic folding across several
// constants in pretty (human-readable) output.
func TestCompileScenarioB(t *testing.T) {
	src := `@def W 180px; @def P 3px; .x{margin-left:add(P,W,P);}`
	res := Compile([]string{src}, "b.gss", NewOptions())
	require.False(t, res.Diags.HasErrors())
	assert.Contains(t, res.CSS, "margin-left: 186px;")
}

// TestCompileScenarioC covers compile-time conditional folding: only the
// taken branch survives to output.
func TestCompileScenarioC(t *testing.T) {
	src := `@if COND { .a{color:red;} } @else { .a{color:blue;} }`
	opts := NewOptions()
	opts.TrueConditionNames = map[string]bool{"COND": true}
	opts.OutputFormat = Compressed
	res := Compile([]string{src}, "c.gss", opts)
	require.False(t, res.Diags.HasErrors())
	assert.Equal(t, ".a{color:red}", res.CSS)
	assert.NotContains(t, res.CSS, "blue")
}

// TestCompileScenarioD covers RTL flipping: property names, directional
// values, and positional four-value shorthands all mirror, except a
// declaration marked `@noflip`.
func TestCompileScenarioD(t *testing.T) {
	src := `.logo{margin-left:10px;} .x{/* @noflip */direction:ltr;border-right:2px solid #ccc;padding:0 2px 0 4px;}`
	opts := NewOptions()
	opts.InputOrientation = LTR
	opts.OutputOrientation = RTL
	opts.OutputFormat = Compressed
	res := Compile([]string{src}, "d.gss", opts)
	require.False(t, res.Diags.HasErrors())
	assert.Contains(t, res.CSS, "margin-right:10px")
	assert.Contains(t, res.CSS, "direction:ltr")
	assert.Contains(t, res.CSS, "border-left:2px solid #ccc")
	assert.Contains(t, res.CSS, "padding:0 4px 0 2px")
}

// TestCompileScenarioE covers class renaming with the hyphen-split policy:
// classes sharing a hyphen-separated word share that word's short name.
func TestCompileScenarioE(t *testing.T) {
	src := `.dialog-content{padding:10px;} .dialog-title{font-weight:bold;}`
	opts := NewOptions()
	opts.RenameClasses = true
	opts.OutputRenamingMapFormat = ClosureCompiledSplitHyphens
	res := Compile([]string{src}, "e.gss", opts)
	require.False(t, res.Diags.HasErrors())
	assert.Contains(t, res.CSS, ".a-b")
	assert.Contains(t, res.CSS, ".a-c")

	require.NotNil(t, res.RenameMap)
	dialog, ok := res.RenameMap.Lookup("dialog")
	require.True(t, ok)
	content, ok := res.RenameMap.Lookup("content")
	require.True(t, ok)
	title, ok := res.RenameMap.Lookup("title")
	require.True(t, ok)
	assert.Equal(t, "a", dialog)
	assert.Equal(t, "b", content)
	assert.Equal(t, "c", title)
}

// TestCompileScenarioF covers an unrecognized function without leniency:
// one error diagnostic is reported and no CSS is produced.
func TestCompileScenarioF(t *testing.T) {
	src := `.logo{background-image:urel('x');}`
	res := Compile([]string{src}, "f.gss", NewOptions())
	require.True(t, res.Diags.HasErrors())
	assert.Empty(t, res.CSS)

	found := false
	for _, d := range res.Diags.Errors() {
		lower := strings.ToLower(d.Message)
		if strings.Contains(lower, "unknown function") && strings.Contains(lower, "urel") {
			found = true
		}
	}
	assert.True(t, found, "expected a diagnostic naming the unknown function, got: %+v", res.Diags.Errors())
}
