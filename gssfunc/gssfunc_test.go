package gssfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/ast"
)

func TestFoldLighten(t *testing.T) {
	r := Default()
	out, err := r.Fold("lighten", []ast.Value{ast.NewHexColor("336699"), ast.NewNumeric(10, "%")})
	require.NoError(t, err)
	hex, ok := out.(*ast.HexColor)
	require.True(t, ok)
	assert.NotEqual(t, "336699", hex.Hex)
}

func TestFoldCeilAndMax(t *testing.T) {
	r := Default()
	out, err := r.Fold("ceil", []ast.Value{ast.NewNumeric(1.2, "px")})
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.(*ast.Numeric).Number)

	out, err = r.Fold("max", []ast.Value{ast.NewNumeric(3, "px"), ast.NewNumeric(5, "px")})
	require.NoError(t, err)
	assert.Equal(t, 5.0, out.(*ast.Numeric).Number)
}

func TestFoldAddSumsArguments(t *testing.T) {
	r := Default()
	out, err := r.Fold("add", []ast.Value{ast.NewNumeric(180, "px"), ast.NewNumeric(3, "px"), ast.NewNumeric(3, "px")})
	require.NoError(t, err)
	num := out.(*ast.Numeric)
	assert.Equal(t, 186.0, num.Number)
	assert.Equal(t, "px", num.Unit)
}

func TestFoldSubSubtractsRemainingArguments(t *testing.T) {
	r := Default()
	out, err := r.Fold("sub", []ast.Value{ast.NewNumeric(10, "px"), ast.NewNumeric(3, "px")})
	require.NoError(t, err)
	assert.Equal(t, 7.0, out.(*ast.Numeric).Number)
}

func TestFoldRGBProducesHexColor(t *testing.T) {
	r := Default()
	out, err := r.Fold("rgb", []ast.Value{ast.NewNumeric(235, ""), ast.NewNumeric(239, ""), ast.NewNumeric(249, "")})
	require.NoError(t, err)
	hex, ok := out.(*ast.HexColor)
	require.True(t, ok)
	assert.Equal(t, "ebeff9", hex.Hex)
}

func TestFoldHSLAProducesHexColor(t *testing.T) {
	r := Default()
	out, err := r.Fold("hsla", []ast.Value{ast.NewNumeric(0, ""), ast.NewNumeric(0, "%"), ast.NewNumeric(100, "%"), ast.NewNumeric(1, "")})
	require.NoError(t, err)
	hex, ok := out.(*ast.HexColor)
	require.True(t, ok)
	assert.Equal(t, "ffffff", hex.Hex)
}

func TestFoldUnknownFunction(t *testing.T) {
	r := Default()
	_, err := r.Fold("not-a-function", nil)
	require.Error(t, err)
}
