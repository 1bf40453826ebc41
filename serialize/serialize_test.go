package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gssc/gss/diag"
	"github.com/gssc/gss/parse"
	"github.com/gssc/gss/source"
)

func TestSerializePretty(t *testing.T) {
	f := source.New("t.gss", `.a { color: red; width: 10px; }`)
	d := diag.New()
	root := parse.New(f, d).Parse()
	require.Empty(t, d.Errors())

	out := Serialize(root, Options{})
	assert.Contains(t, out, ".a {")
	assert.Contains(t, out, "color: red;")
	assert.Contains(t, out, "width: 10px;")
}

func TestSerializeCompressed(t *testing.T) {
	f := source.New("t.gss", `.a { color: red; width: 10px; }`)
	d := diag.New()
	root := parse.New(f, d).Parse()
	require.Empty(t, d.Errors())

	out := Serialize(root, Options{Compressed: true})
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, ".a{color:red;width:10px}")
}

func TestSerializeSelectorCombinators(t *testing.T) {
	f := source.New("t.gss", `.a > .b + .c ~ .d { color: red; }`)
	d := diag.New()
	root := parse.New(f, d).Parse()
	require.Empty(t, d.Errors())

	out := Serialize(root, Options{})
	assert.Contains(t, out, ".a > .b + .c ~ .d")
}
