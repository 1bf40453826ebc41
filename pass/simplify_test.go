package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyPassRemovesEmptyRuleset(t *testing.T) {
	root, d := parseForPass(t, `.a { } .b { color: red; }`)
	ctx := NewContext(d)
	SimplifyPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())
	require.Equal(t, 1, root.Statements.Len())
}

func TestSimplifyPassRemovesRulesetWithOnlyComments(t *testing.T) {
	root, d := parseForPass(t, `.a { /* still empty */ } .b { color: red; }`)
	ctx := NewContext(d)
	SimplifyPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())
	assert.Equal(t, 1, root.Statements.Len())
}

func TestSimplifyPassRemovesEmptyMediaBlock(t *testing.T) {
	root, d := parseForPass(t, `@media screen { .a { } }`)
	ctx := NewContext(d)
	SimplifyPass{}.Run(root, ctx)
	require.False(t, d.HasErrors())
	assert.Equal(t, 0, root.Statements.Len())
}
