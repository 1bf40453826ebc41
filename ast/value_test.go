package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCustomFunctionCacheInvalidatesOnGenericListMutation covers invariant
// 7 ("CustomFunction's cached result is invalidated whenever its arguments
// are replaced") through the same path a real pass takes: the visit
// controller never calls ReplaceArguments directly, it drives
// NodeList.ReplaceWith on whatever list a ConstantRef happens to sit
// inside — here, fn.Arguments itself.
func TestCustomFunctionCacheInvalidatesOnGenericListMutation(t *testing.T) {
	fn := NewCustomFunction("mix")
	fn.Arguments.Add(NewNumeric(1, ""))
	fn.SetCached(NewHexColor("336699"))

	cached, ok := fn.Cached()
	require.True(t, ok)
	assert.Equal(t, "336699", cached.(*HexColor).Hex)

	fn.Arguments.ReplaceWith(0, []Node{NewNumeric(2, "")}, fn)

	_, ok = fn.Cached()
	assert.False(t, ok, "replacing an argument through the generic list adapter must invalidate the cache")
}

// TestCustomFunctionCacheInvalidatesOnRemove covers the same invariant for
// RemoveAt, the other mutation the visit controller can drive (a
// ConstantRef argument folding away to nothing is not how ConstantRef
// behaves today, but any list shrink must still invalidate).
func TestCustomFunctionCacheInvalidatesOnRemove(t *testing.T) {
	fn := NewCustomFunction("darken")
	fn.Arguments.Add(NewNumeric(10, "%"))
	fn.Arguments.Add(NewLiteral("red"))
	fn.SetCached(NewHexColor("aa0000"))

	fn.Arguments.RemoveAt(1)

	_, ok := fn.Cached()
	assert.False(t, ok, "removing an argument must invalidate the cache")
}

// TestCustomFunctionReplaceArgumentsInvalidatesCache covers the same
// invariant through the direct ReplaceArguments call, now a thin wrapper
// over NodeList.ReplaceAll.
func TestCustomFunctionReplaceArgumentsInvalidatesCache(t *testing.T) {
	fn := NewCustomFunction("lighten")
	fn.Arguments.Add(NewNumeric(5, "%"))
	fn.SetCached(NewHexColor("ffffff"))

	fn.ReplaceArguments([]Value{NewNumeric(10, "%")})

	_, ok := fn.Cached()
	assert.False(t, ok)
	require.Equal(t, 1, fn.Arguments.Len())
	assert.Equal(t, 10.0, fn.Arguments.Item(0).(*Numeric).Number)
}
