package renamemap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameIsStable(t *testing.T) {
	m := New()
	first := m.Rename("widget-header")
	second := m.Rename("widget-header")
	assert.Equal(t, first, second)
}

func TestRenameAssignsDistinctShortNames(t *testing.T) {
	m := New()
	a := m.Rename("alpha")
	b := m.Rename("beta")
	assert.NotEqual(t, a, b)
}

func TestWriteJSON(t *testing.T) {
	m := New()
	m.Rename("foo")
	m.Rename("bar")
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, FormatJSON))
	assert.Contains(t, buf.String(), `"foo"`)
	assert.Contains(t, buf.String(), `"bar"`)
}

func TestNewWithPrefixPrependsPrefix(t *testing.T) {
	m := NewWithPrefix("gss-")
	short := m.Rename("widget-header")
	assert.Equal(t, "gss-a", short)
}

func TestWriteAllFormatsSucceed(t *testing.T) {
	m := New()
	m.Rename("one")
	for _, f := range []Format{FormatJSON, FormatCSV, FormatTSV, FormatProperties, FormatGo, FormatJS, FormatSCSS} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, m, f))
		assert.NotEmpty(t, buf.String())
	}
}
