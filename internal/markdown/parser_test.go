package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithFrontmatter(t *testing.T) {
	src := []byte("---\ntitle: Privacy Policy\nlastUpdated: 2024-05-01\n---\n# Data we keep\n\nNickname and profile image.\n")

	html, meta, err := NewParser().ParseWithFrontmatter(src)
	require.NoError(t, err)

	assert.Equal(t, "Privacy Policy", meta["title"])
	assert.Contains(t, string(html), `<h1 id="data-we-keep">Data we keep</h1>`)
	assert.NotContains(t, string(html), "title:")
}

func TestParseWithoutFrontmatter(t *testing.T) {
	html, meta, err := NewParser().ParseWithFrontmatter([]byte("plain *text*"))
	require.NoError(t, err)

	assert.Empty(t, meta)
	assert.Contains(t, string(html), "<em>text</em>")
}
