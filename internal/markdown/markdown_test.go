package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderEmphasisAndLinks(t *testing.T) {
	t.Parallel()

	out, err := New().Render("Check out [**unDraw**](https://undraw.co/) for illustrations.")
	require.NoError(t, err)
	require.Contains(t, out, "<strong>unDraw</strong>")
	require.Contains(t, out, `href="https://undraw.co/"`)
	require.Contains(t, out, `target="_blank"`)
	require.True(t, strings.HasPrefix(out, "<p>"))
}

func TestRenderStripsScripts(t *testing.T) {
	t.Parallel()

	out, err := New().Render("hello <script>alert(1)</script> **world**")
	require.NoError(t, err)
	require.NotContains(t, out, "<script")
	require.Contains(t, out, "<strong>world</strong>")
}
