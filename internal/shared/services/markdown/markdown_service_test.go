package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownService_ToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	html, err := svc.ToHTMLSanitized("**importante** ver [ticket](https://example.com)")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>importante</strong>")
	assert.Contains(t, html, `href="https://example.com"`)
}

func TestMarkdownService_ToHTMLSanitized_RemovesScripts(t *testing.T) {
	svc := NewMarkdownService()

	// Goldmark drops the raw tags and keeps the inner text, so the script
	// body survives as inert text. Only the element itself must be gone.
	html, err := svc.ToHTMLSanitized("hola <script>alert(1)</script> mundo")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script")
	assert.Contains(t, html, "hola")
}

func TestMarkdownService_StripUnsafe(t *testing.T) {
	svc := NewMarkdownService()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "cliente reporta doble cobro", want: "cliente reporta doble cobro"},
		{name: "script tags removed", input: `antes <script>alert("x")</script> despues`, want: "antes  despues"},
		{name: "all markup removed", input: "<b>negrita</b> y <a href=\"http://x\">enlace</a>", want: "negrita y enlace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.StripUnsafe(tt.input))
		})
	}
}
