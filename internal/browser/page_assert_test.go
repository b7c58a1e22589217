package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleText_SkipsScriptsAndStyles(t *testing.T) {
	doc := `<html>
		<head><title>CollabHub</title><style>.x{color:red}</style></head>
		<body>
			<script>window.token = "secret";</script>
			<h1>My  Profile</h1>
			<span class="skill-chip">Go <em>advanced</em></span>
			<noscript>Enable JavaScript</noscript>
		</body>
	</html>`

	text, err := VisibleText(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Contains(t, text, "My Profile")
	assert.Contains(t, text, "Go advanced")
	assert.NotContains(t, text, "secret")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "Enable JavaScript")
	assert.NotContains(t, text, "CollabHub")
}

func TestVisibleText_CollapsesWhitespace(t *testing.T) {
	doc := "<p>Application\n\n   submitted\t successfully</p>"

	text, err := VisibleText(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Application submitted successfully", text)
}

func TestVisibleText_ToleratesFragments(t *testing.T) {
	// html.Parse repairs fragments; asserts should still work on partial
	// markup captured mid-render.
	text, err := VisibleText(strings.NewReader("<div><span>3 unread"))
	require.NoError(t, err)
	assert.Equal(t, "3 unread", text)
}
