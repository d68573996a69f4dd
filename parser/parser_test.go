package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"trustgate/parser"
)

const articleHTML = `<html><body>
<article>
<h1>Hardening your SSO configuration</h1>
<p>Single sign-on concentrates risk: one misconfigured rule exposes every
connected application. This post walks through session lifetimes, token
audience checks and the settings we see misused most often in real audits.</p>
<p>Start with audience restriction. Tokens minted for one application must
not be replayable against another, which is exactly what happens when every
app shares the default audience value.</p>
</article>
</body></html>`

func TestExtractTextPrefersReadableBody(t *testing.T) {
	text := parser.ExtractText(articleHTML)

	assert.NotEmpty(t, text)
	assert.Contains(t, text, "Single sign-on concentrates risk")
	assert.NotContains(t, text, "<p>")
}

func TestExtractTextFallsBackOnFragments(t *testing.T) {
	fragment := `<p>Short editor note about <strong>patching</strong> cadence.</p>`

	text := parser.ExtractText(fragment)
	assert.Contains(t, text, "Short editor note about")
	assert.Contains(t, text, "patching")
}

func TestFlattenHTMLJoinsTextNodes(t *testing.T) {
	flattened := parser.FlattenHTML(`<div><p>one</p><p>two</p><span>three</span></div>`)
	assert.Equal(t, "one two three", flattened)
}

func TestFlattenHTMLSurvivesMalformedInput(t *testing.T) {
	flattened := parser.FlattenHTML(`<p>unclosed <b>bold`)
	assert.True(t, strings.Contains(flattened, "unclosed"))
	assert.True(t, strings.Contains(flattened, "bold"))
}

func TestExtractWithTrafilatura(t *testing.T) {
	extracted, err := parser.ExtractWithTrafilatura(articleHTML)
	assert.NoError(t, err)
	assert.Contains(t, extracted.PlainText, "audience restriction")
}

func TestExtractWithReadabilityKeepsTopImage(t *testing.T) {
	withImage := `<html><head>
<meta property="og:image" content="https://cdn.example.com/cover.png">
</head><body><article><h1>Title</h1>
<p>Enough body text to let the extractor treat this as a real article and
not an empty shell, repeated for good measure. Enough body text to let the
extractor treat this as a real article.</p>
</article></body></html>`

	extracted, err := parser.ExtractWithReadability(withImage)
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cover.png", extracted.TopImage)
}
