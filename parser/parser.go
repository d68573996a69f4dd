// Package parser turns editor-authored HTML into plain text for SEO
// analysis and excerpt derivation.
package parser

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ExtractedContent is the text view of a rich-HTML document body.
type ExtractedContent struct {
	PlainText string
	TopImage  string
}

// ExtractText returns the plain text of an HTML fragment. Readability is
// tried first, then trafilatura; short admin-editor fragments often lack
// enough structure for either, so the raw node walk is the last resort
// rather than an error.
func ExtractText(htmlStr string) string {
	if extracted, err := ExtractWithReadability(htmlStr); err == nil && strings.TrimSpace(extracted.PlainText) != "" {
		return strings.TrimSpace(extracted.PlainText)
	}
	if extracted, err := ExtractWithTrafilatura(htmlStr); err == nil && strings.TrimSpace(extracted.PlainText) != "" {
		return strings.TrimSpace(extracted.PlainText)
	}
	return strings.TrimSpace(FlattenHTML(htmlStr))
}

// ExtractWithReadability parses the fragment with go-readability.
func ExtractWithReadability(htmlStr string) (*ExtractedContent, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ExtractedContent{
		PlainText: article.TextContent,
		TopImage:  article.Image,
	}, nil
}

// ExtractWithTrafilatura is the alternate extractor; it is stricter about
// boilerplate and keeps image metadata.
func ExtractWithTrafilatura(htmlStr string) (*ExtractedContent, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}
	return &ExtractedContent{
		PlainText: article.ContentText,
		TopImage:  article.Metadata.Image,
	}, nil
}

// FlattenHTML concatenates every text node, whitespace-separated. It never
// fails: unparseable input degrades to whatever text nodes were recovered.
func FlattenHTML(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}
