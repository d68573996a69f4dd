// Package seoassist suggests SEO metadata for content documents. It prefers
// a Gemini call and degrades to a deterministic heuristic when no provider
// is configured or the call fails; heuristic responses carry Mock=true so
// the editor UI can say "smart analysis" instead of pretending it was AI.
package seoassist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"trustgate/internal/logger"
	"trustgate/models"
	"trustgate/parser"
)

// MinContentLength guards against burning generation calls on near-empty
// drafts. Measured on the HTML-stripped text.
const MinContentLength = 30

var ErrContentTooShort = errors.New("content too short for analysis")

// Suggestions are advisory metadata for a document. The caller applies them
// field by field; this package never touches the stores.
type Suggestions struct {
	Title           string   `json:"title,omitempty"`
	Slug            string   `json:"slug,omitempty"`
	Excerpt         string   `json:"excerpt,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Category        string   `json:"category,omitempty"`
	OgImageAlt      string   `json:"ogImageAlt,omitempty"`

	// Mock marks suggestions produced by the fallback heuristic.
	Mock bool `json:"_mock"`
}

// blogCategories is the allowed category vocabulary for posts.
var blogCategories = []string{
	"Threat Intelligence",
	"Compliance",
	"Product Updates",
	"Security Best Practices",
	"Industry News",
}

const systemInstruction = `
You are an SEO assistant for a security company's marketing site.
Given the title and plain text of a blog post or webinar description,
respond with a single valid JSON object with these keys:

1. title: An SEO-optimized title, at most 60 characters.
2. slug: A lowercase hyphenated slug derived from the title.
3. excerpt: A reader-facing summary, at most 160 characters.
4. metaDescription: A search-result description, at most 155 characters.
5. tags: 3-7 concrete keywords (technologies, standards, threats) mentioned
   in the text. No generic phrases, no duplicates.
6. category: Exactly one of ["Threat Intelligence", "Compliance",
   "Product Updates", "Security Best Practices", "Industry News"].
7. ogImageAlt: A one-sentence alt text for a social sharing image.

You MUST NOT wrap the JSON output in a markdown code block.
The response must contain ONLY the raw JSON string.
`

// Analyzer produces suggestions for one document class.
type Analyzer struct {
	model string
	// generate is swapped in tests; nil means "call Gemini".
	generate func(ctx context.Context, prompt string) (string, error)
}

func NewAnalyzer(model string) *Analyzer {
	return &Analyzer{model: model}
}

// Analyze returns metadata suggestions for the given title and rich-HTML
// content. ErrContentTooShort is returned before any provider call when the
// stripped content is under MinContentLength characters.
func (a *Analyzer) Analyze(ctx context.Context, title, content string, class models.DocumentClass) (*Suggestions, error) {
	text := parser.ExtractText(content)
	if len(text) < MinContentLength {
		return nil, ErrContentTooShort
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" && a.generate == nil {
		return a.fallback(title, text), nil
	}

	prompt := fmt.Sprintf("Document class: %s\nTitle: %s\n\n%s", class, title, text)
	raw, err := a.generateText(ctx, apiKey, prompt)
	if err != nil {
		logger.WarnWithFields("seo assist provider call failed, using fallback", logger.Fields{
			"error": err.Error(),
		})
		return a.fallback(title, text), nil
	}

	var s Suggestions
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		logger.WarnWithFields("seo assist returned non-JSON output, using fallback", logger.Fields{
			"error": err.Error(),
		})
		return a.fallback(title, text), nil
	}
	s.Mock = false
	if s.Slug != "" {
		s.Slug = models.Slugify(s.Slug)
	}
	return &s, nil
}

func (a *Analyzer) generateText(ctx context.Context, apiKey, prompt string) (string, error) {
	if a.generate != nil {
		return a.generate(ctx, prompt)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		a.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
	)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// fallback derives every suggestion mechanically from the title and text.
// Same input, same output, so the editor can rely on it offline.
func (a *Analyzer) fallback(title, text string) *Suggestions {
	return &Suggestions{
		Title:           truncate(title, 60),
		Slug:            models.Slugify(title),
		Excerpt:         truncate(text, 160),
		MetaDescription: truncate(text, 155),
		Tags:            keywordTags(text, 5),
		Category:        matchCategory(text),
		OgImageAlt:      truncate(title, 100),
		Mock:            true,
	}
}

// truncate caps s at max runes, preferring to break at a space past the
// midpoint. Cutting on runes keeps multibyte text valid UTF-8.
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := runes[:max]
	for i := max - 1; i > max/2; i-- {
		if cut[i] == ' ' {
			cut = cut[:i]
			break
		}
	}
	return string(cut)
}

// keywordTags picks the most frequent capitalized terms from the text,
// first-seen order breaking ties so the result is deterministic.
func keywordTags(text string, max int) []string {
	counts := map[string]int{}
	order := []string{}
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,;:!?()[]\"'")
		if len(word) < 3 || len(word) > 30 {
			continue
		}
		first := word[0]
		if first < 'A' || first > 'Z' {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	tags := make([]string, 0, max)
	for len(tags) < max {
		best := ""
		for _, w := range order {
			if counts[w] == 0 {
				continue
			}
			if best == "" || counts[w] > counts[best] {
				best = w
			}
		}
		if best == "" {
			break
		}
		counts[best] = 0
		tags = append(tags, best)
	}
	return tags
}

// matchCategory scans for vocabulary hints per category and defaults to
// Industry News when nothing matches.
func matchCategory(text string) string {
	lower := strings.ToLower(text)
	hints := map[string][]string{
		"Threat Intelligence":     {"threat", "malware", "ransomware", "breach", "attack"},
		"Compliance":              {"compliance", "gdpr", "hipaa", "soc 2", "audit", "regulation"},
		"Product Updates":         {"release", "launch", "feature", "update", "now available"},
		"Security Best Practices": {"best practice", "how to", "checklist", "harden", "protect"},
	}
	for _, cat := range blogCategories {
		for _, hint := range hints[cat] {
			if strings.Contains(lower, hint) {
				return cat
			}
		}
	}
	return "Industry News"
}
