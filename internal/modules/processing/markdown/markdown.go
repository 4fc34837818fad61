// Package markdown renders post bodies and derives plain text for word
// counting.
package markdown

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Render converts markdown to HTML. On conversion failure the raw text
// is returned escaped rather than dropped.
func Render(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	var out bytes.Buffer
	if err := engine.Convert([]byte(trimmed), &out); err != nil {
		return html.EscapeString(trimmed)
	}
	return out.String()
}

// StripMarkup reduces a markdown or HTML body to plain text: the body
// is rendered first so markdown syntax does not leak into word counts,
// then all tags are removed and entities unescaped.
func StripMarkup(text string) string {
	rendered := Render(text)
	plain := tagPattern.ReplaceAllString(rendered, " ")
	return strings.TrimSpace(html.UnescapeString(plain))
}

// WordCount counts whitespace-separated words in the stripped body.
func WordCount(text string) int {
	return len(strings.Fields(StripMarkup(text)))
}
