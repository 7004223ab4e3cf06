package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Engine names accepted by configuration and the --engine flag.
const (
	EngineMarkdownish = "markdownish"
	EngineGoldmark    = "goldmark"
)

// Renderer turns description text into an HTML fragment.
type Renderer interface {
	Render(text string) (string, error)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(string) (string, error)

func (f RendererFunc) Render(text string) (string, error) { return f(text) }

// NewRenderer returns the renderer registered under name. An empty name
// selects markdownish.
func NewRenderer(name string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineMarkdownish:
		return RendererFunc(MarkdownishString), nil
	case EngineGoldmark:
		return newGoldmarkRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown render engine %q (want %s|%s)", name, EngineMarkdownish, EngineGoldmark)
	}
}

type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer builds a CommonMark renderer with GFM extensions.
// Raw HTML is passed through since descriptions are trusted content.
func newGoldmarkRenderer() *goldmarkRenderer {
	return &goldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (g *goldmarkRenderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(strings.TrimSpace(text)), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
