package page

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/blazefx"
	"github.com/matjam/blazefx/internal/types"
	"github.com/matjam/blazefx/pkg/fx"
	"gopkg.in/yaml.v3"
)

// Page is a YAML page file: a title and the elements to render.
type Page struct {
	Title        string              `yaml:"title"`
	InlineAssets bool                `yaml:"inline_assets"`
	Defaults     *types.Defaults     `yaml:"defaults"`
	Elements     []types.ElementSpec `yaml:"elements"`
}

// Load reads and validates a page file.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	if p.Defaults != nil {
		if err := p.Defaults.Validate(); err != nil {
			return nil, fmt.Errorf("page defaults: %w", err)
		}
	}

	seen := map[string]bool{}
	for i, spec := range p.Elements {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("elements[%d]: %w", i, err)
		}
		if seen[spec.ID] {
			return nil, fmt.Errorf("elements[%d]: duplicate id %q", i, spec.ID)
		}
		seen[spec.ID] = true
	}
	return &p, nil
}

// ScriptBridge records bridge calls as blazeFX.applyAnimation statements
// to run once the document has loaded.
type ScriptBridge struct {
	calls []string
}

func (b *ScriptBridge) ApplyAnimation(el fx.Handle, class, style string) error {
	b.calls = append(b.calls, fmt.Sprintf("blazeFX.applyAnimation(document.getElementById(%s), %s, %s);",
		quote(string(el)), quote(class), quote(style)))
	return nil
}

// Script returns every recorded call, one per line.
func (b *ScriptBridge) Script() string {
	return strings.Join(b.calls, "\n")
}

func (b *ScriptBridge) Len() int {
	return len(b.calls)
}

// quote produces a JavaScript string literal that is also safe inside a
// script element.
func quote(s string) string {
	q, _ := json.Marshal(s)
	return strings.ReplaceAll(string(q), "</", `<\/`)
}

// Render writes p as a complete HTML document. Every element goes through
// its first render pass here, so the trailing script applies the same
// class and style the browser would have received from a live host.
func Render(w io.Writer, p *Page, defaults types.Defaults) error {
	if p.Defaults != nil {
		defaults = *p.Defaults
	}

	bridge := &ScriptBridge{}
	var body strings.Builder
	for _, spec := range p.Elements {
		el, err := spec.Element(bridge, defaults)
		if err != nil {
			return fmt.Errorf("element %q: %w", spec.ID, err)
		}

		var first strings.Builder
		if err := el.Render(&first); err != nil {
			return err
		}
		rerender, err := el.AfterRender(true)
		if err != nil {
			return fmt.Errorf("element %q: %w", spec.ID, err)
		}

		if rerender {
			log.Debugf("element %s rendered again after its first render", spec.ID)
			if err := el.Render(&body); err != nil {
				return err
			}
		} else {
			body.WriteString(first.String())
		}
		body.WriteByte('\n')
	}

	return WriteDocument(w, Document{
		Title:        p.Title,
		InlineAssets: p.InlineAssets,
		Body:         body.String(),
		Script:       bridge.Script(),
	})
}

// Document is the HTML shell around rendered elements.
type Document struct {
	Title        string
	InlineAssets bool
	// Stage marks the body container as the live preview stage.
	Stage  bool
	Body   string
	Script string
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .InlineAssets}}
<style>{{.Stylesheet}}</style>
<script>{{.ScriptAsset}}</script>
{{- else}}
<link rel="stylesheet" href="/blazefx.css">
<script src="/blazefx.js" defer></script>
{{- end}}
</head>
<body>
<main{{if .Stage}} id="blazefx-stage"{{end}}>
{{.Body}}</main>
{{- if .Script}}
<script>
window.addEventListener("DOMContentLoaded", function () {
{{.Script}}
});
</script>
{{- end}}
</body>
</html>
`))

// WriteDocument renders doc. Body and Script are trusted output of this
// package and the fx renderer.
func WriteDocument(w io.Writer, doc Document) error {
	title := doc.Title
	if title == "" {
		title = "blazefx"
	}

	return documentTemplate.Execute(w, map[string]any{
		"Title":        title,
		"InlineAssets": doc.InlineAssets,
		"Stage":        doc.Stage,
		"Stylesheet":   template.CSS(blazefx.Stylesheet),
		"ScriptAsset":  template.JS(blazefx.Script),
		"Body":         template.HTML(doc.Body),
		"Script":       template.JS(doc.Script),
	})
}
