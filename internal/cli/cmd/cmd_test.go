package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecFromFlags(t *testing.T) {
	cmd := NewAnimateCmd()
	require.NoError(t, cmd.Flags().Parse([]string{
		"--kind", "zoom-in",
		"--duration", "2",
		"--easing", "ease-in-out-back",
		"--render-complete-only",
		"--attr", "role=note",
		"--attr", "data-x=a=b",
	}))

	spec, err := specFromFlags("card", cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, "card", spec.ID)
	assert.Equal(t, "zoom-in", spec.Kind)
	require.NotNil(t, spec.Duration)
	assert.Equal(t, 2.0, *spec.Duration)
	assert.Nil(t, spec.Delay, "unset delay defers to the daemon defaults")
	assert.Equal(t, "ease-in-out-back", spec.Easing)
	assert.True(t, spec.RenderCompleteOnly)
	assert.Equal(t, map[string]string{"role": "note", "data-x": "a=b"}, spec.Attributes)
	assert.NoError(t, spec.Validate())
}

func TestSpecFromFlagsRejectsBadAttribute(t *testing.T) {
	cmd := NewAnimateCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--attr", "novalue"}))

	_, err := specFromFlags("x", cmd.Flags())
	assert.Error(t, err)
}

func TestEasingsCommand(t *testing.T) {
	cmd := NewEasingsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "ease-in-out-back")
	assert.Contains(t, text, "cubic-bezier(0.68, -0.6, 0.32, 1.6)")
	assert.Contains(t, text, "(fallback)")
}

func TestEasingsCommandKinds(t *testing.T) {
	cmd := NewEasingsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--kinds"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "slide-in-left")
	assert.Contains(t, out.String(), "blazefx-animation slideinleft")
}

func TestCurveCommand(t *testing.T) {
	cmd := NewCurveCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"ease-out-bounce", "--width", "30", "--height", "6"})
	require.NoError(t, cmd.Execute())

	assert.True(t, strings.HasPrefix(out.String(), "EaseOutBounce  ease"))
	assert.Equal(t, 30, strings.Count(out.String(), "•"))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "page.yaml")
	outPath := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(pagePath, []byte("title: Demo\nelements:\n  - id: hero\n    kind: fade-in\n"), 0o644))

	cmd := NewRenderCmd()
	cmd.SetArgs([]string{pagePath, "--output", outPath, "--inline"})
	require.NoError(t, cmd.Execute())

	html, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<title>Demo</title>")
	assert.Contains(t, string(html), `<div id="hero" class="blazefx-animation fadein"`)
	assert.Contains(t, string(html), "@keyframes blazefx-fadein")
}
