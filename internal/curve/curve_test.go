package curve

import (
	"strings"
	"testing"

	"github.com/matjam/blazefx/pkg/fx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryEasingHasACurve(t *testing.T) {
	t.Parallel()

	for _, e := range fx.Easings() {
		_, ok := funcs[e]
		assert.True(t, ok, e.String())
	}
}

func TestSampleEndpoints(t *testing.T) {
	t.Parallel()

	for _, e := range fx.Easings() {
		s := Sample(e, 11)
		require.Len(t, s, 11)
		assert.InDelta(t, 0, s[0], 0.01, e.String())
		assert.InDelta(t, 1, s[10], 0.01, e.String())
	}
}

func TestSampleShapes(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, Sample(fx.Linear, 3)[1], 1e-9)
	assert.Less(t, Sample(fx.EaseInCubic, 3)[1], 0.5)
	assert.Greater(t, Sample(fx.EaseOutCubic, 3)[1], 0.5)

	back := Sample(fx.EaseInBack, 21)
	assert.Less(t, back[5], 0.0, "ease-in-back dips below zero")

	steps := Sample(fx.StepEnd, 5)
	assert.Equal(t, []float64{0, 0, 0, 0, 1}, steps)
	steps = Sample(fx.StepStart, 5)
	assert.Equal(t, []float64{0, 1, 1, 1, 1}, steps)
}

func TestForUnknownEasing(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, For(fx.Ease)(0.3), For(fx.Easing(500))(0.3), 1e-12)
	assert.Len(t, Sample(fx.Linear, 0), 2)
}

func TestPlot(t *testing.T) {
	t.Parallel()

	out := Plot(fx.Linear, 20, 8)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "└"+strings.Repeat("─", 20), lines[8])
	assert.Equal(t, 20, strings.Count(out, "•"))
	for _, l := range lines[:8] {
		assert.True(t, strings.HasPrefix(l, "│"))
	}
}
