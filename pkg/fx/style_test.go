package fx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStyleReflectsParameters(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Kind:     FadeIn,
		Duration: 2 * time.Second,
		Delay:    time.Second,
		Easing:   EaseInOut,
		FillMode: FillForwards,
	}

	style := ComputeStyle(cfg)
	assert.Contains(t, style, "animation-duration: 2s;")
	assert.Contains(t, style, "animation-delay: 1s;")
	assert.Contains(t, style, "animation-timing-function: ease-in-out;")
	assert.Contains(t, style, "animation-fill-mode: forwards;")
	assert.Equal(t,
		"animation-duration: 2s; animation-delay: 1s; animation-timing-function: ease-in-out; animation-fill-mode: forwards; visibility: visible;",
		style)
}

func TestComputeStyleDefaults(t *testing.T) {
	t.Parallel()

	style := ComputeStyle(DefaultConfig(ZoomIn))
	assert.Equal(t,
		"animation-duration: 1s; animation-delay: 0s; animation-timing-function: ease-in; animation-fill-mode: both; visibility: visible;",
		style)
}

func TestComputeStyleSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{1500 * time.Millisecond, "1.5"},
		{250 * time.Millisecond, "0.25"},
		{90 * time.Second, "90"},
		{-time.Second, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, seconds(tt.in))
		})
	}
}

func TestEasingCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		easing Easing
		want   string
	}{
		{Ease, "ease"},
		{EaseIn, "ease-in"},
		{EaseOut, "ease-out"},
		{EaseInOut, "ease-in-out"},
		{Linear, "linear"},
		{StepStart, "step-start"},
		{StepEnd, "step-end"},
		{EaseOutSine, "cubic-bezier(0.61, 1, 0.88, 1)"},
		{EaseInOutQuad, "cubic-bezier(0.45, 0, 0.55, 1)"},
		{EaseInBack, "cubic-bezier(0.36, 0, 0.66, -0.56)"},
		{EaseInOutBack, "cubic-bezier(0.68, -0.6, 0.32, 1.6)"},
	}

	for _, tt := range tests {
		t.Run(tt.easing.String(), func(t *testing.T) {
			cfg := DefaultConfig(FadeIn)
			cfg.Easing = tt.easing
			assert.Contains(t, ComputeStyle(cfg), "animation-timing-function: "+tt.want+";")
		})
	}
}

func TestEasingUnmappedFallsBackToEase(t *testing.T) {
	t.Parallel()

	for _, e := range []Easing{EaseInElastic, EaseOutElastic, EaseInOutBounce, Easing(-1), Easing(999)} {
		assert.Equal(t, "ease", e.CSS(), e.String())
		assert.False(t, e.Mapped())
	}
}

func TestEasingTableIsWellFormed(t *testing.T) {
	t.Parallel()

	for _, e := range Easings() {
		css := e.CSS()
		if strings.HasPrefix(css, "cubic-bezier(") {
			require.True(t, strings.HasSuffix(css, ")"), "%s: %s", e, css)
			assert.Len(t, strings.Split(css, ","), 4, "%s: %s", e, css)
		}
	}
}

func TestFillModeCSS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", FillNone.CSS())
	assert.Equal(t, "forwards", FillForwards.CSS())
	assert.Equal(t, "backwards", FillBackwards.CSS())
	assert.Equal(t, "both", FillBoth.CSS())
	assert.Equal(t, "both", FillMode(7).CSS())
}

func TestComputeClass(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		idle := ComputeClass(Config{Kind: k}, false)
		assert.Equal(t, BaseClass, idle)

		active := ComputeClass(Config{Kind: k}, true)
		assert.True(t, strings.HasPrefix(active, BaseClass))
		assert.Equal(t, BaseClass+" "+strings.ToLower(k.String()), active)
	}

	assert.Equal(t, "blazefx-animation fadein", ComputeClass(Config{Kind: FadeIn}, true))
	assert.Equal(t, "blazefx-animation slideinleft", ComputeClass(Config{Kind: SlideInLeft}, true))
}

func TestComputeIsIdempotent(t *testing.T) {
	t.Parallel()

	cfg := Config{Kind: Bounce, Duration: 750 * time.Millisecond, Easing: EaseOutExpo, FillMode: FillBackwards}
	style, class := ComputeStyle(cfg), ComputeClass(cfg, true)
	for i := 0; i < 10; i++ {
		assert.Equal(t, style, ComputeStyle(cfg))
		assert.Equal(t, class, ComputeClass(cfg, true))
	}
}
