// Package curve samples easings for terminal previews.
//
// CSS keywords have no closed form in the ease package, so ease, ease-in,
// ease-out and ease-in-out are drawn with the nearest polynomial curve.
// Everything else uses the matching ease function.
package curve

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matjam/blazefx/pkg/fx"
)

// Func maps progress in [0, 1] to eased progress.
type Func func(t float64) float64

var funcs = map[fx.Easing]Func{
	fx.Ease:      ease.InOutSine,
	fx.EaseIn:    ease.InQuad,
	fx.EaseOut:   ease.OutQuad,
	fx.EaseInOut: ease.InOutQuad,
	fx.Linear:    ease.Linear,
	fx.StepStart: stepStart,
	fx.StepEnd:   stepEnd,

	fx.EaseInSine:    ease.InSine,
	fx.EaseOutSine:   ease.OutSine,
	fx.EaseInOutSine: ease.InOutSine,

	fx.EaseInQuad:    ease.InQuad,
	fx.EaseOutQuad:   ease.OutQuad,
	fx.EaseInOutQuad: ease.InOutQuad,

	fx.EaseInCubic:    ease.InCubic,
	fx.EaseOutCubic:   ease.OutCubic,
	fx.EaseInOutCubic: ease.InOutCubic,

	fx.EaseInQuart:    ease.InQuart,
	fx.EaseOutQuart:   ease.OutQuart,
	fx.EaseInOutQuart: ease.InOutQuart,

	fx.EaseInQuint:    ease.InQuint,
	fx.EaseOutQuint:   ease.OutQuint,
	fx.EaseInOutQuint: ease.InOutQuint,

	fx.EaseInExpo:    ease.InExpo,
	fx.EaseOutExpo:   ease.OutExpo,
	fx.EaseInOutExpo: ease.InOutExpo,

	fx.EaseInCirc:    ease.InCirc,
	fx.EaseOutCirc:   ease.OutCirc,
	fx.EaseInOutCirc: ease.InOutCirc,

	fx.EaseInBack:    ease.InBack,
	fx.EaseOutBack:   ease.OutBack,
	fx.EaseInOutBack: ease.InOutBack,

	fx.EaseInElastic:    ease.InElastic,
	fx.EaseOutElastic:   ease.OutElastic,
	fx.EaseInOutElastic: ease.InOutElastic,

	fx.EaseInBounce:    ease.InBounce,
	fx.EaseOutBounce:   ease.OutBounce,
	fx.EaseInOutBounce: ease.InOutBounce,
}

func stepStart(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return 1
}

func stepEnd(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 0
}

// For returns the curve drawn for e. Undeclared easings draw as "ease",
// the same fallback the CSS mapping uses.
func For(e fx.Easing) Func {
	if f, ok := funcs[e]; ok {
		return f
	}
	return funcs[fx.Ease]
}

// Sample evaluates e at n evenly spaced points from 0 to 1 inclusive.
func Sample(e fx.Easing, n int) []float64 {
	if n < 2 {
		n = 2
	}
	f := For(e)
	out := make([]float64, n)
	for i := range out {
		out[i] = f(float64(i) / float64(n-1))
	}
	return out
}

var (
	gradientFrom, _ = colorful.Hex("#00afff")
	gradientTo, _   = colorful.Hex("#ff5f87")
)

// Plot draws e as a width x height character chart. Columns are coloured
// along an HCL blend so the direction of travel is visible.
func Plot(e fx.Easing, width, height int) string {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}

	samples := Sample(e, width)
	lo, hi := 0.0, 1.0
	for _, v := range samples {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	rows := make([][]string, height)
	for r := range rows {
		rows[r] = make([]string, width)
		for c := range rows[r] {
			rows[r][c] = " "
		}
	}

	for c, v := range samples {
		row := int(math.Round((v - lo) / (hi - lo) * float64(height-1)))
		color := gradientFrom.BlendHcl(gradientTo, float64(c)/float64(width-1)).Clamped()
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex()))
		rows[height-1-row][c] = style.Render("•")
	}

	lines := make([]string, height)
	for r, cells := range rows {
		lines[r] = strings.TrimRight("│"+strings.Join(cells, ""), " ")
	}
	return strings.Join(lines, "\n") + "\n└" + strings.Repeat("─", width)
}
