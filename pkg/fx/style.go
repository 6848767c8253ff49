package fx

import (
	"strconv"
	"strings"
	"time"
)

// BaseClass is carried by every animated element, animating or not.
const BaseClass = "blazefx-animation"

// HiddenStyle is the inline style of an element that waits for its first
// completed render before animating.
const HiddenStyle = "visibility: hidden;"

// Config is the set of parameters for one render of an element.
type Config struct {
	Kind     Kind
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
	FillMode FillMode

	// RenderCompleteOnly keeps the element hidden until the host reports
	// its first completed render.
	RenderCompleteOnly bool
}

// DefaultConfig returns a one second ease-in animation with fill mode both.
func DefaultConfig(kind Kind) Config {
	return Config{
		Kind:     kind,
		Duration: time.Second,
		Easing:   EaseIn,
		FillMode: FillBoth,
	}
}

// ComputeStyle builds the inline animation style for cfg. The declaration
// order is fixed.
func ComputeStyle(cfg Config) string {
	var b strings.Builder
	b.WriteString("animation-duration: ")
	b.WriteString(seconds(cfg.Duration))
	b.WriteString("s; animation-delay: ")
	b.WriteString(seconds(cfg.Delay))
	b.WriteString("s; animation-timing-function: ")
	b.WriteString(cfg.Easing.CSS())
	b.WriteString("; animation-fill-mode: ")
	b.WriteString(cfg.FillMode.CSS())
	b.WriteString("; visibility: visible;")
	return b.String()
}

// ComputeClass returns BaseClass, followed by the kind class once the
// element is ready to animate.
func ComputeClass(cfg Config, animating bool) string {
	if !animating {
		return BaseClass
	}
	return BaseClass + " " + cfg.Kind.ClassName()
}

// seconds formats d in the shortest decimal form: 2s -> "2", 1500ms -> "1.5".
func seconds(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
