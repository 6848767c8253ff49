package fx

import (
	"fmt"
	"strconv"
)

// Easing selects the animation-timing-function of an element.
type Easing int

const (
	Ease Easing = iota
	EaseIn
	EaseOut
	EaseInOut
	Linear
	StepStart
	StepEnd
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
)

// DefaultTimingFunction is used for any easing without a table entry.
const DefaultTimingFunction = "ease"

var easingNames = [...]string{
	Ease:             "Ease",
	EaseIn:           "EaseIn",
	EaseOut:          "EaseOut",
	EaseInOut:        "EaseInOut",
	Linear:           "Linear",
	StepStart:        "StepStart",
	StepEnd:          "StepEnd",
	EaseInSine:       "EaseInSine",
	EaseOutSine:      "EaseOutSine",
	EaseInOutSine:    "EaseInOutSine",
	EaseInQuad:       "EaseInQuad",
	EaseOutQuad:      "EaseOutQuad",
	EaseInOutQuad:    "EaseInOutQuad",
	EaseInCubic:      "EaseInCubic",
	EaseOutCubic:     "EaseOutCubic",
	EaseInOutCubic:   "EaseInOutCubic",
	EaseInQuart:      "EaseInQuart",
	EaseOutQuart:     "EaseOutQuart",
	EaseInOutQuart:   "EaseInOutQuart",
	EaseInQuint:      "EaseInQuint",
	EaseOutQuint:     "EaseOutQuint",
	EaseInOutQuint:   "EaseInOutQuint",
	EaseInExpo:       "EaseInExpo",
	EaseOutExpo:      "EaseOutExpo",
	EaseInOutExpo:    "EaseInOutExpo",
	EaseInCirc:       "EaseInCirc",
	EaseOutCirc:      "EaseOutCirc",
	EaseInOutCirc:    "EaseInOutCirc",
	EaseInBack:       "EaseInBack",
	EaseOutBack:      "EaseOutBack",
	EaseInOutBack:    "EaseInOutBack",
	EaseInElastic:    "EaseInElastic",
	EaseOutElastic:   "EaseOutElastic",
	EaseInOutElastic: "EaseInOutElastic",
	EaseInBounce:     "EaseInBounce",
	EaseOutBounce:    "EaseOutBounce",
	EaseInOutBounce:  "EaseInOutBounce",
}

// timingFunctions maps easings to CSS. Elastic and bounce curves overshoot
// more than once and have no single cubic-bezier form, so they are absent
// and resolve to DefaultTimingFunction.
var timingFunctions = map[Easing]string{
	Ease:      "ease",
	EaseIn:    "ease-in",
	EaseOut:   "ease-out",
	EaseInOut: "ease-in-out",
	Linear:    "linear",
	StepStart: "step-start",
	StepEnd:   "step-end",

	EaseInSine:    "cubic-bezier(0.12, 0, 0.39, 0)",
	EaseOutSine:   "cubic-bezier(0.61, 1, 0.88, 1)",
	EaseInOutSine: "cubic-bezier(0.37, 0, 0.63, 1)",

	EaseInQuad:    "cubic-bezier(0.11, 0, 0.5, 0)",
	EaseOutQuad:   "cubic-bezier(0.5, 1, 0.89, 1)",
	EaseInOutQuad: "cubic-bezier(0.45, 0, 0.55, 1)",

	EaseInCubic:    "cubic-bezier(0.32, 0, 0.67, 0)",
	EaseOutCubic:   "cubic-bezier(0.33, 1, 0.68, 1)",
	EaseInOutCubic: "cubic-bezier(0.65, 0, 0.35, 1)",

	EaseInQuart:    "cubic-bezier(0.5, 0, 0.75, 0)",
	EaseOutQuart:   "cubic-bezier(0.25, 1, 0.5, 1)",
	EaseInOutQuart: "cubic-bezier(0.76, 0, 0.24, 1)",

	EaseInQuint:    "cubic-bezier(0.64, 0, 0.78, 0)",
	EaseOutQuint:   "cubic-bezier(0.22, 1, 0.36, 1)",
	EaseInOutQuint: "cubic-bezier(0.83, 0, 0.17, 1)",

	EaseInExpo:    "cubic-bezier(0.7, 0, 0.84, 0)",
	EaseOutExpo:   "cubic-bezier(0.16, 1, 0.3, 1)",
	EaseInOutExpo: "cubic-bezier(0.87, 0, 0.13, 1)",

	EaseInCirc:    "cubic-bezier(0.55, 0, 1, 0.45)",
	EaseOutCirc:   "cubic-bezier(0, 0.55, 0.45, 1)",
	EaseInOutCirc: "cubic-bezier(0.85, 0, 0.15, 1)",

	EaseInBack:    "cubic-bezier(0.36, 0, 0.66, -0.56)",
	EaseOutBack:   "cubic-bezier(0.34, 1.56, 0.64, 1)",
	EaseInOutBack: "cubic-bezier(0.68, -0.6, 0.32, 1.6)",
}

// Easings returns every easing in declaration order.
func Easings() []Easing {
	out := make([]Easing, len(easingNames))
	for i := range easingNames {
		out[i] = Easing(i)
	}
	return out
}

func (e Easing) String() string {
	if e < 0 || int(e) >= len(easingNames) {
		return strconv.Itoa(int(e))
	}
	return easingNames[e]
}

// CSS returns the animation-timing-function value for e. Every value,
// including ones outside the declared set, yields a usable string.
func (e Easing) CSS() string {
	if css, ok := timingFunctions[e]; ok {
		return css
	}
	return DefaultTimingFunction
}

// Mapped reports whether e has its own entry in the timing function table.
func (e Easing) Mapped() bool {
	_, ok := timingFunctions[e]
	return ok
}

// ParseEasing accepts enum names and kebab-case ("ease-in-out-back").
func ParseEasing(s string) (Easing, error) {
	key := normalizeName(s)
	for i, name := range easingNames {
		if normalizeName(name) == key {
			return Easing(i), nil
		}
	}
	return 0, fmt.Errorf("unknown easing %q", s)
}

func (e Easing) MarshalText() ([]byte, error) {
	return []byte(kebab(e.String())), nil
}

func (e *Easing) UnmarshalText(text []byte) error {
	v, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
