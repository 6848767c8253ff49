package fx

import (
	"fmt"
	"strconv"
	"strings"
)

// FillMode controls which keyframe styles apply outside the active interval.
type FillMode int

const (
	// FillNone applies no keyframe styles before or after the animation.
	FillNone FillMode = iota
	// FillForwards keeps the last keyframe after the animation ends.
	FillForwards
	// FillBackwards applies the first keyframe during the delay.
	FillBackwards
	// FillBoth combines FillForwards and FillBackwards.
	FillBoth
)

var fillModeNames = [...]string{
	FillNone:      "None",
	FillForwards:  "Forwards",
	FillBackwards: "Backwards",
	FillBoth:      "Both",
}

func (f FillMode) String() string {
	if f < 0 || int(f) >= len(fillModeNames) {
		return strconv.Itoa(int(f))
	}
	return fillModeNames[f]
}

// CSS is the animation-fill-mode value. Undeclared values fall back to "both".
func (f FillMode) CSS() string {
	if f < 0 || int(f) >= len(fillModeNames) {
		return "both"
	}
	return strings.ToLower(fillModeNames[f])
}

func ParseFillMode(s string) (FillMode, error) {
	key := normalizeName(s)
	for i, name := range fillModeNames {
		if normalizeName(name) == key {
			return FillMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fill mode %q", s)
}

func (f FillMode) MarshalText() ([]byte, error) {
	return []byte(f.CSS()), nil
}

func (f *FillMode) UnmarshalText(text []byte) error {
	v, err := ParseFillMode(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
