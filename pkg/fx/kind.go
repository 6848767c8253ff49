package fx

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names the keyframe set applied to an element. The lower-cased name is
// used as the CSS class next to the base animation class.
type Kind int

const (
	FadeIn Kind = iota
	FadeOut
	ZoomIn
	ZoomOut
	SlideIn
	SlideInLeft
	SlideInRight
	SlideInUp
	SlideInDown
	Bounce
	Pulse
	Shake
	Flip
	Rotate
)

var kindNames = [...]string{
	FadeIn:       "FadeIn",
	FadeOut:      "FadeOut",
	ZoomIn:       "ZoomIn",
	ZoomOut:      "ZoomOut",
	SlideIn:      "SlideIn",
	SlideInLeft:  "SlideInLeft",
	SlideInRight: "SlideInRight",
	SlideInUp:    "SlideInUp",
	SlideInDown:  "SlideInDown",
	Bounce:       "Bounce",
	Pulse:        "Pulse",
	Shake:        "Shake",
	Flip:         "Flip",
	Rotate:       "Rotate",
}

// Kinds returns every animation kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// String returns the enum name. Values outside the declared set print as
// their number.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return strconv.Itoa(int(k))
	}
	return kindNames[k]
}

// ClassName is the CSS class carrying the keyframes for k.
func (k Kind) ClassName() string {
	return strings.ToLower(k.String())
}

// ParseKind accepts the enum name or its kebab-case form, ignoring case:
// "FadeIn", "fadein" and "fade-in" all yield FadeIn.
func ParseKind(s string) (Kind, error) {
	key := normalizeName(s)
	for i, name := range kindNames {
		if normalizeName(name) == key {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown animation kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(kebab(k.String())), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// kebab turns "SlideInLeft" into "slide-in-left".
func kebab(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
