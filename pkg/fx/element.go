package fx

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/charmbracelet/log"
)

// Handle identifies a rendered element in the host document. For HTML hosts
// it is the element id.
type Handle string

// Bridge applies a computed class and style to a live element. The host
// implements it; the element calls it after a completed render and does not
// look at the outcome beyond passing an error back to its caller.
type Bridge interface {
	ApplyAnimation(el Handle, class, style string) error
}

// BridgeFunc adapts a function to the Bridge interface.
type BridgeFunc func(el Handle, class, style string) error

func (f BridgeFunc) ApplyAnimation(el Handle, class, style string) error {
	return f(el, class, style)
}

// Discard is a Bridge that ignores every call.
var Discard Bridge = BridgeFunc(func(Handle, string, string) error { return nil })

// State is the position of an element in its render lifecycle.
type State int

const (
	// StateUnset means Configure has not been called yet.
	StateUnset State = iota
	// StateHidden waits for the first completed render.
	StateHidden
	// StateComputed has a full style that has not reached the bridge.
	StateComputed
	// StateApplied has handed its class and style to the bridge.
	StateApplied
)

func (s State) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StateHidden:
		return "hidden"
	case StateComputed:
		return "computed"
	case StateApplied:
		return "applied"
	}
	return "unknown"
}

// Element is an animated container. It is driven serially by its host:
// Configure whenever parameters change, Render to produce markup and
// AfterRender once the host has finished rendering.
type Element struct {
	id       string
	attrs    map[string]string
	children []Content
	bridge   Bridge

	cfg    Config
	state  State
	style  string
	handle Handle
}

// Option customizes a new Element.
type Option func(*Element)

// WithID sets the element id. Without it a random id is generated.
func WithID(id string) Option {
	return func(e *Element) {
		if id != "" {
			e.id = id
		}
	}
}

// WithAttributes forwards extra attributes onto the rendered element. An
// "id" entry is used as the element id; "class" and "style" are owned by the
// element and dropped, as is any name ValidAttributeName rejects.
func WithAttributes(attrs map[string]string) Option {
	return func(e *Element) {
		for k, v := range attrs {
			switch {
			case k == "id":
				if v != "" {
					e.id = v
				}
			case k == "class", k == "style":
			case !ValidAttributeName(k):
				log.Warn("dropping attribute with invalid name", "name", k)
			default:
				e.attrs[k] = v
			}
		}
	}
}

// ValidAttributeName reports whether name can be written as an HTML
// attribute name without quoting.
func ValidAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r >= 0x7f && r <= 0x9f, r == 0xfffd:
			return false
		case strings.ContainsRune("\"'<>/=&`", r):
			return false
		}
	}
	return true
}

// WithChildren sets the content rendered inside the element.
func WithChildren(children ...Content) Option {
	return func(e *Element) {
		e.children = append(e.children, children...)
	}
}

// New creates an element that reports to bridge. A nil bridge is replaced
// by Discard.
func New(bridge Bridge, opts ...Option) *Element {
	if bridge == nil {
		bridge = Discard
	}
	e := &Element{
		attrs:  map[string]string{},
		bridge: bridge,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.id == "" {
		e.id = randomID()
	}
	return e
}

func (e *Element) ID() string { return e.id }

func (e *Element) Config() Config { return e.cfg }

func (e *Element) State() State { return e.state }

func (e *Element) Style() string { return e.style }

// Handle is the reference captured by the last Render.
func (e *Element) Handle() Handle { return e.handle }

// Animating reports whether the element has reached ready to animate.
func (e *Element) Animating() bool {
	return e.state == StateComputed || e.state == StateApplied
}

func (e *Element) Class() string {
	return ComputeClass(e.cfg, e.Animating())
}

// Configure replaces the element's parameters and restarts its lifecycle.
func (e *Element) Configure(cfg Config) {
	e.cfg = cfg
	if cfg.RenderCompleteOnly {
		e.style = HiddenStyle
		e.state = StateHidden
	} else {
		e.style = ComputeStyle(cfg)
		e.state = StateComputed
	}
	log.Debug("element configured", "id", e.id, "kind", cfg.Kind, "state", e.state)
}

// AfterRender is called by the host once a render has completed. A hidden
// element computes its style on the first render and asks for another
// render. An element with a computed style hands it to the bridge exactly
// once. Bridge errors are returned as is.
func (e *Element) AfterRender(firstRender bool) (rerender bool, err error) {
	if firstRender && e.state == StateHidden {
		e.style = ComputeStyle(e.cfg)
		e.state = StateComputed
		rerender = true
	}

	if e.state != StateComputed {
		return rerender, nil
	}

	e.state = StateApplied
	class := e.Class()
	log.Debug("applying animation", "id", e.id, "class", class)
	return rerender, e.bridge.ApplyAnimation(e.handle, class, e.style)
}

func randomID() string {
	var b [6]byte
	_, _ = rand.Read(b[:])
	return "blazefx-" + hex.EncodeToString(b[:])
}
