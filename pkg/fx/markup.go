package fx

import (
	"html"
	"io"
	"sort"
)

// Content is anything that can be written inside an element.
type Content interface {
	Render(w io.Writer) error
}

// Text is escaped before it is written.
type Text string

func (t Text) Render(w io.Writer) error {
	_, err := io.WriteString(w, html.EscapeString(string(t)))
	return err
}

// HTML is written verbatim.
type HTML string

func (h HTML) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(h))
	return err
}

// Fragment renders its parts in order.
type Fragment []Content

func (f Fragment) Render(w io.Writer) error {
	for _, c := range f {
		if c == nil {
			continue
		}
		if err := c.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the element as a single div carrying its class, style and
// forwarded attributes, followed by its children. The div also always
// carries an id, generated when none was given, since that id is the
// element's handle in the document. Render captures the handle.
func (e *Element) Render(w io.Writer) error {
	e.handle = Handle(e.id)

	aw := &attrWriter{w: w}
	aw.raw("<div")
	aw.attr("id", e.id)
	aw.attr("class", e.Class())
	aw.attr("style", e.style)

	keys := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		if !ValidAttributeName(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		aw.attr(k, e.attrs[k])
	}
	aw.raw(">")
	if aw.err != nil {
		return aw.err
	}

	if err := Fragment(e.children).Render(w); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</div>")
	return err
}

type attrWriter struct {
	w   io.Writer
	err error
}

func (a *attrWriter) raw(s string) {
	if a.err != nil {
		return
	}
	_, a.err = io.WriteString(a.w, s)
}

func (a *attrWriter) attr(name, value string) {
	a.raw(" " + name + `="` + html.EscapeString(value) + `"`)
}
