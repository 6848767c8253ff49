// Package fx attaches CSS animations to a wrapped element.
//
// An Element turns a Config into a class string and an inline style string,
// renders them onto a single div, and after the host reports a completed
// render hands the pair to a Bridge so the animation restarts on the live
// element. Elements configured with RenderCompleteOnly stay hidden until
// their first completed render.
package fx
