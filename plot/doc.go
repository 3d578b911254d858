// Package plot defines the drawing surface the overlay code talks to and
// the artists it places on it.
//
// A Surface owns axis limits, a data-to-screen transform and a redraw
// trigger. Artists (marker series and text labels) are created by callers,
// registered with the Surface and mutated in place; they are never
// re-created to change what is displayed. Axes is an in-memory Surface with
// a linear transform that hosts render from.
package plot
