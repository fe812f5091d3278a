// Package layout implements the constraint-based layout engine: a family of
// layout managers that compute child-control positions and sizes inside a
// container from declarative per-child constraints.
//
// # Overview
//
// A container owns an ordered list of controls and at most one layout
// manager. The manager answers two questions:
//
//   - [Layout.ComputeSize]: how big does the container want to be, given
//     optional width/height hints?
//   - [Layout.Layout]: given the container's current client area, where does
//     every visible child go?
//
// Five managers cover the usual arrangements:
//
//   - [FillLayout]: equal-size children in a single row or column
//   - [RowLayout]: children at their natural size, wrapping into rows
//   - [GridLayout]: an N-column grid with cell spanning and space grabbing
//   - [FormLayout]: edges attached to parent percentages or sibling edges
//   - [StackLayout]: one child fills the container, the rest are parked
//
// Per-child constraints travel as layout data ([GridData], [RowData],
// [FormData]) attached to the control via [Control.SetLayoutData]. A missing
// or mismatched record is never an error: the manager substitutes its
// documented defaults.
//
// # Hints
//
// Wherever a size hint is accepted, the sentinel [Default] (-1) means "no
// hint, use the natural size". A non-default hint is authoritative: the
// computed size returns it verbatim for that axis.
//
// # Coordinates
//
// All child bounds are written in the parent's local coordinate space. The
// container's client area supplies the origin and the available extent;
// managers never consult anything outside it.
//
// # Errors
//
// Only one condition aborts a pass: a cycle in a form layout's attachment
// graph, reported as [ErrCircularAttachment] from both entry points. Every
// other anomaly (missing data, zero children, default hints) degrades to a
// documented fallback and never raises.
//
// # Concurrency
//
// Layout computation is synchronous and runs on the calling goroutine. A
// manager instance belongs to exactly one container and keeps only its own
// cache state, so distinct containers can lay out in parallel; a single
// container must not be mutated during a pass.
package layout
