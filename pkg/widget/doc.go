// Package widget provides the minimal control tree the layout engine works
// on: [Box], a leaf with a fixed preferred size, and [Composite], a container
// that owns an ordered child list and a layout manager.
//
// Both types satisfy the contracts in [github.com/matzehuels/sash/pkg/layout]:
// Box is a [layout.Control], Composite is a [layout.Container]. They carry no
// native resources and render nothing; bounds, visibility, and layout data
// are plain in-memory state, which is exactly the surface the engine needs.
//
// # Identity
//
// Every control has a stable string ID, unique within its tree. Pass an
// explicit name to the constructors, or the empty string to get a generated
// UUID. IDs never change after construction; scenes, renderers, and the
// attachment graph all key on them.
//
// # Layout flow
//
// A Composite re-runs its manager through [Composite.DoLayout]. Mutations
// that invalidate memoized sizing (child list changes, resizes, manager
// reassignment) mark the composite dirty, and the next pass flushes the
// manager's cache automatically. [Composite.LayoutTree] runs a full top-down
// pass: the root positions its children first, then each child composite
// lays out its own subtree within its fresh bounds.
package widget
