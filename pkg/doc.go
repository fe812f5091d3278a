// Package pkg provides the core libraries for Sash widget layout.
//
// # Overview
//
// Sash computes pixel geometry for trees of abstract controls using
// SWT-style layout managers. A container delegates positioning to a
// pluggable manager; the manager reads per-child descriptors and writes
// bounds. The pkg directory is organized into five main areas:
//
//  1. [layout] - The five layout managers and their data descriptors
//  2. [widget] - The control tree (Box leaves, Composite containers)
//  3. [scene] - TOML scene manifests describing whole trees
//  4. [render] - Visual output (blueprint wireframes, attachment graphs)
//  5. [pipeline] - Orchestration (load → build → layout → render)
//
// # Architecture
//
// The typical data flow through Sash:
//
//	Scene Manifest (TOML)
//	         ↓
//	    [scene] package (parse + build the control tree)
//	         ↓
//	    [widget] package (Composite tree, recursive layout pass)
//	         ↓
//	    [layout] package (fill/row/grid/form/stack managers)
//	         ↓
//	    [render] package (blueprint + nodelink)
//	         ↓
//	    SVG/text/JSON/DOT output
//
// # Quick Start
//
// Build a tree by hand and lay it out:
//
//	import (
//	    "github.com/matzehuels/sash/pkg/geom"
//	    "github.com/matzehuels/sash/pkg/layout"
//	    "github.com/matzehuels/sash/pkg/widget"
//	)
//
//	// 1. Create the shell and give it a manager
//	shell := widget.NewComposite("shell")
//	shell.SetBounds(geom.Rect{W: 400, H: 300})
//	_ = shell.SetLayout(layout.NewGridLayout(2))
//
//	// 2. Add children
//	name := widget.NewBox("name")
//	field := widget.NewBox("field")
//	data := layout.NewGridData()
//	data.HorizontalAlignment = layout.Fill
//	data.GrabExcessHorizontalSpace = true
//	field.SetLayoutData(data)
//	shell.Add(name, field)
//
//	// 3. Run the layout pass
//	if err := shell.LayoutTree(false); err != nil {
//	    // cyclic attachments, bad descriptors, ...
//	}
//
// Or load the same tree from a manifest:
//
//	s, _ := scene.Load("dialog.toml")
//	tree, _ := s.Build()
//	_ = tree.Shell.LayoutTree(false)
//
// # Main Packages
//
// ## Layout
//
// [layout] - The managers: FillLayout (uniform tiling), RowLayout (flowing
// rows with wrap), GridLayout (columns with spanning and space grabbing),
// FormLayout (edge attachments resolved in dependency order), StackLayout
// (one child visible at a time). Each manager has a matching data
// descriptor type (RowData, GridData, FormData) read from the child's
// LayoutData.
//
// [geom] - Point and Rect primitives shared by every layer.
//
// [dag] - The directed dependency graph FormLayout builds over sibling
// attachments, with cycle detection and topological resolution order.
//
// ## Control Tree
//
// [widget] - Box (a leaf with a preferred size) and Composite (a container
// that owns a manager and children). Composite.LayoutTree runs the
// recursive top-down pass; Composite.ComputeSize answers bottom-up size
// queries with per-hint caching.
//
// ## Scenes
//
// [scene] - TOML manifests naming every control, its manager, and its
// descriptor. Load parses and validates; Build wires the tree and reports
// it as a Tree with name lookup.
//
// ## Visualization
//
// [render/blueprint] - Top-down wireframes of resolved geometry (SVG,
// terminal text, JSON).
//
// [render/nodelink] - Form attachment graphs as Graphviz DOT, with SVG and
// PNG rasterization.
//
// ## Infrastructure
//
// [pipeline] - The complete load → build → layout → render pipeline used
// by the CLI and the HTTP API, so both entry points behave identically.
//
// [httpapi] - A small HTTP service exposing the pipeline: POST a manifest,
// receive rendered artifacts.
//
// [observability] - Hooks invoked around every layout pass for timing and
// tracing.
//
// [buildinfo] - Version metadata stamped at build time.
//
// # Common Workflows
//
// Render a scene to multiple formats:
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "dialog.toml",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatJSON},
//	})
//
// Inspect a form container's attachment graph:
//
//	target, _ := tree.FormContainer("")
//	dot := nodelink.ToDOT(target, nodelink.Options{Detailed: true})
//
// Serve layouts over HTTP:
//
//	srv := httpapi.NewServer(httpapi.Config{Addr: ":8080"})
//	err := srv.ListenAndServe(ctx)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/layout
// [geom]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/geom
// [dag]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/dag
// [widget]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/widget
// [scene]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/render
// [render/blueprint]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/render/blueprint
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/pipeline
// [httpapi]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/httpapi
// [observability]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/sash/pkg/buildinfo
package pkg
