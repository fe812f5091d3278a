// Package pipeline provides the scene processing pipeline for Sash.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI, API, and playground components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse a scene manifest and build the control tree
//  2. Layout: Apply frame overrides and run a full layout pass
//  3. Render: Generate output in various formats (SVG, JSON, text, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Path:    "examples/scenes/login.toml",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	tree, err := runner.Load(opts)
//
//	// Re-layout an existing tree
//	err = runner.Relayout(tree, opts)
//
//	// Render an existing tree
//	artifacts, err := runner.Render(tree, opts)
package pipeline

import (
	"fmt"
	"time"

	"github.com/matzehuels/sash/pkg/scene"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatText = "text"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatText: true,
	FormatDOT:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the scene pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one of Path or Source must be set.
	Path   string `json:"path,omitempty"`   // Scene manifest file
	Source string `json:"source,omitempty"` // Inline manifest content

	// Layout options
	Width      int  `json:"width,omitempty"`  // Override the shell width
	Height     int  `json:"height,omitempty"` // Override the shell height
	FlushCache bool `json:"flush_cache,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Labels     bool     `json:"labels,omitempty"` // Draw control names in SVG output
	Scale      float64  `json:"scale,omitempty"`  // SVG coordinate scale factor
	CellWidth  int      `json:"cell_width,omitempty"`
	CellHeight int      `json:"cell_height,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"` // Annotate DOT output with resolved bounds
	Target     string   `json:"target,omitempty"`   // Container for DOT output (default: first form container)

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the built control tree with final bounds.
	Tree *scene.Tree

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ControlCount int
	LoadTime     time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, json, text, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Path == "" && o.Source == "" {
		return fmt.Errorf("path or source is required")
	}
	if o.Path != "" && o.Source != "" {
		return fmt.Errorf("path and source are mutually exclusive")
	}
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("width and height must not be negative")
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	// Render defaults
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}

	o.validated = true
	return nil
}
