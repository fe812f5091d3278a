package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sash/pkg/observability"
	"github.com/matzehuels/sash/pkg/scene"
)

// Runner encapsulates pipeline execution.
// Both CLI and API can use this to avoid duplicating orchestration logic.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options, as long as they don't share trees.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	hooks := observability.Pipeline()

	// Stage 1: Load
	loadStart := time.Now()
	hooks.OnLoadStart(ctx, opts.Path)
	tree, err := r.Load(opts)
	result.Stats.LoadTime = time.Since(loadStart)
	if tree != nil {
		result.Tree = tree
		result.Stats.ControlCount = tree.Count()
	}
	hooks.OnLoadComplete(ctx, opts.Path, result.Stats.ControlCount, result.Stats.LoadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	r.Logger.Info("built scene",
		"controls", result.Stats.ControlCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	kind := "none"
	if l := tree.Shell.Layout(); l != nil {
		kind = l.Kind()
	}
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, kind, result.Stats.ControlCount)
	err = r.Relayout(tree, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, kind, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	r.Logger.Info("computed layout",
		"frame", tree.Shell.Bounds(),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.Render(tree, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load parses the scene manifest and builds its control tree. The returned
// tree is fully laid out. A circular attachment surfaces as an error here,
// alongside the assembled tree when one could be built.
func (r *Runner) Load(opts Options) (*scene.Tree, error) {
	var (
		s   *scene.Scene
		err error
	)
	if opts.Source != "" {
		s, err = scene.Parse([]byte(opts.Source))
	} else {
		s, err = scene.Load(opts.Path)
	}
	if err != nil {
		return nil, err
	}
	return s.Build()
}

// Relayout applies the frame overrides from opts and runs a fresh top-down
// pass over the whole tree.
func (r *Runner) Relayout(tree *scene.Tree, opts Options) error {
	shell := tree.Shell
	if opts.Width > 0 || opts.Height > 0 {
		b := shell.Bounds()
		if opts.Width > 0 {
			b.W = opts.Width
		}
		if opts.Height > 0 {
			b.H = opts.Height
		}
		shell.SetBounds(b)
	}
	return shell.LayoutTree(opts.FlushCache)
}
