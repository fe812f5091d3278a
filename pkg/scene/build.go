package scene

import (
	"fmt"

	"github.com/matzehuels/sash/pkg/geom"
	"github.com/matzehuels/sash/pkg/layout"
	"github.com/matzehuels/sash/pkg/widget"
)

// Tree is a built scene: the root shell plus every declared control indexed
// by name. The shell itself is included in Controls.
type Tree struct {
	Shell    *widget.Composite
	Controls map[string]layout.Control
}

// Count returns the number of controls in the tree, shell included.
func (t *Tree) Count() int { return len(t.Controls) }

// Control returns the named control, or nil.
func (t *Tree) Control(name string) layout.Control { return t.Controls[name] }

// FormContainer resolves the container whose attachment constraints a
// diagnostic graph should describe. An explicit name must refer to a
// composite; with no name the first form-managed composite in tree order
// wins, falling back to the shell.
func (t *Tree) FormContainer(name string) (layout.Container, error) {
	if name != "" {
		ctl := t.Control(name)
		if ctl == nil {
			return nil, fmt.Errorf("unknown target: %q", name)
		}
		c, ok := ctl.(layout.Container)
		if !ok {
			return nil, fmt.Errorf("target %q is not a container", name)
		}
		return c, nil
	}
	if c := firstFormComposite(t.Shell); c != nil {
		return c, nil
	}
	return t.Shell, nil
}

func firstFormComposite(c *widget.Composite) *widget.Composite {
	if _, ok := c.Layout().(*layout.FormLayout); ok {
		return c
	}
	for _, child := range c.Children() {
		sub, ok := child.(*widget.Composite)
		if !ok {
			continue
		}
		if found := firstFormComposite(sub); found != nil {
			return found
		}
	}
	return nil
}

// Build assembles the widget tree: create every control, wire children to
// parents, attach layout data, assign managers, and run one full top-down
// layout pass.
//
// When the pass fails (circular form attachments) Build still returns the
// assembled tree alongside the error, so diagnostics like the attachment
// graph can inspect the offending scene.
func (s *Scene) Build() (*Tree, error) {
	shellName := s.Shell.Name
	if shellName == "" {
		shellName = DefaultShellName
	}
	width := s.Shell.Width
	if width == 0 {
		width = DefaultShellWidth
	}
	height := s.Shell.Height
	if height == 0 {
		height = DefaultShellHeight
	}

	shell := widget.NewComposite(shellName)
	shell.SetBounds(geom.RectOf(0, 0, width, height))

	tree := &Tree{
		Shell:    shell,
		Controls: map[string]layout.Control{shellName: shell},
	}

	// Create every control first: attachments and stack tops may reference
	// controls declared later in the manifest.
	for _, spec := range s.Controls {
		tree.Controls[spec.Name] = newControl(spec)
	}

	// Parent wiring in declaration order.
	for _, spec := range s.Controls {
		parentName := spec.Parent
		if parentName == "" {
			parentName = shellName
		}
		parent, ok := tree.Controls[parentName].(*widget.Composite)
		if !ok {
			return nil, fmt.Errorf("%q: parent %q: %w", spec.Name, parentName, ErrUnknownParent)
		}
		parent.Add(tree.Controls[spec.Name])
	}

	// Layout data before managers, so the first pass sees the constraints.
	for _, spec := range s.Controls {
		data, err := buildData(spec, tree)
		if err != nil {
			return nil, err
		}
		if data != nil {
			tree.Controls[spec.Name].SetLayoutData(data)
		}
	}

	var layoutErr error
	assign := func(name string, c *widget.Composite, ls *LayoutSpec) error {
		if ls == nil {
			return nil
		}
		manager, err := buildLayout(ls, tree)
		if err != nil {
			return fmt.Errorf("%q: %w", name, err)
		}
		if err := c.SetLayout(manager); err != nil && layoutErr == nil {
			layoutErr = err
		}
		return nil
	}

	if err := assign(shellName, shell, s.Shell.Layout); err != nil {
		return nil, err
	}
	for _, spec := range s.Controls {
		c, ok := tree.Controls[spec.Name].(*widget.Composite)
		if !ok {
			continue
		}
		if err := assign(spec.Name, c, spec.Layout); err != nil {
			return nil, err
		}
	}

	if err := shell.LayoutTree(true); err != nil && layoutErr == nil {
		layoutErr = err
	}
	return tree, layoutErr
}

// newControl creates the widget for one spec. Validation has already checked
// the kind.
func newControl(spec ControlSpec) layout.Control {
	if spec.Kind == "composite" {
		c := widget.NewComposite(spec.Name)
		if spec.Visible != nil {
			c.SetVisible(*spec.Visible)
		}
		return c
	}

	b := widget.NewBox(spec.Name)
	w, h := widget.DefaultWidth, widget.DefaultHeight
	if spec.Width > 0 {
		w = spec.Width
	}
	if spec.Height > 0 {
		h = spec.Height
	}
	b.SetPreferredSize(w, h)
	if spec.Visible != nil {
		b.SetVisible(*spec.Visible)
	}
	return b
}

// buildData maps the spec's data table to the engine descriptor.
func buildData(spec ControlSpec, tree *Tree) (any, error) {
	switch {
	case spec.Grid != nil:
		return buildGridData(spec.Grid)
	case spec.Row != nil:
		return buildRowData(spec.Row), nil
	case spec.Form != nil:
		return buildFormData(spec.Name, spec.Form, tree)
	}
	return nil, nil
}

func buildGridData(g *GridSpec) (*layout.GridData, error) {
	data := layout.NewGridData()
	if g.HAlign != "" {
		a, err := parseAlign(g.HAlign)
		if err != nil {
			return nil, err
		}
		data.HorizontalAlignment = a
	}
	if g.VAlign != "" {
		a, err := parseAlign(g.VAlign)
		if err != nil {
			return nil, err
		}
		data.VerticalAlignment = a
	}
	if g.HSpan > 0 {
		data.HorizontalSpan = g.HSpan
	}
	if g.VSpan > 0 {
		data.VerticalSpan = g.VSpan
	}
	data.GrabExcessHorizontalSpace = g.GrabX
	data.GrabExcessVerticalSpace = g.GrabY
	if g.WidthHint != nil {
		data.WidthHint = *g.WidthHint
	}
	if g.HeightHint != nil {
		data.HeightHint = *g.HeightHint
	}
	data.MinimumWidth = g.MinWidth
	data.MinimumHeight = g.MinHeight
	data.HorizontalIndent = g.HIndent
	data.VerticalIndent = g.VIndent
	data.Exclude = g.Exclude
	return data, nil
}

func buildRowData(r *RowSpec) *layout.RowData {
	data := layout.NewRowData()
	if r.Width != nil {
		data.Width = *r.Width
	}
	if r.Height != nil {
		data.Height = *r.Height
	}
	data.Exclude = r.Exclude
	return data
}

func buildFormData(owner string, f *FormSpec, tree *Tree) (*layout.FormData, error) {
	data := layout.NewFormData()
	if f.Width != nil {
		data.Width = *f.Width
	}
	if f.Height != nil {
		data.Height = *f.Height
	}

	build := func(att *AttachSpec) (layout.Attachment, error) {
		if att == nil {
			return nil, nil
		}
		return buildAttachment(owner, att, tree)
	}

	var err error
	if data.Left, err = build(f.Left); err != nil {
		return nil, err
	}
	if data.Right, err = build(f.Right); err != nil {
		return nil, err
	}
	if data.Top, err = build(f.Top); err != nil {
		return nil, err
	}
	if data.Bottom, err = build(f.Bottom); err != nil {
		return nil, err
	}
	return data, nil
}

func buildAttachment(owner string, att *AttachSpec, tree *Tree) (layout.Attachment, error) {
	if att.Percent != nil {
		den := att.Denominator
		if den == 0 {
			den = 100
		}
		return layout.PercentAttachment{
			Numerator:   *att.Percent,
			Denominator: den,
			Offset:      att.Offset,
		}, nil
	}

	target := tree.Control(att.Control)
	if target == nil {
		return nil, fmt.Errorf("%q: control %q: %w", owner, att.Control, ErrUnknownTarget)
	}
	side, err := parseSide(att.Side)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", owner, err)
	}
	return layout.ControlAttachment{Target: target, Align: side, Offset: att.Offset}, nil
}

// buildLayout maps a layout spec to a configured manager.
func buildLayout(ls *LayoutSpec, tree *Tree) (layout.Layout, error) {
	orientation := layout.Horizontal
	if ls.Type == "vertical" {
		orientation = layout.Vertical
	}

	setIf := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	switch ls.Kind {
	case "fill":
		l := layout.NewFillLayout(orientation)
		setIf(&l.MarginWidth, ls.MarginWidth)
		setIf(&l.MarginHeight, ls.MarginHeight)
		setIf(&l.Spacing, ls.Spacing)
		return l, nil

	case "row":
		l := layout.NewRowLayout(orientation)
		if ls.Wrap != nil {
			l.Wrap = *ls.Wrap
		}
		if ls.Pack != nil {
			l.Pack = *ls.Pack
		}
		l.Fill = ls.Fill
		l.Center = ls.Center
		l.Justify = ls.Justify
		setIf(&l.Spacing, ls.Spacing)
		setIf(&l.MarginWidth, ls.MarginWidth)
		setIf(&l.MarginHeight, ls.MarginHeight)
		setIf(&l.MarginLeft, ls.MarginLeft)
		setIf(&l.MarginTop, ls.MarginTop)
		setIf(&l.MarginRight, ls.MarginRight)
		setIf(&l.MarginBottom, ls.MarginBottom)
		return l, nil

	case "grid":
		cols := ls.Columns
		if cols == 0 {
			cols = 1
		}
		l := layout.NewGridLayout(cols)
		l.MakeColumnsEqualWidth = ls.EqualWidth
		setIf(&l.MarginWidth, ls.MarginWidth)
		setIf(&l.MarginHeight, ls.MarginHeight)
		setIf(&l.MarginLeft, ls.MarginLeft)
		setIf(&l.MarginTop, ls.MarginTop)
		setIf(&l.MarginRight, ls.MarginRight)
		setIf(&l.MarginBottom, ls.MarginBottom)
		setIf(&l.HorizontalSpacing, ls.HorizontalSpacing)
		setIf(&l.VerticalSpacing, ls.VerticalSpacing)
		return l, nil

	case "form":
		l := layout.NewFormLayout()
		setIf(&l.MarginWidth, ls.MarginWidth)
		setIf(&l.MarginHeight, ls.MarginHeight)
		setIf(&l.MarginLeft, ls.MarginLeft)
		setIf(&l.MarginTop, ls.MarginTop)
		setIf(&l.MarginRight, ls.MarginRight)
		setIf(&l.MarginBottom, ls.MarginBottom)
		setIf(&l.Spacing, ls.Spacing)
		return l, nil

	case "stack":
		l := layout.NewStackLayout()
		setIf(&l.MarginWidth, ls.MarginWidth)
		setIf(&l.MarginHeight, ls.MarginHeight)
		if ls.Top != "" {
			l.TopControl = tree.Control(ls.Top)
		}
		return l, nil
	}
	return nil, fmt.Errorf("layout kind %q: %w", ls.Kind, ErrUnknownLayout)
}

// parseAlign maps a manifest alignment name to the engine enum. The empty
// string is allowed; callers keep their default.
func parseAlign(s string) (layout.Align, error) {
	switch s {
	case "", "beginning":
		return layout.Beginning, nil
	case "center":
		return layout.Center, nil
	case "end":
		return layout.End, nil
	case "fill":
		return layout.Fill, nil
	}
	return 0, fmt.Errorf("alignment %q: %w", s, ErrUnknownAlign)
}

// parseSide maps a manifest side name to the engine edge. The empty string
// selects default "after" placement.
func parseSide(s string) (layout.Edge, error) {
	switch s {
	case "":
		return layout.EdgeDefault, nil
	case "left":
		return layout.EdgeLeft, nil
	case "top":
		return layout.EdgeTop, nil
	case "right":
		return layout.EdgeRight, nil
	case "bottom":
		return layout.EdgeBottom, nil
	case "center":
		return layout.EdgeCenter, nil
	}
	return 0, fmt.Errorf("side %q: %w", s, ErrUnknownSide)
}
