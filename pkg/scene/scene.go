package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Validation failures. All are wrapped with the offending control or field
// name; match with errors.Is.
var (
	ErrMissingName       = errors.New("control has no name")
	ErrDuplicateControl  = errors.New("duplicate control name")
	ErrUnknownParent     = errors.New("unknown parent")
	ErrUnknownKind       = errors.New("unknown control kind")
	ErrUnknownLayout     = errors.New("unknown layout kind")
	ErrUnknownAlign      = errors.New("unknown alignment")
	ErrUnknownSide       = errors.New("unknown attachment side")
	ErrUnknownTarget     = errors.New("unknown attachment target")
	ErrInvalidAttachment = errors.New("invalid attachment")
	ErrLayoutOnBox       = errors.New("layout table on a box control")
)

// Defaults applied while building: shells and boxes that omit extents get
// these values.
const (
	DefaultShellName   = "shell"
	DefaultShellWidth  = 400
	DefaultShellHeight = 300
)

// Scene is a parsed manifest: the root shell plus a flat control list.
type Scene struct {
	Shell    ShellSpec     `toml:"shell"`
	Controls []ControlSpec `toml:"control"`
}

// ShellSpec describes the root container.
type ShellSpec struct {
	Name   string      `toml:"name"`
	Width  int         `toml:"width"`
	Height int         `toml:"height"`
	Layout *LayoutSpec `toml:"layout"`
}

// ControlSpec describes one control. Kind is "box" (the default) or
// "composite"; boxes take width/height as their preferred size, composites
// take a nested layout table.
type ControlSpec struct {
	Name    string `toml:"name"`
	Parent  string `toml:"parent"`
	Kind    string `toml:"kind"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Visible *bool  `toml:"visible"`

	Layout *LayoutSpec `toml:"layout"`

	Grid *GridSpec `toml:"grid"`
	Row  *RowSpec  `toml:"row"`
	Form *FormSpec `toml:"form"`
}

// LayoutSpec selects and configures a layout manager. Options whose engine
// defaults are nonzero are pointers, so an absent key keeps the manager's
// documented default rather than forcing zero.
type LayoutSpec struct {
	Kind string `toml:"kind"`

	// fill and row
	Type string `toml:"type"` // "horizontal" (default) or "vertical"

	// shared margins; per-side values override the symmetric pair
	MarginWidth  *int `toml:"margin_width"`
	MarginHeight *int `toml:"margin_height"`
	MarginLeft   *int `toml:"margin_left"`
	MarginTop    *int `toml:"margin_top"`
	MarginRight  *int `toml:"margin_right"`
	MarginBottom *int `toml:"margin_bottom"`
	Spacing      *int `toml:"spacing"`

	// row
	Wrap    *bool `toml:"wrap"`
	Pack    *bool `toml:"pack"`
	Fill    bool  `toml:"fill"`
	Center  bool  `toml:"center"`
	Justify bool  `toml:"justify"`

	// grid
	Columns           int  `toml:"columns"`
	EqualWidth        bool `toml:"equal_width"`
	HorizontalSpacing *int `toml:"h_spacing"`
	VerticalSpacing   *int `toml:"v_spacing"`

	// stack
	Top string `toml:"top"`
}

// GridSpec mirrors layout.GridData field by field.
type GridSpec struct {
	HAlign     string `toml:"h_align"`
	VAlign     string `toml:"v_align"`
	HSpan      int    `toml:"h_span"`
	VSpan      int    `toml:"v_span"`
	GrabX      bool   `toml:"grab_x"`
	GrabY      bool   `toml:"grab_y"`
	WidthHint  *int   `toml:"width_hint"`
	HeightHint *int   `toml:"height_hint"`
	MinWidth   int    `toml:"min_width"`
	MinHeight  int    `toml:"min_height"`
	HIndent    int    `toml:"h_indent"`
	VIndent    int    `toml:"v_indent"`
	Exclude    bool   `toml:"exclude"`
}

// RowSpec mirrors layout.RowData.
type RowSpec struct {
	Width   *int `toml:"width"`
	Height  *int `toml:"height"`
	Exclude bool `toml:"exclude"`
}

// FormSpec mirrors layout.FormData: optional size hints plus up to four
// attachments.
type FormSpec struct {
	Width  *int `toml:"width"`
	Height *int `toml:"height"`

	Left   *AttachSpec `toml:"left"`
	Right  *AttachSpec `toml:"right"`
	Top    *AttachSpec `toml:"top"`
	Bottom *AttachSpec `toml:"bottom"`
}

// AttachSpec is one edge attachment: either a percentage of the parent
// extent or a named sibling's edge. Setting both percent and control is
// invalid.
type AttachSpec struct {
	Percent     *int `toml:"percent"`
	Denominator int  `toml:"denominator"`

	Control string `toml:"control"`
	Side    string `toml:"side"` // left|top|right|bottom|center, empty for "after" placement

	Offset int `toml:"offset"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes a manifest and validates it.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks structural rules: unique non-empty names, known parents,
// kinds, layout kinds, alignments, and attachment targets. Attachments may
// reference any control declared anywhere in the manifest.
func (s *Scene) Validate() error {
	shellName := s.Shell.Name
	if shellName == "" {
		shellName = DefaultShellName
	}

	names := map[string]bool{shellName: true}
	for _, ctl := range s.Controls {
		if ctl.Name == "" {
			return ErrMissingName
		}
		if names[ctl.Name] {
			return fmt.Errorf("%q: %w", ctl.Name, ErrDuplicateControl)
		}
		names[ctl.Name] = true
	}

	composites := map[string]bool{shellName: true}
	for _, ctl := range s.Controls {
		switch ctl.Kind {
		case "", "box":
		case "composite":
			composites[ctl.Name] = true
		default:
			return fmt.Errorf("%q: kind %q: %w", ctl.Name, ctl.Kind, ErrUnknownKind)
		}
	}

	if s.Shell.Layout != nil {
		if err := s.Shell.Layout.validate(shellName, names); err != nil {
			return err
		}
	}

	for _, ctl := range s.Controls {
		parent := ctl.Parent
		if parent == "" {
			parent = shellName
		}
		if !composites[parent] {
			return fmt.Errorf("%q: parent %q: %w", ctl.Name, parent, ErrUnknownParent)
		}

		if ctl.Layout != nil {
			if ctl.Kind != "composite" {
				return fmt.Errorf("%q: %w", ctl.Name, ErrLayoutOnBox)
			}
			if err := ctl.Layout.validate(ctl.Name, names); err != nil {
				return err
			}
		}

		if ctl.Grid != nil {
			if err := ctl.Grid.validate(ctl.Name); err != nil {
				return err
			}
		}
		if ctl.Form != nil {
			if err := ctl.Form.validate(ctl.Name, names); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *LayoutSpec) validate(owner string, names map[string]bool) error {
	switch l.Kind {
	case "fill", "row", "grid", "form", "stack":
	default:
		return fmt.Errorf("%q: layout kind %q: %w", owner, l.Kind, ErrUnknownLayout)
	}

	switch l.Type {
	case "", "horizontal", "vertical":
	default:
		return fmt.Errorf("%q: layout type %q: %w", owner, l.Type, ErrUnknownLayout)
	}

	if l.Kind == "stack" && l.Top != "" && !names[l.Top] {
		return fmt.Errorf("%q: top %q: %w", owner, l.Top, ErrUnknownTarget)
	}
	return nil
}

func (g *GridSpec) validate(owner string) error {
	for _, a := range []string{g.HAlign, g.VAlign} {
		if _, err := parseAlign(a); err != nil {
			return fmt.Errorf("%q: %w", owner, err)
		}
	}
	return nil
}

func (f *FormSpec) validate(owner string, names map[string]bool) error {
	sides := map[string]*AttachSpec{
		"left": f.Left, "right": f.Right, "top": f.Top, "bottom": f.Bottom,
	}
	for side, att := range sides {
		if att == nil {
			continue
		}
		hasPercent := att.Percent != nil
		hasControl := att.Control != ""
		if hasPercent == hasControl {
			return fmt.Errorf("%q: %s: need exactly one of percent or control: %w",
				owner, side, ErrInvalidAttachment)
		}
		if hasControl {
			if !names[att.Control] {
				return fmt.Errorf("%q: %s: control %q: %w", owner, side, att.Control, ErrUnknownTarget)
			}
			if _, err := parseSide(att.Side); err != nil {
				return fmt.Errorf("%q: %s: %w", owner, side, err)
			}
		}
	}
	return nil
}
