package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sash/pkg/render/blueprint"
	"github.com/matzehuels/sash/pkg/scene"
)

// Pixel size of one terminal cell in the preview canvas.
const (
	previewCellWidth  = 8
	previewCellHeight = 16
)

// statusReserve is the number of terminal rows kept below the canvas for the
// status bar and key help.
const statusReserve = 2

// previewCommand creates the preview command for exploring layouts in the
// terminal.
func (c *CLI) previewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [scene.toml]",
		Short: "Preview a scene layout in the terminal",
		Long: `Preview a scene layout in the terminal.

The preview command draws the laid-out scene as a box canvas and reruns the
layout pass whenever the terminal is resized, so constraint behavior can be
explored interactively. Arrow keys resize the shell one cell at a time, r
reloads the manifest from disk, and f toggles cache flushing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := newPreviewModel(args[0])
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	return cmd
}

// =============================================================================
// previewModel - Interactive layout preview
// =============================================================================

// previewModel is the bubbletea model for the interactive preview. The shell
// is sized to the terminal, one layout cell per character cell.
type previewModel struct {
	path  string
	tree  *scene.Tree
	cols  int
	rows  int
	flush bool
	err   error // last reload or layout error, shown in the status bar
}

// newPreviewModel loads the manifest and builds the initial tree sized for a
// default 80x24 terminal. The real size arrives with the first
// tea.WindowSizeMsg.
func newPreviewModel(path string) (previewModel, error) {
	m := previewModel{path: path, cols: 80, rows: 24}

	s, err := scene.Load(path)
	if err != nil {
		return m, err
	}
	tree, err := s.Build()
	if err != nil {
		return m, err
	}
	m.tree = tree
	m.fitShell()
	return m, nil
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.resizeShell(-previewCellWidth, 0)
		case "right", "l":
			m.resizeShell(previewCellWidth, 0)
		case "up", "k":
			m.resizeShell(0, -previewCellHeight)
		case "down", "j":
			m.resizeShell(0, previewCellHeight)
		case "f":
			m.flush = !m.flush
			m.relayout()
		case "r":
			m.reload()
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.fitShell()
	}
	return m, nil
}

func (m previewModel) View() string {
	canvas := blueprint.RenderText(m.tree.Shell, blueprint.TextOptions{
		CellWidth:  previewCellWidth,
		CellHeight: previewCellHeight,
	})

	var b strings.Builder
	b.WriteString(canvas)
	if canvas != "" && !strings.HasSuffix(canvas, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→/↑/↓ resize  f flush  r reload  q quit"))
	return b.String()
}

// statusLine summarizes the shell frame and layout state, or the last error.
func (m previewModel) statusLine() string {
	if m.err != nil {
		return styleIconError.Render(iconError) + " " + m.err.Error()
	}

	frame := m.tree.Shell.Bounds()
	status := fmt.Sprintf("%s %dx%d px", shellKind(m.tree), frame.W, frame.H)
	if m.flush {
		status += "  flush on"
	}
	return StyleTitle.Render(appName+" preview") + " " +
		StyleDim.Render(m.path) + "  " + StyleValue.Render(status)
}

// fitShell sizes the shell to the terminal, keeping statusReserve rows free.
func (m *previewModel) fitShell() {
	m.setShellSize(m.cols*previewCellWidth, (m.rows-statusReserve)*previewCellHeight)
}

// resizeShell grows or shrinks the shell by the given pixel deltas.
func (m *previewModel) resizeShell(dw, dh int) {
	b := m.tree.Shell.Bounds()
	m.setShellSize(b.W+dw, b.H+dh)
}

// setShellSize applies a new shell size, clamped to one cell, and reruns the
// layout pass.
func (m *previewModel) setShellSize(w, h int) {
	if w < previewCellWidth {
		w = previewCellWidth
	}
	if h < previewCellHeight {
		h = previewCellHeight
	}
	b := m.tree.Shell.Bounds()
	b.W, b.H = w, h
	m.tree.Shell.SetBounds(b)
	m.relayout()
}

// relayout runs a full top-down pass and records any constraint error.
func (m *previewModel) relayout() {
	m.err = m.tree.Shell.LayoutTree(m.flush)
}

// reload rebuilds the tree from disk, keeping the current shell size. A
// manifest error keeps the old tree on screen.
func (m *previewModel) reload() {
	s, err := scene.Load(m.path)
	if err != nil {
		m.err = err
		return
	}
	tree, err := s.Build()
	if tree == nil {
		m.err = err
		return
	}

	size := m.tree.Shell.Bounds()
	m.tree = tree
	m.tree.Shell.SetBounds(size)
	m.relayout()
}
