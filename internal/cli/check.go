package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sash/pkg/render/blueprint"
	"github.com/matzehuels/sash/pkg/scene"
)

// checkCommand creates the check command for validating scene manifests.
func (c *CLI) checkCommand() *cobra.Command {
	var showBounds bool

	cmd := &cobra.Command{
		Use:   "check [scene.toml]",
		Short: "Validate a scene manifest and report its layout",
		Long: `Validate a scene manifest and report its layout.

The check command parses and builds the manifest, runs a full layout pass,
and fails on any manifest or constraint error, including circular form
attachments. With --bounds it also prints the resolved geometry of every
visible control.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], showBounds)
		},
	}

	cmd.Flags().BoolVar(&showBounds, "bounds", false, "print resolved bounds for every control")

	return cmd
}

// runCheck builds the scene and prints a summary, failing on any error.
func runCheck(input string, showBounds bool) error {
	s, err := scene.Load(input)
	if err != nil {
		return err
	}
	tree, err := s.Build()
	if err != nil {
		return err
	}

	frame := tree.Shell.Bounds()
	printSuccess("%s is valid", input)
	printKeyValue("controls", strconv.Itoa(tree.Count()))
	printKeyValue("frame", fmt.Sprintf("%dx%d", frame.W, frame.H))
	printKeyValue("layout", shellKind(tree))

	if showBounds {
		fmt.Println(boundsTable(tree))
	}
	return nil
}

// shellKind names the shell's layout manager, or "none".
func shellKind(tree *scene.Tree) string {
	if l := tree.Shell.Layout(); l != nil {
		return l.Kind()
	}
	return "none"
}

// boundsTable renders the resolved geometry of every visible control as a
// bordered table, indented by tree depth.
func boundsTable(tree *scene.Tree) string {
	boxes := blueprint.Flatten(tree.Shell)

	rows := make([][]string, 0, len(boxes))
	for _, box := range boxes {
		b := box.Bounds
		rows = append(rows, []string{
			strings.Repeat("  ", box.Depth) + box.ID,
			strconv.Itoa(b.X),
			strconv.Itoa(b.Y),
			strconv.Itoa(b.W),
			strconv.Itoa(b.H),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Control", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		}).
		Render()
}
