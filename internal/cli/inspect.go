package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/padforge/stretchpad/pkg/pad"
)

// newInspectCmd creates the inspect command, which prints the solved geometry
// as tables instead of producing a footprint file. With --interactive the six
// pad positions can be cycled through with the arrow keys.
func newInspectCmd() *cobra.Command {
	var opts constraintOpts
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect the solved pad geometry",
		Long: `Inspect solves the pad constraints and prints every derived pad and drawing
value as a table. Useful for checking what a set of parameters produces before
generating the footprint file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConstraints(cmd, &opts)
			if err != nil {
				return err
			}
			if interactive {
				return runInspectInteractive(c)
			}
			return runInspect(c)
		},
	}

	addConstraintFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "cycle through the pad positions interactively")

	return cmd
}

// runInspect solves once and prints the result.
func runInspect(c pad.Constraints) error {
	fp, err := pad.Build(c)
	if err != nil {
		reportBuildError(err)
		return err
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Pad geometry (%s)", c.PadPosition)))
	fmt.Println(renderGeometryTable(fp))
	fmt.Println(StyleTitle.Render("Drawing"))
	fmt.Println(renderCanvasTable(fp))
	return nil
}

// fnum formats a value the way it appears in the footprint file, without
// trailing zeros.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderGeometryTable renders the derived pad values as a bordered table.
func renderGeometryTable(fp *pad.Footprint) string {
	g := fp.Geometry
	rows := [][]string{
		{"hole radius", fnum(g.HoleRadius)},
		{"full width", fnum(g.FullWidth)},
		{"half width", fnum(g.HalfWidth)},
		{"full length", fnum(g.FullLength)},
		{"circle radius", fnum(g.CircleRadius)},
		{"pad offset", fnum(g.PadOffset)},
		{"pin spacing", fnum(g.PinSpacing)},
		{"row step", fmt.Sprintf("(%s, %s)", fnum(g.BaseX), fnum(g.BaseY))},
		{"outer arc 0", fmt.Sprintf("(%s, %s)", fnum(g.Outer0DX), fnum(g.Outer0DY))},
		{"outer arc 1", fmt.Sprintf("(%s, %s)", fnum(g.Outer1DX), fnum(g.Outer1DY))},
		{"line direction", g.LineDirection},
		{"outer sweep", strconv.Itoa(g.OuterSweep)},
		{"inner sweep", strconv.Itoa(g.InnerSweep)},
		{"hole move", fmt.Sprintf("(%s, %s)", fnum(g.MoveDX), fnum(g.MoveDY))},
		{"inner arc 0", fmt.Sprintf("(%s, %s)", fnum(g.Inner0DX), fnum(g.Inner0DY))},
		{"inner arc 1", fmt.Sprintf("(%s, %s)", fnum(g.Inner1DX), fnum(g.Inner1DY))},
	}
	return renderKVTable(rows)
}

// renderCanvasTable renders the derived drawing values as a bordered table.
func renderCanvasTable(fp *pad.Footprint) string {
	d := fp.Canvas
	rows := [][]string{
		{"size (px)", fmt.Sprintf("%s x %s", fnum(d.PxWidth), fnum(d.PxHeight))},
		{"size (" + d.Units + ")", fmt.Sprintf("%s x %s", fnum(d.UnitWidth), fnum(d.UnitHeight))},
		{"copper stroke", fnum(d.CopperStroke)},
		{"copper1 translate", fmt.Sprintf("(%s, %s)", fnum(d.Copper1TranslateX), fnum(d.Copper1TranslateY))},
		{"pad translate", fmt.Sprintf("(%s, %s)", fnum(d.PadTranslateX), fnum(d.PadTranslateY))},
	}
	return renderKVTable(rows)
}

// renderKVTable renders two-column field/value rows with the shared border
// style.
func renderKVTable(rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Field", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

// =============================================================================
// PositionModel - Interactive position browsing
// =============================================================================

// PositionModel is the bubbletea model that cycles the pad position while
// keeping the other constraints fixed, re-solving the geometry on each step.
type PositionModel struct {
	Base   pad.Constraints
	Cursor int
}

// NewPositionModel creates a position browser starting at the position set in
// the base constraints.
func NewPositionModel(base pad.Constraints) PositionModel {
	cursor := 0
	for i, p := range pad.Positions {
		if p == base.PadPosition {
			cursor = i
			break
		}
	}
	return PositionModel{Base: base, Cursor: cursor}
}

func (m PositionModel) Init() tea.Cmd {
	return nil
}

func (m PositionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "up", "k", "h":
			m.Cursor = (m.Cursor + len(pad.Positions) - 1) % len(pad.Positions)
		case "right", "down", "j", "l", " ", "tab":
			m.Cursor = (m.Cursor + 1) % len(pad.Positions)
		}
	}
	return m, nil
}

func (m PositionModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Pad geometry"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ change position  q quit"))
	b.WriteString("\n\n")

	for i, p := range pad.Positions {
		label := string(p)
		if i == m.Cursor {
			b.WriteString(StyleHighlight.Bold(true).Render("▸ " + label))
		} else {
			b.WriteString(StyleDim.Render("  " + label))
		}
		if i < len(pad.Positions)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n\n")

	c := m.Base
	c.PadPosition = pad.Positions[m.Cursor]
	fp, err := pad.Build(c)
	if err != nil {
		b.WriteString(StyleWarning.Render(iconWarning + " " + err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(renderGeometryTable(fp))
	b.WriteString("\n")
	b.WriteString(renderCanvasTable(fp))
	b.WriteString("\n")
	return b.String()
}

// runInspectInteractive runs the position browser.
func runInspectInteractive(c pad.Constraints) error {
	// Collect every violation inside the browser so an invalid position shows
	// the full picture instead of just the first broken rule.
	c.Debug |= pad.DebugCollectProblems
	_, err := tea.NewProgram(NewPositionModel(c)).Run()
	return err
}
