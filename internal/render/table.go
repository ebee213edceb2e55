package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muliwe/go-dispatch-sorter/internal/classifier"
	"github.com/muliwe/go-dispatch-sorter/internal/demo"
)

// Catppuccin Mocha
const (
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorRed      lipgloss.Color = "#f38ba8"
	colorLavender lipgloss.Color = "#b4befe"
	colorOverlay1 lipgloss.Color = "#7f849c"
)

var tableHeaders = []string{"Example", "W", "H", "L", "M", "Result", "Detail"}

// classificationColor maps each stack to its display color
func classificationColor(c classifier.Classification) lipgloss.Color {
	switch c {
	case classifier.ClassificationStandard:
		return colorGreen
	case classifier.ClassificationSpecial:
		return colorYellow
	}
	return colorRed
}

type tableRenderer struct {
	noColor bool
}

func (t tableRenderer) Render(w io.Writer, outcomes []demo.Outcome) error {
	re := lipgloss.NewRenderer(w)
	paint := func(c lipgloss.Color, text string) string {
		if t.noColor {
			return text
		}
		return re.NewStyle().Foreground(c).Render(text)
	}

	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rec := NewRecord(o)
		row := append([]string{rec.Description}, rec.Inputs...)
		if rec.Error != "" {
			row = append(row, paint(colorRed, strings.ToUpper(rec.ErrorKind)), rec.Error)
		} else {
			row = append(row, paint(classificationColor(o.Decision.Classification), rec.Classification), rec.Reason)
		}
		rows = append(rows, row)
	}

	cell := re.NewStyle().Padding(0, 1)
	header := cell
	border := re.NewStyle()
	if !t.noColor {
		header = header.Bold(true).Foreground(colorLavender)
		border = border.Foreground(colorOverlay1)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
