package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/timegrid"
)

// gridRows is the number of hour rows on the day grid.
const gridRows = 24

// DayGrid renders one day as an hour-by-hour grid with the plan lane and
// the actual lane side by side. Overlapping cells split their lane's width
// according to their layout position.
type DayGrid struct {
	Date      time.Time
	Plans     []*timegrid.TimeCell[*domain.Entry]
	Actuals   []*timegrid.TimeCell[*domain.Entry]
	LaneWidth int
	Loc       *time.Location
	// Selected highlights one hour row, -1 for none.
	Selected int
}

// Render draws the grid.
func (g DayGrid) Render() string {
	width := g.LaneWidth
	if width < 12 {
		width = 32
	}
	loc := g.Loc
	if loc == nil {
		loc = time.Local
	}

	planRows := renderLane(g.Plans, width, g.Date, loc)
	actualRows := renderLane(g.Actuals, width, g.Date, loc)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(g.Date.Format("Mon 2006-01-02")))
	b.WriteString("\n")
	b.WriteString("      ")
	b.WriteString(StyleBold.Render(runewidth.FillRight("PLANNED", width)))
	b.WriteString("  ")
	b.WriteString(StyleBold.Render("ACTUAL"))
	b.WriteString("\n")

	for h := 0; h < gridRows; h++ {
		label := fmt.Sprintf("%02d:00", h)
		if h == g.Selected {
			b.WriteString(StyleHeader.Render(label + "▸"))
		} else {
			b.WriteString(StyleDim.Render(label + " "))
		}
		b.WriteString(planRows[h])
		b.WriteString("  ")
		b.WriteString(actualRows[h])
		b.WriteString("\n")
	}
	return b.String()
}

// renderLane paints one lane's cells onto 24 hour rows. Each cell spans
// the rows its interval crosses and owns a horizontal slice of the lane
// sized by its overlap group.
func renderLane(cells []*timegrid.TimeCell[*domain.Entry], width int, date time.Time, loc *time.Location) [gridRows]string {
	canvas := make([][]string, gridRows)
	for i := range canvas {
		canvas[i] = make([]string, width)
		for j := range canvas[i] {
			canvas[i][j] = " "
		}
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	for _, c := range cells {
		startRow := hourRow(c.RenderStart(), dayStart)
		endRow := hourRow(c.RenderEnd().Add(-time.Nanosecond), dayStart)
		if endRow < 0 || startRow > gridRows-1 {
			continue
		}
		if startRow < 0 {
			startRow = 0
		}
		if endRow > gridRows-1 {
			endRow = gridRows - 1
		}

		cellWidth := width / c.OverlapCount
		if cellWidth < 1 {
			cellWidth = 1
		}
		x := cellWidth * c.OverlapIndex
		if x >= width {
			x = width - 1
		}

		style := KindStyle(c.Record.Kind)
		text := EntryMarker(c.Record) + style.Render(
			runewidth.Truncate(cellText(c, loc), cellWidth-1, "…"))
		paint(canvas[startRow], x, text, cellWidth)
		for row := startRow + 1; row <= endRow; row++ {
			paint(canvas[row], x, style.Render("│"), cellWidth)
		}
	}

	var rows [gridRows]string
	for i := range canvas {
		rows[i] = strings.TrimRight(strings.Join(canvas[i], ""), " ")
		if pad := width - lipgloss.Width(rows[i]); pad > 0 {
			rows[i] += strings.Repeat(" ", pad)
		}
	}
	return rows
}

func cellText(c *timegrid.TimeCell[*domain.Entry], loc *time.Location) string {
	summary := c.Summary()
	if summary == "" {
		summary = "(untitled)"
	}
	if min := c.Start().In(loc).Minute(); min != 0 {
		return fmt.Sprintf(":%02d %s", min, summary)
	}
	return summary
}

func hourRow(t time.Time, dayStart time.Time) int {
	return int(t.Sub(dayStart) / time.Hour)
}

// paint writes text into the cell's horizontal slice, one styled string
// occupying the first slot and blanks claiming the rest of the slice.
func paint(row []string, x int, text string, cellWidth int) {
	if x >= len(row) {
		return
	}
	row[x] = text
	visible := lipgloss.Width(text)
	end := x + cellWidth
	if end > len(row) {
		end = len(row)
	}
	for i := x + 1; i < end && i < x+visible; i++ {
		row[i] = ""
	}
}
