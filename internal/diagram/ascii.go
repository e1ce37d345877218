package diagram

import (
	"fmt"
	"strings"

	"gocold/internal/calc"
)

// DrawASCIIElevation renders a quick terminal preview of a column elevation:
// floor outlines with stirrup tick counts per zone and lap splice markers.
func DrawASCIIElevation(geometry calc.ColumnGeometry, layout calc.RebarLayout) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  COLUMN ELEVATION\n")
	sb.WriteString("  ────────────────\n")

	// Walk floors top-down so the preview reads like a drawing.
	for i := len(geometry.Boundaries) - 1; i >= 0; i-- {
		base := geometry.FloorLevels[i]
		top := geometry.FloorLevels[i+1]
		b := geometry.Boundaries[i]

		edge, mid := 0, 0
		for _, s := range layout.Stirrups {
			if s.Y < base || s.Y >= top {
				continue
			}
			if s.Zone == calc.ZoneEdge {
				edge++
			} else {
				mid++
			}
		}

		width := int((b.Right - b.Left) / 50)
		if width < 8 {
			width = 8
		}
		if width > 24 {
			width = 24
		}
		bar := strings.Repeat("─", width)

		sb.WriteString(fmt.Sprintf("  ┌%s┐  level %.0f\n", bar, top))
		sb.WriteString(fmt.Sprintf("  │%*s│  %d edge + %d mid stirrups\n", width, "", edge, mid))
		sb.WriteString(fmt.Sprintf("  └%s┘  level %.0f\n", bar, base))
	}

	if len(layout.Laps) > 0 {
		sb.WriteString("\n  Lap splices:\n")
		for _, lap := range layout.Laps {
			sb.WriteString(fmt.Sprintf("    y=%.0f  length %.0f mm  (Ø%.0f)\n", lap.Y, lap.Length, lap.Diameter))
		}
	}

	return sb.String()
}

// DrawSummaryBox renders a boxed result summary for terminal output.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
