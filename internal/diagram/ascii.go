package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/argoprssm/internal/section"
)

// Characters are about twice as tall as they are wide.
const charAspect = 2.0

// DrawASCIISection rasterizes the section outline into widthChars
// columns. Concrete is shaded, bars are ● and the centroid is +.
func DrawASCIISection(data SectionDiagramData, widthChars int) string {
	minX, maxX, minY, maxY := data.Bounds()
	if len(data.Outline) < 3 || widthChars < 2 || maxX-minX <= 0 || maxY-minY <= 0 {
		return ""
	}

	cellW := (maxX - minX) / float64(widthChars)
	rows := max(1, int(math.Ceil((maxY-minY)/cellW/charAspect)))
	cellH := (maxY - minY) / float64(rows)

	col := func(x float64) int { return clamp(int((x-minX)/cellW), widthChars-1) }
	row := func(y float64) int { return clamp(int((maxY-y)/cellH), rows-1) }

	s := section.New("", data.Outline)
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, widthChars)
		y := maxY - (float64(r)+0.5)*cellH
		for c := range grid[r] {
			x := minX + (float64(c)+0.5)*cellW
			if s.Contains(section.Point{X: x, Y: y}) {
				grid[r][c] = '░'
			} else {
				grid[r][c] = ' '
			}
		}
	}
	grid[row(0)][col(0)] = '+'
	for _, b := range data.Bars {
		grid[row(b.Y)][col(b.X)] = '●'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", utf8.RuneCountInString(data.Title))))

	topRow := row(data.RibTopY)
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for r, line := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│", string(line)))
		if r == topRow {
			sb.WriteString(fmt.Sprintf(" ◄─ rib top %.0f", data.RibTopY))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))

	sb.WriteString(fmt.Sprintf("  width %.0f mm, height %.0f mm, %d bars\n", maxX-minX, maxY-minY, len(data.Bars)))
	sb.WriteString("  ░ concrete  ● bar  + centroid\n")
	return sb.String()
}

func clamp(i, hi int) int {
	return min(max(i, 0), hi)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes; fmt pads by bytes.
func pad(s string, n int) string {
	return s + strings.Repeat(" ", max(0, n-utf8.RuneCountInString(s)))
}
