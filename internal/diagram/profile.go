package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/argoprssm/internal/section"
)

// WidthProfile samples the material width at n evenly spaced heights,
// bottom to top.
func WidthProfile(data SectionDiagramData, n int) []float64 {
	if len(data.Outline) < 3 || n < 1 || data.MaxY <= data.MinY {
		return nil
	}
	s := section.New("", data.Outline)
	dy := (data.MaxY - data.MinY) / float64(n)
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = s.WidthAtY(data.MinY + (float64(i)+0.5)*dy)
	}
	return widths
}

// DrawWidthProfile plots the width profile as a line graph; the x axis
// runs from the bottom of the section to its top.
func DrawWidthProfile(data SectionDiagramData, samples int) string {
	widths := WidthProfile(data, samples)
	if len(widths) == 0 {
		return ""
	}
	return asciigraph.Plot(widths,
		asciigraph.Height(8),
		asciigraph.Width(samples),
		asciigraph.Caption(fmt.Sprintf("width (mm) from y=%.0f to y=%.0f", data.MinY, data.MaxY)),
	) + "\n"
}
