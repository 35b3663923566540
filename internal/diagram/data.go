package diagram

import (
	"fmt"

	"github.com/alexiusacademia/argoprssm/internal/convert"
	"github.com/alexiusacademia/argoprssm/internal/prssm"
	"github.com/alexiusacademia/argoprssm/internal/section"
)

// Bar is one longitudinal bar in section coordinates.
type Bar struct {
	X, Y     float64 // mm, centroid at the origin
	Diameter float64 // mm
}

// SectionDiagramData holds what is drawn for one converted beam section.
// Coordinates are centred on the section centroid.
type SectionDiagramData struct {
	Title   string
	Outline []section.Point

	RibAxisX float64
	RibTopY  float64
	MinY     float64
	MaxY     float64

	StressPoints [4]section.Point
	Bars         []Bar
}

// FromBeam collects the drawing data of a converted beam. Bar positions
// are rebuilt from the reinforcement rows, which are measured from the
// rib bottom-left corner.
func FromBeam(b convert.BeamResult, beam prssm.Beam) SectionDiagramData {
	g := b.Geometry
	data := SectionDiagramData{
		Title:        fmt.Sprintf("%s (beam %d)", b.Name, b.Number),
		Outline:      g.Outline,
		RibAxisX:     g.RibAxisX,
		RibTopY:      g.RibTopY,
		MinY:         g.MinY,
		MaxY:         g.MaxY,
		StressPoints: g.StressPoints,
	}
	for _, row := range beam.ReinforcementLongitudinals {
		for k := 0; k < row.ItemsAtRow; k++ {
			data.Bars = append(data.Bars, Bar{
				X:        g.RibLeft.X + row.YOffset + float64(k)*row.StepElement,
				Y:        g.RibLeft.Y + row.ZOffset,
				Diameter: row.Diameter,
			})
		}
	}
	return data
}

// Bounds returns the bounding box of the outline.
func (d SectionDiagramData) Bounds() (minX, maxX, minY, maxY float64) {
	return section.New("", d.Outline).Bounds()
}
