package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	concreteFill = color.RGBA{R: 200, G: 200, B: 200, A: 160}
	steelColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	axisColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	stressColor  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
)

// ExportBeamSection draws the section outline, rib axis, rib top, stress
// points and bars. The format follows the file extension (.png, .svg,
// .pdf); any other name gets ".png" appended.
func ExportBeamSection(data SectionDiagramData, filename string) error {
	if len(data.Outline) < 3 {
		return fmt.Errorf("section %q has no outline to draw", data.Title)
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline := make(plotter.XYs, len(data.Outline))
	for i, v := range data.Outline {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	body, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	body.Color = concreteFill
	body.LineStyle.Width = vg.Points(2)
	body.LineStyle.Color = color.Black
	p.Add(body)

	minX, maxX, _, _ := data.Bounds()

	// Rib axis
	axis, err := plotter.NewLine(plotter.XYs{
		{X: data.RibAxisX, Y: data.MinY - 20},
		{X: data.RibAxisX, Y: data.MaxY + 20},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = axisColor
	axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(axis)

	// Rib top
	ribTop, err := plotter.NewLine(plotter.XYs{
		{X: minX - 20, Y: data.RibTopY},
		{X: maxX + 20, Y: data.RibTopY},
	})
	if err != nil {
		return err
	}
	ribTop.LineStyle.Width = vg.Points(1)
	ribTop.LineStyle.Color = color.Gray{Y: 128}
	ribTop.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(ribTop)

	stress := make(plotter.XYs, len(data.StressPoints))
	for i, sp := range data.StressPoints {
		stress[i] = plotter.XY{X: sp.X, Y: sp.Y}
	}
	stressMarks, err := plotter.NewScatter(stress)
	if err != nil {
		return err
	}
	stressMarks.GlyphStyle.Color = stressColor
	stressMarks.GlyphStyle.Radius = vg.Points(3)
	stressMarks.GlyphStyle.Shape = draw.BoxGlyph{}
	p.Add(stressMarks)

	if len(data.Bars) > 0 {
		bars := make(plotter.XYs, len(data.Bars))
		for i, b := range data.Bars {
			bars[i] = plotter.XY{X: b.X, Y: b.Y}
		}
		steel, err := plotter.NewScatter(bars)
		if err != nil {
			return err
		}
		steel.GlyphStyle.Color = steelColor
		steel.GlyphStyle.Radius = vg.Points(4)
		steel.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(steel)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: maxX + 30, Y: data.RibTopY}, {X: 0, Y: 0}},
		Labels: []string{"rib top", "C"},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
