package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/norms"
	"github.com/alexiusacademia/argoprssm/internal/prssm"
)

const defaultSectionName = "Сечение"

// Result is a converted document together with the per-beam data the
// reports and diagrams need.
type Result struct {
	Document *prssm.Document
	Beams    []BeamResult
	Warnings []string
}

// BeamResult describes one converted beam.
type BeamResult struct {
	Number   int
	Name     string
	Geometry *Geometry
	Position float64 // mm
	Step     float64 // mm
	Binding  prssm.Point

	// Estimated is set when bars were sized from areas rather than read
	// from the detailed pass.
	Estimated    bool
	Longitudinal int
	Transverse   int
}

// ids hands out section and material ids. One value is used per
// document, so concurrent conversions never share counters.
type ids struct {
	section  int
	material int
}

func (c *ids) nextSection() int  { c.section++; return c.section }
func (c *ids) nextMaterial() int { c.material++; return c.material }

// Extent is one beam's rib axis (mm from the first beam) and its
// profile edges relative to that axis.
type Extent struct {
	Axis  float64
	Left  float64
	Right float64
}

// Layout positions beams left to right. A beam whose left edge would
// overlap the previous beam's right edge is pushed right by the overlap,
// and so is every beam after it.
func Layout(extents []Extent) (positions, steps []float64) {
	positions = make([]float64, len(extents))
	steps = make([]float64, len(extents))

	var extra, prevRight float64
	for i, e := range extents {
		pos := e.Axis + extra
		if left := pos + e.Left; i > 0 && left < prevRight {
			shift := prevRight - left
			extra += shift
			pos += shift
		}
		prevRight = pos + e.Right
		positions[i] = pos
		if i > 0 {
			steps[i] = pos - positions[i-1]
		}
	}
	return positions, steps
}

// SlabWidth is the distance between the first and last beam axes.
func SlabWidth(positions []float64) float64 {
	if len(positions) < 2 {
		return 0
	}
	return positions[len(positions)-1] - positions[0]
}

// Convert turns a decoded ARGO document into a PRSSM document. It either
// converts every beam or fails; no partial document is returned.
func Convert(doc *argo.Document) (*Result, error) {
	gp := &doc.Params
	if len(gp.BeamCoordinates) < len(doc.Beams) {
		return nil, fmt.Errorf("%d beam coordinates for %d beams", len(gp.BeamCoordinates), len(doc.Beams))
	}

	var ctx ids
	res := &Result{Document: prssm.NewDocument(gp.BeamCount)}
	material := newMaterial(gp.ConcreteStrength, ctx.nextMaterial())
	base := sectionBaseName(doc.SourceName)

	var midAxis float64
	if n := len(gp.BeamCoordinates); n > 0 {
		midAxis = (gp.BeamCoordinates[0] + gp.BeamCoordinates[n-1]) / 2
	}

	geos := make([]*Geometry, len(doc.Beams))
	extents := make([]Extent, len(doc.Beams))
	for i := range doc.Beams {
		b := &doc.Beams[i]
		axisZ := gp.BeamCoordinates[i]

		geo, err := Normalize(b, axisZ, axisZ > midAxis+1e-6)
		if err != nil {
			return nil, fmt.Errorf("beam %d: %w", b.Number, err)
		}
		if geo.Degenerate {
			res.warnf("beam %d: degenerate contour, section properties set to zero", b.Number)
		}
		if geo.Snapped {
			res.warnf("beam %d: self-crossing contour snapped", b.Number)
		}
		geos[i] = geo
		extents[i] = Extent{
			Axis:  (axisZ - gp.BeamCoordinates[0]) * cmToMM,
			Left:  geo.LeftFromRib(),
			Right: geo.RightFromRib(),
		}
	}
	positions, steps := Layout(extents)

	for i := range doc.Beams {
		b := &doc.Beams[i]
		geo := geos[i]
		name := fmt.Sprintf("%s_Б%d", base, i+1)

		binding := prssm.Point{X: round(positions[i]+geo.RibLeft.X-geo.RibAxisX, 2), Y: 0}
		p := &placement{geo: geo, binding: binding, anchor: geo.RibLeft}
		long, estimated := p.longitudinal(b, doc.Detailed.For(b.Number))
		trans := p.transverse(b.StirrupSections)

		res.Document.Beams = append(res.Document.Beams, prssm.Beam{
			ID:       i + 1,
			Material: material,
			Position: positions[i],
			Step:     steps[i],
			BeamParts: []prssm.BeamPart{{
				ID:       1,
				Section:  targetSection(name, ctx.nextSection(), geo),
				Length:   gp.FullLength * cmToMM,
				Division: 1,
			}},
			BeamPartsNumber:                 1,
			LongitudinalReinforcementNumber: len(long),
			TransverseReinforcementNumber:   len(trans),
			ReinforcementLongitudinals:      long,
			ReinforcementTransverses:        trans,
		})
		res.Beams = append(res.Beams, BeamResult{
			Number:       b.Number,
			Name:         name,
			Geometry:     geo,
			Position:     positions[i],
			Step:         steps[i],
			Binding:      binding,
			Estimated:    estimated,
			Longitudinal: len(long),
			Transverse:   len(trans),
		})
	}

	if w := SlabWidth(positions); w > 0 {
		res.Document.SelectedSlab.Width = fmt.Sprintf("%.0f", w)
	}
	return res, nil
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func sectionBaseName(source string) string {
	if source == "" {
		return defaultSectionName
	}
	name := filepath.Base(source)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func newMaterial(strength float64, id int) prssm.Material {
	c := norms.ConcreteClassFor(strength)
	return prssm.Material{
		ID:                   id,
		Name:                 c.Name,
		StandartMaterialType: c.StdType,
		YoungModulus:         c.YoungModulus,
		PoissonRatio:         norms.PoissonRatio,
		SpecificWeight:       norms.SpecificWeight,
		ThermalCoefficient:   norms.ThermalCoefficient,
		GammaM:               1,
	}
}

// targetSection copies the geometry into the target section. Yc and Zc
// locate the rib bottom axis relative to the centroid, in metres.
func targetSection(name string, id int, g *Geometry) prssm.Section {
	props := g.Props
	region := prssm.ProfileRegion{RegionType: prssm.RegionBody}
	for k, v := range g.Outline {
		region.Points = append(region.Points, prssm.ProfilePoint{
			X:              round(v.X, 2),
			Y:              round(v.Y, 2),
			IsProfilePoint: IsProfilePoint(g.Outline, k),
		})
	}

	stress := make([]prssm.Point, len(g.StressPoints))
	for i, sp := range g.StressPoints {
		stress[i] = prssm.Point{X: round(sp.X, 2), Y: round(sp.Y, 2)}
	}

	return prssm.Section{
		ID:          id,
		Name:        name,
		SectionType: 1,
		Yc:          round(g.RibAxisX/1000, 5),
		Zc:          round(-g.RibLeft.Y/1000, 5),
		Perimeter:   props.Perimeter,
		Area:        props.Area,
		Iyy:         props.Iyy,
		Izz:         props.Izz,
		Iyz:         props.Iyz,
		It:          props.It,
		Syy:         props.Syy,
		Szz:         props.Szz,
		Byy:         props.Byy,
		Bzz:         props.Bzz,
		WyyPlus:     props.WyTop,
		WyyMinus:    props.WyBottom,
		WzzPlus:     props.WzRight,
		WzzMinus:    props.WzLeft,
		OffsetType:  prssm.OffsetRibBottom,
		OffsetY:     round(g.RibAxisX, 2),
		OffsetZ:     round(g.RibLeft.Y, 2),
		Shapes: []prssm.Shape{{
			ID:       1,
			Name:     "custom",
			Location: prssm.Point{},
			Links:    []any{},
			Profile:  []prssm.ProfileRegion{region},
		}},
		StressPoints: stress,
		WeightFactor: 1,
	}
}
