package convert

import (
	"math"
	"slices"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/norms"
	"github.com/alexiusacademia/argoprssm/internal/prssm"
	"github.com/alexiusacademia/argoprssm/internal/section"
)

const maxBarsPerRow = 10

// DetectZScale guesses whether explicit bar coordinates are in the same
// unit as the rib width (1) or ten times smaller (10), by comparing the
// coordinate range with the rib width. Fewer than two coordinates or an
// unknown rib width give 10.
func DetectZScale(z []float64, ribWidth float64) float64 {
	if len(z) < 2 || ribWidth <= 1e-6 {
		return 10
	}
	span := slices.Max(z) - slices.Min(z)
	d1 := math.Abs(span - ribWidth)
	d10 := math.Abs(span*10 - ribWidth)
	if d10 < d1 {
		return 10
	}
	return 1
}

// EstimateBars picks a bar diameter (mm) and count for a required steel
// area in cm². Diameters are tried from the largest down; the first one
// needing between 1 and 10 bars wins.
func EstimateBars(areaCm2 float64) (diameter float64, count int) {
	area := areaCm2 * 100
	for _, d := range slices.Backward(norms.BarDiameters) {
		n := int(math.Round(area / norms.BarArea(d)))
		if n >= 1 && n <= maxBarsPerRow {
			return d, n
		}
	}
	d := norms.FallbackBarDiameter
	return d, max(1, int(math.Round(area/norms.BarArea(d))))
}

// EstimateStirrupDiameter picks the smallest stirrup diameter whose leg
// covers 80% of half the given two-leg area (cm²).
func EstimateStirrupDiameter(areaCm2 float64) float64 {
	leg := areaCm2 * 100 / 2
	for _, d := range norms.StirrupDiameters {
		if norms.BarArea(d) >= leg*norms.StirrupUtilization {
			return d
		}
	}
	return norms.FallbackStirrupDiameter
}

// placement carries what every bar of one beam is measured against.
type placement struct {
	geo     *Geometry
	binding prssm.Point   // global binding point
	anchor  section.Point // local binding point, the rib bottom-left corner
}

func (p *placement) row(diameter float64, count int, firstX, z, step float64, cb argo.CalculatedBars) prssm.LongitudinalReinforcement {
	return prssm.LongitudinalReinforcement{
		Diameter:        diameter,
		NAtItem:         1,
		ItemsAtRow:      count,
		StepElement:     round(step, 2),
		OffsetFromStart: math.Max(0, cb.XMin*cmToMM),
		YOffset:         round(firstX-p.anchor.X, 2),
		ZOffset:         round(z-p.anchor.Y, 2),
		SegmentCount:    1,
		Segments:        []prssm.Segment{{Length: (cb.XMax - cb.XMin) * cmToMM}},
		BindingPoint:    p.binding,
	}
}

// tensileZ is measured up from the profile bottom.
func (p *placement) tensileZ(cb argo.CalculatedBars) float64 {
	return p.geo.MinY + cb.Delta*cmToMM
}

// compressedZ is measured down from the rib top, not the slab top.
func (p *placement) compressedZ(cb argo.CalculatedBars) float64 {
	return p.geo.RibTopY - cb.Delta*cmToMM
}

// longitudinal maps the beam's bars. Explicit groups are used when the
// detail block has any; otherwise bars are estimated from the areas.
func (p *placement) longitudinal(b *argo.Beam, detail *argo.BeamDetail) (rows []prssm.LongitudinalReinforcement, estimated bool) {
	if detail == nil || (len(detail.TensileBars) == 0 && len(detail.CompressedBars) == 0) {
		rows = append(rows, p.estimated(b.TensileBars, p.tensileZ)...)
		rows = append(rows, p.estimated(b.CompressedBars, p.compressedZ)...)
		return rows, true
	}
	rows = append(rows, p.detailed(detail.TensileBars, b.TensileBars, p.tensileZ)...)
	rows = append(rows, p.detailed(detail.CompressedBars, b.CompressedBars, p.compressedZ)...)
	return rows, false
}

// detailed pairs groups with calculated entries by index.
func (p *placement) detailed(groups []argo.BarGroup, calc []argo.CalculatedBars, level func(argo.CalculatedBars) float64) []prssm.LongitudinalReinforcement {
	var rows []prssm.LongitudinalReinforcement
	for j := 0; j < len(groups) && j < len(calc); j++ {
		g, cb := groups[j], calc[j]
		if g.Count <= 0 {
			continue
		}

		var firstX, step float64
		if len(g.Z) > 0 {
			z := slices.Sorted(slices.Values(g.Z))
			scale := DetectZScale(z, p.geo.RibWidth)
			firstX = p.geo.RibAxisX + z[0]*scale
			lastX := p.geo.RibAxisX + z[len(z)-1]*scale
			if g.Count > 1 {
				step = (lastX - firstX) / float64(g.Count-1)
			}
		}
		rows = append(rows, p.row(g.Diameter, g.Count, firstX, level(cb), step, cb))
	}
	return rows
}

// estimated spreads the bars evenly over the rib width less the covers.
func (p *placement) estimated(calc []argo.CalculatedBars, level func(argo.CalculatedBars) float64) []prssm.LongitudinalReinforcement {
	var rows []prssm.LongitudinalReinforcement
	for _, cb := range calc {
		if cb.Area <= 0 {
			continue
		}
		d, n := EstimateBars(cb.Area)
		usable := math.Max(0, p.geo.RibWidth-2*norms.SideCover-d)
		var step float64
		if n > 1 {
			step = usable / float64(n-1)
		}
		firstX := p.geo.RibAxisX - usable/2
		rows = append(rows, p.row(d, n, firstX, level(cb), step, cb))
	}
	return rows
}

// transverse emits one stirrup row per stirrup section. Sections without
// area or step only move the start of the next one.
func (p *placement) transverse(sections []argo.StirrupSection) []prssm.TransverseReinforcement {
	var rows []prssm.TransverseReinforcement
	width := p.geo.RibWidth - 2*norms.SideCover
	height := p.geo.RibHeight() - 2*norms.BottomCover

	var startX float64
	for _, ss := range sections {
		endX := ss.EndX * cmToMM
		if ss.Area <= 0 || ss.Step <= 0 {
			startX = endX
			continue
		}
		step := ss.Step * cmToMM
		rows = append(rows, prssm.TransverseReinforcement{
			Diameter:        EstimateStirrupDiameter(ss.Area),
			NAtItem:         1,
			ItemsAtRow:      max(1, int((endX-startX)/step)),
			StepElement:     step,
			OffsetFromStart: startX,
			SegmentCount:    2,
			Segments: []prssm.Segment{
				{Length: width, Angle: 0},
				{Length: height, Angle: 90, Height: height},
			},
			BindingPoint: p.binding,
		})
		startX = endX
	}
	return rows
}

func round(v float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Round(v*f) / f
}
