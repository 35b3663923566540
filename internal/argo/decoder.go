package argo

import (
	"errors"
	"fmt"
)

// Tracer receives decoder progress messages. It may be nil.
type Tracer func(format string, args ...any)

// Decoder consumes a token stream positionally and builds a Document.
// The grammar branches on values it has already read (beam count, beam
// position), so decoding is a straight sequence of guarded reads.
//
// The first failed read is kept in err; later reads return zero values
// and count-driven loops collapse to nothing, so a decode step can check
// err once at its end.
type Decoder struct {
	cur   *Cursor
	err   error
	Trace Tracer
}

// NewDecoder returns a decoder over the body tokens.
func NewDecoder(values []string) *Decoder {
	return &Decoder{cur: NewCursor(values)}
}

// Parse tokenizes decoded text and decodes it into a Document.
func Parse(text string, trace Tracer) (*Document, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	dec := NewDecoder(tokens.Values)
	dec.Trace = trace
	doc, err := dec.Decode()
	if err != nil {
		return nil, err
	}
	doc.Comments = tokens.Comments
	return doc, nil
}

// Decode reads a complete document. Any read failure is fatal; no
// partial document is returned.
func (d *Decoder) Decode() (*Document, error) {
	doc := &Document{}
	d.tracef("%d tokens", d.cur.Len())

	if err := d.decodeParams(&doc.Params); err != nil {
		return nil, err
	}

	total := doc.Params.BeamCount
	doc.Beams = make([]Beam, 0, min(total, d.cur.Remaining()))
	for n := 1; n <= total; n++ {
		beam, err := d.decodeBeam(n, total)
		if err != nil {
			return nil, fmt.Errorf("beam %d: %w", n, err)
		}
		doc.Beams = append(doc.Beams, *beam)
	}

	if d.cur.Exhausted() {
		return doc, nil
	}
	copies := d.int("print copies")
	if d.err != nil {
		return nil, d.err
	}
	doc.PrintCopies = &copies
	d.tracef("print copies: %d", copies)

	if d.cur.Exhausted() {
		return doc, nil
	}
	detailed, err := d.decodeDetailed(doc.Beams)
	if err != nil {
		return nil, fmt.Errorf("detailed reinforcement: %w", err)
	}
	doc.Detailed = detailed
	return doc, nil
}

func (d *Decoder) decodeParams(gp *GlobalParameters) error {
	gp.PrintLevel = d.float("print level")
	gp.ConcreteStrength = d.float("concrete strength")
	gp.TensileSteelType = d.float("tensile steel type")
	gp.CompressedSteelType = d.float("compressed steel type")
	gp.SlabSteelType = d.float("slab steel type")
	gp.StirrupSteelType = d.float("stirrup steel type")
	gp.SupportAxis1 = d.float("support axis 1")
	gp.SupportAxis2 = d.float("support axis 2")
	gp.InnerSupport1 = d.float("inner support 1")
	gp.InnerSupport2 = d.float("inner support 2")
	gp.FullLength = d.float("full length")

	gp.BeamCount = d.int("beam count")
	if d.err != nil {
		return d.err
	}
	if gp.BeamCount < 1 {
		return &FormatError{Msg: fmt.Sprintf("beam count %d must be at least 1", gp.BeamCount)}
	}
	d.tracef("beam count: %d", gp.BeamCount)

	gp.BeamCoordinates = make([]float64, 0, min(gp.BeamCount, d.cur.Remaining()))
	for i := 0; i < gp.BeamCount && d.err == nil; i++ {
		gp.BeamCoordinates = append(gp.BeamCoordinates, d.float("beam coordinate"))
	}

	gp.BallastType = d.float("ballast type")
	gp.SleeperType = d.float("sleeper type")
	gp.TrackAxisZ[0] = d.float("track axis")
	gp.TrackAxisZ[1] = d.float("track axis")
	if gp.BeamCount > 1 {
		gp.DiaphragmPresence = d.float("diaphragm presence")
	}

	gp.BallastContour = d.points("ballast contour")
	return d.err
}

func (d *Decoder) decodeBeam(number, total int) (*Beam, error) {
	b := &Beam{Number: number}

	edge := number == 1 || number == total
	inner := total > 2 && !edge

	if edge || total <= 2 {
		b.Loads = &LineLoads{
			SidewalkIntensity:  d.float("sidewalk load"),
			SidewalkCoordinate: d.float("sidewalk coordinate"),
			FenceIntensity:     d.float("fence load"),
			FenceCoordinate:    d.float("fence coordinate"),
		}
	}

	d.decodeSlab(&b.Slab)

	forces := d.int("concentrated force count")
	for i := 0; i < forces && d.err == nil; i++ {
		b.ConcentratedForces = append(b.ConcentratedForces, ConcentratedForce{
			X:     d.float("force coordinate"),
			Value: d.float("force value"),
		})
	}

	sections := d.int("design section count")
	for i := 0; i < sections && d.err == nil; i++ {
		b.SectionCoordinates = append(b.SectionCoordinates, d.float("design section"))
	}

	b.SlabBeamJunction = d.junction("slab-beam junction")
	b.SlabVuteJunction = d.junction("slab-vute junction")
	if !inner {
		j := d.junction("border-slab junction")
		b.BorderSlab = &j
	}
	if total == 1 {
		j := d.junction("border-slab junction 2")
		b.BorderSlab2 = &j
	}

	b.LongitudinalCutLower = d.float("longitudinal cut")
	b.LongitudinalCutUpper = d.float("longitudinal cut")

	b.Contour = d.points("cross-section contour")
	d.tracef("beam %d: %d contour points", number, len(b.Contour))

	changed := d.int("changed point count")
	if changed > 0 {
		indices := make([]int, 0, min(changed, d.cur.Remaining()))
		for i := 0; i < changed && d.err == nil; i++ {
			indices = append(indices, d.int("changed point index"))
		}
		for i := 0; i < changed && d.err == nil; i++ {
			b.ChangedPoints = append(b.ChangedPoints, ChangedPoint{
				Index: indices[i],
				Point: d.point("changed point"),
			})
		}
	}

	bends := d.int("bend count")
	for i := 0; i < bends && d.err == nil; i++ {
		b.Bends = append(b.Bends, Bend{
			Area:            d.float("bend area"),
			UpperCoordinate: d.float("bend upper coordinate"),
			LowerCoordinate: d.float("bend lower coordinate"),
			DeltaUpper:      d.float("bend upper offset"),
			DeltaLower:      d.float("bend lower offset"),
		})
	}

	stirrups := d.int("stirrup section count")
	for i := 0; i < stirrups && d.err == nil; i++ {
		b.StirrupSections = append(b.StirrupSections, StirrupSection{
			EndX: d.float("stirrup end"),
			Area: d.float("stirrup area"),
			Step: d.float("stirrup step"),
		})
	}

	b.TensileBars = d.calculatedBars("tensile bar")
	b.CompressedBars = d.calculatedBars("compressed bar")
	d.tracef("beam %d: %d tensile, %d compressed, %d stirrup sections",
		number, len(b.TensileBars), len(b.CompressedBars), len(b.StirrupSections))

	if d.err != nil {
		return nil, d.err
	}
	return b, nil
}

func (d *Decoder) decodeSlab(s *SlabReinforcement) {
	s.Count = d.int("slab bar count")
	if s.Count <= 0 || d.err != nil {
		return
	}

	bendCounts := make([]int, 0, min(s.Count, d.cur.Remaining()))
	for i := 0; i < s.Count && d.err == nil; i++ {
		bendCounts = append(bendCounts, d.int("slab bend point count"))
	}
	areas := make([]float64, 0, len(bendCounts))
	for i := 0; i < s.Count && d.err == nil; i++ {
		areas = append(areas, d.float("slab bar area"))
	}
	for i := 0; i < s.Count && d.err == nil; i++ {
		bar := CalculatedBar{Area: areas[i]}
		for j := 0; j < bendCounts[i] && d.err == nil; j++ {
			bar.BendPoints = append(bar.BendPoints, d.point("slab bend point"))
		}
		s.Bars = append(s.Bars, bar)
	}
}

func (d *Decoder) calculatedBars(field string) []CalculatedBars {
	n := d.int(field + " count")
	var bars []CalculatedBars
	for i := 0; i < n && d.err == nil; i++ {
		bars = append(bars, CalculatedBars{
			XMin:  d.float(field + " start"),
			XMax:  d.float(field + " end"),
			Delta: d.float(field + " offset"),
			Area:  d.float(field + " area"),
		})
	}
	return bars
}

// decodeDetailed reads the optional explicit-bar pass. Running out of
// tokens ends the pass without error; what was read completely is kept.
func (d *Decoder) decodeDetailed(beams []Beam) (*DetailedReinforcement, error) {
	detailed := &DetailedReinforcement{}

	for _, beam := range beams {
		bd := BeamDetail{BeamNumber: beam.Number}

		groups, stop, err := d.barGroups(len(beam.TensileBars), "tensile group")
		bd.TensileBars = groups
		if err == nil && !stop {
			groups, stop, err = d.barGroups(len(beam.CompressedBars), "compressed group")
			bd.CompressedBars = groups
		}
		if err == nil && !stop && beam.Slab.Count > 0 {
			bd.PlateBars, stop, err = d.plateBars(beam.Slab.Count)
		}
		if err != nil {
			return nil, err
		}

		detailed.Beams = append(detailed.Beams, bd)
		d.tracef("beam %d detail: %d tensile, %d compressed, %d plate bars",
			beam.Number, len(bd.TensileBars), len(bd.CompressedBars), len(bd.PlateBars))
		if stop {
			break
		}
	}
	return detailed, nil
}

// barGroups reads up to n groups. A count of zero or less is a sentinel:
// it is pushed back and ends the list.
func (d *Decoder) barGroups(n int, field string) (groups []BarGroup, stop bool, err error) {
	for i := 0; i < n; i++ {
		if d.cur.Exhausted() {
			return groups, true, nil
		}
		var count int
		count, err = d.cur.ReadInt(field + " count")
		if err != nil {
			return groups, false, err
		}
		if count <= 0 {
			return groups, false, d.cur.PushBack()
		}

		g := BarGroup{Count: count}
		g.Diameter, err = d.cur.ReadFloat(field + " diameter")
		for j := 0; j < count && err == nil; j++ {
			var z float64
			z, err = d.cur.ReadFloat(field + " coordinate")
			g.Z = append(g.Z, z)
		}
		if errors.Is(err, ErrUnexpectedEnd) {
			return groups, true, nil
		}
		if err != nil {
			return groups, false, err
		}
		groups = append(groups, g)
	}
	return groups, false, nil
}

func (d *Decoder) plateBars(n int) (bars []PlateBar, stop bool, err error) {
	for i := 0; i < n; i++ {
		if d.cur.Exhausted() {
			return bars, true, nil
		}
		var pb PlateBar
		pb.Diameter, err = d.cur.ReadFloat("plate bar diameter")
		if err == nil {
			pb.Step, err = d.cur.ReadFloat("plate bar step")
		}
		if errors.Is(err, ErrUnexpectedEnd) {
			return bars, true, nil
		}
		if err != nil {
			return bars, false, err
		}
		bars = append(bars, pb)
	}
	return bars, false, nil
}

func (d *Decoder) float(field string) float64 {
	if d.err != nil {
		return 0
	}
	v, err := d.cur.ReadFloat(field)
	if err != nil {
		d.err = err
	}
	return v
}

func (d *Decoder) int(field string) int {
	if d.err != nil {
		return 0
	}
	v, err := d.cur.ReadInt(field)
	if err != nil {
		d.err = err
	}
	return v
}

func (d *Decoder) point(field string) Point {
	z := d.float(field)
	y := d.float(field)
	return Point{Z: z, Y: y}
}

// points reads a count followed by that many (Z, Y) pairs.
func (d *Decoder) points(field string) []Point {
	n := d.int(field + " point count")
	var pts []Point
	for i := 0; i < n && d.err == nil; i++ {
		pts = append(pts, d.point(field))
	}
	return pts
}

func (d *Decoder) junction(field string) Junction {
	a := d.int(field)
	b := d.int(field)
	return Junction{a, b}
}

func (d *Decoder) tracef(format string, args ...any) {
	if d.Trace != nil {
		d.Trace(format, args...)
	}
}
