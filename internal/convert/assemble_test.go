package convert

import (
	"math"
	"strings"
	"testing"

	"github.com/alexiusacademia/argoprssm/internal/argo"
)

func singleBeamDoc() *argo.Document {
	return &argo.Document{
		SourceName: "raw/S2_24.03p",
		Params: argo.GlobalParameters{
			ConcreteStrength: 30,
			FullLength:       1200,
			BeamCount:        1,
			BeamCoordinates:  []float64{100},
		},
		Beams: []argo.Beam{rectBeam(1, 100)},
	}
}

func TestConvertSingleBeam(t *testing.T) {
	res, err := Convert(singleBeamDoc())
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v", res.Warnings)
	}

	doc := res.Document
	if doc.BeamsNumber != 1 || len(doc.Beams) != 1 {
		t.Fatalf("beams = %d / %d", doc.BeamsNumber, len(doc.Beams))
	}
	if doc.SelectedSlab.Width != "0" {
		t.Errorf("slab width = %q, want \"0\"", doc.SelectedSlab.Width)
	}

	beam := doc.Beams[0]
	if beam.Material.Name != "Б30" || beam.Material.ID != 1 {
		t.Errorf("material = %s #%d", beam.Material.Name, beam.Material.ID)
	}
	part := beam.BeamParts[0]
	if part.Length != 12000 || part.Division != 1 {
		t.Errorf("part length = %v, division = %d", part.Length, part.Division)
	}

	sec := part.Section
	tests := []struct {
		name      string
		got, want float64
	}{
		{"area", sec.Area, 320000},
		{"Yc", sec.Yc, 0},
		{"Zc", sec.Zc, 0.4},
		{"OffsetY", sec.OffsetY, 0},
		{"OffsetZ", sec.OffsetZ, -400},
		{"WyyPlus", sec.WyyPlus, 400 * 800 * 800 / 6},
		{"Byy", sec.Byy, 400},
	}
	for _, tt := range tests {
		if !approx(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if sec.Name != "S2_24_Б1" || sec.ID != 1 {
		t.Errorf("section = %q #%d", sec.Name, sec.ID)
	}
	if len(sec.StressPoints) != 4 {
		t.Errorf("stress points = %v", sec.StressPoints)
	}
	pts := sec.Shapes[0].Profile[0].Points
	if len(pts) != 4 {
		t.Fatalf("profile points = %d, want 4", len(pts))
	}
	for i, p := range pts {
		if !p.IsProfilePoint {
			t.Errorf("point %d not flagged as a profile point", i)
		}
	}

	br := res.Beams[0]
	if !br.Estimated || br.Binding.X != -200 || br.Binding.Y != 0 {
		t.Errorf("estimated = %v, binding = %v", br.Estimated, br.Binding)
	}
}

func TestConvertEstimatedBars(t *testing.T) {
	res, err := Convert(singleBeamDoc())
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	beam := res.Document.Beams[0]

	long := beam.ReinforcementLongitudinals
	if beam.LongitudinalReinforcementNumber != 2 || len(long) != 2 {
		t.Fatalf("longitudinal rows = %d", len(long))
	}
	tests := []struct {
		name             string
		diameter         float64
		count            int
		yOffset, zOffset float64
	}{
		{"tensile", 40, 1, 45, 50},
		{"compressed", 28, 1, 39, 760},
	}
	for i, tt := range tests {
		r := long[i]
		if r.Diameter != tt.diameter || r.ItemsAtRow != tt.count {
			t.Errorf("%s: %d x %v mm", tt.name, r.ItemsAtRow, r.Diameter)
		}
		if !approx(r.YOffset, tt.yOffset) || !approx(r.ZOffset, tt.zOffset) {
			t.Errorf("%s: offsets (%v, %v), want (%v, %v)", tt.name, r.YOffset, r.ZOffset, tt.yOffset, tt.zOffset)
		}
		if len(r.Segments) != 1 || r.Segments[0].Length != 12000 {
			t.Errorf("%s: segments = %v", tt.name, r.Segments)
		}
		if r.BindingPoint.X != -200 {
			t.Errorf("%s: binding point = %v", tt.name, r.BindingPoint)
		}
	}

	trans := beam.ReinforcementTransverses
	if len(trans) != 1 {
		t.Fatalf("transverse rows = %d, want 1", len(trans))
	}
	st := trans[0]
	if st.Diameter != 8 || st.ItemsAtRow != 120 || st.StepElement != 100 {
		t.Errorf("stirrups: %d x %v mm every %v", st.ItemsAtRow, st.Diameter, st.StepElement)
	}
	if st.Segments[0].Length != 350 || st.Segments[1].Length != 750 {
		t.Errorf("stirrup legs = %v, %v", st.Segments[0].Length, st.Segments[1].Length)
	}
}

func TestConvertDetailedBars(t *testing.T) {
	doc := singleBeamDoc()
	doc.Detailed = &argo.DetailedReinforcement{Beams: []argo.BeamDetail{{
		BeamNumber:  1,
		TensileBars: []argo.BarGroup{{Count: 3, Diameter: 16, Z: []float64{15, -15, 0}}},
	}}}

	res, err := Convert(doc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.Beams[0].Estimated {
		t.Error("detailed bars reported as estimated")
	}
	long := res.Document.Beams[0].ReinforcementLongitudinals
	if len(long) != 1 {
		t.Fatalf("longitudinal rows = %d, want 1", len(long))
	}
	r := long[0]
	if r.Diameter != 16 || r.ItemsAtRow != 3 || r.StepElement != 150 {
		t.Errorf("row: %d x %v mm every %v", r.ItemsAtRow, r.Diameter, r.StepElement)
	}
	if r.YOffset != 50 || r.ZOffset != 50 {
		t.Errorf("offsets = (%v, %v), want (50, 50)", r.YOffset, r.ZOffset)
	}
}

func TestConvertMirrorsOverhangsOutwards(t *testing.T) {
	doc := &argo.Document{
		SourceName: "S2_24.03p",
		Params: argo.GlobalParameters{
			ConcreteStrength: 40,
			FullLength:       2400,
			BeamCount:        2,
			BeamCoordinates:  []float64{0, 150},
		},
		Beams: []argo.Beam{lBeam(1, 0), lBeam(2, 150)},
	}

	res, err := Convert(doc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	left, right := res.Beams[0].Geometry, res.Beams[1].Geometry
	if !left.Mirrored || right.Mirrored {
		t.Errorf("mirrored = %v, %v, want true, false", left.Mirrored, right.Mirrored)
	}
	if !approx(left.LeftFromRib(), -600) || !approx(right.RightFromRib(), 600) {
		t.Errorf("overhangs = %v, %v", left.LeftFromRib(), right.RightFromRib())
	}
	for _, g := range []*Geometry{left, right} {
		if !approx(g.RibWidth, 300) {
			t.Errorf("rib width = %v, want 300", g.RibWidth)
		}
	}

	d := res.Document
	if d.Beams[1].Position != 1500 || d.Beams[1].Step != 1500 {
		t.Errorf("second beam at %v step %v", d.Beams[1].Position, d.Beams[1].Step)
	}
	if d.SelectedSlab.Width != "1500" {
		t.Errorf("slab width = %q, want \"1500\"", d.SelectedSlab.Width)
	}
	sectionIDs := []int{d.Beams[0].BeamParts[0].Section.ID, d.Beams[1].BeamParts[0].Section.ID}
	if sectionIDs[0] != 1 || sectionIDs[1] != 2 {
		t.Errorf("section ids = %v", sectionIDs)
	}
	if d.Beams[0].Material.ID != d.Beams[1].Material.ID {
		t.Error("beams of one document should share the material")
	}
}

func TestConvertErrors(t *testing.T) {
	short := singleBeamDoc()
	short.Params.BeamCoordinates = nil
	if _, err := Convert(short); err == nil {
		t.Error("expected an error for missing beam coordinates")
	}

	flat := singleBeamDoc()
	flat.Beams[0].Contour = []argo.Point{{Z: 0, Y: 0}, {Z: 10, Y: 0}}
	_, err := Convert(flat)
	if err == nil || !strings.Contains(err.Error(), "beam 1") {
		t.Errorf("err = %v, want a beam 1 error", err)
	}
}

func TestConvertDegenerateWarns(t *testing.T) {
	doc := singleBeamDoc()
	doc.Beams[0].Contour = []argo.Point{{Z: 90, Y: 0}, {Z: 100, Y: 0}, {Z: 110, Y: 0}}

	res, err := Convert(doc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(res.Warnings) == 0 || !strings.Contains(res.Warnings[0], "degenerate") {
		t.Errorf("warnings = %v", res.Warnings)
	}
	sec := res.Document.Beams[0].BeamParts[0].Section
	if sec.Area != 0 || math.IsNaN(sec.Iyy) {
		t.Errorf("area = %v, Iyy = %v", sec.Area, sec.Iyy)
	}
}

func TestSectionBaseName(t *testing.T) {
	tests := map[string]string{
		"":                 defaultSectionName,
		"S2_24.03p":        "S2_24",
		"raw/sub/B4_33.01": "B4_33",
	}
	for in, want := range tests {
		if got := sectionBaseName(in); got != want {
			t.Errorf("sectionBaseName(%q) = %q, want %q", in, got, want)
		}
	}
}
