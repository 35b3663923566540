package argo

// Point is a contour coordinate in source units (cm). Z is horizontal,
// Y is vertical.
type Point struct {
	Z float64 `json:"z"`
	Y float64 `json:"y"`
}

// Document is one decoded ARGO file. It is built once by the decoder and
// not modified afterwards.
type Document struct {
	SourceName string   `json:"source_name,omitempty"`
	FileCode   FileCode `json:"file_code"`

	// Comments are the header lines, preserved verbatim.
	Comments []string `json:"comments"`

	Params GlobalParameters `json:"params"`
	Beams  []Beam           `json:"beams"`

	// PrintCopies is nil when the file ends right after the last beam.
	PrintCopies *int `json:"print_copies,omitempty"`

	// Detailed is nil when the file carries no detailed reinforcement pass.
	Detailed *DetailedReinforcement `json:"detailed,omitempty"`
}

// GlobalParameters holds the document-wide scalars read before the first beam.
type GlobalParameters struct {
	PrintLevel       float64 `json:"print_level"`
	ConcreteStrength float64 `json:"concrete_strength"` // MPa

	// Reinforcement steel type codes
	TensileSteelType    float64 `json:"tensile_steel_type"`
	CompressedSteelType float64 `json:"compressed_steel_type"`
	SlabSteelType       float64 `json:"slab_steel_type"`
	StirrupSteelType    float64 `json:"stirrup_steel_type"`

	SupportAxis1  float64 `json:"support_axis_1"`
	SupportAxis2  float64 `json:"support_axis_2"`
	InnerSupport1 float64 `json:"inner_support_1"`
	InnerSupport2 float64 `json:"inner_support_2"`
	FullLength    float64 `json:"full_length"` // cm

	BeamCount       int       `json:"beam_count"`
	BeamCoordinates []float64 `json:"beam_coordinates"` // cm, one per beam

	BallastType float64    `json:"ballast_type"`
	SleeperType float64    `json:"sleeper_type"`
	TrackAxisZ  [2]float64 `json:"track_axis_z"`

	// DiaphragmPresence is only present in multi-beam files.
	DiaphragmPresence float64 `json:"diaphragm_presence"`

	BallastContour []Point `json:"ballast_contour"`
}

// LineLoads are the sidewalk and fence loads carried by edge beams.
type LineLoads struct {
	SidewalkIntensity  float64 `json:"sidewalk_intensity"`
	SidewalkCoordinate float64 `json:"sidewalk_coordinate"`
	FenceIntensity     float64 `json:"fence_intensity"`
	FenceCoordinate    float64 `json:"fence_coordinate"`
}

// Junction is a pair of 1-based contour point indices.
type Junction [2]int

// Beam is one beam record.
type Beam struct {
	Number int `json:"number"` // 1-based

	// Loads is nil for inner beams of a document with more than two beams.
	Loads *LineLoads `json:"loads,omitempty"`

	Slab               SlabReinforcement   `json:"slab"`
	ConcentratedForces []ConcentratedForce `json:"concentrated_forces"`
	SectionCoordinates []float64           `json:"section_coordinates"`

	SlabBeamJunction Junction `json:"slab_beam_junction"`
	SlabVuteJunction Junction `json:"slab_vute_junction"`
	// BorderSlab is nil for inner beams.
	BorderSlab *Junction `json:"border_slab,omitempty"`
	// BorderSlab2 is only present in single-beam documents.
	BorderSlab2 *Junction `json:"border_slab_2,omitempty"`

	LongitudinalCutLower float64 `json:"longitudinal_cut_lower"`
	LongitudinalCutUpper float64 `json:"longitudinal_cut_upper"`

	Contour       []Point        `json:"contour"`
	ChangedPoints []ChangedPoint `json:"changed_points,omitempty"`

	Bends           []Bend           `json:"bends"`
	StirrupSections []StirrupSection `json:"stirrup_sections"`
	TensileBars     []CalculatedBars `json:"tensile_bars"`
	CompressedBars  []CalculatedBars `json:"compressed_bars"`
}

// SlabReinforcement lists the calculated slab bars of a beam.
type SlabReinforcement struct {
	Count int             `json:"count"`
	Bars  []CalculatedBar `json:"bars,omitempty"`
}

// CalculatedBar is a slab bar given as a bend-point polyline and an area.
type CalculatedBar struct {
	Area       float64 `json:"area"` // cm²
	BendPoints []Point `json:"bend_points"`
}

// ConcentratedForce is a point load along the beam.
type ConcentratedForce struct {
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

// ChangedPoint overrides one contour point. Index is 1-based.
type ChangedPoint struct {
	Index int   `json:"index"`
	Point Point `json:"point"`
}

// Bend is a bent-up longitudinal bar.
type Bend struct {
	Area            float64 `json:"area"`
	UpperCoordinate float64 `json:"upper_coordinate"`
	LowerCoordinate float64 `json:"lower_coordinate"`
	DeltaUpper      float64 `json:"delta_upper"`
	DeltaLower      float64 `json:"delta_lower"`
}

// StirrupSection sets a constant stirrup density up to EndX.
type StirrupSection struct {
	EndX float64 `json:"end_x"` // cm
	Area float64 `json:"area"`  // cm², both legs
	Step float64 `json:"step"`  // cm
}

// CalculatedBars is the required steel over one span segment. Delta is
// measured up from the profile bottom for tensile bars and down from the
// rib top for compressed bars.
type CalculatedBars struct {
	XMin  float64 `json:"x_min"`
	XMax  float64 `json:"x_max"`
	Delta float64 `json:"delta"`
	Area  float64 `json:"area"` // cm²
}

// DetailedReinforcement is the optional second pass with explicit bars.
type DetailedReinforcement struct {
	Beams []BeamDetail `json:"beams"`
}

// For returns the detail block of the given beam number, or nil.
func (d *DetailedReinforcement) For(number int) *BeamDetail {
	if d == nil {
		return nil
	}
	for i := range d.Beams {
		if d.Beams[i].BeamNumber == number {
			return &d.Beams[i]
		}
	}
	return nil
}

// BeamDetail holds the explicit bar groups of one beam. Groups map by
// index onto the beam's TensileBars and CompressedBars.
type BeamDetail struct {
	BeamNumber     int        `json:"beam_number"`
	TensileBars    []BarGroup `json:"tensile_bars"`
	CompressedBars []BarGroup `json:"compressed_bars"`
	PlateBars      []PlateBar `json:"plate_bars"`
}

// BarGroup is a row of identical bars at explicit horizontal positions.
type BarGroup struct {
	Count    int       `json:"count"`
	Diameter float64   `json:"diameter"` // mm
	Z        []float64 `json:"z"`
}

// PlateBar is the chosen diameter and spacing of one slab bar.
type PlateBar struct {
	Diameter float64 `json:"diameter"`
	Step     float64 `json:"step"`
}
