// Package prssm is the target document model. Field names and defaults
// follow what the PRSSM tool reads; fields the converter never fills are
// kept so the output is complete.
package prssm

// Document is the root of a .prssm file.
type Document struct {
	SelectedNode         any      `json:"SelectedNode"`
	BeamsNumber          int      `json:"BeamsNumber"`
	Beams                []Beam   `json:"Beams"`
	R                    float64  `json:"R"`
	Angle                float64  `json:"Angle"`
	Slant                float64  `json:"Slant"`
	SelectedSlab         Slab     `json:"SelectedSlab"`
	BracesNumber         int      `json:"BracesNumber"`
	Braces               any      `json:"Braces"`
	BraceMaterial        any      `json:"BraceMaterial"`
	SelectedBeamSpanType SpanType `json:"SelectedBeamSpanType"`
	Loads                any      `json:"Loads"`
	SelfWeights          any      `json:"SelfWeights"`
	PanelLengths         any      `json:"PanelLengths"`
}

type Beam struct {
	ID                              int                         `json:"Id"`
	BeamParts                       []BeamPart                  `json:"BeamParts"`
	BeamPartsNumber                 int                         `json:"BeamPartsNumber"`
	Material                        Material                    `json:"Material"`
	Step                            float64                     `json:"Step"`
	Position                        float64                     `json:"Position"`
	R                               float64                     `json:"R"`
	LongitudinalReinforcementNumber int                         `json:"LongitudinalReinforcementNumber"`
	TransverseReinforcementNumber   int                         `json:"TransverseReinforcementNumber"`
	ReinforcementLongitudinals      []LongitudinalReinforcement `json:"ReinforcementLongitudinals"`
	ReinforcementTransverses        []TransverseReinforcement   `json:"ReinforcementTransverses"`
}

type BeamPart struct {
	ID          int     `json:"Id"`
	Section     Section `json:"Section"`
	Length      float64 `json:"Length"`
	Division    int     `json:"Division"`
	IsStartPier bool    `json:"IsStartPier"`
	IsEndPier   bool    `json:"IsEndPier"`
}

// Section carries the geometry and the computed properties of one beam
// cross-section. Yc and Zc are in metres, everything else in millimetres.
type Section struct {
	Name         string  `json:"Name"`
	SectionType  int     `json:"SectionType"`
	Yc           float64 `json:"Yc"`
	Zc           float64 `json:"Zc"`
	Perimeter    float64 `json:"Perimeter"`
	Area         float64 `json:"Area"`
	Iyy          float64 `json:"Iyy"`
	Izz          float64 `json:"Izz"`
	Iyz          float64 `json:"Iyz"`
	It           float64 `json:"It"`
	Syy          float64 `json:"Syy"`
	Szz          float64 `json:"Szz"`
	Byy          float64 `json:"Byy"`
	Bzz          float64 `json:"Bzz"`
	WyyPlus      float64 `json:"WyyPlus"`
	WyyMinus     float64 `json:"WyyMinus"`
	WzzPlus      float64 `json:"WzzPlus"`
	WzzMinus     float64 `json:"WzzMinus"`
	OffsetType   int     `json:"OffsetType"`
	OffsetY      float64 `json:"OffsetY"`
	OffsetZ      float64 `json:"OffsetZ"`
	Shapes       []Shape `json:"Shapes"`
	StressPoints []Point `json:"StressPoints"`
	WeightFactor float64 `json:"WeightFactor"`
	ID           int     `json:"Id"`
}

// Offset type: rib bottom axis as the reference point
const OffsetRibBottom = 11

type Shape struct {
	ID         int             `json:"Id"`
	CadType    int             `json:"CadType"`
	Name       string          `json:"Name"`
	Beta       float64         `json:"Beta"`
	IsReflectX bool            `json:"IsReflectX"`
	IsReflectY bool            `json:"IsReflectY"`
	Location   Point           `json:"Location"`
	Links      []any           `json:"Links"`
	Profile    []ProfileRegion `json:"Profile"`
}

// Region types
const (
	RegionBody = 0
	RegionHole = 1
)

type ProfileRegion struct {
	RegionType int            `json:"RegionType"`
	Points     []ProfilePoint `json:"Points"`
}

type ProfilePoint struct {
	X              float64 `json:"X"`
	Y              float64 `json:"Y"`
	IsAnchor       bool    `json:"IsAnchor"`
	IsProfilePoint bool    `json:"IsProfilePoint"`
}

type Point struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
}

type Material struct {
	Name                   string  `json:"Name"`
	MaterialType           int     `json:"MaterialType"`
	StandartMaterialType   int     `json:"StandartMaterialType"`
	YoungModulus           float64 `json:"YoungModulus"`
	PoissonRatio           float64 `json:"PoissonRatio"`
	SpecificWeight         float64 `json:"SpecificWeight"`
	ThermalCoefficient     float64 `json:"ThermalCoefficient"`
	Strength               float64 `json:"Strength"`
	CompressiveStrength    float64 `json:"CompressiveStrength"`
	FluidityStrength       float64 `json:"FluidityStrength"`
	TemporaryStrength      float64 `json:"TemporaryStrength"`
	GammaM                 float64 `json:"GammaM"`
	StandartConcreteType   int     `json:"StandartConcreteType"`
	ConcreteYoungModulus   float64 `json:"ConcreteYoungModulus"`
	ConcreteSpecificWeight float64 `json:"ConcreteSpecificWeight"`
	Sigd                   any     `json:"Sigd"`
	Epsd                   any     `json:"Epsd"`
	Rof                    any     `json:"Rof"`
	Sigf                   any     `json:"Sigf"`
	Nf                     any     `json:"Nf"`
	ID                     int     `json:"Id"`
}

type LongitudinalReinforcement struct {
	Angle             float64   `json:"Angle"`
	Radius            float64   `json:"Radius"`
	ReinforcementType int       `json:"ReinforcementType"`
	Name              *string   `json:"Name"`
	Diameter          float64   `json:"Diameter"`
	NAtItem           int       `json:"NAtItem"`
	ItemsAtRow        int       `json:"ItemsAtRow"`
	StepElement       float64   `json:"StepElement"`
	OffsetFromStart   float64   `json:"OffsetFromStart"`
	YOffset           float64   `json:"YOffset"`
	ZOffset           float64   `json:"ZOffset"`
	SegmentCount      int       `json:"SegmentCount"`
	Segments          []Segment `json:"Segments"`
	BindingPoint      Point     `json:"BindingPoint"`
}

type TransverseReinforcement struct {
	IsClosed        bool      `json:"IsClosed"`
	Name            *string   `json:"Name"`
	Diameter        float64   `json:"Diameter"`
	NAtItem         int       `json:"NAtItem"`
	ItemsAtRow      int       `json:"ItemsAtRow"`
	StepElement     float64   `json:"StepElement"`
	OffsetFromStart float64   `json:"OffsetFromStart"`
	YOffset         float64   `json:"YOffset"`
	ZOffset         float64   `json:"ZOffset"`
	SegmentCount    int       `json:"SegmentCount"`
	Segments        []Segment `json:"Segments"`
	BindingPoint    Point     `json:"BindingPoint"`
}

type Segment struct {
	Length float64 `json:"Length"`
	Angle  float64 `json:"Angle"`
	Height float64 `json:"Height"`
	Radius float64 `json:"Radius"`
}

type Slab struct {
	Thickness   float64 `json:"Thickness"`
	K1          float64 `json:"K1"`
	K2          float64 `json:"K2"`
	PanelNumber int     `json:"PanelNumber"`
	DeltaX      float64 `json:"DeltaX"`
	DeltaZ      float64 `json:"DeltaZ"`
	Width       string  `json:"Width"`
	IsGrouped   bool    `json:"IsGrouped"`
	Material    any     `json:"Material"`
}

type SpanType struct {
	Key  string `json:"Key"`
	Name string `json:"Name"`
}

// StraightSpan is the only span type the converter emits.
var StraightSpan = SpanType{Key: "StraightSpan", Name: "ПС на прямой"}
