package section

import (
	"errors"
	"fmt"
	"math"
)

// Section is a closed polygon without an explicit closing vertex. The
// caller decides the units; the converter feeds millimetres.
//   - Y-axis points upward
//   - X-axis points to the right
type Section struct {
	Name     string  `json:"name,omitempty"`
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Stress point slots, clockwise from the upper left.
const (
	UpperLeft = iota
	UpperRight
	LowerRight
	LowerLeft
)

// Properties holds the calculated properties of a section. Iyy is taken
// about the horizontal centroidal axis, Izz about the vertical one.
type Properties struct {
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`

	// Centroid in the input coordinates
	CentroidX float64 `json:"centroid_x"`
	CentroidY float64 `json:"centroid_y"`

	Iyy float64 `json:"iyy"`
	Izz float64 `json:"izz"`
	Iyz float64 `json:"iyz"` // signed
	It  float64 `json:"it"`  // thin-walled approximation

	// First moments of the half section above / right of the centroid
	Syy float64 `json:"syy"`
	Szz float64 `json:"szz"`

	// Section moduli to each extreme fibre
	WyTop    float64 `json:"wy_top"`
	WyBottom float64 `json:"wy_bottom"`
	WzLeft   float64 `json:"wz_left"`
	WzRight  float64 `json:"wz_right"`

	// Minimum strictly positive width (Byy) and height (Bzz)
	Byy float64 `json:"byy"`
	Bzz float64 `json:"bzz"`

	// Bounding box
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`

	// StressPoints are indexed by UpperLeft..LowerLeft.
	StressPoints [4]Point `json:"stress_points"`
}

// Width returns the bounding box width.
func (p *Properties) Width() float64 { return p.MaxX - p.MinX }

// Height returns the bounding box height.
func (p *Properties) Height() float64 { return p.MaxY - p.MinY }

// Translate shifts every coordinate-dependent field by (dx, dy).
// Moments and moduli are unaffected.
func (p *Properties) Translate(dx, dy float64) {
	p.CentroidX += dx
	p.CentroidY += dy
	p.MinX += dx
	p.MaxX += dx
	p.MinY += dy
	p.MaxY += dy
	for i := range p.StressPoints {
		p.StressPoints[i].X += dx
		p.StressPoints[i].Y += dy
	}
}

// ErrDegenerate is returned with zero-valued properties when the polygon
// area collapses to (nearly) zero.
var ErrDegenerate = errors.New("section: degenerate polygon")

// Validate checks that the section can be analysed.
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{msg: fmt.Sprintf("section must have at least 3 vertices, got %d", len(s.Vertices))}
	}
	for i, v := range s.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return &ValidationError{msg: fmt.Sprintf("vertex %d is not finite", i+1)}
		}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
