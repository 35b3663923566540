package convert

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/section"
)

// Tolerances in millimetres
const (
	symmetricOverhangTol = 50.0
	ribBottomBand        = 5.0
	ribEdgeFlatness      = 1.0
	ribEdgeMinLength     = 10.0
	ribTopLevelTol       = 50.0
	ribTopSearchHalf     = 50.0
	cornerDedupTol       = 0.1
)

// ErrShortContour is returned for contours with fewer than three distinct
// points.
var ErrShortContour = errors.New("contour has fewer than 3 distinct points")

// Geometry is a beam cross-section in the target frame: millimetres,
// centred on its own centroid, mirrored so the overhang points outwards.
type Geometry struct {
	Outline  []section.Point
	Mirrored bool
	Snapped  bool // self-crossings were snapped away

	// Centroid of the axis-relative polygon that was removed by centring
	Centroid section.Point

	// Profile extents of the axis-relative polygon
	ProfileMinX float64
	ProfileMaxX float64

	// Props are computed on the axis-relative polygon; StressPoints are
	// the same points in the centred frame.
	Props        *section.Properties
	Degenerate   bool
	StressPoints [4]section.Point

	RibLeft  section.Point // bottom-left rib corner
	RibRight section.Point // bottom-right rib corner
	RibAxisX float64
	RibWidth float64
	RibTopY  float64

	MinY float64
	MaxY float64
}

// RibHeight is the distance from the profile bottom to the rib top.
func (g *Geometry) RibHeight() float64 { return g.RibTopY - g.MinY }

// LeftFromRib and RightFromRib are the profile edges measured from the
// rib axis.
func (g *Geometry) LeftFromRib() float64 {
	return g.ProfileMinX - (g.Centroid.X + g.RibAxisX)
}

func (g *Geometry) RightFromRib() float64 {
	return g.ProfileMaxX - (g.Centroid.X + g.RibAxisX)
}

// Normalize builds the target geometry of one beam. desiredRight tells
// on which side of the rib the overhang should end up.
func Normalize(b *argo.Beam, axisZ float64, desiredRight bool) (*Geometry, error) {
	contour := CleanContour(b)
	if len(contour) < 3 {
		return nil, fmt.Errorf("%w (got %d)", ErrShortContour, len(contour))
	}

	pts := ToTarget(contour, axisZ)
	g := &Geometry{}

	snapped := section.SnapCrossings(pts)
	for i := range pts {
		if snapped[i] != pts[i] {
			g.Snapped = true
			break
		}
	}
	pts = snapped

	if NeedMirror(pts, desiredRight) {
		pts = Mirror(pts)
		g.Mirrored = true
	}

	props, err := section.Calculate(pts)
	switch {
	case errors.Is(err, section.ErrDegenerate):
		g.Degenerate = true
	case err != nil:
		return nil, err
	}
	g.Props = props
	g.ProfileMinX, g.ProfileMaxX = props.MinX, props.MaxX

	g.Outline, g.Centroid = section.Centered(pts)
	for i, sp := range props.StressPoints {
		g.StressPoints[i] = sp.Sub(g.Centroid)
	}
	_, _, g.MinY, g.MaxY = section.New("", g.Outline).Bounds()

	g.RibLeft, g.RibRight = FindRibCorners(g.Outline)
	g.RibAxisX = (g.RibLeft.X + g.RibRight.X) / 2
	g.RibWidth = math.Abs(g.RibRight.X - g.RibLeft.X)
	g.RibTopY = RibTop(g.Outline, g.StressPoints, g.RibAxisX)
	return g, nil
}

// NeedMirror decides whether the axis-relative polygon must be mirrored.
// Sections whose overhangs differ by less than 50 mm count as symmetric
// and are never mirrored.
func NeedMirror(pts []section.Point, desiredRight bool) bool {
	minX, maxX, _, _ := section.New("", pts).Bounds()
	left, right := -minX, maxX
	if math.Abs(right-left) < symmetricOverhangTol {
		return false
	}
	return (right > left) != desiredRight
}

// FindRibCorners returns the bottom corners of the rib: the ends of the
// widest flat edge lying within 5 mm of the profile bottom. Without such
// an edge it falls back to the outermost bottom points, then to the
// bounding box.
func FindRibCorners(pts []section.Point) (left, right section.Point) {
	var unique []section.Point
	for _, p := range pts {
		if n := len(unique); n > 0 && math.Abs(p.X-unique[n-1].X) <= cornerDedupTol && math.Abs(p.Y-unique[n-1].Y) <= cornerDedupTol {
			continue
		}
		unique = append(unique, p)
	}
	if len(unique) == 0 {
		return left, right
	}

	minX, maxX, minY, _ := section.New("", unique).Bounds()

	found := false
	var widest float64
	for k, cur := range unique {
		next := unique[(k+1)%len(unique)]
		if math.Abs(cur.Y-minY) >= ribBottomBand || math.Abs(next.Y-minY) >= ribBottomBand {
			continue
		}
		if math.Abs(cur.Y-next.Y) >= ribEdgeFlatness {
			continue
		}
		x1, x2 := math.Min(cur.X, next.X), math.Max(cur.X, next.X)
		if length := x2 - x1; length > ribEdgeMinLength && length > widest {
			widest = length
			y := (cur.Y + next.Y) / 2
			left, right = section.Point{X: x1, Y: y}, section.Point{X: x2, Y: y}
			found = true
		}
	}
	if found {
		return left, right
	}

	var bottom []section.Point
	for _, p := range unique {
		if math.Abs(p.Y-minY) < ribBottomBand {
			bottom = append(bottom, p)
		}
	}
	if len(bottom) >= 2 {
		sort.SliceStable(bottom, func(i, j int) bool { return bottom[i].X < bottom[j].X })
		return bottom[0], bottom[len(bottom)-1]
	}
	return section.Point{X: minX, Y: minY}, section.Point{X: maxX, Y: minY}
}

// RibTop returns the level of the rib top. When the two upper stress
// points sit at about the same level they most likely mark curb
// upstands, so the outline is searched near the rib axis instead.
func RibTop(pts []section.Point, stress [4]section.Point, ribAxisX float64) float64 {
	upperL, upperR := stress[section.UpperLeft].Y, stress[section.UpperRight].Y
	if math.Abs(upperL-upperR) >= ribTopLevelTol {
		return math.Min(upperL, upperR)
	}
	return ribTopAtAxis(pts, ribAxisX)
}

func ribTopAtAxis(pts []section.Point, ribAxisX float64) float64 {
	best := math.Inf(-1)
	for _, p := range pts {
		if math.Abs(p.X-ribAxisX) < ribTopSearchHalf {
			best = math.Max(best, p.Y)
		}
	}
	if !math.IsInf(best, -1) {
		return best
	}

	for k, p1 := range pts {
		p2 := pts[(k+1)%len(pts)]
		crosses := (p1.X <= ribAxisX && p2.X >= ribAxisX) || (p1.X >= ribAxisX && p2.X <= ribAxisX)
		if !crosses || math.Abs(p2.X-p1.X) <= 0.01 {
			continue
		}
		t := (ribAxisX - p1.X) / (p2.X - p1.X)
		best = math.Max(best, p1.Y+t*(p2.Y-p1.Y))
	}
	if !math.IsInf(best, -1) {
		return best
	}

	_, _, _, maxY := section.New("", pts).Bounds()
	return maxY
}
