package section

import (
	"math"
	"sort"
)

const (
	degenerateArea    = 1e-10
	thicknessSteps    = 100
	minThicknessFloor = 0.1
)

// Bounds returns the bounding box of the vertices.
func (s *Section) Bounds() (minX, maxX, minY, maxY float64) {
	if len(s.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = s.Vertices[0].X, s.Vertices[0].X
	minY, maxY = s.Vertices[0].Y, s.Vertices[0].Y
	for _, v := range s.Vertices {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, maxX, minY, maxY
}

// Perimeter sums the edge lengths, closing the polygon implicitly.
func (s *Section) Perimeter() float64 {
	n := len(s.Vertices)
	var p float64
	for i := 0; i < n; i++ {
		p += s.Vertices[i].Dist(s.Vertices[(i+1)%n])
	}
	return p
}

// SignedArea is positive for counter-clockwise vertices.
func (s *Section) SignedArea() float64 {
	n := len(s.Vertices)
	var a float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
	}
	return a / 2
}

// Centroid returns the area centroid, or false when the polygon is degenerate.
func (s *Section) Centroid() (Point, bool) {
	_, cx, cy, ok := s.calculateAreaAndCentroid()
	return Point{X: cx, Y: cy}, ok
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64, ok bool) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0, false
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	if math.Abs(signedArea) < degenerateArea {
		return 0, 0, 0, false
	}

	cx = sumX / (6 * signedArea)
	cy = sumY / (6 * signedArea)
	return math.Abs(signedArea), cx, cy, true
}

// secondMoments returns Iyy, Izz and Iyz about the point c. Iyz is
// reported for counter-clockwise traversal whatever the input order.
func (s *Section) secondMoments(c Point) (iyy, izz, iyz float64) {
	n := len(s.Vertices)
	var orient float64
	for i := 0; i < n; i++ {
		p0 := s.Vertices[i].Sub(c)
		p1 := s.Vertices[(i+1)%n].Sub(c)
		cross := p0.X*p1.Y - p1.X*p0.Y
		orient += cross
		iyy += cross * (p0.Y*p0.Y + p0.Y*p1.Y + p1.Y*p1.Y)
		izz += cross * (p0.X*p0.X + p0.X*p1.X + p1.X*p1.X)
		iyz += cross * (p0.X*p1.Y + 2*p0.X*p0.Y + 2*p1.X*p1.Y + p1.X*p0.Y)
	}
	if orient < 0 {
		iyz = -iyz
	}
	return math.Abs(iyy / 12), math.Abs(izz / 12), iyz / 24
}

// WidthAtY returns the total width of material at height y.
func (s *Section) WidthAtY(y float64) float64 {
	return pairedSpan(s.findIntersectionsAtY(y))
}

// heightAtX calculates the height at a specific X coordinate
func (s *Section) heightAtX(x float64) float64 {
	return pairedSpan(s.findIntersectionsAtX(x))
}

// pairedSpan sorts the crossings and sums the inside segments.
func pairedSpan(crossings []float64) float64 {
	if len(crossings) < 2 {
		return 0
	}
	sort.Float64s(crossings)

	var total float64
	for i := 0; i+1 < len(crossings); i += 2 {
		total += crossings[i+1] - crossings[i]
	}
	return total
}

// findIntersectionsAtY finds all X coordinates where a horizontal line at Y intersects the polygon
func (s *Section) findIntersectionsAtY(y float64) []float64 {
	var intersections []float64
	n := len(s.Vertices)

	for i := 0; i < n; i++ {
		v1, v2 := s.Vertices[i], s.Vertices[(i+1)%n]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			intersections = append(intersections, v1.X+t*(v2.X-v1.X))
		}
	}
	return intersections
}

// findIntersectionsAtX finds all Y coordinates where a vertical line at X intersects the polygon
func (s *Section) findIntersectionsAtX(x float64) []float64 {
	var intersections []float64
	n := len(s.Vertices)

	for i := 0; i < n; i++ {
		v1, v2 := s.Vertices[i], s.Vertices[(i+1)%n]
		if (v1.X <= x && v2.X > x) || (v2.X <= x && v1.X > x) {
			t := (x - v1.X) / (v2.X - v1.X)
			intersections = append(intersections, v1.Y+t*(v2.Y-v1.Y))
		}
	}
	return intersections
}

// IntersectionsAtX returns the sorted Y coordinates where the vertical
// line at x crosses the outline.
func (s *Section) IntersectionsAtX(x float64) []float64 {
	ys := s.findIntersectionsAtX(x)
	sort.Float64s(ys)
	return ys
}

// Contains reports whether p lies inside the outline (even-odd rule).
func (s *Section) Contains(p Point) bool {
	inside := false
	for _, x := range s.findIntersectionsAtY(p.Y) {
		if x < p.X {
			inside = !inside
		}
	}
	return inside
}

// staticMoments integrates the half section above (Syy) and right of
// (Szz) the centroid in strips bounded by successive vertex levels.
func (s *Section) staticMoments(c Point) (syy, szz float64) {
	levelsY := []float64{c.Y}
	levelsX := []float64{c.X}
	for _, v := range s.Vertices {
		if v.Y > c.Y {
			levelsY = append(levelsY, v.Y)
		}
		if v.X > c.X {
			levelsX = append(levelsX, v.X)
		}
	}

	for _, strip := range strips(levelsY) {
		mid := (strip[0] + strip[1]) / 2
		syy += s.WidthAtY(mid) * (strip[1] - strip[0]) * (mid - c.Y)
	}
	for _, strip := range strips(levelsX) {
		mid := (strip[0] + strip[1]) / 2
		szz += s.heightAtX(mid) * (strip[1] - strip[0]) * (mid - c.X)
	}
	return syy, szz
}

// strips sorts the levels, drops duplicates and returns adjacent pairs.
func strips(levels []float64) [][2]float64 {
	sort.Float64s(levels)
	var out [][2]float64
	for i := 1; i < len(levels); i++ {
		if levels[i]-levels[i-1] > 1e-9 {
			out = append(out, [2]float64{levels[i-1], levels[i]})
		}
	}
	return out
}

// minThickness scans 99 interior levels across [lo, hi] and returns the
// smallest span above the noise floor, or fallback if none is found.
func minThickness(lo, hi, fallback float64, at func(float64) float64) float64 {
	best := math.Inf(1)
	for i := 1; i < thicknessSteps; i++ {
		w := at(lo + (hi-lo)*float64(i)/thicknessSteps)
		if w > minThicknessFloor && w < best {
			best = w
		}
	}
	if math.IsInf(best, 1) {
		return fallback
	}
	return best
}

// torsionConstant approximates It for a thin-walled section and caps it
// at the polar moment.
func torsionConstant(area, perimeter, iyy, izz float64) float64 {
	if perimeter < degenerateArea {
		return 0
	}
	tAvg := area / perimeter
	it := 4 * area * area / perimeter * tAvg
	return math.Min(it, iyy+izz)
}

func modulus(i, dist float64) float64 {
	if dist <= degenerateArea {
		return 0
	}
	return i / dist
}
