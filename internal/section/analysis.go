package section

// New returns a section over a copy of pts.
func New(name string, pts []Point) *Section {
	return &Section{Name: name, Vertices: append([]Point(nil), pts...)}
}

// Analyze computes every property of the section. A degenerate polygon
// yields zero-valued properties (bounds and perimeter excepted) together
// with ErrDegenerate, so callers can carry on with a warning.
func (s *Section) Analyze() (*Properties, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	props := &Properties{}
	props.MinX, props.MaxX, props.MinY, props.MaxY = s.Bounds()
	props.Perimeter = s.Perimeter()

	area, cx, cy, ok := s.calculateAreaAndCentroid()
	if !ok {
		return props, ErrDegenerate
	}
	props.Area, props.CentroidX, props.CentroidY = area, cx, cy
	c := Point{X: cx, Y: cy}

	props.Iyy, props.Izz, props.Iyz = s.secondMoments(c)
	props.It = torsionConstant(props.Area, props.Perimeter, props.Iyy, props.Izz)
	props.Syy, props.Szz = s.staticMoments(c)

	props.WyTop = modulus(props.Iyy, props.MaxY-cy)
	props.WyBottom = modulus(props.Iyy, cy-props.MinY)
	props.WzLeft = modulus(props.Izz, cx-props.MinX)
	props.WzRight = modulus(props.Izz, props.MaxX-cx)

	props.Byy = minThickness(props.MinY, props.MaxY, props.Width(), s.WidthAtY)
	props.Bzz = minThickness(props.MinX, props.MaxX, props.Height(), s.heightAtX)

	props.StressPoints = s.stressPoints(props)
	return props, nil
}

// Calculate analyses an unnamed polygon.
func Calculate(pts []Point) (*Properties, error) {
	return New("", pts).Analyze()
}

// Centered returns the vertices translated so the centroid is at the
// origin, and the centroid that was removed. A degenerate polygon is
// returned unchanged.
func Centered(pts []Point) ([]Point, Point) {
	c, ok := New("", pts).Centroid()
	out := append([]Point(nil), pts...)
	if !ok {
		return out, Point{}
	}
	for i := range out {
		out[i] = out[i].Sub(c)
	}
	return out, c
}
