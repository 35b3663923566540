package section

import "math"

// Bending moments used to rank vertices. Only their ratio matters.
const (
	probeMy     = 1000.0
	probeMzRate = 0.99
)

// stressPoints picks the four characteristic extreme-fibre points. When
// each bounding coordinate is reached by exactly one vertex those vertices
// are used directly; otherwise the vertex with the largest combined
// bending stress is chosen in each quadrant around the centroid.
func (s *Section) stressPoints(p *Properties) [4]Point {
	var out [4]Point
	tol := math.Min(p.Width(), p.Height()) / 100

	var left, right, top, bottom []Point
	for _, v := range s.Vertices {
		if math.Abs(v.X-p.MinX) < tol {
			left = append(left, v)
		}
		if math.Abs(v.X-p.MaxX) < tol {
			right = append(right, v)
		}
		if math.Abs(v.Y-p.MaxY) < tol {
			top = append(top, v)
		}
		if math.Abs(v.Y-p.MinY) < tol {
			bottom = append(bottom, v)
		}
	}
	if len(left) == 1 && len(right) == 1 && len(top) == 1 && len(bottom) == 1 {
		out[UpperLeft] = left[0]
		out[UpperRight] = top[0]
		out[LowerRight] = right[0]
		out[LowerLeft] = bottom[0]
		return out
	}

	var kz, ky float64
	if p.Iyy > 0 {
		ky = probeMy / p.Iyy
		if p.Izz > 0 {
			mz := p.Izz / p.Iyy * probeMy * probeMzRate
			kz = mz / p.Izz
		}
	}

	best := [4]float64{-1, -1, -1, -1}
	out = [4]Point{
		UpperLeft:  {X: p.MinX, Y: p.MaxY},
		UpperRight: {X: p.MaxX, Y: p.MaxY},
		LowerRight: {X: p.MaxX, Y: p.MinY},
		LowerLeft:  {X: p.MinX, Y: p.MinY},
	}
	for _, v := range s.Vertices {
		dx, dy := v.X-p.CentroidX, v.Y-p.CentroidY
		score := math.Abs(kz*dx) + math.Abs(ky*dy)

		var q int
		switch {
		case dx < 0 && dy >= 0:
			q = UpperLeft
		case dx >= 0 && dy >= 0:
			q = UpperRight
		case dx >= 0:
			q = LowerRight
		default:
			q = LowerLeft
		}
		if score > best[q] {
			best[q] = score
			out[q] = v
		}
	}
	return out
}
