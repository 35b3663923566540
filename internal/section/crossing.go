package section

import "math"

// crossingEps merges near-touching segments and avoids rounding error.
const crossingEps = 1e-6

// SnapCrossings returns a copy of pts in which every proper crossing of
// two non-adjacent edges is removed on a best-effort basis: of the four
// edge endpoints, the one closest to the crossing is moved onto it,
// rounded to 0.1. Self-intersections that survive are left as they are.
func SnapCrossings(pts []Point) []Point {
	out := append([]Point(nil), pts...)
	n := len(out)
	if n < 4 {
		return out
	}

	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			ends := [4]int{i, (i + 1) % n, j, (j + 1) % n}
			at, ok := intersect(out[ends[0]], out[ends[1]], out[ends[2]], out[ends[3]])
			if !ok {
				continue
			}

			nearest := ends[0]
			for _, k := range ends[1:] {
				if out[k].Dist(at) < out[nearest].Dist(at) {
					nearest = k
				}
			}
			out[nearest] = Point{X: round1(at.X), Y: round1(at.Y)}
		}
	}
	return out
}

// intersect reports where segments ab and cd cross strictly inside both.
func intersect(a, b, c, d Point) (Point, bool) {
	r := b.Sub(a)
	s := d.Sub(c)
	den := r.X*s.Y - r.Y*s.X
	if math.Abs(den) < crossingEps {
		return Point{}, false
	}
	ac := c.Sub(a)
	t := (ac.X*s.Y - ac.Y*s.X) / den
	u := (ac.X*r.Y - ac.Y*r.X) / den
	if t <= crossingEps || t >= 1-crossingEps || u <= crossingEps || u >= 1-crossingEps {
		return Point{}, false
	}
	return Point{X: a.X + t*r.X, Y: a.Y + t*r.Y}, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
