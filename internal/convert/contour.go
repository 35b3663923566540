package convert

import (
	"math"

	"github.com/alexiusacademia/argoprssm/internal/argo"
	"github.com/alexiusacademia/argoprssm/internal/section"
)

const (
	// duplicateTol is the distance in source units (cm) under which two
	// consecutive contour points are the same point.
	duplicateTol = 0.1

	// cmToMM converts source lengths to target lengths.
	cmToMM = 10.0
)

// CleanContour applies the changed-point overrides to a copy of the beam
// contour, then drops consecutive duplicates and a closing point equal to
// the first. Override indices are 1-based; out-of-range ones are ignored.
func CleanContour(b *argo.Beam) []argo.Point {
	pts := append([]argo.Point(nil), b.Contour...)
	for _, cp := range b.ChangedPoints {
		if i := cp.Index - 1; i >= 0 && i < len(pts) {
			pts[i] = cp.Point
		}
	}

	out := make([]argo.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && samePoint(p, out[len(out)-1]) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func samePoint(a, b argo.Point) bool {
	return math.Abs(a.Z-b.Z) <= duplicateTol && math.Abs(a.Y-b.Y) <= duplicateTol
}

// ToTarget converts source points to millimetres relative to the beam axis.
func ToTarget(pts []argo.Point, axisZ float64) []section.Point {
	out := make([]section.Point, len(pts))
	for i, p := range pts {
		out[i] = section.Point{X: (p.Z - axisZ) * cmToMM, Y: p.Y * cmToMM}
	}
	return out
}

// Mirror negates every X coordinate.
func Mirror(pts []section.Point) []section.Point {
	out := make([]section.Point, len(pts))
	for i, p := range pts {
		out[i] = section.Point{X: -p.X, Y: p.Y}
	}
	return out
}

// IsProfilePoint reports whether vertex k is a real corner of the
// outline: the end vertices always are, inner ones when the turn they
// make is not negligible.
func IsProfilePoint(pts []section.Point, k int) bool {
	if k == 0 || k == len(pts)-1 {
		return true
	}
	a, b, c := pts[k-1], pts[k], pts[k+1]
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	return math.Abs(cross) >= 0.5
}
