// Package hull computes convex hulls and their areas for pixel point sets.
//
// Points are integer pixel coordinates, so hull vertices sit on pixel
// centers: a solid w×h block of pixels has a hull area of (w-1)×(h-1), not
// w×h.
package hull

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ironsheep/stimulus-features/internal/segment"
)

// ErrDegenerate is returned when a point set has fewer than three
// non-collinear points and therefore no two-dimensional hull.
var ErrDegenerate = errors.New("degenerate point set: fewer than 3 non-collinear points")

// Policy selects how degenerate point sets are reported.
type Policy int

const (
	// PolicyZero reports an area of 0 for degenerate point sets.
	PolicyZero Policy = iota
	// PolicyStrict returns ErrDegenerate for degenerate point sets.
	PolicyStrict
)

func (p Policy) String() string {
	switch p {
	case PolicyZero:
		return "zero"
	case PolicyStrict:
		return "strict"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy accepts "zero" or "strict" (case-insensitive). "error" is an
// alias for "strict".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero":
		return PolicyZero, nil
	case "strict", "error":
		return PolicyStrict, nil
	}
	return 0, fmt.Errorf("unknown hull policy %q (want zero or strict)", s)
}

// Compute returns the vertices of the convex hull of points in
// counter-clockwise order (in a y-up frame), starting from the lowest-x,
// lowest-y point. Duplicate and collinear boundary points are dropped.
//
// Uses Andrew's monotone chain, O(n log n). The input slice is not modified.
//
// Returns ErrDegenerate if the hull has fewer than three vertices.
func Compute(points []image.Point) ([]image.Point, error) {
	if len(points) < 3 {
		return nil, ErrDegenerate
	}

	pts := make([]image.Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	hull := make([]image.Point, 0, 2*len(pts))

	// Lower chain
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Last point repeats the first
	hull = hull[:len(hull)-1]

	if len(hull) < 3 {
		return nil, ErrDegenerate
	}
	return hull, nil
}

// Area returns the area enclosed by the convex hull of points.
// Returns ErrDegenerate if the points have no two-dimensional hull.
func Area(points []image.Point) (float64, error) {
	vertices, err := Compute(points)
	if err != nil {
		return 0, err
	}
	return PolygonArea(vertices), nil
}

// AreaWithPolicy is Area with degenerate point sets handled per policy.
func AreaWithPolicy(points []image.Point, policy Policy) (float64, error) {
	a, err := Area(points)
	if errors.Is(err, ErrDegenerate) && policy == PolicyZero {
		return 0, nil
	}
	return a, err
}

// LabelArea collects the cells of g carrying label l and returns the area of
// their convex hull, with degenerate sets handled per policy.
func LabelArea(g *segment.Grid, l segment.Label, policy Policy) (float64, error) {
	a, err := AreaWithPolicy(g.Points(l), policy)
	if err != nil {
		return 0, fmt.Errorf("%s hull: %w", l, err)
	}
	return a, nil
}

// PolygonArea returns the unsigned area of a simple polygon given its
// vertices in order (shoelace formula). Fewer than three vertices yield 0.
func PolygonArea(vertices []image.Point) float64 {
	if len(vertices) < 3 {
		return 0
	}

	origin := vec(vertices[0])
	var sum float64
	for i := 1; i < len(vertices)-1; i++ {
		a := r2.Sub(vec(vertices[i]), origin)
		b := r2.Sub(vec(vertices[i+1]), origin)
		sum += r2.Cross(a, b)
	}
	return math.Abs(sum) / 2
}

// cross returns the z component of (a-o) × (b-o). Positive means o→a→b turns
// counter-clockwise.
func cross(o, a, b image.Point) int64 {
	return int64(a.X-o.X)*int64(b.Y-o.Y) - int64(a.Y-o.Y)*int64(b.X-o.X)
}

func vec(p image.Point) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}
