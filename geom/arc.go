package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
)

// ErrRadius is returned for negative, non-finite or inverted radii.
var ErrRadius = errors.New("geom: invalid arc radius")

// ----------------------------------------------------------------------------
// Arc

// Arc is an annular sector. Angles are in radians, measured clockwise
// from 12 o'clock in gonum's y-up coordinate space; a full circle is
// 2π. An InnerRadius of 0 yields a pie slice, InnerRadius equal to
// OuterRadius an empty arc.
type Arc struct {
	StartAngle, EndAngle     float64
	InnerRadius, OuterRadius float64
}

// Validate checks the radii of a.
func (a Arc) Validate() error {
	if !finite(a.InnerRadius) || !finite(a.OuterRadius) ||
		a.InnerRadius < 0 || a.InnerRadius > a.OuterRadius {
		return fmt.Errorf("%w: inner %g, outer %g", ErrRadius, a.InnerRadius, a.OuterRadius)
	}
	return nil
}

// Empty reports whether a covers no area.
func (a Arc) Empty() bool {
	return a.InnerRadius == a.OuterRadius || a.StartAngle == a.EndAngle
}

// CircleArc is a circular arc in the angle convention of vg.Path.Arc:
// Start and Sweep are in radians, counter-clockwise from 3 o'clock.
type CircleArc struct {
	Center vg.Point
	Radius vg.Length
	Start  float64
	Sweep  float64
}

// Sector holds the primitives of an annular sector: the outer arc from
// the start to the end angle, the inner arc back, and the corner points
// joined by the radial edges. For a pie slice the inner arc has radius 0
// and all inner corners coincide with the center.
type Sector struct {
	Outer, Inner CircleArc

	OuterStart, OuterEnd vg.Point
	InnerEnd, InnerStart vg.Point
}

// Sector returns the primitives of a around center.
func (a Arc) Sector(center vg.Point) Sector {
	a0, a1 := a.StartAngle, a.EndAngle
	r0, r1 := vg.Length(a.InnerRadius), vg.Length(a.OuterRadius)
	sweep := a1 - a0
	return Sector{
		Outer:      CircleArc{Center: center, Radius: r1, Start: math.Pi/2 - a0, Sweep: -sweep},
		Inner:      CircleArc{Center: center, Radius: r0, Start: math.Pi/2 - a1, Sweep: sweep},
		OuterStart: polar(center, r1, a0),
		OuterEnd:   polar(center, r1, a1),
		InnerEnd:   polar(center, r0, a1),
		InnerStart: polar(center, r0, a0),
	}
}

// Path returns the outline of a around center as a closed path. The
// path of an empty arc has no components.
func (a Arc) Path(center vg.Point) vg.Path {
	if a.Empty() {
		return nil
	}
	s := a.Sector(center)
	var path vg.Path
	path.Move(s.OuterStart)
	path.Arc(s.Outer.Center, s.Outer.Radius, s.Outer.Start, s.Outer.Sweep)
	if a.InnerRadius > 0 {
		path.Line(s.InnerEnd)
		path.Arc(s.Inner.Center, s.Inner.Radius, s.Inner.Start, s.Inner.Sweep)
	} else {
		path.Line(center)
	}
	path.Close()
	return path
}

// Centroid returns the point in the middle of a, e.g. to place a label.
func (a Arc) Centroid(center vg.Point) vg.Point {
	r := vg.Length(a.InnerRadius+a.OuterRadius) / 2
	return polar(center, r, (a.StartAngle+a.EndAngle)/2)
}

// polar returns the point at radius r and angle from 12 o'clock.
func polar(center vg.Point, r vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Sin(angle)),
		Y: center.Y + r*vg.Length(math.Cos(angle)),
	}
}
