package radial

import "math"

// Point is a position in window-local units. Terminal rows are scaled by the
// cell aspect before they get here so that the ring stays round.
type Point struct {
	X, Y float64
}

// CellPoint converts a terminal cell position into a Point.
func CellPoint(col, row int, aspect float64) Point {
	if aspect <= 0 {
		aspect = 1
	}
	return Point{X: float64(col), Y: float64(row) * aspect}
}

// Area is the ring a pointer lies in.
type Area int

const (
	AreaNone Area = iota
	AreaInner
	AreaOuter
)

func (a Area) String() string {
	switch a {
	case AreaInner:
		return "inner"
	case AreaOuter:
		return "outer"
	default:
		return "none"
	}
}

// Inner ring sectors.
const (
	InnerBack = 0
	InnerNext = 1
)

// Geometry describes the rings around a fixed centre.
type Geometry struct {
	Center      Point
	InnerRadius float64
	// DeadZone, when positive, is a radius around the centre that selects nothing.
	DeadZone float64
}

// Distance from the centre to p.
func (g Geometry) Distance(p Point) float64 {
	return math.Hypot(p.X-g.Center.X, p.Y-g.Center.Y)
}

// Angle is the clock angle of p around the centre in [0, 360): 0 points up
// and values grow clockwise.
func (g Geometry) Angle(p Point) float64 {
	dx := p.X - g.Center.X
	dy := p.Y - g.Center.Y
	return NormalizeAngle(math.Atan2(dx, -dy) * 180 / math.Pi)
}

// Classify returns the ring p lies in.
func (g Geometry) Classify(p Point) Area {
	d := g.Distance(p)
	if g.DeadZone > 0 && d < g.DeadZone {
		return AreaNone
	}
	if d <= g.InnerRadius {
		return AreaInner
	}
	return AreaOuter
}

// NormalizeAngle maps any angle into [0, 360).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod can hand back 360 after adding to a tiny negative value
	if a >= 360 {
		a -= 360
	}
	return a
}

// SliceWidth is the angular width of one of n outer items.
func SliceWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 / float64(n)
}

// ItemAngle is the placement angle of outer item i of n.
func ItemAngle(i, n int) float64 {
	return float64(i) * SliceWidth(n)
}

// OuterIndex maps angle to one of n items whose slices are centred on their
// placement angles. It returns -1 when n is zero.
func OuterIndex(angle float64, n int) int {
	if n <= 0 {
		return -1
	}
	w := SliceWidth(n)
	a := NormalizeAngle(angle)
	return int(math.Floor((a+w/2)/w)) % n
}

// InnerIndex maps angle to InnerBack ([315, 360) and [0, 45)), InnerNext
// ([135, 225)) or -1.
func InnerIndex(angle float64) int {
	a := NormalizeAngle(angle)
	switch {
	case a >= 315 || a < 45:
		return InnerBack
	case a >= 135 && a < 225:
		return InnerNext
	default:
		return -1
	}
}

// ButtonPosition places a button at angle on a circle of radius r.
func ButtonPosition(center Point, r, angle float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: center.X + r*math.Sin(rad),
		Y: center.Y - r*math.Cos(rad),
	}
}
