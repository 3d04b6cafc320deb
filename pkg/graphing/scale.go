package graphing

import "math"

// Rect is the pixel area a panel is drawn in. Plotted content stays inside
// the margin; OffsetY shifts the panel down when panels are stacked.
type Rect struct {
	Width   float64
	Height  float64
	Margin  float64
	OffsetY float64
}

// Point is a pixel-space coordinate.
type Point struct {
	X, Y float64
}

// Split returns the x and y components of pts.
func Split(pts []Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// Normalize returns the minimum and maximum of values. A constant series is
// widened by one unit on each side, saturating at the int64 limits, so lo
// is always below hi. values must not be empty.
func Normalize(values []int64) (lo, hi int64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		if lo > math.MinInt64 {
			lo--
		}
		if hi < math.MaxInt64 {
			hi++
		}
	}
	return lo, hi
}

// span returns hi-lo without wrapping.
func span(lo, hi int64) float64 {
	return float64(hi) - float64(lo)
}

// CycleAxis maps cycle indices onto the horizontal extent of a Rect.
type CycleAxis struct {
	origin int64
	left   float64
	scale  float64
}

// NewCycleAxis maps first..last onto the inner width of r. A span below one
// cycle is treated as one cycle.
func NewCycleAxis(first, last int64, r Rect) CycleAxis {
	cycles := span(first, last)
	if cycles < 1 {
		cycles = 1
	}
	return CycleAxis{
		origin: first,
		left:   r.Margin,
		scale:  (r.Width - 2*r.Margin) / cycles,
	}
}

// X returns the horizontal pixel position of cycle.
func (a CycleAxis) X(cycle int64) float64 {
	return a.left + span(a.origin, cycle)*a.scale
}

// Scale returns the width in pixels of a single cycle.
func (a CycleAxis) Scale() float64 { return a.scale }

// MapPoints projects (cycle, value) samples into r and returns the points
// together with the normalized value range used for the vertical axis.
func MapPoints(cycles, values []int64, r Rect) (pts []Point, lo, hi int64) {
	axis := NewCycleAxis(cycles[0], cycles[len(cycles)-1], r)
	lo, hi = Normalize(values)
	inner := r.Height - 2*r.Margin
	bottom := r.OffsetY + r.Height - r.Margin

	// Adjacent values near the int64 limits round to the same float64.
	rng := span(lo, hi)
	pts = make([]Point, len(cycles))
	for i, c := range cycles {
		y := bottom - inner/2
		if rng > 0 {
			y = bottom - span(lo, values[i])*(inner/rng)
		}
		pts[i] = Point{X: axis.X(c), Y: y}
	}
	return pts, lo, hi
}
