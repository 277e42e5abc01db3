package render

// Surface is the 2D drawing context the particle renderer paints on
// Coordinates are surface pixels, (0,0) top-left; alpha is in [0, 1]
type Surface interface {
	// Size returns current pixel dimensions
	Size() (width, height int)

	// Clear resets every pixel to the surface background
	Clear()

	FillRect(x, y, w, h float64, c RGB, alpha float64)

	StrokeLine(x0, y0, x1, y1, width float64, c RGB, alpha float64)

	FillCircle(cx, cy, r float64, c RGB, alpha float64)

	// FillRadialGradient paints a disc of radius r whose color follows stops by distance/r
	FillRadialGradient(cx, cy, r float64, stops []GradientStop)
}

// GradientStop is a color at a normalized offset in [0, 1]
type GradientStop struct {
	Offset float64
	Color  RGB
	Alpha  float64
}

// SampleStops returns the interpolated color and alpha at t
// Stops must be sorted by offset; t outside the range takes the nearest end stop
func SampleStops(stops []GradientStop, t float64) (RGB, float64) {
	if len(stops) == 0 {
		return RGBBlack, 0
	}
	if t <= stops[0].Offset {
		return stops[0].Color, stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		hi := stops[i]
		if t > hi.Offset {
			continue
		}
		lo := stops[i-1]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color, hi.Alpha
		}
		f := (t - lo.Offset) / span
		return Lerp(lo.Color, hi.Color, f), lo.Alpha + (hi.Alpha-lo.Alpha)*f
	}
	last := stops[len(stops)-1]
	return last.Color, last.Alpha
}
