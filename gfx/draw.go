package gfx

import "github.com/flavioheleno/tft/rgb565"

// Line draws from (x1, y1) to (x2, y2), both ends included.
//
// Both end points must be on the surface, otherwise nothing is drawn; lines
// are not clipped.
func Line(s Surface, x1, y1, x2, y2 int, c rgb565.Color) {
	if !in(s, x1, y1) || !in(s, x2, y2) {
		return
	}

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x2 < x1 {
		sx = -1
	}
	if y2 < y1 {
		sy = -1
	}

	x, y := x1, y1
	if dx > dy {
		e := dx / 2
		for i := 0; i <= dx; i++ {
			s.SetPixel(x, y, c)
			e -= dy
			if e < 0 {
				y += sy
				e += dx
			}
			x += sx
		}
		return
	}
	e := dy / 2
	for i := 0; i <= dy; i++ {
		s.SetPixel(x, y, c)
		e -= dx
		if e < 0 {
			x += sx
			e += dy
		}
		y += sy
	}
}

// DrawRect draws the outline of the w x h rectangle whose top left pixel is
// (x, y). Each pixel is set once. The whole rectangle must be on the surface.
func DrawRect(s Surface, x, y, w, h int, c rgb565.Color) {
	if !fits(s, x, y, w, h) {
		return
	}
	for i := 0; i < w; i++ {
		s.SetPixel(x+i, y, c)
		if h > 1 {
			s.SetPixel(x+i, y+h-1, c)
		}
	}
	for i := 1; i < h-1; i++ {
		s.SetPixel(x, y+i, c)
		if w > 1 {
			s.SetPixel(x+w-1, y+i, c)
		}
	}
}

// FillRect fills the w x h rectangle whose top left pixel is (x, y). The
// whole rectangle must be on the surface.
func FillRect(s Surface, x, y, w, h int, c rgb565.Color) {
	if !fits(s, x, y, w, h) {
		return
	}
	if f, ok := s.(RectFiller); ok {
		f.FillRect(x, y, w, h, c)
		return
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			s.SetPixel(x+i, y+j, c)
		}
	}
}

// DrawCircle draws the quadrants q of the circle of radius r centered on
// (cx, cy). Points off the surface are skipped.
func DrawCircle(s Surface, cx, cy, r int, c rgb565.Color, q Quadrant) {
	if r < 0 {
		return
	}
	plot := func(x, y int) {
		if in(s, x, y) {
			s.SetPixel(x, y, c)
		}
	}

	x, y := 0, r
	d := 1 - r
	for x <= y {
		if q.has(LowerRight) {
			plot(cx+x, cy+y)
			plot(cx+y, cy+x)
		}
		if q.has(LowerLeft) {
			plot(cx-y, cy+x)
			plot(cx-x, cy+y)
		}
		if q.has(UpperLeft) {
			plot(cx-x, cy-y)
			plot(cx-y, cy-x)
		}
		if q.has(UpperRight) {
			plot(cx+y, cy-x)
			plot(cx+x, cy-y)
		}

		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
	}
}

// DrawCircleAA draws the quadrants q of an anti-aliased circle of radius r
// centered on (cx, cy), blending fg into bg. Points off the surface are
// skipped.
//
// Each step along the octant shades the pixel pair straddling the ideal
// circle, (x, y) outside and (x, y-1) inside, by where r² falls between their
// squared distances from the center. Integer arithmetic only.
func DrawCircleAA(s Surface, cx, cy, r int, fg, bg rgb565.Color, q Quadrant) {
	if r < 0 {
		return
	}
	if r == 0 {
		if in(s, cx, cy) {
			s.SetPixel(cx, cy, fg)
		}
		return
	}
	plot := func(x, y int, c rgb565.Color) {
		if in(s, x, y) {
			s.SetPixel(x, y, c)
		}
	}

	r2 := r * r
	x, y := 0, r
	for x <= y {
		outer := x*x + y*y
		inner := x*x + (y-1)*(y-1)
		span := outer - inner

		var alpha int
		if span == 0 {
			// Unreachable while y >= 1, since span is 2y-1; kept as the
			// documented midpoint fallback.
			alpha = 128
		} else {
			if span < 0 {
				panic("gfx: circle step outside its octant")
			}
			alpha = (r2 - inner) * 255 / span
			if alpha < 0 {
				// The ideal circle is inside this pair; move in and retry
				// the same column.
				y--
				continue
			}
			alpha = min(alpha, 255)
		}
		co := rgb565.Interpolate(uint8(alpha), bg, fg)
		ci := rgb565.Interpolate(uint8(255-alpha), bg, fg)

		if q.has(LowerRight) {
			plot(cx+x, cy+y, co)
			plot(cx+x, cy+y-1, ci)
			plot(cx+y, cy+x, co)
			plot(cx+y-1, cy+x, ci)
		}
		if q.has(LowerLeft) {
			plot(cx-y, cy+x, co)
			plot(cx-(y-1), cy+x, ci)
			plot(cx-x, cy+y, co)
			plot(cx-x, cy+y-1, ci)
		}
		if q.has(UpperLeft) {
			plot(cx-x, cy-y, co)
			plot(cx-x, cy-(y-1), ci)
			plot(cx-y, cy-x, co)
			plot(cx-(y-1), cy-x, ci)
		}
		if q.has(UpperRight) {
			plot(cx+y, cy-x, co)
			plot(cx+y-1, cy-x, ci)
			plot(cx+x, cy-y, co)
			plot(cx+x, cy-(y-1), ci)
		}
		x++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
