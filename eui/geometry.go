package eui

// containsPoint checks whether the given point lies within the rectangle.
func (r rect) containsPoint(p point) bool {
	return p.X >= r.X0 && p.Y >= r.Y0 && p.X <= r.X1 && p.Y <= r.Y1
}

func (r rect) width() float32  { return r.X1 - r.X0 }
func (r rect) height() float32 { return r.Y1 - r.Y0 }

// unionRect expands a to encompass b and returns the result.
func unionRect(a, b rect) rect {
	if b.X0 < a.X0 {
		a.X0 = b.X0
	}
	if b.Y0 < a.Y0 {
		a.Y0 = b.Y0
	}
	if b.X1 > a.X1 {
		a.X1 = b.X1
	}
	if b.Y1 > a.Y1 {
		a.Y1 = b.Y1
	}
	return a
}
