package overlapping

// Patterns are N×N grids of palette indices stored row-major.

// rotate returns the pattern turned 90° counterclockwise (row 0 at the top):
// result[x+y·n] = p[n−1−y+x·n].
func rotate(p []byte, n int) []byte {
	out := make([]byte, len(p))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = p[n-1-y+x*n]
		}
	}
	return out
}

// reflect returns the pattern mirrored horizontally.
func reflect(p []byte, n int) []byte {
	out := make([]byte, len(p))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = p[n-1-x+y*n]
		}
	}
	return out
}

// agree reports whether q shifted by (dx, dy) matches p on the overlap
// rectangle of the two N×N grids.
func agree(p, q []byte, n, dx, dy int) bool {
	xmin, xmax := 0, n
	if dx < 0 {
		xmax = dx + n
	} else {
		xmin = dx
	}
	ymin, ymax := 0, n
	if dy < 0 {
		ymax = dy + n
	} else {
		ymin = dy
	}
	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p[x+y*n] != q[(x-dx)+(y-dy)*n] {
				return false
			}
		}
	}
	return true
}
