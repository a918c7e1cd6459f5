package core

// Propagator drives arc-consistency over the cell grid. For every
// (cell, pattern, direction) it maintains the number of patterns still
// possible in that neighbor which support the pattern here; when a count hits
// zero the pattern has lost all support from that side and must be removed.
// Removals queue on a LIFO stack until the fixpoint is reached.
//
// compat[t][d] lists the patterns that may lie in direction d from t.
type Propagator struct {
	W, H     int
	T        int
	periodic bool

	compat [][NumDirections][]int
	counts []int32

	stack []stackEntry
}

type stackEntry struct {
	cell    int32
	pattern int32
}

// NewPropagator builds the per-cell support counts for a w×h grid from the
// sparse compatibility lists.
func NewPropagator(w, h int, periodic bool, compat [][NumDirections][]int) *Propagator {
	p := &Propagator{
		W:        w,
		H:        h,
		T:        len(compat),
		periodic: periodic,
		compat:   compat,
		counts:   make([]int32, w*h*len(compat)*NumDirections),
		stack:    make([]stackEntry, 0, w*h*len(compat)),
	}
	p.Reset()
	return p
}

func (p *Propagator) countIndex(cell, t, d int) int {
	return (cell*p.T+t)*NumDirections + d
}

// Reset rebuilds the support counts and empties the stack.
func (p *Propagator) Reset() {
	p.stack = p.stack[:0]
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			cell := x + y*p.W
			for t := 0; t < p.T; t++ {
				for d := 0; d < NumDirections; d++ {
					n := 0
					if _, _, ok := Neighbor(x, y, d, p.W, p.H, p.periodic); ok {
						n = len(p.compat[t][d])
					}
					p.counts[p.countIndex(cell, t, d)] = int32(n)
				}
			}
		}
	}
}

// Push queues a (cell, removed pattern) pair for propagation. The pattern
// must already be removed from the wave.
func (p *Propagator) Push(cell, t int) {
	p.stack = append(p.stack, stackEntry{cell: int32(cell), pattern: int32(t)})
}

// Propagate drains the stack to the arc-consistency fixpoint. It returns
// false as soon as some cell runs out of possible patterns.
func (p *Propagator) Propagate(wv *Wave) bool {
	for len(p.stack) > 0 {
		e := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		cell := int(e.cell)
		t := int(e.pattern)
		x := cell % p.W
		y := cell / p.W

		for d := 0; d < NumDirections; d++ {
			nx, ny, ok := Neighbor(x, y, d, p.W, p.H, p.periodic)
			if !ok {
				continue
			}
			j := nx + ny*p.W
			opp := Opposite[d]
			for _, t2 := range p.compat[t][d] {
				idx := p.countIndex(j, t2, opp)
				p.counts[idx]--
				if p.counts[idx] == 0 && wv.Get(j, t2) {
					wv.Remove(j, t2)
					p.Push(j, t2)
					if wv.Remaining(j) == 0 {
						return false
					}
				}
			}
		}
	}
	return true
}
