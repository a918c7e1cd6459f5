package tiled

import (
	"fmt"

	"github.com/payneba/wfc-visualizer/internal/core"
)

// TileSpec declares one canonical tile before variant expansion.
type TileSpec struct {
	Name     string
	Symmetry byte // one of 'X', 'I', 'L', 'T', 'F', '\\'
	Weight   float64
	Pixels   []uint32
}

// NeighborRule states that the Left tile variant may sit immediately to the
// left of the Right tile variant.
type NeighborRule struct {
	Left         string
	LeftVariant  int
	Right        string
	RightVariant int
}

// Tileset is the expanded catalog the model runs on: every rotated/reflected
// variant with its pixels, name, weight, and compatibility lists.
type Tileset struct {
	TileSize int
	Pixels   [][]uint32
	Names    []string
	Weights  []float64
	Compat   [][core.NumDirections][]int
}

// symmetryClass describes how the dihedral group acts on a tile's variant
// indices: the number of distinct variants, rotation (a) and reflection (b).
type symmetryClass struct {
	cardinality int
	a, b        func(int) int
}

func classFor(symmetry byte) (symmetryClass, error) {
	switch symmetry {
	case 'X':
		return symmetryClass{1, func(i int) int { return i }, func(i int) int { return i }}, nil
	case 'I':
		return symmetryClass{2, func(i int) int { return 1 - i }, func(i int) int { return i }}, nil
	case '\\':
		return symmetryClass{2, func(i int) int { return 1 - i }, func(i int) int { return 1 - i }}, nil
	case 'L':
		return symmetryClass{4,
			func(i int) int { return (i + 1) % 4 },
			func(i int) int {
				if i%2 == 0 {
					return i + 1
				}
				return i - 1
			}}, nil
	case 'T':
		return symmetryClass{4,
			func(i int) int { return (i + 1) % 4 },
			func(i int) int {
				if i%2 == 0 {
					return i
				}
				return 4 - i
			}}, nil
	case 'F':
		return symmetryClass{8,
			func(i int) int {
				if i < 4 {
					return (i + 1) % 4
				}
				return 4 + (i-1)%4
			},
			func(i int) int {
				if i < 4 {
					return i + 4
				}
				return i - 4
			}}, nil
	}
	return symmetryClass{}, fmt.Errorf("tiled: unknown symmetry class %q", string(symmetry))
}

// rotateTile turns a square tile 90° counterclockwise (row 0 at the top).
func rotateTile(p []uint32, ts int) []uint32 {
	out := make([]uint32, len(p))
	for y := 0; y < ts; y++ {
		for x := 0; x < ts; x++ {
			out[x+y*ts] = p[ts-1-y+x*ts]
		}
	}
	return out
}

// reflectTile mirrors a square tile horizontally.
func reflectTile(p []uint32, ts int) []uint32 {
	out := make([]uint32, len(p))
	for y := 0; y < ts; y++ {
		for x := 0; x < ts; x++ {
			out[x+y*ts] = p[ts-1-x+y*ts]
		}
	}
	return out
}

// Assemble expands tile declarations into variants, applies the neighbor
// rules through each tile's symmetry action table, and produces the sparse
// compatibility lists. A non-empty subset keeps only the named tiles; rules
// touching tiles outside the subset are skipped, rules naming unknown tiles
// are errors.
func Assemble(specs []TileSpec, rules []NeighborRule, tileSize int, subset []string) (*Tileset, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tiled: tile size %d must be positive", tileSize)
	}

	declared := map[string]bool{}
	for _, s := range specs {
		declared[s.Name] = true
	}
	keep := declared
	if len(subset) > 0 {
		keep = map[string]bool{}
		for _, name := range subset {
			if !declared[name] {
				return nil, fmt.Errorf("tiled: subset names unknown tile %q", name)
			}
			keep[name] = true
		}
	}

	ts := &Tileset{TileSize: tileSize}
	firstOccurrence := map[string]int{}
	cardinality := map[string]int{}
	// action[t][s] maps variant t through symmetry operation s, where the
	// eight operations are identity, a, a², a³, b, ba, ba², ba³.
	var action [][8]int

	for _, spec := range specs {
		if !keep[spec.Name] {
			continue
		}
		if len(spec.Pixels) != tileSize*tileSize {
			return nil, fmt.Errorf("tiled: tile %q has %d pixels, want %d", spec.Name, len(spec.Pixels), tileSize*tileSize)
		}
		cls, err := classFor(spec.Symmetry)
		if err != nil {
			return nil, err
		}
		base := len(ts.Pixels)
		firstOccurrence[spec.Name] = base
		cardinality[spec.Name] = cls.cardinality

		for t := 0; t < cls.cardinality; t++ {
			var m [8]int
			m[0] = t
			m[1] = cls.a(t)
			m[2] = cls.a(m[1])
			m[3] = cls.a(m[2])
			m[4] = cls.b(t)
			m[5] = cls.b(m[1])
			m[6] = cls.b(m[2])
			m[7] = cls.b(m[3])
			for s := range m {
				m[s] += base
			}
			action = append(action, m)

			var px []uint32
			switch {
			case t == 0:
				px = append([]uint32(nil), spec.Pixels...)
			case t < 4:
				px = rotateTile(ts.Pixels[base+t-1], tileSize)
			default:
				px = reflectTile(ts.Pixels[base+t-4], tileSize)
			}
			ts.Pixels = append(ts.Pixels, px)
			ts.Names = append(ts.Names, fmt.Sprintf("%s %d", spec.Name, t))
			ts.Weights = append(ts.Weights, spec.Weight)
		}
	}
	if len(ts.Pixels) == 0 {
		return nil, fmt.Errorf("tiled: empty tileset")
	}

	total := len(ts.Pixels)
	dense := make([][core.NumDirections][]bool, total)
	for t := range dense {
		for d := 0; d < core.NumDirections; d++ {
			dense[t][d] = make([]bool, total)
		}
	}

	for _, rule := range rules {
		if !declared[rule.Left] || !declared[rule.Right] {
			return nil, fmt.Errorf("tiled: neighbor rule references unknown tile %q / %q", rule.Left, rule.Right)
		}
		if !keep[rule.Left] || !keep[rule.Right] {
			continue
		}
		if rule.LeftVariant >= cardinality[rule.Left] || rule.RightVariant >= cardinality[rule.Right] {
			return nil, fmt.Errorf("tiled: neighbor rule variant out of range for %q/%q", rule.Left, rule.Right)
		}

		left := action[firstOccurrence[rule.Left]][rule.LeftVariant]
		right := action[firstOccurrence[rule.Right]][rule.RightVariant]
		down := action[left][1]
		up := action[right][1]

		dense[right][core.DirLeft][left] = true
		dense[action[right][6]][core.DirLeft][action[left][6]] = true
		dense[action[left][4]][core.DirLeft][action[right][4]] = true
		dense[action[left][2]][core.DirLeft][action[right][2]] = true

		dense[up][core.DirDown][down] = true
		dense[action[down][6]][core.DirDown][action[up][6]] = true
		dense[action[up][4]][core.DirDown][action[down][4]] = true
		dense[action[down][2]][core.DirDown][action[up][2]] = true
	}

	for t2 := 0; t2 < total; t2++ {
		for t1 := 0; t1 < total; t1++ {
			dense[t2][core.DirRight][t1] = dense[t1][core.DirLeft][t2]
			dense[t2][core.DirUp][t1] = dense[t1][core.DirDown][t2]
		}
	}

	ts.Compat = make([][core.NumDirections][]int, total)
	for t := 0; t < total; t++ {
		for d := 0; d < core.NumDirections; d++ {
			for t2 := 0; t2 < total; t2++ {
				if dense[t][d][t2] {
					ts.Compat[t][d] = append(ts.Compat[t][d], t2)
				}
			}
		}
	}
	return ts, nil
}
