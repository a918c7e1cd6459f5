package tiled

import (
	"testing"

	"github.com/payneba/wfc-visualizer/internal/core"
)

func solidTile(ts int, c uint32) []uint32 {
	px := make([]uint32, ts*ts)
	for i := range px {
		px[i] = c
	}
	return px
}

func TestSymmetryCardinalities(t *testing.T) {
	cases := []struct {
		symmetry byte
		want     int
	}{
		{'X', 1},
		{'I', 2},
		{'\\', 2},
		{'L', 4},
		{'T', 4},
		{'F', 8},
	}
	for _, tc := range cases {
		spec := []TileSpec{{Name: "a", Symmetry: tc.symmetry, Weight: 1, Pixels: solidTile(2, 1)}}
		ts, err := Assemble(spec, nil, 2, nil)
		if err != nil {
			t.Fatalf("%q: %v", string(tc.symmetry), err)
		}
		if len(ts.Pixels) != tc.want {
			t.Fatalf("%q: %d variants, want %d", string(tc.symmetry), len(ts.Pixels), tc.want)
		}
	}

	if _, err := Assemble([]TileSpec{{Name: "a", Symmetry: 'Z', Weight: 1, Pixels: solidTile(2, 1)}}, nil, 2, nil); err == nil {
		t.Fatal("unknown symmetry accepted")
	}
}

func TestVariantPixelsAreRotations(t *testing.T) {
	// 2×2 tile with a single marked corner; an L tile's four variants are
	// the four rotations.
	px := []uint32{9, 0, 0, 0}
	ts, err := Assemble([]TileSpec{{Name: "corner", Symmetry: 'L', Weight: 1, Pixels: px}}, nil, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ts.Pixels) != 4 {
		t.Fatalf("variants = %d, want 4", len(ts.Pixels))
	}
	// The rotation formula result[x+y·n] = p[n−1−y+x·n] walks the marked
	// corner top-left → bottom-left → bottom-right → top-right.
	corners := []int{0, 2, 3, 1}
	for v, corner := range corners {
		for i, p := range ts.Pixels[v] {
			want := uint32(0)
			if i == corner {
				want = 9
			}
			if p != want {
				t.Fatalf("variant %d pixel %d = %d, want %d", v, i, p, want)
			}
		}
	}
}

func TestVariantNamesAndWeights(t *testing.T) {
	ts, err := Assemble([]TileSpec{
		{Name: "pipe", Symmetry: 'I', Weight: 2.5, Pixels: solidTile(2, 1)},
	}, nil, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ts.Names[0] != "pipe 0" || ts.Names[1] != "pipe 1" {
		t.Fatalf("names = %v", ts.Names)
	}
	for _, w := range ts.Weights {
		if w != 2.5 {
			t.Fatalf("weights = %v", ts.Weights)
		}
	}
}

func TestAssembleRejectsBadInput(t *testing.T) {
	good := []TileSpec{
		{Name: "a", Symmetry: 'X', Weight: 1, Pixels: solidTile(2, 1)},
		{Name: "b", Symmetry: 'X', Weight: 1, Pixels: solidTile(2, 2)},
	}

	if _, err := Assemble(good, []NeighborRule{{Left: "a", Right: "nope"}}, 2, nil); err == nil {
		t.Fatal("rule with unknown tile accepted")
	}
	if _, err := Assemble(good, []NeighborRule{{Left: "a", LeftVariant: 3, Right: "b"}}, 2, nil); err == nil {
		t.Fatal("rule with out-of-range variant accepted")
	}
	if _, err := Assemble(good, nil, 2, []string{"ghost"}); err == nil {
		t.Fatal("subset with unknown tile accepted")
	}
	if _, err := Assemble([]TileSpec{{Name: "a", Symmetry: 'X', Weight: 1, Pixels: solidTile(3, 1)}}, nil, 2, nil); err == nil {
		t.Fatal("wrong pixel count accepted")
	}
}

func TestSubsetFiltersTilesAndRules(t *testing.T) {
	specs := []TileSpec{
		{Name: "a", Symmetry: 'X', Weight: 1, Pixels: solidTile(2, 1)},
		{Name: "b", Symmetry: 'X', Weight: 1, Pixels: solidTile(2, 2)},
		{Name: "c", Symmetry: 'X', Weight: 1, Pixels: solidTile(2, 3)},
	}
	rules := []NeighborRule{
		{Left: "a", Right: "b"},
		{Left: "b", Right: "c"}, // dropped with the subset
	}
	ts, err := Assemble(specs, rules, 2, []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ts.Pixels) != 2 {
		t.Fatalf("subset kept %d tiles, want 2", len(ts.Pixels))
	}
	// Only the a|b rule survives: b tolerates a on its left.
	if len(ts.Compat[1][core.DirLeft]) != 1 || ts.Compat[1][core.DirLeft][0] != 0 {
		t.Fatalf("compat[b][left] = %v", ts.Compat[1][core.DirLeft])
	}
	if len(ts.Compat[0][core.DirLeft]) != 0 {
		t.Fatalf("compat[a][left] = %v", ts.Compat[0][core.DirLeft])
	}
}

func TestNeighborRuleSymmetryExpansion(t *testing.T) {
	// An I tile next to itself: declaring the rule on variant 0 must imply
	// the rotated rule on variant 1 via the action table.
	specs := []TileSpec{{Name: "line", Symmetry: 'I', Weight: 1, Pixels: []uint32{0, 0, 1, 1}}}
	rules := []NeighborRule{{Left: "line", Right: "line"}}
	ts, err := Assemble(specs, rules, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Horizontal line continues horizontally.
	if len(ts.Compat[0][core.DirLeft]) != 1 || ts.Compat[0][core.DirLeft][0] != 0 {
		t.Fatalf("compat[line 0][left] = %v", ts.Compat[0][core.DirLeft])
	}
	// The rotated variant continues vertically instead.
	if len(ts.Compat[1][core.DirDown]) != 1 || ts.Compat[1][core.DirDown][0] != 1 {
		t.Fatalf("compat[line 1][down] = %v", ts.Compat[1][core.DirDown])
	}
	if len(ts.Compat[1][core.DirLeft]) != 0 {
		t.Fatalf("compat[line 1][left] = %v", ts.Compat[1][core.DirLeft])
	}
	// Right and Up are the transposes.
	if len(ts.Compat[0][core.DirRight]) != 1 || ts.Compat[0][core.DirRight][0] != 0 {
		t.Fatalf("compat[line 0][right] = %v", ts.Compat[0][core.DirRight])
	}
	if len(ts.Compat[1][core.DirUp]) != 1 || ts.Compat[1][core.DirUp][0] != 1 {
		t.Fatalf("compat[line 1][up] = %v", ts.Compat[1][core.DirUp])
	}
}
