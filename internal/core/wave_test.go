package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// recompute derives the memoized scalars of one cell from scratch, starting
// from the raw construction weights.
func recompute(wv *Wave, i int) (remaining int, sum, plogpSum, entropy float64) {
	total := floats.Sum(wv.weights)
	for t := 0; t < wv.T; t++ {
		if !wv.Get(i, t) {
			continue
		}
		remaining++
		if w := wv.Weight(t); w > 0 {
			p := w / total
			sum += p
			plogpSum += p * math.Log(p)
		}
	}
	if sum > 0 {
		entropy = math.Log(sum) - plogpSum/sum
	}
	return remaining, sum, plogpSum, entropy
}

func checkScalars(t *testing.T, wv *Wave, i int) {
	t.Helper()
	remaining, sum, plogpSum, entropy := recompute(wv, i)
	if wv.Remaining(i) != remaining {
		t.Fatalf("cell %d remaining = %d, recompute = %d", i, wv.Remaining(i), remaining)
	}
	if math.Abs(wv.sums[i]-sum) > 1e-9 {
		t.Fatalf("cell %d sum = %v, recompute = %v", i, wv.sums[i], sum)
	}
	if math.Abs(wv.plogpSums[i]-plogpSum) > 1e-9 {
		t.Fatalf("cell %d plogpSum = %v, recompute = %v", i, wv.plogpSums[i], plogpSum)
	}
	if remaining <= 1 && wv.Entropy(i) != 0 && sum > 0 {
		// A single remaining pattern has zero entropy up to float error.
		if math.Abs(wv.Entropy(i)) > 1e-9 {
			t.Fatalf("cell %d collapsed entropy = %v", i, wv.Entropy(i))
		}
	}
	if sum > 0 && math.Abs(wv.Entropy(i)-entropy) > 1e-9 {
		t.Fatalf("cell %d entropy = %v, recompute = %v", i, wv.Entropy(i), entropy)
	}
	if sum == 0 && wv.Entropy(i) != 0 {
		t.Fatalf("cell %d zero-sum entropy = %v, want 0", i, wv.Entropy(i))
	}
}

func TestNewWaveRejectsBadInput(t *testing.T) {
	if _, err := NewWave(0, 4, []float64{1}); err == nil {
		t.Fatal("zero width accepted")
	}
	if _, err := NewWave(4, 4, nil); err == nil {
		t.Fatal("empty weights accepted")
	}
	if _, err := NewWave(4, 4, []float64{0, 0}); err == nil {
		t.Fatal("zero-sum weights accepted")
	}
	if _, err := NewWave(4, 4, []float64{1, -1, 1}); err == nil {
		t.Fatal("negative weight accepted")
	}
}

func TestRemoveUpdatesScalars(t *testing.T) {
	wv, err := NewWave(3, 3, []float64{3, 1, 2, 5})
	if err != nil {
		t.Fatal(err)
	}
	if got := floats.Sum(wv.weights); got != 11 {
		t.Fatalf("weight sum = %v", got)
	}

	cell := 4
	for _, pattern := range []int{2, 0, 3} {
		if !wv.Remove(cell, pattern) {
			t.Fatalf("remove(%d, %d) returned false", cell, pattern)
		}
		checkScalars(t, wv, cell)
	}
	if wv.Remaining(cell) != 1 {
		t.Fatalf("remaining = %d, want 1", wv.Remaining(cell))
	}
	if !wv.Get(cell, 1) {
		t.Fatal("pattern 1 should survive")
	}
}

func TestRemoveIdempotent(t *testing.T) {
	wv, err := NewWave(2, 2, []float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !wv.Remove(0, 1) {
		t.Fatal("first remove returned false")
	}
	before := wv.sums[0]
	if wv.Remove(0, 1) {
		t.Fatal("second remove returned true")
	}
	if wv.sums[0] != before || wv.Remaining(0) != 2 {
		t.Fatal("second remove changed state")
	}
}

func TestCollapsePicksByWeight(t *testing.T) {
	// Pattern 1 carries almost all the weight; a collapse should essentially
	// always choose it.
	wv, err := NewWave(1, 1, []float64{0.001, 100, 0.001})
	if err != nil {
		t.Fatal(err)
	}
	chosen, removed := wv.Collapse(0, NewRandom(5))
	if chosen != 1 {
		t.Fatalf("chosen = %d, want 1", chosen)
	}
	if len(removed) != 2 {
		t.Fatalf("removed %d patterns, want 2", len(removed))
	}
	if wv.Remaining(0) != 1 {
		t.Fatalf("remaining = %d after collapse", wv.Remaining(0))
	}
	checkScalars(t, wv, 0)
}

func TestCollapseOnEmptyCell(t *testing.T) {
	wv, err := NewWave(1, 1, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	wv.Remove(0, 0)
	wv.Remove(0, 1)
	if chosen, _ := wv.Collapse(0, NewRandom(1)); chosen != -1 {
		t.Fatalf("collapse on contradicted cell = %d, want -1", chosen)
	}
}

func TestPossibleOrder(t *testing.T) {
	wv, err := NewWave(1, 1, []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	wv.Remove(0, 2)
	got := wv.Possible(0)
	want := []int{0, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("possible = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("possible = %v, want %v", got, want)
		}
	}
}

func TestClearRestoresStartingState(t *testing.T) {
	wv, err := NewWave(2, 2, []float64{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	start := wv.Entropy(0)
	wv.Remove(0, 0)
	wv.Remove(3, 1)
	wv.Clear()
	for i := 0; i < 4; i++ {
		if wv.Remaining(i) != 2 {
			t.Fatalf("cell %d remaining = %d after clear", i, wv.Remaining(i))
		}
		if wv.Entropy(i) != start {
			t.Fatalf("cell %d entropy = %v after clear, want %v", i, wv.Entropy(i), start)
		}
		checkScalars(t, wv, i)
	}
}

func TestNoiseScaleBelowEntropyGap(t *testing.T) {
	wv, err := NewWave(1, 1, []float64{1, 2, 4})
	if err != nil {
		t.Fatal(err)
	}
	minPlogp := math.Inf(1)
	for _, p := range wv.plogp {
		if p != 0 && math.Abs(p) < minPlogp {
			minPlogp = math.Abs(p)
		}
	}
	if wv.noiseScale != minPlogp/2 {
		t.Fatalf("noiseScale = %v, want %v", wv.noiseScale, minPlogp/2)
	}
}
