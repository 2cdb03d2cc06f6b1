package cubekit

import (
	"math/rand"
	"testing"
)

func TestShuffleReturnsAppliedSequence(t *testing.T) {
	const n = 40
	for name, c := range newReps() {
		moves := Shuffle(c, n, rand.New(rand.NewSource(7)))
		if len(moves) != n {
			t.Fatalf("%s: Shuffle returned %d moves, want %d", name, len(moves), n)
		}
		for i, m := range moves {
			if m < 0 || m >= NumMoves {
				t.Errorf("%s: move %d (%d) outside the move alphabet", name, i, int(m))
			}
		}

		// Replaying the returned sequence on a fresh cube reproduces the
		// post-shuffle state.
		replay, err := NewCube(name)
		if err != nil {
			t.Fatal(err)
		}
		Apply(replay, moves...)
		if !Equal(c, replay) {
			t.Errorf("%s: replaying the shuffle should reproduce the state", name)
		}

		// And the inverse sequence undoes it.
		Apply(c, InvertMoves(moves)...)
		if !c.IsSolved() {
			t.Errorf("%s: inverting the shuffle should restore solved", name)
		}
	}
}

func TestShuffleIsReproducibleBySeed(t *testing.T) {
	a := NewFaceletCube()
	b := NewFaceletCube()
	seqA := Shuffle(a, 30, rand.New(rand.NewSource(99)))
	seqB := Shuffle(b, 30, rand.New(rand.NewSource(99)))

	for i := range seqA {
		if seqA[i] != seqB[i] {
			t.Fatalf("same seed should yield the same sequence; differs at %d: %v vs %v", i, seqA[i], seqB[i])
		}
	}
	if !Equal(a, b) {
		t.Error("same seed should yield the same state")
	}
}

func TestShuffleCoversTheMoveAlphabet(t *testing.T) {
	counts := make(map[Move]int, NumMoves)
	moves := Shuffle(NewBitboardCube(), 5000, rand.New(rand.NewSource(1)))
	for _, m := range moves {
		counts[m]++
	}
	for _, m := range AllMoves {
		if counts[m] == 0 {
			t.Errorf("move %v never drawn in 5000 samples", m)
		}
	}
}

func TestShuffleZeroTimes(t *testing.T) {
	c := NewFlatCube()
	moves := Shuffle(c, 0, rand.New(rand.NewSource(3)))
	if len(moves) != 0 {
		t.Errorf("Shuffle(0) returned %d moves", len(moves))
	}
	if !c.IsSolved() {
		t.Error("Shuffle(0) should leave the cube solved")
	}
}
