package cubekit

import (
	"math/rand"
	"testing"
)

// newReps returns one solved cube per representation, keyed by name.
func newReps() map[string]Cube {
	return map[string]Cube{
		RepFacelet:  NewFaceletCube(),
		RepFlat:     NewFlatCube(),
		RepBitboard: NewBitboardCube(),
	}
}

func TestNewCubeIsSolved(t *testing.T) {
	for name, c := range newReps() {
		if !c.IsSolved() {
			t.Errorf("%s: new cube should be solved", name)
		}
	}
}

func TestNewCubeByName(t *testing.T) {
	for _, rep := range Representations {
		c, err := NewCube(rep)
		if err != nil {
			t.Fatalf("NewCube(%q): %v", rep, err)
		}
		if !c.IsSolved() {
			t.Errorf("NewCube(%q) should be solved", rep)
		}
	}
	if _, err := NewCube("hologram"); err == nil {
		t.Error("NewCube with unknown representation should fail")
	}
}

func TestSolvedColorMapping(t *testing.T) {
	want := map[Face]Color{
		Up: White, Left: Green, Front: Red,
		Right: Blue, Back: Orange, Down: Yellow,
	}
	for name, c := range newReps() {
		for f, col := range want {
			for row := 0; row < 3; row++ {
				for cc := 0; cc < 3; cc++ {
					if got := c.ColorAt(f, row, cc); got != col {
						t.Errorf("%s: solved %v(%d,%d) = %v, want %v", name, f, row, cc, got, col)
					}
				}
			}
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for name, c := range newReps() {
		c.Move(R)
		if c.IsSolved() {
			t.Errorf("%s: cube should not be solved after R", name)
		}
	}
}

func TestQuarterTurnFourTimesIsIdentity(t *testing.T) {
	quarters := []Move{L, R, U, D, F, B}
	for name := range newReps() {
		for _, m := range quarters {
			c := newReps()[name]
			c.Move(m).Move(m).Move(m).Move(m)
			if !c.IsSolved() {
				t.Errorf("%s: %v x4 should return to solved\n%s", name, m, PlanarString(c))
			}
		}
	}
}

func TestHalfTurnTwiceIsIdentity(t *testing.T) {
	halves := []Move{L2, R2, U2, D2, F2, B2}
	for name := range newReps() {
		for _, m := range halves {
			c := newReps()[name]
			c.Move(m).Move(m)
			if !c.IsSolved() {
				t.Errorf("%s: %v x2 should return to solved\n%s", name, m, PlanarString(c))
			}
		}
	}
}

func TestHalfTurnEqualsTwoQuarterTurns(t *testing.T) {
	pairs := [][2]Move{{L2, L}, {R2, R}, {U2, U}, {D2, D}, {F2, F}, {B2, B}}
	for name := range newReps() {
		for _, p := range pairs {
			half := newReps()[name]
			quarter := newReps()[name]
			// Apply from a scrambled position so the check is not trivial.
			scramble := []Move{R, U, FPrime, D2, L}
			Apply(half, scramble...)
			Apply(quarter, scramble...)

			half.Move(p[0])
			quarter.Move(p[1]).Move(p[1])
			if !Equal(half, quarter) {
				t.Errorf("%s: %v should equal %v %v", name, p[0], p[1], p[1])
			}
		}
	}
}

func TestMoveThenInverseRoundTrips(t *testing.T) {
	for name := range newReps() {
		for _, m := range AllMoves {
			c := newReps()[name]
			// Start from a scrambled state, not just solved.
			Apply(c, F, U, RPrime, B2, D)
			before := c.Clone()

			c.Move(m).Invert(m)
			if !Equal(c, before) {
				t.Errorf("%s: %v then %v should restore the state", name, m, m.Inverse())
			}
		}
	}
}

func TestOppositeFacesCommute(t *testing.T) {
	pairs := [][2]Move{{L, R}, {U, D}, {F, B}}
	for name := range newReps() {
		for _, p := range pairs {
			ab := newReps()[name]
			ba := newReps()[name]
			ab.Move(p[0]).Move(p[1])
			ba.Move(p[1]).Move(p[0])
			if !Equal(ab, ba) {
				t.Errorf("%s: %v and %v should commute", name, p[0], p[1])
			}
		}
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	// (R U R' U') x6 has order 6 in the cube group.
	for name, c := range newReps() {
		for i := 0; i < 6; i++ {
			c.Move(R).Move(U).Move(RPrime).Move(UPrime)
		}
		if !c.IsSolved() {
			t.Errorf("%s: sexy move x6 should return to solved\n%s", name, PlanarString(c))
		}
	}
}

func TestFrontTurnMigratesLeftColumnToUp(t *testing.T) {
	for name, c := range newReps() {
		before := c.ColorAt(Left, 0, 2)
		c.Move(F)
		if got := c.ColorAt(Up, 2, 0); got != before {
			t.Errorf("%s: after F, Up(2,0) = %v, want the pre-move Left(0,2) color %v", name, got, before)
		}
	}
}

func TestNetIdentitySequenceRestoresSolved(t *testing.T) {
	seq := []Move{F, R2, UPrime, B, D}
	for name, c := range newReps() {
		Apply(c, seq...)
		if c.IsSolved() {
			t.Errorf("%s: cube should be scrambled", name)
		}
		Apply(c, InvertMoves(seq)...)
		if !c.IsSolved() {
			t.Errorf("%s: inverse sequence should restore solved\n%s", name, PlanarString(c))
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	for name, c := range newReps() {
		Apply(c, R, U)
		snapshot := c.Clone()
		c.Move(F).Move(D2)
		if Equal(c, snapshot) {
			t.Errorf("%s: mutating the original should not be visible in the clone", name)
		}
		c.Invert(D2).Invert(F)
		if !Equal(c, snapshot) {
			t.Errorf("%s: clone should hold the pre-mutation state", name)
		}
	}
}

func TestMoveChaining(t *testing.T) {
	for name, c := range newReps() {
		if !c.Move(F).Move(U).Invert(U).Invert(F).IsSolved() {
			t.Errorf("%s: chained moves and inverses should restore solved", name)
		}
	}
}

func TestColorAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ColorAt with out-of-range row should panic")
		}
	}()
	NewFaceletCube().ColorAt(Up, 3, 0)
}

func TestRepresentationsAgreeOnRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	reps := newReps()

	for step := 0; step < 500; step++ {
		m := AllMoves[rng.Intn(NumMoves)]
		for _, c := range reps {
			c.Move(m)
		}

		ref := reps[RepFacelet]
		for name, c := range reps {
			if name == RepFacelet {
				continue
			}
			if !Equal(ref, c) {
				t.Fatalf("step %d (%v): %s diverged from %s\n%s\nvs\n%s",
					step, m, name, RepFacelet, PlanarString(c), PlanarString(ref))
			}
		}
	}
}
