package cubekit

import "testing"

func TestMoveNames(t *testing.T) {
	want := map[Move]string{
		L: "L", LPrime: "L'", L2: "L2",
		R: "R", RPrime: "R'", R2: "R2",
		U: "U", UPrime: "U'", U2: "U2",
		D: "D", DPrime: "D'", D2: "D2",
		F: "F", FPrime: "F'", F2: "F2",
		B: "B", BPrime: "B'", B2: "B2",
	}
	for m, name := range want {
		if m.Name() != name {
			t.Errorf("%d.Name() = %q, want %q", int(m), m.Name(), name)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	for _, m := range AllMoves {
		inv := m.Inverse()
		if inv.Inverse() != m {
			t.Errorf("%v: inverse should be an involution", m)
		}
		if m.Face() != inv.Face() {
			t.Errorf("%v: inverse should turn the same face", m)
		}
	}
	if R.Inverse() != RPrime || RPrime.Inverse() != R {
		t.Error("quarter turn and prime should invert each other")
	}
	if F2.Inverse() != F2 {
		t.Error("a half turn is its own inverse")
	}
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", R}, {"R'", RPrime}, {"R2", R2},
		{"l", L}, {"u'", UPrime}, {"b2", B2},
		{" F ", F}, {"D2'", D2},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "X", "R3", "RR", "2"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) should fail", bad)
		}
	}
}

func TestParseMovesRoundTrip(t *testing.T) {
	in := "R U R' U' F2 D'"
	moves, err := ParseMoves(in)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("FormatMoves = %q, want %q", got, in)
	}

	if _, err := ParseMoves("R U X"); err == nil {
		t.Error("ParseMoves with an invalid token should fail")
	}
}

func TestInvertMoves(t *testing.T) {
	seq := []Move{R, U2, FPrime}
	want := []Move{F, U2, RPrime}
	got := InvertMoves(seq)
	if len(got) != len(want) {
		t.Fatalf("InvertMoves returned %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("InvertMoves[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestColorLetters(t *testing.T) {
	want := map[Color]byte{
		White: 'W', Green: 'G', Red: 'R',
		Blue: 'B', Orange: 'O', Yellow: 'Y',
	}
	for c, letter := range want {
		if c.Letter() != letter {
			t.Errorf("%d.Letter() = %c, want %c", int(c), c.Letter(), letter)
		}
	}
}
