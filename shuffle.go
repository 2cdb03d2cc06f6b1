package cubekit

import (
	"math/rand"
	"time"
)

// Shuffle applies times moves drawn uniformly at random from the 18-move
// alphabet and returns the exact sequence applied, so a caller can replay
// it or undo it with InvertMoves.
//
// The random source is a parameter so shuffles can be reproduced in tests
// and archived by seed; a nil rng uses a time-seeded source.
func Shuffle(c Cube, times int, rng *rand.Rand) []Move {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	moves := make([]Move, times)
	for i := range moves {
		m := AllMoves[rng.Intn(NumMoves)]
		moves[i] = m
		c.Move(m)
	}
	return moves
}
