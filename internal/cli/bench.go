package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
)

var (
	benchMoves  int
	benchRounds int
	benchSeed   int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the cube representations against each other",
	Long: `Apply identical random move sequences to every representation,
report the time per move, and cross-check that all representations agree
on all 54 facelets afterwards.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchMoves, "moves", 100000, "Moves per round")
	benchCmd.Flags().IntVar(&benchRounds, "rounds", 3, "Number of rounds")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "Random seed for the move sequences")
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchMoves <= 0 || benchRounds <= 0 {
		return fmt.Errorf("--moves and --rounds must be positive")
	}

	rng := rand.New(rand.NewSource(benchSeed))
	sequence := make([]cubekit.Move, benchMoves)

	fmt.Println(headerStyle.Render("Representation benchmark"))
	fmt.Printf("%d rounds x %d moves, seed %d\n\n", benchRounds, benchMoves, benchSeed)

	cubes := make(map[string]cubekit.Cube, len(cubekit.Representations))
	for _, rep := range cubekit.Representations {
		c, err := cubekit.NewCube(rep)
		if err != nil {
			return err
		}
		cubes[rep] = c
	}

	totals := make(map[string]time.Duration, len(cubes))
	for round := 0; round < benchRounds; round++ {
		for i := range sequence {
			sequence[i] = cubekit.AllMoves[rng.Intn(cubekit.NumMoves)]
		}

		for _, rep := range cubekit.Representations {
			c := cubes[rep]
			start := time.Now()
			for _, m := range sequence {
				c.Move(m)
			}
			totals[rep] += time.Since(start)
		}

		// Differential check: every representation must agree after the
		// same sequence.
		ref := cubes[cubekit.Representations[0]]
		for _, rep := range cubekit.Representations[1:] {
			if !cubekit.Equal(ref, cubes[rep]) {
				return fmt.Errorf("representation %s diverged from %s after round %d",
					rep, cubekit.Representations[0], round+1)
			}
		}
	}

	totalMoves := benchMoves * benchRounds
	for _, rep := range cubekit.Representations {
		perMove := totals[rep] / time.Duration(totalMoves)
		fmt.Printf("%-10s %10v total  %8v/move\n", rep, totals[rep].Round(time.Microsecond), perMove)
	}
	fmt.Println()
	fmt.Println(solvedStyle.Render("All representations agree on all 54 facelets."))

	return nil
}
