package cli

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
	"github.com/SeamusWaldron/cubekit/internal/storage"
)

var (
	scrambleMoves int
	scrambleSeed  int64
	scrambleSave  bool
	scrambleNotes string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a cube and print the move sequence",
	Long: `Scramble a solved cube with random moves and print the applied
sequence together with the resulting cube.

With --seed the scramble is reproducible; with --save it is archived in the
scramble database for later replay via "cubekit show".`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 25, "Number of random moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Archive the scramble")
	scrambleCmd.Flags().StringVar(&scrambleNotes, "notes", "", "Notes to store with --save")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleMoves < 0 {
		return fmt.Errorf("--moves must not be negative")
	}

	c, err := newCube()
	if err != nil {
		return err
	}

	var rng *rand.Rand
	var seedPtr *int64
	if scrambleSeed != 0 {
		rng = rand.New(rand.NewSource(scrambleSeed))
		seedPtr = &scrambleSeed
	}

	moves := cubekit.Shuffle(c, scrambleMoves, rng)
	notation := cubekit.FormatMoves(moves)
	slog.Debug("scrambled cube", "rep", repName, "moves", len(moves))

	fmt.Println(headerStyle.Render("Scramble"))
	fmt.Println(movesStyle.Render(notation))
	fmt.Println()
	fmt.Print(renderCube(c))
	fmt.Println()
	fmt.Printf("State: %s\n", solvedLabel(c))

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewScrambleRepository(db)
		id, err := repo.Save(repName, notation, len(moves), seedPtr, scrambleNotes)
		if err != nil {
			return err
		}
		fmt.Printf("Saved scramble %s\n", dimStyle.Render(id))
	}

	return nil
}
