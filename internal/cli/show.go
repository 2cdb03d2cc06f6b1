package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
	"github.com/SeamusWaldron/cubekit/internal/storage"
)

var showLast bool

var showCmd = &cobra.Command{
	Use:   "show [scramble-id]",
	Short: "Replay an archived scramble",
	Long: `Load an archived scramble, replay its move sequence on a solved
cube and display the result.

Use --last to show the most recent scramble.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent scramble")
}

func runShow(cmd *cobra.Command, args []string) error {
	if !showLast && len(args) == 0 {
		return fmt.Errorf("provide a scramble ID or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	var s *storage.Scramble
	if showLast {
		s, err = repo.Last()
	} else {
		s, err = repo.Get(args[0])
	}
	if err != nil {
		return err
	}

	moves, err := cubekit.ParseMoves(s.Moves)
	if err != nil {
		return fmt.Errorf("archived scramble %s is unreadable: %w", s.ScrambleID, err)
	}

	// Replay on the representation the scramble was recorded with.
	c, err := cubekit.NewCube(s.Representation)
	if err != nil {
		return err
	}
	cubekit.Apply(c, moves...)

	fmt.Println(headerStyle.Render("Scramble " + s.ScrambleID))
	fmt.Printf("%s  %s, %d moves, representation %s\n",
		dimStyle.Render(s.CreatedAt.Local().Format("2006-01-02 15:04:05")),
		stateNote(s), s.MoveCount, s.Representation)
	fmt.Println(movesStyle.Render(s.Moves))
	fmt.Println()
	fmt.Print(renderCube(c))
	fmt.Println()
	fmt.Printf("State: %s\n", solvedLabel(c))
	fmt.Printf("Undo with: %s\n", movesStyle.Render(cubekit.FormatMoves(cubekit.InvertMoves(moves))))

	return nil
}

func stateNote(s *storage.Scramble) string {
	if s.Seed != nil {
		return fmt.Sprintf("seed %d", *s.Seed)
	}
	return "unseeded"
}
