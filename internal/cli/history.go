package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived scrambles",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of scrambles to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := storage.NewScrambleRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No scrambles archived yet. Try: cubekit scramble --save")
		return nil
	}

	fmt.Println(headerStyle.Render("Scramble history"))
	for _, s := range list {
		notes := ""
		if s.Notes != nil {
			notes = "  " + dimStyle.Render(*s.Notes)
		}
		fmt.Printf("%s  %s  %2d moves  %-8s%s\n",
			s.ScrambleID,
			dimStyle.Render(s.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			s.MoveCount, s.Representation, notes)
	}
	return nil
}
