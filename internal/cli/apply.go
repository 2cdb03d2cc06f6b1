package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
)

var applyCorners bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a move sequence in standard notation to a solved cube and
print the result.

Example:
  cubekit apply "R U R' U'"
  cubekit apply --corners "F2 D B'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyCorners, "corners", false, "Print the corner permutation/orientation table")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := cubekit.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	c, err := newCube()
	if err != nil {
		return err
	}
	cubekit.Apply(c, moves...)

	fmt.Println(movesStyle.Render(cubekit.FormatMoves(moves)))
	fmt.Println()
	fmt.Print(renderCube(c))
	fmt.Println()
	fmt.Printf("State: %s\n", solvedLabel(c))

	if applyCorners {
		fmt.Println()
		if err := printCornerTable(c); err != nil {
			return err
		}
	}

	return nil
}

// printCornerTable prints the per-corner pattern-database key components.
func printCornerTable(c cubekit.Cube) error {
	fmt.Println(headerStyle.Render("Corners"))
	fmt.Println(dimStyle.Render("pos  colors  index  orientation"))
	for ind := 0; ind < 8; ind++ {
		sig := cubekit.CornerColorString(c, ind)
		id, err := cubekit.CornerIndex(c, ind)
		if err != nil {
			return err
		}
		ori, err := cubekit.CornerOrientation(c, ind)
		if err != nil {
			return err
		}
		fmt.Printf("%3d  %s  %5d  %11d\n", ind, sig, id, ori)
	}
	return nil
}
