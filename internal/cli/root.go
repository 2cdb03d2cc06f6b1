// Package cli implements the command-line interface for cubekit.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
	"github.com/SeamusWaldron/cubekit/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	repName string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubekit",
	Short: "Rubik's Cube state model workbench",
	Long: `cubekit - a workbench for the cubekit Rubik's Cube model.

Scramble and inspect cubes, archive scrambles for later replay, and
benchmark the interchangeable state representations (facelet array,
flattened array, bit-packed board) against each other.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubekit/cubekit.db)")
	rootCmd.PersistentFlags().StringVar(&repName, "rep", cubekit.RepFacelet, "Cube representation: facelet, flat or bitboard")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newCube constructs a solved cube using the --rep flag.
func newCube() (cubekit.Cube, error) {
	return cubekit.NewCube(repName)
}

// openDB opens the scramble archive at --db or the default location.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	slog.Debug("opening scramble archive", "path", path)
	return storage.Open(path)
}
