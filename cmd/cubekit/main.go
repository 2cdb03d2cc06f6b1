// cubekit - CLI workbench for the cubekit Rubik's Cube model.
package main

import (
	"github.com/SeamusWaldron/cubekit/internal/cli"
)

func main() {
	cli.Execute()
}
