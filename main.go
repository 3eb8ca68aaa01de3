package main

import (
	"fmt"
	"os"

	"slicepuzzle/src/ui"
)

func main() {
	if err := ui.RunSlicePuzzle(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
