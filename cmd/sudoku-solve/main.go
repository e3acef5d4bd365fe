package main

import (
	"fmt"
	"os"

	cliadapter "svw.info/sudoku-solve/internal/adapters/cli"
)

func main() {
	if err := cliadapter.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
