// SPDX-License-Identifier: MIT

// Command tourbench compares Euclidean TSP heuristics on a point set.
//
//	tourbench list                      # datasets in the dataset directory
//	tourbench run --dataset pts.txt     # run and rank every algorithm
//	tourbench run                       # pick a dataset interactively
//	tourbench config                    # print the effective configuration
package main

import (
	"context"
	"os"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.root().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
