// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// isInteractive reports whether both stdin and stdout are terminals.
func isInteractive() bool {
	in := os.Stdin.Fd()
	out := os.Stdout.Fd()

	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

// pickDataset shows a select prompt over names.
func pickDataset(names []string) (string, error) {
	var choice string
	err := huh.NewSelect[string]().
		Title("Choose a dataset").
		Options(huh.NewOptions(names...)...).
		Value(&choice).
		Run()

	return choice, err
}
