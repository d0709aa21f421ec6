package main

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// stdout returns os.Stdout wrapped for ANSI colour passthrough when it is
// a real terminal, matching the common isatty-gated colorable.NewColorable
// idiom: piping output to a file or another process degrades to plain
// text instead of raw escape codes.
func stdout() io.Writer {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return colorable.NewColorable(os.Stdout)
	}
	return colorable.NewNonColorable(os.Stdout)
}

const (
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiReset  = "\x1b[0m"
)
