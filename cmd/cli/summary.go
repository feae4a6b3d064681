package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/hailam/bigtext/internal/ports"
	"github.com/hailam/bigtext/internal/utils"
)

var doneColor = color.New(color.FgGreen, color.Bold)

func printSummary(w io.Writer, s ports.Summary) {
	doneColor.Fprintln(w, "Done!")
	fmt.Fprintf(w, "File: %s\n", s.Path)
	fmt.Fprintf(w, "Actual size: %.2f MB\n", utils.ToMB(s.FileSize))
	fmt.Fprintf(w, "Total lines: %s\n", utils.FormatCount(s.Lines))
	fmt.Fprintf(w, "Average line length: %.1f chars\n", s.AverageLineLength())
}
