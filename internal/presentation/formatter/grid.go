package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-datetime-bench/internal/util"
)

// grid is a box-drawn table. Columns flagged in rightAlign are numeric.
type grid struct {
	headers    []string
	rightAlign []bool
	rows       [][]string
	footer     []string
}

func newGrid(headers ...string) *grid {
	return &grid{headers: headers, rightAlign: make([]bool, len(headers))}
}

func (g *grid) alignRight(cols ...int) *grid {
	for _, c := range cols {
		g.rightAlign[c] = true
	}
	return g
}

func (g *grid) add(values ...string) {
	g.rows = append(g.rows, values)
}

// widths sizes each column to its widest cell by display width
func (g *grid) widths() []int {
	widths := make([]int, len(g.headers))
	measure := func(values []string) {
		for i, v := range values {
			if w := util.GetDisplayWidth(v); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(g.headers)
	for _, row := range g.rows {
		measure(row)
	}
	if g.footer != nil {
		measure(g.footer)
	}
	return widths
}

func (g *grid) render(w io.Writer) {
	widths := g.widths()

	printBorder(w, widths, "top")
	g.printRow(w, g.headers, widths, true)
	printBorder(w, widths, "middle")
	for _, row := range g.rows {
		g.printRow(w, row, widths, false)
	}
	if g.footer != nil {
		printBorder(w, widths, "middle")
		g.printRow(w, g.footer, widths, false)
	}
	printBorder(w, widths, "bottom")
}

func printBorder(w io.Writer, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	var b strings.Builder
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	fmt.Fprintln(w, b.String())
}

func (g *grid) printRow(w io.Writer, values []string, widths []int, header bool) {
	var b strings.Builder
	b.WriteString("│")
	for i, value := range values {
		b.WriteString(" ")
		if g.rightAlign[i] && !header {
			b.WriteString(util.PadLeft(value, widths[i]))
		} else {
			b.WriteString(util.PadRight(value, widths[i]))
		}
		b.WriteString(" │")
	}
	fmt.Fprintln(w, b.String())
}
