package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-offline/models/battleship"
)

var glyphs = map[mb.CellMark]string{
	mb.MarkShip:     "■",
	mb.MarkHit:      "X",
	mb.MarkMiss:     "T",
	mb.MarkBoundary: "B",
	mb.MarkEmpty:    "O",
}

// RenderBoard writes the grid with one-based row and column labels,
// the same numbers a player types to shoot.
func RenderBoard(w io.Writer, view mb.BoardView) {
	width := len(strconv.Itoa(view.SideLength))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width) + " |")
	for col := 1; col <= view.SideLength; col++ {
		fmt.Fprintf(&sb, " %*d |", width, col)
	}
	sb.WriteString("\n")

	for i, row := range view.Rows {
		fmt.Fprintf(&sb, "%*d |", width, i+1)
		for _, cell := range row {
			fmt.Fprintf(&sb, " %*s |", width, glyphs[cell.Mark()])
		}
		sb.WriteString("\n")
	}

	_, _ = io.WriteString(w, sb.String())
}
