package cli

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	symbolEmpty = "O"
	symbolShip  = "■"
	symbolHit   = "X"
	symbolMiss  = "•"
)

func positionSymbol(state uint8, hidden bool) string {
	switch state {
	case mb.PositionStateShip:
		if hidden {
			return symbolEmpty
		}
		return symbolShip
	case mb.PositionStateHit:
		return symbolHit
	case mb.PositionStateMiss:
		return symbolMiss
	default:
		return symbolEmpty
	}
}

// RenderGrid draws the grid with 1-based row and column labels. With hidden
// set, ships that were not hit are drawn as open water.
func RenderGrid(grid *mb.Grid, hidden bool) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 1; col <= grid.Size(); col++ {
		fmt.Fprintf(&sb, " | %d", col)
	}
	sb.WriteString(" |")

	for i, row := range grid.Cells() {
		fmt.Fprintf(&sb, "\n%d", i+1)
		for _, state := range row {
			sb.WriteString(" | ")
			sb.WriteString(positionSymbol(state, hidden))
		}
		sb.WriteString(" |")
	}
	return sb.String()
}

func writeGrid(w io.Writer, title string, grid *mb.Grid, hidden bool) {
	fmt.Fprintln(w, strings.Repeat("-", 20))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, RenderGrid(grid, hidden))
}
