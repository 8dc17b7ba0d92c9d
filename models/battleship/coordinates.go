package battleship

import "fmt"

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// neighborOffsets covers the cell itself and its 8 surrounding cells.
var neighborOffsets = [9]Coordinates{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (c Coordinates) add(o Coordinates) Coordinates {
	return Coordinates{Row: c.Row + o.Row, Col: c.Col + o.Col}
}
