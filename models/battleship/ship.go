package battleship

import "fmt"

type Orientation uint8

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

func (o Orientation) String() string {
	switch o {
	case OrientationVertical:
		return "vertical"
	case OrientationHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// Ship is a straight run of cells starting at its bow. Vertical ships grow
// along rows, horizontal ships along columns.
type Ship struct {
	bow         Coordinates
	length      int
	orientation Orientation
	hitPoints   int
}

// NewShip panics on a non-positive length or an unknown orientation; both
// are programming errors rather than runtime conditions.
func NewShip(bow Coordinates, length int, orientation Orientation) *Ship {
	if length < 1 {
		panic(fmt.Sprintf("ship length must be positive, got %d", length))
	}
	if orientation != OrientationVertical && orientation != OrientationHorizontal {
		panic(fmt.Sprintf("invalid ship orientation: %d", orientation))
	}

	return &Ship{
		bow:         bow,
		length:      length,
		orientation: orientation,
		hitPoints:   length,
	}
}

func (sh *Ship) Bow() Coordinates         { return sh.bow }
func (sh *Ship) Length() int              { return sh.length }
func (sh *Ship) Orientation() Orientation { return sh.orientation }
func (sh *Ship) HitPoints() int           { return sh.hitPoints }

// Cells returns the ship's cells in order from the bow. It is recomputed on
// every call and does no bounds checking.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		cur := sh.bow
		if sh.orientation == OrientationVertical {
			cur.Row += i
		} else {
			cur.Col += i
		}
		cells = append(cells, cur)
	}
	return cells
}

func (sh *Ship) Occupies(c Coordinates) bool {
	for _, cell := range sh.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

// RegisterHit applies a hit at c. ok is false when c is not one of the
// ship's cells. sunk is true only for the hit that takes the last hit point.
func (sh *Ship) RegisterHit(c Coordinates) (sunk bool, ok bool) {
	if !sh.Occupies(c) {
		return false, false
	}
	if sh.hitPoints == 0 {
		return false, true
	}

	sh.hitPoints--
	return sh.hitPoints == 0, true
}

func (sh *Ship) IsSunk() bool {
	return sh.hitPoints == 0
}
