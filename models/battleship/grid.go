package battleship

import (
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

const (
	PositionStateEmpty uint8 = iota
	PositionStateShip
	PositionStateHit
	PositionStateMiss
)

const (
	GridStateEmpty uint8 = iota
	GridStatePlaced
	GridStatePlaying
	GridStateFinished
)

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	default:
		return "miss"
	}
}

// GrantsExtraTurn reports whether the shooter moves again after this outcome.
func (o ShotOutcome) GrantsExtraTurn() bool {
	return o == ShotHit || o == ShotSunk
}

// Grid is one side's board. The occupied set holds ship cells and their
// contours while placing, and targeted cells (plus revealed contours of
// sunken ships) once the grid is in play.
type Grid struct {
	size        int
	cells       [][]uint8
	ships       []*Ship
	occupied    map[Coordinates]struct{}
	sunkenShips int
	playing     bool
}

// Creates a new empty grid of size x size.
// All positions are PositionStateEmpty.
func NewGrid(size int) *Grid {
	if size < 1 {
		panic("grid size must be positive")
	}

	cells := make([][]uint8, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]uint8, size)
	}

	return &Grid{
		size:     size,
		cells:    cells,
		ships:    make([]*Ship, 0, len(StandardFleet)),
		occupied: make(map[Coordinates]struct{}),
	}
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) SunkenShips() int { return g.sunkenShips }

func (g *Grid) Ships() []*Ship {
	ships := make([]*Ship, len(g.ships))
	copy(ships, g.ships)
	return ships
}

func (g *Grid) InBounds(c Coordinates) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Cells returns a copy of the position states, rows first.
func (g *Grid) Cells() [][]uint8 {
	out := make([][]uint8, g.size)
	for i := range g.cells {
		out[i] = make([]uint8, g.size)
		copy(out[i], g.cells[i])
	}
	return out
}

func (g *Grid) PositionState(c Coordinates) uint8 {
	return g.cells[c.Row][c.Col]
}

// Occupied returns a copy of the occupied set.
func (g *Grid) Occupied() map[Coordinates]struct{} {
	out := make(map[Coordinates]struct{}, len(g.occupied))
	for c := range g.occupied {
		out[c] = struct{}{}
	}
	return out
}

func (g *Grid) isOccupied(c Coordinates) bool {
	_, prs := g.occupied[c]
	return prs
}

// PlaceShip commits every cell of sh and its contour, or nothing at all.
func (g *Grid) PlaceShip(sh *Ship) error {
	if g.playing {
		return cerr.ErrGridInPlay()
	}

	cells := sh.Cells()
	for _, c := range cells {
		if !g.InBounds(c) {
			return cerr.ErrShipOutOfGridBound(c.Row, c.Col)
		}
		if g.isOccupied(c) {
			return cerr.ErrShipPositionTaken(c.Row, c.Col)
		}
	}

	for _, c := range cells {
		g.cells[c.Row][c.Col] = PositionStateShip
		g.occupied[c] = struct{}{}
	}
	g.ships = append(g.ships, sh)
	g.contour(sh, false)

	return nil
}

// contour adds the in-bound neighbors of sh that are not occupied yet to the
// occupied set. With reveal set they are also marked as misses.
func (g *Grid) contour(sh *Ship, reveal bool) {
	for _, c := range sh.Cells() {
		for _, offset := range neighborOffsets {
			cur := c.add(offset)
			if !g.InBounds(cur) || g.isOccupied(cur) {
				continue
			}
			if reveal {
				g.cells[cur.Row][cur.Col] = PositionStateMiss
			}
			g.occupied[cur] = struct{}{}
		}
	}
}

// ResetForPlay forgets the placement bookkeeping so the occupied set only
// tracks targeted positions from now on. Layout is untouched.
func (g *Grid) ResetForPlay() {
	g.occupied = make(map[Coordinates]struct{})
	g.playing = true
}

func (g *Grid) Shot(c Coordinates) (ShotOutcome, error) {
	if !g.InBounds(c) {
		return ShotMiss, cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}
	if g.isOccupied(c) {
		return ShotMiss, cerr.ErrAttackPositionAlreadyFilled(c.Row, c.Col)
	}

	g.occupied[c] = struct{}{}

	for _, sh := range g.ships {
		sunk, ok := sh.RegisterHit(c)
		if !ok {
			continue
		}

		g.cells[c.Row][c.Col] = PositionStateHit
		if sunk {
			g.sunkenShips++
			g.contour(sh, true)
			return ShotSunk, nil
		}
		return ShotHit, nil
	}

	g.cells[c.Row][c.Col] = PositionStateMiss
	return ShotMiss, nil
}

func (g *Grid) IsFleetDestroyed() bool {
	return g.sunkenShips == len(g.ships)
}

func (g *Grid) State() uint8 {
	switch {
	case g.playing && g.IsFleetDestroyed():
		return GridStateFinished
	case g.playing:
		return GridStatePlaying
	case len(g.ships) > 0:
		return GridStatePlaced
	default:
		return GridStateEmpty
	}
}
