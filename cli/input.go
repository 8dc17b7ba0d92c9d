package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

var (
	errInputFormat  = errors.New("enter the coordinates as two numbers: row col")
	errInputNumbers = errors.New("enter numbers only")
)

// ParseCoordinates reads a 1-based "row col" pair. Range checks are left to
// the grid so an off-board answer is treated like any other bad shot.
func ParseCoordinates(line string) (mb.Coordinates, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mb.Coordinates{}, errInputFormat
	}

	values := [2]int{}
	for i, f := range fields {
		if !isDigits(f) {
			return mb.Coordinates{}, errInputNumbers
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return mb.Coordinates{}, errInputNumbers
		}
		values[i] = v
	}

	return mb.NewCoordinates(values[0]-1, values[1]-1), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// HumanPlayer asks for targets on out and reads them line by line from in,
// prompting again until a line parses.
type HumanPlayer struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

var _ mb.Player = (*HumanPlayer)(nil)

func NewHumanPlayer(name string, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *HumanPlayer) Name() string {
	return p.name
}

func (p *HumanPlayer) SelectTarget() (mb.Coordinates, error) {
	for {
		fmt.Fprint(p.out, "Your move: ")
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return mb.Coordinates{}, err
			}
			return mb.Coordinates{}, cerr.ErrInputExhausted
		}

		target, err := ParseCoordinates(p.scanner.Text())
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return target, nil
	}
}
