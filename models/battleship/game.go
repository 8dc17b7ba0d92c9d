package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

type MoveResult struct {
	Player   Player
	Target   Coordinates
	Outcome  ShotOutcome
	Rejected int
	Finished bool
}

// Game alternates two players, each firing at the other's grid. The player
// at index 0 moves first. A hit or a sink keeps the turn with the shooter.
type Game struct {
	Uuid    string
	players [2]Player
	grids   [2]*Grid
	turn    int
	shots   [2]int
	hits    [2]int

	// OnRejected is called for every shot the grid refused, before the
	// player is asked for another target.
	OnRejected func(p Player, target Coordinates, err error)
}

func NewGame(first, second Player, firstGrid, secondGrid *Grid) *Game {
	return &Game{
		Uuid:    uuid.NewString()[:6],
		players: [2]Player{first, second},
		grids:   [2]*Grid{firstGrid, secondGrid},
	}
}

func (g *Game) Players() [2]Player { return g.players }

// Grids returns the grids in player order; Grids()[i] belongs to Players()[i].
func (g *Game) Grids() [2]*Grid { return g.grids }

func (g *Game) Turn() int { return g.turn }

func (g *Game) CurrentPlayerIdx() int { return g.turn % 2 }

func (g *Game) CurrentPlayer() Player { return g.players[g.CurrentPlayerIdx()] }

// Shots returns how many accepted shots player idx has fired.
func (g *Game) Shots(idx int) int { return g.shots[idx] }

// Hits returns how many of player idx's shots hit a ship.
func (g *Game) Hits(idx int) int { return g.hits[idx] }

// Winner returns the index of the player who sank the whole opposing fleet.
// The first player is checked first.
func (g *Game) Winner() (int, bool) {
	if g.grids[1].IsFleetDestroyed() {
		return 0, true
	}
	if g.grids[0].IsFleetDestroyed() {
		return 1, true
	}
	return -1, false
}

func (g *Game) IsFinished() bool {
	_, ok := g.Winner()
	return ok
}

// Move lets the current player fire until the grid accepts a shot. Retryable
// shot errors are reported through OnRejected; any other error, including
// one from SelectTarget, aborts the move and leaves the turn unchanged.
func (g *Game) Move() (MoveResult, error) {
	if g.IsFinished() {
		return MoveResult{}, cerr.ErrGameFinished
	}

	idx := g.CurrentPlayerIdx()
	player := g.players[idx]
	enemyGrid := g.grids[1-idx]
	result := MoveResult{Player: player}

	for {
		target, err := player.SelectTarget()
		if err != nil {
			return result, err
		}

		outcome, err := enemyGrid.Shot(target)
		if err != nil {
			if !cerr.IsRetryableShotErr(err) {
				return result, err
			}
			result.Rejected++
			if g.OnRejected != nil {
				g.OnRejected(player, target, err)
			}
			continue
		}

		g.shots[idx]++
		if outcome != ShotMiss {
			g.hits[idx]++
		}
		if !outcome.GrantsExtraTurn() {
			g.turn++
		}

		result.Target = target
		result.Outcome = outcome
		result.Finished = g.IsFinished()
		return result, nil
	}
}

type PlayerSummary struct {
	Name        string `json:"name"`
	Shots       int    `json:"shots"`
	Hits        int    `json:"hits"`
	SunkenShips int    `json:"sunken_ships"`
}

// GameSummary describes a game for reporting. Winner is empty while the
// game is still running.
type GameSummary struct {
	GameUuid string           `json:"game_uuid"`
	Winner   string           `json:"winner"`
	Turns    int              `json:"turns"`
	Players  [2]PlayerSummary `json:"players"`
}

func (g *Game) Summary() GameSummary {
	summary := GameSummary{
		GameUuid: g.Uuid,
		Turns:    g.turn,
	}
	if winner, ok := g.Winner(); ok {
		summary.Winner = g.players[winner].Name()
	}

	for i, p := range g.players {
		summary.Players[i] = PlayerSummary{
			Name:  p.Name(),
			Shots: g.shots[i],
			Hits:  g.hits[i],
			// ships this player sank on the opposing grid
			SunkenShips: g.grids[1-i].SunkenShips(),
		}
	}
	return summary
}
