package game

import "twenty48/internal/board"

// Snapshot captures the observable game state at a point in time. Used by
// tests to compare runs and by tooling that wants to inspect a game without
// reaching into internals.
type Snapshot struct {
	Tick     uint64
	Mode     Mode
	Board    board.Board
	Score    int
	Best     int
	MaxTile  int
	Won      bool
	GameOver bool
	Paused   bool
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	b := g.session.Board()
	return Snapshot{
		Tick:     g.tick,
		Mode:     g.mode,
		Board:    b,
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		MaxTile:  board.MaxTile(b),
		Won:      g.session.Won(),
		GameOver: g.session.Over(),
		Paused:   g.paused || g.tooSmall,
	}
}
