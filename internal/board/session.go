package board

import "math/rand"

const (
	// WinTile is the default winning tile value.
	WinTile = 2048

	// DefaultSpawn4 is the default probability that a spawned tile is a 4.
	DefaultSpawn4 = 0.10
)

// TileMove records one identity-tagged tile's travel during a move. Tiles
// that neither moved nor merged are not reported. Value is the tile's value
// before any merge.
type TileMove struct {
	ID     int
	From   Cell
	To     Cell
	Value  int
	Merged bool
}

// MergePair names the two tile handles combined by one merge. The survivor
// keeps its handle; it is always the front tile of the pair, i.e. the one
// nearer the direction's target edge.
type MergePair struct {
	Survivor int
	Consumed int
}

// Spawn describes a tile placed by InsertRandomTile.
type Spawn struct {
	ID    int
	Cell  Cell
	Value int
}

// MoveResult is the outcome of one move attempt. When Moved is false the
// session is untouched and Board echoes the unchanged grid; Moves and Merges
// are only populated on an accepted move, for callers that animate.
type MoveResult struct {
	Moved     bool
	ScoreGain int
	Board     Board
	Moves     []TileMove
	Merges    []MergePair
}

// Options tune a new session. The zero value selects the classic rules.
type Options struct {
	Spawn4 float64 // probability that a spawned tile is a 4; 0 means 0.10
	Target int     // winning tile value; 0 means 2048
}

// Session is one game's full mutable state: board, score, best score and the
// won/over flags. It is owned by a single caller; none of its methods block
// or perform I/O. Randomness comes from the injected source only, so a fixed
// seed replays the same game.
type Session struct {
	rng    *rand.Rand
	board  Board
	ids    [Size][Size]int
	nextID int

	score  int
	best   int
	won    bool
	over   bool
	target int
	spawn4 float64
}

// NewSession starts a fresh game: an empty grid with two random opening
// tiles, score zero.
func NewSession(rng *rand.Rand, opts Options) *Session {
	s := &Session{
		rng:    rng,
		target: opts.Target,
		spawn4: opts.Spawn4,
	}
	if s.target == 0 {
		s.target = WinTile
	}
	if s.spawn4 == 0 {
		s.spawn4 = DefaultSpawn4
	}
	s.Restart()
	return s
}

// Restart discards the game in progress and deals a new opening board.
// The best score is kept.
func (s *Session) Restart() {
	s.board = Board{}
	s.ids = [Size][Size]int{}
	s.nextID = 0
	s.score = 0
	s.won = false
	s.over = false

	s.InsertRandomTile()
	s.InsertRandomTile()
}

// Board returns the current grid.
func (s *Session) Board() Board { return s.board }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen by this session, including past restarts.
func (s *Session) Best() int { return s.best }

// SetBest raises the best score. Used to seed the session from a persisted
// high score; lower values are ignored.
func (s *Session) SetBest(v int) {
	if v > s.best {
		s.best = v
	}
}

// Won reports whether a tile ever reached the target. The flag is sticky:
// it stays set even if later merges remove the tile.
func (s *Session) Won() bool { return s.won }

// Over reports whether no legal move remains. Once set, Move rejects all
// input until Restart.
func (s *Session) Over() bool { return s.over }

// Target returns the winning tile value.
func (s *Session) Target() int { return s.target }

// lineCells returns each line's cells in front-to-back order for the given
// direction: the first cell of a line is the one tiles slide toward.
func lineCells(dir Direction) [][Size]Cell {
	lines := make([][Size]Cell, 0, Size)
	for i := range Size {
		var line [Size]Cell
		for j := range Size {
			switch dir {
			case DirLeft:
				line[j] = Cell{Row: i, Col: j}
			case DirRight:
				line[j] = Cell{Row: i, Col: Size - 1 - j}
			case DirUp:
				line[j] = Cell{Row: j, Col: i}
			case DirDown:
				line[j] = Cell{Row: Size - 1 - j, Col: i}
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// Move attempts to slide the board in the given direction.
//
// Whether anything moved is decided by comparing the whole grid before and
// after; a rejected move leaves the session untouched and consumes no random
// draw. Score, best score and the won flag update only on an accepted move.
// The caller is expected to follow an accepted move with InsertRandomTile.
func (s *Session) Move(dir Direction) MoveResult {
	if s.over {
		return MoveResult{Board: s.board}
	}

	var (
		newBoard Board
		newIDs   [Size][Size]int
		moves    []TileMove
		merges   []MergePair
		gain     int
	)

	for _, line := range lineCells(dir) {
		// Occupied cells in front-to-back order
		type occupied struct {
			cell  Cell
			value int
			id    int
		}
		var tiles []occupied
		for _, c := range line {
			if v := s.board[c.Row][c.Col]; v != 0 {
				tiles = append(tiles, occupied{cell: c, value: v, id: s.ids[c.Row][c.Col]})
			}
		}

		write := 0
		for idx := 0; idx < len(tiles); {
			cur := tiles[idx]
			dst := line[write]

			if idx+1 < len(tiles) && tiles[idx+1].value == cur.value {
				// Merge: the pair collapses onto the front slot. Skipping
				// past both tiles guarantees one merge per tile per move.
				next := tiles[idx+1]
				merged := cur.value * 2
				gain += merged

				newBoard[dst.Row][dst.Col] = merged
				newIDs[dst.Row][dst.Col] = cur.id
				merges = append(merges, MergePair{Survivor: cur.id, Consumed: next.id})
				moves = append(moves,
					TileMove{ID: cur.id, From: cur.cell, To: dst, Value: cur.value, Merged: true},
					TileMove{ID: next.id, From: next.cell, To: dst, Value: next.value, Merged: true},
				)
				idx += 2
			} else {
				newBoard[dst.Row][dst.Col] = cur.value
				newIDs[dst.Row][dst.Col] = cur.id
				if cur.cell != dst {
					moves = append(moves, TileMove{ID: cur.id, From: cur.cell, To: dst, Value: cur.value})
				}
				idx++
			}
			write++
		}
	}

	if newBoard == s.board {
		return MoveResult{Board: s.board}
	}

	s.board = newBoard
	s.ids = newIDs
	s.score += gain
	if s.score > s.best {
		s.best = s.score
	}
	if !s.won && Reached(s.board, s.target) {
		s.won = true
	}

	return MoveResult{
		Moved:     true,
		ScoreGain: gain,
		Board:     s.board,
		Moves:     moves,
		Merges:    merges,
	}
}

// InsertRandomTile places a 2 (or, with the configured probability, a 4) on
// a uniformly chosen empty cell. Returns false and does nothing when the
// board is full. Sets the over flag when the new tile leaves no legal move.
func (s *Session) InsertRandomTile() (Spawn, bool) {
	empty := EmptyCells(s.board)
	if len(empty) == 0 {
		return Spawn{}, false
	}

	cell := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.rng.Float64() < s.spawn4 {
		value = 4
	}

	s.nextID++
	s.board[cell.Row][cell.Col] = value
	s.ids[cell.Row][cell.Col] = s.nextID

	if !CanMove(s.board) {
		s.over = true
	}

	return Spawn{ID: s.nextID, Cell: cell, Value: value}, true
}
