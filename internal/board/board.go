// Package board implements the 2048 sliding-tile engine: a fixed 4x4 grid,
// pure slide/merge functions for each direction, and a Session that owns
// score, best score, win and game-over state. The package depends on nothing
// outside the standard library so the rules stay testable without any
// terminal plumbing.
package board

// Direction represents a slide direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists all four directions, used when scanning for legal moves.
var Directions = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Size is the board dimension.
const Size = 4

// Board is a 4x4 grid of tile values. 0 means empty; any stored value is a
// power of two >= 2. Row 0 is the top edge.
type Board [Size][Size]int

// Cell addresses a single grid position.
type Cell struct {
	Row, Col int
}

// slideRow packs a row toward index 0 and merges adjacent equal pairs.
// Each tile merges at most once per move: [2,2,4,0] becomes [4,4,0,0],
// never [8,0,0,0]. Returns the packed row and the score gained, which is
// the sum of the merged (doubled) values.
func slideRow(row [Size]int) (result [Size]int, score int) {
	writePos := 0
	lastMerge := -1

	for i := range Size {
		if row[i] == 0 {
			continue
		}

		if writePos > 0 && result[writePos-1] == row[i] && lastMerge != writePos-1 {
			// Merge into the previous tile
			result[writePos-1] *= 2
			score += result[writePos-1]
			lastMerge = writePos - 1
		} else {
			// Shift tile forward
			result[writePos] = row[i]
			writePos++
		}
	}

	return result, score
}

// reverseRow reverses a row.
func reverseRow(row [Size]int) [Size]int {
	var result [Size]int
	for i := range Size {
		result[i] = row[Size-1-i]
	}
	return result
}

// Transpose returns the matrix transpose.
func Transpose(b Board) Board {
	var result Board
	for y := range Size {
		for x := range Size {
			result[y][x] = b[x][y]
		}
	}
	return result
}

// ReverseRows mirrors every row of the board.
func ReverseRows(b Board) Board {
	var result Board
	for y := range Size {
		result[y] = reverseRow(b[y])
	}
	return result
}

// SlideLeft slides all tiles left and merges.
// Returns the new board, the score gained, and whether the board changed.
func SlideLeft(b Board) (Board, int, bool) {
	var newBoard Board
	totalScore := 0

	for y := range Size {
		newRow, score := slideRow(b[y])
		newBoard[y] = newRow
		totalScore += score
	}

	return newBoard, totalScore, newBoard != b
}

// SlideRight slides all tiles right and merges. Right is the mirror of left
// on reversed rows; the mirror symmetry keeps merge order identical.
func SlideRight(b Board) (Board, int, bool) {
	var newBoard Board
	totalScore := 0

	for y := range Size {
		newRow, score := slideRow(reverseRow(b[y]))
		newBoard[y] = reverseRow(newRow)
		totalScore += score
	}

	return newBoard, totalScore, newBoard != b
}

// SlideUp slides all tiles up and merges.
func SlideUp(b Board) (Board, int, bool) {
	// Transpose, slide left, transpose back
	slid, score, changed := SlideLeft(Transpose(b))
	return Transpose(slid), score, changed
}

// SlideDown slides all tiles down and merges.
func SlideDown(b Board) (Board, int, bool) {
	// Transpose, slide right, transpose back
	slid, score, changed := SlideRight(Transpose(b))
	return Transpose(slid), score, changed
}

// Slide performs a move in the given direction.
// Returns the new board, the score gained, and whether the board changed.
func Slide(b Board, dir Direction) (Board, int, bool) {
	switch dir {
	case DirLeft:
		return SlideLeft(b)
	case DirRight:
		return SlideRight(b)
	case DirUp:
		return SlideUp(b)
	case DirDown:
		return SlideDown(b)
	default:
		return b, 0, false
	}
}

// EmptyCells returns the coordinates of all empty cells.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasEmptyCell reports whether at least one cell is empty.
func HasEmptyCell(b Board) bool {
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge reports whether any two adjacent tiles can merge.
func HasPossibleMerge(b Board) bool {
	for y := range Size {
		for x := range Size {
			val := b[y][x]
			if val == 0 {
				continue
			}
			if x < Size-1 && b[y][x+1] == val {
				return true
			}
			if y < Size-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether at least one of the four directions would change
// the board.
func CanMove(b Board) bool {
	return HasEmptyCell(b) || HasPossibleMerge(b)
}

// MaxTile returns the largest tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for y := range Size {
		for x := range Size {
			if b[y][x] > maxVal {
				maxVal = b[y][x]
			}
		}
	}
	return maxVal
}

// Reached reports whether any tile is at least target.
func Reached(b Board, target int) bool {
	return MaxTile(b) >= target
}
