package board

import (
	"math/rand"
	"testing"
)

func TestSlideRow(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "two merges in one row",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merged tile does not chain to the end",
			input:    [4]int{2, 2, 4, 8},
			expected: [4]int{4, 4, 8, 0},
			score:    4,
		},
		{
			name:     "compress across gaps",
			input:    [4]int{0, 2, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "distinct values do not merge",
			input:    [4]int{2, 4, 0, 0},
			expected: [4]int{2, 4, 0, 0},
			score:    0,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile shifts",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLeft(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score, changed := SlideLeft(b)

	if result != expected {
		t.Errorf("SlideLeft: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideLeft should report the board changed")
	}
	if want := 4 + 8 + 8; score != want {
		t.Errorf("SlideLeft score = %d, want %d", score, want)
	}
}

func TestSlideRight(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _, changed := SlideRight(b)

	if result != expected {
		t.Errorf("SlideRight: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideRight should report the board changed")
	}
}

func TestSlideUp(t *testing.T) {
	b := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _, changed := SlideUp(b)

	if result != expected {
		t.Errorf("SlideUp: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideUp should report the board changed")
	}
}

func TestSlideDown(t *testing.T) {
	b := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _, changed := SlideDown(b)

	if result != expected {
		t.Errorf("SlideDown: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideDown should report the board changed")
	}
}

func TestSlideNoChange(t *testing.T) {
	b := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, score, changed := SlideLeft(b)

	if changed {
		t.Error("SlideLeft should not change already left-packed tiles")
	}
	if result != b {
		t.Errorf("SlideLeft altered an unchanged board: %v", result)
	}
	if score != 0 {
		t.Errorf("SlideLeft score = %d, want 0", score)
	}
}

// randomBoard fills a board with values drawn from {0, 2, 4, 8}.
func randomBoard(rng *rand.Rand) Board {
	values := []int{0, 0, 2, 2, 4, 8}
	var b Board
	for y := range Size {
		for x := range Size {
			b[y][x] = values[rng.Intn(len(values))]
		}
	}
	return b
}

func TestDirectionMirrorSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		b := randomBoard(rng)

		right, rScore, rChanged := SlideRight(b)
		mirrored, mScore, mChanged := SlideLeft(ReverseRows(b))
		if right != ReverseRows(mirrored) || rScore != mScore || rChanged != mChanged {
			t.Fatalf("right/left mirror mismatch on\n%v", b)
		}

		down, dScore, dChanged := SlideDown(b)
		transposed, tScore, tChanged := SlideRight(Transpose(b))
		if down != Transpose(transposed) || dScore != tScore || dChanged != tChanged {
			t.Fatalf("down/right transpose mismatch on\n%v", b)
		}
	}
}

func TestSlidePreservesTileSum(t *testing.T) {
	sum := func(b Board) int {
		total := 0
		for y := range Size {
			for x := range Size {
				total += b[y][x]
			}
		}
		return total
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		b := randomBoard(rng)
		for _, dir := range Directions {
			result, _, _ := Slide(b, dir)
			if sum(result) != sum(b) {
				t.Fatalf("Slide(%v) changed the tile sum on\n%v", dir, b)
			}
		}
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name: "full board no merges",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "full board with horizontal merge",
			board: Board{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "full board with vertical merge",
			board: Board{
				{2, 4, 8, 16},
				{32, 4, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "board with empty cell",
			board: Board{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMove(tt.board); got != tt.want {
				t.Errorf("CanMove = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMoveMatchesSlide(t *testing.T) {
	// CanMove must agree with actually attempting every direction.
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 500; i++ {
		b := randomBoard(rng)
		any := false
		for _, dir := range Directions {
			if _, _, changed := Slide(b, dir); changed {
				any = true
				break
			}
		}
		if got := CanMove(b); got != any {
			t.Fatalf("CanMove = %v but slides say %v on\n%v", got, any, b)
		}
	}
}

func TestMaxTileAndReached(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(b); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if !Reached(b, 2048) {
		t.Error("Reached(2048) should be true")
	}
	if Reached(b, 4096) {
		t.Error("Reached(4096) should be false")
	}
}

func TestEmptyCells(t *testing.T) {
	b := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(b)
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	for _, c := range cells {
		if b[c.Row][c.Col] != 0 {
			t.Errorf("EmptyCells returned occupied cell %+v", c)
		}
	}
}
