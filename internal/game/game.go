// Package game drives a twenty48 session: it maps platform actions onto the
// board engine, owns the slide/pop animation state, and renders the board,
// HUD and overlays into a screen buffer.
package game

import (
	"math/rand"

	"twenty48/internal/board"
	"twenty48/internal/config"
	"twenty48/internal/core"
	"twenty48/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic shows the win banner when a tile reaches the target.
	ModeClassic Mode = "classic"
	// ModeEndless never interrupts: highest tile is the only goal.
	ModeEndless Mode = "endless"
)

// winBannerDuration is how many ticks the win banner stays on screen
// before fading on its own. Enter dismisses it early.
const winBannerDuration = 90

// Game implements the twenty48 puzzle for the platform layer.
type Game struct {
	mode Mode
	cfg  config.GameConfig
	rng  *rand.Rand
	tick uint64

	session   *board.Session
	prevBoard board.Board // board before the move in flight, for animation
	bestSeed  int         // best score restored from storage

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused        bool
	tooSmall      bool
	moveProcessed bool // at most one move per tick
	winShown      bool // win banner already fired (classic only)
	winBanner     int  // ticks the win banner stays on screen

	// Animation state
	animating      bool
	animationPhase AnimationPhase
	animationTicks int
	animations     []TileAnimation
	pendingSpawn   *board.Spawn
}

// Package-level knobs the CLI sets before instantiating a game.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets a custom YAML config path ("" means the default search
// order).
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects the preset applied on top of the loaded
// config. Unknown names fall back to normal.
func SetDifficultyPreset(name string) {
	preset, _ := config.ParsePreset(name)
	difficultyPreset = preset
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "endless"
	}
	return "classic"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// SeedBest feeds a persisted high score into the session's best-score
// field. Safe to call before or after Reset.
func (g *Game) SeedBest(score int) {
	if score > g.bestSeed {
		g.bestSeed = score
	}
	if g.session != nil {
		g.session.SetBest(g.bestSeed)
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.Load(configPath)
	if err != nil {
		gameCfg = config.Default()
	}
	config.ApplyPreset(&gameCfg, difficultyPreset)
	g.cfg = gameCfg

	prevBest := g.bestSeed
	if g.session != nil && g.session.Best() > prevBest {
		prevBest = g.session.Best()
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moveProcessed = false
	g.winShown = false
	g.winBanner = 0
	g.clearAnimation()

	g.session = board.NewSession(g.rng, board.Options{
		Spawn4: g.cfg.Rules.SpawnFour,
		Target: g.cfg.Rules.Target,
	})
	g.session.SetBest(prevBest)
	g.prevBoard = g.session.Board()

	g.checkScreenSize()
}

// Resize tells the game its drawing area changed. A game paused by a
// too-small terminal resumes once the terminal grows back.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (29 wide, 9 tall) + HUD (3 lines)
	minW := boardWidth + 2
	minH := boardHeight + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart works at any point, including mid-game.
	if in.Has(core.ActionRestart) {
		g.session.Restart()
		g.prevBoard = g.session.Board()
		g.winShown = false
		g.winBanner = 0
		g.clearAnimation()
		return core.StepResult{State: g.State()}
	}

	// The win banner is informational: it fades on its own (or on Enter)
	// and never blocks input.
	if g.winBanner > 0 {
		g.winBanner--
		if in.Has(core.ActionConfirm) {
			g.winBanner = 0
		}
	}

	// A move in flight finishes its animation before new input counts;
	// directions pressed meanwhile are dropped.
	if g.updateAnimation() {
		return core.StepResult{State: g.State()}
	}

	if g.session.Over() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if ok && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// directionFor extracts a slide direction from the input frame.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.DirUp, true
	case in.Has(core.ActionDown):
		return board.DirDown, true
	case in.Has(core.ActionLeft):
		return board.DirLeft, true
	case in.Has(core.ActionRight):
		return board.DirRight, true
	default:
		return 0, false
	}
}

// processMove handles an accepted direction.
func (g *Game) processMove(dir board.Direction) {
	before := g.session.Board()
	result := g.session.Move(dir)
	if !result.Moved {
		return
	}

	spawn, ok := g.session.InsertRandomTile()

	if g.cfg.Animation.Enabled {
		g.prevBoard = before
		g.startSlideAnimation(result.Moves)
		if g.animating && ok {
			g.pendingSpawn = &spawn
		}
	} else {
		g.prevBoard = g.session.Board()
	}

	if g.mode == ModeClassic && g.session.Won() && !g.winShown {
		g.winShown = true
		g.winBanner = winBannerDuration
	}
}

// winBannerVisible reports whether the classic win overlay is up.
func (g *Game) winBannerVisible() bool {
	return g.winBanner > 0
}

// MaxTile returns the highest tile currently on the board.
func (g *Game) MaxTile() int {
	return board.MaxTile(g.session.Board())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		Won:      g.session.Won(),
		GameOver: g.session.Over(),
		Paused:   g.paused || g.tooSmall,
	}
}
