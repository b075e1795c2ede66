package game

import "twenty48/internal/board"

// AnimationPhase describes which part of a move is being animated.
type AnimationPhase int

const (
	// PhaseNone means no animation is in flight.
	PhaseNone AnimationPhase = iota
	// PhaseSlide interpolates tiles from their old to new cells.
	PhaseSlide
	// PhasePop highlights the freshly spawned tile.
	PhasePop
)

// TileAnimation tracks a single tile moving across the grid.
type TileAnimation struct {
	Value    int
	From     board.Cell
	To       board.Cell
	Merged   bool
	Progress float64 // 0.0 to 1.0
}

// startSlideAnimation begins animating the tiles a move displaced.
func (g *Game) startSlideAnimation(moves []board.TileMove) {
	if len(moves) == 0 {
		g.animating = false
		g.animationPhase = PhaseNone
		return
	}
	g.animations = g.animations[:0]
	for _, m := range moves {
		g.animations = append(g.animations, TileAnimation{
			Value:  m.Value,
			From:   m.From,
			To:     m.To,
			Merged: m.Merged,
		})
	}
	g.animating = true
	g.animationPhase = PhaseSlide
	g.animationTicks = 0
}

// updateAnimation advances the animation in flight; reports whether one is
// still running after the update.
func (g *Game) updateAnimation() bool {
	if !g.animating {
		return false
	}
	g.animationTicks++

	switch g.animationPhase {
	case PhaseSlide:
		duration := g.cfg.Animation.SlideTicks
		progress := float64(g.animationTicks) / float64(duration)
		if progress >= 1.0 {
			progress = 1.0
		}
		for i := range g.animations {
			g.animations[i].Progress = easeOutQuad(progress)
		}
		if g.animationTicks >= duration {
			if g.pendingSpawn != nil {
				g.animationPhase = PhasePop
				g.animationTicks = 0
			} else {
				g.clearAnimation()
			}
		}
	case PhasePop:
		if g.animationTicks >= g.cfg.Animation.PopTicks {
			g.clearAnimation()
		}
	default:
		g.clearAnimation()
	}

	return g.animating
}

// clearAnimation drops all animation state and syncs the render board.
func (g *Game) clearAnimation() {
	g.animating = false
	g.animationPhase = PhaseNone
	g.animationTicks = 0
	g.animations = nil
	g.pendingSpawn = nil
	if g.session != nil {
		g.prevBoard = g.session.Board()
	}
}

// easeOutQuad decelerates toward the end of the slide.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
