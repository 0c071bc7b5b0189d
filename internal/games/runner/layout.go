package runner

import (
	"time"

	"github.com/vovakirdan/hurdle/internal/config"
	"github.com/vovakirdan/hurdle/internal/core"
)

// Layout is the stage geometry in world units. Hitboxes are pure functions
// of the layout, the entity and the clock, so collision checks never depend
// on how the stage is drawn.
type Layout struct {
	StageWidth   float64
	StageHeight  float64
	GroundY      float64
	PlayerX      float64
	PlayerWidth  float64
	PlayerHeight float64
	JumpHeight   float64
}

// NewLayout builds the layout from configuration.
func NewLayout(cfg config.RunnerConfig) Layout {
	return Layout{
		StageWidth:   cfg.Stage.Width,
		StageHeight:  cfg.Stage.Height,
		GroundY:      cfg.Stage.GroundY,
		PlayerX:      cfg.Player.X,
		PlayerWidth:  cfg.Player.Width,
		PlayerHeight: cfg.Player.Height,
		JumpHeight:   cfg.Player.JumpHeight,
	}
}

// PlayerRect returns the player's raw body. A jumping player is lifted by
// JumpHeight for the whole jump.
func (l Layout) PlayerRect(jumping bool) core.Rect {
	r := core.NewRect(l.PlayerX, l.GroundY-l.PlayerHeight, l.PlayerWidth, l.PlayerHeight)
	if jumping {
		r = r.Translate(0, -l.JumpHeight)
	}
	return r
}

// Progress returns how far through its traversal the obstacle is at now,
// clamped to [0, 1].
func (l Layout) Progress(o Obstacle, now time.Duration) float64 {
	if o.Traversal <= 0 {
		return 1
	}
	return core.ClampF(float64(now-o.SpawnedAt)/float64(o.Traversal), 0, 1)
}

// ObstacleRect returns the obstacle's hitbox at now. The left edge moves
// linearly from the stage's right edge at spawn to fully off-stage on the
// left when the traversal ends.
func (l Layout) ObstacleRect(o Obstacle, now time.Duration) core.Rect {
	p := l.Progress(o, now)
	left := l.StageWidth - p*(l.StageWidth+o.Shape.Width)
	bottom := l.GroundY - o.Shape.VerticalOffset
	return core.NewRect(left, bottom-o.Shape.Height, o.Shape.Width, o.Shape.Height)
}
