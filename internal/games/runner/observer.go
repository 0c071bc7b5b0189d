package runner

// Observer receives presentation events from the game.
// Callbacks run synchronously inside Step and must not call back into the game.
type Observer interface {
	ObstacleSpawned(o Obstacle)
	ObstacleRemoved(id uint64)
	JumpChanged(jumping bool)
	ScoreChanged(score int)
	GameOverChanged(over bool)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) ObstacleSpawned(Obstacle) {}
func (NopObserver) ObstacleRemoved(uint64)   {}
func (NopObserver) JumpChanged(bool)         {}
func (NopObserver) ScoreChanged(int)         {}
func (NopObserver) GameOverChanged(bool)     {}
