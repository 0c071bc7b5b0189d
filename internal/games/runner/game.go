// Package runner implements an endless runner: the player jumps over
// obstacles that cross the stage at increasing speed and scores one point
// per obstacle passed.
//
// Everything runs on a virtual clock (internal/clock) advanced once per
// Step, so a session is deterministic for a given seed and input sequence.
package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hurdle/internal/audio"
	"github.com/vovakirdan/hurdle/internal/clock"
	"github.com/vovakirdan/hurdle/internal/config"
	"github.com/vovakirdan/hurdle/internal/core"
	"github.com/vovakirdan/hurdle/internal/registry"
)

// world is the state shared by the game's components.
type world struct {
	sched    *clock.Scheduler
	state    State
	live     obstacleSet
	layout   Layout
	observer Observer
}

// Game implements the runner's state machine and the registry.Game contract.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	tick    time.Duration // virtual time per Step

	w         *world
	generator *Generator
	ramp      *Ramp
	collision *Collision
	jumper    *Jumper

	sound  audio.Player
	music  audio.Volume
	effect audio.Volume

	// Injected settings; zero values fall back to package defaults.
	fixedCfg *config.RunnerConfig
	observer Observer
	player   audio.Player
	logger   *log.Logger
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading configuration in Reset.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) { g.fixedCfg = &cfg }
}

// WithObserver registers a presentation observer.
func WithObserver(o Observer) Option {
	return func(g *Game) { g.observer = o }
}

// WithAudio sets the audio player.
func WithAudio(p audio.Player) Option {
	return func(g *Game) { g.player = p }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Package-level defaults set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	defaultAudio     audio.Player = audio.Nop{}
	defaultLogger                 = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetAudio sets the audio player used by games created afterwards.
func SetAudio(p audio.Player) {
	if p == nil {
		p = audio.Nop{}
	}
	defaultAudio = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	defaultLogger = l
}

// New creates a new runner game instance. Call Reset before Step.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.observer == nil {
		g.observer = NopObserver{}
	}
	if g.player == nil {
		g.player = defaultAudio
	}
	if g.logger == nil {
		g.logger = defaultLogger
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hurdle"
}

// Reset loads configuration, rebuilds the clock and components, and puts
// the game in the idle phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.w != nil {
		// Silence a session that is still playing.
		g.sound.Stop(audio.ClipBackground)
		g.sound.Stop(audio.ClipGameOver)
	}

	g.runtime = runtime
	g.cfg = g.loadConfig()

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tick = time.Second / time.Duration(tickRate)

	g.sound = g.player
	if !g.cfg.Audio.Enabled {
		g.sound = audio.Nop{}
	}
	// Validated config keeps volumes in range.
	g.music = audio.MustVolume(g.cfg.Audio.MusicVolume)
	g.effect = audio.MustVolume(g.cfg.Audio.EffectsVolume)

	g.w = &world{
		sched:    clock.New(),
		layout:   NewLayout(g.cfg),
		observer: g.observer,
	}
	g.generator = newGenerator(g.w, runtime.Seed, NewCatalog(g.cfg.Obstacles.Categories),
		g.cfg.Timing.SpawnMin(), g.cfg.Timing.SpawnMax())
	g.ramp = newRamp(g.w, g.cfg.Difficulty)
	g.collision = newCollision(g.w, g.cfg.Hitbox.GraceInset, g.over)
	g.jumper = newJumper(g.w, g.cfg.Timing.Jump(), g.sound, g.effect)

	g.w.state = State{
		Phase: PhaseIdle,
		Speed: g.ramp.Initial(),
	}
}

// loadConfig returns the injected config, or loads one the way the CLI
// configured the package.
func (g *Game) loadConfig() config.RunnerConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		g.logger.Warn("falling back to default config", "error", err)
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Start moves Idle to Running. It does nothing while a session runs.
// From GameOver it behaves like Restart.
func (g *Game) Start() {
	g.begin()
}

// Restart moves GameOver to Running, clearing the game-over banner and
// cutting the game-over cue. It does nothing while a session runs.
func (g *Game) Restart() {
	g.begin()
}

// begin resets the session and starts every chain exactly once.
func (g *Game) begin() {
	st := &g.w.state
	if st.Running {
		return
	}

	if st.GameOver {
		g.sound.Stop(audio.ClipGameOver)
		st.GameOver = false
		g.observer.GameOverChanged(false)
	}

	// Stale obstacles and a pending landing from an earlier session.
	g.generator.Stop()
	g.jumper.Cancel()

	st.Score = 0
	g.observer.ScoreChanged(0)
	st.Speed = g.ramp.Initial()
	st.Running = true
	st.Phase = PhaseRunning

	g.generator.Start()
	g.collision.Start()
	g.ramp.Start()
	g.sound.PlayLooping(audio.ClipBackground, g.music)

	g.logger.Debug("session started", "speed", st.Speed, "ramp", g.ramp.Active())
}

// over is the collision transition Running -> GameOver.
func (g *Game) over() {
	st := &g.w.state
	if !st.Running {
		return
	}

	st.Running = false
	st.Phase = PhaseGameOver

	g.ramp.Stop()
	g.collision.Stop()
	g.generator.Stop()
	g.jumper.Cancel()

	g.sound.Stop(audio.ClipBackground)
	g.sound.PlayOnce(audio.ClipGameOver, g.effect)

	st.GameOver = true
	g.observer.GameOverChanged(true)

	g.logger.Info("game over",
		"score", st.Score,
		"speed", st.Speed,
		"spawned", g.generator.Spawned(),
		"elapsed", g.w.sched.Now(),
	)
}

// Jump makes the player jump. It is a no-op unless running and grounded.
func (g *Game) Jump() {
	g.jumper.Jump()
}

// Step advances the game by one tick: input first, then the clock, then
// one animation frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionRestart) {
		g.Restart()
	}
	if in.Has(core.ActionJump) {
		g.Jump()
	}

	g.w.sched.Advance(g.tick)
	g.w.sched.Frame()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.w.state.Score,
		Running:  g.w.state.Running,
		GameOver: g.w.state.GameOver,
	}
}

// Snapshot returns a copy of the full session state.
func (g *Game) Snapshot() State {
	return g.w.state
}

// Obstacles returns copies of the live obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle {
	live := g.w.live.snapshot()
	out := make([]Obstacle, len(live))
	for i, o := range live {
		out[i] = *o
	}
	return out
}

// Layout returns the stage geometry.
func (g *Game) Layout() Layout {
	return g.w.layout
}

// Now returns the game clock's current time.
func (g *Game) Now() time.Duration {
	return g.w.sched.Now()
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
