package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/hurdle/internal/clock"
)

// Obstacle is a live obstacle crossing the stage.
type Obstacle struct {
	ID        uint64
	Category  Category
	Shape     CategoryShape
	SpawnedAt time.Duration // clock time of spawn
	Traversal time.Duration // crossing time, frozen at spawn
	Scored    bool

	removal *clock.Task
}

// obstacleSet is the live obstacle set in spawn order.
type obstacleSet struct {
	items []*Obstacle
}

func (s *obstacleSet) add(o *Obstacle) {
	s.items = append(s.items, o)
}

// remove drops the obstacle with the given ID and reports whether it was live.
func (s *obstacleSet) remove(id uint64) bool {
	for i, o := range s.items {
		if o.ID == id {
			copy(s.items[i:], s.items[i+1:])
			s.items[len(s.items)-1] = nil
			s.items = s.items[:len(s.items)-1]
			return true
		}
	}
	return false
}

// snapshot returns the live obstacles at this moment. Removing from the set
// while ranging over a snapshot is safe.
func (s *obstacleSet) snapshot() []*Obstacle {
	out := make([]*Obstacle, len(s.items))
	copy(out, s.items)
	return out
}

func (s *obstacleSet) len() int {
	return len(s.items)
}

// Generator spawns obstacles on a randomized self-rescheduling chain.
type Generator struct {
	w        *world
	rng      *rand.Rand
	catalog  Catalog
	spawnMin time.Duration
	spawnMax time.Duration
	nextID   uint64
	chain    *clock.Task
	spawned  int // obstacles spawned this session
}

// newGenerator creates a generator spawning from catalog with gaps drawn
// uniformly from [spawnMin, spawnMax).
func newGenerator(w *world, seed int64, catalog Catalog, spawnMin, spawnMax time.Duration) *Generator {
	return &Generator{
		w:        w,
		rng:      rand.New(rand.NewSource(seed)),
		catalog:  catalog,
		spawnMin: spawnMin,
		spawnMax: spawnMax,
	}
}

// Start spawns the first obstacle and begins the spawn chain.
func (g *Generator) Start() {
	g.chain.Cancel()
	g.spawned = 0
	g.spawn()
	g.scheduleNextSpawn()
}

// Stop ends the spawn chain and removes every live obstacle.
func (g *Generator) Stop() {
	g.chain.Cancel()
	g.chain = nil
	for _, o := range g.w.live.snapshot() {
		g.remove(o)
	}
}

// spawn adds one obstacle of a random category. It does nothing unless the
// game is running.
func (g *Generator) spawn() *Obstacle {
	if !g.w.state.Running {
		return nil
	}

	cat := Category(g.rng.Intn(len(g.catalog)))
	g.nextID++
	o := &Obstacle{
		ID:        g.nextID,
		Category:  cat,
		Shape:     g.catalog.Shape(cat),
		SpawnedAt: g.w.sched.Now(),
		Traversal: g.w.state.Speed,
	}
	g.w.live.add(o)
	g.spawned++
	o.removal = g.w.sched.AfterFunc(o.Traversal, func() {
		g.remove(o)
	})

	g.w.observer.ObstacleSpawned(*o)
	return o
}

// scheduleNextSpawn queues the next link of the chain. Each link checks
// Running on entry, so a stale link left over after game over is a no-op.
func (g *Generator) scheduleNextSpawn() {
	if !g.w.state.Running {
		return
	}
	g.chain = g.w.sched.AfterFunc(g.nextDelay(), func() {
		if !g.w.state.Running {
			return
		}
		g.spawn()
		g.scheduleNextSpawn()
	})
}

// nextDelay draws a spawn gap from [spawnMin, spawnMax).
func (g *Generator) nextDelay() time.Duration {
	span := int64(g.spawnMax - g.spawnMin)
	if span <= 0 {
		return g.spawnMin
	}
	return g.spawnMin + time.Duration(g.rng.Int63n(span))
}

// remove takes the obstacle off the stage and cancels its removal timer.
func (g *Generator) remove(o *Obstacle) {
	o.removal.Cancel()
	if g.w.live.remove(o.ID) {
		g.w.observer.ObstacleRemoved(o.ID)
	}
}

// Spawned returns how many obstacles this session has spawned.
func (g *Generator) Spawned() int {
	return g.spawned
}
