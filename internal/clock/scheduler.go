// Package clock provides the single-threaded event loop that drives the game.
//
// A Scheduler keeps virtual time. Callbacks registered with AfterFunc, Every
// and RequestFrame only ever run inside Advance or Frame, on the caller's
// goroutine, so the state they touch needs no locking. The game advances the
// scheduler by one fixed tick (one second over the tick rate) per Step, then
// runs one frame; tests advance it by exact amounts.
package clock

import (
	"container/heap"
	"time"
)

// Task is a handle to a scheduled callback.
type Task struct {
	fn       func()
	at       time.Duration // due time for timers
	period   time.Duration // > 0 for periodic tasks
	seq      uint64        // insertion order, breaks ties between equal due times
	index    int           // heap index, -1 when not queued
	canceled bool
}

// Cancel stops the task from running again. It is safe to call more than
// once and from inside the task's own callback.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.canceled = true
}

// Active reports whether the task may still run.
func (t *Task) Active() bool {
	return t != nil && !t.canceled
}

// Scheduler is a virtual-time event loop.
// It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers taskQueue
	frames []*Task
}

// New creates a scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// AfterFunc runs fn once, d after the current virtual time.
// Negative delays are treated as zero.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	t := &Task{fn: fn, at: s.now + d}
	s.push(t)
	return t
}

// Every runs fn every period until the returned task is canceled.
// The first run happens one period from now.
func (s *Scheduler) Every(period time.Duration, fn func()) *Task {
	if period <= 0 {
		panic("clock: non-positive period")
	}
	t := &Task{fn: fn, at: s.now + period, period: period}
	s.push(t)
	return t
}

// RequestFrame runs fn on the next call to Frame.
// Requests made while a frame is running are deferred to the following frame.
func (s *Scheduler) RequestFrame(fn func()) *Task {
	s.seq++
	t := &Task{fn: fn, seq: s.seq, index: -1}
	s.frames = append(s.frames, t)
	return t
}

// Advance moves virtual time forward by d, running every timer that falls
// due on the way in due-time order. Timers scheduled by a callback run in the
// same Advance call if they fall due before its end.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	end := s.now + d
	for s.timers.Len() > 0 {
		next := s.timers[0]
		if next.at > end {
			break
		}
		heap.Pop(&s.timers)
		if next.canceled {
			continue
		}
		s.now = next.at
		next.fn()
		if next.period > 0 && !next.canceled {
			next.at += next.period
			s.push(next)
		}
	}
	s.now = end
}

// Frame runs the callbacks requested since the previous frame.
func (s *Scheduler) Frame() {
	pending := s.frames
	s.frames = nil
	for _, t := range pending {
		if t.canceled {
			continue
		}
		// A frame callback is one-shot.
		t.canceled = true
		t.fn()
	}
}

// Pending returns the number of live timers and frame requests.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.canceled {
			n++
		}
	}
	for _, t := range s.frames {
		if !t.canceled {
			n++
		}
	}
	return n
}

func (s *Scheduler) push(t *Task) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.timers, t)
}

// taskQueue orders timers by due time, then by insertion order.
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
