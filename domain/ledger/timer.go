package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"
)

const timerTag = "session_timer"

// SessionTimer counts whole seconds of play while running
type SessionTimer struct {
	mu         sync.Mutex
	clock      quartz.Clock
	elapsed    time.Duration
	running    bool
	generation int
	pending    *quartz.Timer
	onTick     func(elapsed time.Duration)
}

// NewSessionTimer creates a paused timer at zero
func NewSessionTimer(clock quartz.Clock) *SessionTimer {
	return &SessionTimer{clock: clock}
}

// OnTick registers a callback invoked after every counted second
func (t *SessionTimer) OnTick(fn func(elapsed time.Duration)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = fn
}

// Start resumes counting. Starting a running timer does nothing.
func (t *SessionTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.generation++
	t.schedule(t.generation)
}

// Pause stops counting and clears the pending tick
func (t *SessionTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stop()
}

// Reset pauses the timer and sets it back to zero
func (t *SessionTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stop()
	t.elapsed = 0
}

// SetElapsed restores a previously recorded value
func (t *SessionTimer) SetElapsed(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.elapsed = d.Truncate(time.Second)
}

// Elapsed returns the counted time
func (t *SessionTimer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Running reports whether the timer is counting
func (t *SessionTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Format renders the elapsed time as HH:MM:SS
func (t *SessionTimer) Format() string {
	return FormatElapsed(t.Elapsed())
}

// must hold mu
func (t *SessionTimer) stop() {
	t.running = false
	t.generation++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// must hold mu
func (t *SessionTimer) schedule(gen int) {
	t.pending = t.clock.AfterFunc(time.Second, func() { t.tick(gen) }, timerTag)
}

func (t *SessionTimer) tick(gen int) {
	t.mu.Lock()
	if !t.running || gen != t.generation {
		t.mu.Unlock()
		return
	}
	t.elapsed += time.Second
	elapsed := t.elapsed
	callback := t.onTick
	t.schedule(gen)
	t.mu.Unlock()

	if callback != nil {
		callback(elapsed)
	}
}

// FormatElapsed renders a duration as HH:MM:SS; hours are not capped at 24
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// TimerRegistry keeps one session timer per game
type TimerRegistry struct {
	mu     sync.Mutex
	clock  quartz.Clock
	timers map[int64]*SessionTimer
}

// NewTimerRegistry creates an empty registry
func NewTimerRegistry(clock quartz.Clock) *TimerRegistry {
	return &TimerRegistry{
		clock:  clock,
		timers: make(map[int64]*SessionTimer),
	}
}

// Get returns the timer of a game, creating a paused one if needed
func (r *TimerRegistry) Get(gameID int64) *SessionTimer {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.timers[gameID]
	if !ok {
		t = NewSessionTimer(r.clock)
		r.timers[gameID] = t
	}
	return t
}

// Lookup returns the timer of a game if one exists
func (r *TimerRegistry) Lookup(gameID int64) (*SessionTimer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.timers[gameID]
	return t, ok
}

// Remove stops and forgets the timer of a game
func (r *TimerRegistry) Remove(gameID int64) {
	r.mu.Lock()
	t, ok := r.timers[gameID]
	delete(r.timers, gameID)
	r.mu.Unlock()
	if ok {
		t.Pause()
	}
}

// StopAll pauses every timer, used on shutdown
func (r *TimerRegistry) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.timers {
		t.Pause()
	}
}
