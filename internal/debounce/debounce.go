package debounce

import (
    "sync"
    "time"
)

// Debouncer runs a function only after its trigger has been quiet for a
// full interval. Each Trigger supersedes any pending one, so a stream of
// keystrokes costs one execution per quiet period instead of one per key.
type Debouncer struct {
    Interval time.Duration

    mu    sync.Mutex
    timer *time.Timer
}

func New(interval time.Duration) *Debouncer {
    if interval <= 0 { interval = 150 * time.Millisecond }
    return &Debouncer{Interval: interval}
}

// Trigger schedules fn, cancelling any previously pending function.
func (d *Debouncer) Trigger(fn func()) {
    d.mu.Lock()
    defer d.mu.Unlock()
    if d.timer != nil { d.timer.Stop() }
    d.timer = time.AfterFunc(d.Interval, fn)
}

// Stop cancels any pending function.
func (d *Debouncer) Stop() {
    d.mu.Lock()
    defer d.mu.Unlock()
    if d.timer != nil { d.timer.Stop(); d.timer = nil }
}
