package debounce

import (
    "sync/atomic"
    "testing"
    "time"
)

func TestTrigger_RapidTriggersCollapseToOne(t *testing.T) {
    var fired atomic.Int32
    d := New(30 * time.Millisecond)
    defer d.Stop()

    for i := 0; i < 5; i++ {
        d.Trigger(func() { fired.Add(1) })
        time.Sleep(5 * time.Millisecond)
    }
    time.Sleep(100 * time.Millisecond)
    if got := fired.Load(); got != 1 {
        t.Fatalf("want 1 execution for a burst, got %d", got)
    }
}

func TestTrigger_SeparateQuietPeriodsFireSeparately(t *testing.T) {
    var fired atomic.Int32
    d := New(20 * time.Millisecond)
    defer d.Stop()

    d.Trigger(func() { fired.Add(1) })
    time.Sleep(60 * time.Millisecond)
    d.Trigger(func() { fired.Add(1) })
    time.Sleep(60 * time.Millisecond)

    if got := fired.Load(); got != 2 {
        t.Fatalf("want 2 executions, got %d", got)
    }
}

func TestStop_CancelsPending(t *testing.T) {
    var fired atomic.Int32
    d := New(20 * time.Millisecond)

    d.Trigger(func() { fired.Add(1) })
    d.Stop()
    time.Sleep(60 * time.Millisecond)

    if got := fired.Load(); got != 0 {
        t.Fatalf("stopped debouncer still fired %d times", got)
    }
}
