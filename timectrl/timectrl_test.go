package timectrl

import (
	"testing"
	"time"
)

func TestTimeControllerSetTime(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, time.Second, RealTime)

	newNow := start.Add(42 * time.Second)
	tc.SetTime(newNow)

	if got := tc.Now(); !got.Equal(newNow) {
		t.Fatalf("Now() = %v, want %v", got, newNow)
	}
}

func TestTimeControllerStartUpdatesNow(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, 5*time.Millisecond, Accelerated)

	done := tc.Start(15 * time.Millisecond)
	<-done

	expected := start.Add(15 * time.Millisecond)
	if got := tc.Now(); !got.Equal(expected) {
		t.Fatalf("Now() = %v, want %v", got, expected)
	}
}

func TestTimeControllerListenerReceivesTickSeconds(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, 16*time.Millisecond, Accelerated)

	var deltas []float64
	tc.AddListener(func(dt float64) { deltas = append(deltas, dt) })

	done := tc.Start(48 * time.Millisecond)
	<-done

	if len(deltas) != 3 {
		t.Fatalf("listener invoked %d times, want 3", len(deltas))
	}
	want := (16 * time.Millisecond).Seconds()
	for i, dt := range deltas {
		if dt != want {
			t.Fatalf("tick %d delta = %v, want %v", i, dt, want)
		}
	}
}

func TestTimeControllerStopEndsUnboundedRun(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, time.Millisecond, Accelerated)

	done := tc.Start(0)
	tc.Stop()
	tc.Stop() // idempotent

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("controller did not stop")
	}
}
