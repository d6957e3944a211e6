package timectrl

import "testing"

func TestSpeedControl_OverrideAndRestore(t *testing.T) {
	s := NewSpeedControl(3)

	s.Override()
	if got := s.Current(); got != OverrideSpeed {
		t.Fatalf("Current during override = %v, want %v", got, OverrideSpeed)
	}

	s.Restore()
	if got := s.Current(); got != 3 {
		t.Fatalf("Current after restore = %v, want 3", got)
	}
}

func TestSpeedControl_RepeatedOverrideKeepsUserSpeed(t *testing.T) {
	s := NewSpeedControl(2)

	// A second override without an intervening restore must not
	// capture the override value as the user speed.
	s.Override()
	s.Override()
	s.Restore()

	if got := s.Current(); got != 2 {
		t.Fatalf("Current after double override = %v, want 2", got)
	}
	if got := s.UserSpeed(); got != 2 {
		t.Fatalf("UserSpeed = %v, want 2", got)
	}
}

func TestSpeedControl_SetUserSpeedDuringOverride(t *testing.T) {
	s := NewSpeedControl(1)

	s.Override()
	s.SetUserSpeed(5)

	if got := s.Current(); got != OverrideSpeed {
		t.Fatalf("Current during override = %v, want %v", got, OverrideSpeed)
	}

	s.Restore()
	if got := s.Current(); got != 5 {
		t.Fatalf("Current after restore = %v, want the in-flight choice 5", got)
	}
}

func TestSpeedControl_NegativeClampedToZero(t *testing.T) {
	s := NewSpeedControl(-4)
	if got := s.Current(); got != 0 {
		t.Fatalf("Current = %v, want 0", got)
	}

	s.SetUserSpeed(-1)
	if got := s.UserSpeed(); got != 0 {
		t.Fatalf("UserSpeed = %v, want 0", got)
	}
}
