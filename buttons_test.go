package main

import (
	"testing"
	"time"
)

func TestDebouncerSuppressesRepeats(t *testing.T) {
	var d debouncer
	t0 := time.Now()
	if !d.accept(t0) {
		t.Fatal("first edge rejected")
	}
	if d.accept(t0.Add(100 * time.Millisecond)) {
		t.Error("edge inside the debounce window accepted")
	}
	if d.accept(t0.Add(199 * time.Millisecond)) {
		t.Error("edge just inside the window accepted")
	}
	if !d.accept(t0.Add(250 * time.Millisecond)) {
		t.Error("edge past the window rejected")
	}
}

func TestDebouncerWindowRestartsOnAccept(t *testing.T) {
	var d debouncer
	t0 := time.Now()
	d.accept(t0)
	d.accept(t0.Add(100 * time.Millisecond)) // rejected, must not move the window
	if !d.accept(t0.Add(210 * time.Millisecond)) {
		t.Error("window moved on a rejected edge")
	}
}

func TestButtonEventString(t *testing.T) {
	tests := []struct {
		ev   buttonEvent
		want string
	}{
		{evNextMode, "next-mode"},
		{evCycleTimezone, "cycle-timezone"},
		{evForceSync, "force-sync"},
		{buttonEvent(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}
