package core

import (
	"testing"
	"time"
)

func TestFrameGateFiresOncePerWindow(t *testing.T) {
	gate := NewFrameGate(12)
	fires := 0
	for i := 0; i < 36; i++ {
		if gate.Tick() {
			if i%12 != 0 {
				t.Fatalf("gate fired on frame %d", i)
			}
			fires++
		}
	}
	if fires != 3 {
		t.Fatalf("gate fired %d times over 36 frames, want 3", fires)
	}
}

func TestFrameGateFiresOnFirstFrame(t *testing.T) {
	gate := NewFrameGate(5)
	if !gate.Tick() {
		t.Fatal("gate must fire on the very first frame")
	}
}

func TestFrameGateClampsRatio(t *testing.T) {
	gate := NewFrameGate(0)
	for i := 0; i < 4; i++ {
		if !gate.Tick() {
			t.Fatalf("ratio <= 0 must fire every frame, missed frame %d", i)
		}
	}
}

func TestFramePacerDelay(t *testing.T) {
	p := NewFramePacer(100) // 10ms budget

	if got := p.Delay(4 * time.Millisecond); got != 6*time.Millisecond {
		t.Fatalf("Delay(4ms) = %v, want 6ms", got)
	}
	if got := p.Delay(10 * time.Millisecond); got != 0 {
		t.Fatalf("Delay(10ms) = %v, want 0", got)
	}
	// An overrun frame gets no sleep and no catch-up debt.
	if got := p.Delay(25 * time.Millisecond); got != 0 {
		t.Fatalf("Delay(25ms) = %v, want 0", got)
	}
}

func TestFramePacerWaitSleepsRemainder(t *testing.T) {
	p := NewFramePacer(50) // 20ms budget
	var slept time.Duration
	p.sleep = func(d time.Duration) { slept = d }

	p.Wait(time.Now())
	if slept <= 0 || slept > 20*time.Millisecond {
		t.Fatalf("slept %v, want within (0, 20ms]", slept)
	}

	slept = 0
	p.Wait(time.Now().Add(-time.Second))
	if slept != 0 {
		t.Fatalf("overrun frame slept %v, want no sleep", slept)
	}
}
