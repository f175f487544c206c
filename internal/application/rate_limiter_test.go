package application

import (
	"testing"
	"time"
)

func TestRateLimiter_Window(t *testing.T) {
	clock := newFakeClock()
	rl := NewRateLimiter(10*time.Minute, 2)
	defer rl.Stop()
	rl.now = clock.Now

	for i := 0; i < 2; i++ {
		if ok, _ := rl.Allow("203.0.113.7"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	clock.Advance(4 * time.Minute)
	ok, retry := rl.Allow("203.0.113.7")
	if ok {
		t.Fatal("third request should be limited")
	}
	if retry != 6*time.Minute {
		t.Fatalf("unexpected retry-after %v", retry)
	}

	if ok, _ := rl.Allow("198.51.100.1"); !ok {
		t.Fatal("other clients are tracked separately")
	}

	clock.Advance(6 * time.Minute)
	if ok, _ := rl.Allow("203.0.113.7"); !ok {
		t.Fatal("window should have reset")
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	clock := newFakeClock()
	rl := NewRateLimiter(time.Minute, 1)
	defer rl.Stop()
	rl.now = clock.Now

	rl.Allow("a")
	rl.Allow("")
	clock.Advance(time.Minute)
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if len(rl.limits) != 0 {
		t.Fatalf("expected expired entries to be removed, %d left", len(rl.limits))
	}
}
