package middleware

import (
	"runtime"
	"testing"
	"time"
)

func TestRateLimiterBurst(t *testing.T) {
	l := NewAssistantRateLimiter(30, 3)
	defer l.Close()

	for i := 0; i < 3; i++ {
		if !l.allow("u1") {
			t.Fatalf("Expected request %d within burst to be allowed", i+1)
		}
	}
	if l.allow("u1") {
		t.Error("Expected request beyond burst to be denied")
	}
}

func TestRateLimiterPerUser(t *testing.T) {
	l := NewAssistantRateLimiter(30, 1)
	defer l.Close()

	if !l.allow("u1") {
		t.Fatal("Expected first request from u1 to be allowed")
	}
	if l.allow("u1") {
		t.Error("Expected second request from u1 to be denied")
	}
	// u2 has its own bucket
	if !l.allow("u2") {
		t.Error("Expected first request from u2 to be allowed")
	}
}

func TestRateLimiterCloseStopsPrune(t *testing.T) {
	before := runtime.NumGoroutine()

	l := NewAssistantRateLimiter(30, 1)
	l.Close()

	// The prune goroutine should exit shortly after Close
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= before {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("Expected goroutine count to return to %d after Close, got %d", before, runtime.NumGoroutine())
}
