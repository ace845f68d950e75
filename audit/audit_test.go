package audit

import (
	"sync"
	"testing"
	"time"
)

func TestEventEmission(t *testing.T) {
	var mu sync.Mutex
	var events []Event

	logger := New(10, WithHandler(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	}))
	defer logger.Close()

	logger.Log(Event{
		Action:    "issue_user_token",
		TokenType: "user",
		UserID:    "user123",
		Result:    "success",
	})

	// Give async processor time to handle event
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].UserID != "user123" {
		t.Errorf("expected user123, got %s", events[0].UserID)
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestMultipleHandlers(t *testing.T) {
	var mu sync.Mutex
	var count1, count2 int

	logger := New(10,
		WithHandler(func(Event) {
			mu.Lock()
			count1++
			mu.Unlock()
		}),
		WithHandler(func(Event) {
			mu.Lock()
			count2++
			mu.Unlock()
		}),
	)
	defer logger.Close()

	logger.Log(Event{Action: "config_check", Result: "failure"})

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count1 != 1 || count2 != 1 {
		t.Errorf("handler counts = %d, %d, want 1, 1", count1, count2)
	}
}

func TestCloseFlushesQueue(t *testing.T) {
	var mu sync.Mutex
	var events []Event

	logger := New(100, WithHandler(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	}))

	for i := 0; i < 10; i++ {
		logger.Log(Event{Action: "issue_call_token", Result: "success"})
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 10 {
		t.Errorf("expected 10 events after Close, got %d", len(events))
	}
}

func TestLogAfterCloseDropsEvent(t *testing.T) {
	logger := New(1)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	// Must not block or panic
	logger.Log(Event{Action: "issue_user_token", Result: "success"})
}
