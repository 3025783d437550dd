package notify

import (
	"testing"
	"time"
)

func TestCenter_PushMakesNotificationVisible(t *testing.T) {
	c := NewCenter(time.Hour, time.Hour)

	n := c.Push("Fornecedor adicionado", Success)
	if n.ID != 1 {
		t.Errorf("Expected id 1, got %d", n.ID)
	}
	if n.State != StateVisible {
		t.Errorf("Expected visible state, got %s", n.State)
	}

	active := c.Active()
	if len(active) != 1 {
		t.Fatalf("Expected 1 active notification, got %d", len(active))
	}
	if active[0].Message != "Fornecedor adicionado" {
		t.Errorf("Unexpected message: %s", active[0].Message)
	}
}

func TestCenter_TwoPhaseDismissal(t *testing.T) {
	c := NewCenter(20*time.Millisecond, 20*time.Millisecond)

	c.Push("transient", Info)

	// Still fully visible right after the push
	if got := c.Active(); len(got) != 1 || got[0].State != StateVisible {
		t.Fatalf("Expected one visible notification, got %+v", got)
	}

	// After the dismiss delay it is exiting but still listed
	time.Sleep(30 * time.Millisecond)
	got := c.Active()
	if len(got) != 1 {
		t.Fatalf("Expected notification to still be listed while exiting, got %d", len(got))
	}
	if got[0].State != StateExiting {
		t.Errorf("Expected exiting state, got %s", got[0].State)
	}

	// After the exit delay it is gone
	time.Sleep(30 * time.Millisecond)
	if got := c.Active(); len(got) != 0 {
		t.Errorf("Expected notification to be removed, got %d", len(got))
	}
}

func TestCenter_DismissCancelsPendingTransitions(t *testing.T) {
	c := NewCenter(20*time.Millisecond, 20*time.Millisecond)

	n := c.Push("cancel me", Warning)
	c.Dismiss(n.ID)

	if got := c.Active(); len(got) != 0 {
		t.Fatalf("Expected immediate removal, got %d notifications", len(got))
	}

	// The cancelled timers must not resurrect or disturb anything
	time.Sleep(50 * time.Millisecond)
	if got := c.Active(); len(got) != 0 {
		t.Errorf("Expected stack to stay empty, got %d notifications", len(got))
	}
}

func TestCenter_NotificationsStackInPushOrder(t *testing.T) {
	c := NewCenter(time.Hour, time.Hour)

	c.Push("first", Success)
	c.Push("second", Danger)
	c.Push("first", Success) // duplicates are allowed

	active := c.Active()
	if len(active) != 3 {
		t.Fatalf("Expected 3 stacked notifications, got %d", len(active))
	}
	if active[0].Message != "first" || active[1].Message != "second" || active[2].Message != "first" {
		t.Errorf("Unexpected stack order: %+v", active)
	}
	for i, n := range active {
		if n.ID != i+1 {
			t.Errorf("Expected id %d at position %d, got %d", i+1, i, n.ID)
		}
	}
}
