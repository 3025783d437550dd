package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification banner
type Kind string

const (
	Success Kind = "success"
	Danger  Kind = "danger"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// State is the lifecycle phase of a notification. A pushed notification is
// visible, then starts exiting after the dismiss delay, then is removed
// after the exit delay.
type State string

const (
	StateVisible State = "visible"
	StateExiting State = "exiting"
)

// Notification is one transient banner
type Notification struct {
	ID        int       `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// Center owns the stack of active notifications and their scheduled
// transitions. Notifications stack without dedup or cap; each transition is
// a timer with a cancel handle.
type Center struct {
	mu           sync.Mutex
	active       []*Notification
	timers       map[int]*time.Timer
	nextID       int
	dismissAfter time.Duration
	exitAfter    time.Duration
}

// NewCenter creates a notification center. dismissAfter is how long a
// notification stays fully visible, exitAfter how long the exit phase lasts.
func NewCenter(dismissAfter, exitAfter time.Duration) *Center {
	return &Center{
		timers:       make(map[int]*time.Timer),
		nextID:       1,
		dismissAfter: dismissAfter,
		exitAfter:    exitAfter,
	}
}

// Push adds a notification and schedules its dismissal
func (c *Center) Push(message string, kind Kind) Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := &Notification{
		ID:        c.nextID,
		Message:   message,
		Kind:      kind,
		State:     StateVisible,
		CreatedAt: time.Now(),
	}
	c.nextID++
	c.active = append(c.active, n)

	id := n.ID
	c.timers[id] = time.AfterFunc(c.dismissAfter, func() {
		c.beginExit(id)
	})
	return *n
}

// beginExit moves a notification to the exiting state and schedules its
// removal.
func (c *Center) beginExit(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.active {
		if n.ID == id && n.State == StateVisible {
			n.State = StateExiting
			c.timers[id] = time.AfterFunc(c.exitAfter, func() {
				c.Dismiss(id)
			})
			return
		}
	}
}

// Dismiss cancels any pending transition and removes the notification
func (c *Center) Dismiss(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	for i, n := range c.active {
		if n.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}

// Active returns the visible and exiting notifications in push order
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]Notification, len(c.active))
	for i, n := range c.active {
		result[i] = *n
	}
	return result
}
