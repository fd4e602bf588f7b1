package notify

import (
	"sync"
	"time"

	"github.com/s21platform/chat-gateway/internal/model"
)

const (
	maxVisibleAlerts = 3

	normalAlertTTL  = 4 * time.Second
	mentionAlertTTL = 8 * time.Second
)

// Queue keeps the bounded set of currently visible transient alerts.
// Content-identical alerts are suppressed while the original is still
// visible; when full, the oldest alert is dismissed first. Push runs on the
// feed dispatch goroutine while Visible is read from request handlers, so
// both take the mutex.
type Queue struct {
	now func() time.Time

	mu      sync.Mutex
	visible []model.Alert
}

func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Push enqueues an alert and reports whether it became visible.
func (q *Queue) Push(alert model.Alert) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.prune()

	for _, v := range q.visible {
		if v.RoomID == alert.RoomID && v.Body == alert.Body && v.Severity == alert.Severity {
			return false
		}
	}

	if len(q.visible) >= maxVisibleAlerts {
		q.visible = q.visible[1:]
	}
	q.visible = append(q.visible, alert)
	return true
}

// Visible returns the alerts that have not yet expired, oldest first.
func (q *Queue) Visible() []model.Alert {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.prune()
	out := make([]model.Alert, len(q.visible))
	copy(out, q.visible)
	return out
}

// prune drops expired alerts; callers hold q.mu.
func (q *Queue) prune() {
	now := q.now()
	kept := q.visible[:0]
	for _, alert := range q.visible {
		if alert.ExpiresAt.After(now) {
			kept = append(kept, alert)
		}
	}
	q.visible = kept
}
