package notifysvc

import (
	"sync"

	"github.com/gauravw/coachcenter/core"
)

// CaptureNotifier records every message for inspection in tests.
type CaptureNotifier struct {
	mu       sync.Mutex
	messages []string
}

var _ core.Notifier = (*CaptureNotifier)(nil)

func NewCaptureNotifier() *CaptureNotifier {
	return &CaptureNotifier{}
}

func (n *CaptureNotifier) Notify(message string) {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
}

func (n *CaptureNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	msgs := make([]string, len(n.messages))
	copy(msgs, n.messages)
	return msgs
}

func (n *CaptureNotifier) Reset() {
	n.mu.Lock()
	n.messages = nil
	n.mu.Unlock()
}
