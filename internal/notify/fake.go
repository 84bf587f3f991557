package notify

import "sync"

// RecordingNotifier captures notices for assertions in tests.
type RecordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (r *RecordingNotifier) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of everything captured so far.
func (r *RecordingNotifier) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Reset discards captured notices.
func (r *RecordingNotifier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}
