// Package notify covers the two user-facing message surfaces of the client:
// transient notices (toasts) and the in-memory store of persisted
// notifications fed by REST history and realtime pushes.
package notify

import (
	"context"
	"time"

	"github.com/bloodstream/bloodstream-go/internal/logging"
	"github.com/bloodstream/bloodstream-go/internal/models"
)

// Severity grades a transient notice.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultNoticeDuration applies when a notice does not specify one.
const DefaultNoticeDuration = 4 * time.Second

// Notice is a transient, non-blocking message. Distinct from a persisted
// Notification.
type Notice struct {
	Severity Severity
	Title    string
	Message  string
	Duration time.Duration
}

// Notifier displays transient notices. Implementations must be safe for
// concurrent use; realtime dispatch calls them from the read goroutine.
type Notifier interface {
	Notify(n Notice)
}

// ForPriority builds the notice treatment for a pushed notification:
// urgent notifications get a blocking-red treatment held on screen longest,
// high a warning treatment, everything else an informational one.
func ForPriority(n models.Notification) Notice {
	switch n.Priority {
	case models.PriorityUrgent:
		return Notice{Severity: SeverityError, Title: n.Title, Message: n.Message, Duration: 10 * time.Second}
	case models.PriorityHigh:
		return Notice{Severity: SeverityWarning, Title: n.Title, Message: n.Message, Duration: 7 * time.Second}
	default:
		return Notice{Severity: SeverityInfo, Title: n.Title, Message: n.Message, Duration: DefaultNoticeDuration}
	}
}

// LogNotifier renders notices through the structured logger. The CLI uses it
// as its toast surface.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	if log == nil {
		log = logging.NewNop()
	}
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(n Notice) {
	ctx := context.Background()
	args := []any{"title", n.Title, "message", n.Message}
	switch n.Severity {
	case SeverityError:
		l.log.Error(ctx, "notice", args...)
	case SeverityWarning:
		l.log.Warn(ctx, "notice", args...)
	default:
		l.log.Info(ctx, "notice", args...)
	}
}
