package notify

import "log"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives user-visible notifications from the storefront core.
// Implementations are purely presentational; the core never consumes a result.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(title, message string, severity Severity) {
	log.Printf("[%s] %s: %s", severity, title, message)
}
