package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier is the toast surface: transient, user-visible feedback emitted by
// the dispatch layer after every mutation. Nothing here is an escalation
// path; failures that force navigation (a missing session) travel as errors
// instead.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// logNotifier emits notifications through the structured logger. The
// terminal client uses it as its toast rendering.
type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a Notifier backed by a zap logger.
func NewLogNotifier(logger *zap.Logger) Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Success(msg string) {
	n.logger.Info(msg, zap.String("notification", "success"))
}

func (n *logNotifier) Error(msg string) {
	n.logger.Warn(msg, zap.String("notification", "error"))
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Success records a success notification.
func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

// Error records an error notification.
func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}

// LastError returns the most recent error notification, or "".
func (r *Recorder) LastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[len(r.Errors)-1]
}

// LastSuccess returns the most recent success notification, or "".
func (r *Recorder) LastSuccess() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Successes) == 0 {
		return ""
	}
	return r.Successes[len(r.Successes)-1]
}
