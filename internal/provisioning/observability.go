package provisioning

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the printf-style subset of Observer.
type Logger interface {
	Printf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during provisioning.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// Progress reports progress for a phase
	Progress(phase string, current, total int)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType         // Type of event
	Phase     string            // Phase name (e.g., "directory", "profiles")
	Message   string            // Human-readable message
	Resource  string            // Resource name or moid if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventPhaseStarted indicates a provisioning phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a provisioning phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a provisioning phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventResourceResolved indicates a name was resolved to a moid.
	EventResourceResolved EventType = "resource.resolved"
	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceUpdated indicates an existing resource was modified.
	EventResourceUpdated EventType = "resource.updated"
	// EventResourceFailed indicates an operation on a resource failed.
	EventResourceFailed EventType = "resource.failed"

	// EventValidationWarning indicates a validation warning.
	EventValidationWarning EventType = "validation.warning"

	// EventProgress indicates progress in a long-running operation.
	EventProgress EventType = "progress"
)

// LogObserver implements Observer on top of a zap logger.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates an observer writing to logger.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{logger: logger}
}

// Printf implements Logger.
func (o *LogObserver) Printf(format string, v ...interface{}) {
	o.logger.Info(fmt.Sprintf(format, v...))
}

// Warnf implements Logger.
func (o *LogObserver) Warnf(format string, v ...interface{}) {
	o.logger.Warn(fmt.Sprintf(format, v...))
}

// Event implements Observer interface.
func (o *LogObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	fields := []zap.Field{zap.String("event", string(event.Type))}
	if event.Phase != "" {
		fields = append(fields, zap.String("phase", event.Phase))
	}
	if event.Resource != "" {
		fields = append(fields, zap.String("resource", event.Resource))
	}
	for _, k := range sortedKeys(event.Fields) {
		fields = append(fields, zap.String(k, event.Fields[k]))
	}

	if ce := o.logger.Check(eventLevel(event.Type), event.Message); ce != nil {
		ce.Time = event.Timestamp
		ce.Write(fields...)
	}
}

// Progress implements Observer interface.
func (o *LogObserver) Progress(phase string, current, total int) {
	fields := []zap.Field{
		zap.String("event", string(EventProgress)),
		zap.String("phase", phase),
		zap.Int("current", current),
		zap.Int("total", total),
	}
	if total > 0 {
		fields = append(fields, zap.Int("percent", (current*100)/total))
	}
	o.logger.Info(fmt.Sprintf("[%s] progress %d/%d", phase, current, total), fields...)
}

// WithFields implements Observer interface.
func (o *LogObserver) WithFields(fields map[string]string) Observer {
	zf := make([]zap.Field, 0, len(fields))
	for _, k := range sortedKeys(fields) {
		zf = append(zf, zap.String(k, fields[k]))
	}
	return &LogObserver{logger: o.logger.With(zf...)}
}

func eventLevel(t EventType) zapcore.Level {
	switch t {
	case EventPhaseFailed, EventResourceFailed:
		return zapcore.ErrorLevel
	case EventValidationWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Helper functions for common events

// LogPhaseStart logs a phase start event.
func LogPhaseStart(observer Observer, phase string) {
	observer.Event(Event{
		Type:    EventPhaseStarted,
		Phase:   phase,
		Message: fmt.Sprintf("[%s] starting", phase),
	})
}

// LogPhaseComplete logs a phase completion event.
func LogPhaseComplete(observer Observer, phase string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventPhaseCompleted,
		Phase:   phase,
		Message: fmt.Sprintf("[%s] completed in %v", phase, duration.Round(time.Millisecond)),
	})
}

// LogPhaseFailed logs a phase failure event.
func LogPhaseFailed(observer Observer, phase string, err error) {
	observer.Event(Event{
		Type:    EventPhaseFailed,
		Phase:   phase,
		Message: fmt.Sprintf("[%s] failed: %v", phase, err),
	})
}

// LogResourceResolved logs a successful name lookup.
func LogResourceResolved(observer Observer, phase, resourceType, resourceName, moid string) {
	observer.Event(Event{
		Type:     EventResourceResolved,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("resolved %s %q", resourceType, resourceName),
		Fields: map[string]string{
			"type": resourceType,
			"moid": moid,
		},
	})
}

// LogResourceCreating logs a resource creation start event.
func LogResourceCreating(observer Observer, phase, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceCreating,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("creating %s", resourceType),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogResourceCreated logs a successful resource creation event.
func LogResourceCreated(observer Observer, phase, resourceType, resourceName, moid string) {
	observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s created", resourceType),
		Fields: map[string]string{
			"type": resourceType,
			"moid": moid,
		},
	})
}

// LogResourceUpdated logs a modification of an existing resource.
func LogResourceUpdated(observer Observer, phase, resourceType, moid, change string) {
	observer.Event(Event{
		Type:     EventResourceUpdated,
		Phase:    phase,
		Resource: moid,
		Message:  fmt.Sprintf("%s %s", resourceType, change),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogResourceFailed logs a failed operation on a resource.
func LogResourceFailed(observer Observer, phase, resourceType, resourceName string, err error) {
	observer.Event(Event{
		Type:     EventResourceFailed,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s failed: %v", resourceType, err),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogWarning logs a validation warning event.
func LogWarning(observer Observer, phase, message string) {
	observer.Event(Event{
		Type:    EventValidationWarning,
		Phase:   phase,
		Message: message,
	})
}
