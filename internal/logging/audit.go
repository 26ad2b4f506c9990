package logging

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// =============================================================================
// AUDIT EVENT TYPES
// =============================================================================

// AuditEventType names a structured event in the audit category.
type AuditEventType string

const (
	AuditSelection    AuditEventType = "selection"     // menu choice parsed
	AuditTaskStart    AuditEventType = "task_start"    // task about to run
	AuditTaskComplete AuditEventType = "task_complete" // task produced a result
	AuditTaskError    AuditEventType = "task_error"    // input could not be read
)

// AuditEvent is one structured audit entry.
type AuditEvent struct {
	EventType AuditEventType
	Task      string
	Outcome   string
	Detail    string
	Duration  time.Duration
	Err       error
}

// Fields converts the event to zap fields, leaving out empty values.
func (e AuditEvent) Fields() []zap.Field {
	fields := []zap.Field{zap.String("event", string(e.EventType))}
	if e.Task != "" {
		fields = append(fields, zap.String("task", e.Task))
	}
	if e.Outcome != "" {
		fields = append(fields, zap.String("outcome", e.Outcome))
	}
	if e.Detail != "" {
		fields = append(fields, zap.String("detail", e.Detail))
	}
	if e.Duration > 0 {
		fields = append(fields, zap.Duration("duration", e.Duration))
	}
	if e.Err != nil {
		fields = append(fields, zap.Error(e.Err))
	}
	return fields
}

// Audit writes the event to the audit category. Error events log at warn,
// everything else at info.
func Audit(e AuditEvent) {
	l := Get(CategoryAudit)
	if e.EventType == AuditTaskError || e.Err != nil {
		l.Warn("audit", e.Fields()...)
		return
	}
	l.Info("audit", e.Fields()...)
}

// AuditTimer starts a task and returns a function that records its outcome.
func AuditTimer(task string) func(outcome, detail string) {
	start := time.Now()
	Audit(AuditEvent{EventType: AuditTaskStart, Task: task})
	return func(outcome, detail string) {
		Audit(AuditEvent{
			EventType: AuditTaskComplete,
			Task:      task,
			Outcome:   outcome,
			Detail:    detail,
			Duration:  time.Since(start),
		})
	}
}

// AuditFailure records an input error for a task.
func AuditFailure(task string, err error) {
	if err == nil {
		err = errors.New("unknown failure")
	}
	Audit(AuditEvent{EventType: AuditTaskError, Task: task, Err: err})
}
