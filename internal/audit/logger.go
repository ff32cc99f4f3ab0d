package audit

import "log/slog"

// Logger records cleanup actions to the structured log. The worker keeps
// no relational audit table; logs are the system's only observable
// output.
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(ev Event) {
	l.log.Info("cleanup action",
		"uid", ev.UID,
		"action", ev.Action,
		"entity", ev.Entity,
		"entity_id", ev.EntityID,
	)
}
