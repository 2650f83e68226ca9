package ansible

import (
	"go.uber.org/zap"
)

// LogForwarder forwards task outcome events to a structured logger.
// It holds no state besides the logger and makes exactly one log call
// per event: ok results at info level, everything else at warn.
type LogForwarder struct {
	log *zap.SugaredLogger
}

func NewLogForwarder(log *zap.SugaredLogger) *LogForwarder {
	return &LogForwarder{log: log}
}

// HandleEvent implements EventSink. Losing a log line is strictly
// preferable to aborting provisioning, so panics are swallowed.
func (f *LogForwarder) HandleEvent(ev Event) {
	defer func() {
		_ = recover()
	}()

	switch ev.Status {
	case EventFailed:
		f.log.Warnw("task failed", "host", ev.Host, "task", ev.Task, "detail", ev.Detail)
	case EventUnreachable:
		f.log.Warnw("host unreachable", "host", ev.Host, "task", ev.Task)
	case EventSkipped:
		f.log.Warnw("task skipped", "host", ev.Host, "task", ev.Task)
	default:
		f.log.Infow("task ok", "host", ev.Host, "task", ev.Task)
	}
}
