package ansible

// EventStatus is the outcome of one task on one host.
type EventStatus string

const (
	EventOK          EventStatus = "ok"
	EventFailed      EventStatus = "failed"
	EventSkipped     EventStatus = "skipped"
	EventUnreachable EventStatus = "unreachable"
)

// Event is a single per-host task outcome emitted during a run.
type Event struct {
	Host   string
	Task   string
	Status EventStatus
	Detail string
}

// EventSink consumes task outcome events. Implementations are called from
// whatever goroutine the runner uses and must never panic or block the run.
type EventSink interface {
	HandleEvent(Event)
}
