package models

// BootstrapStateType represents the current state of the bootstrap pipeline
// for a single host invocation.
type BootstrapStateType string

const (
	// BootstrapStateReady - no run in progress for the host
	BootstrapStateReady BootstrapStateType = "ready"
	// BootstrapStateInvestigating - fact-gathering run in progress
	BootstrapStateInvestigating BootstrapStateType = "investigating"
	// BootstrapStateProvisioning - bootstrap runbook executing
	BootstrapStateProvisioning BootstrapStateType = "provisioning"
	// BootstrapStateDone - bootstrap finished successfully
	BootstrapStateDone BootstrapStateType = "done"
	// BootstrapStateError - investigation or bootstrap failed
	BootstrapStateError BootstrapStateType = "error"
)

// BootstrapStatus holds the current pipeline state and metadata.
type BootstrapStatus struct {
	State BootstrapStateType
	Host  string
	Error error
}

// RunResult is the terminal value of one automation run: the raw exit
// status and, on success, the normalized facts gathered from the host.
type RunResult struct {
	Status int
	Facts  *Facts
}

// Succeeded reports whether the run exited cleanly.
func (r RunResult) Succeeded() bool { return r.Status == 0 }
