// Package ansible adapts the agent to the external automation engine.
//
// The engine does all of the real work: ssh transport, inventory handling
// and task execution. This package shapes the inputs (play variables,
// key paths, runbook references) and the outputs (task outcome events,
// raw fact payloads) around a single engine invocation.
package ansible

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
)

// RunOptions describes one engine invocation against a single host.
type RunOptions struct {
	// Host is the address placed in the one-host inventory.
	Host string
	// KeyPath is the ssh private key used to reach the host.
	KeyPath string
	// Runbook is the playbook executed by the run.
	Runbook string
	// Vars are injected as extra variables.
	Vars map[string]string
}

// Result is the engine-level outcome of one run: the raw exit status and
// whatever facts the run gathered for the target host.
type Result struct {
	Status int
	Facts  models.RawFactPayload
}

// Runner executes one automation run. It is injected into the services so
// tests can substitute a double without touching the process table.
type Runner interface {
	Run(ctx context.Context, opts RunOptions) (Result, error)
}

// PlaybookRunner shells out to ansible-playbook with a one-host inventory
// and the JSON stdout callback, then replays the recorded task results into
// the event sink and harvests the target host's facts.
type PlaybookRunner struct {
	binary string
	sink   EventSink
	log    *zap.SugaredLogger
}

func NewPlaybookRunner(binary string, sink EventSink) *PlaybookRunner {
	return &PlaybookRunner{
		binary: binary,
		sink:   sink,
		log:    zap.S().Named("runner"),
	}
}

// Run implements Runner. A nonzero exit status is not an error at this
// level; it is surfaced in the result and interpreted by the caller.
func (r *PlaybookRunner) Run(ctx context.Context, opts RunOptions) (Result, error) {
	runID := uuid.New()

	extraVars, err := json.Marshal(opts.Vars)
	if err != nil {
		return Result{}, err
	}

	args := []string{
		opts.Runbook,
		"--inventory", opts.Host + ",",
		"--extra-vars", string(extraVars),
	}
	if opts.KeyPath != "" {
		args = append(args, "--private-key", opts.KeyPath)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(os.Environ(), "ANSIBLE_STDOUT_CALLBACK=json")

	r.log.Debugw("starting run", "run_id", runID, "host", opts.Host, "runbook", opts.Runbook)

	status := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, err
		}
		status = exitErr.ExitCode()
	}

	facts := r.replayOutput(opts.Host, stdout.Bytes())

	r.log.Debugw("run finished",
		"run_id", runID, "host", opts.Host, "status", status, "stderr", stderr.String())

	return Result{Status: status, Facts: facts}, nil
}

// playbookOutput mirrors the slice of the JSON callback document the agent
// consumes: per-task, per-host results and any gathered facts.
type playbookOutput struct {
	Plays []struct {
		Tasks []struct {
			Task struct {
				Name string `json:"name"`
			} `json:"task"`
			Hosts map[string]taskHostResult `json:"hosts"`
		} `json:"tasks"`
	} `json:"plays"`
}

type taskHostResult struct {
	Failed       bool           `json:"failed"`
	Skipped      bool           `json:"skipped"`
	Unreachable  bool           `json:"unreachable"`
	Msg          string         `json:"msg"`
	Exception    string         `json:"exception"`
	AnsibleFacts map[string]any `json:"ansible_facts"`
}

// replayOutput forwards every recorded task result to the sink and merges
// the facts reported for the target host. Output the agent cannot parse is
// logged and dropped; the exit status alone decides success.
func (r *PlaybookRunner) replayOutput(host string, out []byte) models.RawFactPayload {
	var doc playbookOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		r.log.Warnw("unparseable engine output", "host", host, "error", err)
		return nil
	}

	facts := models.RawFactPayload{}
	for _, play := range doc.Plays {
		for _, task := range play.Tasks {
			for name, res := range task.Hosts {
				if r.sink != nil {
					r.sink.HandleEvent(eventFrom(name, task.Task.Name, res))
				}
				if name != host {
					continue
				}
				for k, v := range res.AnsibleFacts {
					facts[k] = v
				}
			}
		}
	}
	return facts
}

func eventFrom(host, task string, res taskHostResult) Event {
	ev := Event{Host: host, Task: task, Status: EventOK}
	switch {
	case res.Unreachable:
		ev.Status = EventUnreachable
		ev.Detail = res.Msg
	case res.Failed:
		ev.Status = EventFailed
		ev.Detail = res.Msg
		if res.Exception != "" {
			ev.Detail = res.Exception
		}
	case res.Skipped:
		ev.Status = EventSkipped
	}
	return ev
}
