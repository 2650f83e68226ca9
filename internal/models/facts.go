package models

// RawFactPayload is the unprocessed, engine-specific fact mapping reported
// for a single host. Values are arbitrarily nested (strings, numbers,
// mappings, sequences) and vary by OS family.
type RawFactPayload map[string]any

// Facts is the stable fact schema the agent keeps per host.
//
// Memory and Space are passed through in whatever unit the engine reports
// them; the agent performs no conversion.
type Facts struct {
	OS     string `json:"os"`
	CPUs   int64  `json:"cpus"`
	Memory int64  `json:"memory"`
	Space  int64  `json:"space"`
}
