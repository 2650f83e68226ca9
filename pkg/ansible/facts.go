package ansible

import (
	"encoding/json"
	"strings"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

// Fact keys as reported by the engine's setup module.
const (
	factDistribution   = "ansible_distribution"
	factProcessorCores = "ansible_processor_cores"
	factMemory         = "ansible_memory_mb"
	factMounts         = "ansible_mounts"
)

// NormalizeFacts maps a raw fact payload into the agent's stable fact
// schema. The four lookups are independent so a malformed field is named
// precisely; any failure returns an ExtractionError and no partial record.
// Memory and space values are passed through without unit conversion.
func NormalizeFacts(host string, payload models.RawFactPayload) (models.Facts, error) {
	os, err := extractOS(host, payload)
	if err != nil {
		return models.Facts{}, err
	}

	cpus, err := extractCPUs(host, payload)
	if err != nil {
		return models.Facts{}, err
	}

	memory, err := extractMemory(host, payload)
	if err != nil {
		return models.Facts{}, err
	}

	space, err := extractSpace(host, payload)
	if err != nil {
		return models.Facts{}, err
	}

	return models.Facts{
		OS:     os,
		CPUs:   cpus,
		Memory: memory,
		Space:  space,
	}, nil
}

func extractOS(host string, payload models.RawFactPayload) (string, error) {
	v, ok := payload[factDistribution]
	if !ok {
		return "", srvErrors.NewExtractionError(host, factDistribution)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", srvErrors.NewExtractionError(host, factDistribution)
	}
	return strings.ToLower(s), nil
}

func extractCPUs(host string, payload models.RawFactPayload) (int64, error) {
	n, ok := asInt(payload[factProcessorCores])
	if !ok {
		return 0, srvErrors.NewExtractionError(host, factProcessorCores)
	}
	return n, nil
}

// extractMemory walks ansible_memory_mb.real.total.
func extractMemory(host string, payload models.RawFactPayload) (int64, error) {
	field := factMemory + ".real.total"

	mem, ok := payload[factMemory].(map[string]any)
	if !ok {
		return 0, srvErrors.NewExtractionError(host, field)
	}
	real, ok := mem["real"].(map[string]any)
	if !ok {
		return 0, srvErrors.NewExtractionError(host, field)
	}
	total, ok := asInt(real["total"])
	if !ok {
		return 0, srvErrors.NewExtractionError(host, field)
	}
	return total, nil
}

// extractSpace reads the total size of the first listed mount.
func extractSpace(host string, payload models.RawFactPayload) (int64, error) {
	field := factMounts + ".0.size_total"

	mounts, ok := payload[factMounts].([]any)
	if !ok || len(mounts) == 0 {
		return 0, srvErrors.NewExtractionError(host, field)
	}
	first, ok := mounts[0].(map[string]any)
	if !ok {
		return 0, srvErrors.NewExtractionError(host, field)
	}
	size, ok := asInt(first["size_total"])
	if !ok {
		return 0, srvErrors.NewExtractionError(host, field)
	}
	return size, nil
}

// asInt accepts the integer encodings a decoded JSON payload may carry.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
