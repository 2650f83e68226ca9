// Package errors provides custom error types for the bootstrap-agent.
//
// Each error type includes a constructor, Error() method, and a type-checking
// helper using errors.As for proper error unwrapping.
//
// # Error Types Overview
//
//	┌──────────────────────────┬────────┬─────────────────────────────────────┐
//	│ Error Type               │ HTTP   │ Description                         │
//	├──────────────────────────┼────────┼─────────────────────────────────────┤
//	│ ResourceNotFoundError    │ 404    │ Requested resource doesn't exist    │
//	│ BootstrapInProgressError │ 409    │ Host is already being provisioned   │
//	│ ExtractionError          │ 500    │ Fact missing from the raw payload   │
//	│ RunFailedError           │ 500    │ Automation run exited nonzero       │
//	│ ConfigurationError       │ 400    │ Invalid backend or agent config     │
//	│ UnsupportedOSError       │ 400    │ No OS command set for the family    │
//	└──────────────────────────┴────────┴─────────────────────────────────────┘
//
// # ExtractionError
//
// Raised while normalizing a raw fact payload when one of the expected
// fields is missing or has an unexpected shape. Carries the host address
// and the name of the field that could not be extracted; no partial fact
// record is ever returned alongside it.
//
// Constructor:
//   - NewExtractionError(host, field string)
//
// # RunFailedError
//
// Wraps the nonzero exit status of an automation run. The agent does not
// interpret why the run failed; the status code is surfaced as-is and the
// caller decides whether to retry the whole invocation.
//
// Constructor:
//   - NewRunFailedError(status int)
//
// # ConfigurationError
//
// Indicates a store backend or agent configuration problem detected before
// any run is invoked (for example a backend missing its server URL).
//
// Constructor:
//   - NewConfigurationError(reason string)
//
// # Type Checking Pattern
//
// All error types provide Is* helper functions that use errors.As
// for proper error chain unwrapping:
//
//	func IsExtractionError(err error) bool {
//	    var e *ExtractionError
//	    return errors.As(err, &e)
//	}
//
// Handlers typically map errors to HTTP status codes:
//
//	switch {
//	case errors.IsResourceNotFoundError(err):
//	    c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
//	case errors.IsBootstrapInProgressError(err):
//	    c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
//	default:
//	    c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
//	}
package errors
