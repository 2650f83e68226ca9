package errors

import (
	"errors"
	"fmt"
)

// ExtractionError indicates a fact could not be extracted from a raw payload.
type ExtractionError struct {
	Host  string
	Field string
}

func NewExtractionError(host, field string) *ExtractionError {
	return &ExtractionError{Host: host, Field: field}
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("unable to extract %q from facts reported by %s", e.Field, e.Host)
}

// IsExtractionError checks if the error is an ExtractionError.
func IsExtractionError(err error) bool {
	var e *ExtractionError
	return errors.As(err, &e)
}

// RunFailedError indicates the automation run finished with a nonzero status.
type RunFailedError struct {
	Status int
}

func NewRunFailedError(status int) *RunFailedError {
	return &RunFailedError{Status: status}
}

func (e *RunFailedError) Error() string {
	return fmt.Sprintf("automation run failed with status %d", e.Status)
}

// IsRunFailedError checks if the error is a RunFailedError.
func IsRunFailedError(err error) bool {
	var e *RunFailedError
	return errors.As(err, &e)
}

// ConfigurationError indicates an invalid backend or agent configuration.
type ConfigurationError struct {
	Reason string
}

func NewConfigurationError(reason string) *ConfigurationError {
	return &ConfigurationError{Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// IsConfigurationError checks if the error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// UnsupportedOSError indicates no OS command set exists for the family.
type UnsupportedOSError struct {
	Family string
}

func NewUnsupportedOSError(family string) *UnsupportedOSError {
	return &UnsupportedOSError{Family: family}
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf("unsupported os family: %s", e.Family)
}

// IsUnsupportedOSError checks if the error is an UnsupportedOSError.
func IsUnsupportedOSError(err error) bool {
	var e *UnsupportedOSError
	return errors.As(err, &e)
}

// ResourceNotFoundError indicates a resource was not found.
type ResourceNotFoundError struct {
	Kind string
}

func NewResourceNotFoundError(kind string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind}
}

func NewHostNotFoundError() *ResourceNotFoundError {
	return NewResourceNotFoundError("host")
}

func NewClusterNotFoundError() *ResourceNotFoundError {
	return NewResourceNotFoundError("cluster")
}

func NewNetworkNotFoundError() *ResourceNotFoundError {
	return NewResourceNotFoundError("network")
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// BootstrapInProgressError indicates the host is already being provisioned.
type BootstrapInProgressError struct{}

func NewBootstrapInProgressError() *BootstrapInProgressError {
	return &BootstrapInProgressError{}
}

func (e *BootstrapInProgressError) Error() string {
	return "bootstrap already in progress"
}

func IsBootstrapInProgressError(err error) bool {
	var e *BootstrapInProgressError
	return errors.As(err, &e)
}
