package gerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyTree is used when a merkle tree was built from an allocation without valid rows
	ErrEmptyTree = errors.New("merkle tree has no leaves")
	// ErrLeafNotFound is used when a proof is requested for a hash that is not a leaf of the tree
	ErrLeafNotFound = errors.New("leaf not found in the merkle tree")
	// ErrUnknownCommand is used when the request command is not supported
	ErrUnknownCommand = errors.New("Invalid command")
	// ErrRateLimited is used when the caller exceeded the configured request budget
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrNetworkNotRegister is used when the network preset is not known
	ErrNetworkNotRegister = errors.New("not registered network")
)

// ConfigurationError reports inconsistent allocation settings, e.g. list lengths that do not match.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

// FetchError reports an unreachable allocation source.
type FetchError struct {
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a source whose content is not valid CSV.
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IneligibleAddressError is returned when no allocation contains the queried address.
// Address holds the form shown to the user, which is the un-aliased L1 address for L1 claims.
type IneligibleAddressError struct {
	Address string
}

func (e *IneligibleAddressError) Error() string {
	return fmt.Sprintf("%s address is not eligible", e.Address)
}

// UpstreamQueryError wraps any failure while reading from the bridgehub contract.
type UpstreamQueryError struct {
	Method string
	Err    error
}

func (e *UpstreamQueryError) Error() string {
	return fmt.Sprintf("calling %s: %v", e.Method, e.Err)
}

func (e *UpstreamQueryError) Unwrap() error {
	return e.Err
}

// ValidationError reports a missing or malformed request parameter.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewMissingParamError returns the validation error used for absent request parameters.
func NewMissingParamError(name string) error {
	return &ValidationError{Msg: "Missing required parameter: " + name}
}

// HTTPStatus maps an error to the status code returned at the request boundary.
// Client caused conditions are 400, everything else is considered internal.
func HTTPStatus(err error) int {
	var (
		validationErr *ValidationError
		ineligibleErr *IneligibleAddressError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr), errors.As(err, &ineligibleErr), errors.Is(err, ErrUnknownCommand):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
