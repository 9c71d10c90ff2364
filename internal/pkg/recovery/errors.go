package recovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Backend error codes understood by the strategy table
const (
	CodeUnavailable          = "unavailable"
	CodeDeadlineExceeded     = "deadline-exceeded"
	CodeResourceExhausted    = "resource-exhausted"
	CodeNetworkRequestFailed = "network-request-failed"
	CodeAborted              = "aborted"
)

// ErrRetriesExhausted is matched by errors.Is once every retry of a strategy failed
var ErrRetriesExhausted = errors.New("retries exhausted")

// CodedError attaches a backend error code to a failure
type CodedError struct {
	Code string
	Op   string
	Err  error
}

// NewCodedError wraps err with code for operation op
func NewCodedError(code, op string, err error) *CodedError {
	return &CodedError{Code: code, Op: op, Err: err}
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// CodeOf returns the backend error code carried by err, classifying context
// deadlines and network errors when no code was attached explicitly.
// It returns an empty string for errors that are not retryable.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CodeDeadlineExceeded
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return CodeDeadlineExceeded
		}
		return CodeNetworkRequestFailed
	}
	return ""
}

// CodeForStatus maps an upstream HTTP status to a backend error code.
// Statuses that retrying cannot fix map to an empty string.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusTooManyRequests:
		return CodeResourceExhausted
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return CodeUnavailable
	case http.StatusConflict:
		return CodeAborted
	default:
		return ""
	}
}

// ExhaustedError is returned when the matched strategy ran out of retries
type ExhaustedError struct {
	Op       string
	Strategy string
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: %s after %d attempts (%s): %v", e.Op, ErrRetriesExhausted, e.Attempts, e.Strategy, e.Err)
}

func (e *ExhaustedError) Unwrap() []error {
	return []error{ErrRetriesExhausted, e.Err}
}
