package recovery

import "time"

// Strategy pairs a predicate over errors with a bounded retry policy
type Strategy struct {
	Name       string
	Matches    func(error) bool
	MaxRetries int
	Delay      time.Duration
}

// HasCode builds a predicate matching errors carrying code
func HasCode(code string) func(error) bool {
	return func(err error) bool {
		return CodeOf(err) == code
	}
}

// DefaultStrategies is the static strategy table used by the application.
// The delay grows linearly with the attempt number.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "service-unavailable", Matches: HasCode(CodeUnavailable), MaxRetries: 3, Delay: time.Second},
		{Name: "deadline-exceeded", Matches: HasCode(CodeDeadlineExceeded), MaxRetries: 2, Delay: 500 * time.Millisecond},
		{Name: "quota-exceeded", Matches: HasCode(CodeResourceExhausted), MaxRetries: 2, Delay: 2 * time.Second},
		{Name: "network-failure", Matches: HasCode(CodeNetworkRequestFailed), MaxRetries: 3, Delay: time.Second},
		{Name: "transaction-aborted", Matches: HasCode(CodeAborted), MaxRetries: 1, Delay: 100 * time.Millisecond},
	}
}
