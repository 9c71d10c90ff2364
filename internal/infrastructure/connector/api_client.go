package connector

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"
)

// newRestyClient builds the HTTP client shared by the third-party API
// connectors. resty retries transport failures only; status based retries
// belong to the recovery strategies of the caller.
func newRestyClient(settings *config.APIConnectorSettings) *resty.Client {
	return resty.New().
		SetBaseURL(settings.BaseURL).
		SetTimeout(settings.Timeout).
		SetRetryCount(settings.RetryCount).
		SetRetryWaitTime(settings.RetryWaitTime).
		SetRetryMaxWaitTime(4*settings.RetryWaitTime).
		SetHeader("Accept", "application/json")
}

// checkResponse converts a failed call into an error carrying the backend
// code the recovery strategies match on
func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		code := recovery.CodeOf(err)
		if code == "" {
			code = recovery.CodeNetworkRequestFailed
		}
		return recovery.NewCodedError(code, op, err)
	}
	if resp.IsError() {
		statusErr := fmt.Errorf("unexpected status %d", resp.StatusCode())
		if code := recovery.CodeForStatus(resp.StatusCode()); code != "" {
			return recovery.NewCodedError(code, op, statusErr)
		}
		return fmt.Errorf("%s: %w", op, statusErr)
	}
	return nil
}
