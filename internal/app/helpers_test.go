//go:build unit
// +build unit

package app

import (
	"errors"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/testutil"
)

// newTestRecoverer retries unavailable errors once without waiting
func newTestRecoverer(t *testing.T) *recovery.Recoverer {
	t.Helper()
	strategies := []recovery.Strategy{
		{Name: "service-unavailable", Matches: recovery.HasCode(recovery.CodeUnavailable), MaxRetries: 1},
	}
	return recovery.NewRecoverer(strategies, nil, testutil.SetupTestLogger(t))
}

func unavailable(op string) error {
	return recovery.NewCodedError(recovery.CodeUnavailable, op, errors.New("unexpected status 503"))
}

func parseForm(t *testing.T, field, fileName, contentType string, content []byte) *multipart.Form {
	t.Helper()

	body, formContentType := testutil.CreateFileForm(t, field, fileName, contentType, content)
	_, params, err := mime.ParseMediaType(formContentType)
	require.NoError(t, err)

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	require.NoError(t, err)
	return form
}

func ptr[T any](v T) *T { return &v }
