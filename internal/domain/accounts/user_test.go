//go:build unit
// +build unit

package accounts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdateApply(t *testing.T) {
	user := &User{DisplayName: "Ana", Phone: "600000000", CUPS: "ES0021000000000000AA"}

	update := &ProfileUpdate{
		PostalCode: strPtr("08001"),
		Phone:      strPtr("+34 612 345 678"),
		CUPS:       strPtr(" es0031405958393001ab "),
	}
	require.NoError(t, update.Validate())

	update.Apply(user)

	assert.Equal(t, "Ana", user.DisplayName)
	assert.Equal(t, "08001", user.PostalCode)
	assert.Equal(t, "612345678", user.Phone)
	assert.Equal(t, "ES0031405958393001AB", user.CUPS)
}

func TestProfileUpdateValidation(t *testing.T) {
	tests := []struct {
		name   string
		update ProfileUpdate
		field  string
	}{
		{"postal code", ProfileUpdate{PostalCode: strPtr("123")}, "PostalCode"},
		{"phone", ProfileUpdate{Phone: strPtr("512345678")}, "Phone"},
		{"cups", ProfileUpdate{CUPS: strPtr("ES123")}, "CUPS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestRegistrationValidation(t *testing.T) {
	reg := &Registration{Email: "ana@example.com", Password: "secreto123", DisplayName: "Ana"}
	require.NoError(t, reg.Validate())

	reg.Password = "corta"
	assert.Error(t, reg.Validate())
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	session := &Session{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Hour)))
}
