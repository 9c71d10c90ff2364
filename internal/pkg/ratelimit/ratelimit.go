// Package ratelimit implements fixed-window request limiting per client
// fingerprint, with an optional block once a client keeps going over the limit.
package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
)

// Settings configures a Store
type Settings struct {
	// Max is the number of requests accepted per window
	Max int
	// Window is the fixed window length
	Window time.Duration
	// BlockAfter is the number of rejected requests within one window after
	// which the client is blocked; zero disables blocking
	BlockAfter int
	// BlockDuration is how long a blocked client stays blocked
	BlockDuration time.Duration
	// SweepInterval is how often MemoryStore.Run drops stale entries
	SweepInterval time.Duration
}

// SettingsFrom converts the configuration section into Settings
func SettingsFrom(c config.RateLimitSettings) Settings {
	return Settings{
		Max:           c.MaxRequests,
		Window:        c.Window,
		BlockAfter:    c.BlockAfter,
		BlockDuration: c.BlockDuration,
		SweepInterval: c.SweepInterval,
	}
}

func (s Settings) blocking() bool {
	return s.BlockAfter > 0 && s.BlockDuration > 0
}

// Decision is the outcome of one request
type Decision struct {
	Allowed    bool
	Blocked    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Store counts requests per key
type Store interface {
	// Take records one request for key and decides whether it may proceed
	Take(ctx context.Context, key string) (Decision, error)
}

// Fingerprint identifies a client by address, user agent and language
func Fingerprint(clientIP, userAgent, acceptLanguage string) string {
	sum := sha256.Sum256([]byte(clientIP + "|" + userAgent + "|" + acceptLanguage))
	return hex.EncodeToString(sum[:16])
}

func allowed(s Settings, count int, resetAt time.Time) Decision {
	return Decision{
		Allowed:   true,
		Limit:     s.Max,
		Remaining: s.Max - count,
		ResetAt:   resetAt,
	}
}

func rejected(s Settings, now, resetAt time.Time) Decision {
	return Decision{
		Limit:      s.Max,
		ResetAt:    resetAt,
		RetryAfter: resetAt.Sub(now),
	}
}

func blocked(s Settings, now, until time.Time) Decision {
	return Decision{
		Blocked:    true,
		Limit:      s.Max,
		ResetAt:    until,
		RetryAfter: until.Sub(now),
	}
}
