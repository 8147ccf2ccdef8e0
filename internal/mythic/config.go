// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import (
	"errors"
	"strings"
	"time"
)

// Centralized client defaults
const (
	defaultTimeout               = 120 * time.Second
	defaultRetryMaxAttempts      = 4
	defaultRetryInitialBackoffMs = 500
	defaultRetryMaxBackoffMs     = 5000
)

// Config holds the connection and credential settings for a Mythic server.
//
// APIToken and AccessToken are the two credential fields. APIToken is meant
// for long-lived API tokens issued by the server, but callers frequently place
// a JWT there as well; Normalize moves such values to AccessToken. When both
// fields end up populated, AccessToken takes precedence for the primary
// header and APIToken is only used for the fallback scheme.
type Config struct {
	// ServerURL is the server address, e.g. "mythic.example.com:7443". A
	// leading "http://" or "https://" is accepted and ignored; SSL decides the
	// scheme.
	ServerURL string

	// SSL selects https/wss over http/ws.
	SSL bool

	// APIToken is the opaque API token, sent as the "apitoken" header.
	APIToken string

	// AccessToken is a bearer credential (JWT), sent as "Authorization: Bearer".
	AccessToken string

	// Timeout bounds every HTTP request. Zero means no timeout.
	Timeout time.Duration

	// SkipTLSVerify disables certificate verification (self-signed servers).
	SkipTLSVerify bool

	// Retry configures status-code retries (429/5xx) of a single request.
	// Transport errors are never retried.
	Retry RetryConfig

	// UserAgent is sent on every request when set.
	UserAgent string
}

// RetryConfig configures the optional retry/backoff policy of the HTTP client.
type RetryConfig struct {
	Enabled          bool
	MaxAttempts      int
	InitialBackoffMs int
	MaxBackoffMs     int
}

// DefaultConfig returns a Config with SSL enabled and the default timeout
// and retry policy.
func DefaultConfig() Config {
	return Config{
		SSL:     true,
		Timeout: defaultTimeout,
		Retry: RetryConfig{
			Enabled:          true,
			MaxAttempts:      defaultRetryMaxAttempts,
			InitialBackoffMs: defaultRetryInitialBackoffMs,
			MaxBackoffMs:     defaultRetryMaxBackoffMs,
		},
	}
}

// Validate checks the configuration before any network activity.
// Credentials are optional here: an unauthenticated client is valid and
// simply fails identity resolution.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ServerURL) == "" {
		return WrapError("Validate", ErrInvalidConfig, "ServerURL is required")
	}
	if StripScheme(c.ServerURL) == "" {
		return WrapError("Validate", ErrInvalidConfig, "ServerURL has no host")
	}
	if c.Timeout < 0 {
		return WrapError("Validate", ErrInvalidConfig, "Timeout must not be negative")
	}
	if c.Retry.Enabled {
		var errs []error
		if c.Retry.MaxAttempts < 1 {
			errs = append(errs, errors.New("retry max attempts must be at least 1"))
		}
		if c.Retry.InitialBackoffMs > c.Retry.MaxBackoffMs {
			errs = append(errs, errors.New("retry initial backoff must not exceed max backoff"))
		}
		if len(errs) > 0 {
			return WrapError("Validate", errors.Join(append([]error{ErrInvalidConfig}, errs...)...), "invalid retry policy")
		}
	}
	return nil
}

// HasCredentials reports whether any credential field is populated.
func (c Config) HasCredentials() bool {
	return c.APIToken != "" || c.AccessToken != ""
}
