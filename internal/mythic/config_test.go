// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.SSL)
	assert.Equal(t, 120*time.Second, cfg.Timeout)
	assert.True(t, cfg.Retry.Enabled)
	assert.Equal(t, 4, cfg.Retry.MaxAttempts)
	assert.Equal(t, 500, cfg.Retry.InitialBackoffMs)
	assert.Equal(t, 5000, cfg.Retry.MaxBackoffMs)
	assert.False(t, cfg.HasCredentials())
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()
	valid.ServerURL = "mythic.example.com"

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with server", func(*Config) {}, false},
		{"no credentials is valid", func(c *Config) { c.APIToken, c.AccessToken = "", "" }, false},
		{"empty server", func(c *Config) { c.ServerURL = "" }, true},
		{"blank server", func(c *Config) { c.ServerURL = "  " }, true},
		{"scheme only", func(c *Config) { c.ServerURL = "https://" }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"zero attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }, true},
		{"inverted backoff", func(c *Config) { c.Retry.InitialBackoffMs = 9000 }, true},
		{"retry disabled ignores policy", func(c *Config) { c.Retry = RetryConfig{MaxAttempts: 0} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}
