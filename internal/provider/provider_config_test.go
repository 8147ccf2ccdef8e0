// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"strings"
	"testing"
	"time"

	"github.com/devops-wiz/terraform-provider-mythic/internal/mythic/mythictest"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearMythicEnv isolates a test from MYTHIC_* variables of the caller.
func clearMythicEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{envServerURL, envServerURLAlias, envSSL, envAPIToken, envAccessToken, envSkipTLSVerify} {
		t.Setenv(k, "")
	}
}

func Test_deriveResolvedConfig_env_precedence_and_defaults(t *testing.T) {
	t.Run("server url canonical over alias; HCL overrides env", func(t *testing.T) {
		clearMythicEnv(t)
		t.Setenv(envServerURLAlias, "alias.mythic.local")
		t.Setenv(envServerURL, "canon.mythic.local:7443")

		rc := deriveResolvedConfig(MythicProviderModel{ServerURL: types.StringNull()})
		if rc.serverURL != "canon.mythic.local:7443" {
			t.Fatalf("expected canonical server url, got %q", rc.serverURL)
		}

		rc = deriveResolvedConfig(MythicProviderModel{ServerURL: types.StringValue("hcl.mythic.local")})
		if rc.serverURL != "hcl.mythic.local" {
			t.Fatalf("expected HCL server url, got %q", rc.serverURL)
		}

		t.Setenv(envServerURL, "")
		rc = deriveResolvedConfig(MythicProviderModel{ServerURL: types.StringNull()})
		if rc.serverURL != "alias.mythic.local" {
			t.Fatalf("expected alias server url, got %q", rc.serverURL)
		}
	})

	t.Run("credentials from env; defaults applied", func(t *testing.T) {
		clearMythicEnv(t)
		t.Setenv(envAPIToken, mythictest.OpaqueToken)
		t.Setenv(envAccessToken, " "+mythictest.JWTUser42+" ")

		rc := deriveResolvedConfig(MythicProviderModel{})
		assert.Equal(t, mythictest.OpaqueToken, rc.apiToken)
		assert.Equal(t, mythictest.JWTUser42, rc.accessToken, "whitespace must be trimmed")
		assert.Equal(t, defaultSSL, rc.ssl)
		assert.Equal(t, defaultSkipTLSVerify, rc.skipTLSVerify)
		assert.Equal(t, defaultHTTPTimeoutSeconds, rc.httpTimeoutSeconds)
		assert.Equal(t, defaultRetryOn4295xx, rc.retryOn4295xx)
		assert.Equal(t, defaultRetryMaxAttempts, rc.retryMaxAttempts)
		assert.Equal(t, defaultRetryInitialBackoffMs, rc.retryInitialBackoffMs)
		assert.Equal(t, defaultRetryMaxBackoffMs, rc.retryMaxBackoffMs)
		assert.Equal(t, defaultVerifyIdentity, rc.verifyIdentity)
	})

	t.Run("bool env parsing", func(t *testing.T) {
		clearMythicEnv(t)
		t.Setenv(envSSL, "false")
		t.Setenv(envSkipTLSVerify, "1")
		rc := deriveResolvedConfig(MythicProviderModel{})
		assert.False(t, rc.ssl)
		assert.True(t, rc.skipTLSVerify)

		t.Setenv(envSSL, "not-a-bool")
		rc = deriveResolvedConfig(MythicProviderModel{})
		assert.True(t, rc.ssl, "unparseable env falls back to default")

		rc = deriveResolvedConfig(MythicProviderModel{SSL: types.BoolValue(false)})
		assert.False(t, rc.ssl, "HCL wins over env")
	})
}

func Test_resolvedConfig_clientConfig(t *testing.T) {
	rc := resolvedConfig{
		serverURL:             "mythic.local:7443",
		ssl:                   true,
		apiToken:              mythictest.OpaqueToken,
		skipTLSVerify:         true,
		httpTimeoutSeconds:    30,
		retryOn4295xx:         true,
		retryMaxAttempts:      3,
		retryInitialBackoffMs: 200,
		retryMaxBackoffMs:     1000,
	}
	cfg := rc.clientConfig("ua/1")
	assert.Equal(t, "mythic.local:7443", cfg.ServerURL)
	assert.True(t, cfg.SSL)
	assert.Equal(t, mythictest.OpaqueToken, cfg.APIToken)
	assert.Empty(t, cfg.AccessToken)
	assert.True(t, cfg.SkipTLSVerify)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, "ua/1", cfg.UserAgent)
	require.NoError(t, cfg.Validate())
}

func Test_validateBase(t *testing.T) {
	for _, tt := range []struct {
		url     string
		wantErr bool
	}{
		{"", true},
		{"https://", true},
		{"http:///", true},
		{"mythic.local", false},
		{"https://mythic.local:7443", false},
		{"HTTPS://", true},
		{"HTTPS://mythic.local", false},
		{"mythic.local?x=1", true},
		{"mythic .local", true},
	} {
		errs := validateBase(resolvedConfig{serverURL: tt.url})
		if tt.wantErr {
			require.NotEmptyf(t, errs, "expected error for %q", tt.url)
			assert.Equal(t, attrServerURL, errs[0].attr)
		} else {
			assert.Emptyf(t, errs, "unexpected error for %q", tt.url)
		}
	}
}

func Test_validateHTTP(t *testing.T) {
	for _, tt := range []struct {
		in      int
		wantErr bool
	}{
		{0, true}, {1, false}, {600, false}, {601, true},
	} {
		rc := resolvedConfig{httpTimeoutSeconds: tt.in}
		errs := validateHTTP(rc)
		if tt.wantErr && len(errs) == 0 {
			t.Fatalf("expected error for %d", tt.in)
		}
		if !tt.wantErr && len(errs) != 0 {
			t.Fatalf("expected no error for %d", tt.in)
		}
	}
}

func Test_validateRetry(t *testing.T) {
	t.Run("disabled returns no errors", func(t *testing.T) {
		rc := resolvedConfig{retryOn4295xx: false}
		errs := validateRetry(rc)
		if len(errs) != 0 {
			t.Fatalf("expected no errors when retries disabled, got %v", errs)
		}
	})

	t.Run("bounds and ordering", func(t *testing.T) {
		rc := resolvedConfig{retryOn4295xx: true, retryMaxAttempts: 0, retryInitialBackoffMs: 50, retryMaxBackoffMs: 40}
		errs := validateRetry(rc)
		if len(errs) < 3 {
			t.Fatalf("expected multiple errors, got %v", errs)
		}
		rc = resolvedConfig{retryOn4295xx: true, retryMaxAttempts: 3, retryInitialBackoffMs: 200, retryMaxBackoffMs: 1000}
		errs = validateRetry(rc)
		if len(errs) != 0 {
			t.Fatalf("expected no errors with valid retry settings, got %v", errs)
		}
	})
}

func Test_validateAuth(t *testing.T) {
	t.Run("missing creds", func(t *testing.T) {
		errs := validateAuth(resolvedConfig{})
		require.Len(t, errs, 2)
		assert.Equal(t, attrAPIToken, errs[0].attr)
		assert.Equal(t, attrAccessToken, errs[1].attr)
	})

	t.Run("either credential is enough", func(t *testing.T) {
		assert.Empty(t, validateAuth(resolvedConfig{apiToken: mythictest.OpaqueToken}))
		assert.Empty(t, validateAuth(resolvedConfig{accessToken: mythictest.JWTUser42}))
	})

	t.Run("both credentials are accepted", func(t *testing.T) {
		assert.Empty(t, validateAuth(resolvedConfig{apiToken: mythictest.OpaqueToken, accessToken: mythictest.JWTUser42}))
	})
}

func Test_configWarnings(t *testing.T) {
	warns := configWarnings(resolvedConfig{apiToken: mythictest.OpaqueToken, accessToken: mythictest.JWTUser42})
	require.Len(t, warns, 1)
	assert.Equal(t, attrAccessToken, warns[0].attr)
	assert.Contains(t, warns[0].detail, "fallback")

	warns = configWarnings(resolvedConfig{apiToken: mythictest.JWTExpired, accessToken: mythictest.JWTUser42})
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].detail, "replaces access_token")

	warns = configWarnings(resolvedConfig{accessToken: mythictest.JWTUser42, skipTLSVerify: true})
	require.Len(t, warns, 1)
	assert.Equal(t, attrSkipTLSVerify, warns[0].attr)

	assert.Empty(t, configWarnings(resolvedConfig{apiToken: mythictest.OpaqueToken}))
}

func Test_validateResolvedConfig_integration_and_redaction(t *testing.T) {
	rc := resolvedConfig{
		serverURL:          "", // force base error to stop further checks
		apiToken:           "super-secret-token",
		accessToken:        mythictest.JWTUser42,
		httpTimeoutSeconds: 0,
	}
	errs := validateResolvedConfig(rc)
	require.Len(t, errs, 1, "base errors must short-circuit the remaining sections")
	assert.Equal(t, attrServerURL, errs[0].attr)

	leaky := validationErr{attr: attrAPIToken, summary: "bad token super-secret-token", detail: "got " + mythictest.JWTUser42}
	clean := sanitizeValidationError(leaky, rc)
	for _, s := range []string{clean.summary, clean.detail} {
		assert.False(t, strings.Contains(s, "super-secret-token") || strings.Contains(s, mythictest.JWTUser42), "validation error leaked secret: %q", s)
	}
	assert.Contains(t, clean.summary, "[REDACTED]")
}

func Test_parseOperationTimeouts(t *testing.T) {
	res, errs := parseOperationTimeouts(nil)
	assert.Empty(t, errs)
	assert.Zero(t, res.Read)

	res, errs = parseOperationTimeouts(&OperationTimeoutsModel{Read: types.StringValue("45s")})
	assert.Empty(t, errs)
	assert.Equal(t, 45*time.Second, res.Read)

	for _, bad := range []string{"soon", "0s", "-1m"} {
		_, errs = parseOperationTimeouts(&OperationTimeoutsModel{Read: types.StringValue(bad)})
		require.Lenf(t, errs, 1, "expected error for %q", bad)
		assert.Equal(t, "read", errs[0].attr)
	}
}
