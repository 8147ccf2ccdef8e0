// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"
	"strings"
	"time"

	"github.com/devops-wiz/terraform-provider-mythic/internal/mythic"
)

// configuration derivation (unified) to avoid duplicated parsing across sections
func deriveResolvedConfig(data MythicProviderModel) resolvedConfig {
	// Base
	serverURL := strings.TrimSpace(readStringWithAliases(data.ServerURL, envServerURL, envServerURLAlias))
	ssl := readBoolEnvDefault(data.SSL, envSSL, defaultSSL)

	// Auth
	apiToken := strings.TrimSpace(readString(data.APIToken, envAPIToken))
	accessToken := strings.TrimSpace(readString(data.AccessToken, envAccessToken))

	// HTTP
	skipTLSVerify := readBoolEnvDefault(data.SkipTLSVerify, envSkipTLSVerify, defaultSkipTLSVerify)
	httpTimeoutSeconds := readInt64Default(data.HTTPTimeoutSeconds, defaultHTTPTimeoutSeconds)

	// Retry
	retryOn4295xx := readBoolDefault(data.RetryOn4295xx, defaultRetryOn4295xx)
	retryMaxAttempts := readInt64Default(data.RetryMaxAttempts, defaultRetryMaxAttempts)
	retryInitialBackoffMs := readInt64Default(data.RetryInitialBackoffMs, defaultRetryInitialBackoffMs)
	retryMaxBackoffMs := readInt64Default(data.RetryMaxBackoffMs, defaultRetryMaxBackoffMs)

	return resolvedConfig{
		serverURL:             serverURL,
		ssl:                   ssl,
		apiToken:              apiToken,
		accessToken:           accessToken,
		skipTLSVerify:         skipTLSVerify,
		httpTimeoutSeconds:    httpTimeoutSeconds,
		retryOn4295xx:         retryOn4295xx,
		retryMaxAttempts:      retryMaxAttempts,
		retryInitialBackoffMs: retryInitialBackoffMs,
		retryMaxBackoffMs:     retryMaxBackoffMs,
		verifyIdentity:        readBoolDefault(data.VerifyIdentity, defaultVerifyIdentity),
	}
}

// clientConfig maps the resolved provider configuration to the client configuration.
func (rc resolvedConfig) clientConfig(userAgent string) mythic.Config {
	return mythic.Config{
		ServerURL:     rc.serverURL,
		SSL:           rc.ssl,
		APIToken:      rc.apiToken,
		AccessToken:   rc.accessToken,
		Timeout:       time.Duration(rc.httpTimeoutSeconds) * time.Second,
		SkipTLSVerify: rc.skipTLSVerify,
		Retry: mythic.RetryConfig{
			Enabled:          rc.retryOn4295xx,
			MaxAttempts:      rc.retryMaxAttempts,
			InitialBackoffMs: rc.retryInitialBackoffMs,
			MaxBackoffMs:     rc.retryMaxBackoffMs,
		},
		UserAgent: userAgent,
	}
}

// validation per-section
func validateBase(rc resolvedConfig) []validationErr {
	if rc.serverURL == "" {
		return []validationErr{{attr: attrServerURL, summary: "Missing Server URL Configuration.", detail: "Provide 'server_url' or set MYTHIC_SERVER_URL (or MYTHIC_URL alias) environment variable."}}
	}
	host := mythic.StripScheme(rc.serverURL)
	if strings.Trim(host, "/") == "" {
		return []validationErr{{attr: attrServerURL, summary: "Invalid Server URL Configuration.", detail: "server_url must include a host, e.g. 'mythic.example.com:7443'."}}
	}
	if strings.ContainsAny(host, " \t\r\n?#") {
		return []validationErr{{attr: attrServerURL, summary: "Invalid Server URL Configuration.", detail: "server_url must be a host with an optional port; whitespace, query strings and fragments are not allowed."}}
	}
	return nil
}

func validateHTTP(rc resolvedConfig) []validationErr {
	if rc.httpTimeoutSeconds < 1 || rc.httpTimeoutSeconds > 600 {
		return []validationErr{{attr: attrHTTPTimeoutSeconds, summary: "Invalid HTTP Timeout Configuration.", detail: fmt.Sprintf("http_timeout_seconds must be between 1 and 600 seconds; got %d", rc.httpTimeoutSeconds)}}
	}
	return nil
}

func validateRetry(rc resolvedConfig) []validationErr {
	if !rc.retryOn4295xx {
		return nil
	}
	var errs []validationErr
	if rc.retryMaxAttempts < 1 || rc.retryMaxAttempts > 10 {
		errs = append(errs, validationErr{attr: attrRetryMaxAttempts, summary: "Invalid Retry Attempts Configuration.", detail: fmt.Sprintf("retry_max_attempts must be between 1 and 10; got %d", rc.retryMaxAttempts)})
	}
	if rc.retryInitialBackoffMs < 100 || rc.retryInitialBackoffMs > 600000 {
		errs = append(errs, validationErr{attr: attrRetryInitialBackoff, summary: "Invalid Retry Backoff Configuration.", detail: fmt.Sprintf("retry_initial_backoff_ms must be between 100 and 600000 milliseconds; got %d", rc.retryInitialBackoffMs)})
	}
	if rc.retryMaxBackoffMs < 100 || rc.retryMaxBackoffMs > 600000 {
		errs = append(errs, validationErr{attr: attrRetryMaxBackoff, summary: "Invalid Retry Backoff Configuration.", detail: fmt.Sprintf("retry_max_backoff_ms must be between 100 and 600000 milliseconds; got %d", rc.retryMaxBackoffMs)})
	}
	if rc.retryInitialBackoffMs > rc.retryMaxBackoffMs {
		errs = append(errs, validationErr{attr: attrRetryInitialBackoff, summary: "Invalid Retry Backoff Configuration.", detail: "retry_initial_backoff_ms must be less than or equal to retry_max_backoff_ms."})
	}
	return errs
}

func validateAuth(rc resolvedConfig) []validationErr {
	if rc.apiToken == "" && rc.accessToken == "" {
		return []validationErr{
			{attr: attrAPIToken, summary: "Missing credentials.", detail: "Provide 'api_token' or set MYTHIC_API_TOKEN. A JWT placed here is detected and sent as a bearer token."},
			{attr: attrAccessToken, summary: "Missing credentials.", detail: "Provide 'access_token' or set MYTHIC_ACCESS_TOKEN to authenticate with a bearer token."},
		}
	}
	return nil
}

func validateResolvedConfig(rc resolvedConfig) []validationErr {
	var all []validationErr
	all = append(all, validateBase(rc)...)
	if len(all) == 0 { // if base fails, skip noisy follow-ups
		all = append(all, validateHTTP(rc)...)
		all = append(all, validateRetry(rc)...)
		all = append(all, validateAuth(rc)...)
	}

	// Before returning, sanitize any secrets from messages to prevent leakage.
	for i := range all {
		all[i] = sanitizeValidationError(all[i], rc)
	}
	return all
}

// configWarnings reports accepted but questionable settings.
func configWarnings(rc resolvedConfig) []validationErr {
	var warns []validationErr
	if rc.apiToken != "" && rc.accessToken != "" {
		detail := "access_token is sent as the bearer credential; api_token is only tried as a bearer fallback when the server rejects it."
		if mythic.LooksLikeJWT(rc.apiToken) {
			detail = "api_token holds a JWT, which replaces access_token as the bearer credential. Remove one of the two attributes."
		}
		warns = append(warns, validationErr{attr: attrAccessToken, summary: "Both api_token and access_token are set.", detail: detail})
	}
	if rc.skipTLSVerify {
		warns = append(warns, validationErr{attr: attrSkipTLSVerify, summary: "TLS certificate verification is disabled.", detail: "skip_tls_verify accepts any server certificate. Use it only with self-signed lab servers."})
	}
	for i := range warns {
		warns[i] = sanitizeValidationError(warns[i], rc)
	}
	return warns
}
