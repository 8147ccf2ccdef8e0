// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// session is the HTTP state of one Client. Both clients share the cookie
// jar, the pooled transport and the timeout; only rest retries 429/5xx.
type session struct {
	rest     *http.Client
	identity *http.Client
}

// newSession builds the clients of one Client. The identity client never
// retries: credential negotiation is bounded by its scheme attempts.
func newSession(cfg Config) (*session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, WrapError("NewHTTPClient", err, "failed to create cookie jar")
	}

	transport := cleanhttp.DefaultPooledTransport()
	if cfg.SkipTLSVerify {
		transport.TLSClientConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: true, //nolint:gosec // opt-in for self-signed servers
		}
	}

	identity := &http.Client{Transport: transport, Timeout: cfg.Timeout, Jar: jar}
	if !cfg.Retry.Enabled {
		return &session{rest: identity, identity: identity}, nil
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: transport}
	rc.RetryMax = cfg.Retry.MaxAttempts
	rc.RetryWaitMin = time.Duration(cfg.Retry.InitialBackoffMs) * time.Millisecond
	rc.RetryWaitMax = time.Duration(cfg.Retry.MaxBackoffMs) * time.Millisecond
	rc.CheckRetry = retryStatusOnly
	// hand the final 429/5xx response back to the caller instead of an error
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.RequestLogHook = logRetryAttempt
	rc.Logger = nil
	rest := rc.StandardClient()
	rest.Timeout = cfg.Timeout
	rest.Jar = jar
	return &session{rest: rest, identity: identity}, nil
}

// NewHTTPClient constructs the session HTTP client for REST traffic: a cookie
// jar, a pooled transport honouring SkipTLSVerify and, when enabled, a retry
// policy for 429/5xx responses.
func NewHTTPClient(cfg Config) (*http.Client, error) {
	s, err := newSession(cfg)
	if err != nil {
		return nil, err
	}
	return s.rest, nil
}

// retryStatusOnly retries on 429 and 5xx responses. Transport errors and
// context errors are returned to the caller without another attempt.
func retryStatusOnly(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil || resp == nil {
		return false, nil
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500, nil
}

func logRetryAttempt(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}
	tflog.Debug(req.Context(), "retrying request", map[string]interface{}{
		"method":  req.Method,
		"path":    req.URL.Path,
		"attempt": attempt,
	})
}
