// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

const (
	opResolveIdentity = "ResolveIdentity"

	// HeaderRequestID correlates an attempt with server-side logs.
	HeaderRequestID = "X-Request-ID"
)

// Identity is the authenticated principal returned by the identity endpoint.
// UserID is never zero.
type Identity struct {
	UserID             int64
	Username           string
	CurrentOperationID int64

	// Scheme is the header scheme the server accepted.
	Scheme SchemeKind
	// UsedFallback is true when the primary scheme was rejected.
	UsedFallback bool
}

// meResponse is the subset of the /me payload the client understands. Only
// user_id is decoded strictly; the other fields are informational.
type meResponse struct {
	UserID             *int64          `json:"user_id"`
	Username           json.RawMessage `json:"username"`
	CurrentOperationID json.RawMessage `json:"current_operation_id"`
}

// lenient decodes an optional field, yielding the zero value when it is
// absent, null or of an unexpected type.
func lenient[T any](raw json.RawMessage) T {
	var v T
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &v)
	}
	return v
}

// attempt is one entry of the resolution plan.
type attempt struct {
	phase  string
	scheme HeaderScheme
}

// Resolver proves a credential works by calling the identity endpoint. It
// keeps no state between calls and is safe for concurrent use when its
// http.Client is.
type Resolver struct {
	http      *http.Client
	userAgent string
}

// NewResolver returns a Resolver sending requests through httpClient. A nil
// httpClient selects a fresh client without retries.
func NewResolver(httpClient *http.Client, userAgent string) *Resolver {
	if httpClient == nil {
		httpClient = cleanhttp.DefaultClient()
	}
	return &Resolver{http: httpClient, userAgent: userAgent}
}

// plan returns the ordered attempts for cfg: the primary scheme, then the
// bearer fallback when APIToken is still populated.
func plan(cfg Config) []attempt {
	attempts := []attempt{{phase: "primary", scheme: PrimaryScheme(cfg)}}
	if fb, ok := FallbackScheme(cfg); ok {
		attempts = append(attempts, attempt{phase: "fallback", scheme: fb})
	}
	return attempts
}

// ResolveIdentity calls GET /me with the primary scheme and, if the server
// answers with a non-200 status and a fallback exists, once more with the
// fallback scheme. cfg is expected to be normalized.
//
// Only a non-200 status moves on to the next attempt. Transport, read, parse
// and cancellation errors end the resolution immediately, as does a 200
// response without a usable user_id. When every attempt is rejected the
// error wraps a *StatusError with the last status and body.
func (r *Resolver) ResolveIdentity(ctx context.Context, cfg Config) (Identity, error) {
	if err := cfg.Validate(); err != nil {
		return Identity{}, WrapError(opResolveIdentity, err, "invalid configuration")
	}

	meURL := IdentityURL(cfg)
	attempts := plan(cfg)

	var last StatusError
	for i, a := range attempts {
		if err := ctx.Err(); err != nil {
			return Identity{}, wrapKind(opResolveIdentity, ErrCanceled, err, "resolution canceled")
		}

		requestID := uuid.NewString()
		logFields := map[string]interface{}{
			"phase":      a.phase,
			"scheme":     a.scheme.String(),
			"request_id": requestID,
		}
		tflog.Debug(ctx, "calling identity endpoint", logFields)

		status, body, err := r.do(ctx, meURL, a.scheme, requestID)
		if err != nil {
			return Identity{}, err
		}

		if status == http.StatusOK {
			id, err := parseIdentity(body)
			if err != nil {
				return Identity{}, err
			}
			id.Scheme = a.scheme.Kind()
			id.UsedFallback = i > 0
			if id.UsedFallback {
				tflog.Warn(ctx, "primary credential scheme was rejected; authenticated with bearer fallback", logFields)
			}
			return id, nil
		}

		logFields["status"] = status
		tflog.Debug(ctx, "identity endpoint rejected credential", logFields)
		last = StatusError{StatusCode: status, Body: string(body)}
	}

	return Identity{}, WrapError(opResolveIdentity, &last, "all credential schemes rejected")
}

// do performs a single GET and returns the status and full body.
func (r *Resolver) do(ctx context.Context, url string, scheme HeaderScheme, requestID string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, wrapKind(opResolveIdentity, ErrRequestConstruction, err, "failed to create /me request")
	}
	scheme.Apply(req.Header)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.http.Do(req)
	if err != nil {
		if isCanceled(ctx) {
			return 0, nil, wrapKind(opResolveIdentity, ErrCanceled, err, "/me request canceled")
		}
		return 0, nil, wrapKind(opResolveIdentity, ErrTransport, err, "failed to call /me endpoint")
	}
	defer resp.Body.Close() //nolint:errcheck // body close error not actionable

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isCanceled(ctx) {
			return 0, nil, wrapKind(opResolveIdentity, ErrCanceled, err, "/me read canceled")
		}
		return 0, nil, wrapKind(opResolveIdentity, ErrResponseRead, err, "failed to read /me response")
	}
	return resp.StatusCode, body, nil
}

func parseIdentity(body []byte) (Identity, error) {
	var me meResponse
	if err := json.Unmarshal(body, &me); err != nil {
		return Identity{}, wrapKind(opResolveIdentity, ErrResponseParse, err, "failed to parse /me response")
	}
	if me.UserID == nil || *me.UserID == 0 {
		return Identity{}, WrapError(opResolveIdentity, ErrInvalidResponse, "no user_id in /me response")
	}
	return Identity{
		UserID:             *me.UserID,
		Username:           lenient[string](me.Username),
		CurrentOperationID: lenient[int64](me.CurrentOperationID),
	}, nil
}

// isCanceled reports whether the caller's context ended the attempt. An
// http.Client timeout also surfaces as context.DeadlineExceeded but leaves
// ctx intact, so it stays a transport or read failure.
func isCanceled(ctx context.Context) bool {
	return ctx.Err() != nil
}
