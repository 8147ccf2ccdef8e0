// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Log field keys whose values are masked by WithMaskedCredentials.
const (
	logFieldAPIToken    = "api_token"
	logFieldAccessToken = "access_token"
)

// Client is a Mythic API client. Its configuration is normalized once, in
// NewClient, and never changes afterwards.
type Client struct {
	config   Config
	session  *session
	resolver *Resolver

	mu                 sync.RWMutex
	identity           *Identity
	currentOperationID *int64
}

// NewClient validates and normalizes cfg, then builds the HTTP session. The
// credential classification runs before the cookie jar or any connection is
// created, so every request uses the normalized credentials.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, WrapError("NewClient", err, "invalid configuration")
	}

	cfg = Normalize(cfg)

	s, err := newSession(cfg)
	if err != nil {
		return nil, WrapError("NewClient", err, "failed to build HTTP client")
	}

	return &Client{
		config:   cfg,
		session:  s,
		resolver: NewResolver(s.identity, cfg.UserAgent),
	}, nil
}

// Config returns a copy of the normalized configuration.
func (c *Client) Config() Config { return c.config }

// AuthScheme returns the primary header scheme applied to every request.
func (c *Client) AuthScheme() HeaderScheme { return PrimaryScheme(c.config) }

// HTTPClient returns the session HTTP client for REST requests. It applies
// the retry policy; identity resolution does not go through it.
func (c *Client) HTTPClient() *http.Client { return c.session.rest }

// WithMaskedCredentials returns ctx with log masking for the credential
// values of this client.
func (c *Client) WithMaskedCredentials(ctx context.Context) context.Context {
	ctx = tflog.MaskFieldValuesWithFieldKeys(ctx, logFieldAPIToken, logFieldAccessToken)
	var secrets []string
	if c.config.APIToken != "" {
		secrets = append(secrets, c.config.APIToken)
	}
	if c.config.AccessToken != "" {
		secrets = append(secrets, c.config.AccessToken)
	}
	if len(secrets) > 0 {
		ctx = tflog.MaskAllFieldValuesStrings(ctx, secrets...)
		ctx = tflog.MaskMessageStrings(ctx, secrets...)
	}
	return ctx
}

// ResolveIdentity verifies the configured credential against /me. On success
// the identity is cached on the client and, when no operation has been
// selected yet, the operation reported by the server is selected.
func (c *Client) ResolveIdentity(ctx context.Context) (Identity, error) {
	ctx = c.WithMaskedCredentials(ctx)
	id, err := c.resolver.ResolveIdentity(ctx, c.config)
	if err != nil {
		return Identity{}, err
	}

	c.mu.Lock()
	c.identity = &id
	if id.CurrentOperationID > 0 && c.currentOperationID == nil {
		op := id.CurrentOperationID
		c.currentOperationID = &op
	}
	c.mu.Unlock()
	return id, nil
}

// Identity returns the last resolved identity, if any.
func (c *Client) Identity() (Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identity == nil {
		return Identity{}, false
	}
	return *c.identity, true
}

// IsAuthenticated reports whether the client carries a credential. It does
// not contact the server; use ResolveIdentity for that.
func (c *Client) IsAuthenticated() bool {
	return c.config.HasCredentials()
}

// SetCurrentOperation selects the operation used by subsequent API calls.
func (c *Client) SetCurrentOperation(operationID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentOperationID = &operationID
}

// CurrentOperation returns the selected operation ID, or nil.
func (c *Client) CurrentOperation() *int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.currentOperationID == nil {
		return nil
	}
	id := *c.currentOperationID
	return &id
}

// NewRequest builds a REST request for path with the primary scheme applied.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if !c.IsAuthenticated() {
		return nil, WrapError("NewRequest", ErrNotAuthenticated, "no credential configured")
	}
	req, err := http.NewRequestWithContext(ctx, method, RESTURL(c.config, path), body)
	if err != nil {
		return nil, wrapKind("NewRequest", ErrRequestConstruction, err, "failed to create request")
	}
	c.AuthScheme().Apply(req.Header)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	return req, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.session.identity.CloseIdleConnections()
	return nil
}
