// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/devops-wiz/terraform-provider-mythic/internal/mythic"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// initMythicClient creates the Mythic client with the provider user agent.
// Credential classification happens inside mythic.NewClient, before the
// HTTP session exists.
func (p *MythicProvider) initMythicClient(rc resolvedConfig) (*mythic.Client, error) {
	return mythic.NewClient(rc.clientConfig(fmt.Sprintf("%s/%s", userAgentPrefix, p.version)))
}

// logSessionHeaders logs the redacted headers every authenticated request of
// the session carries.
func logSessionHeaders(ctx context.Context, client *mythic.Client) {
	req, err := client.NewRequest(ctx, http.MethodGet, "/me", nil)
	if err != nil {
		tflog.Debug(ctx, "session headers unavailable", map[string]interface{}{"error": RedactSecrets(err.Error())})
		return
	}
	tflog.Debug(ctx, "session request template", map[string]interface{}{
		"request": RedactJoin([]string{req.Method, req.URL.String()}, " "),
		"headers": RedactHeaders(req.Header),
	})
}

// testConnection resolves the caller identity and appends diagnostics on failure.
func (p *MythicProvider) testConnection(ctx context.Context, client *mythic.Client, diags *diag.Diagnostics) bool {
	id, err := client.ResolveIdentity(ctx)
	if !EnsureSuccessOrDiagWithOptions(ctx, "authenticate (me)", err, diags, &EnsureSuccessOrDiagOptions{IncludeBodySnippet: true}) {
		return false
	}
	tflog.Info(ctx, "authenticated with Mythic", map[string]interface{}{
		"user_id":       id.UserID,
		"scheme":        id.Scheme.String(),
		"used_fallback": id.UsedFallback,
	})
	if id.UsedFallback {
		diags.AddAttributeWarning(path.Root(attrAPIToken), "Credential accepted only as a bearer token.",
			"The server rejected api_token in the apitoken header and accepted it as 'Authorization: Bearer'. Move the value to access_token to skip the rejected request.")
	}
	return true
}

// bearerWarnings inspects a JWT bearer credential without verifying it and
// warns when it is already expired.
func bearerWarnings(ctx context.Context, cfg mythic.Config, now time.Time, diags *diag.Diagnostics) {
	claims, ok := mythic.InspectBearer(cfg.AccessToken)
	if !ok {
		return
	}
	tflog.Debug(ctx, "bearer credential claims", map[string]interface{}{
		"subject":    claims.Subject,
		"expires_at": timeOrNull(claims.ExpiresAt).ValueString(),
	})
	if claims.Expired(now) {
		diags.AddAttributeWarning(path.Root(attrAccessToken), "Bearer token appears to be expired.",
			fmt.Sprintf("The JWT exp claim is %s. The server will likely reject it; issue a new token or use a long-lived API token.", claims.ExpiresAt.UTC().Format(time.RFC3339)))
	}
}
