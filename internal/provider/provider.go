// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"time"

	"github.com/devops-wiz/terraform-provider-mythic/internal/mythic"
	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure MythicProvider satisfies various provider interfaces.
var _ provider.Provider = &MythicProvider{}
var _ provider.ProviderWithValidateConfig = &MythicProvider{}

// MythicProvider defines the provider implementation.
type MythicProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
	// client is the authenticated Mythic client.
	client *mythic.Client
	// providerTimeouts holds per-operation deadlines.
	providerTimeouts opTimeouts
	// now is the clock used for token expiry checks.
	now func() time.Time
}

// MythicProviderModel describes the provider data model.
type MythicProviderModel struct {
	// Base Configuration
	ServerURL types.String `tfsdk:"server_url"`
	SSL       types.Bool   `tfsdk:"ssl"`

	// Credentials
	APIToken    types.String `tfsdk:"api_token"`
	AccessToken types.String `tfsdk:"access_token"`

	// HTTP
	SkipTLSVerify      types.Bool  `tfsdk:"skip_tls_verify"`
	HTTPTimeoutSeconds types.Int64 `tfsdk:"http_timeout_seconds"`

	// Retry
	RetryOn4295xx         types.Bool  `tfsdk:"retry_on_429_5xx"`
	RetryMaxAttempts      types.Int64 `tfsdk:"retry_max_attempts"`
	RetryInitialBackoffMs types.Int64 `tfsdk:"retry_initial_backoff_ms"`
	RetryMaxBackoffMs     types.Int64 `tfsdk:"retry_max_backoff_ms"`

	VerifyIdentity    types.Bool              `tfsdk:"verify_identity"`
	OperationTimeouts *OperationTimeoutsModel `tfsdk:"operation_timeouts"`
}

func (p *MythicProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "mythic"
	resp.Version = p.version
}

func (p *MythicProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Mythic provider. Authenticates against a Mythic server with an API token or a JWT bearer token and exposes the authenticated operator.",
		Attributes: map[string]schema.Attribute{
			// Base Configuration
			attrServerURL: schema.StringAttribute{
				MarkdownDescription: "Mythic server address with optional port, e.g. `mythic.example.com:7443`. A leading `http://` or `https://` is ignored; `ssl` selects the scheme. May be set with `MYTHIC_SERVER_URL` (alias `MYTHIC_URL`).",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			attrSSL: schema.BoolAttribute{
				MarkdownDescription: "Use HTTPS. Defaults to `true`. May be set with `MYTHIC_SSL`.",
				Optional:            true,
			},

			// Credentials
			attrAPIToken: schema.StringAttribute{
				MarkdownDescription: "Long-lived API token, sent in the `apitoken` header. A JWT placed here is detected and sent as a bearer token instead. If the server rejects the header, the token is retried once as `Authorization: Bearer`. May be set with `MYTHIC_API_TOKEN`.",
				Optional:            true,
				Sensitive:           true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			attrAccessToken: schema.StringAttribute{
				MarkdownDescription: "Bearer token (JWT), sent as `Authorization: Bearer`. Takes precedence over `api_token`. May be set with `MYTHIC_ACCESS_TOKEN`.",
				Optional:            true,
				Sensitive:           true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},

			// HTTP
			attrSkipTLSVerify: schema.BoolAttribute{
				MarkdownDescription: "Skip TLS certificate verification, for self-signed servers. Defaults to `false`. May be set with `MYTHIC_SKIP_TLS_VERIFY`.",
				Optional:            true,
			},
			attrHTTPTimeoutSeconds: schema.Int64Attribute{
				MarkdownDescription: "Timeout of a single HTTP request in seconds. Defaults to `120`.",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.Between(1, 600),
				},
			},

			// Retry
			attrRetryOn4295xx: schema.BoolAttribute{
				MarkdownDescription: "Retry requests answered with 429 or 5xx. Transport errors are never retried. Defaults to `true`.",
				Optional:            true,
			},
			attrRetryMaxAttempts: schema.Int64Attribute{
				MarkdownDescription: "Maximum retries per request. Defaults to `4`.",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.Between(1, 10),
				},
			},
			attrRetryInitialBackoff: schema.Int64Attribute{
				MarkdownDescription: "Initial retry backoff in milliseconds. Defaults to `500`.",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.Between(100, 600000),
				},
			},
			attrRetryMaxBackoff: schema.Int64Attribute{
				MarkdownDescription: "Maximum retry backoff in milliseconds. Defaults to `5000`.",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.Between(100, 600000),
				},
			},

			attrVerifyIdentity: schema.BoolAttribute{
				MarkdownDescription: "Call `/me` during provider configuration and fail early when no credential scheme is accepted. Defaults to `true`.",
				Optional:            true,
			},
			attrOperationTimeouts: schema.SingleNestedAttribute{
				MarkdownDescription: "Per-operation deadlines, as Go durations such as `30s` or `2m`.",
				Optional:            true,
				Attributes: map[string]schema.Attribute{
					"read": schema.StringAttribute{
						MarkdownDescription: "Deadline for data source reads.",
						Optional:            true,
					},
				},
			},
		},
	}
}

func (p *MythicProvider) ValidateConfig(ctx context.Context, req provider.ValidateConfigRequest, resp *provider.ValidateConfigResponse) {
	var data MythicProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Base and auth checks need env defaults and possibly unknown values; they run in Configure.
	rc := deriveResolvedConfig(data)
	var errs []validationErr
	errs = append(errs, validateHTTP(rc)...)
	errs = append(errs, validateRetry(rc)...)
	for i := range errs {
		errs[i] = sanitizeValidationError(errs[i], rc)
	}
	addValidationErrors(&resp.Diagnostics, path.Empty(), errs)

	_, terrs := parseOperationTimeouts(data.OperationTimeouts)
	addValidationErrors(&resp.Diagnostics, path.Root(attrOperationTimeouts), terrs)
}

func (p *MythicProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data MythicProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if !p.configure(ctx, data, &resp.Diagnostics) {
		return
	}

	resp.ResourceData = p
	resp.DataSourceData = p
}

// configure bootstraps the client from the provider model: resolve and
// validate the configuration, build the client (classifying the credential
// first) and, unless disabled, prove the credential against /me.
func (p *MythicProvider) configure(ctx context.Context, data MythicProviderModel, diags *diag.Diagnostics) bool {
	if data.ServerURL.IsUnknown() || data.APIToken.IsUnknown() || data.AccessToken.IsUnknown() {
		diags.AddError("Unknown provider configuration.",
			"server_url, api_token and access_token must be known during provider configuration. Avoid deriving them from resources created in the same apply.")
		return false
	}

	rc := deriveResolvedConfig(data)
	if errs := validateResolvedConfig(rc); len(errs) > 0 {
		addValidationErrors(diags, path.Empty(), errs)
		return false
	}
	for _, w := range configWarnings(rc) {
		diags.AddAttributeWarning(path.Root(w.attr), w.summary, w.detail)
	}

	timeouts, terrs := parseOperationTimeouts(data.OperationTimeouts)
	if len(terrs) > 0 {
		addValidationErrors(diags, path.Root(attrOperationTimeouts), terrs)
		return false
	}

	client, err := p.initMythicClient(rc)
	if !EnsureSuccessOrDiag(ctx, "create client", err, diags) {
		return false
	}
	ctx = client.WithMaskedCredentials(ctx)
	tflog.Debug(ctx, "mythic client created", map[string]interface{}{
		"server_url": rc.serverURL,
		"ssl":        rc.ssl,
		"scheme":     client.AuthScheme().String(),
	})
	logSessionHeaders(ctx, client)

	now := time.Now
	if p.now != nil {
		now = p.now
	}
	bearerWarnings(ctx, client.Config(), now(), diags)

	if rc.verifyIdentity && !p.testConnection(ctx, client, diags) {
		_ = client.Close()
		return false
	}

	p.client = client
	p.providerTimeouts = timeouts
	return true
}

// addValidationErrors maps validation errors to diagnostics; attr names are
// resolved below base.
func addValidationErrors(diags *diag.Diagnostics, base path.Path, errs []validationErr) {
	for _, e := range errs {
		if e.attr == "" {
			diags.AddError(e.summary, e.detail)
			continue
		}
		p := path.Root(e.attr)
		if len(base.Steps()) > 0 {
			p = base.AtName(e.attr)
		}
		diags.AddAttributeError(p, e.summary, e.detail)
	}
}

func (p *MythicProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{}
}

func (p *MythicProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewCurrentOperatorDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &MythicProvider{
			version: version,
		}
	}
}
