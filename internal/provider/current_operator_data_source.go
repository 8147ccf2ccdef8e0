// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"strconv"

	"github.com/devops-wiz/terraform-provider-mythic/internal/mythic"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var _ datasource.DataSource = (*currentOperatorDataSource)(nil)
var _ datasource.DataSourceWithConfigure = (*currentOperatorDataSource)(nil)

// NewCurrentOperatorDataSource returns the Terraform data source implementation for mythic_current_operator.
func NewCurrentOperatorDataSource() datasource.DataSource { return &currentOperatorDataSource{} }

type currentOperatorDataSource struct {
	baseMythic
}

type currentOperatorDataSourceModel struct {
	ID                 types.String `tfsdk:"id"`
	UserID             types.Int64  `tfsdk:"user_id"`
	Username           types.String `tfsdk:"username"`
	CurrentOperationID types.Int64  `tfsdk:"current_operation_id"`
	AuthScheme         types.String `tfsdk:"auth_scheme"`
	UsedFallback       types.Bool   `tfsdk:"used_fallback"`
	TokenExpiresAt     types.String `tfsdk:"token_expires_at"`
}

func (d *currentOperatorDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_current_operator"
}

func (d *currentOperatorDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "The operator the provider credential authenticates as, resolved once per provider session from the server's `/me` endpoint.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "The operator user ID as a string.",
			},
			"user_id": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "The numeric operator user ID. Never zero.",
			},
			"username": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "The operator username, when the server reports it.",
			},
			"current_operation_id": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "The operation currently selected for the client, when known.",
			},
			"auth_scheme": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "The header scheme the server accepted: `apitoken` or `bearer`.",
			},
			"used_fallback": schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether the primary scheme was rejected and the bearer fallback was needed.",
			},
			"token_expires_at": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "RFC 3339 expiry of the bearer JWT, read without verifying its signature. Null for opaque tokens or JWTs without `exp`.",
			},
		},
	}
}

func (d *currentOperatorDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.configureFrom(req.ProviderData, "Data Source", &resp.Diagnostics)
}

func (d *currentOperatorDataSource) Read(ctx context.Context, _ datasource.ReadRequest, resp *datasource.ReadResponse) {
	ctx, cancel := withTimeout(ctx, d.providerTimeouts.Read)
	defer cancel()

	data, diags := d.readCurrentOperator(ctx)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	if diags := resp.State.Set(ctx, &data); diags.HasError() {
		resp.Diagnostics.AddError(
			"Failed to set data source state",
			"An unexpected error occurred while writing computed data to Terraform state. See diagnostics for details.",
		)
		resp.Diagnostics.Append(diags...)
		return
	}
}

// readCurrentOperator maps the identity negotiated by the client to the
// model. The negotiation runs here only when Configure skipped it
// (verify_identity = false); afterwards the cached identity is served.
func (d *currentOperatorDataSource) readCurrentOperator(ctx context.Context) (currentOperatorDataSourceModel, diag.Diagnostics) {
	var diags diag.Diagnostics
	if d.client == nil {
		diags.AddError("Unconfigured Mythic client",
			"The provider has not been configured. Ensure the provider block is valid and that verify_identity did not fail.")
		return currentOperatorDataSourceModel{}, diags
	}

	id, ok := d.client.Identity()
	if !ok {
		var err error
		id, err = d.client.ResolveIdentity(ctx)
		if !EnsureSuccessOrDiagWithOptions(ctx, "read current operator (me)", err, &diags, &EnsureSuccessOrDiagOptions{IncludeBodySnippet: true}) {
			return currentOperatorDataSourceModel{}, diags
		}
	}

	return currentOperatorToState(id, d.client.CurrentOperation(), d.client.Config()), diags
}

// currentOperatorToState maps an identity to the data source model. The
// selected operation of the client wins over the one reported by /me.
func currentOperatorToState(id mythic.Identity, currentOperation *int64, cfg mythic.Config) currentOperatorDataSourceModel {
	m := currentOperatorDataSourceModel{
		ID:                 types.StringValue(strconv.FormatInt(id.UserID, 10)),
		UserID:             types.Int64Value(id.UserID),
		Username:           stringOrNull(id.Username),
		CurrentOperationID: int64OrNull(id.CurrentOperationID),
		AuthScheme:         types.StringValue(id.Scheme.String()),
		UsedFallback:       boolValue(id.UsedFallback),
		TokenExpiresAt:     types.StringNull(),
	}
	if currentOperation != nil {
		m.CurrentOperationID = int64OrNull(*currentOperation)
	}
	if id.Scheme == mythic.SchemeBearer && !id.UsedFallback {
		if claims, ok := mythic.InspectBearer(cfg.AccessToken); ok {
			m.TokenExpiresAt = timeOrNull(claims.ExpiresAt)
		}
	}
	return m
}
