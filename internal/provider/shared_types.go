// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"

	"github.com/devops-wiz/terraform-provider-mythic/internal/mythic"
	"github.com/hashicorp/terraform-plugin-framework/diag"
)

// baseMythic carries the configured client into data sources.
type baseMythic struct {
	client           *mythic.Client
	providerTimeouts opTimeouts
}

// configureFrom copies the client out of provider data. kind names the
// caller in the error diagnostic ("Data Source" or "Resource").
func (b *baseMythic) configureFrom(providerData any, kind string, diags *diag.Diagnostics) {
	if providerData == nil {
		return
	}

	p, ok := providerData.(*MythicProvider)
	if !ok {
		diags.AddError(
			fmt.Sprintf("Unexpected %s Configure Type", kind),
			fmt.Sprintf("Expected *MythicProvider, got: %T. Please report this issue to the provider developers.", providerData),
		)
		return
	}

	b.client = p.client
	b.providerTimeouts = p.providerTimeouts
}
