// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"time"

	"github.com/hashicorp/terraform-plugin-framework/types"
)

// OperationTimeoutsModel is the provider-level operation_timeouts block.
type OperationTimeoutsModel struct {
	Read types.String `tfsdk:"read"`
}

type opTimeouts struct {
	Read time.Duration
}
