// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

// Centralized attribute names used in provider configuration schema and validation
const (
	attrServerURL           = "server_url"
	attrSSL                 = "ssl"
	attrAPIToken            = "api_token"
	attrAccessToken         = "access_token"
	attrSkipTLSVerify       = "skip_tls_verify"
	attrHTTPTimeoutSeconds  = "http_timeout_seconds"
	attrRetryOn4295xx       = "retry_on_429_5xx"
	attrRetryMaxAttempts    = "retry_max_attempts"
	attrRetryInitialBackoff = "retry_initial_backoff_ms"
	attrRetryMaxBackoff     = "retry_max_backoff_ms"
	attrVerifyIdentity      = "verify_identity"
	attrOperationTimeouts   = "operation_timeouts"
)

// Environment variables read when the matching attribute is not set in HCL.
const (
	envServerURL      = "MYTHIC_SERVER_URL"
	envServerURLAlias = "MYTHIC_URL"
	envSSL            = "MYTHIC_SSL"
	envAPIToken       = "MYTHIC_API_TOKEN"
	envAccessToken    = "MYTHIC_ACCESS_TOKEN"
	envSkipTLSVerify  = "MYTHIC_SKIP_TLS_VERIFY"
)

// Centralized provider defaults
const (
	defaultSSL                   = true
	defaultSkipTLSVerify         = false
	defaultHTTPTimeoutSeconds    = 120
	defaultRetryOn4295xx         = true
	defaultRetryMaxAttempts      = 4
	defaultRetryInitialBackoffMs = 500
	defaultRetryMaxBackoffMs     = 5000
	defaultVerifyIdentity        = true
)

const userAgentPrefix = "devops-wiz/terraform-provider-mythic"
