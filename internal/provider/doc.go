// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package provider implements the Terraform Provider for Mythic.
//
// Highlights:
//   - Auth: api_token (sent in the apitoken header) or access_token (sent as a
//     bearer token). JWT-shaped api_token values are sent as bearer tokens, and
//     a rejected apitoken is retried once as a bearer token.
//   - Verification: Configure resolves the authenticated operator via /me unless
//     verify_identity is false; failures surface as redacted diagnostics.
//   - Timeouts & retries: configurable HTTP timeout and capped exponential backoff
//     on 429/5xx; honors Retry-After. Transport errors are never retried.
//   - Data sources: mythic_current_operator exposes the resolved identity.
//
// Environment variables: MYTHIC_SERVER_URL (alias MYTHIC_URL), MYTHIC_SSL,
// MYTHIC_API_TOKEN, MYTHIC_ACCESS_TOKEN and MYTHIC_SKIP_TLS_VERIFY.
package provider
