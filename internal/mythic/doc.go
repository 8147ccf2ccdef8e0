// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package mythic negotiates authentication with a Mythic server.
//
// A single credential field (Config.APIToken) may hold either a long-lived
// API token or a JWT, and the server only accepts each on its own header:
//
//   - API tokens: "apitoken: <token>"
//   - JWTs:       "Authorization: Bearer <token>"
//
// NewClient normalizes the configuration once: an APIToken that starts with
// the encoded JWT header marker is moved to AccessToken (see Normalize). The
// primary scheme for every request is derived from the normalized config by
// PrimaryScheme. Because the classification is a prefix heuristic,
// ResolveIdentity retries a rejected APIToken once as a bearer credential
// (FallbackScheme). Only a non-200 status triggers that fallback; transport,
// parse and cancellation errors end the resolution.
//
// Errors are *Error values wrapping one of the Err* kinds, so callers can
// use errors.Is. Rejections carry a *StatusError with the last status code
// and body.
package mythic
