// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import "strings"

// jwtMarker is the base64url encoding of `{"`, the start of every JWT header
// segment.
const jwtMarker = "eyJ"

// LooksLikeJWT reports whether token is structurally a JWT.
//
// This is a heuristic: it only checks the encoded header prefix. A bearer
// credential that does not start with the marker is a false negative and
// stays in APIToken; FallbackScheme exists to cover that case.
func LooksLikeJWT(token string) bool {
	return token != "" && strings.HasPrefix(token, jwtMarker)
}

// Normalize returns a copy of cfg in which a JWT-shaped APIToken has been
// moved into AccessToken and APIToken cleared. Any other configuration is
// returned unchanged. Normalize is idempotent: a cleared APIToken cannot
// match again.
//
// A JWT-shaped APIToken replaces an AccessToken that was also set.
func Normalize(cfg Config) Config {
	if LooksLikeJWT(cfg.APIToken) {
		cfg.AccessToken = cfg.APIToken
		cfg.APIToken = ""
	}
	return cfg
}
