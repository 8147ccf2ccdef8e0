// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythictest

// Credential fixtures. The JWTs are unsigned test values; their signature
// segment is valid base64url but verifies against nothing.
const (
	// OpaqueToken is a long-lived API token that does not look like a JWT.
	OpaqueToken = "mythic-api-0f4c2b7e9d"

	// JWTUser42 carries sub=operator, user_id=42 and exp=2100-01-01.
	JWTUser42 = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiJvcGVyYXRvciIsInVzZXJfaWQiOjQyLCJleHAiOjQxMDI0NDQ4MDB9." +
		"c2lnbmF0dXJl"

	// JWTExpired carries sub=operator, user_id=7 and exp=2000-01-01.
	JWTExpired = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiJvcGVyYXRvciIsInVzZXJfaWQiOjcsImV4cCI6OTQ2Njg0ODAwfQ." +
		"c2lnbmF0dXJl"

	// JWT42ExpiresAt is the RFC 3339 form of JWTUser42's exp claim.
	JWT42ExpiresAt = "2100-01-01T00:00:00Z"
)
