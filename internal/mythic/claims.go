// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BearerClaims is the unverified view of a JWT bearer credential. It is only
// used for diagnostics; the server remains the sole judge of validity.
type BearerClaims struct {
	Subject   string
	Issuer    string
	UserID    int64
	ExpiresAt time.Time
}

// Expired reports whether the token carries an exp claim in the past.
func (c BearerClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// InspectBearer decodes the claims of a JWT without verifying its signature.
// ok is false when token is not a decodable JWT.
func InspectBearer(token string) (claims BearerClaims, ok bool) {
	if !LooksLikeJWT(token) {
		return BearerClaims{}, false
	}
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return BearerClaims{}, false
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	claims.Subject, _ = mc.GetSubject()
	claims.Issuer, _ = mc.GetIssuer()
	if uid, ok := mc["user_id"].(float64); ok {
		claims.UserID = int64(uid)
	}
	return claims, true
}
