// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import "net/http"

// Wire header names.
const (
	HeaderAPIToken      = "apitoken"
	HeaderAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
)

// SchemeKind identifies how a credential is presented on the wire.
type SchemeKind int

const (
	// SchemeNone sends no credential.
	SchemeNone SchemeKind = iota
	// SchemeAPIToken sends "apitoken: <token>".
	SchemeAPIToken
	// SchemeBearer sends "Authorization: Bearer <token>".
	SchemeBearer
)

func (k SchemeKind) String() string {
	switch k {
	case SchemeAPIToken:
		return "apitoken"
	case SchemeBearer:
		return "bearer"
	default:
		return "none"
	}
}

// HeaderScheme is the credential header of a single request. It carries at
// most one header; the zero value is SchemeNone.
type HeaderScheme struct {
	kind  SchemeKind
	token string
}

// APITokenScheme returns the scheme presenting token as an "apitoken" header.
func APITokenScheme(token string) HeaderScheme {
	return HeaderScheme{kind: SchemeAPIToken, token: token}
}

// BearerScheme returns the scheme presenting token as a bearer Authorization header.
func BearerScheme(token string) HeaderScheme {
	return HeaderScheme{kind: SchemeBearer, token: token}
}

// Kind returns the scheme kind.
func (s HeaderScheme) Kind() SchemeKind { return s.kind }

// Header returns the header name and value, or ok=false for SchemeNone.
func (s HeaderScheme) Header() (name, value string, ok bool) {
	switch s.kind {
	case SchemeAPIToken:
		return HeaderAPIToken, s.token, true
	case SchemeBearer:
		return HeaderAuthorization, bearerPrefix + s.token, true
	default:
		return "", "", false
	}
}

// Apply sets the scheme's header on h. SchemeNone leaves h untouched.
func (s HeaderScheme) Apply(h http.Header) {
	if name, value, ok := s.Header(); ok {
		h.Set(name, value)
	}
}

// String never includes the token.
func (s HeaderScheme) String() string { return s.kind.String() }

// PrimaryScheme derives the header used for every request from a normalized
// configuration: bearer when AccessToken is set, else apitoken when APIToken
// is set, else none.
func PrimaryScheme(cfg Config) HeaderScheme {
	switch {
	case cfg.AccessToken != "":
		return BearerScheme(cfg.AccessToken)
	case cfg.APIToken != "":
		return APITokenScheme(cfg.APIToken)
	default:
		return HeaderScheme{}
	}
}

// FallbackScheme returns the bearer presentation of a non-empty APIToken.
// It covers APIToken values the classifier failed to recognise as bearer
// credentials. After Normalize has moved a JWT out of APIToken there is no
// fallback.
func FallbackScheme(cfg Config) (HeaderScheme, bool) {
	if cfg.APIToken == "" {
		return HeaderScheme{}, false
	}
	return BearerScheme(cfg.APIToken), true
}
