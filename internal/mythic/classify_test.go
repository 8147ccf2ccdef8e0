// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import (
	"strings"
	"testing"

	"github.com/devops-wiz/terraform-provider-mythic/internal/mythic/mythictest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeJWT(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"e", false},
		{"ey", false},
		{"eyJ", true},
		{mythictest.JWTUser42, true},
		{mythictest.OpaqueToken, false},
		{"EYJhbGciOi", false},
		{" eyJhbGciOi", false},
		{"Bearer eyJhbGciOi", false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, LooksLikeJWT(c.in), "LooksLikeJWT(%q)", c.in)
	}
}

func TestNormalize_movesJWTOnlyWhenMarkerMatches(t *testing.T) {
	inputs := []string{
		"",
		"eyJ",
		"eyJhbGciOiJIUzI1NiJ9.e30.c2ln",
		mythictest.JWTUser42,
		mythictest.OpaqueToken,
		"eyj-lowercase",
		"xeyJ",
		strings.Repeat("a", 64),
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			in := Config{ServerURL: "mythic.example.com", SSL: true, APIToken: s}
			out := Normalize(in)
			if s != "" && strings.HasPrefix(s, jwtMarker) {
				assert.Equal(t, s, out.AccessToken)
				assert.Empty(t, out.APIToken)
			} else {
				assert.Equal(t, in, out)
			}
		})
	}
}

func TestNormalize_idempotent(t *testing.T) {
	for _, cfg := range []Config{
		{ServerURL: "h", APIToken: mythictest.JWTUser42},
		{ServerURL: "h", APIToken: mythictest.OpaqueToken},
		{ServerURL: "h", AccessToken: mythictest.JWTUser42},
		{ServerURL: "h", APIToken: mythictest.OpaqueToken, AccessToken: mythictest.JWTUser42},
		{ServerURL: "h"},
	} {
		once := Normalize(cfg)
		require.Equal(t, once, Normalize(once))
	}
}

func TestNormalize_doesNotMutateInput(t *testing.T) {
	in := Config{ServerURL: "h", APIToken: mythictest.JWTUser42}
	_ = Normalize(in)
	assert.Equal(t, mythictest.JWTUser42, in.APIToken)
	assert.Empty(t, in.AccessToken)
}
