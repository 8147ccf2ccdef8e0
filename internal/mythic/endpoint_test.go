// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import "testing"

func TestIdentityURL(t *testing.T) {
	for _, tt := range []struct {
		server string
		ssl    bool
		want   string
	}{
		{"mythic.example.com", true, "https://mythic.example.com/me"},
		{"mythic.example.com", false, "http://mythic.example.com/me"},
		{"https://mythic.example.com:7443", true, "https://mythic.example.com:7443/me"},
		{"https://mythic.example.com:7443", false, "http://mythic.example.com:7443/me"},
		{"http://10.0.0.5:7443", true, "https://10.0.0.5:7443/me"},
		{"mythic.example.com/", true, "https://mythic.example.com/me"},
		{"HTTPS://mythic.example.com", true, "https://mythic.example.com/me"},
		{"Http://mythic.example.com:7443", false, "http://mythic.example.com:7443/me"},
	} {
		got := IdentityURL(Config{ServerURL: tt.server, SSL: tt.ssl})
		if got != tt.want {
			t.Fatalf("IdentityURL(%q, ssl=%v) = %q, want %q", tt.server, tt.ssl, got, tt.want)
		}
	}
}

func TestGraphQLAndWebSocketURL(t *testing.T) {
	cfg := Config{ServerURL: "https://mythic.local:7443", SSL: true}
	if got := GraphQLURL(cfg); got != "https://mythic.local:7443/graphql/" {
		t.Fatalf("GraphQLURL = %q", got)
	}
	if got := WebSocketURL(cfg); got != "wss://mythic.local:7443/graphql/" {
		t.Fatalf("WebSocketURL = %q", got)
	}
	cfg.SSL = false
	if got := WebSocketURL(cfg); got != "ws://mythic.local:7443/graphql/" {
		t.Fatalf("WebSocketURL = %q", got)
	}
}

func TestStripScheme(t *testing.T) {
	for in, want := range map[string]string{
		"https://a.b":  "a.b",
		"http://a.b":   "a.b",
		"a.b":          "a.b",
		"https://":     "",
		"ftp://a.b":    "ftp://a.b",
		"https//a.b":   "https//a.b",
		"http://https": "https",
		"HTTPS://a.b":  "a.b",
		"hTtP://a.b":   "a.b",
		"HTTP:/":       "HTTP:/",
	} {
		if got := StripScheme(in); got != want {
			t.Errorf("StripScheme(%q) = %q, want %q", in, got, want)
		}
	}
}
