// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import (
	"fmt"
	"strings"
)

const identityPath = "/me"

// StripScheme removes a leading http:// or https:// from url, in any case.
func StripScheme(url string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if len(url) >= len(prefix) && strings.EqualFold(url[:len(prefix)], prefix) {
			return url[len(prefix):]
		}
	}
	return url
}

func endpoint(cfg Config, secureScheme, plainScheme, path string) string {
	scheme := secureScheme
	if !cfg.SSL {
		scheme = plainScheme
	}
	return fmt.Sprintf("%s://%s%s", scheme, strings.TrimRight(StripScheme(cfg.ServerURL), "/"), path)
}

// IdentityURL returns the identity endpoint, {http|https}://host/me.
func IdentityURL(cfg Config) string {
	return endpoint(cfg, "https", "http", identityPath)
}

// RESTURL returns the REST endpoint for path. A missing leading "/" is added.
func RESTURL(cfg Config, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return endpoint(cfg, "https", "http", path)
}

// GraphQLURL returns the GraphQL HTTP endpoint.
func GraphQLURL(cfg Config) string {
	return endpoint(cfg, "https", "http", "/graphql/")
}

// WebSocketURL returns the GraphQL subscription endpoint.
func WebSocketURL(cfg Config) string {
	return endpoint(cfg, "wss", "ws", "/graphql/")
}
