// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"os"
	"strings"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
)

// testAccPreCheck validates the environment of acceptance tests that run against a live Mythic server.
func testAccPreCheck(t *testing.T) {
	v := os.Getenv("MYTHIC_SERVER_URL")
	if v == "" {
		t.Fatal("MYTHIC_SERVER_URL must be set for acceptance tests")
	}
	if strings.ContainsAny(v, " \t\r\n?#") {
		t.Fatal("MYTHIC_SERVER_URL must be a host with an optional port")
	}
	if strings.Contains(v, "@") {
		t.Fatal("MYTHIC_SERVER_URL must not include credentials")
	}

	apiToken := os.Getenv("MYTHIC_API_TOKEN")
	accessToken := os.Getenv("MYTHIC_ACCESS_TOKEN")
	if apiToken == "" && accessToken == "" {
		t.Fatal("MYTHIC_API_TOKEN or MYTHIC_ACCESS_TOKEN must be set for acceptance tests")
	}
	for name, tok := range map[string]string{"MYTHIC_API_TOKEN": apiToken, "MYTHIC_ACCESS_TOKEN": accessToken} {
		if tok == "" {
			continue
		}
		if len(tok) < 8 {
			t.Fatalf("%s appears too short", name)
		}
		if strings.ContainsAny(tok, " \t\r\n") {
			t.Fatalf("%s must not contain whitespace", name)
		}
		if strings.EqualFold(tok, "changeme") {
			t.Fatalf("%s must not be a placeholder value", name)
		}
	}
}

// Provider factory for acceptance tests
var testAccProtoV6ProviderFactories = map[string]func() (tfprotov6.ProviderServer, error){
	"mythic": providerserver.NewProtocol6WithError(New("test")()),
}
