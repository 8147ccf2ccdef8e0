// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import "strings"

// redactSecretValue replaces a sensitive value with a stable token.
// If the value is empty, it returns the empty string to avoid adding tokens where not needed.
func redactSecretValue(v string) string {
	if v == "" {
		return ""
	}
	return "[REDACTED]"
}

// sanitizeValidationError returns a copy of the given validation error with secrets redacted.
func sanitizeValidationError(e validationErr, rc resolvedConfig) validationErr {
	// Build a mapping of raw -> redacted tokens
	replacements := map[string]string{}

	if rc.apiToken != "" {
		replacements[rc.apiToken] = redactSecretValue(rc.apiToken)
	}
	if rc.accessToken != "" {
		replacements[rc.accessToken] = redactSecretValue(rc.accessToken)
	}

	// Apply replacements to summary/detail without echoing the original values.
	summary := e.summary
	detail := e.detail
	for raw, red := range replacements {
		if raw == "" {
			continue
		}
		if summary != "" {
			summary = strings.ReplaceAll(summary, raw, red)
		}
		if detail != "" {
			detail = strings.ReplaceAll(detail, raw, red)
		}
	}

	e.summary = summary
	e.detail = detail
	return e
}
