// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package testhelpers provides shared testing utilities used across unit and
// acceptance tests.
//
// Intended use:
//   - Unit tests: token fixtures (opaque and JWT), canned responses and
//     failing readers to reduce boilerplate.
//   - Acceptance tests: a local /me server that records request headers, and
//     template rendering for provider configurations.
//
// Conventions:
//   - Keep dependencies minimal and avoid importing production-only paths.
//   - Never leak real credentials in fixtures; tokens here are synthetic.
//
// This package is for test code and is not part of the provider's public API.
package testhelpers
