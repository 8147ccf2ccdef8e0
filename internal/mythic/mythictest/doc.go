// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package mythictest provides fixtures for tests of Mythic clients: synthetic
// credentials, scripted transports and a fake /me endpoint that records the
// headers of every request.
//
// It has no dependency on the client or the provider so both layers can use it.
package mythictest
