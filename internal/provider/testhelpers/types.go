// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

// CurrentOperatorTmplCfg feeds the data.current_operator template.
type CurrentOperatorTmplCfg struct {
	ServerURL   string
	SSL         bool
	APIToken    string
	AccessToken string
	DataName    string
}
