// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"path/filepath"
)

const (
	// TmplPath defines the base path for template files.
	TmplPath = "./testdata/templates"
	// DataCurrentOperatorTmpl is the filename for the data.mythic_current_operator Terraform template.
	DataCurrentOperatorTmpl = "data.current_operator.tf.tmpl"
)

var (
	// DataCurrentOperatorTmplPath defines the file path for the current operator template based on the base template path.
	DataCurrentOperatorTmplPath = filepath.Join(TmplPath, DataCurrentOperatorTmpl)
)
