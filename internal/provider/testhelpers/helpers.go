// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"text/template"
)

// TemplatePath returns an absolute path to a template file under testdata/templates.
func TemplatePath(name string) string {
	return filepath.Join("testdata", "templates", name)
}

// MustReadTemplate reads a template by name or fails the test.
func MustReadTemplate(t *testing.T, name string) string {
	t.Helper()
	p := TemplatePath(name)
	absPath, _ := filepath.Abs(p)
	b, err := os.ReadFile(p)
	if err != nil {
		wd, _ := os.Getwd()
		dir := filepath.Dir(p)
		var candidates []string
		if entries, dirErr := os.ReadDir(dir); dirErr == nil {
			for _, e := range entries {
				if !e.IsDir() {
					candidates = append(candidates, e.Name())
				}
			}
		}
		t.Fatalf(
			"failed to read template %q\n  path: %s\n  abs:  %s\n  cwd:  %s\n  dir:  %s\n  available templates: %v\n  error: %v",
			name, p, absPath, wd, dir, candidates, err,
		)
	}
	return string(b)
}

// BuildLargeBody creates a large JSON-like string embedding various secrets
// to validate both truncation and redaction. Size target ~2MB.
func BuildLargeBody() string {
	var b strings.Builder
	chunks := 2 << 20 / 64
	for i := 0; i < chunks; i++ {
		b.WriteString(`{"authorization":"Bearer TOPSECRET`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`","apitoken":"AAA`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`","password":"PWD`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`"}`)
	}
	return b.String()
}

// RenderCurrentOperatorConfig renders the data.current_operator template.
func RenderCurrentOperatorConfig(t *testing.T, cfg CurrentOperatorTmplCfg) string {
	t.Helper()

	tmpl, err := template.New(DataCurrentOperatorTmpl).ParseFiles(DataCurrentOperatorTmplPath)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, cfg); err != nil {
		t.Fatal(err)
	}
	return out.String()
}
