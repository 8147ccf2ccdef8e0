// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythictest

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// RoundTripFunc adapts a function to http.RoundTripper so tests can script
// transport behavior without a listener.
type RoundTripFunc func(*http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// ErrReader is an io.ReadCloser whose Read always fails.
type ErrReader struct{ Err error }

func (e ErrReader) Read([]byte) (int, error) {
	if e.Err == nil {
		return 0, errors.New("read failed")
	}
	return 0, e.Err
}

func (e ErrReader) Close() error { return nil }

// MkResponse builds an *http.Response with the given status and body.
func MkResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Status:     strconv.Itoa(code) + " " + http.StatusText(code),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
