// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythic

import (
	"errors"
	"fmt"
)

// Error is returned by every operation of this package. Op names the failing
// operation, Message adds context and Err is the cause, usually one of the
// sentinel kinds below joined with the underlying error.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *Error) Unwrap() error { return e.Err }

// Error kinds. Use errors.Is to classify a returned error.
var (
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrRequestConstruction  = errors.New("request construction failed")
	ErrTransport            = errors.New("transport failed")
	ErrResponseRead         = errors.New("response read failed")
	ErrResponseParse        = errors.New("response parse failed")
	ErrInvalidResponse      = errors.New("invalid response")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrCanceled             = errors.New("canceled")
	ErrNotAuthenticated     = errors.New("not authenticated")
)

// WrapError wraps err with an operation name and message. It returns nil
// when err is nil.
func WrapError(op string, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Message: message, Err: err}
}

// wrapKind wraps cause under the given kind so that both errors.Is(err, kind)
// and errors.Is(err, cause) hold.
func wrapKind(op string, kind, cause error, message string) error {
	if cause == nil {
		return WrapError(op, kind, message)
	}
	return WrapError(op, errors.Join(kind, cause), message)
}

// StatusError carries the status code and raw body of the last rejected
// identity request.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("/me returned status %d: %s", e.StatusCode, e.Body)
}

// Is makes a StatusError match ErrAuthenticationFailed.
func (e *StatusError) Is(target error) bool { return target == ErrAuthenticationFailed }
