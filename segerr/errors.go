// SPDX-License-Identifier: MIT
// Package: segimage/segerr
//
// errors.go: the two error kinds shared by every segimage package.
//
// Error policy:
//   • Packages declare their own sentinels and wrap exactly one kind below.
//   • Callers branch with errors.Is(err, segerr.ErrInput) or on the specific
//     sentinel; never on error strings.
//   • Neither kind is retryable: both describe a violated data contract.

// Package segerr defines the error kinds used across segimage.
package segerr

import (
	"errors"
	"fmt"
)

// ErrInput marks malformed inputs: non-positive labels, ragged or empty grids,
// image/label map shape mismatches.
var ErrInput = errors.New("segimage: invalid input")

// ErrData marks inputs that are well-formed but violate a data contract:
// empty superpixels, partitions that are not total, out-of-range vertices.
var ErrData = errors.New("segimage: data contract violated")

// Wrap builds a package sentinel of the given kind, e.g.
//
//	ErrEmptySuperpixel = segerr.Wrap(segerr.ErrData, "rag: superpixel has no pixels")
//
// errors.Is matches both the returned sentinel and kind.
func Wrap(kind error, msg string) error {
	return fmt.Errorf("%s: %w", msg, kind)
}

// Errorf prefixes a formatted message with method context and wraps sentinel,
// producing "<method>: <message>: <sentinel>".
func Errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// IsInput reports whether err is of kind ErrInput.
func IsInput(err error) bool { return errors.Is(err, ErrInput) }

// IsData reports whether err is of kind ErrData.
func IsData(err error) bool { return errors.Is(err, ErrData) }
