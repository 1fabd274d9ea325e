// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that RandomGraph was asked for fewer than one node.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrNegativeArcs indicates a negative arc count.
var ErrNegativeArcs = errors.New("builder: negative arc count")

// ErrNeedRandSource indicates that RandomGraph was called without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDuplicateName indicates that the name scheme produced the same name for
// two different node indices, which would merge them into one node.
var ErrDuplicateName = errors.New("builder: duplicate node name")

// builderErrorf prefixes err with the method name and a formatted message,
// keeping err available to errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
