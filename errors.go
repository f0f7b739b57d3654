// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import "github.com/pkg/errors"

// ErrReporterIOFatal marks an error as the "Reporter I/O fatal" condition
// a failure to open a CSV or SVG output path. Callers can detect it with
// errors.Is; cmd/hermes exits non-zero on any error a reporter constructor
// returns, this one included. The harness library itself never calls
// os.Exit.
var ErrReporterIOFatal = errors.New("hermes: reporter i/o fatal")

// wrapReporterIO wraps err, when non-nil, so errors.Is(err,
// ErrReporterIOFatal) succeeds for callers that only care about the error
// class, while errors.Cause(err) still recovers the underlying *os.PathError
// or similar for logging.
func wrapReporterIO(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(fatalError{ErrReporterIOFatal, err}, context)
}

// fatalError pairs a sentinel with the real cause so both errors.Is(err,
// sentinel) and the original error's message survive wrapping.
type fatalError struct {
	sentinel error
	cause    error
}

func (e fatalError) Error() string { return e.cause.Error() }
func (e fatalError) Unwrap() error { return e.cause }
func (e fatalError) Cause() error { return e.cause }
func (e fatalError) Is(target error) bool { return target == e.sentinel }
