// SPDX-License-Identifier: MIT

// Package warmup is a set of small, independent beginner exercises, each a
// single-pass computation over one line of input:
//
//	averages/ — arithmetic mean, geometric mean and root mean square of two numbers
//	gas/      — gallons of gasoline → liters, barrels of oil, price
//	piglatin/ — simplified Pig Latin translation of a name
//	matrix/   — 2x2 matrix value type and its closed-form inverse
//
// The cmd/warmup binary exposes each exercise as a subcommand that prompts
// for input on stdin:
//
//	$ warmup matrix_fun
//	Enter four values: 1 2 3 4
//	((1.0, 2.0), (3.0, 4.0))
//	((-2.0, 1.0), (1.5, -0.5))
//
// Bad input and singular matrices are reported as errors and the binary
// exits with status 1; nothing is retried or recovered.
package warmup
