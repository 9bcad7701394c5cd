// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
// Callers match these with errors.Is; functions wrap them with a
// "Func: ...: %w" context at the point of return.

package matrix

import "errors"

// ErrSingular is returned when the determinant of a matrix is exactly zero,
// so no multiplicative inverse exists.
var ErrSingular = errors.New("matrix: singular matrix")
