// SPDX-License-Identifier: MIT
// Package randmat: Ginibre-ensemble matrices.

package randmat

import (
	"fmt"

	"github.com/karalekas/forest-benchmarking/cmatrix"
)

// Ginibre returns a rows×cols matrix whose entries are i.i.d. complex
// Gaussians: real and imaginary parts are independent standard-normal
// draws (mean 0, variance 1 each).
//
// Implementation:
//   - Stage 1: Validate rows ≥ 1 and cols ≥ 1.
//   - Stage 2: Resolve options (seed/source policy, see package doc).
//   - Stage 3: Fill the flat backing slice in row-major order, one
//     ComplexGaussian draw per entry.
//
// Behavior highlights:
//   - With WithSeed/WithSource the output is bit-reproducible; without,
//     every call is statistically independent.
//   - The matrix need not be square and carries no structure: it is not
//     generally Hermitian or unitary.
//
// Inputs:
//   - rows, cols: requested shape, both ≥ 1.
//   - opts: WithSeed / WithSource.
//
// Returns:
//   - *cmatrix.CDense: freshly allocated rows×cols draw.
//
// Errors:
//   - ErrInvalidDimension when rows < 1 or cols < 1.
//
// Complexity:
//   - Time O(rows·cols), Space O(rows·cols).
func Ginibre(rows, cols int, opts ...Option) (*cmatrix.CDense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Ginibre(%d,%d): %w", rows, cols, ErrInvalidDimension)
	}
	o := gatherOptions(opts...)

	m, err := cmatrix.NewCDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Ginibre(%d,%d): %w", rows, cols, err)
	}

	data := m.Data()
	for idx := range data { // row-major fill, deterministic draw order
		data[idx] = o.source.ComplexGaussian()
	}

	return m, nil
}
