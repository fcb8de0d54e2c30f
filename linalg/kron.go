// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/qlath/matrix"

const opNKron = "NKron"

// NKron returns the Kronecker product a ⊗ b ⊗ rest[0] ⊗ … folded from the left.
//
// The product is associative but not commutative; shapes multiply
// ((ra·rb·…) × (ca·cb·…)) and no power-of-two restriction applies.
//
// Errors:
//   - matrix.ErrNilMatrix if any operand is nil.
//
// Complexity: O(size of the result) per fold step.
func NKron(a, b matrix.Matrix, rest ...matrix.Matrix) (*matrix.Dense, error) {
	acc, err := matrix.Kron(a, b)
	if err != nil {
		return nil, linalgErrorf(opNKron, err)
	}
	for _, m := range rest {
		if acc, err = matrix.Kron(acc, m); err != nil {
			return nil, linalgErrorf(opNKron, err)
		}
	}

	return acc, nil
}
