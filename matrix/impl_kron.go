// SPDX-License-Identifier: MIT

package matrix

// Kron returns the Kronecker product A ⊗ B, an (ra·rb)×(ca·cb) matrix with
// (A⊗B)[i·rb+k, j·cb+l] = A[i,j]·B[k,l].
//
// Implementation:
//   - Stage 1: validate both operands are non-nil; materialize as *Dense.
//   - Stage 2: allocate the result and fill it block by block, i→j→k→l.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(ra·ca·rb·cb), Space O(ra·ca·rb·cb).
//
// Notes:
//   - No power-of-two restriction: any shapes are accepted.
//   - Associative, not commutative.
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	rows, cols := da.r*db.r, da.c*db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	var i, j, k, l, rowBase int
	var aij complex128
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			aij = da.data[i*da.c+j]
			if aij == 0 {
				continue // block stays zero
			}
			for k = 0; k < db.r; k++ {
				rowBase = (i*db.r+k)*cols + j*db.c
				for l = 0; l < db.c; l++ {
					res.data[rowBase+l] = aij * db.data[k*db.c+l]
				}
			}
		}
	}

	return res, nil
}

// Block assembles the 2×2 block matrix
//
//	[ a  b ]
//	[ c  d ]
//
// Row blocks must agree in height (a,b and c,d) and column blocks in width
// (a,c and b,d).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(total size), Space O(total size).
func Block(a, b, c, d Matrix) (*Dense, error) {
	blocks := [4]Matrix{a, b, c, d}
	dense := [4]*Dense{}
	var err error
	for idx, m := range blocks {
		if err = ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(opBlock, err)
		}
		if dense[idx], err = asDense(m); err != nil {
			return nil, matrixErrorf(opBlock, err)
		}
	}
	if a.Rows() != b.Rows() || c.Rows() != d.Rows() || a.Cols() != c.Cols() || b.Cols() != d.Cols() {
		return nil, matrixErrorf(opBlock, ErrDimensionMismatch)
	}

	top, left := a.Rows(), a.Cols()
	rows, cols := top+c.Rows(), left+b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	offsets := [4][2]int{{0, 0}, {0, left}, {top, 0}, {top, left}}
	var i int
	for idx, blk := range dense {
		r0, c0 := offsets[idx][0], offsets[idx][1]
		for i = 0; i < blk.r; i++ {
			copy(res.data[(r0+i)*cols+c0:(r0+i)*cols+c0+blk.c], blk.data[i*blk.c:(i+1)*blk.c])
		}
	}

	return res, nil
}
