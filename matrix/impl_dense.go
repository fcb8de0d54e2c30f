// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major complex128 buffer with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Interoperate with gonum: RawCMatrix exposes the buffer as a cblas128.General,
//     CDense copies into a *mat.CDense.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Slice: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxSlice = "Slice" // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int          // row and column counts (> 0)
	data           []complex128 // contiguous row-major storage (len == r*c)
	validateNaNInf bool         // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and take the NaN/Inf policy from
//     opts (WithValidateNaNInf), defaulting to DefaultValidateNaNInf.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// len(data) must equal rows*cols. Non-finite entries are rejected unless
// WithValidateNaNInf(false) is given.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []complex128, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: len(data)=%d, want %d: %w", len(data), rows*cols, ErrInvalidDimensions)
	}
	if m.validateNaNInf {
		if err = checkFinite(data); err != nil {
			return nil, fmt.Errorf("NewDenseFrom: %w", err)
		}
	}
	copy(m.data, data)

	return m, nil
}

// NewReal creates an r×c matrix from real row-major data (imaginary parts zero).
func NewReal(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewReal: len(data)=%d, want %d: %w", len(data), rows*cols, ErrInvalidDimensions)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewReal: %w", ErrNaNInf)
		}
		m.data[i] = complex(v, 0)
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewDiagonal returns the square matrix diag(values).
func NewDiagonal(values []complex128) (*Dense, error) {
	n := len(values)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if err = checkFinite(values); err != nil {
		return nil, fmt.Errorf("NewDiagonal: %w", err)
	}
	for i, v := range values {
		m.data[i*n+i] = v
	}

	return m, nil
}

// NewColumn returns the len(values)×1 column vector holding values.
func NewColumn(values []complex128) (*Dense, error) {
	return NewDenseFrom(len(values), 1, values)
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/Inf components when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
func (m *Dense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Raw returns a copy of the row-major backing data.
func (m *Dense) Raw() []complex128 {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return cp
}

// RawCMatrix exposes the backing buffer as a gonum cblas128.General.
// The returned value SHARES storage with m; writes through it are visible in m
// and bypass the finite-value policy.
func (m *Dense) RawCMatrix() cblas128.General {
	return cblas128.General{Rows: m.r, Cols: m.c, Stride: m.c, Data: m.data}
}

// CDense copies m into a new gonum *mat.CDense.
func (m *Dense) CDense() *mat.CDense {
	return mat.NewCDense(m.r, m.c, m.Raw())
}

// Slice copies the block [r0:r0+rows, c0:c0+cols) into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for non-positive block sizes.
//   - ErrOutOfRange when the block exceeds m.
//
// Complexity: O(rows*cols).
func (m *Dense) Slice(r0, c0, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxSlice, r0, c0, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, denseErrorf(ctxSlice, r0, c0, ErrOutOfRange)
	}
	out := &Dense{r: rows, c: cols, data: make([]complex128, rows*cols), validateNaNInf: m.validateNaNInf}
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+cols])
	}

	return out, nil
}

// Diag returns the main diagonal (length min(r,c)).
func (m *Dense) Diag() []complex128 {
	n := min(m.r, m.c)
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// RealDiag returns the real parts of the main diagonal. For a density operator
// this is the measured probability distribution in the computational basis.
func (m *Dense) RealDiag() []float64 {
	d := m.Diag()
	out := make([]float64, len(d))
	for i, v := range d {
		out[i] = real(v)
	}

	return out
}

// Column returns a copy of column j, or ErrOutOfRange.
func (m *Dense) Column(j int) ([]complex128, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxAt, 0, j, ErrOutOfRange)
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Apply replaces every element with f(i, j, v) in row-major order.
// The finite-value policy is enforced on the produced values; on the first
// violation Apply stops and leaves already-visited cells updated.
func (m *Dense) Apply(f func(i, j int, v complex128) complex128) error {
	var i, j, off int
	var nv complex128
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			off = i*m.c + j
			nv = f(i, j, m.data[off])
			if m.validateNaNInf && !isFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[off] = nv
		}
	}

	return nil
}

// String renders rows as lines with comma-separated values, for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%.4g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m itself when it is a *Dense, or a *Dense copy read through
// the interface otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v complex128
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

func isFinite(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
}

func checkFinite(data []complex128) error {
	for _, v := range data {
		if !isFinite(v) {
			return ErrNaNInf
		}
	}

	return nil
}
