// SPDX-License-Identifier: MIT
// Package linalg: random ensemble generators.
//
// Purpose:
//   - Draw Hermitian, unitary, projector and density operators on n qubits
//     from well-defined ensembles (Ginibre, Haar).
//
// Determinism:
//   - Every draw goes through the Sampler's *rand.Rand in a fixed order
//     (row-major, real part before imaginary part), so equal seeds give equal
//     matrices.
//
// Concurrency:
//   - A Sampler is NOT safe for concurrent use (neither is *rand.Rand).
//
// Normalization divides by the complex trace as-is; results are not
// re-Hermitized afterwards.

package linalg

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/qlath/matrix"
)

const (
	opHermitianRandom     = "HermitianRandom"
	opProjectionRandom    = "OrthogonalProjectionRandom"
	opUnitaryHermitian    = "UnitaryHermitianRandom"
	opUnitaryHermitianBlk = "UnitaryRandomWithHermitianBlock"
	opUnitaryRandom       = "UnitaryRandom"
	opHaarOrthogonal      = "HaarOrthogonal"
	opHaarUnitary         = "HaarUnitary"
	opHaarStateVector     = "HaarStateVector"
	opHaarDensityOperator = "HaarDensityOperator"
	opGinibreMatrix       = "GinibreMatrix"
)

// invSqrt2 scales complex Ginibre entries to unit variance.
const invSqrt2 = 1 / math.Sqrt2

// Sampler draws random operators from a private or shared *rand.Rand.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler builds a Sampler. Pass WithSeed for reproducible draws.
func NewSampler(opts ...SamplerOption) *Sampler {
	c := gatherSamplerConfig(opts...)

	return &Sampler{rng: c.rng}
}

// Rand exposes the underlying source, e.g. to seed a circuit from the same stream.
func (s *Sampler) Rand() *rand.Rand { return s.rng }

// dimension maps a qubit count to 2^n or ErrInvalidQubits.
func dimension(numQubits int) (int, error) {
	if numQubits < 1 || numQubits > MaxQubits {
		return 0, ErrInvalidQubits
	}

	return 1 << numQubits, nil
}

// GinibreMatrix returns a rows×cols matrix of i.i.d. standard normal entries;
// complex entries are re + i·im with both parts standard normal.
//
// Errors: matrix.ErrInvalidDimensions for non-positive sizes.
// Complexity: O(rows·cols).
func (s *Sampler) GinibreMatrix(rows, cols int, isReal bool) (*matrix.Dense, error) {
	g, err := s.ginibre(rows, cols, isReal, 1)
	if err != nil {
		return nil, linalgErrorf(opGinibreMatrix, err)
	}

	return g, nil
}

func (s *Sampler) ginibre(rows, cols int, isReal bool, scale float64) (*matrix.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrix.ErrInvalidDimensions
	}
	data := make([]complex128, rows*cols)
	var re, im float64
	for i := range data {
		re = s.rng.NormFloat64()
		im = 0
		if !isReal {
			im = s.rng.NormFloat64()
		}
		data[i] = complex(re*scale, im*scale)
	}

	return matrix.NewDenseFrom(rows, cols, data)
}

// normalizeTrace returns m / tr(m).
func normalizeTrace(m *matrix.Dense) (*matrix.Dense, error) {
	tr, err := matrix.Trace(m)
	if err != nil {
		return nil, err
	}

	return matrix.Scale(m, 1/tr)
}

// gram returns G·G† / tr(G·G†) for a fresh dim×cols Ginibre matrix G.
func (s *Sampler) gram(dim, cols int, isReal bool) (*matrix.Dense, error) {
	g, err := s.ginibre(dim, cols, isReal, 1)
	if err != nil {
		return nil, err
	}
	ggd, err := matrix.MulDagger(g, g)
	if err != nil {
		return nil, err
	}

	return normalizeTrace(ggd)
}

// HermitianRandom returns a 2^n×2^n Hermitian, positive semidefinite matrix
// of unit trace: G·G† / tr(G·G†) for a complex Ginibre G.
//
// Errors: ErrInvalidQubits.
// Complexity: O(8^n).
func (s *Sampler) HermitianRandom(numQubits int) (*matrix.Dense, error) {
	dim, err := dimension(numQubits)
	if err != nil {
		return nil, linalgErrorf(opHermitianRandom, err)
	}
	h, err := s.gram(dim, dim, false)
	if err != nil {
		return nil, linalgErrorf(opHermitianRandom, err)
	}

	return h, nil
}

// OrthogonalProjectionRandom returns a rank-1 orthogonal projector v·v†/(v†v)
// for a complex Gaussian column v.
//
// Errors: ErrInvalidQubits.
func (s *Sampler) OrthogonalProjectionRandom(numQubits int) (*matrix.Dense, error) {
	dim, err := dimension(numQubits)
	if err != nil {
		return nil, linalgErrorf(opProjectionRandom, err)
	}
	p, err := s.gram(dim, 1, false)
	if err != nil {
		return nil, linalgErrorf(opProjectionRandom, err)
	}

	return p, nil
}

// UnitaryHermitianRandom returns 2P − I for a random rank-1 projector P,
// a matrix that is both Hermitian and unitary (a reflection).
//
// Errors: ErrInvalidQubits.
func (s *Sampler) UnitaryHermitianRandom(numQubits int) (*matrix.Dense, error) {
	p, err := s.OrthogonalProjectionRandom(numQubits)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitian, err)
	}
	p2, err := matrix.Scale(p, 2)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitian, err)
	}
	id, err := matrix.NewIdentity(p.Rows())
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitian, err)
	}
	u, err := matrix.Sub(p2, id)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitian, err)
	}

	return u, nil
}

// UnitaryRandomWithHermitianBlock returns a 2^n×2^n unitary block encoding
//
//	[ H  S ]
//	[ S  H ],   S = i·√(I − H²),
//
// of a random Hermitian H on n−1 qubits (a 1×1 block when n = 1).
//
// Implementation:
//   - Stage 1: H = G·G†/tr for a 2^(n−1) square complex Ginibre G.
//   - Stage 2: S = i·SqrtPSD(I − H²); the spectrum of H lies in [0,1], so
//     I − H² is PSD up to rounding (clamped by SqrtPSD).
//   - Stage 3: assemble with matrix.Block.
//
// Errors: ErrInvalidQubits.
// Complexity: O(8^n) plus the eigen decomposition of the block.
func (s *Sampler) UnitaryRandomWithHermitianBlock(numQubits int) (*matrix.Dense, error) {
	if _, err := dimension(numQubits); err != nil {
		return nil, linalgErrorf(opUnitaryHermitianBlk, err)
	}
	side := 1 << (numQubits - 1)

	h, err := s.gram(side, side, false)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitianBlk, err)
	}
	hh, err := matrix.Mul(h, h)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitianBlk, err)
	}
	id, err := matrix.NewIdentity(side)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitianBlk, err)
	}
	defect, err := matrix.Sub(id, hh)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitianBlk, err)
	}
	root, err := matrix.SqrtPSD(defect)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitianBlk, err)
	}
	off, err := matrix.Scale(root, 1i)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitianBlk, err)
	}
	u, err := matrix.Block(h, off, off, h)
	if err != nil {
		return nil, linalgErrorf(opUnitaryHermitianBlk, err)
	}

	return u, nil
}

// UnitaryRandom returns a unitary drawn uniformly (Haar measure) from U(2^n).
//
// Errors: ErrInvalidQubits.
func (s *Sampler) UnitaryRandom(numQubits int) (*matrix.Dense, error) {
	u, err := s.haar(numQubits, false)
	if err != nil {
		return nil, linalgErrorf(opUnitaryRandom, err)
	}

	return u, nil
}

// HaarOrthogonal returns a Haar-random real orthogonal matrix on n qubits.
//
// Errors: ErrInvalidQubits.
func (s *Sampler) HaarOrthogonal(numQubits int) (*matrix.Dense, error) {
	o, err := s.haar(numQubits, true)
	if err != nil {
		return nil, linalgErrorf(opHaarOrthogonal, err)
	}

	return o, nil
}

// HaarUnitary returns a Haar-random unitary on n qubits.
//
// Errors: ErrInvalidQubits.
func (s *Sampler) HaarUnitary(numQubits int) (*matrix.Dense, error) {
	u, err := s.haar(numQubits, false)
	if err != nil {
		return nil, linalgErrorf(opHaarUnitary, err)
	}

	return u, nil
}

// haar implements Mezzadri's recipe (arXiv:math-ph/0609050):
//
//   - Stage 1: Ginibre G (complex entries scaled by 1/√2).
//   - Stage 2: G = Q·R by Householder QR.
//   - Stage 3: U = Q·Λ with Λ = diag(R_ii / |R_ii|), which makes the
//     decomposition unique and the distribution exactly Haar.
func (s *Sampler) haar(numQubits int, isReal bool) (*matrix.Dense, error) {
	dim, err := dimension(numQubits)
	if err != nil {
		return nil, err
	}
	scale := invSqrt2
	if isReal {
		scale = 1
	}
	g, err := s.ginibre(dim, dim, isReal, scale)
	if err != nil {
		return nil, err
	}
	q, r, err := matrix.QR(g)
	if err != nil {
		return nil, err
	}

	phases := r.Diag()
	for i, v := range phases {
		if v == 0 {
			phases[i] = 1
			continue
		}
		phases[i] = v / complex(cmplx.Abs(v), 0)
	}
	lambda, err := matrix.NewDiagonal(phases)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(q, lambda)
}

// HaarStateVector returns a Haar-random pure state as a 2^n×1 column: the
// first column of HaarOrthogonal (isReal) or HaarUnitary.
//
// Errors: ErrInvalidQubits.
func (s *Sampler) HaarStateVector(numQubits int, isReal bool) (*matrix.Dense, error) {
	u, err := s.haar(numQubits, isReal)
	if err != nil {
		return nil, linalgErrorf(opHaarStateVector, err)
	}
	phi, err := u.Slice(0, 0, u.Rows(), 1)
	if err != nil {
		return nil, linalgErrorf(opHaarStateVector, err)
	}

	return phi, nil
}

// HaarDensityOperator returns a random density operator of the given rank:
// G·G†/tr(G·G†) for a 2^n×rank Ginibre G (G·Gᵀ when isReal).
// rank == FullRank selects 2^n.
//
// Errors:
//   - ErrInvalidQubits.
//   - ErrInvalidRank when rank ∉ (0, 2^n] (checked before any draw).
//
// Complexity: O(4^n · rank).
func (s *Sampler) HaarDensityOperator(numQubits, rank int, isReal bool) (*matrix.Dense, error) {
	dim, err := dimension(numQubits)
	if err != nil {
		return nil, linalgErrorf(opHaarDensityOperator, err)
	}
	if rank == FullRank {
		rank = dim
	}
	if rank <= 0 || rank > dim {
		return nil, linalgErrorf(opHaarDensityOperator, ErrInvalidRank)
	}
	rho, err := s.gram(dim, rank, isReal)
	if err != nil {
		return nil, linalgErrorf(opHaarDensityOperator, err)
	}

	return rho, nil
}
