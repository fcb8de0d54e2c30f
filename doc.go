// SPDX-License-Identifier: MIT

// Package qlath is a small toolkit for quantum linear algebra and variational
// quantum algorithms in pure Go.
//
// What is inside:
//
//	matrix/     complex dense matrices: Mul (gonum cblas128), Dagger, Trace,
//	            Kron, Block, QR, Hermitian eigen-decomposition, PSD square root
//	linalg/     random ensembles (Ginibre, Haar unitary/orthogonal, density
//	            operators, block encodings) and Hermitian / unitary / projector
//	            predicates, NKron
//	circuit/    parameterized circuits rendered as dense unitaries (RX, RY, RZ,
//	            U3, CNOT, universal two-qubit block)
//	optimizer/  Adagrad and central-difference gradients (gonum diff/fd)
//	vqsd/       variational quantum state diagonalization trainer
//	cmd/vqsd    command-line entry point
//
// Quick example:
//
//	s := linalg.NewSampler(linalg.WithSeed(14))
//	rho, sigma, _ := vqsd.GenerateRhoSigma(s, vqsd.DefaultSpectrum)
//	res, _ := vqsd.NewTrainer().Train(rho, sigma)
//	fmt.Println(res.Spectrum()) // ≈ [0.5 0.3 0.1 0.1]
//
// Conventions shared by every package: qubit 0 is the most significant bit,
// n qubits span a 2^n-dimensional space, randomness is always passed in
// explicitly, errors are sentinels wrapped with an operation tag.
package qlath
