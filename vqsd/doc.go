// SPDX-License-Identifier: MIT

// Package vqsd implements variational quantum state diagonalization.
//
// Given a density operator ρ and a fixed diagonal reference σ with distinct
// increasing entries, the trainer learns a two-qubit unitary U that minimizes
//
//	L(U) = Re tr(σ · UρU†).
//
// At the minimum ρ̃ = UρU† is diagonal and its diagonal is the spectrum of ρ
// sorted in decreasing order (the largest eigenvalue pairs with the smallest
// σ entry).
//
// Training is a fixed number of Adagrad steps (no convergence check, no early
// stop). Progress lines "iter: <i> loss: <v>" go to a plain writer every
// ReportEvery iterations; structured events go to an optional zerolog logger.
package vqsd
