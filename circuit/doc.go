// SPDX-License-Identifier: MIT

// Package circuit builds parameterized quantum circuits as dense unitaries.
//
// A Circuit holds an ordered list of gates and one flat parameter vector.
// UnitaryMatrix multiplies the gate operators in application order
// (U = G_k ··· G_2·G_1) for the current parameters; UnitaryFor does the same
// for an arbitrary parameter vector without touching the circuit, which is
// what numerical differentiation needs.
//
// Conventions:
//   - Qubit 0 is the most significant bit of the basis index, so a single-qubit
//     gate G on qubit q of an n-qubit register is I(2^q) ⊗ G ⊗ I(2^(n−q−1)).
//   - New parameters are drawn uniformly from [0, 2π) with the circuit's RNG.
//   - Precision is explicit: WithDType(Complex64) rounds every gate and every
//     partial product to single precision. Gates receive the dtype from the
//     circuit on each build and never read global state.
//
// Available gates: RX, RY, RZ, U3, CNOT and UniversalTwoQubits (a 15-parameter
// block that can express any two-qubit unitary up to global phase). Custom
// operators plug in through the Gate interface and Append.
//
// This is intentionally not a general simulator: no measurement, no
// state-vector evolution, no noise.
package circuit
