// SPDX-License-Identifier: MIT

// Package optimizer provides the Adagrad update rule and a numerical gradient
// helper for small variational training loops.
//
// The Adagrad type mirrors the usual framework contract: callers write the
// gradient into the buffer returned by Grad, call Step to update parameters
// in place, then ClearGrad before the next iteration. Gradient fills such a
// buffer with central finite differences (gonum diff/fd).
//
// This is not a general optimizer library; it carries exactly what a
// parameter-shift-free VQA loop needs.
package optimizer
