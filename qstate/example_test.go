// SPDX-License-Identifier: MIT

package qstate_test

import (
	"fmt"
	"math/cmplx"

	"github.com/karalekas/forest-benchmarking/cmatrix"
	"github.com/karalekas/forest-benchmarking/qstate"
	"github.com/karalekas/forest-benchmarking/randmat"
)

// ExampleGinibreState draws a reproducible full-rank density matrix and
// checks its defining properties.
func ExampleGinibreState() {
	rho, _ := qstate.GinibreState(2, 2, randmat.WithSeed(42))

	tr, _ := cmatrix.Trace(rho)
	fmt.Println("trace one:", cmplx.Abs(tr-1) < 1e-10)
	fmt.Println("hermitian:", cmatrix.IsHermitian(rho, 1e-10))
	// Output:
	// trace one: true
	// hermitian: true
}

// ExamplePurity contrasts a pure projector with the maximally mixed
// state.
func ExamplePurity() {
	psi, _ := qstate.HaarPureState(2, randmat.WithSeed(1))
	psiH, _ := cmatrix.ConjTranspose(psi)
	proj, _ := cmatrix.Mul(psi, psiH)

	eye, _ := cmatrix.Identity(2)
	mixed, _ := cmatrix.Scale(0.5, eye)

	p1, _ := qstate.Purity(proj)
	p2, _ := qstate.Purity(mixed)
	fmt.Printf("%.2f %.2f\n", p1, p2)
	// Output:
	// 1.00 0.50
}
