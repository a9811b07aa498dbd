// SPDX-License-Identifier: MIT

package qchannel_test

import (
	"fmt"

	"github.com/karalekas/forest-benchmarking/qchannel"
	"github.com/karalekas/forest-benchmarking/randmat"
)

// ExampleRandCPTPChoi draws a reproducible random channel and verifies
// it is a valid CPTP map.
func ExampleRandCPTPChoi() {
	choi, _ := qchannel.RandCPTPChoi(2, 4, randmat.WithSeed(42))

	fmt.Println("side:", choi.Rows())
	fmt.Println("valid:", qchannel.ValidateChoi(choi) == nil)
	// Output:
	// side: 4
	// valid: true
}

// ExampleRepresentation_Convert moves one channel through all three
// encodings and back.
func ExampleRepresentation_Convert() {
	choi, _ := qchannel.RandCPTPChoi(2, 2, randmat.WithSeed(7))
	rep, _ := qchannel.NewChoiRepresentation(choi)

	kraus, _ := rep.Convert(qchannel.KindKraus)
	ks, _ := kraus.Kraus()
	fmt.Println("kraus operators:", len(ks))

	pl, _ := kraus.Convert(qchannel.KindPauliLiouville)
	fmt.Println("pauli-liouville kind:", pl.Kind())
	// Output:
	// kraus operators: 2
	// pauli-liouville kind: pauli-liouville
}
