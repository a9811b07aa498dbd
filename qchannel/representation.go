// SPDX-License-Identifier: MIT

// Package qchannel: the tagged channel-representation variant.
//
// A channel representation is one of three equivalent matrix encodings.
// Modeling the choice as a tagged variant (rather than bare matrices of
// suggestive shapes) makes misinterpreting one encoding as another a
// compile-time impossibility: payloads are only reachable through
// kind-checked accessors, and conversions go through the total Convert.
package qchannel

import (
	"fmt"

	"github.com/karalekas/forest-benchmarking/cmatrix"
)

// Kind tags the encoding carried by a Representation.
type Kind int

const (
	// KindChoi: the D²×D² Choi matrix.
	KindChoi Kind = iota

	// KindKraus: an operator-sum list of D×D Kraus operators.
	KindKraus

	// KindPauliLiouville: the D²×D² Pauli transfer matrix
	// (qubit systems only).
	KindPauliLiouville
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindChoi:
		return "choi"
	case KindKraus:
		return "kraus"
	case KindPauliLiouville:
		return "pauli-liouville"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Representation is an immutable tagged variant over the three channel
// encodings. The zero value is invalid; construct through the NewX
// functions, which validate shapes and record the system dimension
// explicitly.
type Representation struct {
	kind  Kind
	dim   int // system dimension D, validated at construction
	choi  *cmatrix.CDense
	kraus []*cmatrix.CDense
	pl    *cmatrix.CDense
}

// NewChoiRepresentation wraps a Choi matrix after validating its shape
// (square, perfect-square side). CPTP validity is NOT checked here; use
// ValidateChoi when the matrix comes from an untrusted source.
func NewChoiRepresentation(choi *cmatrix.CDense) (Representation, error) {
	d, err := choiSide(choi)
	if err != nil {
		return Representation{}, fmt.Errorf("NewChoiRepresentation: %w", err)
	}

	return Representation{kind: KindChoi, dim: d, choi: choi}, nil
}

// NewKrausRepresentation wraps a Kraus operator list after validating it
// is non-empty with square operators of one shared dimension.
func NewKrausRepresentation(ks []*cmatrix.CDense) (Representation, error) {
	if len(ks) == 0 {
		return Representation{}, fmt.Errorf("NewKrausRepresentation: empty operator list: %w", ErrInvalidRepresentation)
	}
	for _, k := range ks {
		if err := cmatrix.ValidateSquare(k); err != nil {
			return Representation{}, fmt.Errorf("NewKrausRepresentation: %w", err)
		}
		if k.Rows() != ks[0].Rows() {
			return Representation{}, fmt.Errorf("NewKrausRepresentation: mixed operator dimensions: %w", ErrInvalidRepresentation)
		}
	}

	return Representation{kind: KindKraus, dim: ks[0].Rows(), kraus: ks}, nil
}

// NewPauliLiouvilleRepresentation wraps a Pauli transfer matrix after
// validating its shape (square, side 4^n for n qubits).
func NewPauliLiouvilleRepresentation(pl *cmatrix.CDense) (Representation, error) {
	d, err := choiSide(pl)
	if err != nil {
		return Representation{}, fmt.Errorf("NewPauliLiouvilleRepresentation: %w", err)
	}
	if _, err = qubitCount(d * d); err != nil {
		return Representation{}, fmt.Errorf("NewPauliLiouvilleRepresentation: %w", err)
	}

	return Representation{kind: KindPauliLiouville, dim: d, pl: pl}, nil
}

// Kind returns the encoding tag.
func (r Representation) Kind() Kind { return r.kind }

// Dim returns the system dimension D recorded at construction.
func (r Representation) Dim() int { return r.dim }

// Choi returns the Choi payload and whether this representation carries
// one. The matrix is shared, not copied; treat it as immutable.
func (r Representation) Choi() (*cmatrix.CDense, bool) {
	return r.choi, r.kind == KindChoi && r.choi != nil
}

// Kraus returns the Kraus payload and whether this representation
// carries one. The slice is shared, not copied; treat it as immutable.
func (r Representation) Kraus() ([]*cmatrix.CDense, bool) {
	return r.kraus, r.kind == KindKraus && len(r.kraus) > 0
}

// PauliLiouville returns the Pauli transfer payload and whether this
// representation carries one.
func (r Representation) PauliLiouville() (*cmatrix.CDense, bool) {
	return r.pl, r.kind == KindPauliLiouville && r.pl != nil
}

// Convert re-encodes the representation as the target kind. Conversion
// is total over the three kinds and routes through the Choi form as the
// canonical hub; converting to the current kind returns the receiver
// unchanged.
//
// Stage 1 (Normalize): obtain the Choi matrix of the payload.
// Stage 2 (Encode): produce the target encoding from it.
//
// Errors:
//   - ErrInvalidRepresentation for an unconstructed (zero) value.
//   - ErrNonCPTP when a Kraus extraction meets a non-PSD Choi payload.
//   - ErrInvalidDimension for Pauli targets on non-qubit dimensions.
//
// Complexity: O(D⁶) worst case (eigendecomposition / basis sandwich).
func (r Representation) Convert(target Kind, opts ...Option) (Representation, error) {
	if r.kind == target {
		return r, nil
	}

	choi, err := r.asChoi()
	if err != nil {
		return Representation{}, fmt.Errorf("Convert(%s→%s): %w", r.kind, target, err)
	}

	switch target {
	case KindChoi:
		return Representation{kind: KindChoi, dim: r.dim, choi: choi}, nil

	case KindKraus:
		ks, kerr := ChoiToKraus(choi, opts...)
		if kerr != nil {
			return Representation{}, fmt.Errorf("Convert(%s→%s): %w", r.kind, target, kerr)
		}

		return Representation{kind: KindKraus, dim: r.dim, kraus: ks}, nil

	case KindPauliLiouville:
		pl, perr := ChoiToPauliLiouville(choi)
		if perr != nil {
			return Representation{}, fmt.Errorf("Convert(%s→%s): %w", r.kind, target, perr)
		}

		return Representation{kind: KindPauliLiouville, dim: r.dim, pl: pl}, nil

	default:
		return Representation{}, fmt.Errorf("Convert: unknown target %s: %w", target, ErrInvalidRepresentation)
	}
}

// asChoi normalizes any payload to the Choi form.
func (r Representation) asChoi() (*cmatrix.CDense, error) {
	switch r.kind {
	case KindChoi:
		if r.choi == nil {
			return nil, ErrInvalidRepresentation
		}

		return r.choi, nil

	case KindKraus:
		return KrausToChoi(r.kraus)

	case KindPauliLiouville:
		return PauliLiouvilleToChoi(r.pl)

	default:
		return nil, ErrInvalidRepresentation
	}
}
