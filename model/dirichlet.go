package model

import (
	"fmt"
	"io"
	"math"

	"github.com/bn96/godm/codec"
	"github.com/bn96/godm/sparse"
)

type priorKind uint64

const (
	symmetricPrior  priorKind = iota // one shared alpha over a fixed-size universe
	asymmetricPrior                  // one independent alpha per known event
)

// Dirichlet is a pseudo-count prior over a discrete event space.
// A symmetric prior gives every event the same pseudo-count alpha
// over an implicit universe of n events; an asymmetric prior carries
// an explicit alpha per known event and is undefined elsewhere.
// Values are immutable after construction: the cached pseudo-count
// sum is computed once and carried through copies and swaps.
type Dirichlet[T comparable] struct {
	kind        priorKind
	fixedAlpha  float64
	sparseAlpha *sparse.Vector[T] // live only when kind == asymmetricPrior
	alphaSum    float64
}

// NewSymmetricDirichlet creates a prior giving every event the
// pseudo-count alpha over an implicit universe of n events.
// Arguments are not validated; alpha and n are caller responsibility.
func NewSymmetricDirichlet[T comparable](alpha float64, n uint64) *Dirichlet[T] {
	return &Dirichlet[T]{
		kind:       symmetricPrior,
		fixedAlpha: alpha,
		alphaSum:   float64(n) * alpha,
	}
}

// NewAsymmetricDirichlet creates a prior with an independent
// pseudo-count per event. The prior is defined over exactly the
// events given; querying any other event fails.
func NewAsymmetricDirichlet[T comparable](alphas map[T]float64) *Dirichlet[T] {
	v := sparse.NewVector[T]()
	sum := 0.0
	for ev, alpha := range alphas {
		v.Set(ev, alpha)
		sum += alpha
	}
	return &Dirichlet[T]{
		kind:        asymmetricPrior,
		sparseAlpha: v,
		alphaSum:    sum,
	}
}

// get the pseudo-count of ev. A symmetric prior answers for any
// event; an asymmetric prior fails for events it was not built with.
func (this *Dirichlet[T]) PseudoCount(ev T) (float64, error) {
	if this.kind == symmetricPrior {
		return this.fixedAlpha, nil
	}
	alpha, err := this.sparseAlpha.Get(ev)
	if err != nil {
		return 0, fmt.Errorf("%w: no alpha for event %v", ErrEventNotFound, ev)
	}
	return alpha, nil
}

// get the cached sum of pseudo-counts over the whole event universe
func (this *Dirichlet[T]) PseudoCountSum() float64 {
	return this.alphaSum
}

// deep copy the prior
func (this *Dirichlet[T]) Clone() *Dirichlet[T] {
	c := &Dirichlet[T]{
		kind:       this.kind,
		fixedAlpha: this.fixedAlpha,
		alphaSum:   this.alphaSum,
	}
	if this.sparseAlpha != nil {
		c.sparseAlpha = this.sparseAlpha.Clone()
	}
	return c
}

// exchange the contents of two priors
func (this *Dirichlet[T]) Swap(other *Dirichlet[T]) {
	*this, *other = *other, *this
}

// serialize the prior: a varint discriminant, then either
// (alpha, n) for a symmetric prior or the (event, alpha) table for
// an asymmetric one. n is derived as round(alphaSum / alpha), so a
// symmetric prior whose sum drifted off an exact multiple of alpha
// does not survive a round trip bit for bit.
func (this *Dirichlet[T]) Save(w io.Writer, events codec.EventCodec[T]) error {
	if err := codec.WriteUint64(w, uint64(this.kind)); err != nil {
		return err
	}

	if this.kind == symmetricPrior {
		if err := codec.WriteFloat64(w, this.fixedAlpha); err != nil {
			return err
		}
		var n uint64
		if this.fixedAlpha != 0 {
			n = uint64(math.Round(this.alphaSum / this.fixedAlpha))
		}
		return codec.WriteUint64(w, n)
	}

	if err := codec.WriteUint64(w, uint64(this.sparseAlpha.Len())); err != nil {
		return err
	}
	var err error
	this.sparseAlpha.Range(func(ev T, alpha float64) {
		if err != nil {
			return
		}
		if err = events.Write(w, ev); err != nil {
			return
		}
		err = codec.WriteFloat64(w, alpha)
	})
	return err
}

// deserialize a prior, replacing this one wholesale. Zero bytes on
// the discriminant leaves the prior unchanged; a stream that ends
// after the discriminant is reported as truncated.
func (this *Dirichlet[T]) Load(r io.Reader, events codec.EventCodec[T]) error {
	kind, n, err := codec.ReadUint64(r)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	switch priorKind(kind) {
	case symmetricPrior:
		alpha, n, err := codec.ReadFloat64(r)
		if err != nil {
			return err
		}
		if n == 0 {
			return codec.ErrTruncated
		}
		universe, n, err := codec.ReadUint64(r)
		if err != nil {
			return err
		}
		if n == 0 {
			return codec.ErrTruncated
		}
		*this = *NewSymmetricDirichlet[T](alpha, universe)
		return nil

	case asymmetricPrior:
		size, n, err := codec.ReadUint64(r)
		if err != nil {
			return err
		}
		if n == 0 {
			return codec.ErrTruncated
		}
		alphas := make(map[T]float64, size)
		for i := uint64(0); i < size; i += 1 {
			ev, n, err := events.Read(r)
			if err != nil {
				return err
			}
			if n == 0 {
				return codec.ErrTruncated
			}
			alpha, n, err := codec.ReadFloat64(r)
			if err != nil {
				return err
			}
			if n == 0 {
				return codec.ErrTruncated
			}
			alphas[ev] = alpha
		}
		*this = *NewAsymmetricDirichlet(alphas)
		return nil
	}

	return fmt.Errorf("%w: unknown prior type %d", ErrCorrupted, kind)
}
