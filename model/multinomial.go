package model

import (
	"fmt"
	"io"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/bn96/godm/codec"
	"github.com/bn96/godm/sparse"
)

// Multinomial counts observed events and folds the counts with the
// pseudo-counts of an owned Dirichlet prior to produce smoothed
// probabilities. Only events that have been incremented or
// decremented at least once appear in the count table; the running
// total is maintained incrementally. Counts are unguarded: a
// decrement may drive an event or the total negative, and sampling
// over such a table may fail.
type Multinomial[T comparable] struct {
	counts      *sparse.Vector[T]
	totalCounts float64
	prior       *Dirichlet[T]
}

// NewMultinomial creates a counter with no smoothing, i.e. a
// symmetric prior with alpha zero over an empty universe.
func NewMultinomial[T comparable]() *Multinomial[T] {
	return NewMultinomialWithPrior(NewSymmetricDirichlet[T](0, 0))
}

// NewMultinomialWithPrior creates a counter owning a copy of the
// given prior.
func NewMultinomialWithPrior[T comparable](prior *Dirichlet[T]) *Multinomial[T] {
	return &Multinomial[T]{
		counts: sparse.NewVector[T](),
		prior:  prior.Clone(),
	}
}

// increment the count of ev, creating its entry if absent
func (this *Multinomial[T]) Incr(ev T, count float64) {
	this.counts.Add(ev, count)
	this.totalCounts += count
}

// decrement the count of ev, creating its entry if absent
func (this *Multinomial[T]) Decr(ev T, count float64) {
	this.counts.Add(ev, -count)
	this.totalCounts -= count
}

// get the smoothed count of ev: the observed count plus the prior
// pseudo-count. Fails if ev was never incremented or decremented,
// or if an asymmetric prior has no alpha for it.
func (this *Multinomial[T]) Count(ev T) (float64, error) {
	observed, err := this.counts.Get(ev)
	if err != nil {
		return 0, fmt.Errorf("%w: no observed count for event %v", ErrEventNotFound, ev)
	}
	alpha, err := this.prior.PseudoCount(ev)
	if err != nil {
		return 0, err
	}
	return observed + alpha, nil
}

// get the smoothed total: observed total plus the prior sum
func (this *Multinomial[T]) Total() float64 {
	return this.totalCounts + this.prior.PseudoCountSum()
}

// get the smoothed probability of ev. A counter with a zero smoothed
// total yields the IEEE quotient (NaN or Inf) rather than an error.
func (this *Multinomial[T]) Probability(ev T) (float64, error) {
	count, err := this.Count(ev)
	if err != nil {
		return 0, err
	}
	return count / this.Total(), nil
}

// visit every event ever incremented or decremented, in unspecified
// order re-derived from the live table on each call
func (this *Multinomial[T]) EachSeenEvent(visit func(ev T)) {
	this.counts.Range(func(ev T, _ float64) {
		visit(ev)
	})
}

// drop all observed counts, keeping the prior
func (this *Multinomial[T]) Reset() {
	this.counts.Reset()
	this.totalCounts = 0
}

// get the owned prior. The returned value must not be modified.
func (this *Multinomial[T]) Prior() *Dirichlet[T] {
	return this.prior
}

// deep copy the counter and its prior
func (this *Multinomial[T]) Clone() *Multinomial[T] {
	return &Multinomial[T]{
		counts:      this.counts.Clone(),
		totalCounts: this.totalCounts,
		prior:       this.prior.Clone(),
	}
}

// Sample draws one event with probability proportional to its
// smoothed count: a uniform variate is drawn from src and the seen
// events are scanned accumulating probabilities until the running
// sum reaches it. Fails with ErrSampleFailed when the scan exhausts
// the table first, which happens for an empty counter or when the
// probabilities are malformed (negative counts, sum below one).
func (this *Multinomial[T]) Sample(src rand.Source) (T, error) {
	var picked T

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}
	rnd := uniform.Rand()

	var found bool
	var perr error
	cumsum := 0.0
	this.counts.Range(func(ev T, _ float64) {
		if found || perr != nil {
			return
		}
		p, err := this.Probability(ev)
		if err != nil {
			perr = err
			return
		}
		cumsum += p
		if cumsum >= rnd {
			picked = ev
			found = true
		}
	})
	if perr != nil {
		return picked, perr
	}
	if !found {
		return picked, ErrSampleFailed
	}
	return picked, nil
}

// Merge folds the observed counts of other into this counter,
// creating entries as needed. Priors are configuration, not state:
// this counter keeps its own prior and other's prior is ignored.
func (this *Multinomial[T]) Merge(other *Multinomial[T]) {
	other.counts.Range(func(ev T, count float64) {
		this.counts.Add(ev, count)
	})
	this.totalCounts += other.totalCounts
}

// serialize the counter: the running total, the count table and
// finally the prior, all in the packed binary form
func (this *Multinomial[T]) Save(w io.Writer, events codec.EventCodec[T]) error {
	if err := codec.WriteFloat64(w, this.totalCounts); err != nil {
		return err
	}
	if err := codec.WriteUint64(w, uint64(this.counts.Len())); err != nil {
		return err
	}
	var err error
	this.counts.Range(func(ev T, count float64) {
		if err != nil {
			return
		}
		if err = events.Write(w, ev); err != nil {
			return
		}
		err = codec.WriteFloat64(w, count)
	})
	if err != nil {
		return err
	}
	return this.prior.Save(w, events)
}

// deserialize a counter saved with Save. The counter is cleared
// first; if the stream holds no data at all for the two leading
// scalars the counter is left cleared, which is the sanctioned
// empty-state path rather than an error. A stream that ends after
// the first scalar is reported as truncated.
func (this *Multinomial[T]) Load(r io.Reader, events codec.EventCodec[T]) error {
	this.Reset()

	total, n1, err := codec.ReadFloat64(r)
	if err != nil {
		return err
	}
	size, n2, err := codec.ReadUint64(r)
	if err != nil {
		return err
	}
	if n1+n2 == 0 {
		return nil
	}
	if n1 == 0 || n2 == 0 {
		return codec.ErrTruncated
	}

	for i := uint64(0); i < size; i += 1 {
		ev, n, err := events.Read(r)
		if err != nil {
			return err
		}
		if n == 0 {
			return codec.ErrTruncated
		}
		count, n, err := codec.ReadFloat64(r)
		if err != nil {
			return err
		}
		if n == 0 {
			return codec.ErrTruncated
		}
		this.counts.Set(ev, count)
	}
	this.totalCounts = total

	return this.prior.Load(r, events)
}
