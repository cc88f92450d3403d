package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorSetGet(t *testing.T) {
	v := NewVector[string]()

	v.Set("a", 1.5)
	v.Set("b", 2.0)
	v.Set("a", 3.0)

	assert.Equal(t, 2, v.Len())

	val, err := v.Get("a")
	assert.Nil(t, err)
	assert.Equal(t, 3.0, val)

	_, err = v.Get("c")
	assert.Equal(t, ErrKeyNotFound, err)
}

func TestVectorAdd(t *testing.T) {
	v := NewVector[uint32]()

	v.Add(uint32(7), 2.0)
	v.Add(uint32(7), -0.5)

	val, err := v.Get(uint32(7))
	assert.Nil(t, err)
	assert.Equal(t, 1.5, val)
}

func TestVectorRange(t *testing.T) {
	v := NewVector[string]()
	v.Set("a", 1.0)
	v.Set("b", 2.0)
	v.Set("c", 3.0)

	sum := 0.0
	seen := 0
	v.Range(func(k string, val float64) {
		sum += val
		seen += 1
	})

	assert.Equal(t, 3, seen)
	assert.Equal(t, 6.0, sum)
}

func TestVectorSwap(t *testing.T) {
	a := NewVector[string]()
	a.Set("x", 1.0)
	b := NewVector[string]()
	b.Set("y", 2.0)
	b.Set("z", 3.0)

	a.Swap(b)

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, b.Len())

	val, err := b.Get("x")
	assert.Nil(t, err)
	assert.Equal(t, 1.0, val)
}

func TestVectorCloneReset(t *testing.T) {
	v := NewVector[string]()
	v.Set("a", 1.0)

	c := v.Clone()
	c.Set("a", 9.0)

	val, err := v.Get("a")
	assert.Nil(t, err)
	assert.Equal(t, 1.0, val)

	v.Reset()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 1, c.Len())
}
