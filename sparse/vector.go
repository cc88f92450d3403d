package sparse

// internal sparse vector representation
type Vector[T comparable] struct {
	data map[T]float64
}

// NewVector creates an empty sparse vector mapping events of type T
// to float64 values. Only keys that have been explicitly set are
// stored; iteration order over the table is unspecified.
func NewVector[T comparable]() *Vector[T] {
	return &Vector[T]{
		data: make(map[T]float64),
	}
}

// get the number of stored keys
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// get the value of key k, failing if k has never been set
func (v *Vector[T]) Get(k T) (float64, error) {
	val, ok := v.data[k]
	if !ok {
		return 0, ErrKeyNotFound
	}
	return val, nil
}

// set key k to val, inserting it if absent
func (v *Vector[T]) Set(k T, val float64) {
	v.data[k] = val
}

// add delta to the value of key k, inserting it with an initial
// value of zero if absent
func (v *Vector[T]) Add(k T, delta float64) {
	v.data[k] += delta
}

// visit every stored (key, value) pair in unspecified order
func (v *Vector[T]) Range(visit func(k T, val float64)) {
	for k, val := range v.data {
		visit(k, val)
	}
}

// exchange the contents of two vectors
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
}

// deep copy the vector
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewVector[T]()
	for k, val := range v.data {
		c.data[k] = val
	}
	return c
}

// drop all stored keys
func (v *Vector[T]) Reset() {
	v.data = make(map[T]float64)
}
