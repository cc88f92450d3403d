package codec

import "io"

// EventCodec serializes event keys of type T to the packed binary
// form. Numeric event types are written as packed varints and textual
// event types as length-prefixed raw bytes; Read follows the same
// zero-bytes-consumed end-of-stream convention as the primitives.
type EventCodec[T comparable] interface {
	Write(w io.Writer, ev T) error
	Read(r io.Reader) (T, int, error)
}

// packed varint encoding for uint32 event ids
type Uint32Event struct{}

func (Uint32Event) Write(w io.Writer, ev uint32) error {
	return WriteUint64(w, uint64(ev))
}

func (Uint32Event) Read(r io.Reader) (uint32, int, error) {
	v, n, err := ReadUint64(r)
	return uint32(v), n, err
}

// packed varint encoding for uint64 event ids
type Uint64Event struct{}

func (Uint64Event) Write(w io.Writer, ev uint64) error {
	return WriteUint64(w, ev)
}

func (Uint64Event) Read(r io.Reader) (uint64, int, error) {
	return ReadUint64(r)
}

// length-prefixed encoding for textual events
type StringEvent struct{}

func (StringEvent) Write(w io.Writer, ev string) error {
	return WriteString(w, ev)
}

func (StringEvent) Read(r io.Reader) (string, int, error) {
	return ReadString(r)
}
