package codec

import (
	"encoding/binary"
	"io"
	"math"
)

// packed binary primitives shared by all model serialization. Writers
// report only errors; readers additionally report the number of bytes
// consumed, with a zero count signalling a cleanly exhausted stream
// rather than a failure. Any stream that ends after the first byte of
// a value is reported as ErrTruncated.

// serialize v as an unsigned varint
func WriteUint64(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

// deserialize an unsigned varint, returning the value and the
// number of bytes consumed
func ReadUint64(r io.Reader) (uint64, int, error) {
	var v uint64
	var shift uint
	var buf [1]byte
	for n := 0; ; n += 1 {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF {
				if n == 0 {
					return 0, 0, nil
				}
				return 0, n, ErrTruncated
			}
			return 0, n, err
		}
		b := buf[0]
		if shift >= 64 || (shift == 63 && b > 1) {
			return 0, n + 1, ErrValueOverflow
		}
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, n + 1, nil
		}
		shift += 7
	}
}

// serialize v as its IEEE-754 bits in little-endian order
func WriteFloat64(w io.Writer, v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}

// deserialize a little-endian float64, returning the value and the
// number of bytes consumed
func ReadFloat64(r io.Reader) (float64, int, error) {
	var buf [8]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if err == io.EOF {
			return 0, 0, nil
		}
		if err == io.ErrUnexpectedEOF {
			return 0, n, ErrTruncated
		}
		return 0, n, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), n, nil
}

// serialize s as a varint byte length followed by the raw bytes
func WriteString(w io.Writer, s string) error {
	if err := WriteUint64(w, uint64(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// deserialize a length-prefixed string, returning the value and the
// number of bytes consumed including the prefix
func ReadString(r io.Reader) (string, int, error) {
	size, n, err := ReadUint64(r)
	if err != nil || n == 0 {
		return "", n, err
	}
	buf := make([]byte, size)
	m, err := io.ReadFull(r, buf)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrTruncated
		}
		return "", n + m, err
	}
	return string(buf), n + m, nil
}
