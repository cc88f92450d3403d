package codec

import "errors"

var (
	ErrValueOverflow = errors.New("codec: varint overflows uint64")
	ErrTruncated     = errors.New("codec: stream truncated mid value")
)
