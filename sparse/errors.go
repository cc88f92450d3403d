package sparse

import "errors"

var (
	ErrKeyNotFound = errors.New("sparse: key not found")
)
