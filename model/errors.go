package model

import "errors"

var (
	ErrEventNotFound = errors.New("model: event not found")
	ErrSampleFailed  = errors.New("failed to generate sample")
	ErrCorrupted     = errors.New("model corrupted")
)
