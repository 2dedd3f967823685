package addrmath

import "errors"

var (
	ErrInvalidFormat  = errors.New("invalid format")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidPrefix  = errors.New("invalid prefix")
)
