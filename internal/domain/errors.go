package domain

import (
	"errors"
	"fmt"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid status")
	ErrConflict      = errors.New("conflict")
	ErrUnauthorized  = errors.New("unauthorized")

	ErrSubnetNotFound  = fmt.Errorf("subnet %w", ErrNotFound)
	ErrScopeNotFound   = fmt.Errorf("scope %w", ErrNotFound)
	ErrAddressNotFound = fmt.Errorf("address %w", ErrNotFound)

	ErrInvalidFormat  = addrmath.ErrInvalidFormat
	ErrInvalidAddress = addrmath.ErrInvalidAddress
	ErrInvalidPrefix  = addrmath.ErrInvalidPrefix
)

// ErrorKind is the coarse taxonomy callers branch on.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidFormat
	KindInvalidAddress
	KindInvalidPrefix
	KindInvalidStatus
	KindInvalidInput
	KindNotFound
	KindConflict
	KindUnauthorized
)

var kindNames = map[ErrorKind]string{
	KindUnknown:        "Unknown",
	KindInvalidFormat:  "InvalidFormat",
	KindInvalidAddress: "InvalidAddress",
	KindInvalidPrefix:  "InvalidPrefix",
	KindInvalidStatus:  "InvalidStatus",
	KindInvalidInput:   "InvalidInput",
	KindNotFound:       "NotFound",
	KindConflict:       "Conflict",
	KindUnauthorized:   "Unauthorized",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// KindOf classifies err. The parse kinds are checked first because those
// errors are also wrapped in ErrInvalidInput by the service layer.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidFormat):
		return KindInvalidFormat
	case errors.Is(err, ErrInvalidAddress):
		return KindInvalidAddress
	case errors.Is(err, ErrInvalidPrefix):
		return KindInvalidPrefix
	case errors.Is(err, ErrInvalidStatus):
		return KindInvalidStatus
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindUnknown
	}
}

// IsValidation reports whether err is caused by caller input.
func IsValidation(err error) bool {
	switch KindOf(err) {
	case KindInvalidFormat, KindInvalidAddress, KindInvalidPrefix, KindInvalidStatus, KindInvalidInput:
		return true
	default:
		return false
	}
}
