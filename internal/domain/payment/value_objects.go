package payment

import (
	"errors"
	"strings"
)

const MaxExternalRefLength = 64

var (
	ErrEmptyExternalRef   = errors.New("external reference is required")
	ErrExternalRefTooLong = errors.New("external reference is too long")
)

// ExternalRef is the gateway's transaction id. It is unique across all
// payment attempts.
type ExternalRef struct {
	value string
}

func NewExternalRef(s string) (ExternalRef, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return ExternalRef{}, ErrEmptyExternalRef
	}
	if len(v) > MaxExternalRefLength {
		return ExternalRef{}, ErrExternalRefTooLong
	}
	return ExternalRef{value: v}, nil
}

func (r ExternalRef) String() string { return r.value }
