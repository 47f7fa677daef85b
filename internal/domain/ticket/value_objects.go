package ticket

import (
	"errors"
	"strings"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10")
	ErrEmptyCode       = errors.New("redemption code is empty")
)

type Quantity struct {
	value int
}

func NewQuantity(n int) (Quantity, error) {
	if n < MinQuantity || n > MaxQuantity {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: n}, nil
}

func (q Quantity) Int() int { return q.value }

// Code is a redemption code as printed on the ticket and encoded in its QR.
type Code struct {
	value string
}

// NormalizeCode trims and upper-cases scanner input. Scanners and manual
// entry both produce stray whitespace and mixed case.
func NormalizeCode(raw string) (Code, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if v == "" {
		return Code{}, ErrEmptyCode
	}
	return Code{value: v}, nil
}

func (c Code) String() string { return c.value }

func (c Code) IsZero() bool { return c.value == "" }
