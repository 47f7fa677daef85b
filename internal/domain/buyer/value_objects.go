package buyer

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 100

var (
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidName  = errors.New("buyer name is required")
	ErrNameTooLong  = errors.New("buyer name is too long")
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Phone identifies a buyer; repeat purchases with the same phone reuse the
// same buyer row.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	v := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(s))
	if !phoneRegex.MatchString(v) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	v := strings.Join(strings.Fields(s), " ")
	if v == "" {
		return Name{}, ErrInvalidName
	}
	if utf8.RuneCountInString(v) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }
