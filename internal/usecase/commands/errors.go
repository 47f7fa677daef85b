package commands

import (
	"goalkick/internal/domain/ticket"
	"goalkick/internal/infra"
	"goalkick/internal/pkg/errs"
)

var (
	ErrValidation                 = errs.ErrValidation
	ErrDatabaseOperationFailed    = errs.ErrDatabaseOperationFailed
	ErrMatchUnavailable           = errs.New("match unavailable")
	ErrInsufficientSeats          = errs.New("insufficient seats")
	ErrTicketNotFound             = errs.New("ticket not found")
	ErrPaymentNotFound            = errs.New("payment not found")
	ErrDuplicateExternalReference = errs.New("external reference already used by another payment")
	ErrCodeExhausted              = errs.New("could not allocate a unique redemption code")
	ErrAlreadyTerminal            = ticket.ErrAlreadyTerminal
)

// mapNotFound turns a repository NOT_FOUND into the given sentinel and marks
// every other infrastructure failure as a database failure. Sentinels from
// this package pass through untouched.
func mapNotFound(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return toCommandErr(err)
}

func toCommandErr(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		ErrValidation,
		ErrMatchUnavailable,
		ErrInsufficientSeats,
		ErrTicketNotFound,
		ErrPaymentNotFound,
		ErrDuplicateExternalReference,
		ErrCodeExhausted,
		ErrAlreadyTerminal,
		ErrInvalidCredentials,
		ErrStaffInactive,
		ErrTokenGeneration,
	} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
