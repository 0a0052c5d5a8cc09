package models

import "errors"

var (
	// ErrBlankName rejects adding a person with an empty or blank name.
	ErrBlankName = errors.New("name must not be blank")

	// ErrDuplicateName rejects adding a name that already exists, ignoring case.
	ErrDuplicateName = errors.New("name already exists")

	// ErrEmptyLedger is returned when differences are computed over nobody.
	ErrEmptyLedger = errors.New("cannot compute differences of an empty ledger")

	// ErrUnknownPerson is returned when an operation names an id that is not in the ledger.
	ErrUnknownPerson = errors.New("unknown person")

	// ErrInvalidMoney rejects money input that is not a number.
	ErrInvalidMoney = errors.New("money must be a number")
)

// IsValidation reports whether err is a user input problem that leaves the
// ledger unchanged and should be shown to the user.
func IsValidation(err error) bool {
	return errors.Is(err, ErrBlankName) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrUnknownPerson) ||
		errors.Is(err, ErrInvalidMoney)
}
