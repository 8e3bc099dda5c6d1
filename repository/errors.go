package repository

import "errors"

var (
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey marks a unique-constraint violation.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDuplicateSlot marks an appointment insert that hit the compound
	// (user, serviceType, date, time) unique index.
	ErrDuplicateSlot = errors.New("appointment slot already booked")

	// ErrIndexOutOfRange marks a purchase-ledger index outside [0, len).
	ErrIndexOutOfRange = errors.New("purchase index out of range")

	// ErrConflict marks a versioned write that lost its optimistic race
	// after retries were exhausted.
	ErrConflict = errors.New("concurrent modification conflict")

	// ErrAlreadyInWishlist marks a duplicate wishlist add.
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
)
