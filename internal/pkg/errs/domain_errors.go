package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Directory errors
	ErrCanteenNotFound = errors.New("canteen not found")
	ErrStudentNotFound = errors.New("student not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPastDateTime        = errors.New("reservation date and time cannot be in the past")
	ErrOutsideWorkingHours = errors.New("time is outside working hours")
	ErrDuplicateBooking    = errors.New("student already holds a reservation for this time slot")
	ErrSlotFull            = errors.New("slot is fully booked")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrNotReservationOwner = errors.New("reservation belongs to another student")

	// Canteen / student management errors
	ErrAdminRequired          = errors.New("admin student required")
	ErrCanteenHasReservations = errors.New("canteen has reservations and cannot be deleted")
	ErrEmailTaken             = errors.New("email already in use")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
