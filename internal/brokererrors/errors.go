package brokererrors

import "errors"

// Repository-level errors
var (
	ErrBidNotFound      = errors.New("bid not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoHistory        = errors.New("no history entries for bid")
)

// Business logic errors
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotPending            = errors.New("only pending bids can be approved or rejected")
	ErrMissingRejectionNotes = errors.New("rejection reason is required")
	ErrInvalidStatus         = errors.New("invalid bid status")
	ErrNotRefundable         = errors.New("only outbid or lost bids can be refunded")
	ErrAlreadyRefunded       = errors.New("bid already refunded")
	ErrNoPayment             = errors.New("no payment found for bid")
	ErrNotDeletable          = errors.New("only won or lost bids can be deleted")
	ErrNotEmployee           = errors.New("target user is not an employee")
	ErrEmployeeInactive      = errors.New("employee already deactivated")
)

// Authorization errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
)

// External service errors
var (
	ErrGatewayFailure = errors.New("payment gateway failure")
)
