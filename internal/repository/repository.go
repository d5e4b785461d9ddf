package repository

import (
	"context"
	"time"

	model "auction-broker/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// BidStore defines bid persistence for the brokerage.
//
// UpdateBidStatus must persist the new bid state and append the history entry
// as one unit: a transition without its audit row is an inconsistent state.
// MarkRefunded must be conditional on the refunded flag being unset so that
// concurrent refund attempts cannot both succeed.
type BidStore interface {
	CreateBid(ctx context.Context, bid model.Bid) error
	GetBid(ctx context.Context, bidID string) (model.Bid, error)
	GetBidsByCustomer(ctx context.Context, customerID string) ([]model.Bid, error)
	GetAllBids(ctx context.Context) ([]model.Bid, error)
	UpdateBidStatus(ctx context.Context, bid model.Bid, entry model.BidHistoryEntry) error
	SetPaymentIntent(ctx context.Context, bidID, intentID string, at time.Time) error
	MarkRefunded(ctx context.Context, bidID, refundID string, at time.Time) error
	DeleteBid(ctx context.Context, bidID string) error
	GetBidHistory(ctx context.Context, bidID string) ([]model.BidHistoryEntry, error)
}

// UserStore defines user persistence. Users are soft-deactivated, never removed.
type UserStore interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, userID string) (model.User, error)
	GetUsersByRole(ctx context.Context, role model.Role) ([]model.User, error)
	DeactivateUser(ctx context.Context, userID string, at time.Time) error
}

// ActionStore defines the append-only employee action audit log.
type ActionStore interface {
	RecordEmployeeAction(ctx context.Context, action model.EmployeeAction) error
	GetEmployeeActions(ctx context.Context, employeeID string) ([]model.EmployeeAction, error)
}

// BrokerDB is the full storage contract every backend must satisfy.
type BrokerDB interface {
	BidStore
	UserStore
	ActionStore
}
