package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-broker/internal/brokererrors"
	model "auction-broker/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of BrokerDB.
// The write lock is held across the bid write and the history append in
// UpdateBidStatus, so a transition and its audit row are a single unit.
type MemoryRepo struct {
	mu      sync.RWMutex
	bids    map[string]model.Bid
	history map[string][]model.BidHistoryEntry
	users   map[string]model.User
	actions map[string][]model.EmployeeAction
	seq     map[string]int
	nextSeq int
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bids:    make(map[string]model.Bid),
		history: make(map[string][]model.BidHistoryEntry),
		users:   make(map[string]model.User),
		actions: make(map[string][]model.EmployeeAction),
		seq:     make(map[string]int),
	}
}

// CreateBid stores a new bid
func (r *MemoryRepo) CreateBid(ctx context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bid.BidID]; ok {
		return fmt.Errorf("create bid %s: bid id already exists", bid.BidID)
	}

	r.bids[bid.BidID] = bid
	r.nextSeq++
	r.seq[bid.BidID] = r.nextSeq
	return nil
}

// GetBid returns the bid with the given id
func (r *MemoryRepo) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, brokererrors.ErrBidNotFound)
	}
	return bid, nil
}

// GetBidsByCustomer returns all bids owned by a customer, newest first
func (r *MemoryRepo) GetBidsByCustomer(ctx context.Context, customerID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if b.CustomerID == customerID {
			bids = append(bids, b)
		}
	}
	r.sortNewestFirst(bids)
	return bids, nil
}

// GetAllBids returns every bid, newest first
func (r *MemoryRepo) GetAllBids(ctx context.Context) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0, len(r.bids))
	for _, b := range r.bids {
		bids = append(bids, b)
	}
	r.sortNewestFirst(bids)
	return bids, nil
}

// sortNewestFirst orders bids by creation sequence, newest first.
// Callers must hold at least the read lock.
func (r *MemoryRepo) sortNewestFirst(bids []model.Bid) {
	sort.Slice(bids, func(i, j int) bool {
		return r.seq[bids[i].BidID] > r.seq[bids[j].BidID]
	})
}

// UpdateBidStatus persists the updated bid and appends its history entry
// under a single write lock
func (r *MemoryRepo) UpdateBidStatus(ctx context.Context, bid model.Bid, entry model.BidHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.bids[bid.BidID]
	if !ok {
		return fmt.Errorf("update bid %s: %w", bid.BidID, brokererrors.ErrBidNotFound)
	}

	bid.CreatedAt = current.CreatedAt
	r.bids[bid.BidID] = bid
	r.history[bid.BidID] = append(r.history[bid.BidID], entry)
	return nil
}

// SetPaymentIntent stores the payment intent reference on a bid
func (r *MemoryRepo) SetPaymentIntent(ctx context.Context, bidID, intentID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return fmt.Errorf("set payment intent for bid %s: %w", bidID, brokererrors.ErrBidNotFound)
	}

	bid.PaymentIntentID = intentID
	bid.UpdatedAt = at
	r.bids[bidID] = bid
	return nil
}

// MarkRefunded flips the refunded flag and stores the refund id in both
// refund reference fields. Fails if the bid was already refunded, so two
// concurrent callers can never both succeed.
func (r *MemoryRepo) MarkRefunded(ctx context.Context, bidID, refundID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return fmt.Errorf("mark refunded for bid %s: %w", bidID, brokererrors.ErrBidNotFound)
	}
	if bid.Refunded {
		return fmt.Errorf("mark refunded for bid %s: %w", bidID, brokererrors.ErrAlreadyRefunded)
	}

	bid.Refunded = true
	bid.DepositRefundID = refundID
	bid.FeeRefundID = refundID
	bid.UpdatedAt = at
	r.bids[bidID] = bid
	return nil
}

// DeleteBid removes a bid and cascades to its history entries
func (r *MemoryRepo) DeleteBid(ctx context.Context, bidID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bidID]; !ok {
		return fmt.Errorf("delete bid %s: %w", bidID, brokererrors.ErrBidNotFound)
	}

	delete(r.bids, bidID)
	delete(r.history, bidID)
	delete(r.seq, bidID)
	return nil
}

// GetBidHistory returns a bid's history entries in transition order
func (r *MemoryRepo) GetBidHistory(ctx context.Context, bidID string) ([]model.BidHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.bids[bidID]; !ok {
		return nil, fmt.Errorf("get history for bid %s: %w", bidID, brokererrors.ErrBidNotFound)
	}
	return append([]model.BidHistoryEntry(nil), r.history[bidID]...), nil
}

// CreateUser stores a new user account
func (r *MemoryRepo) CreateUser(ctx context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; ok {
		return fmt.Errorf("create user %s: user id already exists", user.UserID)
	}
	r.users[user.UserID] = user
	return nil
}

// GetUser returns the user with the given id
func (r *MemoryRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, brokererrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUsersByRole returns all users holding the given role
func (r *MemoryRepo) GetUsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

// DeactivateUser flips the active flag. The row is never removed.
func (r *MemoryRepo) DeactivateUser(ctx context.Context, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("deactivate user %s: %w", userID, brokererrors.ErrUserNotFound)
	}

	user.Active = false
	user.UpdatedAt = at
	r.users[userID] = user
	return nil
}

// RecordEmployeeAction appends an audit entry for an employee account
func (r *MemoryRepo) RecordEmployeeAction(ctx context.Context, action model.EmployeeAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions[action.EmployeeID] = append(r.actions[action.EmployeeID], action)
	return nil
}

// GetEmployeeActions returns the audit log for an employee, newest first
func (r *MemoryRepo) GetEmployeeActions(ctx context.Context, employeeID string) ([]model.EmployeeAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.actions[employeeID]
	out := make([]model.EmployeeAction, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

// AddUser seeds a user account directly. This method is intended for tests only.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}
