package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-broker/internal/brokererrors"
	"auction-broker/internal/gateway"
	"auction-broker/internal/models"
	"auction-broker/internal/repository"
	"auction-broker/utils"

	"github.com/shopspring/decimal"
)

// DefaultServiceFee is the flat proxy-bidding charge applied to every bid
var DefaultServiceFee = decimal.RequireFromString("215.00")

// depositRate is the refundable deposit as a fraction of the declared maximum
var depositRate = decimal.RequireFromString("0.10")

// Service orchestrates the bid lifecycle: which transitions are legal, when
// payment intents are created, when refunds are issued, and the history
// entries that accompany every transition.
type Service struct {
	repo       repository.BidStore
	gateway    gateway.PaymentGateway
	serviceFee decimal.Decimal
	currency   string

	// refundLocks serializes refund issuance per bid id so two concurrent
	// refund requests cannot both reach the gateway.
	refundLocks sync.Map
}

// NewService creates a lifecycle service with the default flat fee
func NewService(repo repository.BidStore, gw gateway.PaymentGateway, currency string) *Service {
	return &Service{
		repo:       repo,
		gateway:    gw,
		serviceFee: DefaultServiceFee,
		currency:   currency,
	}
}

// NewServiceWithFee creates a lifecycle service with a custom flat fee
func NewServiceWithFee(repo repository.BidStore, gw gateway.PaymentGateway, currency string, fee decimal.Decimal) *Service {
	s := NewService(repo, gw, currency)
	s.serviceFee = fee
	return s
}

// CreateBid validates and stores a new maximum-bid instruction. The deposit
// is 10% of the declared maximum rounded to 2 decimal places; total paid is
// fee plus deposit.
func (s *Service) CreateBid(ctx context.Context, auth models.AuthContext, lotNumber string, maxBidAmount decimal.Decimal) (models.Bid, error) {
	if strings.TrimSpace(lotNumber) == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing lot number", brokererrors.ErrInvalidInput)
	}
	if !maxBidAmount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - max bid amount must be positive", brokererrors.ErrInvalidInput)
	}

	deposit := maxBidAmount.Mul(depositRate).Round(2)
	now := time.Now().UTC()
	bid := models.Bid{
		BidID:         utils.GenerateID(),
		CustomerID:    auth.UserID,
		LotNumber:     lotNumber,
		MaxBidAmount:  maxBidAmount,
		ServiceFee:    s.serviceFee,
		DepositAmount: deposit,
		TotalPaid:     s.serviceFee.Add(deposit),
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to create bid for lot %s: %w", lotNumber, err)
	}
	return bid, nil
}

// GetBid returns a single bid. Customers may only read their own bids.
func (s *Service) GetBid(ctx context.Context, auth models.AuthContext, bidID string) (models.Bid, error) {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if auth.Role == models.RoleCustomer && bid.CustomerID != auth.UserID {
		return models.Bid{}, fmt.Errorf("service: bid %s: %w", bidID, brokererrors.ErrForbidden)
	}
	return bid, nil
}

// GetBidHistory returns a bid's transition log. Same ownership rule as GetBid.
func (s *Service) GetBidHistory(ctx context.Context, auth models.AuthContext, bidID string) ([]models.BidHistoryEntry, error) {
	if _, err := s.GetBid(ctx, auth, bidID); err != nil {
		return nil, err
	}
	entries, err := s.repo.GetBidHistory(ctx, bidID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get history for bid %s: %w", bidID, err)
	}
	return entries, nil
}

// ListCustomerBids returns the caller's bids, newest first
func (s *Service) ListCustomerBids(ctx context.Context, auth models.AuthContext) ([]models.Bid, error) {
	bids, err := s.repo.GetBidsByCustomer(ctx, auth.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for customer %s: %w", auth.UserID, err)
	}
	return bids, nil
}

// ListAllBids returns every bid, newest first, for the employee/admin views
func (s *Service) ListAllBids(ctx context.Context, auth models.AuthContext) ([]models.Bid, error) {
	bids, err := s.repo.GetAllBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids: %w", err)
	}
	return bids, nil
}

// CreatePaymentIntent creates (or re-fetches) the gateway intent for a bid's
// total paid amount and returns the client secret. The operation is
// idempotent: a bid never gets a second intent.
func (s *Service) CreatePaymentIntent(ctx context.Context, auth models.AuthContext, bidID string) (string, error) {
	bid, err := s.GetBid(ctx, auth, bidID)
	if err != nil {
		return "", err
	}

	if bid.PaymentIntentID != "" {
		intent, err := s.gateway.RetrieveIntent(ctx, bid.PaymentIntentID)
		if err != nil {
			return "", fmt.Errorf("service: %w", err)
		}
		return intent.ClientSecret, nil
	}

	intent, err := s.gateway.CreateIntent(ctx, bid.TotalPaid, s.currency, map[string]string{
		"bid_id":      bid.BidID,
		"customer_id": bid.CustomerID,
		"lot_number":  bid.LotNumber,
	})
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}

	if err := s.repo.SetPaymentIntent(ctx, bid.BidID, intent.ID, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("service: failed to store payment intent for bid %s: %w", bidID, err)
	}
	return intent.ClientSecret, nil
}

// Approve moves a pending bid to approved and records the approving employee
func (s *Service) Approve(ctx context.Context, auth models.AuthContext, bidID string) (models.Bid, error) {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.Status != models.StatusPending {
		return models.Bid{}, fmt.Errorf("service: bid %s has status %s: %w", bidID, bid.Status, brokererrors.ErrNotPending)
	}

	now := time.Now().UTC()
	previous := bid.Status
	bid.Status = models.StatusApproved
	bid.ApprovedBy = auth.UserID
	bid.ApprovedAt = &now
	bid.Notes = "Bid approved by employee."
	bid.UpdatedAt = now

	if err := s.applyTransition(ctx, bid, previous, auth.UserID, bid.Notes); err != nil {
		return models.Bid{}, err
	}
	return bid, nil
}

// Reject moves a pending bid to rejected. A non-empty trimmed reason is required.
func (s *Service) Reject(ctx context.Context, auth models.AuthContext, bidID, notes string) (models.Bid, error) {
	if strings.TrimSpace(notes) == "" {
		return models.Bid{}, fmt.Errorf("service: %w", brokererrors.ErrMissingRejectionNotes)
	}

	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.Status != models.StatusPending {
		return models.Bid{}, fmt.Errorf("service: bid %s has status %s: %w", bidID, bid.Status, brokererrors.ErrNotPending)
	}

	now := time.Now().UTC()
	previous := bid.Status
	bid.Status = models.StatusRejected
	bid.RejectedBy = auth.UserID
	bid.RejectedAt = &now
	bid.RejectionNotes = notes
	bid.Notes = notes
	bid.UpdatedAt = now

	if err := s.applyTransition(ctx, bid, previous, auth.UserID, notes); err != nil {
		return models.Bid{}, err
	}
	return bid, nil
}

// UpdateStatus applies a generic status change. Only enum membership is
// enforced here; the approve/reject paths carry the strict pending guard.
// Empty notes leave the bid's previous notes in place.
func (s *Service) UpdateStatus(ctx context.Context, auth models.AuthContext, bidID, status, notes string) (models.Bid, error) {
	if !models.ValidBidStatus(status) {
		return models.Bid{}, fmt.Errorf("service: status %q: %w", status, brokererrors.ErrInvalidStatus)
	}

	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}

	previous := bid.Status
	bid.Status = models.BidStatus(status)
	if notes != "" {
		bid.Notes = notes
	}
	bid.UpdatedAt = time.Now().UTC()

	if err := s.applyTransition(ctx, bid, previous, auth.UserID, notes); err != nil {
		return models.Bid{}, err
	}
	return bid, nil
}

// Refund issues one full refund for an outbid or lost bid. Issuance is
// serialized per bid id; the gateway is called at most once even under
// concurrent requests.
func (s *Service) Refund(ctx context.Context, auth models.AuthContext, bidID string) (models.Bid, error) {
	lock := s.refundLock(bidID)
	lock.Lock()
	defer lock.Unlock()

	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.Refunded {
		return models.Bid{}, fmt.Errorf("service: bid %s: %w", bidID, brokererrors.ErrAlreadyRefunded)
	}
	if bid.Status != models.StatusOutbid && bid.Status != models.StatusLost {
		return models.Bid{}, fmt.Errorf("service: bid %s has status %s: %w", bidID, bid.Status, brokererrors.ErrNotRefundable)
	}
	if bid.PaymentIntentID == "" {
		return models.Bid{}, fmt.Errorf("service: bid %s: %w", bidID, brokererrors.ErrNoPayment)
	}

	refundID, err := s.gateway.CreateRefund(ctx, bid.PaymentIntentID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}

	now := time.Now().UTC()
	if err := s.repo.MarkRefunded(ctx, bid.BidID, refundID, now); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to mark bid %s refunded: %w", bidID, err)
	}

	utils.Info("refund issued", map[string]any{
		"bid_id":    bid.BidID,
		"refund_id": refundID,
		"issued_by": auth.UserID,
	})

	bid.Refunded = true
	bid.DepositRefundID = refundID
	bid.FeeRefundID = refundID
	bid.UpdatedAt = now
	return bid, nil
}

// Delete hard-deletes a won or lost bid. History entries cascade with it.
func (s *Service) Delete(ctx context.Context, auth models.AuthContext, bidID string) error {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.Status != models.StatusWon && bid.Status != models.StatusLost {
		return fmt.Errorf("service: bid %s has status %s: %w", bidID, bid.Status, brokererrors.ErrNotDeletable)
	}

	if err := s.repo.DeleteBid(ctx, bidID); err != nil {
		return fmt.Errorf("service: failed to delete bid %s: %w", bidID, err)
	}

	utils.Info("bid deleted", map[string]any{"bid_id": bidID, "deleted_by": auth.UserID})
	return nil
}

// applyTransition persists the updated bid together with its history entry
func (s *Service) applyTransition(ctx context.Context, bid models.Bid, previous models.BidStatus, actorID, notes string) error {
	entry := models.BidHistoryEntry{
		EntryID:        utils.GenerateID(),
		BidID:          bid.BidID,
		PreviousStatus: previous,
		NewStatus:      bid.Status,
		ChangedBy:      actorID,
		Notes:          notes,
		CreatedAt:      bid.UpdatedAt,
	}
	if err := s.repo.UpdateBidStatus(ctx, bid, entry); err != nil {
		return fmt.Errorf("service: failed to update status of bid %s: %w", bid.BidID, err)
	}
	return nil
}

func (s *Service) refundLock(bidID string) *sync.Mutex {
	lock, _ := s.refundLocks.LoadOrStore(bidID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
