package helpers

import (
	"time"

	model "auction-broker/internal/models"
)

// Request/Response DTOs
type CreateBidRequest struct {
	LotNumber    string `json:"lot_number" binding:"required"`
	MaxBidAmount string `json:"max_bid_amount" binding:"required"`
}

type RejectBidRequest struct {
	Notes string `json:"notes" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// BidResponse renders money fields as fixed two-decimal strings
type BidResponse struct {
	BidID           string `json:"bid_id"`
	CustomerID      string `json:"customer_id"`
	LotNumber       string `json:"lot_number"`
	MaxBidAmount    string `json:"max_bid_amount"`
	ServiceFee      string `json:"service_fee"`
	DepositAmount   string `json:"deposit_amount"`
	TotalPaid       string `json:"total_paid"`
	Status          string `json:"status"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	DepositRefundID string `json:"deposit_refund_id,omitempty"`
	FeeRefundID     string `json:"fee_refund_id,omitempty"`
	Refunded        bool   `json:"refunded"`
	ApprovedBy      string `json:"approved_by,omitempty"`
	ApprovedAt      string `json:"approved_at,omitempty"`
	RejectedBy      string `json:"rejected_by,omitempty"`
	RejectedAt      string `json:"rejected_at,omitempty"`
	RejectionNotes  string `json:"rejection_notes,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type HistoryEntryResponse struct {
	EntryID        string `json:"entry_id"`
	BidID          string `json:"bid_id"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	ChangedBy      string `json:"changed_by"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// NewBidResponse maps a bid entity to its wire representation
func NewBidResponse(bid model.Bid) BidResponse {
	resp := BidResponse{
		BidID:           bid.BidID,
		CustomerID:      bid.CustomerID,
		LotNumber:       bid.LotNumber,
		MaxBidAmount:    bid.MaxBidAmount.StringFixed(2),
		ServiceFee:      bid.ServiceFee.StringFixed(2),
		DepositAmount:   bid.DepositAmount.StringFixed(2),
		TotalPaid:       bid.TotalPaid.StringFixed(2),
		Status:          string(bid.Status),
		PaymentIntentID: bid.PaymentIntentID,
		DepositRefundID: bid.DepositRefundID,
		FeeRefundID:     bid.FeeRefundID,
		Refunded:        bid.Refunded,
		ApprovedBy:      bid.ApprovedBy,
		RejectedBy:      bid.RejectedBy,
		RejectionNotes:  bid.RejectionNotes,
		Notes:           bid.Notes,
		CreatedAt:       bid.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if bid.ApprovedAt != nil {
		resp.ApprovedAt = bid.ApprovedAt.UTC().Format(time.RFC3339)
	}
	if bid.RejectedAt != nil {
		resp.RejectedAt = bid.RejectedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// NewBidResponses maps a slice of bids, preserving order
func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}

// NewHistoryResponses maps history entries, preserving order
func NewHistoryResponses(entries []model.BidHistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			EntryID:        e.EntryID,
			BidID:          e.BidID,
			PreviousStatus: string(e.PreviousStatus),
			NewStatus:      string(e.NewStatus),
			ChangedBy:      e.ChangedBy,
			Notes:          e.Notes,
			CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
