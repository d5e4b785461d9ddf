package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role identifies the access tier of a user account
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleEmployee   Role = "employee"
	RoleSuperAdmin Role = "super_admin"
)

// BidStatus is the lifecycle state of a bid
type BidStatus string

const (
	StatusPending  BidStatus = "pending"
	StatusApproved BidStatus = "approved"
	StatusRejected BidStatus = "rejected"
	StatusWinning  BidStatus = "winning"
	StatusOutbid   BidStatus = "outbid"
	StatusWon      BidStatus = "won"
	StatusLost     BidStatus = "lost"
)

// ValidBidStatus reports whether s is a member of the bid status enum
func ValidBidStatus(s string) bool {
	switch BidStatus(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusWinning, StatusOutbid, StatusWon, StatusLost:
		return true
	}
	return false
}

// User represents an account known to the platform. Accounts are never
// hard-deleted; deactivation flips the Active flag.
type User struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	Verified     bool      `json:"verified"`
	CompanyCode  string    `json:"company_code,omitempty"`  // employees only
	DocumentRefs []string  `json:"document_refs,omitempty"` // customers only
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Bid represents a customer's maximum-bid instruction on an auction lot.
// TotalPaid = ServiceFee + DepositAmount, and
// DepositAmount = round(0.10 * MaxBidAmount, 2) from creation onward.
type Bid struct {
	BidID           string          `json:"bid_id"`
	CustomerID      string          `json:"customer_id"`
	LotNumber       string          `json:"lot_number"`
	MaxBidAmount    decimal.Decimal `json:"max_bid_amount"`
	ServiceFee      decimal.Decimal `json:"service_fee"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	Status          BidStatus       `json:"status"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	DepositRefundID string          `json:"deposit_refund_id,omitempty"`
	FeeRefundID     string          `json:"fee_refund_id,omitempty"`
	Refunded        bool            `json:"refunded"`
	ApprovedBy      string          `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	RejectedBy      string          `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time      `json:"rejected_at,omitempty"`
	RejectionNotes  string          `json:"rejection_notes,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BidHistoryEntry is an append-only record of a single status transition.
// Entries are removed only when their bid is deleted.
type BidHistoryEntry struct {
	EntryID        string    `json:"entry_id"`
	BidID          string    `json:"bid_id"`
	PreviousStatus BidStatus `json:"previous_status"`
	NewStatus      BidStatus `json:"new_status"`
	ChangedBy      string    `json:"changed_by"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// EmployeeAction is an append-only audit record of an admin action taken
// against an employee account, independent of bid history.
type EmployeeAction struct {
	ActionID    string    `json:"action_id"`
	EmployeeID  string    `json:"employee_id"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performed_by"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// EmployeeActionDeleted tags a soft-deactivation in the employee audit log
const EmployeeActionDeleted = "deleted"

// AuthContext is the authorized caller identity resolved once at the request
// boundary and passed explicitly into every core operation.
type AuthContext struct {
	UserID string
	Role   Role
	Active bool
}
