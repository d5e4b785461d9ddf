package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	model "auction-broker/internal/models"
	"auction-broker/services/bids/helpers"
	"auction-broker/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=bid_handler.go -destination=mock_service.go -package=handler

type LifecycleServiceInterface interface {
	CreateBid(ctx context.Context, auth model.AuthContext, lotNumber string, maxBidAmount decimal.Decimal) (model.Bid, error)
	GetBid(ctx context.Context, auth model.AuthContext, bidID string) (model.Bid, error)
	GetBidHistory(ctx context.Context, auth model.AuthContext, bidID string) ([]model.BidHistoryEntry, error)
	ListCustomerBids(ctx context.Context, auth model.AuthContext) ([]model.Bid, error)
	ListAllBids(ctx context.Context, auth model.AuthContext) ([]model.Bid, error)
	CreatePaymentIntent(ctx context.Context, auth model.AuthContext, bidID string) (string, error)
	Approve(ctx context.Context, auth model.AuthContext, bidID string) (model.Bid, error)
	Reject(ctx context.Context, auth model.AuthContext, bidID, notes string) (model.Bid, error)
	UpdateStatus(ctx context.Context, auth model.AuthContext, bidID, status, notes string) (model.Bid, error)
	Refund(ctx context.Context, auth model.AuthContext, bidID string) (model.Bid, error)
	Delete(ctx context.Context, auth model.AuthContext, bidID string) error
}

type BidHandler struct {
	service LifecycleServiceInterface
}

func NewBidHandler(service LifecycleServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// CreateBidHandler handles POST /bids
func (h *BidHandler) CreateBidHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)

	var req helpers.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBidHandler", err)
		return
	}

	maxBid, err := decimal.NewFromString(req.MaxBidAmount)
	if err != nil {
		helpers.HandleBindError(c, "CreateBidHandler", fmt.Errorf("max_bid_amount is not a valid decimal: %w", err))
		return
	}

	bid, err := h.service.CreateBid(c.Request.Context(), auth, req.LotNumber, maxBid)
	if err != nil {
		h.respondError(c, "CreateBidHandler", err, map[string]any{"lot_number": req.LotNumber})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid created successfully")
	helpers.LogSuccess("CreateBidHandler", "bid created successfully", map[string]any{
		"bid_id":      bid.BidID,
		"customer_id": bid.CustomerID,
		"lot_number":  bid.LotNumber,
		"total_paid":  bid.TotalPaid.StringFixed(2),
	})
}

// ListBidsHandler handles GET /bids for customers
func (h *BidHandler) ListBidsHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)

	bids, err := h.service.ListCustomerBids(c.Request.Context(), auth)
	if err != nil {
		h.respondError(c, "ListBidsHandler", err, map[string]any{"customer_id": auth.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
}

// GetBidHandler handles GET /bids/:bid_id
func (h *BidHandler) GetBidHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	bidID := c.Param("bid_id")

	bid, err := h.service.GetBid(c.Request.Context(), auth, bidID)
	if err != nil {
		h.respondError(c, "GetBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid retrieved successfully")
}

// GetBidHistoryHandler handles GET /bids/:bid_id/history
func (h *BidHandler) GetBidHistoryHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	bidID := c.Param("bid_id")

	entries, err := h.service.GetBidHistory(c.Request.Context(), auth, bidID)
	if err != nil {
		h.respondError(c, "GetBidHistoryHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewHistoryResponses(entries), "bid history retrieved successfully")
}

// CreatePaymentIntentHandler handles POST /bids/:bid_id/payment-intent
func (h *BidHandler) CreatePaymentIntentHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	bidID := c.Param("bid_id")

	secret, err := h.service.CreatePaymentIntent(c.Request.Context(), auth, bidID)
	if err != nil {
		h.respondError(c, "CreatePaymentIntentHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.PaymentIntentResponse{ClientSecret: secret}, "payment intent ready")
	helpers.LogSuccess("CreatePaymentIntentHandler", "payment intent ready", map[string]any{"bid_id": bidID})
}

// ListAllBidsHandler handles GET /employee/bids
func (h *BidHandler) ListAllBidsHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)

	bids, err := h.service.ListAllBids(c.Request.Context(), auth)
	if err != nil {
		h.respondError(c, "ListAllBidsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
}

// ApproveBidHandler handles POST /employee/bids/:bid_id/approve
func (h *BidHandler) ApproveBidHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	bidID := c.Param("bid_id")

	bid, err := h.service.Approve(c.Request.Context(), auth, bidID)
	if err != nil {
		h.respondError(c, "ApproveBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid approved successfully")
	helpers.LogSuccess("ApproveBidHandler", "bid approved successfully", map[string]any{
		"bid_id":      bid.BidID,
		"approved_by": auth.UserID,
	})
}

// RejectBidHandler handles POST /employee/bids/:bid_id/reject
func (h *BidHandler) RejectBidHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	bidID := c.Param("bid_id")

	var req helpers.RejectBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RejectBidHandler", err)
		return
	}

	bid, err := h.service.Reject(c.Request.Context(), auth, bidID, req.Notes)
	if err != nil {
		h.respondError(c, "RejectBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid rejected successfully")
	helpers.LogSuccess("RejectBidHandler", "bid rejected successfully", map[string]any{
		"bid_id":      bid.BidID,
		"rejected_by": auth.UserID,
	})
}

// UpdateStatusHandler handles PATCH /employee/bids/:bid_id/status
func (h *BidHandler) UpdateStatusHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	bidID := c.Param("bid_id")

	var req helpers.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	bid, err := h.service.UpdateStatus(c.Request.Context(), auth, bidID, req.Status, req.Notes)
	if err != nil {
		h.respondError(c, "UpdateStatusHandler", err, map[string]any{"bid_id": bidID, "status": req.Status})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid status updated successfully")
	helpers.LogSuccess("UpdateStatusHandler", "bid status updated successfully", map[string]any{
		"bid_id":     bid.BidID,
		"status":     string(bid.Status),
		"updated_by": auth.UserID,
	})
}

// RefundBidHandler handles POST /employee/bids/:bid_id/refund
func (h *BidHandler) RefundBidHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	bidID := c.Param("bid_id")

	bid, err := h.service.Refund(c.Request.Context(), auth, bidID)
	if err != nil {
		h.respondError(c, "RefundBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "bid refunded successfully")
	helpers.LogSuccess("RefundBidHandler", "bid refunded successfully", map[string]any{
		"bid_id":    bid.BidID,
		"refund_id": bid.DepositRefundID,
	})
}

// DeleteBidHandler handles DELETE /employee/bids/:bid_id
func (h *BidHandler) DeleteBidHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	bidID := c.Param("bid_id")

	if err := h.service.Delete(c.Request.Context(), auth, bidID); err != nil {
		h.respondError(c, "DeleteBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bid_id": bidID}, "bid deleted successfully")
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{
		"bid_id":     bidID,
		"deleted_by": auth.UserID,
	})
}

func (h *BidHandler) respondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	if status == http.StatusInternalServerError {
		// the cause is logged below, never returned to the caller
		utils.JSONError(c, status, errors.New(message), message)
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}

	fields := map[string]any{"handler": handlerName, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	utils.Error(handlerName+": request failed", fields)
}
