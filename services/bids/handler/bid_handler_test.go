package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-broker/internal/brokererrors"
	model "auction-broker/internal/models"
	"auction-broker/services/bids/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestRouter returns a gin router with the given identity preinstalled,
// standing in for the identity middleware.
func newTestRouter(auth model.AuthContext) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(helpers.AuthContextKey, auth)
		c.Next()
	})
	return router
}

func sampleBid(bidID string) model.Bid {
	now := time.Now().UTC()
	return model.Bid{
		BidID:         bidID,
		CustomerID:    "cust1",
		LotNumber:     "LOT-1",
		MaxBidAmount:  decimal.RequireFromString("1000.00"),
		ServiceFee:    decimal.RequireFromString("215.00"),
		DepositAmount: decimal.RequireFromString("100.00"),
		TotalPaid:     decimal.RequireFromString("315.00"),
		Status:        model.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	customerAuth := model.AuthContext{UserID: "cust1", Role: model.RoleCustomer, Active: true}
	router := newTestRouter(customerAuth)
	router.POST("/bids", handler.CreateBidHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.CreateBidRequest{
				LotNumber:    "LOT-1",
				MaxBidAmount: "1000.00",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateBid(gomock.Any(), customerAuth, "LOT-1", decimal.RequireFromString("1000.00")).
					Return(sampleBid(uuid.NewString()), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "LOT-1", data["lot_number"])
				require.Equal(t, "215.00", data["service_fee"])
				require.Equal(t, "100.00", data["deposit_amount"])
				require.Equal(t, "315.00", data["total_paid"])
				require.Equal(t, "pending", data["status"])
				require.Equal(t, false, data["refunded"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_lot_number",
			requestBody: helpers.CreateBidRequest{
				MaxBidAmount: "1000.00",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "amount_not_a_decimal",
			requestBody: helpers.CreateBidRequest{
				LotNumber:    "LOT-1",
				MaxBidAmount: "a lot of money",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_rejects_amount",
			requestBody: helpers.CreateBidRequest{
				LotNumber:    "LOT-1",
				MaxBidAmount: "-5",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateBid(gomock.Any(), customerAuth, "LOT-1", decimal.RequireFromString("-5")).
					Return(model.Bid{}, brokererrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid bid details",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.CreateBidRequest{
				LotNumber:    "LOT-1",
				MaxBidAmount: "1000.00",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateBid(gomock.Any(), customerAuth, "LOT-1", gomock.Any()).
					Return(model.Bid{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/bids", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

func TestGetBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	customerAuth := model.AuthContext{UserID: "cust1", Role: model.RoleCustomer, Active: true}
	router := newTestRouter(customerAuth)
	router.GET("/bids/:bid_id", handler.GetBidHandler)

	tests := []struct {
		name           string
		bidID          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "success",
			bidID: "bid1",
			mockSetup: func() {
				mockService.EXPECT().
					GetBid(gomock.Any(), customerAuth, "bid1").
					Return(sampleBid("bid1"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid retrieved successfully",
		},
		{
			name:  "not_found",
			bidID: "missing",
			mockSetup: func() {
				mockService.EXPECT().
					GetBid(gomock.Any(), customerAuth, "missing").
					Return(model.Bid{}, brokererrors.ErrBidNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid not found",
		},
		{
			name:  "foreign_bid_forbidden",
			bidID: "bid2",
			mockSetup: func() {
				mockService.EXPECT().
					GetBid(gomock.Any(), customerAuth, "bid2").
					Return(model.Bid{}, brokererrors.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "access denied",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/bids/"+tc.bidID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestCreatePaymentIntentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	customerAuth := model.AuthContext{UserID: "cust1", Role: model.RoleCustomer, Active: true}
	router := newTestRouter(customerAuth)
	router.POST("/bids/:bid_id/payment-intent", handler.CreatePaymentIntentHandler)

	tests := []struct {
		name           string
		bidID          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:  "success",
			bidID: "bid1",
			mockSetup: func() {
				mockService.EXPECT().
					CreatePaymentIntent(gomock.Any(), customerAuth, "bid1").
					Return("secret_abc", nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "payment intent ready",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "secret_abc", data["client_secret"])
			},
		},
		{
			name:  "gateway_failure_hidden",
			bidID: "bid1",
			mockSetup: func() {
				mockService.EXPECT().
					CreatePaymentIntent(gomock.Any(), customerAuth, "bid1").
					Return("", brokererrors.ErrGatewayFailure)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
		{
			name:  "bid_not_found",
			bidID: "missing",
			mockSetup: func() {
				mockService.EXPECT().
					CreatePaymentIntent(gomock.Any(), customerAuth, "missing").
					Return("", brokererrors.ErrBidNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/bids/"+tc.bidID+"/payment-intent", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}

			// gateway causes never reach the response body
			if tc.expectedStatus == http.StatusInternalServerError {
				require.NotContains(t, w.Body.String(), "gateway")
			}
		})
	}
}

func TestRejectBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	employeeAuth := model.AuthContext{UserID: "emp1", Role: model.RoleEmployee, Active: true}
	router := newTestRouter(employeeAuth)
	router.POST("/employee/bids/:bid_id/reject", handler.RejectBidHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: helpers.RejectBidRequest{Notes: "lot withdrawn"},
			mockSetup: func() {
				rejected := sampleBid("bid1")
				rejected.Status = model.StatusRejected
				rejected.RejectedBy = "emp1"
				rejected.RejectionNotes = "lot withdrawn"
				mockService.EXPECT().
					Reject(gomock.Any(), employeeAuth, "bid1", "lot withdrawn").
					Return(rejected, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid rejected successfully",
		},
		{
			name:           "missing_notes_fails_binding",
			requestBody:    map[string]any{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "whitespace_notes_fail_in_service",
			requestBody: helpers.RejectBidRequest{Notes: "   "},
			mockSetup: func() {
				mockService.EXPECT().
					Reject(gomock.Any(), employeeAuth, "bid1", "   ").
					Return(model.Bid{}, brokererrors.ErrMissingRejectionNotes)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "rejection reason is required",
		},
		{
			name:        "not_pending",
			requestBody: helpers.RejectBidRequest{Notes: "too late"},
			mockSetup: func() {
				mockService.EXPECT().
					Reject(gomock.Any(), employeeAuth, "bid1", "too late").
					Return(model.Bid{}, brokererrors.ErrNotPending)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "only pending bids can be approved or rejected",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/employee/bids/bid1/reject", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	employeeAuth := model.AuthContext{UserID: "emp1", Role: model.RoleEmployee, Active: true}
	router := newTestRouter(employeeAuth)
	router.PATCH("/employee/bids/:bid_id/status", handler.UpdateStatusHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: helpers.UpdateStatusRequest{Status: "winning", Notes: "leading at 800"},
			mockSetup: func() {
				updated := sampleBid("bid1")
				updated.Status = model.StatusWinning
				updated.Notes = "leading at 800"
				mockService.EXPECT().
					UpdateStatus(gomock.Any(), employeeAuth, "bid1", "winning", "leading at 800").
					Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid status updated successfully",
		},
		{
			name:        "unknown_status",
			requestBody: helpers.UpdateStatusRequest{Status: "vanished"},
			mockSetup: func() {
				mockService.EXPECT().
					UpdateStatus(gomock.Any(), employeeAuth, "bid1", "vanished", "").
					Return(model.Bid{}, brokererrors.ErrInvalidStatus)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid bid status",
		},
		{
			name:           "missing_status_fails_binding",
			requestBody:    map[string]any{"notes": "no status"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPatch, "/employee/bids/bid1/status", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestRefundBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	employeeAuth := model.AuthContext{UserID: "emp1", Role: model.RoleEmployee, Active: true}
	router := newTestRouter(employeeAuth)
	router.POST("/employee/bids/:bid_id/refund", handler.RefundBidHandler)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success",
			mockSetup: func() {
				refunded := sampleBid("bid1")
				refunded.Status = model.StatusLost
				refunded.Refunded = true
				refunded.DepositRefundID = "re_1"
				refunded.FeeRefundID = "re_1"
				mockService.EXPECT().
					Refund(gomock.Any(), employeeAuth, "bid1").
					Return(refunded, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid refunded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, true, data["refunded"])
				require.Equal(t, "re_1", data["deposit_refund_id"])
				require.Equal(t, "re_1", data["fee_refund_id"])
			},
		},
		{
			name: "wrong_status",
			mockSetup: func() {
				mockService.EXPECT().
					Refund(gomock.Any(), employeeAuth, "bid1").
					Return(model.Bid{}, brokererrors.ErrNotRefundable)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "only outbid or lost bids can be refunded",
		},
		{
			name: "already_refunded",
			mockSetup: func() {
				mockService.EXPECT().
					Refund(gomock.Any(), employeeAuth, "bid1").
					Return(model.Bid{}, brokererrors.ErrAlreadyRefunded)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "bid already refunded",
		},
		{
			name: "no_payment",
			mockSetup: func() {
				mockService.EXPECT().
					Refund(gomock.Any(), employeeAuth, "bid1").
					Return(model.Bid{}, brokererrors.ErrNoPayment)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "no payment found",
		},
		{
			name: "gateway_failure",
			mockSetup: func() {
				mockService.EXPECT().
					Refund(gomock.Any(), employeeAuth, "bid1").
					Return(model.Bid{}, brokererrors.ErrGatewayFailure)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/employee/bids/bid1/refund", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

func TestDeleteBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	employeeAuth := model.AuthContext{UserID: "emp1", Role: model.RoleEmployee, Active: true}
	router := newTestRouter(employeeAuth)
	router.DELETE("/employee/bids/:bid_id", handler.DeleteBidHandler)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			mockSetup: func() {
				mockService.EXPECT().
					Delete(gomock.Any(), employeeAuth, "bid1").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid deleted successfully",
		},
		{
			name: "wrong_status",
			mockSetup: func() {
				mockService.EXPECT().
					Delete(gomock.Any(), employeeAuth, "bid1").
					Return(brokererrors.ErrNotDeletable)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "only won or lost bids can be deleted",
		},
		{
			name: "not_found",
			mockSetup: func() {
				mockService.EXPECT().
					Delete(gomock.Any(), employeeAuth, "bid1").
					Return(brokererrors.ErrBidNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/employee/bids/bid1", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestListBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	customerAuth := model.AuthContext{UserID: "cust1", Role: model.RoleCustomer, Active: true}
	router := newTestRouter(customerAuth)
	router.GET("/bids", handler.ListBidsHandler)

	t.Run("success_multiple_bids", func(t *testing.T) {
		mockService.EXPECT().
			ListCustomerBids(gomock.Any(), customerAuth).
			Return([]model.Bid{sampleBid("bid2"), sampleBid("bid1")}, nil)

		req := httptest.NewRequest(http.MethodGet, "/bids", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 2)
		first := data[0].(map[string]any)
		require.Equal(t, "bid2", first["bid_id"])
	})

	t.Run("success_no_bids", func(t *testing.T) {
		mockService.EXPECT().
			ListCustomerBids(gomock.Any(), customerAuth).
			Return([]model.Bid{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/bids", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["data"].([]any), 0)
	})
}
