package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	accounts "auction-broker/internal/accountService"
	"auction-broker/internal/gateway"
	lifecycle "auction-broker/internal/lifecycleService"
	model "auction-broker/internal/models"
	"auction-broker/internal/repository"
	"auction-broker/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// stubGateway is an in-process PaymentGateway that mints deterministic
// intent and refund ids and counts refund calls.
type stubGateway struct {
	mu          sync.Mutex
	intentSeq   int
	refundSeq   int
	refundCalls int
}

func (g *stubGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (gateway.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intentSeq++
	id := fmt.Sprintf("pi_test_%d", g.intentSeq)
	return gateway.Intent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (g *stubGateway) RetrieveIntent(ctx context.Context, intentID string) (gateway.Intent, error) {
	return gateway.Intent{ID: intentID, ClientSecret: intentID + "_secret"}, nil
}

func (g *stubGateway) CreateRefund(ctx context.Context, intentID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refundSeq++
	g.refundCalls++
	return fmt.Sprintf("re_test_%d", g.refundSeq), nil
}

func (g *stubGateway) RefundCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.refundCalls
}

func (g *stubGateway) IntentCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.intentSeq
}

// SetupTestRouter initializes the full router over a seeded in-memory
// repository and a stub gateway.
func SetupTestRouter() (*gin.Engine, *stubGateway) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	now := time.Now().UTC()
	seed := []model.User{
		{UserID: "cust1", Email: "cust1@example.com", Role: model.RoleCustomer, Active: true, Verified: true, CreatedAt: now, UpdatedAt: now},
		{UserID: "cust2", Email: "cust2@example.com", Role: model.RoleCustomer, Active: true, Verified: true, CreatedAt: now, UpdatedAt: now},
		{UserID: "emp1", Email: "emp1@example.com", Role: model.RoleEmployee, Active: true, Verified: true, CompanyCode: "HOUSE-7", CreatedAt: now, UpdatedAt: now},
		{UserID: "emp2", Email: "emp2@example.com", Role: model.RoleEmployee, Active: true, Verified: true, CompanyCode: "HOUSE-7", CreatedAt: now, UpdatedAt: now},
		{UserID: "emp_gone", Email: "gone@example.com", Role: model.RoleEmployee, Active: false, Verified: true, CompanyCode: "HOUSE-7", CreatedAt: now, UpdatedAt: now},
		{UserID: "admin1", Email: "admin1@example.com", Role: model.RoleSuperAdmin, Active: true, Verified: true, CreatedAt: now, UpdatedAt: now},
	}
	for _, u := range seed {
		repo.AddUser(u)
	}

	gw := &stubGateway{}
	lifecycleSvc := lifecycle.NewService(repo, gw, "usd")
	accountSvc := accounts.NewService(repo, repo)

	return server.SetupRouter(lifecycleSvc, accountSvc, repo), gw
}

// ExecuteRequestAs executes an HTTP request as the given user and parses the
// JSON envelope. An empty userID sends no identity header.
func ExecuteRequestAs(t *testing.T, router *gin.Engine, userID, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// dataObject extracts the envelope's data field as an object.
func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return data
}

// dataList extracts the envelope's data field as a list.
func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not a list: %v", resp)
	}
	return data
}
