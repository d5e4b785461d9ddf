package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"auction-broker/internal/gateway"
	lifecycle "auction-broker/internal/lifecycleService"
	model "auction-broker/internal/models"
	repository "auction-broker/internal/repository"

	"github.com/shopspring/decimal"
)

// nopGateway satisfies PaymentGateway without network calls so benchmarks
// measure the service and repository only.
type nopGateway struct {
	intentSeq int64
	refundSeq int64
}

func (g *nopGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (gateway.Intent, error) {
	n := atomic.AddInt64(&g.intentSeq, 1)
	id := fmt.Sprintf("pi_bench_%d", n)
	return gateway.Intent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (g *nopGateway) RetrieveIntent(ctx context.Context, intentID string) (gateway.Intent, error) {
	return gateway.Intent{ID: intentID, ClientSecret: intentID + "_secret"}, nil
}

func (g *nopGateway) CreateRefund(ctx context.Context, intentID string) (string, error) {
	return fmt.Sprintf("re_bench_%d", atomic.AddInt64(&g.refundSeq, 1)), nil
}

func benchAuth(userID string, role model.Role) model.AuthContext {
	return model.AuthContext{UserID: userID, Role: role, Active: true}
}

// Benchmark 1: CreateBid - independent customers (low contention)
func Benchmark_CreateBid_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := lifecycle.NewService(repo, &nopGateway{}, "usd")
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auth := benchAuth(fmt.Sprintf("cust_%d", i), model.RoleCustomer)
		amount := decimal.NewFromInt(int64(100 + rand.Intn(10000)))
		if _, err := svc.CreateBid(ctx, auth, fmt.Sprintf("LOT-%d", i), amount); err != nil {
			b.Fatalf("failed to create bid: %v", err)
		}
	}
}

// Benchmark 2: CreateBid - many goroutines writing concurrently
func Benchmark_CreateBid_Concurrent(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := lifecycle.NewService(repo, &nopGateway{}, "usd")
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var seq int64
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			n := atomic.AddInt64(&seq, 1)
			auth := benchAuth(fmt.Sprintf("cust_%d", n), model.RoleCustomer)
			amount := decimal.NewFromInt(int64(100 + rnd.Intn(10000)))
			_, _ = svc.CreateBid(ctx, auth, fmt.Sprintf("LOT-%d", n), amount)
		}
	})
}

// Benchmark 3: GetBid - concurrent reads of a single hot bid
func Benchmark_GetBid_ConcurrentSharedBid(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := lifecycle.NewService(repo, &nopGateway{}, "usd")
	ctx := context.Background()

	empAuth := benchAuth("emp_bench", model.RoleEmployee)
	custAuth := benchAuth("cust_bench", model.RoleCustomer)
	bid, err := svc.CreateBid(ctx, custAuth, "LOT-HOT", decimal.NewFromInt(1000))
	if err != nil {
		b.Fatalf("failed to seed bid: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetBid(ctx, empAuth, bid.BidID); err != nil {
				b.Fatalf("failed to get bid: %v", err)
			}
		}
	})
}

// Benchmark 4: approve pipeline - pending bids moved to approved sequentially
func Benchmark_Approve_Pipeline(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := lifecycle.NewService(repo, &nopGateway{}, "usd")
	ctx := context.Background()

	empAuth := benchAuth("emp_bench", model.RoleEmployee)
	bidIDs := make([]string, b.N)
	for i := 0; i < b.N; i++ {
		custAuth := benchAuth(fmt.Sprintf("cust_%d", i), model.RoleCustomer)
		bid, err := svc.CreateBid(ctx, custAuth, fmt.Sprintf("LOT-%d", i), decimal.NewFromInt(1000))
		if err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
		bidIDs[i] = bid.BidID
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.Approve(ctx, empAuth, bidIDs[i]); err != nil {
			b.Fatalf("failed to approve bid: %v", err)
		}
	}
}

// Benchmark 5: full lifecycle - create, pay, approve, lose, refund
func Benchmark_FullLifecycle(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := lifecycle.NewService(repo, &nopGateway{}, "usd")
	ctx := context.Background()

	empAuth := benchAuth("emp_bench", model.RoleEmployee)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		custAuth := benchAuth(fmt.Sprintf("cust_%d", i), model.RoleCustomer)
		bid, err := svc.CreateBid(ctx, custAuth, fmt.Sprintf("LOT-%d", i), decimal.NewFromInt(1000))
		if err != nil {
			b.Fatalf("create: %v", err)
		}
		if _, err := svc.CreatePaymentIntent(ctx, custAuth, bid.BidID); err != nil {
			b.Fatalf("payment intent: %v", err)
		}
		if _, err := svc.Approve(ctx, empAuth, bid.BidID); err != nil {
			b.Fatalf("approve: %v", err)
		}
		if _, err := svc.UpdateStatus(ctx, empAuth, bid.BidID, "lost", ""); err != nil {
			b.Fatalf("update status: %v", err)
		}
		if _, err := svc.Refund(ctx, empAuth, bid.BidID); err != nil {
			b.Fatalf("refund: %v", err)
		}
	}
}

// Benchmark 6: mixed workload - employee reads vs status writes on a shared bid
func Benchmark_MixedWorkload_SharedBid(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := lifecycle.NewService(repo, &nopGateway{}, "usd")
	ctx := context.Background()

	empAuth := benchAuth("emp_bench", model.RoleEmployee)
	custAuth := benchAuth("cust_bench", model.RoleCustomer)
	bid, err := svc.CreateBid(ctx, custAuth, "LOT-HOT", decimal.NewFromInt(1000))
	if err != nil {
		b.Fatalf("failed to seed bid: %v", err)
	}

	statuses := []string{"winning", "outbid"}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				status := statuses[rnd.Intn(len(statuses))]
				_, _ = svc.UpdateStatus(ctx, empAuth, bid.BidID, status, "")
			default:
				if _, err := svc.GetBid(ctx, empAuth, bid.BidID); err != nil {
					b.Fatalf("read error: %v", err)
				}
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}
