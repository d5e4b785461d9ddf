package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"auction-broker/internal/brokererrors"
	model "auction-broker/internal/models"
	"auction-broker/utils"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// Compile-time check: *SQLiteRepo must satisfy BrokerDB.
var _ BrokerDB = (*SQLiteRepo)(nil)

// SQLiteRepo is a durable BrokerDB backed by SQLite. Status transitions run
// inside a single transaction so the bid write and its history append cannot
// diverge, and refund marking is a conditional update on the refunded flag.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens (or creates) the database at path and initializes the schema
func NewSQLiteRepo(ctx context.Context, path string) (*SQLiteRepo, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	repo := &SQLiteRepo{db: db}
	if err := repo.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to initialize schema: %w", err)
	}

	utils.Info("SQLite repository initialized", map[string]any{"path": path})
	return repo, nil
}

// Close releases the underlying database handle
func (r *SQLiteRepo) Close() {
	if err := r.db.Close(); err != nil {
		utils.Warn("failed to close database connection", map[string]any{"error": err.Error()})
	}
}

func (r *SQLiteRepo) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		verified INTEGER NOT NULL DEFAULT 0,
		company_code TEXT NOT NULL DEFAULT '',
		document_refs TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bids (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL REFERENCES users(id),
		lot_number TEXT NOT NULL,
		max_bid_amount TEXT NOT NULL,
		service_fee TEXT NOT NULL,
		deposit_amount TEXT NOT NULL,
		total_paid TEXT NOT NULL,
		status TEXT NOT NULL,
		payment_intent_id TEXT NOT NULL DEFAULT '',
		deposit_refund_id TEXT NOT NULL DEFAULT '',
		fee_refund_id TEXT NOT NULL DEFAULT '',
		is_refunded INTEGER NOT NULL DEFAULT 0,
		approved_by TEXT NOT NULL DEFAULT '',
		approved_at TIMESTAMP,
		rejected_by TEXT NOT NULL DEFAULT '',
		rejected_at TIMESTAMP,
		rejection_notes TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_bids_customer ON bids(customer_id);

	CREATE TABLE IF NOT EXISTS bid_history (
		id TEXT PRIMARY KEY,
		bid_id TEXT NOT NULL REFERENCES bids(id) ON DELETE CASCADE,
		previous_status TEXT NOT NULL,
		new_status TEXT NOT NULL,
		changed_by TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_bid_history_bid ON bid_history(bid_id);

	CREATE TABLE IF NOT EXISTS employee_actions (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		action TEXT NOT NULL,
		performed_by TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_employee_actions_employee ON employee_actions(employee_id);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const bidColumns = `id, customer_id, lot_number, max_bid_amount, service_fee, deposit_amount,
	total_paid, status, payment_intent_id, deposit_refund_id, fee_refund_id, is_refunded,
	approved_by, approved_at, rejected_by, rejected_at, rejection_notes, notes, created_at, updated_at`

// CreateBid stores a new bid row
func (r *SQLiteRepo) CreateBid(ctx context.Context, bid model.Bid) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO bids (`+bidColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bid.BidID, bid.CustomerID, bid.LotNumber,
		bid.MaxBidAmount.String(), bid.ServiceFee.String(), bid.DepositAmount.String(), bid.TotalPaid.String(),
		string(bid.Status), bid.PaymentIntentID, bid.DepositRefundID, bid.FeeRefundID, bid.Refunded,
		bid.ApprovedBy, nullableTime(bid.ApprovedAt), bid.RejectedBy, nullableTime(bid.RejectedAt),
		bid.RejectionNotes, bid.Notes, bid.CreatedAt, bid.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create bid %s: %w", bid.BidID, err)
	}
	return nil
}

// GetBid returns the bid with the given id
func (r *SQLiteRepo) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = ?`, bidID)
	bid, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, brokererrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// GetBidsByCustomer returns all bids owned by a customer, newest first
func (r *SQLiteRepo) GetBidsByCustomer(ctx context.Context, customerID string) ([]model.Bid, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE customer_id = ? ORDER BY created_at DESC, id DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("get bids for customer %s: %w", customerID, err)
	}
	defer rows.Close()
	return collectBids(rows)
}

// GetAllBids returns every bid, newest first
func (r *SQLiteRepo) GetAllBids(ctx context.Context) ([]model.Bid, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bidColumns+` FROM bids ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("get all bids: %w", err)
	}
	defer rows.Close()
	return collectBids(rows)
}

// UpdateBidStatus writes the new bid state and appends the history entry in
// one transaction
func (r *SQLiteRepo) UpdateBidStatus(ctx context.Context, bid model.Bid, entry model.BidHistoryEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("update bid %s: begin transaction: %w", bid.BidID, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE bids SET
			status = ?, approved_by = ?, approved_at = ?, rejected_by = ?, rejected_at = ?,
			rejection_notes = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		string(bid.Status), bid.ApprovedBy, nullableTime(bid.ApprovedAt),
		bid.RejectedBy, nullableTime(bid.RejectedAt), bid.RejectionNotes, bid.Notes,
		bid.UpdatedAt, bid.BidID)
	if err != nil {
		return fmt.Errorf("update bid %s: %w", bid.BidID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update bid %s: %w", bid.BidID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update bid %s: %w", bid.BidID, brokererrors.ErrBidNotFound)
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO bid_history
			(id, bid_id, previous_status, new_status, changed_by, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.EntryID, entry.BidID, string(entry.PreviousStatus), string(entry.NewStatus),
		entry.ChangedBy, entry.Notes, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("update bid %s: append history: %w", bid.BidID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update bid %s: commit: %w", bid.BidID, err)
	}
	return nil
}

// SetPaymentIntent stores the payment intent reference on a bid
func (r *SQLiteRepo) SetPaymentIntent(ctx context.Context, bidID, intentID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bids SET payment_intent_id = ?, updated_at = ? WHERE id = ?`, intentID, at, bidID)
	if err != nil {
		return fmt.Errorf("set payment intent for bid %s: %w", bidID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set payment intent for bid %s: %w", bidID, err)
	}
	if affected == 0 {
		return fmt.Errorf("set payment intent for bid %s: %w", bidID, brokererrors.ErrBidNotFound)
	}
	return nil
}

// MarkRefunded flips the refunded flag and stores the refund id in both
// refund reference fields. The WHERE clause on is_refunded makes the update
// a compare-and-swap: a second caller finds no row to update.
func (r *SQLiteRepo) MarkRefunded(ctx context.Context, bidID, refundID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bids SET
			is_refunded = 1, deposit_refund_id = ?, fee_refund_id = ?, updated_at = ?
		WHERE id = ? AND is_refunded = 0`,
		refundID, refundID, at, bidID)
	if err != nil {
		return fmt.Errorf("mark refunded for bid %s: %w", bidID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark refunded for bid %s: %w", bidID, err)
	}
	if affected == 0 {
		var exists int
		if scanErr := r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM bids WHERE id = ?`, bidID).Scan(&exists); scanErr == nil && exists == 0 {
			return fmt.Errorf("mark refunded for bid %s: %w", bidID, brokererrors.ErrBidNotFound)
		}
		return fmt.Errorf("mark refunded for bid %s: %w", bidID, brokererrors.ErrAlreadyRefunded)
	}
	return nil
}

// DeleteBid removes a bid; history rows cascade via the foreign key
func (r *SQLiteRepo) DeleteBid(ctx context.Context, bidID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bids WHERE id = ?`, bidID)
	if err != nil {
		return fmt.Errorf("delete bid %s: %w", bidID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bid %s: %w", bidID, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete bid %s: %w", bidID, brokererrors.ErrBidNotFound)
	}
	return nil
}

// GetBidHistory returns a bid's history entries in transition order
func (r *SQLiteRepo) GetBidHistory(ctx context.Context, bidID string) ([]model.BidHistoryEntry, error) {
	var exists int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bids WHERE id = ?`, bidID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("get history for bid %s: %w", bidID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("get history for bid %s: %w", bidID, brokererrors.ErrBidNotFound)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, bid_id, previous_status, new_status, changed_by, notes, created_at
		FROM bid_history WHERE bid_id = ? ORDER BY created_at ASC, rowid ASC`, bidID)
	if err != nil {
		return nil, fmt.Errorf("get history for bid %s: %w", bidID, err)
	}
	defer rows.Close()

	entries := make([]model.BidHistoryEntry, 0)
	for rows.Next() {
		var e model.BidHistoryEntry
		var prev, next string
		if err := rows.Scan(&e.EntryID, &e.BidID, &prev, &next, &e.ChangedBy, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("get history for bid %s: %w", bidID, err)
		}
		e.PreviousStatus = model.BidStatus(prev)
		e.NewStatus = model.BidStatus(next)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateUser stores a new user row
func (r *SQLiteRepo) CreateUser(ctx context.Context, user model.User) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO users
			(id, email, role, active, verified, company_code, document_refs, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.UserID, user.Email, string(user.Role), user.Active, user.Verified,
		user.CompanyCode, joinRefs(user.DocumentRefs), user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.UserID, err)
	}
	return nil
}

// GetUser returns the user with the given id
func (r *SQLiteRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, email, role, active, verified, company_code, document_refs,
		created_at, updated_at FROM users WHERE id = ?`, userID)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, brokererrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// GetUsersByRole returns all users holding the given role
func (r *SQLiteRepo) GetUsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, email, role, active, verified, company_code, document_refs,
		created_at, updated_at FROM users WHERE role = ? ORDER BY id ASC`, string(role))
	if err != nil {
		return nil, fmt.Errorf("get users with role %s: %w", role, err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("get users with role %s: %w", role, err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// DeactivateUser flips the active flag. The row is never removed.
func (r *SQLiteRepo) DeactivateUser(ctx context.Context, userID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET active = 0, updated_at = ? WHERE id = ?`, at, userID)
	if err != nil {
		return fmt.Errorf("deactivate user %s: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate user %s: %w", userID, err)
	}
	if affected == 0 {
		return fmt.Errorf("deactivate user %s: %w", userID, brokererrors.ErrUserNotFound)
	}
	return nil
}

// RecordEmployeeAction appends an audit entry for an employee account
func (r *SQLiteRepo) RecordEmployeeAction(ctx context.Context, action model.EmployeeAction) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO employee_actions
			(id, employee_id, action, performed_by, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		action.ActionID, action.EmployeeID, action.Action, action.PerformedBy, action.Notes, action.CreatedAt)
	if err != nil {
		return fmt.Errorf("record action for employee %s: %w", action.EmployeeID, err)
	}
	return nil
}

// GetEmployeeActions returns the audit log for an employee, newest first
func (r *SQLiteRepo) GetEmployeeActions(ctx context.Context, employeeID string) ([]model.EmployeeAction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, employee_id, action, performed_by, notes, created_at
		FROM employee_actions WHERE employee_id = ? ORDER BY created_at DESC, rowid DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("get actions for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	actions := make([]model.EmployeeAction, 0)
	for rows.Next() {
		var a model.EmployeeAction
		if err := rows.Scan(&a.ActionID, &a.EmployeeID, &a.Action, &a.PerformedBy, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("get actions for employee %s: %w", employeeID, err)
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanBid(s scanner) (model.Bid, error) {
	var bid model.Bid
	var maxBid, fee, deposit, total, status string
	var approvedAt, rejectedAt sql.NullTime

	err := s.Scan(&bid.BidID, &bid.CustomerID, &bid.LotNumber, &maxBid, &fee, &deposit, &total,
		&status, &bid.PaymentIntentID, &bid.DepositRefundID, &bid.FeeRefundID, &bid.Refunded,
		&bid.ApprovedBy, &approvedAt, &bid.RejectedBy, &rejectedAt,
		&bid.RejectionNotes, &bid.Notes, &bid.CreatedAt, &bid.UpdatedAt)
	if err != nil {
		return model.Bid{}, err
	}

	if bid.MaxBidAmount, err = decimal.NewFromString(maxBid); err != nil {
		return model.Bid{}, fmt.Errorf("parse max bid amount: %w", err)
	}
	if bid.ServiceFee, err = decimal.NewFromString(fee); err != nil {
		return model.Bid{}, fmt.Errorf("parse service fee: %w", err)
	}
	if bid.DepositAmount, err = decimal.NewFromString(deposit); err != nil {
		return model.Bid{}, fmt.Errorf("parse deposit amount: %w", err)
	}
	if bid.TotalPaid, err = decimal.NewFromString(total); err != nil {
		return model.Bid{}, fmt.Errorf("parse total paid: %w", err)
	}
	bid.Status = model.BidStatus(status)
	if approvedAt.Valid {
		bid.ApprovedAt = &approvedAt.Time
	}
	if rejectedAt.Valid {
		bid.RejectedAt = &rejectedAt.Time
	}
	return bid, nil
}

func collectBids(rows *sql.Rows) ([]model.Bid, error) {
	bids := make([]model.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

func scanUser(s scanner) (model.User, error) {
	var user model.User
	var role, refs string
	err := s.Scan(&user.UserID, &user.Email, &role, &user.Active, &user.Verified,
		&user.CompanyCode, &refs, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	user.Role = model.Role(role)
	user.DocumentRefs = splitRefs(refs)
	return user, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

// Document references are stored newline-joined; refs are opaque storage
// keys and never contain newlines.
func joinRefs(refs []string) string {
	return strings.Join(refs, "\n")
}

func splitRefs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
