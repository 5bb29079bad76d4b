// Package billing owns the credit ledger: per-minute usage charges at call
// completion, top-ups, and the credit gate the queue processor dispatches
// behind. Every balance change writes a CreditTransaction row carrying the
// post-change balance, so the ledger always reconciles against the tenant
// row.
package billing

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/credittransaction"
	"github.com/ringstack/ringstack/ent/tenant"
	"github.com/ringstack/ringstack/pkg/services"
)

// Service manages tenant credits.
type Service struct {
	client *ent.Client
	logger *slog.Logger
}

// NewService creates a billing Service.
func NewService(client *ent.Client) *Service {
	if client == nil {
		panic("billing.NewService: client is required")
	}
	return &Service{
		client: client,
		logger: slog.With("component", "billing"),
	}
}

// BilledMinutes converts a call duration to billing units. Any started
// minute bills in full; zero-duration calls bill nothing.
func BilledMinutes(durationSeconds int) int {
	if durationSeconds <= 0 {
		return 0
	}
	return int(math.Ceil(float64(durationSeconds) / 60.0))
}

// Charge is the outcome of a usage charge.
type Charge struct {
	TransactionID string
	Minutes       int
	BalanceAfter  int
}

// ChargeCallTx decrements the tenant balance by minutes and writes the usage
// ledger row, inside the caller's transaction so the charge commits or rolls
// back together with the call update. Balances may go negative: completed
// calls always bill, and the processor's credit gate stops further dispatch.
func (s *Service) ChargeCallTx(ctx context.Context, tx *ent.Tx, tenantID, callID string, minutes int) (*Charge, error) {
	if minutes <= 0 {
		return nil, services.NewValidationError("minutes", "must be positive")
	}

	t, err := tx.Tenant.UpdateOneID(tenantID).
		AddCredits(-minutes).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to decrement credits: %w", err)
	}

	txnID := uuid.New().String()
	if _, err := tx.CreditTransaction.Create().
		SetID(txnID).
		SetTenantID(tenantID).
		SetType(credittransaction.TypeUsage).
		SetAmount(-minutes).
		SetBalanceAfter(t.Credits).
		SetCallID(callID).
		SetDescription(fmt.Sprintf("call usage: %d minute(s)", minutes)).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to record usage transaction: %w", err)
	}

	return &Charge{
		TransactionID: txnID,
		Minutes:       minutes,
		BalanceAfter:  t.Credits,
	}, nil
}

// AddCredits credits the tenant and records a ledger row. amount must be
// positive; type purchase for paid top-ups, adjustment for support fixes.
func (s *Service) AddCredits(ctx context.Context, tenantID string, amount int, txnType credittransaction.Type, description string) (*ent.CreditTransaction, error) {
	if amount <= 0 {
		return nil, services.NewValidationError("amount", "must be positive")
	}
	if txnType != credittransaction.TypePurchase && txnType != credittransaction.TypeAdjustment {
		return nil, services.NewValidationError("type", "must be purchase or adjustment")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := tx.Tenant.UpdateOneID(tenantID).
		AddCredits(amount).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to add credits: %w", err)
	}

	txn, err := tx.CreditTransaction.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetType(txnType).
		SetAmount(amount).
		SetBalanceAfter(t.Credits).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record credit transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit credit top-up: %w", err)
	}

	s.logger.Info("Credits added",
		"tenant_id", tenantID,
		"amount", amount,
		"balance_after", t.Credits,
		"transaction_id", txn.ID)
	return txn, nil
}

// Balance returns the tenant's current credit balance.
func (s *Service) Balance(ctx context.Context, tenantID string) (int, error) {
	t, err := s.client.Tenant.Query().
		Where(tenant.IDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, services.ErrNotFound
		}
		return 0, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	return t.Credits, nil
}

// HasCredit is the processor's dispatch gate: at least one whole credit.
func (s *Service) HasCredit(ctx context.Context, tenantID string) (bool, error) {
	balance, err := s.Balance(ctx, tenantID)
	if err != nil {
		return false, err
	}
	return balance >= 1, nil
}

// History returns the tenant's ledger, newest first.
func (s *Service) History(ctx context.Context, tenantID string, limit, offset int) ([]*ent.CreditTransaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.client.CreditTransaction.Query().
		Where(credittransaction.TenantIDEQ(tenantID)).
		Order(ent.Desc(credittransaction.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit transactions: %w", err)
	}
	return rows, nil
}
