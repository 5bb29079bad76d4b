package billing

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/credittransaction"
	"github.com/ringstack/ringstack/pkg/services"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTenant(t *testing.T, client *ent.Client, id string, credits int) {
	t.Helper()
	_, err := client.Tenant.Create().
		SetID(id).
		SetName("Tenant " + id).
		SetEmail(id + "@example.com").
		SetCredits(credits).
		Save(context.Background())
	require.NoError(t, err)
}

func TestBilledMinutes(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 0},
		{-10, 0},
		{1, 1},
		{59, 1},
		{60, 1},
		{61, 2},
		{120, 2},
		{121, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%ds", tt.seconds), func(t *testing.T) {
			assert.Equal(t, tt.want, BilledMinutes(tt.seconds))
		})
	}
}

func TestChargeCallTx(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1", 10)
	svc := NewService(client.Client)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	charge, err := svc.ChargeCallTx(ctx, tx, "tenant-1", "call-1", 3)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 3, charge.Minutes)
	assert.Equal(t, 7, charge.BalanceAfter)

	txn, err := client.CreditTransaction.Get(ctx, charge.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, credittransaction.TypeUsage, txn.Type)
	assert.Equal(t, -3, txn.Amount)
	assert.Equal(t, 7, txn.BalanceAfter)
	assert.Equal(t, "call-1", *txn.CallID)

	balance, err := svc.Balance(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 7, balance)
}

func TestChargeCallTxRollsBackWithCaller(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1", 10)
	svc := NewService(client.Client)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	_, err = svc.ChargeCallTx(ctx, tx, "tenant-1", "call-1", 3)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	balance, err := svc.Balance(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 10, balance, "aborted completion must not charge")

	n, err := client.CreditTransaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestChargeCallTxAllowsNegativeBalance(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1", 2)
	svc := NewService(client.Client)

	// A long call on a nearly drained account: the completed call bills in
	// full and the balance goes negative.
	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	charge, err := svc.ChargeCallTx(ctx, tx, "tenant-1", "call-1", 5)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, -3, charge.BalanceAfter)

	has, err := svc.HasCredit(ctx, "tenant-1")
	require.NoError(t, err)
	assert.False(t, has, "negative balance gates further dispatch")
}

func TestChargeCallTxValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1", 10)
	svc := NewService(client.Client)

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = svc.ChargeCallTx(ctx, tx, "tenant-1", "call-1", 0)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.ChargeCallTx(ctx, tx, "nobody", "call-1", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAddCredits(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1", 5)
	svc := NewService(client.Client)

	txn, err := svc.AddCredits(ctx, "tenant-1", 100, credittransaction.TypePurchase, "starter pack")
	require.NoError(t, err)
	assert.Equal(t, 100, txn.Amount)
	assert.Equal(t, 105, txn.BalanceAfter)

	balance, err := svc.Balance(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, 105, balance)
}

func TestAddCreditsValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1", 5)
	svc := NewService(client.Client)

	_, err := svc.AddCredits(ctx, "tenant-1", 0, credittransaction.TypePurchase, "")
	assert.True(t, services.IsValidationError(err))

	_, err = svc.AddCredits(ctx, "tenant-1", -5, credittransaction.TypePurchase, "")
	assert.True(t, services.IsValidationError(err))

	_, err = svc.AddCredits(ctx, "tenant-1", 10, credittransaction.TypeUsage, "")
	assert.True(t, services.IsValidationError(err), "usage rows only come from charges")

	_, err = svc.AddCredits(ctx, "nobody", 10, credittransaction.TypePurchase, "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestHasCredit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-rich", 1)
	seedTenant(t, client.Client, "tenant-broke", 0)
	svc := NewService(client.Client)

	has, err := svc.HasCredit(ctx, "tenant-rich")
	require.NoError(t, err)
	assert.True(t, has, "one whole credit is enough")

	has, err = svc.HasCredit(ctx, "tenant-broke")
	require.NoError(t, err)
	assert.False(t, has)

	_, err = svc.HasCredit(ctx, "nobody")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seedTenant(t, client.Client, "tenant-1", 0)
	seedTenant(t, client.Client, "tenant-2", 0)
	svc := NewService(client.Client)

	for i := 1; i <= 3; i++ {
		_, err := svc.AddCredits(ctx, "tenant-1", i*10, credittransaction.TypePurchase, fmt.Sprintf("top-up %d", i))
		require.NoError(t, err)
	}
	_, err := svc.AddCredits(ctx, "tenant-2", 99, credittransaction.TypePurchase, "other tenant")
	require.NoError(t, err)

	rows, err := svc.History(ctx, "tenant-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3, "ledger is tenant-scoped")

	rows, err = svc.History(ctx, "tenant-1", 2, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = svc.History(ctx, "tenant-1", 2, 2)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// Out-of-range limits fall back to the default page size.
	rows, err = svc.History(ctx, "tenant-1", -1, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	uuidLike := uuid.New().String()
	rows, err = svc.History(ctx, uuidLike, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, rows, "unknown tenants read as empty ledgers")
}
