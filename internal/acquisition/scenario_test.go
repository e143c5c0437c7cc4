package acquisition

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalwatch/internal/domain"
	"legalwatch/internal/ledger"
	"legalwatch/internal/provider"
	"legalwatch/internal/storage/memory"
)

type countingCaller struct {
	calls   atomic.Int32
	payload json.RawMessage
}

func (c *countingCaller) Call(context.Context, domain.Operation, provider.Request) (*provider.Result, error) {
	c.calls.Add(1)
	return &provider.Result{Provider: "escavador", Payload: c.payload}, nil
}

func newScenario(t *testing.T, balance int64) (*Orchestrator, *memory.DB, *countingCaller) {
	t.Helper()

	db := memory.New()
	db.PutAccount(domain.CreditAccount{
		AccountID:     "acc",
		Balance:       balance,
		PerCreditCost: decimal.RequireFromString("0.50"),
	})

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	caller := &countingCaller{payload: json.RawMessage(`{"case_number":"00012345620238260100"}`)}
	l := ledger.New(db, decimal.RequireFromString("0.50"), logger)
	return New(db, caller, l, testTTL(), testPricing(), logger), db, caller
}

func TestScenario_ChargeOnceThenServeFromCache(t *testing.T) {
	ctx := context.Background()
	o, db, caller := newScenario(t, 10)

	first, err := o.ProcessDetail(ctx, "acc", caseNumber, false)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, int64(3), first.CreditsCharged)

	acct, err := db.GetAccount(ctx, "acc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), acct.Balance)

	entries, err := db.ListEntries(ctx, "acc", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(-3), entries[0].CreditsDelta)
	assert.Equal(t, domain.EntryConsumption, entries[0].Type)
	assert.True(t, entries[0].CostInCurrency.Equal(decimal.RequireFromString("1.5")))
	assert.Len(t, db.Grants("acc"), 1)

	second, err := o.ProcessDetail(ctx, "acc", caseNumber, false)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, int64(0), second.CreditsCharged)

	acct, err = db.GetAccount(ctx, "acc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), acct.Balance)
	assert.Equal(t, int32(1), caller.calls.Load())
}

func TestScenario_InsufficientCreditsLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	o, db, _ := newScenario(t, 2)

	_, err := o.ProcessDetail(ctx, "acc", caseNumber, false)

	var insufficient *domain.InsufficientCreditsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(3), insufficient.Required)
	assert.Equal(t, int64(2), insufficient.Available)

	entries, err := db.ListEntries(ctx, "acc", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, db.Grants("acc"))

	cached, err := db.GetEntry(ctx, domain.DomainProcess, DetailKey(caseNumber, false))
	require.NoError(t, err)
	assert.NotNil(t, cached)
}

func TestScenario_ConcurrentMissesChargeOncePerResource(t *testing.T) {
	ctx := context.Background()
	o, db, _ := newScenario(t, 10)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(attachments bool) {
			defer wg.Done()
			_, _ = o.ProcessDetail(ctx, "acc", caseNumber, attachments)
		}(i%2 == 0)
	}
	wg.Wait()

	acct, err := db.GetAccount(ctx, "acc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), acct.Balance)
	assert.Len(t, db.Grants("acc"), 1)

	entries, err := db.ListEntries(ctx, "acc", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScenario_PerMissOperationChargesEveryMiss(t *testing.T) {
	ctx := context.Background()
	o, db, caller := newScenario(t, 10)
	o.ttl.Registration = 0

	for i := 0; i < 2; i++ {
		res, err := o.Registration(ctx, "acc", "12345678000190")
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.CreditsCharged)
	}

	acct, err := db.GetAccount(ctx, "acc")
	require.NoError(t, err)
	assert.Equal(t, int64(6), acct.Balance)
	assert.Equal(t, int32(2), caller.calls.Load())
}
