package ledgerservice

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/finseed/internal/catalog"
	"github.com/GlebRadaev/finseed/internal/domain"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newSynthesizer(seed uint64) *Synthesizer {
	return NewSynthesizer(gofakeit.New(seed), catalog.Default())
}

func snapshot() []domain.Account {
	return []domain.Account{
		{ID: 1, UserID: 10, Type: domain.AccountCreditCard},
		{ID: 2, UserID: 11, Type: domain.AccountPrepago},
		{ID: 3, UserID: 11, Type: domain.AccountPrepago},
		{ID: 4, UserID: 12, Type: domain.AccountPaypal},
		{ID: 5, UserID: 13, Type: domain.AccountSavings},
		{ID: 6, UserID: 14, Type: domain.AccountSavings},
		{ID: 7, UserID: 13, Type: domain.AccountSavings},
		{ID: 8, UserID: 15, Type: domain.AccountSavings},
	}
}

func between(t *testing.T, v decimal.Decimal, lo, hi float64) {
	t.Helper()
	assert.True(t, v.GreaterThanOrEqual(decimal.NewFromFloat(lo)), v.String())
	assert.True(t, v.LessThanOrEqual(decimal.NewFromFloat(hi)), v.String())
}

func TestSynthesizer_Purchases(t *testing.T) {
	s := newSynthesizer(4)
	merchants := catalog.Default().Merchants

	batch := s.Synthesize(snapshot(), 0, now)

	require.Len(t, batch.Channels, 2)
	mastercard, paypal := batch.Channels[0], batch.Channels[1]
	assert.Equal(t, domain.OperationMastercard, mastercard.Channel)
	assert.Equal(t, domain.OperationPaypal, paypal.Channel)
	require.Len(t, mastercard.Purchases, 3)
	require.Len(t, paypal.Purchases, 1)

	for _, p := range mastercard.Purchases {
		assert.True(t, p.AccountType == domain.AccountCreditCard || p.AccountType == domain.AccountPrepago)
		between(t, p.Amount, 10, 1000)
	}
	assert.Equal(t, 12, paypal.Purchases[0].UserID)
	between(t, paypal.Purchases[0].Amount, 5, 500)

	for _, ch := range batch.Channels {
		for _, p := range ch.Purchases {
			assert.Contains(t, merchants, p.Merchant)
			assert.Contains(t, []string{domain.TxStatusApproved, domain.TxStatusDeclined}, p.Status)
			assert.False(t, p.Timestamp.After(now))
			assert.True(t, now.Sub(p.Timestamp) <= 100*24*time.Hour+23*time.Hour+59*time.Minute)
		}
	}
	assert.Empty(t, batch.Transfers)
}

func TestSynthesizer_Transfers(t *testing.T) {
	t.Run("Distinct savings holders", func(t *testing.T) {
		s := newSynthesizer(9)

		batch := s.Synthesize(snapshot(), 50, now)

		require.Len(t, batch.Transfers, 50)
		for _, tr := range batch.Transfers {
			assert.NotEqual(t, tr.SenderID, tr.ReceiverID)
			assert.Contains(t, []int{13, 14, 15}, tr.SenderID)
			assert.Contains(t, []int{13, 14, 15}, tr.ReceiverID)
			assert.Equal(t, domain.AccountSavings, tr.AccountType)
			assert.Contains(t, []string{domain.TxStatusCompleted, domain.TxStatusPending}, tr.Status)
			between(t, tr.Amount, 1, 300)
		}
	})

	t.Run("One holder with many accounts yields nothing", func(t *testing.T) {
		s := newSynthesizer(9)
		accounts := []domain.Account{
			{ID: 1, UserID: 7, Type: domain.AccountSavings},
			{ID: 2, UserID: 7, Type: domain.AccountSavings},
		}

		batch := s.Synthesize(accounts, 50, now)

		assert.Empty(t, batch.Transfers)
	})

	t.Run("Empty snapshot", func(t *testing.T) {
		s := newSynthesizer(9)

		batch := s.Synthesize(nil, 50, now)

		assert.Empty(t, batch.Transfers)
		for _, ch := range batch.Channels {
			assert.Empty(t, ch.Purchases)
		}
	})
}

func TestHolders(t *testing.T) {
	assert.Equal(t, []int{13, 14, 15}, holders(snapshot(), domain.AccountSavings))
	assert.Nil(t, holders(snapshot()[:4], domain.AccountSavings))
}

func TestSynthesizer_Deterministic(t *testing.T) {
	a := newSynthesizer(77).Synthesize(snapshot(), 20, now)
	b := newSynthesizer(77).Synthesize(snapshot(), 20, now)

	assert.Equal(t, a, b)
}

func TestProject(t *testing.T) {
	ts := now.Add(-time.Hour)
	batch := Batch{
		Channels: []ChannelBatch{
			{Channel: domain.OperationMastercard, Purchases: []domain.Purchase{
				{ID: 1, UserID: 10, Amount: decimal.RequireFromString("100"), Timestamp: ts},
				{ID: 2, UserID: 11, Amount: decimal.RequireFromString("20.5"), Timestamp: ts},
			}},
			{Channel: domain.OperationPaypal, Purchases: []domain.Purchase{
				{ID: 1, UserID: 12, Amount: decimal.RequireFromString("7"), Timestamp: ts},
			}},
		},
		Transfers: []domain.InternalTransfer{
			{ID: 1, SenderID: 13, ReceiverID: 14, Amount: decimal.RequireFromString("50"), Timestamp: ts},
			{ID: 2, SenderID: 14, ReceiverID: 15, Amount: decimal.RequireFromString("1.25"), Timestamp: ts},
		},
	}

	ops := Project(batch)

	require.Len(t, ops, 3+2*2)
	types := make([]domain.OperationType, 0, len(ops))
	for i, op := range ops {
		assert.Equal(t, i+1, op.ID)
		types = append(types, op.TransactionType)
	}
	assert.Equal(t, []domain.OperationType{
		domain.OperationMastercard, domain.OperationMastercard, domain.OperationPaypal,
		domain.OperationInternalSend, domain.OperationInternalSend,
		domain.OperationInternalReceive, domain.OperationInternalReceive,
	}, types)

	for i, tr := range batch.Transfers {
		send, receive := ops[3+i], ops[5+i]
		assert.Equal(t, tr.ID, send.LineID)
		assert.Equal(t, tr.ID, receive.LineID)
		assert.Equal(t, tr.SenderID, send.UserID)
		assert.Equal(t, tr.ReceiverID, receive.UserID)
		assert.True(t, send.Amount.Add(receive.Amount).IsZero())
		assert.True(t, send.Amount.IsNegative())
	}

	assert.Empty(t, Project(Batch{}))
}
