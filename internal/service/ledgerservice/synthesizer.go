package ledgerservice

import (
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/finseed/internal/catalog"
	"github.com/GlebRadaev/finseed/internal/domain"
)

// ChannelBatch is the set of purchases one channel table receives.
type ChannelBatch struct {
	Channel   domain.OperationType
	Purchases []domain.Purchase
}

// Batch is everything one ledger pass writes, channels kept in catalog order.
type Batch struct {
	Channels  []ChannelBatch
	Transfers []domain.InternalTransfer
}

type Synthesizer struct {
	faker   *gofakeit.Faker
	catalog catalog.Catalog
}

func NewSynthesizer(faker *gofakeit.Faker, c catalog.Catalog) *Synthesizer {
	return &Synthesizer{
		faker:   faker,
		catalog: c,
	}
}

// Synthesize emits one purchase per account that maps to a channel and the
// requested number of transfers between distinct savings holders.
func (s *Synthesizer) Synthesize(accounts []domain.Account, transfers int, now time.Time) Batch {
	batch := Batch{Channels: make([]ChannelBatch, 0, len(s.catalog.Channels))}
	for _, ch := range s.catalog.Channels {
		batch.Channels = append(batch.Channels, ChannelBatch{Channel: ch.Operation})
	}

	for _, a := range accounts {
		ch, ok := s.catalog.ChannelFor(a.Type)
		if !ok {
			continue
		}
		i := s.channelIndex(ch.Operation)
		batch.Channels[i].Purchases = append(batch.Channels[i].Purchases, domain.Purchase{
			UserID:      a.UserID,
			Amount:      s.amount(ch.Amount),
			Merchant:    s.faker.RandomString(s.catalog.Merchants),
			AccountType: a.Type,
			Timestamp:   s.pastInstant(now),
			Status:      s.pick(domain.TxStatusApproved, domain.TxStatusDeclined),
		})
	}

	batch.Transfers = s.transfers(holders(accounts, s.catalog.TransferAccountType), transfers, now)
	return batch
}

func (s *Synthesizer) transfers(holders []int, count int, now time.Time) []domain.InternalTransfer {
	if len(holders) < 2 || count <= 0 {
		return nil
	}

	transfers := make([]domain.InternalTransfer, 0, count)
	for i := 0; i < count; i++ {
		sender := holders[s.faker.IntRange(0, len(holders)-1)]
		receiver := holders[s.faker.IntRange(0, len(holders)-1)]
		for receiver == sender {
			receiver = holders[s.faker.IntRange(0, len(holders)-1)]
		}
		transfers = append(transfers, domain.InternalTransfer{
			SenderID:    sender,
			ReceiverID:  receiver,
			Amount:      s.amount(s.catalog.TransferAmount),
			AccountType: s.catalog.TransferAccountType,
			Timestamp:   s.pastInstant(now),
			Status:      s.pick(domain.TxStatusCompleted, domain.TxStatusPending),
		})
	}
	return transfers
}

func (s *Synthesizer) channelIndex(op domain.OperationType) int {
	for i, ch := range s.catalog.Channels {
		if ch.Operation == op {
			return i
		}
	}
	return -1
}

func (s *Synthesizer) amount(r catalog.Range) decimal.Decimal {
	return decimal.NewFromFloat(s.faker.Float64Range(r.Min, r.Max)).Round(2)
}

func (s *Synthesizer) pick(a, b string) string {
	if s.faker.Bool() {
		return a
	}
	return b
}

func (s *Synthesizer) pastInstant(now time.Time) time.Time {
	back := time.Duration(s.faker.IntRange(0, 100))*24*time.Hour +
		time.Duration(s.faker.IntRange(0, 23))*time.Hour +
		time.Duration(s.faker.IntRange(0, 59))*time.Minute
	return now.Add(-back)
}

// holders returns the distinct owners of accounts of type t in ascending order.
func holders(accounts []domain.Account, t domain.AccountType) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, a := range accounts {
		if a.Type != t {
			continue
		}
		if _, ok := seen[a.UserID]; ok {
			continue
		}
		seen[a.UserID] = struct{}{}
		ids = append(ids, a.UserID)
	}
	sort.Ints(ids)
	return ids
}

// Project expands a batch into the rows the operations view exposes, in view order:
// channel purchases, then transfer debits, then transfer credits.
// A transfer contributes a debit to its sender and a credit to its receiver, both
// carrying the transfer id as line id.
func Project(batch Batch) []domain.Operation {
	var ops []domain.Operation
	for _, ch := range batch.Channels {
		for _, p := range ch.Purchases {
			ops = append(ops, domain.Operation{
				UserID:          p.UserID,
				Amount:          p.Amount,
				TransactionType: ch.Channel,
				LineID:          p.ID,
				Timestamp:       p.Timestamp,
			})
		}
	}
	for _, t := range batch.Transfers {
		ops = append(ops, domain.Operation{
			UserID:          t.SenderID,
			Amount:          t.Amount.Neg(),
			TransactionType: domain.OperationInternalSend,
			LineID:          t.ID,
			Timestamp:       t.Timestamp,
		})
	}
	for _, t := range batch.Transfers {
		ops = append(ops, domain.Operation{
			UserID:          t.ReceiverID,
			Amount:          t.Amount,
			TransactionType: domain.OperationInternalReceive,
			LineID:          t.ID,
			Timestamp:       t.Timestamp,
		})
	}
	for i := range ops {
		ops[i].ID = i + 1
	}
	return ops
}
