package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/finseed/internal/catalog"
	"github.com/GlebRadaev/finseed/internal/domain"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_repo.go -package=ledgerservice

type AccountReader interface {
	ListAccounts(ctx context.Context, types ...domain.AccountType) ([]domain.Account, error)
}

type Repo interface {
	Reset(ctx context.Context) error
	CreatePurchases(ctx context.Context, channel domain.OperationType, purchases []domain.Purchase) ([]domain.Purchase, error)
	CreateTransfers(ctx context.Context, transfers []domain.InternalTransfer) ([]domain.InternalTransfer, error)
	RebuildOperationsView(ctx context.Context) error
	CountOperations(ctx context.Context) (int64, error)
}

var ErrViewMismatch = errors.New("operations view does not match the written ledger")

type Service struct {
	accounts    AccountReader
	repo        Repo
	synthesizer *Synthesizer
	catalog     catalog.Catalog
	transfers   int
	now         func() time.Time
}

func New(accounts AccountReader, repo Repo, synthesizer *Synthesizer, c catalog.Catalog, transfers int) *Service {
	return &Service{
		accounts:    accounts,
		repo:        repo,
		synthesizer: synthesizer,
		catalog:     c,
		transfers:   transfers,
		now:         time.Now,
	}
}

func (s *Service) Name() string { return "ledger" }

func (s *Service) Reads() []domain.Entity { return []domain.Entity{domain.EntityAccounts} }

func (s *Service) Writes() []domain.Entity {
	return []domain.Entity{
		domain.EntityMastercard,
		domain.EntityPaypal,
		domain.EntityInternal,
		domain.EntityOperations,
	}
}

// Run rewrites the ledger store from a snapshot of the identity accounts and rebuilds the operations view.
func (s *Service) Run(ctx context.Context) (domain.Summary, error) {
	now := s.now()

	snapshot, err := s.accounts.ListAccounts(ctx, s.snapshotTypes()...)
	if err != nil {
		return nil, fmt.Errorf("read accounts snapshot: %w", err)
	}
	zap.L().Debug("accounts snapshot loaded", zap.Int("accounts", len(snapshot)))

	if err := s.repo.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset ledger store: %w", err)
	}

	batch := s.synthesizer.Synthesize(snapshot, s.transfers, now)
	summary := domain.Summary{}

	for i, ch := range batch.Channels {
		created, err := s.repo.CreatePurchases(ctx, ch.Channel, ch.Purchases)
		if err != nil {
			return nil, fmt.Errorf("write %s purchases: %w", ch.Channel, err)
		}
		batch.Channels[i].Purchases = created
		summary[channelEntity(ch.Channel)] = len(created)
	}

	transfers, err := s.repo.CreateTransfers(ctx, batch.Transfers)
	if err != nil {
		return nil, fmt.Errorf("write transfers: %w", err)
	}
	batch.Transfers = transfers
	summary[domain.EntityInternal] = len(transfers)

	if err := s.repo.RebuildOperationsView(ctx); err != nil {
		return nil, fmt.Errorf("rebuild operations view: %w", err)
	}

	expected := len(Project(batch))
	actual, err := s.repo.CountOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("count operations: %w", err)
	}
	if actual != int64(expected) {
		zap.L().Error("operations view out of sync", zap.Int("expected", expected), zap.Int64("actual", actual))
		return nil, fmt.Errorf("%w: expected %d rows, view has %d", ErrViewMismatch, expected, actual)
	}
	summary[domain.EntityOperations] = expected

	return summary, nil
}

// snapshotTypes lists every account type the ledger consumes, channels first.
func (s *Service) snapshotTypes() []domain.AccountType {
	var types []domain.AccountType
	seen := make(map[domain.AccountType]bool)
	add := func(t domain.AccountType) {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	for _, ch := range s.catalog.Channels {
		for _, t := range ch.AccountTypes {
			add(t)
		}
	}
	add(s.catalog.TransferAccountType)
	return types
}

func channelEntity(op domain.OperationType) domain.Entity {
	switch op {
	case domain.OperationMastercard:
		return domain.EntityMastercard
	case domain.OperationPaypal:
		return domain.EntityPaypal
	default:
		return domain.Entity("transactions_" + string(op))
	}
}
