package identityservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/finseed/internal/domain"
)

//go:generate mockgen -source=identityservice.go -destination=mock_repo.go -package=identityservice

type Repo interface {
	Reset(ctx context.Context) error
	CreateProfile(ctx context.Context, p *domain.Profile) (int, error)
	IssueAccounts(ctx context.Context, accounts []domain.Account, issueCards func([]domain.Account) ([]domain.CardInfo, error)) ([]domain.Account, int64, error)
}

type Service struct {
	repo  Repo
	gen   *Generator
	users int
	now   func() time.Time
}

func New(repo Repo, gen *Generator, users int) *Service {
	return &Service{
		repo:  repo,
		gen:   gen,
		users: users,
		now:   time.Now,
	}
}

func (s *Service) Name() string { return "identity" }

func (s *Service) Reads() []domain.Entity { return nil }

func (s *Service) Writes() []domain.Entity {
	return []domain.Entity{
		domain.EntityUsers,
		domain.EntityDemographics,
		domain.EntityOnboarding,
		domain.EntityUserStatus,
		domain.EntityAccounts,
		domain.EntityCardInfo,
	}
}

// Run replaces the identity store content with a fresh population.
func (s *Service) Run(ctx context.Context) (domain.Summary, error) {
	now := s.now()

	if err := s.repo.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset identity store: %w", err)
	}

	userIDs := make([]int, 0, s.users)
	for i := 0; i < s.users; i++ {
		profile := s.gen.Profile(now)
		id, err := s.repo.CreateProfile(ctx, &profile)
		if err != nil {
			zap.L().Error("can't create user", zap.String("email", profile.User.Email), zap.Error(err))
			return nil, fmt.Errorf("create user %s: %w", profile.User.Email, err)
		}
		userIDs = append(userIDs, id)
	}
	zap.L().Debug("users created", zap.Int("count", len(userIDs)))

	summary := domain.Summary{
		domain.EntityUsers:        len(userIDs),
		domain.EntityDemographics: len(userIDs),
		domain.EntityOnboarding:   len(userIDs),
		domain.EntityUserStatus:   len(userIDs),
	}

	accounts := s.gen.IssueAccounts(userIDs, now)
	if len(accounts) == 0 {
		summary[domain.EntityAccounts] = 0
		summary[domain.EntityCardInfo] = 0
		return summary, nil
	}

	created, cards, err := s.repo.IssueAccounts(ctx, accounts, func(persisted []domain.Account) ([]domain.CardInfo, error) {
		return s.gen.IssueCards(persisted, now)
	})
	if err != nil {
		return nil, fmt.Errorf("issue accounts: %w", err)
	}

	summary[domain.EntityAccounts] = len(created)
	summary[domain.EntityCardInfo] = int(cards)
	return summary, nil
}
