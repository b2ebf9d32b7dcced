package campaignservice

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	"github.com/GlebRadaev/finseed/internal/domain"
)

//go:generate mockgen -source=campaignservice.go -destination=mock_repo.go -package=campaignservice

type ActivationReader interface {
	ListCreditCardActivations(ctx context.Context) ([]domain.Activation, error)
}

type Repo interface {
	Reset(ctx context.Context) error
	SaveCampaign(ctx context.Context, campaign domain.Campaign, assignments []domain.UserCampaign) (int, error)
}

type Service struct {
	activations ActivationReader
	repo        Repo
	planner     *Planner
	faker       *gofakeit.Faker
	merchants   []string
	now         func() time.Time
}

func New(activations ActivationReader, repo Repo, planner *Planner, faker *gofakeit.Faker, merchants []string) *Service {
	return &Service{
		activations: activations,
		repo:        repo,
		planner:     planner,
		faker:       faker,
		merchants:   merchants,
		now:         time.Now,
	}
}

func (s *Service) Name() string { return "campaigns" }

func (s *Service) Reads() []domain.Entity { return []domain.Entity{domain.EntityAccounts} }

func (s *Service) Writes() []domain.Entity {
	return []domain.Entity{domain.EntityCampaigns, domain.EntityUserCampaigns}
}

// Eligible returns the users whose card was activated strictly before the campaign starts.
func Eligible(activations []domain.Activation, campaign domain.Campaign) []domain.Activation {
	start := domain.DateOf(campaign.StartDate)
	var eligible []domain.Activation
	for _, a := range activations {
		if domain.DateOf(a.ActivatedDate).Before(start) {
			eligible = append(eligible, a)
		}
	}
	return eligible
}

// Assign builds one assignment per eligible user with a single random merchant and
// the campaign window copied as is.
func (s *Service) Assign(eligible []domain.Activation, campaign domain.Campaign) []domain.UserCampaign {
	assignments := make([]domain.UserCampaign, 0, len(eligible))
	for _, a := range eligible {
		assignments = append(assignments, domain.UserCampaign{
			UserID:       a.UserID,
			CampaignID:   campaign.ID,
			MerchantList: []string{s.faker.RandomString(s.merchants)},
			StartDate:    campaign.StartDate,
			EndDate:      campaign.EndDate,
		})
	}
	return assignments
}

// Run regenerates the campaign store against a snapshot of credit card activations.
func (s *Service) Run(ctx context.Context) (domain.Summary, error) {
	activations, err := s.activations.ListCreditCardActivations(ctx)
	if err != nil {
		return nil, fmt.Errorf("read activations snapshot: %w", err)
	}
	zap.L().Debug("activations snapshot loaded", zap.Int("users", len(activations)))

	if err := s.repo.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset campaigns store: %w", err)
	}

	summary := domain.Summary{
		domain.EntityCampaigns:     0,
		domain.EntityUserCampaigns: 0,
	}
	for _, campaign := range s.planner.Plan(s.now()) {
		assignments := s.Assign(Eligible(activations, campaign), campaign)
		id, err := s.repo.SaveCampaign(ctx, campaign, assignments)
		if err != nil {
			return nil, fmt.Errorf("save %s: %w", campaign.Name, err)
		}
		zap.L().Debug("campaign saved",
			zap.Int("campaign_id", id),
			zap.Time("start_date", campaign.StartDate),
			zap.Int("assignments", len(assignments)),
		)
		summary[domain.EntityCampaigns]++
		summary[domain.EntityUserCampaigns] += len(assignments)
	}
	return summary, nil
}
