package service

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/GlebRadaev/finseed/internal/catalog"
	"github.com/GlebRadaev/finseed/internal/config"
	"github.com/GlebRadaev/finseed/internal/handlers/campaigns"
	"github.com/GlebRadaev/finseed/internal/handlers/operations"
	"github.com/GlebRadaev/finseed/internal/handlers/summary"
	"github.com/GlebRadaev/finseed/internal/pipeline"
	"github.com/GlebRadaev/finseed/internal/repo"
	"github.com/GlebRadaev/finseed/internal/service/campaignservice"
	"github.com/GlebRadaev/finseed/internal/service/identityservice"
	"github.com/GlebRadaev/finseed/internal/service/ledgerservice"
	"github.com/GlebRadaev/finseed/internal/service/reportservice"
)

type Services struct {
	IdentityService   *identityservice.Service
	LedgerService     *ledgerservice.Service
	CampaignService   *campaignservice.Service
	OperationsService operations.Service
	CampaignsService  campaigns.Service
	SummaryService    summary.Service
}

func New(repo *repo.Repositories, cfg *config.Config) (*Services, error) {
	layout, err := campaignservice.ParseLayout(cfg.CampaignLayout)
	if err != nil {
		return nil, err
	}

	c := catalog.Default()

	identityService := identityservice.New(
		repo.Identity,
		identityservice.NewGenerator(newFaker(cfg.Seed, 0), c),
		cfg.Users,
	)
	ledgerService := ledgerservice.New(
		repo.Identity,
		repo.Ledger,
		ledgerservice.NewSynthesizer(newFaker(cfg.Seed, 1), c),
		c,
		cfg.Transfers,
	)
	campaignFaker := newFaker(cfg.Seed, 2)
	campaignService := campaignservice.New(
		repo.Identity,
		repo.Campaigns,
		campaignservice.NewPlanner(campaignFaker, layout, cfg.CampaignCount),
		campaignFaker,
		c.Merchants,
	)
	reportService := reportservice.New(repo.Ledger, repo.Campaigns, repo.Identity, repo.Ledger, repo.Campaigns)

	return &Services{
		IdentityService:   identityService,
		LedgerService:     ledgerService,
		CampaignService:   campaignService,
		OperationsService: reportService,
		CampaignsService:  reportService,
		SummaryService:    reportService,
	}, nil
}

// Stages returns the seeding stages in dependency order.
func (s *Services) Stages() []pipeline.Stage {
	return []pipeline.Stage{s.IdentityService, s.LedgerService, s.CampaignService}
}

// newFaker gives every stage its own stream so a fixed seed reproduces each stage
// independently. Seed 0 lets gofakeit pick a random one.
func newFaker(seed, stream uint64) *gofakeit.Faker {
	if seed == 0 {
		return gofakeit.New(0)
	}
	return gofakeit.New(seed + stream)
}
