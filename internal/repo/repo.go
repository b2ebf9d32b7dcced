package repo

import (
	"github.com/GlebRadaev/finseed/internal/pg"
	campaignrepo "github.com/GlebRadaev/finseed/internal/repo/campaign-repo"
	identityrepo "github.com/GlebRadaev/finseed/internal/repo/identity-repo"
	ledgerrepo "github.com/GlebRadaev/finseed/internal/repo/ledger-repo"
	"github.com/GlebRadaev/finseed/internal/service/campaignservice"
	"github.com/GlebRadaev/finseed/internal/service/identityservice"
	"github.com/GlebRadaev/finseed/internal/service/ledgerservice"
	"github.com/GlebRadaev/finseed/internal/service/reportservice"
)

type IdentityRepo interface {
	identityservice.Repo
	ledgerservice.AccountReader
	campaignservice.ActivationReader
	reportservice.Counter
}

type LedgerRepo interface {
	ledgerservice.Repo
	reportservice.OperationReader
	reportservice.Counter
}

type CampaignRepo interface {
	campaignservice.Repo
	reportservice.AssignmentReader
	reportservice.Counter
}

// Store is the connection and transaction manager of one database.
type Store struct {
	Conn      pg.Database
	TxManager pg.TXManager
}

type Repositories struct {
	Identity  IdentityRepo
	Ledger    LedgerRepo
	Campaigns CampaignRepo
}

func New(identity, ledger, campaigns Store) *Repositories {
	return &Repositories{
		Identity:  identityrepo.New(identity.Conn, identity.TxManager),
		Ledger:    ledgerrepo.New(ledger.Conn, ledger.TxManager),
		Campaigns: campaignrepo.New(campaigns.Conn, campaigns.TxManager),
	}
}
