package identityrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Reset(ctx context.Context) error {
	query := `
		TRUNCATE TABLE card_info, accounts, user_status, onboarding, demographics, users
		RESTART IDENTITY CASCADE
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		zap.L().Error("failed to truncate identity store", zap.Error(err))
		return pg.WrapErr(err, "truncate identity store")
	}
	return nil
}

// CreateProfile stores a user with its demographics, onboarding and status rows in one transaction
// and returns the new user id.
func (r *Repository) CreateProfile(ctx context.Context, p *domain.Profile) (int, error) {
	var userID int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, `
			INSERT INTO users (name, email, phone)
			VALUES ($1, $2, $3)
			RETURNING id
		`, p.User.Name, p.User.Email, p.User.Phone)
		if err := row.Scan(&userID); err != nil {
			return pg.WrapErr(err, "insert user %s", p.User.Email)
		}

		d := p.Demographics
		if _, err := r.db.Exec(ctx, `
			INSERT INTO demographics (user_id, age, gender, income_level, country, state, city)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, userID, d.Age, d.Gender, d.IncomeLevel, d.Country, d.State, d.City); err != nil {
			return pg.WrapErr(err, "insert demographics for user %d", userID)
		}

		o := p.Onboarding
		if _, err := r.db.Exec(ctx, `
			INSERT INTO onboarding (user_id, step, status, completed_at)
			VALUES ($1, $2, $3, $4)
		`, userID, o.Step, o.Status, o.CompletedAt); err != nil {
			return pg.WrapErr(err, "insert onboarding for user %d", userID)
		}

		s := p.Status
		if _, err := r.db.Exec(ctx, `
			INSERT INTO user_status (user_id, status, last_active_at)
			VALUES ($1, $2, $3)
		`, userID, s.Status, s.LastActiveAt); err != nil {
			return pg.WrapErr(err, "insert status for user %d", userID)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to create profile", zap.Error(err))
		return 0, err
	}

	p.User.ID = userID
	p.Demographics.UserID = userID
	p.Onboarding.UserID = userID
	p.Status.UserID = userID
	return userID, nil
}

// CreateAccounts inserts the whole issuance pass in one transaction and returns the accounts with their ids.
func (r *Repository) CreateAccounts(ctx context.Context, accounts []domain.Account) ([]domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, account_type, balance, currency, activated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	created := make([]domain.Account, 0, len(accounts))
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, acc := range accounts {
			row := r.db.QueryRow(ctx, query, acc.UserID, string(acc.Type), acc.Balance, acc.Currency, acc.ActivatedAt)
			if err := row.Scan(&acc.ID); err != nil {
				return pg.WrapErr(err, "insert %s account for user %d", acc.Type, acc.UserID)
			}
			created = append(created, acc)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to create accounts", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) CreateCards(ctx context.Context, cards []domain.CardInfo) (int64, error) {
	rows := make([][]any, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []any{c.AccountID, c.CardNumber, c.ExpirationDate, c.Status})
	}

	n, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"card_info"},
		[]string{"account_id", "card_number", "expiration_date", "status"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		zap.L().Error("failed to copy card info", zap.Error(err))
		return 0, pg.WrapErr(err, "copy card_info")
	}
	return n, nil
}

// IssueAccounts stores one issuance pass: the accounts, then the cards issueCards derives
// from the persisted accounts, all in a single transaction.
func (r *Repository) IssueAccounts(
	ctx context.Context,
	accounts []domain.Account,
	issueCards func([]domain.Account) ([]domain.CardInfo, error),
) ([]domain.Account, int64, error) {
	var (
		created []domain.Account
		cards   int64
	)
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = r.CreateAccounts(ctx, accounts)
		if err != nil {
			return err
		}
		infos, err := issueCards(created)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			return nil
		}
		cards, err = r.CreateCards(ctx, infos)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return created, cards, nil
}

// ListAccounts returns the accounts of the given types ordered by id. Only id, user_id and type are loaded.
func (r *Repository) ListAccounts(ctx context.Context, types ...domain.AccountType) ([]domain.Account, error) {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}

	query := `
		SELECT id, user_id, account_type
		FROM accounts
		WHERE account_type = ANY($1)
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, names)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, pg.WrapErr(err, "list accounts")
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		var accType string
		if err := rows.Scan(&acc.ID, &acc.UserID, &accType); err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, pg.WrapErr(err, "scan account")
		}
		acc.Type = domain.AccountType(accType)
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.WrapErr(err, "list accounts")
	}
	return accounts, nil
}

// ListCreditCardActivations returns every credit card holder once, with the calendar date of
// their earliest credit card activation. A holder with several cards therefore qualifies for
// a campaign as soon as any one card predates its start, even if a later card does not.
func (r *Repository) ListCreditCardActivations(ctx context.Context) ([]domain.Activation, error) {
	query := `
		SELECT user_id, MIN(activated_at)
		FROM accounts
		WHERE account_type = $1
		GROUP BY user_id
		ORDER BY user_id
	`
	rows, err := r.db.Query(ctx, query, string(domain.AccountCreditCard))
	if err != nil {
		zap.L().Error("can't list credit card activations", zap.Error(err))
		return nil, pg.WrapErr(err, "list activations")
	}
	defer rows.Close()

	var activations []domain.Activation
	for rows.Next() {
		var a domain.Activation
		if err := rows.Scan(&a.UserID, &a.ActivatedDate); err != nil {
			zap.L().Error("can't scan activation row", zap.Error(err))
			return nil, pg.WrapErr(err, "scan activation")
		}
		a.ActivatedDate = domain.DateOf(a.ActivatedDate)
		activations = append(activations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.WrapErr(err, "list activations")
	}
	return activations, nil
}

func (r *Repository) Counts(ctx context.Context) (map[domain.Entity]int64, error) {
	return pg.CountRows(ctx, r.db,
		domain.EntityUsers,
		domain.EntityDemographics,
		domain.EntityOnboarding,
		domain.EntityUserStatus,
		domain.EntityAccounts,
		domain.EntityCardInfo,
	)
}
