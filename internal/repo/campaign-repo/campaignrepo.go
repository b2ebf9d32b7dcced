package campaignrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/internal/pg"
)

var assignmentColumns = []string{"user_id", "campaign_id", "merchant_list", "start_date", "end_date"}

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
		TRUNCATE TABLE user_campaigns, campaigns
		RESTART IDENTITY CASCADE
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		zap.L().Error("failed to truncate campaigns store", zap.Error(err))
		return pg.WrapErr(err, "truncate campaigns store")
	}
	return nil
}

// SaveCampaign inserts the campaign and copies its assignments in one transaction.
// The new campaign id is written into every assignment.
func (r *Repository) SaveCampaign(ctx context.Context, campaign domain.Campaign, assignments []domain.UserCampaign) (int, error) {
	var campaignID int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, `
			INSERT INTO campaigns (name, goal, cashback_percentage, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, campaign.Name, campaign.Goal, campaign.CashbackPercentage, campaign.StartDate, campaign.EndDate)
		if err := row.Scan(&campaignID); err != nil {
			return pg.WrapErr(err, "insert %s", campaign.Name)
		}

		if len(assignments) == 0 {
			return nil
		}

		rows := make([][]any, 0, len(assignments))
		for i := range assignments {
			assignments[i].CampaignID = campaignID
			a := assignments[i]
			rows = append(rows, []any{a.UserID, a.CampaignID, a.MerchantList, a.StartDate, a.EndDate})
		}
		if _, err := r.db.CopyFrom(ctx, pgx.Identifier{"user_campaigns"}, assignmentColumns, pgx.CopyFromRows(rows)); err != nil {
			return pg.WrapErr(err, "copy assignments of %s", campaign.Name)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't save campaign", zap.String("campaign", campaign.Name), zap.Error(err))
		return 0, err
	}
	return campaignID, nil
}

func (r *Repository) AssignmentsByCampaign(ctx context.Context, campaignID int) ([]domain.UserCampaign, error) {
	query := `
		SELECT user_id, campaign_id, merchant_list, start_date, end_date
		FROM user_campaigns
		WHERE campaign_id = $1
		ORDER BY user_id
	`
	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		zap.L().Error("can't get assignments", zap.Error(err))
		return nil, pg.WrapErr(err, "select assignments of campaign %d", campaignID)
	}
	defer rows.Close()

	var assignments []domain.UserCampaign
	for rows.Next() {
		var a domain.UserCampaign
		if err := rows.Scan(&a.UserID, &a.CampaignID, &a.MerchantList, &a.StartDate, &a.EndDate); err != nil {
			zap.L().Error("can't scan assignment row", zap.Error(err))
			return nil, pg.WrapErr(err, "scan assignment")
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.WrapErr(err, "select assignments of campaign %d", campaignID)
	}
	return assignments, nil
}

func (r *Repository) Counts(ctx context.Context) (map[domain.Entity]int64, error) {
	return pg.CountRows(ctx, r.db, domain.EntityCampaigns, domain.EntityUserCampaigns)
}
