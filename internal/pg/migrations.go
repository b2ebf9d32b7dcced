package pg

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/GlebRadaev/finseed/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Migration directories inside the embedded FS, one per store.
const (
	IdentitySchema  = "identity"
	LedgerSchema    = "ledger"
	CampaignsSchema = "campaigns"
)

// RunMigrations applies the schema directory dir to pool. Each store keeps its own goose version table.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	fsys, err := fs.Sub(migrations.Migrations, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations %s: %w", dir, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	zap.L().Debug("migrations applied", zap.String("schema", dir), zap.Int("count", len(results)))
	return nil
}
