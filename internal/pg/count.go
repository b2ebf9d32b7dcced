package pg

import (
	"context"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CountRows returns COUNT(*) for each table or view.
func CountRows(ctx context.Context, db Database, entities ...domain.Entity) (map[domain.Entity]int64, error) {
	counts := make(map[domain.Entity]int64, len(entities))
	for _, e := range entities {
		var n int64
		query := "SELECT COUNT(*) FROM " + pgx.Identifier{string(e)}.Sanitize()
		if err := db.QueryRow(ctx, query).Scan(&n); err != nil {
			return nil, WrapErr(err, "count %s", e)
		}
		counts[e] = n
	}
	return counts, nil
}
