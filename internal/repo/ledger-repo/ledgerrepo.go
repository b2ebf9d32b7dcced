package ledgerrepo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/finseed/internal/domain"
	"github.com/GlebRadaev/finseed/internal/pg"
)

var ErrUnknownChannel = errors.New("unknown purchase channel")

var purchaseTables = map[domain.OperationType]string{
	domain.OperationMastercard: string(domain.EntityMastercard),
	domain.OperationPaypal:     string(domain.EntityPaypal),
}

// Branch order is part of the view contract: card, wallet, transfer-send, transfer-receive.
const createOperationsView = `
	CREATE VIEW operations AS
	SELECT row_number() OVER () AS id, user_id, amount, transaction_type, line_id, timestamp
	FROM (
		SELECT user_id, amount, 'mastercard' AS transaction_type, id AS line_id, timestamp
		FROM transactions_mastercard
		UNION ALL
		SELECT user_id, amount, 'paypal' AS transaction_type, id AS line_id, timestamp
		FROM transactions_paypal
		UNION ALL
		SELECT sender_id AS user_id, -amount AS amount, 'internal_send' AS transaction_type, id AS line_id, timestamp
		FROM transactions_internal
		UNION ALL
		SELECT receiver_id AS user_id, amount, 'internal_receive' AS transaction_type, id AS line_id, timestamp
		FROM transactions_internal
	) t
`

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
		TRUNCATE TABLE transactions_mastercard, transactions_paypal, transactions_internal
		RESTART IDENTITY
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		zap.L().Error("failed to truncate ledger store", zap.Error(err))
		return pg.WrapErr(err, "truncate ledger store")
	}
	return nil
}

// CreatePurchases stores purchases of one channel in a single transaction and returns them with ids.
func (r *Repository) CreatePurchases(ctx context.Context, channel domain.OperationType, purchases []domain.Purchase) ([]domain.Purchase, error) {
	table, ok := purchaseTables[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, amount, merchant, account_type, timestamp, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, table)

	created := make([]domain.Purchase, 0, len(purchases))
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, p := range purchases {
			row := r.db.QueryRow(ctx, query, p.UserID, p.Amount, p.Merchant, string(p.AccountType), p.Timestamp, p.Status)
			if err := row.Scan(&p.ID); err != nil {
				return pg.WrapErr(err, "insert into %s", table)
			}
			created = append(created, p)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't save purchases", zap.String("table", table), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) CreateTransfers(ctx context.Context, transfers []domain.InternalTransfer) ([]domain.InternalTransfer, error) {
	query := `
		INSERT INTO transactions_internal (sender_id, receiver_id, amount, account_type, timestamp, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	created := make([]domain.InternalTransfer, 0, len(transfers))
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, tr := range transfers {
			row := r.db.QueryRow(ctx, query, tr.SenderID, tr.ReceiverID, tr.Amount, string(tr.AccountType), tr.Timestamp, tr.Status)
			if err := row.Scan(&tr.ID); err != nil {
				return pg.WrapErr(err, "insert internal transfer %d->%d", tr.SenderID, tr.ReceiverID)
			}
			created = append(created, tr)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't save internal transfers", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// RebuildOperationsView drops and recreates the operations view, so repeated runs keep a single definition.
func (r *Repository) RebuildOperationsView(ctx context.Context) error {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `DROP VIEW IF EXISTS operations`); err != nil {
			return pg.WrapErr(err, "drop operations view")
		}
		if _, err := r.db.Exec(ctx, createOperationsView); err != nil {
			return pg.WrapErr(err, "create operations view")
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to rebuild operations view", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountOperations(ctx context.Context) (int64, error) {
	counts, err := pg.CountRows(ctx, r.db, domain.EntityOperations)
	if err != nil {
		zap.L().Error("can't count operations", zap.Error(err))
		return 0, err
	}
	return counts[domain.EntityOperations], nil
}

func (r *Repository) OperationsByUser(ctx context.Context, userID int) ([]domain.Operation, error) {
	query := `
		SELECT id, user_id, amount, transaction_type, line_id, timestamp
		FROM operations
		WHERE user_id = $1
		ORDER BY timestamp DESC, id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get operations", zap.Error(err))
		return nil, pg.WrapErr(err, "select operations for user %d", userID)
	}
	defer rows.Close()

	var operations []domain.Operation
	for rows.Next() {
		var op domain.Operation
		var opType string
		if err := rows.Scan(&op.ID, &op.UserID, &op.Amount, &opType, &op.LineID, &op.Timestamp); err != nil {
			zap.L().Error("can't scan operation row", zap.Error(err))
			return nil, pg.WrapErr(err, "scan operation")
		}
		op.TransactionType = domain.OperationType(opType)
		operations = append(operations, op)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.WrapErr(err, "select operations for user %d", userID)
	}
	return operations, nil
}

func (r *Repository) Counts(ctx context.Context) (map[domain.Entity]int64, error) {
	return pg.CountRows(ctx, r.db,
		domain.EntityMastercard,
		domain.EntityPaypal,
		domain.EntityInternal,
		domain.EntityOperations,
	)
}
