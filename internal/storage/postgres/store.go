package postgres

import (
	"context"
	"database/sql"

	interfaces "github.com/sheikh-saqib/concurrent-bank-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

// AuditStore persists the outcome trail in Postgres. Expected schema:
//
//	CREATE TABLE audit_entries (
//	    id             TEXT PRIMARY KEY,
//	    transaction_id TEXT NOT NULL,
//	    action         TEXT NOT NULL,
//	    amount         NUMERIC NOT NULL,
//	    source_account TEXT NOT NULL,
//	    target_account TEXT,
//	    success        BOOLEAN NOT NULL,
//	    reason         TEXT NOT NULL,
//	    created_at     TIMESTAMPTZ NOT NULL
//	);
type AuditStore struct {
	db *sql.DB
}

func NewAuditStore(db *sql.DB) *AuditStore {
	return &AuditStore{
		db: db,
	}
}

func (s *AuditStore) SaveEntry(ctx context.Context, entry models.AuditEntry) error {
	const query = `INSERT INTO audit_entries (id, transaction_id, action, amount, source_account, target_account, success, reason, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.TransactionID,
		string(entry.Action),
		entry.Amount,
		entry.SourceAccountID,
		entry.TargetAccountID,
		entry.Success,
		entry.Reason,
		entry.CreatedAt,
	)
	return err
}

func (s *AuditStore) Entries() ([]models.AuditEntry, error) {
	const query = `SELECT id, transaction_id, action, amount, source_account, target_account, success, reason, created_at
	FROM audit_entries`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (s *AuditStore) EntriesByAccount(accountID string) ([]models.AuditEntry, error) {
	const query = `SELECT id, transaction_id, action, amount, source_account, target_account, success, reason, created_at
	FROM audit_entries
	WHERE source_account = $1 OR target_account = $1`

	rows, err := s.db.Query(query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	for rows.Next() {
		var entry models.AuditEntry
		var action string
		err := rows.Scan(
			&entry.ID,
			&entry.TransactionID,
			&action,
			&entry.Amount,
			&entry.SourceAccountID,
			&entry.TargetAccountID,
			&entry.Success,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entry.Action = models.ActionType(action)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

var _ interfaces.AuditStore = (*AuditStore)(nil)
