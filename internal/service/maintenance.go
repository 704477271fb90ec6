package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/nyfeval/internal/database"
)

// MaintenanceService houses destructive ops on the receipts ledger.
type MaintenanceService struct {
	DB *sql.DB
}

// Purge deletes every receipt. It keeps the schema intact.
func (s *MaintenanceService) Purge(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: %w", ErrNoLedger)
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		for _, t := range []string{"receipt_projects", "receipts"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("purge table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
