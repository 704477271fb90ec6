package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenMigratedIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "receipts.db")

	db, err := OpenMigrated(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenMigrated(path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('receipts','receipt_projects')`).Scan(&n))
	require.Equal(t, 2, n)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, err := OpenMigrated(filepath.Join(t.TempDir(), "receipts.db"))
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	err = WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO receipts(id, submitter_name, submitter_email, total_request) VALUES ('r', 'a', 'b', 1)`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM receipts`).Scan(&n))
	require.Zero(t, n)
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := OpenMigrated(filepath.Join(t.TempDir(), "receipts.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO receipt_projects(receipt_id, project_index, title, request) VALUES ('missing', 0, 't', 1)`)
	require.Error(t, err)
}
