package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/nyfeval/internal/database"
)

func setupReceiptRepo(t *testing.T) (*ReceiptRepo, context.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "receipts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewReceiptRepo(db), ctx
}

func TestReceiptInsertGetList(t *testing.T) {
	t.Parallel()
	repo, ctx := setupReceiptRepo(t)

	first := Receipt{
		ID:             "r-1",
		SubmitterName:  "Ada",
		SubmitterEmail: "ada@example.com",
		TotalRequest:   6177000,
		BudgetValid:    true,
		CreatedAt:      time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		Projects: []ReceiptProject{
			{ProjectIndex: 4, Title: "Hojack", Request: 2052000, Category: "High"},
			{ProjectIndex: 0, Title: "Veterans", Request: 1700000, Category: "Medium"},
		},
	}
	second := Receipt{
		ID:             "r-2",
		SubmitterName:  "Grace",
		SubmitterEmail: "grace@example.com",
		TotalRequest:   7000000,
		BudgetValid:    true,
		CreatedAt:      time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	got, err := repo.Get(ctx, "r-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Ada", got.SubmitterName)
	require.True(t, got.BudgetValid)
	require.True(t, first.CreatedAt.Equal(got.CreatedAt))
	require.Len(t, got.Projects, 2)
	require.Equal(t, 0, got.Projects[0].ProjectIndex, "projects ordered by index")

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "r-2", list[0].ID, "newest first")
	require.Empty(t, list[0].Projects)
	require.Len(t, list[1].Projects, 2)
}

func TestReceiptInsertIsAtomic(t *testing.T) {
	t.Parallel()
	repo, ctx := setupReceiptRepo(t)

	dup := Receipt{
		ID:            "r-dup",
		SubmitterName: "Ada",
		CreatedAt:     time.Now().UTC(),
		Projects: []ReceiptProject{
			{ProjectIndex: 1, Title: "A", Request: 1},
			{ProjectIndex: 1, Title: "B", Request: 2},
		},
	}
	require.Error(t, repo.Insert(ctx, dup))

	got, err := repo.Get(ctx, "r-dup")
	require.NoError(t, err)
	require.Nil(t, got, "failed insert leaves nothing behind")
}
