package service

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/nyfeval/internal/catalog"
	"github.com/jask/nyfeval/internal/database"
	"github.com/jask/nyfeval/internal/database/repository"
	"github.com/jask/nyfeval/internal/evaluation"
	"github.com/jask/nyfeval/internal/logging"
	"github.com/jask/nyfeval/internal/wizard"
)

func submittedSession(t *testing.T) wizard.Submission {
	t.Helper()
	c := wizard.New(catalog.Default())
	for i := 0; i < c.Catalog().ProjectCount(); i++ {
		for _, crit := range catalog.Criteria() {
			require.NoError(t, c.Rate(crit.ID, evaluation.High))
		}
		require.NoError(t, c.Advance())
	}
	for _, i := range []int{0, 1, 2, 4} {
		require.NoError(t, c.Toggle(i))
	}
	c.SetName("Ada")
	c.SetEmail("ada@example.com")
	sub, err := c.Submit()
	require.NoError(t, err)
	return sub
}

func setupLedger(t *testing.T) (*SubmissionService, *MaintenanceService, context.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := &SubmissionService{Receipts: repository.NewReceiptRepo(db), Log: logging.Discard()}
	return svc, &MaintenanceService{DB: db}, ctx
}

func TestRecordWithoutLedger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	svc := &SubmissionService{Log: logging.New(&buf, "info")}
	sub := submittedSession(t)

	conf, err := svc.Record(context.Background(), sub)
	require.NoError(t, err)
	require.False(t, conf.Recorded)
	require.Equal(t, sub.ID, conf.ReceiptID)
	require.Equal(t, "Submission successful!", conf.Message)
	require.Contains(t, buf.String(), "submission confirmed")

	_, err = svc.List(context.Background())
	require.ErrorIs(t, err, ErrNoLedger)
	_, err = svc.Get(context.Background(), sub.ID)
	require.ErrorIs(t, err, ErrNoLedger)
}

func TestRecordAndListReceipts(t *testing.T) {
	t.Parallel()
	svc, maint, ctx := setupLedger(t)
	sub := submittedSession(t)

	conf, err := svc.Record(ctx, sub)
	require.NoError(t, err)
	require.True(t, conf.Recorded)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	rc := list[0]
	require.Equal(t, sub.ID, rc.ID)
	require.Equal(t, int64(6_177_000), rc.TotalRequest)
	require.True(t, rc.BudgetValid)
	require.Len(t, rc.Projects, 4)
	require.Equal(t, "High", rc.Projects[0].Category)

	got, err := svc.Get(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, rc, got)
	_, err = svc.Get(ctx, "no-such-receipt")
	require.ErrorIs(t, err, ErrReceiptNotFound)

	_, err = svc.Record(ctx, sub)
	require.Error(t, err, "duplicate receipt id")

	require.NoError(t, maint.Purge(ctx))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

type failingStore struct{}

func (failingStore) Insert(context.Context, repository.Receipt) error { return errors.New("disk full") }
func (failingStore) Get(context.Context, string) (*repository.Receipt, error) {
	return nil, errors.New("disk full")
}
func (failingStore) List(context.Context) ([]repository.Receipt, error) {
	return nil, nil
}

func TestRecordStoreFailure(t *testing.T) {
	t.Parallel()
	svc := &SubmissionService{Receipts: failingStore{}, Log: logging.Discard()}
	_, err := svc.Record(context.Background(), submittedSession(t))
	require.ErrorContains(t, err, "disk full")
}

func TestPurgeWithoutDB(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, (&MaintenanceService{}).Purge(context.Background()), ErrNoLedger)
}

func TestToReceipt(t *testing.T) {
	t.Parallel()
	sub := submittedSession(t)
	rc := ToReceipt(sub)
	require.Equal(t, sub.Submitter.Email, rc.SubmitterEmail)
	require.Equal(t, []int{0, 1, 2, 4}, []int{
		rc.Projects[0].ProjectIndex, rc.Projects[1].ProjectIndex,
		rc.Projects[2].ProjectIndex, rc.Projects[3].ProjectIndex,
	})
}
