package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jask/nyfeval/internal/database/repository"
	"github.com/jask/nyfeval/internal/selection"
	"github.com/jask/nyfeval/internal/wizard"
)

var ErrNoLedger = errors.New("receipts ledger not configured")

var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptStore is the persistence the submission service needs.
type ReceiptStore interface {
	Insert(ctx context.Context, rc repository.Receipt) error
	Get(ctx context.Context, id string) (*repository.Receipt, error)
	List(ctx context.Context) ([]repository.Receipt, error)
}

// SubmissionService handles a finalized session. Without a store it only confirms.
type SubmissionService struct {
	Receipts ReceiptStore
	Log      *slog.Logger
}

// Confirmation is what the UI shows after a submit.
type Confirmation struct {
	ReceiptID string
	Recorded  bool
	Message   string
}

// Record stores the submission when a ledger is configured.
func (s *SubmissionService) Record(ctx context.Context, sub wizard.Submission) (Confirmation, error) {
	conf := Confirmation{ReceiptID: sub.ID, Message: "Submission successful!"}
	log := s.logger()
	if s.Receipts == nil {
		log.Info("submission confirmed", "id", sub.ID, "total", sub.Total, "funded", len(sub.Funded))
		return conf, nil
	}
	if err := s.Receipts.Insert(ctx, ToReceipt(sub)); err != nil {
		log.Error("failed to record submission", "id", sub.ID, "error", err)
		return Confirmation{}, fmt.Errorf("record submission %s: %w", sub.ID, err)
	}
	conf.Recorded = true
	log.Info("submission recorded", "id", sub.ID, "total", sub.Total, "funded", len(sub.Funded))
	return conf, nil
}

// List returns recorded receipts, newest first.
func (s *SubmissionService) List(ctx context.Context) ([]repository.Receipt, error) {
	if s.Receipts == nil {
		return nil, ErrNoLedger
	}
	return s.Receipts.List(ctx)
}

// Get returns one recorded receipt with its funded projects.
func (s *SubmissionService) Get(ctx context.Context, id string) (repository.Receipt, error) {
	if s.Receipts == nil {
		return repository.Receipt{}, ErrNoLedger
	}
	rc, err := s.Receipts.Get(ctx, id)
	if err != nil {
		return repository.Receipt{}, err
	}
	if rc == nil {
		return repository.Receipt{}, fmt.Errorf("%w: %s", ErrReceiptNotFound, id)
	}
	return *rc, nil
}

// ToReceipt flattens a submission into its ledger row.
func ToReceipt(sub wizard.Submission) repository.Receipt {
	rc := repository.Receipt{
		ID:             sub.ID,
		SubmitterName:  sub.Submitter.Name,
		SubmitterEmail: sub.Submitter.Email,
		TotalRequest:   sub.Total,
		BudgetValid:    selection.InWindow(sub.Total),
		CreatedAt:      sub.CreatedAt,
	}
	for _, p := range sub.Funded {
		rc.Projects = append(rc.Projects, repository.ReceiptProject{
			ProjectIndex: p.Index,
			Title:        p.Title,
			Request:      p.Request,
			Category:     string(p.Category),
		})
	}
	return rc
}

func (s *SubmissionService) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}
