package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// ReceiptRepo handles submission receipts.
type ReceiptRepo struct {
	db *sql.DB
}

func NewReceiptRepo(db *sql.DB) *ReceiptRepo { return &ReceiptRepo{db: db} }

// Insert stores the receipt and its projects atomically.
func (r *ReceiptRepo) Insert(ctx context.Context, rc Receipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO receipts(id, submitter_name, submitter_email, total_request, budget_valid, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`,
		rc.ID, rc.SubmitterName, rc.SubmitterEmail, rc.TotalRequest, rc.BudgetValid, rc.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	for _, p := range rc.Projects {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO receipt_projects(receipt_id, project_index, title, request, category)
		VALUES (?, ?, ?, ?, ?)`,
			rc.ID, p.ProjectIndex, p.Title, p.Request, p.Category); err != nil {
			return fmt.Errorf("insert receipt project %d: %w", p.ProjectIndex, err)
		}
	}
	return tx.Commit()
}

// Get loads one receipt. A missing id returns (nil, nil).
func (r *ReceiptRepo) Get(ctx context.Context, id string) (*Receipt, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, submitter_name, submitter_email, total_request, budget_valid, created_at
	FROM receipts WHERE id = ?`, id)
	var rc Receipt
	if err := row.Scan(&rc.ID, &rc.SubmitterName, &rc.SubmitterEmail, &rc.TotalRequest, &rc.BudgetValid, &rc.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	projects, err := r.projects(ctx, rc.ID)
	if err != nil {
		return nil, err
	}
	rc.Projects = projects
	return &rc, nil
}

// List returns receipts newest first, with their projects.
func (r *ReceiptRepo) List(ctx context.Context) ([]Receipt, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, submitter_name, submitter_email, total_request, budget_valid, created_at
	FROM receipts ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Receipt
	for rows.Next() {
		var rc Receipt
		if err := rows.Scan(&rc.ID, &rc.SubmitterName, &rc.SubmitterEmail, &rc.TotalRequest, &rc.BudgetValid, &rc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	for i := range out {
		projects, err := r.projects(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Projects = projects
	}
	return out, nil
}

func (r *ReceiptRepo) projects(ctx context.Context, receiptID string) ([]ReceiptProject, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT project_index, title, request, category
	FROM receipt_projects WHERE receipt_id = ? ORDER BY project_index`, receiptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ReceiptProject
	for rows.Next() {
		var p ReceiptProject
		if err := rows.Scan(&p.ProjectIndex, &p.Title, &p.Request, &p.Category); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
