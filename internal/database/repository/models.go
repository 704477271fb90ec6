package repository

import "time"

// Receipt represents a receipts row with its funded projects.
type Receipt struct {
	ID             string
	SubmitterName  string
	SubmitterEmail string
	TotalRequest   int64
	BudgetValid    bool
	CreatedAt      time.Time
	Projects       []ReceiptProject
}

// ReceiptProject represents a receipt_projects row.
type ReceiptProject struct {
	ProjectIndex int
	Title        string
	Request      int64
	Category     string
}
