package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/nyfeval/internal/catalog"
	"github.com/jask/nyfeval/internal/database/repository"
	"github.com/jask/nyfeval/internal/evaluation"
	"github.com/jask/nyfeval/internal/money"
	"github.com/jask/nyfeval/internal/wizard"
)

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, catalog.Default(), money.Default()))
	out := buf.String()
	require.Contains(t, out, "Create a Hojack Trail Gateway and Enhance the Trail")
	require.Contains(t, out, "$2,052,000")
	require.Contains(t, out, "Promoting Sustainability")
	require.Contains(t, out, "Fund between $6,000,000 and $8,000,000 in total.")
}

func TestPrintScoreboard(t *testing.T) {
	ctrl := wizard.New(catalog.Default())
	for ctrl.Phase() == wizard.PhaseEvaluating {
		for _, c := range catalog.Criteria() {
			require.NoError(t, ctrl.Rate(c.ID, evaluation.High))
		}
		require.NoError(t, ctrl.Advance())
	}
	require.NoError(t, ctrl.Toggle(0))

	var buf bytes.Buffer
	require.NoError(t, printScoreboard(&buf, ctrl, money.Default()))
	out := buf.String()
	require.Contains(t, out, "[x]")
	require.Contains(t, out, "15.0")
	require.Contains(t, out, "High")
	require.Contains(t, out, "Total NY Forward Request: $1,700,000 (invalid, $4,300,000 under the minimum)")

	for _, i := range []int{1, 2, 4} {
		require.NoError(t, ctrl.Toggle(i))
	}
	buf.Reset()
	require.NoError(t, printScoreboard(&buf, ctrl, money.Default()))
	require.Contains(t, buf.String(), "$6,177,000 (valid)")
}

func TestPrintReceipts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReceipts(&buf, nil, money.Default()))
	require.Equal(t, "No submissions recorded.\n", buf.String())

	buf.Reset()
	list := []repository.Receipt{{
		ID:             "abc-123",
		SubmitterName:  "Ada",
		SubmitterEmail: "ada@example.com",
		TotalRequest:   6_177_000,
		CreatedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Projects:       make([]repository.ReceiptProject, 4),
	}}
	require.NoError(t, printReceipts(&buf, list, money.Default()))
	require.Contains(t, buf.String(), "Ada")
	require.Contains(t, buf.String(), "$6,177,000")
	require.Contains(t, buf.String(), "abc-123")
}

func TestPrintReceipt(t *testing.T) {
	var buf bytes.Buffer
	rc := repository.Receipt{
		ID:             "abc-123",
		SubmitterName:  "Ada",
		SubmitterEmail: "ada@example.com",
		TotalRequest:   3_752_000,
		CreatedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Projects: []repository.ReceiptProject{
			{ProjectIndex: 0, Title: "Veterans Memorial Park", Request: 1_700_000, Category: "High"},
			{ProjectIndex: 1, Title: "Hojack Trail Gateway", Request: 2_052_000, Category: "Medium"},
		},
	}
	require.NoError(t, printReceipt(&buf, rc, money.Default()))
	out := buf.String()
	require.Contains(t, out, "Receipt abc-123")
	require.Contains(t, out, "Ada <ada@example.com>")
	require.Contains(t, out, "Veterans Memorial Park")
	require.Contains(t, out, "$2,052,000")
	require.Contains(t, out, "Medium")
	require.Contains(t, out, "Total: $3,752,000")
}
