package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jask/nyfeval/internal/database/repository"
	"github.com/jask/nyfeval/internal/money"
	"github.com/jask/nyfeval/internal/service"
)

//nolint:gochecknoglobals // Cobra boilerplate
var purge bool

//nolint:gochecknoglobals // Cobra boilerplate
var receiptsCmd = &cobra.Command{
	Use:   "receipts [id]",
	Short: "List recorded submissions",
	Long: `List the submissions saved in the receipts ledger, newest first.
With a receipt id, show that submission and its funded projects.

The ledger is only written when receipts.path is set in the config file
(or NYFEVAL_RECEIPTS_PATH in the environment).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReceipts,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(receiptsCmd)
	receiptsCmd.Flags().BoolVar(&purge, "purge", false, "Delete every recorded receipt")
}

func runReceipts(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()

	var env appEnv
	env, err = loadAppEnv()
	if err != nil {
		return err
	}
	log := env.stderrLogger()

	db, err := env.openLedger()
	if err != nil {
		return err
	}
	if db == nil {
		return errors.Wrap(service.ErrNoLedger, "set receipts.path to record submissions")
	}
	defer db.Close()

	if purge {
		m := &service.MaintenanceService{DB: db}
		if err = m.Purge(ctx); err != nil {
			return errors.Wrap(err, "purge failed")
		}
		log.Info("receipts purged", "path", env.cfg.Receipts.Path)
		return nil
	}

	svc := submissionService(db, log)
	if len(args) == 1 {
		var rc repository.Receipt
		rc, err = svc.Get(ctx, args[0])
		if err != nil {
			return errors.Wrap(err, "failed loading receipt")
		}
		return printReceipt(cmd.OutOrStdout(), rc, env.money)
	}

	var list []repository.Receipt
	list, err = svc.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed listing receipts")
	}
	return printReceipts(cmd.OutOrStdout(), list, env.money)
}

func printReceipts(out io.Writer, list []repository.Receipt, fmtr money.Formatter) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "No submissions recorded.")
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tNAME\tEMAIL\tTOTAL\tPROJECTS\tID")
	for _, rc := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			rc.CreatedAt.Local().Format("2006-01-02 15:04"),
			rc.SubmitterName, rc.SubmitterEmail,
			fmtr.Format(rc.TotalRequest), len(rc.Projects), rc.ID)
	}
	return w.Flush()
}

func printReceipt(out io.Writer, rc repository.Receipt, fmtr money.Formatter) error {
	fmt.Fprintf(out, "Receipt %s\n", rc.ID)
	fmt.Fprintf(out, "Submitted by %s <%s> on %s\n", rc.SubmitterName, rc.SubmitterEmail,
		rc.CreatedAt.Local().Format("2006-01-02 15:04"))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\n#\tPROJECT\tREQUEST\tRANKING")
	for _, p := range rc.Projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ProjectIndex+1, p.Title, fmtr.Format(p.Request), p.Category)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\nTotal: %s\n", fmtr.Format(rc.TotalRequest))
	return err
}
