package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jask/nyfeval/internal/ballot"
	"github.com/jask/nyfeval/internal/money"
	"github.com/jask/nyfeval/internal/wizard"
)

//nolint:gochecknoglobals // Cobra boilerplate
var dryRun bool

//nolint:gochecknoglobals // Cobra boilerplate
var ballotCmd = &cobra.Command{
	Use:   "ballot <file.toml>",
	Short: "Score and submit a pre-filled ballot without the terminal form",
	Long: `Read ratings, funded projects, name and email from a TOML ballot and run them
through the same evaluation and selection rules as the interactive form.

Example ballot:

  name  = "Ada Lovelace"
  email = "ada@example.com"
  fund  = ["Veterans Memorial Park", "Streetscape", "Celebration Plaza", "Hojack"]

  [[projects]]
  title = "Veterans Memorial Park"
  [projects.ratings]
  "Level of Impact" = "High"
  ...`,
	Args: cobra.ExactArgs(1),
	RunE: runBallot,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(ballotCmd)
	ballotCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the scoreboard without submitting")
}

func runBallot(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()

	var env appEnv
	env, err = loadAppEnv()
	if err != nil {
		return err
	}
	log := env.stderrLogger()

	var b ballot.Ballot
	b, err = ballot.Load(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed loading ballot %s", args[0])
	}

	ctrl := wizard.New(env.catalog)
	if err = ballot.Run(ctrl, b); err != nil {
		return errors.Wrap(err, "ballot rejected")
	}
	log.Debug("ballot applied", "file", args[0], "funded", len(ctrl.SelectedIndexes()))

	out := cmd.OutOrStdout()
	if err = printScoreboard(out, ctrl, env.money); err != nil {
		return err
	}

	if dryRun {
		return nil
	}
	if !ctrl.CanSubmit() {
		return errors.New("ballot cannot be submitted: total must be in the funding window and name and email set")
	}

	db, err := env.openLedger()
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	sub, err := ctrl.Submit()
	if err != nil {
		return errors.Wrap(err, "submit failed")
	}
	conf, err := submissionService(db, log).Record(ctx, sub)
	if err != nil {
		return errors.Wrap(err, "failed recording receipt")
	}
	_, err = fmt.Fprintf(out, "\n%s Receipt %s\n", conf.Message, conf.ReceiptID)
	return err
}

func printScoreboard(out io.Writer, ctrl *wizard.Controller, fmtr money.Formatter) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FUND\tPROJECT\tREQUEST\tSCORE\tRANKING")
	scores := ctrl.Scores()
	for i, p := range ctrl.Catalog().Projects() {
		mark := "[ ]"
		if ctrl.Selected(i) {
			mark = "[x]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\n", mark, p.Title, fmtr.Format(p.Request), scores[i].Value, scores[i].Category)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	validity := "valid"
	if !ctrl.BudgetValid() {
		under, over := ctrl.Shortfall()
		switch {
		case under > 0:
			validity = "invalid, " + fmtr.Format(under) + " under the minimum"
		case over > 0:
			validity = "invalid, " + fmtr.Format(over) + " over the maximum"
		}
	}
	_, err := fmt.Fprintf(out, "\nTotal NY Forward Request: %s (%s)\n", fmtr.Format(ctrl.TotalRequested()), validity)
	return err
}
