package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/nyfeval/internal/catalog"
	"github.com/jask/nyfeval/internal/money"
	"github.com/jask/nyfeval/internal/selection"
)

//nolint:gochecknoglobals // Cobra boilerplate
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the candidate projects and the scoring rubric",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) (err error) {
	var env appEnv
	env, err = loadAppEnv()
	if err != nil {
		return err
	}
	return printCatalog(cmd.OutOrStdout(), env.catalog, env.money)
}

func printCatalog(out io.Writer, cat *catalog.Catalog, fmtr money.Formatter) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPROJECT\tREQUEST")
	for i, p := range cat.Projects() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, p.Title, fmtr.Format(p.Request))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CRITERION\tWEIGHT\t")
	for _, c := range cat.Criteria() {
		fmt.Fprintf(w, "%s\t%.1f\t\n", c.Name, c.Weight)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\nFund between %s and %s in total.\n", fmtr.Format(selection.MinBudget), fmtr.Format(selection.MaxBudget))
	return err
}
