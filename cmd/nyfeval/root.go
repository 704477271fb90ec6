package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jask/nyfeval/internal/catalog"
	"github.com/jask/nyfeval/internal/config"
	"github.com/jask/nyfeval/internal/database"
	"github.com/jask/nyfeval/internal/database/repository"
	"github.com/jask/nyfeval/internal/logging"
	"github.com/jask/nyfeval/internal/money"
	"github.com/jask/nyfeval/internal/service"
	"github.com/jask/nyfeval/internal/tui"
	"github.com/jask/nyfeval/internal/wizard"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "nyfeval",
	Short: "Evaluate and select NY Forward projects",
	Long: `nyfeval walks you through rating each NY Forward candidate project against
the weighted rubric, then choosing which projects to fund within the
$6,000,000 to $8,000,000 window.

Run without a subcommand for the interactive terminal form.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.config/nyfeval/config.toml)")
}

// appEnv is what every command needs after config is loaded.
type appEnv struct {
	cfg     config.Config
	catalog *catalog.Catalog
	money   money.Formatter
}

func loadAppEnv() (env appEnv, err error) {
	env.cfg, err = config.Load(configFile)
	if err != nil {
		err = errors.Wrap(err, "failed loading config")
		return env, err
	}
	env.catalog, err = env.cfg.BuildCatalog()
	if err != nil {
		err = errors.Wrap(err, "invalid project catalog")
		return env, err
	}
	env.money = money.NewFormatter(env.cfg.UI.CurrencySymbol, env.cfg.UI.Locale)
	return env, err
}

func (env appEnv) logLevel() string {
	if verbose {
		return "debug"
	}
	return env.cfg.Log.Level
}

// stderrLogger is used by the non-interactive commands.
func (env appEnv) stderrLogger() *slog.Logger {
	return logging.New(os.Stderr, env.logLevel())
}

// openLedger returns nil, nil when no receipts path is configured.
func (env appEnv) openLedger() (*sql.DB, error) {
	if env.cfg.Receipts.Path == "" {
		return nil, nil
	}
	db, err := database.OpenMigrated(env.cfg.Receipts.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed opening receipts ledger %s", env.cfg.Receipts.Path)
	}
	return db, nil
}

func submissionService(db *sql.DB, log *slog.Logger) *service.SubmissionService {
	svc := &service.SubmissionService{Log: log}
	if db != nil {
		svc.Receipts = repository.NewReceiptRepo(db)
	}
	return svc
}

func runTUI(_ *cobra.Command, _ []string) (err error) {
	ctx := context.Background()

	var env appEnv
	env, err = loadAppEnv()
	if err != nil {
		return err
	}

	log, closeLog, err := logging.OpenFile(env.cfg.Log.Path, env.logLevel())
	if err != nil {
		return errors.Wrap(err, "failed opening log file")
	}
	defer func() { _ = closeLog() }()

	db, err := env.openLedger()
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	log.Info("starting", "projects", env.catalog.ProjectCount(), "ledger", env.cfg.Receipts.Path != "", "locale", env.cfg.UI.Locale)

	app := tui.New(ctx, wizard.New(env.catalog),
		tui.Services{Submissions: submissionService(db, log)},
		env.money, log,
	)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return errors.Wrap(err, "terminal ui failed")
	}
	return nil
}
