package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nwainaina/fairway-crew/cmd/cli/commands"
	"github.com/nwainaina/fairway-crew/internal/config"
	"github.com/nwainaina/fairway-crew/pkg/core/affiliation"
	"github.com/nwainaina/fairway-crew/pkg/core/assignment"
	"github.com/nwainaina/fairway-crew/pkg/core/export"
	"github.com/nwainaina/fairway-crew/pkg/core/query"
	"github.com/nwainaina/fairway-crew/pkg/core/registration"
	"github.com/nwainaina/fairway-crew/pkg/core/teetime"
	"github.com/nwainaina/fairway-crew/pkg/db"
	"github.com/nwainaina/fairway-crew/pkg/memdb"
	"github.com/nwainaina/fairway-crew/pkg/postgres"
	"github.com/nwainaina/fairway-crew/pkg/utils/logging"
)

var (
	env      string
	inMemory bool
	app      *commands.AppContext
	pgDB     *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fairway-crew",
		Short: "Fairway Crew CLI - Manage tournament volunteers",
		Long:  `A CLI tool for querying, reviewing, and assigning golf tournament volunteers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if pgDB != nil {
				pgDB.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVar(&inMemory, "memory", false, "Use an in-memory store instead of Postgres")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.QueryCmd(appRef()))
	rootCmd.AddCommand(commands.AssignCmd(appRef()))
	rootCmd.AddCommand(commands.BulkAssignCmd(appRef()))
	rootCmd.AddCommand(commands.TeeTimesCmd(appRef()))
	rootCmd.AddCommand(commands.PresetsCmd(appRef()))
	rootCmd.AddCommand(commands.ExportCmd(appRef()))
	rootCmd.AddCommand(commands.RegisterCmd(appRef()))
	rootCmd.AddCommand(commands.ReviewCmd(appRef()))
	rootCmd.AddCommand(commands.StatsCmd(appRef()))
	rootCmd.AddCommand(commands.LocationsCmd(appRef()))
	rootCmd.AddCommand(commands.SupervisorsCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it before initApp
// fills it in so command constructors can capture the pointer
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, store, and services
func initApp() error {
	var err error
	appRef()
	app.Ctx = context.Background()
	app.Env = env

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Database, err = openDatabase()
	if err != nil {
		return err
	}

	app.Normalizer = affiliation.NewNormalizer(app.Cfg.AffiliateVariants)
	app.Engine = query.NewEngine(app.Database, app.Normalizer)
	app.Presets = query.NewPresetService(app.Database, app.Logger, query.DefaultSeedPresets())
	app.Assignments = assignment.NewService(app.Database, app.Database, app.Logger)
	app.TeeTimes = teetime.NewManager(app.Database, app.Logger)
	app.Registration = registration.NewService(app.Database, app.Database, app.Logger, []registration.Quota{
		{Role: db.RoleMarshal, Target: app.Cfg.Quotas.Marshals},
		{Role: db.RoleScorer, Target: app.Cfg.Quotas.Scorers},
	})
	app.Formatter = export.NewFormatter(app.Normalizer)

	app.Logger.Info("Application initialized")
	return nil
}

func openDatabase() (db.Database, error) {
	if inMemory {
		app.Logger.Info("Using in-memory store")
		return memdb.New(), nil
	}

	if app.Cfg.PostgresURL == "" {
		return nil, fmt.Errorf("postgresURL is not configured; set it in fairway_crew.yaml or pass --memory")
	}

	app.Logger.Info("Connecting to Postgres")
	pg, err := postgres.NewDB(app.Ctx, app.Cfg.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pg.RunMigrations(app.Ctx); err != nil {
		pg.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	pgDB = pg
	return pg, nil
}
