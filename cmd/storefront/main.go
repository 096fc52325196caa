package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/automationexercise/storefront-e2e/internal/browser"
	internalcli "github.com/automationexercise/storefront-e2e/internal/cli"
	"github.com/automationexercise/storefront-e2e/internal/config"
	"github.com/automationexercise/storefront-e2e/internal/database"
	"github.com/automationexercise/storefront-e2e/internal/fixtures"
	"github.com/automationexercise/storefront-e2e/internal/flows"
	"github.com/automationexercise/storefront-e2e/internal/logging"
	"github.com/automationexercise/storefront-e2e/internal/report"
	"github.com/automationexercise/storefront-e2e/internal/repository"
	"github.com/automationexercise/storefront-e2e/internal/services"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var version = "0.1.0"

// openHistory connects the run history store. It returns a nil service when
// no database is configured.
func openHistory(logger *zap.Logger) (services.HistoryService, func(), error) {
	pgConfig, err := config.LoadPostgresConfig(os.Getenv)
	if errors.Is(err, config.ErrHistoryDisabled) {
		logger.Info("run history disabled", zap.String("reason", err.Error()))
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load postgres config: %w", err)
	}

	if err := database.Connect(pgConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("connected to run history database", zap.String("host", pgConfig.Host))

	closeDB := loggedCloser(logger, "closing database", database.Close)
	if err := database.RunMigrations(logger); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return services.NewHistoryService(repository.NewRunRepository()), closeDB, nil
}

// loggedCloser wraps closeFn so a failure is logged as a warning
func loggedCloser(logger *zap.Logger, msg string, closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			logger.Warn(msg, zap.Error(err))
		}
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the Chromium build the suite drives",
		Action: func(c *cli.Context) error {
			return browser.Install()
		},
	}
}

// RunCommand returns the run command
func RunCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the e2e suite against BASE_URL",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "case",
				Aliases: []string{"c"},
				Usage:   "run only these case IDs (repeatable, e.g. --case TC1 --case TC9)",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "list the available cases and exit",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("list") {
				w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				for _, tc := range flows.Suite() {
					fmt.Fprintf(w, "%s\t%s\n", tc.ID, tc.Title)
				}
				return w.Flush()
			}

			cases := flows.Select(c.StringSlice("case")...)
			if len(cases) == 0 {
				return fmt.Errorf("%w: %v", internalcli.ErrNoCases, c.StringSlice("case"))
			}

			runnerConfig, err := config.LoadRunnerConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("invalid runner configuration: %w", err)
			}

			fx, err := fixtures.Load()
			if err != nil {
				return err
			}

			history, closeHistory, err := openHistory(logger)
			if err != nil {
				return err
			}
			defer closeHistory()

			session, err := browser.Launch(runnerConfig, logger)
			if err != nil {
				return err
			}
			defer loggedCloser(logger, "closing browser", session.Close)()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				// A second signal gets the default behavior and ends the process.
				<-ctx.Done()
				stop()
			}()

			_, err = internalcli.RunSuite(ctx, internalcli.RunDependencies{
				Config:   runnerConfig,
				Logger:   logger,
				Tabs:     internalcli.SessionTabs{Session: session},
				Fixtures: fx,
				Reports:  report.NewWriter(runnerConfig.ReportDir),
				History:  history,
			}, cases)
			return err
		},
	}
}

// HistoryCommand returns the history command
func HistoryCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recorded suite runs",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: services.DefaultListLimit,
				Usage: "number of runs to show",
			},
			&cli.StringFlag{
				Name:  "run",
				Usage: "show the cases of one run",
			},
		},
		Action: func(c *cli.Context) error {
			history, closeHistory, err := openHistory(logger)
			if err != nil {
				return err
			}
			defer closeHistory()
			if history == nil {
				return config.ErrHistoryDisabled
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			if id := c.String("run"); id != "" {
				run, err := history.GetRun(c.Context, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "CASE\tSTATUS\tDURATION\tERROR\n")
				for _, rc := range run.Cases {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rc.CaseID, rc.Status, rc.Duration, rc.Error)
				}
				return w.Flush()
			}

			runs, err := history.ListRuns(c.Context, c.Int("limit"))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "RUN\tSTATUS\tSTARTED\tDURATION\tREPORT\n")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					run.ID, run.Status, run.StartedAt.Format("2006-01-02 15:04:05"), run.Duration(), run.ReportPath)
			}
			return w.Flush()
		},
	}
}

// ServeCommand returns the serve command
func ServeCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the JSON reports and the run history API",
		Action: func(c *cli.Context) error {
			history, closeHistory, err := openHistory(logger)
			if err != nil {
				return err
			}
			defer closeHistory()

			deps, err := internalcli.NewServerDependencies(config.LoadServerConfig(os.Getenv), history, logger)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	logger, err := logging.New(config.LoadLogConfig(os.Getenv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Debug(".env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "storefront",
		Usage:   "End-to-end UI suite for the automationexercise.com shop",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			RunCommand(logger),
			HistoryCommand(logger),
			ServeCommand(logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
