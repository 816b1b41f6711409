package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"worktime/internal/api"
	"worktime/internal/config"
	"worktime/internal/logging"
	"worktime/internal/validation"
)

// APIFactory opens storage for cfg and returns the API together with a
// function releasing it
type APIFactory func(cfg *config.Config, logger *zap.Logger) (api.BusinessAPI, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	factory    APIFactory
	config     *config.Config
	logger     *zap.Logger
	app        *App
	closeAPI   func() error
	appOptions []func(*App)
}

// NewRootCommand creates the root cobra command with global flags. The
// options are applied to the App once it is built, e.g. to capture output.
func NewRootCommand(factory APIFactory, appOptions ...func(*App)) *RootCommand {
	root := &RootCommand{
		factory:    factory,
		appOptions: appOptions,
	}

	root.cmd = &cobra.Command{
		Use:   "wt",
		Short: "A command-line work time and pay tracker",
		Long: `Work Time (wt) records daily work slots, computes worked hours and pay,
and aggregates records into monthly totals and reports.

EXAMPLES:
  wt add --date 2024-03-01 --slot 09:00-12:00 --slot 13:00-17:00 --breaks 1
  wt calc --slot 09:00-12:00 --rate 20          # Calculate without saving
  wt entry                                      # Interactive entry for today
  wt list --month 2024-03                       # Records of a month with totals
  wt list --from 2024-03-01 --min-hours 4       # Filter by day range and hours
  wt report --month 2024-03 --format yaml       # Monthly report data
  wt delete <id>                                # Delete a record

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > WT_* environment variables > config file > defaults

  The config file is ~/.wt/config.yaml unless --config is given.

    WT_DB_DIR                  Database directory (default: ~/.wt)
    WT_DB_FILENAME             Database filename (default: wt.db)
    WT_DB_QUERY_TIMEOUT        Query timeout (default: 10s)
    WT_DB_WRITE_TIMEOUT        Write timeout (default: 5s)
    WT_BILLING_DEFAULT_RATE    Hourly rate for new entries (default: 25)
    WT_BILLING_CURRENCY        Display currency (default: EUR)
    WT_BILLING_MAX_BREAK_HOURS Largest accepted break (default: 24)
    WT_DISPLAY_TIME_FORMAT     24h or 12h (default: 24h)
    WT_DISPLAY_DEFAULT_FORMAT  table, json or yaml (default: table)
    WT_APP_TIMEOUT             Application timeout (default: 60s)
    WT_LOG_LEVEL               debug, info, warn or error (default: warn)
    WT_LOG_FORMAT              console or json (default: console)
    WT_DEBUG                   Force debug logging when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsSetup(cmd) {
				return nil
			}
			return root.setup()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command. Storage is released even when the command
// fails.
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if closeErr := r.teardown(); err == nil {
		err = closeErr
	}
	return err
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (default: ~/.wt/config.yaml)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides WT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WT_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WT_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides WT_DB_WRITE_TIMEOUT)")

	// Billing configuration
	flags.Float64("rate", 0, "Default hourly rate (overrides WT_BILLING_DEFAULT_RATE)")
	flags.String("currency", "", "Display currency code (overrides WT_BILLING_CURRENCY)")

	// Display configuration
	flags.String("time-format", "", "Clock format, 24h or 12h (overrides WT_DISPLAY_TIME_FORMAT)")
	flags.Bool("no-color", false, "Disable colored output")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides WT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug logging")
	flags.String("log-level", "", "Log level (overrides WT_LOG_LEVEL)")
}

func addEntryFlags(cmd *cobra.Command, opts *EntryOptions) {
	cmd.Flags().StringVar(&opts.Date, "date", "", "Day of the entry, YYYY-MM-DD (default: today)")
	cmd.Flags().StringArrayVar(&opts.Slots, "slot", nil, "Work slot HH:MM-HH:MM, repeatable")
	cmd.Flags().StringVar(&opts.BreakHours, "breaks", "", "Break duration in hours")
	cmd.Flags().StringVar(&opts.Rate, "hourly-rate", "", "Hourly rate for this entry (default: configured rate)")
	cmd.Flags().StringVar(&opts.Currency, "entry-currency", "", "Currency for this entry (default: configured currency)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	var addOpts EntryOptions
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a work record",
		Long: `Add a work record for one day. Every slot is validated field by field,
checked against the other slots and against the records already stored for
that day, then calculated and saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.app, addOpts).Execute(ctx, args)
		},
	}
	addEntryFlags(addCmd, &addOpts)
	_ = addCmd.MarkFlagRequired("slot")

	// Calc command
	var calcOpts EntryOptions
	var calcFormat string
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate worked time and pay without saving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCalcCommand(r.app, calcOpts, calcFormat).Execute(ctx, args)
		},
	}
	addEntryFlags(calcCmd, &calcOpts)
	calcCmd.Flags().StringVar(&calcFormat, "format", "", "Output format: table, json or yaml")
	_ = calcCmd.MarkFlagRequired("slot")

	// Entry command
	var entryDate string
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Enter a day interactively",
		Long: `Enter a day's slots, breaks and rate interactively. Use --date to move
to the previous or next day.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive commands need longer timeout for user input
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*5)
			defer cancel()

			return NewEntryCommand(r.app, entryDate).Execute(ctx, args)
		},
	}
	entryCmd.Flags().StringVar(&entryDate, "date", "", "Day of the entry, YYYY-MM-DD (default: today)")

	// List command
	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List work records with totals",
		Long: `List work records with optional filtering. All bounds are inclusive.

Examples:
  wt list                                  # All records
  wt list --month 2024-03                  # Records of March 2024
  wt list --from 2024-03-01 --to 2024-03-15
  wt list --min-hours 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.app, listOpts).Execute(ctx, args)
		},
	}
	listCmd.Flags().StringVar(&listOpts.Month, "month", "", "Month, YYYY-MM")
	listCmd.Flags().StringVar(&listOpts.From, "from", "", "First day, YYYY-MM-DD")
	listCmd.Flags().StringVar(&listOpts.To, "to", "", "Last day, YYYY-MM-DD")
	listCmd.Flags().StringVar(&listOpts.MinHours, "min-hours", "", "Minimum hours per record")
	listCmd.Flags().StringVar(&listOpts.MaxHours, "max-hours", "", "Maximum hours per record")
	listCmd.Flags().StringVar(&listOpts.Format, "format", "", "Output format: table, json or yaml")

	// Report command
	var reportMonth, reportCurrency, reportFormat string
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewReportCommand(r.app, reportMonth, reportCurrency, reportFormat).Execute(ctx, args)
		},
	}
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "Month, YYYY-MM (default: current month)")
	reportCmd.Flags().StringVar(&reportCurrency, "report-currency", "", "Currency shown in the report")
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "Output format: table, json or yaml")

	// Delete command
	var deleteYes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a work record",
		Long:  "Delete a work record and its slots. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Delete commands may need longer timeout for user interaction
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewDeleteCommand(r.app, deleteYes).Execute(ctx, args)
		},
	}
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without confirmation")

	// Currencies command
	var currenciesFormat string
	currenciesCmd := &cobra.Command{
		Use:   "currencies",
		Short: "List supported currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCurrenciesCommand(r.app, currenciesFormat).Execute(cmd.Context(), args)
		},
	}
	currenciesCmd.Flags().StringVar(&currenciesFormat, "format", "", "Output format: table, json or yaml")

	r.cmd.AddCommand(
		addCmd,
		calcCmd,
		entryCmd,
		listCmd,
		reportCmd,
		deleteCmd,
		currenciesCmd,
	)
}

// needsSetup reports whether cmd runs against storage. Help and shell
// completion do not.
func needsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		name := c.Name()
		if name == "help" || name == "completion" || strings.HasPrefix(name, "__") {
			return false
		}
	}
	return true
}

// setup loads the configuration, builds the logger and opens the API
func (r *RootCommand) setup() error {
	configFile, _ := r.cmd.PersistentFlags().GetString("config")
	cfg, err := config.NewLoader(configFile).LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := validation.NewSettingsValidator(cfg).Validate(cfg.Billing); err != nil {
		return NewErrorHandler(nil).Handle("load configuration", err)
	}
	r.config = cfg

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	r.logger = logger

	SetColorEnabled(cfg.Display.Color && stdoutIsTerminal())

	businessAPI, closeAPI, err := r.factory(cfg, logger)
	if err != nil {
		return err
	}
	r.closeAPI = closeAPI

	r.app = NewAppWithConfig(businessAPI, cfg, logger)
	for _, option := range r.appOptions {
		option(r.app)
	}

	logger.Debug("configuration loaded",
		zap.String("database", cfg.GetDatabasePath()),
		zap.Float64("default_rate", cfg.Billing.DefaultRate),
		zap.String("currency", cfg.Billing.Currency))
	return nil
}

// teardown releases the API and flushes the logger
func (r *RootCommand) teardown() error {
	var err error
	if r.closeAPI != nil {
		err = r.closeAPI()
		r.closeAPI = nil
	}
	if r.logger != nil {
		_ = r.logger.Sync()
	}
	return err
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// overridesFromFlags collects the global flags that were set explicitly
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	// Database configuration
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}

	// Billing configuration
	if flags.Changed("rate") {
		v, _ := flags.GetFloat64("rate")
		overrides.DefaultRate = &v
	}
	if flags.Changed("currency") {
		v, _ := flags.GetString("currency")
		overrides.Currency = &v
	}

	// Display configuration
	if flags.Changed("time-format") {
		v, _ := flags.GetString("time-format")
		overrides.TimeFormat = &v
	}
	if flags.Changed("no-color") {
		v, _ := flags.GetBool("no-color")
		overrides.NoColor = &v
	}

	// Application configuration
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}

	return overrides
}
