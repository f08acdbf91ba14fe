package main

import (
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/meschbach/gsheets-cell-counter/internal"
	"github.com/meschbach/gsheets-cell-counter/internal/gsheets"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"
)

const defaultConfigFile = "gsheets-cell-counter.yaml"

type flags struct {
	config      string
	credentials string
	token       string
	ignoreFile  string
	ignore      []string
	tabs        bool
	verbose     bool
	optimize    bool
	dryRun      bool
}

func main() {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "gsheets-cell-counter SPREADSHEET_ID",
		Short: "Find the number of cells used in a Google spreadsheet",
		Long: `gsheets-cell-counter reports the cells allocated by every tab of a Google
spreadsheet and can trim tabs down to the rows and columns holding data.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0])
		},
	}

	rootCmd.Flags().StringVarP(&f.config, "config", "c", defaultConfigFile, "YAML settings file")
	rootCmd.Flags().StringVar(&f.credentials, "credentials", "", "OAuth client secret file (default credentials.json)")
	rootCmd.Flags().StringVar(&f.token, "token", "", "Cached OAuth token file (default token.json)")
	rootCmd.Flags().StringVarP(&f.ignoreFile, "ignore-file", "i", "", "File listing tab titles to skip, one per line (# starts a comment, \\# a literal #)")
	rootCmd.Flags().StringSliceVar(&f.ignore, "ignore", nil, "Tab title to skip, may be repeated")
	rootCmd.Flags().BoolVarP(&f.tabs, "tabs", "t", false, "Print the cell count of every tab")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print used ranges and value density, and log debug details")
	rootCmd.Flags().BoolVarP(&f.optimize, "optimize", "o", false, "Delete rows and columns outside the used range of each tab")
	rootCmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "With --optimize, only report the edits")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, f *flags, spreadsheetID string) error {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	if f.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if f.dryRun && !f.optimize {
		log.Warn("--dry-run has no effect without --optimize")
	}

	cfg, err := loadConfig(cmd, f.config)
	if err != nil {
		return err
	}
	if f.credentials != "" {
		cfg.Credentials = f.credentials
	}
	if f.token != "" {
		cfg.Token = f.token
	}
	ignored := cfg.Ignore
	if f.ignoreFile != "" {
		fromFile, err := internal.LoadIgnoreList(f.ignoreFile)
		if err != nil {
			return err
		}
		ignored = append(ignored, fromFile...)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	auth := &gsheets.Authenticator{
		CredentialsFile: cfg.Credentials,
		TokenFile:       cfg.Token,
		In:              cmd.InOrStdin(),
		Out:             cmd.OutOrStdout(),
	}
	httpClient, err := auth.Client(ctx)
	if err != nil {
		return err
	}
	client, err := gsheets.New(ctx, gsheets.DefaultBackoff(), option.WithHTTPClient(httpClient))
	if err != nil {
		return err
	}

	opts := internal.DefaultOptions()
	opts.Optimize = f.optimize
	opts.DryRun = f.dryRun
	opts.Verbose = f.verbose
	opts.Ignore = internal.IgnoreSet(ignored, f.ignore)
	opts.Throttle = cfg.ThrottlePolicy()

	report, err := internal.NewCounter(client, client, client, opts).Count(ctx, spreadsheetID)
	if err != nil {
		return err
	}
	return internal.PrintReport(cmd.OutOrStdout(), report, internal.PrintOptions{
		Tabs:    f.tabs,
		Verbose: f.verbose,
	})
}

// loadConfig reads the settings file.  The default file is optional, an explicitly named one is not.
func loadConfig(cmd *cobra.Command, path string) (internal.Config, error) {
	cfg, err := internal.LoadConfig(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		log.WithField("path", path).Debug("No settings file")
		return internal.DefaultConfig(), nil
	}
	return cfg, err
}
