// Package cmd implements the gutenberg CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gutenberg "github.com/gutenberg-print/gutenberg-go"
	"github.com/gutenberg-print/gutenberg-go/internal/cmd/output"
	"github.com/gutenberg-print/gutenberg-go/internal/config"
	"github.com/gutenberg-print/gutenberg-go/pkg/constants"
	"github.com/gutenberg-print/gutenberg-go/pkg/convert"
	"github.com/gutenberg-print/gutenberg-go/pkg/logging"
)

var (
	configFile string
	flagServer string
	flagToken  string
	flagOutput string
	verbose    bool
	quiet      bool

	// cfg is the merged configuration, loaded before any command runs.
	cfg *config.Config

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gutenberg",
	Short: "Gutenberg print service CLI",
	Long: `Gutenberg is a command line client for the Gutenberg print service.

It submits documents to the print queue (converting them to PDF first
when needed), lists and cancels print jobs, and manages the print token
used by printers and the IPP endpoint.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command with signal-aware context.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// No command runs longer than this, signals included.
	ctx, cancelTimeout := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancelTimeout()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.gutenberg.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "print server base URL")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "print token for authentication")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: table, json, or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		panic(fmt.Sprintf("Failed to bind config flag: %v", err))
	}
	if err := viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")); err != nil {
		panic(fmt.Sprintf("Failed to bind output flag: %v", err))
	}
}

// setup loads configuration and adjusts logging before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(flagOutput)
	if err != nil {
		return err
	}
	cfg.UpdateFromFlags(verbose, quiet, false, string(format))

	switch {
	case cfg.Quiet:
		logging.SetLevel(zerolog.ErrorLevel)
	case cfg.Verbose:
		logging.SetLevel(zerolog.DebugLevel)
	}

	if flagServer != "" {
		cfg.ServerURL = flagServer
	}
	if flagToken != "" {
		cfg.Token = flagToken
	}
	return nil
}

// newClient builds the API client from the loaded configuration.
func newClient() (*gutenberg.Client, error) {
	opts := []gutenberg.Option{
		gutenberg.WithToken(cfg.Token),
	}
	if cfg.ConvertLocally {
		runner := &convert.ExecRunner{Sandbox: cfg.SandboxScript}
		opts = append(opts, gutenberg.WithPipeline(
			convert.NewPipeline(convert.WithRunner(runner))))
	}
	return gutenberg.New(cfg.ServerURL, opts...)
}
