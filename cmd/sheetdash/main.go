// Package main provides the CLI entry point for sheetdash-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(iconError+" "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "sheetdash",
		Short: "Turn spreadsheet columns into chart-ready data",
		Long: `sheetdash-go reads an Excel workbook into a tabular model, binds its
columns to chart roles and prints the chart-ready data for each visualization.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Debug("loaded config", "path", configPath, "format", cfg.Output.Format)

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./"+config.FileName+" if present)")

	root.AddCommand(newSheetsCmd())
	root.AddCommand(newHeadersCmd())
	root.AddCommand(newColumnsCmd())
	root.AddCommand(newChartCmd())
	root.AddCommand(newEmbeddedCmd())
	root.AddCommand(newSessionCmd())

	return root
}
