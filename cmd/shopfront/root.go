package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ericfisherdev/shopfront/internal/adapter/driving/tui"
	"github.com/ericfisherdev/shopfront/internal/application"
	"github.com/ericfisherdev/shopfront/internal/config"
)

// version is set during build.
var version = "dev"

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shopfront",
		Short: "Terminal storefront with sign-in and registration",
		Long: `shopfront opens an interactive store in the terminal. Accounts are
registered into an in-memory directory that lives only as long as the
process; nothing is written to disk.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context())
		},
	}

	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of shopfront",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shopfront %s\n", version)
		},
	})

	return rootCmd
}

func runTUI(parent context.Context) error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !isTerminal() {
		return errors.New("shopfront needs an interactive terminal; use 'shopfront catalog' for non-interactive output")
	}

	// 2. Logging goes to a file or nowhere: the TUI owns the terminal.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded",
		"directory", cfg.Directory,
		"log_level", cfg.LogLevel,
		"catalog_path", cfg.CatalogPath,
		"no_color", cfg.NoColor,
	)

	// 3. Setup signal-based context (SIGINT, SIGTERM).
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Wire adapters.
	store, closeStore, err := newCredentialStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	products, err := newProductSource(cfg)
	if err != nil {
		return err
	}

	// 5. Wire services and the session.
	directory := application.NewCredentialDirectory(store, logger)
	catalogSvc := application.NewCatalogService(products)
	session := application.NewSession()

	// 6. Run the TUI until the user quits or a signal arrives.
	tui.ApplyColorProfile(cfg.NoColor)
	logger.Info("shopfront started", "version", version)

	err = tui.Run(ctx, tui.New(ctx, directory, catalogSvc, session, logger))
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("run tui: %w", err)
	}

	// 7. Log shutdown; everything registered is discarded with the process.
	if n, countErr := directory.Count(context.Background()); countErr == nil {
		logger.Info("shutdown complete", "accounts_discarded", n)
	}
	return nil
}
