package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"tracetutor/internal/catalog"
	"tracetutor/internal/config"
	"tracetutor/internal/logging"
	"tracetutor/internal/trace"
	"tracetutor/internal/tutor"
	"tracetutor/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	logFile    string
	dark       bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "tracetutor",
		Short: "Learn PCB design in the terminal",
		Long: `TraceTutor is a terminal companion for learning PCB design.

Browse hands-on projects and learning paths, search by topic and level,
and ask the AI tutor questions. Run without arguments to start the UI.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Log file (default: "+config.DefaultLogFile()+")")
	root.Flags().BoolVar(&opts.dark, "dark", false, "Start in dark mode")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newCatalogCmd(opts))
	return root
}

// loadConfig resolves the config file and applies flags on top.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("dark") {
		cfg.DarkMode = opts.dark
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	return cfg, nil
}

// loadCatalog returns the embedded catalog, or the override file when set.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func runUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	logger, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel, Verbose: opts.verbose})
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("session_id", sessionID))
	defer func() { _ = logger.Sync() }()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	provider, err := trace.NewProvider(ctx, cfg.Trace)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown failed", zap.Error(err))
		}
	}()

	md, err := ui.NewMarkdownRenderer(ui.DefaultMarkdownCacheSize)
	if err != nil {
		return err
	}

	completer := &tutor.TracedCompleter{
		Next: &tutor.MockCompleter{
			MinDelay:  cfg.Mock.MinDelay,
			MaxDelay:  cfg.Mock.MaxDelay,
			Responses: tutor.CannedResponses,
		},
		Tracer:    provider.Tracer(),
		SessionID: sessionID,
	}

	logger.Info("starting",
		zap.Bool("tracing", provider.Enabled()),
		zap.String("catalog", cfg.CatalogPath),
		zap.Duration("mock_min_delay", cfg.Mock.MinDelay),
		zap.Duration("mock_max_delay", cfg.Mock.MaxDelay))

	model := ui.NewAppModel(ui.Options{
		Catalog:   cat,
		Completer: completer,
		Logger:    logger,
		Markdown:  md,
		DarkMode:  cfg.DarkMode,
		Context:   ctx,
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("exited")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
