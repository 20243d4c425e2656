package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"stockpick/internal/catalog/pexels"
	"stockpick/internal/config"
	"stockpick/internal/domain"
	"stockpick/internal/log"
	"stockpick/internal/medialib"
	"stockpick/internal/panel"
	"stockpick/internal/store"
	"stockpick/internal/timeline"
	"stockpick/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("stockpick %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting stockpick", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	catalog := pexels.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, logger)

	projectStore, err := store.NewProjectStore(cfg.Library.Dir)
	if err != nil {
		return fmt.Errorf("failed to open media library: %w", err)
	}
	defer projectStore.Close()

	library := medialib.NewService(projectStore, logger)
	session := timeline.NewSession()
	timelineSvc := timeline.NewService(projectStore, logger)
	importer := panel.NewImporter(library, timelineSvc, session, logger)

	// The editor session is local, so it is ready as soon as the store is open
	session.MarkReady()

	kind := domain.AssetKind(cfg.Browse.DefaultKind)
	model := tui.NewModel(catalog, importer, kind, cfg.Browse.PageSize, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "kind", kind, "pageSize", cfg.Browse.PageSize)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for provider settings on first start
func runSetupFlow(cfg *config.Config) error {
	fmt.Println()
	fmt.Println("Welcome to stockpick!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Enter the catalog endpoint base URL (e.g., https://editor.example.com): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		baseURL := strings.TrimSpace(input)
		if baseURL == "" {
			fmt.Println("Base URL cannot be empty. Please try again.")
			continue
		}
		cfg.Provider.BaseURL = strings.TrimRight(baseURL, "/")
		break
	}

	fmt.Print("Enter the provider API key (optional, hidden): ")
	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}
	cfg.Provider.APIKey = strings.TrimSpace(string(keyBytes))

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run stockpick again to start browsing.")

	return nil
}
