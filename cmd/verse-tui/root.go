package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"verse-tui/internal/bible"
	"verse-tui/internal/config"
	"verse-tui/internal/logging"
	"verse-tui/internal/nav"
	"verse-tui/internal/source"
	"verse-tui/internal/store"
	"verse-tui/internal/ui"
	"verse-tui/internal/version"
)

var (
	cfgFile   string
	startBook string
)

var rootCmd = &cobra.Command{
	Use:   "verse-tui",
	Short: "Terminal Bible reader",
	Long: `verse-tui reads the 66-book Bible one chapter at a time in the terminal.

Press B to open the book menu and type a book's highlighted abbreviation
("ge" for Genesis, "1co" for 1 Corinthians) to jump to it.

Text comes from a SQLite database (ASV.db next to the binary by default),
a downloaded bolls.life translation file, or the bolls.life API.`,
	Version:       version.GitRelease,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReader,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or "+config.ConfigDir()+"/config.yaml)",
	)
	rootCmd.Flags().StringVarP(
		&startBook, "book", "b", "", "book to open, by abbreviation (ps, 1co) or number (19)",
	)

	rootCmd.AddCommand(booksCmd, configCmd, downloadCmd, versionCmd)
}

func runReader(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return err
	}
	cfg := cm.Get()

	logger, closer, err := logging.New(cfg.LogOptions())
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("starting", "version", version.GitRelease, "config", cm.File())

	book, err := resolveBook(startBook)
	if err != nil {
		return err
	}

	src, err := source.Open(ctx, cfg.SourceOptions(logger))
	if err != nil {
		return err
	}
	defer src.Close()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout())
	vs, err := store.New(loadCtx, src, book, logger)
	cancel()
	if err != nil {
		return err
	}

	model := ui.NewModel(nav.New(vs, logger), ui.Options{
		Theme:   cfg.Theme,
		Label:   cfg.Label(),
		Timeout: cfg.LoadTimeout(),
		Logger:  logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	cm.OnChange(func(c *config.Config) {
		p.Send(ui.ThemeMsg{Key: c.Theme})
	})
	cm.WatchConfig(logger)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// resolveBook accepts a menu abbreviation or a 1-based book number as listed
// by `verse-tui books`. An empty arg opens Genesis.
func resolveBook(arg string) (bible.Book, error) {
	if arg == "" {
		return bible.Genesis, nil
	}
	if rank, err := strconv.Atoi(arg); err == nil {
		if b, ok := bible.ByRank(rank); ok {
			return b, nil
		}
		return bible.Book{}, fmt.Errorf("book number %d out of range 1-%d", rank, bible.Count)
	}
	if b, ok := bible.Resolve(strings.ToLower(arg)); ok {
		return b, nil
	}
	return bible.Book{}, fmt.Errorf("unknown book abbreviation %q (see `verse-tui books`)", arg)
}
