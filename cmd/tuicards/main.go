// Package main provides the CLI entrypoint for tuicards.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuicards/internal/config"
	"github.com/verte-zerg/tuicards/internal/deck"
	"github.com/verte-zerg/tuicards/internal/listing"
	"github.com/verte-zerg/tuicards/internal/model"
	"github.com/verte-zerg/tuicards/internal/tui"
)

const (
	defaultFilter     = "all"
	defaultShowPinyin = true
)

var (
	studyFilter     string
	studyShowPinyin bool
	studyDeck       string

	listFilter string
	listDeck   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuicards",
		Short:         "TUI Chinese flashcards",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runStudyCmd,
	}

	rootCmd.Flags().StringVar(&studyFilter, "filter", defaultFilter, "initial filter: all, known, unknown")
	rootCmd.Flags().BoolVar(&studyShowPinyin, "pinyin", defaultShowPinyin, "show pinyin on the prompt side")
	rootCmd.Flags().StringVar(&studyDeck, "deck", "", "deck file (TOML) to load instead of the built-in deck")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSeedCmd())

	return rootCmd
}

func runStudyCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "filter", &studyFilter, fileCfg.Study.Filter)
	applyBoolConfig(cmd, "pinyin", &studyShowPinyin, fileCfg.Study.ShowPinyin)
	applyStringConfig(cmd, "deck", &studyDeck, fileCfg.Study.Deck)

	filter, err := model.ParseFilterMode(studyFilter)
	if err != nil {
		return fmt.Errorf("--filter must be one of all, known, unknown")
	}
	cfg := model.Config{
		Filter:     filter,
		ShowPinyin: studyShowPinyin,
		DeckPath:   studyDeck,
	}

	ctrl, err := openDeck(cfg.DeckPath)
	if err != nil {
		return err
	}
	ctrl.SetFilterMode(cfg.Filter)
	ctrl.SetShowPinyin(cfg.ShowPinyin)

	program := tea.NewProgram(tui.NewModel(ctrl), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// openDeck loads the deck file when one is configured and falls back to the
// built-in seed otherwise.
func openDeck(path string) (*deck.Controller, error) {
	if path == "" {
		return deck.NewSeeded(), nil
	}
	cards, err := deck.LoadFile(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	return deck.New(cards), nil
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the deck as a table",
		Args:  cobra.NoArgs,
		RunE:  runListCmd,
	}
	cmd.Flags().StringVar(&listFilter, "filter", defaultFilter, "filter: all, known, unknown")
	cmd.Flags().StringVar(&listDeck, "deck", "", "deck file (TOML) to list instead of the built-in deck")
	return cmd
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "deck", &listDeck, fileCfg.Study.Deck)

	filter, err := model.ParseFilterMode(listFilter)
	if err != nil {
		return fmt.Errorf("--filter must be one of all, known, unknown")
	}
	ctrl, err := openDeck(listDeck)
	if err != nil {
		return err
	}
	if err := listing.Render(cmd.OutOrStdout(), ctrl.Cards(), filter, terminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the built-in deck as a TOML deck file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deck.Write(cmd.OutOrStdout(), deck.SeedCards())
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logErrf("Wrote %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuicards configuration
# Uncomment a value to enable it. CLI flags override config values.

[study]
# filter = %q          # Initial filter: all, known, unknown
# show-pinyin = %t      # Show pinyin on the prompt side
# deck = %q  # Deck file to load (create one with: tuicards seed > deck.toml)
`,
		defaultFilter,
		defaultShowPinyin,
		config.DefaultDeckPath(),
	)
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
