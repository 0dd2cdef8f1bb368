// Package main provides the CLI entrypoint for dvorakdrill.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/dvorakdrill/internal/config"
	"github.com/verte-zerg/dvorakdrill/internal/corpus"
	"github.com/verte-zerg/dvorakdrill/internal/keymaps"
	"github.com/verte-zerg/dvorakdrill/internal/model"
	"github.com/verte-zerg/dvorakdrill/internal/session"
	"github.com/verte-zerg/dvorakdrill/internal/tui"
)

const (
	defaultLang   = "en"
	defaultLayout = "dvorak"
)

// debugEnv names the log file that receives drill events when set.
const debugEnv = "DVORAKDRILL_DEBUG"

type options struct {
	lang    string
	layout  string
	keymaps string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "dvorakdrill",
		Short:         "Terminal typing tutor for learning a new keyboard layout",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPractice(cmd, opts)
		},
	}

	bindFlags(rootCmd, opts)

	return rootCmd
}

func bindFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", defaultLang, "interface language (en, es, ja)")
	cmd.Flags().StringVarP(&opts.layout, "layout", "k", defaultLayout, "keyboard layout (dvorak, qwerty)")
	cmd.Flags().StringVar(&opts.keymaps, "keymaps", "", "custom keymap list (.json/.jsonc array or one per line)")
}

func runPractice(cmd *cobra.Command, opts *options) error {
	if err := resolveOptions(cmd, opts, config.DefaultConfigPath()); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("dvorakdrill needs an interactive terminal")
	}

	var logger *log.Logger
	if path := strings.TrimSpace(os.Getenv(debugEnv)); path != "" {
		f, err := tea.LogToFile(path, "dvorakdrill")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close debug log: %v\n", cerr)
			}
		}()
		logger = log.Default()
	}

	custom := keymaps.LoadOrDefault(keymapPaths(opts.keymaps)...)
	sess := session.New(session.Options{
		Lang:   opts.lang,
		Layout: model.ParseLayout(opts.layout),
		Corpus: corpus.Default(custom),
	})
	if logger != nil {
		logger.Printf("starting: lang=%s layout=%s keymaps=%d", opts.lang, sess.Layout().Name(), len(custom))
	}

	program := tea.NewProgram(tui.NewModel(sess, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveOptions fills unset flags from the config file at path.
func resolveOptions(cmd *cobra.Command, opts *options, path string) error {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &opts.lang, fileCfg.Practice.Lang)
	applyStringConfig(cmd, "layout", &opts.layout, fileCfg.Practice.Layout)
	applyStringConfig(cmd, "keymaps", &opts.keymaps, fileCfg.Practice.Keymaps)
	return nil
}

// keymapPaths lists the keymap files to try, most specific first.
func keymapPaths(configured string) []string {
	paths := []string{}
	if configured != "" {
		paths = append(paths, configured)
	}
	return append(paths, config.DefaultKeymapsPath(), config.LegacyKeymapsPath)
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

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
