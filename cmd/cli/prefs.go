package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-analyzer/internal/app"
	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/prefs"
	"github.com/sevigo/review-analyzer/internal/wire"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the saved theme and language",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved preferences",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app.App, _ []string) error {
		p := a.Prefs.Current()
		fmt.Fprintf(cmd.OutOrStdout(), "theme:    %s\nlanguage: %s\nfile:     %s\n", p.Theme, p.Language, a.Cfg.Preferences.Path)
		return nil
	}),
}

var prefsThemeCmd = &cobra.Command{
	Use:       "theme <light|dark>",
	Short:     "Save the UI theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(prefs.ThemeLight), string(prefs.ThemeDark)},
	RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
		theme, ok := prefs.ParseTheme(args[0])
		if !ok {
			return fmt.Errorf("unknown theme %q (use light or dark)", args[0])
		}
		a.Prefs.SetTheme(theme)
		fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", theme)
		return nil
	}),
}

var prefsLanguageCmd = &cobra.Command{
	Use:       "language <id|en>",
	Short:     "Save the UI and review language",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(core.LanguageID), string(core.LanguageEN)},
	RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
		lang, ok := core.ParseLanguage(args[0])
		if !ok {
			return fmt.Errorf("unknown language %q (use id or en)", args[0])
		}
		a.Prefs.SetLanguage(lang)
		fmt.Fprintf(cmd.OutOrStdout(), "language set to %s\n", lang)
		return nil
	}),
}

func init() { //nolint:gochecknoinits // Cobra command registration
	prefsCmd.AddCommand(prefsShowCmd, prefsThemeCmd, prefsLanguageCmd)
	rootCmd.AddCommand(prefsCmd)
}

// withApp initializes the application for a command and releases it after.
func withApp(run func(cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		defer cleanup()
		return run(cmd, a, args)
	}
}
