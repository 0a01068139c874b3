package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-analyzer/internal/app"
	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/wire"
	"github.com/sevigo/review-analyzer/internal/workflow"
)

var (
	analyzeProduct string
	analyzeLang    string
	analyzeJSON    bool
)

var errAnalysisFailed = errors.New("analysis failed")

var analyzeCmd = &cobra.Command{
	Use:   "analyze [review text...]",
	Short: "Submit a review for sentiment analysis",
	Long: `Submit a review for sentiment analysis and print the result.

Examples:
  review-cli analyze "Baterai awet dan layar bagus, saya puas"
  review-cli analyze --lang en --product "Phone X" The battery lasts for days`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	analyzeCmd.Flags().StringVar(&analyzeProduct, "product", "", "Product name")
	analyzeCmd.Flags().StringVar(&analyzeLang, "lang", "", "Review language (id, en); defaults to the saved preference")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	lang := appInstance.Prefs.Current().Language
	if analyzeLang != "" {
		parsed, ok := core.ParseLanguage(analyzeLang)
		if !ok {
			return fmt.Errorf("unsupported language %q (use id or en)", analyzeLang)
		}
		lang = parsed
	}

	st := analyze(ctx, appInstance, strings.Join(args, " "), analyzeProduct, lang)

	if st.Failure != nil {
		errorColor.Fprintf(os.Stderr, "%s: %s\n",
			appInstance.Catalog.Resolve(lang, i18n.KeyErrorPrefix),
			st.Failure.Localized(appInstance.Catalog, lang))
		return errAnalysisFailed
	}

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(st.Result)
	}
	printResult(os.Stdout, appInstance.Catalog, lang, st.Result)
	return nil
}

// analyze runs one submission to completion. The history refresh that
// follows a success in the UI is not needed here.
func analyze(ctx context.Context, a *app.App, text, product string, lang core.Language) workflow.State {
	w := a.NewWorkflow(ctx)
	defer w.Close()

	w.SetDraft(text)
	w.SetProductName(product)
	if submit := w.Submit(lang); submit != nil {
		w.Update(submit())
	}
	return w.State()
}
