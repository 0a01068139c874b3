package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/i18n"
	"github.com/sevigo/review-analyzer/internal/wire"
)

const previewRunes = 60

var reviewsJSON bool

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List previously analyzed reviews, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		app, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		records, err := app.Client.ListReviews(ctx)
		if err != nil {
			return fmt.Errorf("failed to retrieve reviews: %w", err)
		}

		if reviewsJSON {
			if records == nil {
				records = []core.ReviewRecord{}
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(records)
		}

		if len(records) == 0 {
			fmt.Println(app.Localize(i18n.KeyHistoryEmpty))
			return nil
		}
		return writeReviewTable(os.Stdout, app.Catalog, app.Prefs.Current().Language, records)
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	reviewsCmd.Flags().BoolVar(&reviewsJSON, "json", false, "Output reviews as JSON")
	rootCmd.AddCommand(reviewsCmd)
}

func writeReviewTable(out io.Writer, catalog *i18n.Catalog, lang core.Language, records []core.ReviewRecord) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSENTIMENT\tCONFIDENCE\tPRODUCT\tCREATED\tREVIEW")
	for _, r := range records {
		created := "-"
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.Local().Format(time.RFC822)
		}
		product := r.ProductName
		if product == "" {
			product = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			strings.ToUpper(catalog.Resolve(lang, i18n.SentimentKey(r.Sentiment))),
			formatConfidence(r.ConfidenceScore),
			product,
			created,
			preview(r.ReviewText),
		)
	}
	return w.Flush()
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= previewRunes {
		return s
	}
	return string(runes[:previewRunes-1]) + "…"
}
