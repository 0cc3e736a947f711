package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"paperdesk/internal/draft"
	"paperdesk/internal/llm"
	"paperdesk/internal/progress"
)

var (
	draftTopic  string
	draftTitle  string
	draftType   string
	draftSearch bool
	draftOut    string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate a complete LaTeX paper draft from the command line",
	Long: `Runs the full drafting pipeline without the server: optionally searches
for literature, generates every section for the paper type, and writes
paper.tex plus references.bib to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if draftTopic == "" {
			return fmt.Errorf("--topic is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var provider llm.Provider
		if p, err := createProvider(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: no LLM provider available, using fallback content: %v\n", err)
		} else {
			provider = p
		}

		ctx := context.Background()

		var literature []draft.LiteratureItem
		if draftSearch {
			embedder, err := createEmbedder(cfg)
			if err != nil && verbose {
				fmt.Fprintf(os.Stderr, "Warning: no embedder available, ranking is lexical only: %v\n", err)
			}
			searcher := buildSearchService(cfg, embedder)
			results, err := searcher.Search(ctx, "cli", draftTopic)
			if err != nil {
				return fmt.Errorf("searching literature: %w", err)
			}
			for _, res := range results {
				literature = append(literature, draft.LiteratureItem{
					Title:   res.Title,
					Authors: res.Authors,
					Year:    res.Year,
					Venue:   res.Venue,
					Summary: res.Summary,
				})
			}
			fmt.Fprintf(os.Stderr, "Found %d literature items\n", len(literature))
		}

		gen := draft.NewGenerator(provider, cfg.Model)
		paperType := draft.PaperType(draftType)

		reporter := progress.NewReporter()
		reporter.Start(len(draft.PaperStructure(paperType)))
		paper := gen.GeneratePaper(ctx, draftTopic, paperType, literature,
			func(current, total int, section string) {
				reporter.Update(current, draft.SectionDisplayName(section))
			})
		reporter.Finish()

		title := draftTitle
		if title == "" {
			title = gen.SuggestTitles(ctx, draftTopic)[0]
		}

		formatter := draft.NewFormatter("")
		latex := formatter.CompleteDocument(paper, draft.Metadata{
			Title:       title,
			Authors:     cfg.Author,
			Institution: cfg.Institution,
		}, literature)

		if err := os.MkdirAll(draftOut, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		texPath := filepath.Join(draftOut, "paper.tex")
		if err := os.WriteFile(texPath, []byte(latex), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", texPath, err)
		}

		bibPath := filepath.Join(draftOut, "references.bib")
		if bib := formatter.Bibliography(); bib != "" {
			if err := os.WriteFile(bibPath, []byte(bib), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", bibPath, err)
			}
		}

		fmt.Fprintf(os.Stderr, "Draft written to %s\n", texPath)
		return nil
	},
}

func init() {
	draftCmd.Flags().StringVar(&draftTopic, "topic", "", "research topic (required)")
	draftCmd.Flags().StringVar(&draftTitle, "title", "", "paper title (defaults to a suggestion)")
	draftCmd.Flags().StringVar(&draftType, "type", "standard", "paper type: standard, review, case_study or proposal")
	draftCmd.Flags().BoolVar(&draftSearch, "search", false, "search for literature before drafting")
	draftCmd.Flags().StringVarP(&draftOut, "out", "o", ".", "output directory")
	rootCmd.AddCommand(draftCmd)
}
