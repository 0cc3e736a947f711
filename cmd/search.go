package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paperdesk/internal/search"
)

var searchFormat string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for related literature and print ranked results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		embedder, err := createEmbedder(cfg)
		if err != nil && verbose {
			fmt.Fprintf(os.Stderr, "Warning: no embedder available, ranking is lexical only: %v\n", err)
		}

		searcher := buildSearchService(cfg, embedder)
		results, err := searcher.Search(context.Background(), "cli", args[0])
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}

		switch searchFormat {
		case "csv":
			return search.WriteCSV(os.Stdout, results)
		case "json":
			return search.WriteJSON(os.Stdout, results)
		case "table":
			printResults(results)
			return nil
		default:
			return fmt.Errorf("unknown format %q (want table, csv or json)", searchFormat)
		}
	},
}

func printResults(results []search.Result) {
	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}
	for i, res := range results {
		fmt.Printf("%2d. [%.3f] %s\n", i+1, res.Score, res.Title)
		fmt.Printf("    %s (%s), %s\n", res.Authors, res.Year, res.Venue)
		if res.Link != "" {
			fmt.Printf("    %s\n", res.Link)
		}
	}
}

func init() {
	searchCmd.Flags().StringVarP(&searchFormat, "format", "f", "table", "output format: table, csv or json")
	rootCmd.AddCommand(searchCmd)
}
