package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "paperdesk",
	Short: "Research writing workspace with literature search and LaTeX drafting",
	Long: `Paperdesk takes a research topic through the full writing workflow:
literature search with relevance ranking, title and outline suggestions,
section drafting, and assembly into a complete LaTeX document. It runs
as a local web server, a CLI pipeline, or an MCP tool server.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".paperdesk.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
