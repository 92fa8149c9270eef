// llmfeed aggregates text from local files or URLs and queries an LLM.
// Supported sources: text, CSV, DOCX, PDF, and web pages.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/feeder"
	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/openai"
)

const fetchTimeout = 30 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		query    string
		output   string
		model    string
		maxChars int
	)

	cmd := &cobra.Command{
		Use:   "llmfeed <input>...",
		Short: "Aggregate text from files or URLs and query an LLM",
		Long: `llmfeed collects text from one or more local files or web pages and
sends it as context to a chat completion request.

Supported sources: plain text/markdown, CSV, DOCX, PDF, and web pages;
anything else is read as best-effort UTF-8.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			fetcher := feeder.NewPageFetcher(fetchTimeout, feeder.DefaultUserAgent, 10)
			runner := &feeder.Runner{
				Loader: feeder.NewLoader(fetcher, maxChars),
				Client: openai.New(os.Getenv("OPENAI_API_KEY")),
				Stdout: cmd.OutOrStdout(),
			}
			return runner.Run(cmd.Context(), feeder.Options{
				Inputs: args,
				Query:  query,
				Output: output,
				Model:  model,
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "custom user prompt (defaults to requesting a summary)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to write the LLM response (stdout if omitted)")
	cmd.Flags().StringVar(&model, "model", "gpt-4o-mini", "LLM model identifier")
	cmd.Flags().IntVar(&maxChars, "max-chars", 12000, "maximum characters kept from each source (0 disables)")

	return cmd
}
