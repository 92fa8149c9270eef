// imagegen generates images via the OpenAI image API at a chosen aspect
// ratio and writes them to the working directory.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/imagegen"
	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/openai"
)

const imageModel = "gpt-image-1"

// exitError carries the process exit code alongside the message, so the
// distinct codes for missing credentials and API failures survive cobra.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		code := 1
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}

func newRootCmd() *cobra.Command {
	var (
		ratio   string
		count   int
		quality string
	)

	cmd := &cobra.Command{
		Use:           "imagegen <prompt>",
		Short:         "Generate images via OpenAI",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			size, ok := imagegen.AspectSizes[ratio]
			if !ok {
				return fmt.Errorf("unknown ratio %q (choose from %s)", ratio, strings.Join(imagegen.Ratios(), ", "))
			}
			if !imagegen.ValidQuality(quality) {
				return fmt.Errorf("unknown quality %q (choose from %s)", quality, strings.Join(imagegen.Qualities, ", "))
			}
			if count < 1 || count > 8 {
				return &exitError{code: 1, msg: "Count must be between 1 and 8."}
			}

			key := os.Getenv("OPENAI_API_KEY")
			if key == "" {
				return &exitError{code: 2, msg: "Missing OPENAI_API_KEY environment variable."}
			}

			client := openai.New(key)
			images, err := client.GenerateImages(cmd.Context(), openai.ImageRequest{
				Model:   imageModel,
				Prompt:  strings.TrimSpace(args[0]),
				Size:    size,
				Quality: quality,
				N:       count,
			})
			if err != nil {
				return &exitError{code: 3, msg: fmt.Sprintf("OpenAI request failed: %v", err)}
			}

			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			prefix := imagegen.FilePrefix(ratio, time.Now())
			for _, path := range imagegen.SaveImages(dir, prefix, images) {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&ratio, "ratio", "r", "1:1", "aspect ratio: "+strings.Join(imagegen.Ratios(), ", "))
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of images (1-8)")
	cmd.Flags().StringVarP(&quality, "quality", "q", "high", "image quality: "+strings.Join(imagegen.Qualities, ", "))

	return cmd
}
