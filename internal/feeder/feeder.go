package feeder

import (
	"context"
	"io"

	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/openai"
)

const systemPrompt = "You are a helpful assistant that works with curated multi-source context."

// ChatClient is the slice of the API client the pipeline needs.
type ChatClient interface {
	Chat(ctx context.Context, req openai.ChatRequest) (string, error)
}

// Options are the per-invocation knobs of the pipeline.
type Options struct {
	Inputs []string
	Query  string
	Output string
	Model  string
}

// Runner wires the pipeline stages together: load each input in order,
// build the prompt, call the model once, write the reply. Any stage
// failure aborts the whole run; nothing is retried.
type Runner struct {
	Loader *Loader
	Client ChatClient
	Stdout io.Writer
}

func (r *Runner) Run(ctx context.Context, opts Options) error {
	sources, err := r.Loader.LoadAll(ctx, opts.Inputs)
	if err != nil {
		return err
	}

	prompt := BuildPrompt(opts.Query, sources)

	reply, err := r.Client.Chat(ctx, openai.ChatRequest{
		Model: opts.Model,
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return err
	}

	return WriteOutput(r.Stdout, reply, opts.Output)
}
