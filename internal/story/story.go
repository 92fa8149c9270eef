// Package story generates children's stories via a chat completion and
// renders them to PDF.
package story

import (
	"context"
	"fmt"

	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/openai"
)

const systemPrompt = "You craft delightful, imaginative stories for young kids."

// LengthOption describes one of the selectable story lengths.
type LengthOption struct {
	Key       string `json:"key"`
	Prompt    string `json:"-"`
	MaxTokens int    `json:"-"`
	Label     string `json:"label"`
}

const DefaultLength = "medium"

var lengthOptions = map[string]LengthOption{
	"short": {
		Key:       "short",
		Prompt:    "a short story of about 3 playful paragraphs",
		MaxTokens: 350,
		Label:     "Short (≈3 paragraphs)",
	},
	"medium": {
		Key:       "medium",
		Prompt:    "a medium-length story of about 5 paragraphs",
		MaxTokens: 550,
		Label:     "Medium (≈5 paragraphs)",
	},
	"long": {
		Key:       "long",
		Prompt:    "a longer tale of 7+ paragraphs with rich detail",
		MaxTokens: 750,
		Label:     "Long (≈7+ paragraphs)",
	},
}

// Length returns the option for key, falling back to the default for
// unknown keys.
func Length(key string) LengthOption {
	if opt, ok := lengthOptions[key]; ok {
		return opt
	}
	return lengthOptions[DefaultLength]
}

// Params are the story ingredients picked in the web form.
type Params struct {
	Character string `json:"character"`
	Setting   string `json:"setting"`
	Genre     string `json:"genre"`
	Tone      string `json:"tone"`
	Length    string `json:"length"`
}

func (p Params) withDefaults() Params {
	if p.Character == "" {
		p.Character = "princess"
	}
	if p.Setting == "" {
		p.Setting = "castle"
	}
	if p.Genre == "" {
		p.Genre = "adventure"
	}
	if p.Tone == "" {
		p.Tone = "funny"
	}
	if _, ok := lengthOptions[p.Length]; !ok {
		p.Length = DefaultLength
	}
	return p
}

// BuildPrompt produces the storyteller prompt for the given params.
func BuildPrompt(p Params) string {
	length := Length(p.Length)
	return "You are an imaginative children's storyteller. " +
		fmt.Sprintf("Write %s for kids aged 5-7. ", length.Prompt) +
		"Use simple, cheerful language and weave in sensory details. " +
		fmt.Sprintf("Main character: %s. ", p.Character) +
		fmt.Sprintf("Setting: %s. ", p.Setting) +
		fmt.Sprintf("Genre: %s. ", p.Genre) +
		fmt.Sprintf("Tone: %s. ", p.Tone) +
		"Close the story with a feel-good ending that hints at more adventures."
}

// ChatClient is the slice of the API client the generator needs.
type ChatClient interface {
	Chat(ctx context.Context, req openai.ChatRequest) (string, error)
}

// Generator turns story params into a finished story.
type Generator struct {
	client ChatClient
	model  string
}

func NewGenerator(client ChatClient, model string) *Generator {
	return &Generator{client: client, model: model}
}

// Result is one generated story plus the params it was generated from.
type Result struct {
	Story       string
	LengthLabel string
	Params      Params
}

// Generate fills in missing params with defaults and requests the story.
// Temperature is high here: variety matters more than determinism.
func (g *Generator) Generate(ctx context.Context, p Params) (Result, error) {
	p = p.withDefaults()
	length := Length(p.Length)

	reply, err := g.client.Chat(ctx, openai.ChatRequest{
		Model: g.model,
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(p)},
		},
		Temperature: 0.9,
		MaxTokens:   length.MaxTokens,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Story: reply, LengthLabel: length.Label, Params: p}, nil
}
