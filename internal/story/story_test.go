package story

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hamk-ai-autumn2025/Rene-Ots-assignments/internal/openai"
)

type stubChat struct {
	reply   string
	err     error
	lastReq openai.ChatRequest
}

func (s *stubChat) Chat(ctx context.Context, req openai.ChatRequest) (string, error) {
	s.lastReq = req
	return s.reply, s.err
}

func TestLength_KnownAndFallback(t *testing.T) {
	if Length("short").MaxTokens != 350 {
		t.Errorf("short length misconfigured")
	}
	if Length("nonsense").Key != DefaultLength {
		t.Errorf("unknown length should fall back to %s", DefaultLength)
	}
}

func TestBuildPrompt_ContainsParams(t *testing.T) {
	prompt := BuildPrompt(Params{
		Character: "dragon", Setting: "forest", Genre: "mystery", Tone: "gentle", Length: "long",
	})
	for _, want := range []string{
		"Main character: dragon.",
		"Setting: forest.",
		"Genre: mystery.",
		"Tone: gentle.",
		"a longer tale of 7+ paragraphs",
		"kids aged 5-7",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q: %s", want, prompt)
		}
	}
}

func TestGenerate_AppliesDefaults(t *testing.T) {
	chat := &stubChat{reply: "once upon a time"}
	gen := NewGenerator(chat, "gpt-4o-mini")

	res, err := gen.Generate(context.Background(), Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Params.Character != "princess" || res.Params.Setting != "castle" {
		t.Errorf("defaults not applied: %+v", res.Params)
	}
	if res.LengthLabel != Length(DefaultLength).Label {
		t.Errorf("expected default length label, got %q", res.LengthLabel)
	}
	if res.Story != "once upon a time" {
		t.Errorf("story not carried through: %q", res.Story)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	chat := &stubChat{reply: "story"}
	gen := NewGenerator(chat, "gpt-4o-mini")

	_, err := gen.Generate(context.Background(), Params{Length: "short"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := chat.lastReq
	if req.Model != "gpt-4o-mini" {
		t.Errorf("model not forwarded: %q", req.Model)
	}
	if req.Temperature != 0.9 {
		t.Errorf("expected temperature 0.9, got %v", req.Temperature)
	}
	if req.MaxTokens != 350 {
		t.Errorf("expected short length token cap, got %d", req.MaxTokens)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Errorf("unexpected message layout: %+v", req.Messages)
	}
}

func TestGenerate_PropagatesError(t *testing.T) {
	wantErr := errors.New("api down")
	gen := NewGenerator(&stubChat{err: wantErr}, "gpt-4o-mini")

	_, err := gen.Generate(context.Background(), Params{})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected error propagated, got %v", err)
	}
}
