package feeder

import (
	"fmt"
	"strings"
)

// DefaultQuery is used when the caller gives no instruction.
const DefaultQuery = "Summarize the following sources. Highlight key points and common themes."

const sourceSeparator = "\n\n---\n\n"

// BuildPrompt assembles the instruction and all sources into one prompt.
// Sources keep their input order; the 1-based ordinal lets the model cite
// material back to a specific input.
func BuildPrompt(query string, sources []SourceContent) string {
	instruction := strings.TrimSpace(query)
	if instruction == "" {
		instruction = DefaultQuery
	}
	blocks := make([]string, 0, len(sources))
	for i, src := range sources {
		blocks = append(blocks, fmt.Sprintf("Source %d: %s\n%s", i+1, src.Label, src.Text))
	}
	return instruction + "\n\nContext:\n" + strings.Join(blocks, sourceSeparator)
}
