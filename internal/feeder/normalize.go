package feeder

import "strings"

// Normalize trims every line and drops the ones that end up empty. The
// order of the remaining lines is preserved, and the result is stable
// under repeated normalization.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
