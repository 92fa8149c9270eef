package feeder

import "testing"

func TestNormalize_TrimsAndDropsEmptyLines(t *testing.T) {
	got := Normalize("  Hello  \n\n\t\nWorld\n")
	if got != "Hello\nWorld" {
		t.Errorf("expected 'Hello\\nWorld', got %q", got)
	}
}

func TestNormalize_PreservesLineOrder(t *testing.T) {
	got := Normalize("c\n\na\n\nb")
	if got != "c\na\nb" {
		t.Errorf("expected order preserved, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("  one  \n\n two \nthree")
	twice := Normalize(once)
	if once != twice {
		t.Errorf("normalize not idempotent: %q vs %q", once, twice)
	}
}

func TestNormalize_HandlesCRLF(t *testing.T) {
	got := Normalize("first\r\n\r\nsecond\r\n")
	if got != "first\nsecond" {
		t.Errorf("expected CRLF input normalized, got %q", got)
	}
}

func TestTruncate_RespectsRuneBudget(t *testing.T) {
	for _, k := range []int{1, 3, 5, 100} {
		got := truncate("héllo wörld", k)
		if n := len([]rune(got)); n > k {
			t.Errorf("truncate(%d) kept %d runes", k, n)
		}
	}
}

func TestTruncate_ZeroDisables(t *testing.T) {
	text := "some longer text that must survive"
	if got := truncate(text, 0); got != text {
		t.Errorf("expected no truncation with 0 budget, got %q", got)
	}
}
