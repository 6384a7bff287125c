package summarize

import (
	"strings"
	"testing"
)

func TestSummarize_KeepsAtMostMaxSentences(t *testing.T) {
	text := "Go is great. Go powers this service. Lunch was fine. The weather is mild. Go experience matters."
	s := NewFrequencySummarizer()
	out, err := s.Summarize(text, 2)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if n := strings.Count(out, "."); n > 2 {
		t.Errorf("expected at most 2 sentences, got %d: %q", n, out)
	}
	if !strings.Contains(out, "Go") {
		t.Errorf("expected dominant topic in summary, got %q", out)
	}
}

func TestSummarize_PreservesSentenceOrder(t *testing.T) {
	text := "First point here. Second point here. Third point here."
	s := NewFrequencySummarizer()
	out, err := s.Summarize(text, 3)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	first := strings.Index(out, "First")
	second := strings.Index(out, "Second")
	third := strings.Index(out, "Third")
	if first == -1 || second == -1 || third == -1 || first > second || second > third {
		t.Errorf("sentences out of order: %q", out)
	}
}

func TestSummarize_TextWithoutSentenceEndings(t *testing.T) {
	s := NewFrequencySummarizer()
	out, err := s.Summarize("  just a fragment without punctuation  ", 3)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if out != "just a fragment without punctuation" {
		t.Errorf("unexpected output %q", out)
	}
}
