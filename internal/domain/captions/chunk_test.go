package captions

import (
	"strings"
	"testing"
)

func TestChunk_Budgets(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog and keeps on running until dawn",
		"one",
		"a b c d e f g h i j k l m",
		"supercalifragilisticexpialidocious yes",
	}
	for _, text := range texts {
		t.Run(text[:min(12, len(text))], func(t *testing.T) {
			chunks := Chunk(text, 6, 36)
			if len(chunks) == 0 {
				t.Fatal("non-empty input must yield at least one chunk")
			}
			for _, c := range chunks {
				words := strings.Fields(c)
				if len(words) > 6 {
					t.Fatalf("chunk %q has %d words", c, len(words))
				}
				// a single word may legitimately exceed the character budget
				if len(words) > 1 && len([]rune(c)) > 36 {
					t.Fatalf("chunk %q has %d chars", c, len([]rune(c)))
				}
			}
			normalized := strings.Join(strings.Fields(text), " ")
			if got := strings.Join(chunks, " "); got != normalized {
				t.Fatalf("round trip broken:\n got: %q\nwant: %q", got, normalized)
			}
		})
	}
}

func TestChunk_WordLimitStartsNewChunk(t *testing.T) {
	chunks := Chunk("a b c d", 2, 100)
	if len(chunks) != 2 || chunks[0] != "a b" || chunks[1] != "c d" {
		t.Fatalf("unexpected chunks: %#v", chunks)
	}
}

func TestChunk_CharLimitCountsJoiningSpace(t *testing.T) {
	// "ab cd" is 5 rendered chars; a budget of 4 forces a split
	chunks := Chunk("ab cd", 6, 4)
	if len(chunks) != 2 {
		t.Fatalf("expected split on rendered length, got %#v", chunks)
	}
}

func TestChunk_Empty(t *testing.T) {
	if got := Chunk("   ", 6, 36); got != nil {
		t.Fatalf("expected nil for blank input, got %#v", got)
	}
}
