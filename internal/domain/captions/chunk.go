package captions

import "strings"

// Chunk splits text into caption-sized pieces, greedy left to right. A new
// chunk starts before a word would push the current one past maxWords words
// or past maxChars rendered characters (words joined by single spaces).
// Space-joining the chunks reproduces the whitespace-normalized input.
func Chunk(text string, maxWords, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWords < 1 {
		maxWords = 1
	}
	var (
		chunks []string
		cur    []string
		curLen int
	)
	flush := func() {
		if len(cur) > 0 {
			chunks = append(chunks, strings.Join(cur, " "))
			cur = nil
			curLen = 0
		}
	}
	for _, w := range words {
		wl := len([]rune(w))
		next := curLen + wl
		if curLen > 0 {
			next++ // joining space
		}
		if len(cur) > 0 && (len(cur) >= maxWords || next > maxChars) {
			flush()
			next = wl
		}
		cur = append(cur, w)
		curLen = next
	}
	flush()
	return chunks
}
