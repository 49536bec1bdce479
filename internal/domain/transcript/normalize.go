// Package transcript converts the speech engine's raw artifacts into one
// canonical ordered sequence of timed text units.
package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"clipshort/internal/types"
)

var (
	reBracketMarker = regexp.MustCompile(`\[[^\]]*\]`)
	reBraceMarker   = regexp.MustCompile(`\{[^}]*\}`)
	reSRTTime       = regexp.MustCompile(`(\d+):(\d{2}):(\d{2})[,.](\d{1,3})\s*-->\s*(\d+):(\d{2}):(\d{2})[,.](\d{1,3})`)
)

// ParseWordLines reads "<start> <end> <text>" lines, one unit per line.
// Blank lines are skipped; text may contain spaces.
func ParseWordLines(r io.Reader) ([]types.TimedUnit, error) {
	var units []types.TimedUnit
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("word timing line %d: want \"start end text\", got %q", lineNo, sc.Text())
		}
		start, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("word timing line %d: parse start: %w", lineNo, err)
		}
		end, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("word timing line %d: parse end: %w", lineNo, err)
		}
		units = append(units, types.TimedUnit{
			Start: start,
			End:   end,
			Text:  strings.Join(fields[2:], " "),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word timing: %w", err)
	}
	return units, nil
}

// tokenDocument mirrors the engine's structured JSON output: segments under
// "transcription", each carrying tokens with millisecond offset pairs.
type tokenDocument struct {
	Transcription []struct {
		Text   string `json:"text"`
		Tokens []struct {
			Text    string `json:"text"`
			Offsets struct {
				From float64 `json:"from"`
				To   float64 `json:"to"`
			} `json:"offsets"`
		} `json:"tokens"`
	} `json:"transcription"`
}

// ParseTokenJSON reads the engine's token-level JSON. Non-speech marker
// tokens ("[_BEG_]" and friends) and bare punctuation tokens are discarded.
func ParseTokenJSON(b []byte) ([]types.TimedUnit, error) {
	var doc tokenDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse token data: %w", err)
	}
	var units []types.TimedUnit
	for _, seg := range doc.Transcription {
		for _, tok := range seg.Tokens {
			text := strings.TrimSpace(tok.Text)
			if text == "" || isMarkerToken(text) || isPunctuationOnly(text) {
				continue
			}
			units = append(units, types.TimedUnit{
				Start: tok.Offsets.From,
				End:   tok.Offsets.To,
				Text:  text,
			})
		}
	}
	return units, nil
}

// ParseSRT reads block-style line subtitles: an index line, a time range
// line, one or more text lines, and a blank separator.
func ParseSRT(r io.Reader) ([]types.TimedUnit, error) {
	var units []types.TimedUnit
	sc := bufio.NewScanner(r)
	var (
		inBlock    bool
		start, end float64
		textLines  []string
	)
	flush := func() {
		if inBlock && len(textLines) > 0 {
			units = append(units, types.TimedUnit{
				Start: start,
				End:   end,
				Text:  strings.Join(textLines, " "),
			})
		}
		inBlock = false
		textLines = nil
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			flush()
			continue
		}
		if m := reSRTTime.FindStringSubmatch(line); m != nil {
			start = srtSeconds(m[1], m[2], m[3], m[4])
			end = srtSeconds(m[5], m[6], m[7], m[8])
			inBlock = true
			continue
		}
		if !inBlock {
			// index line (or stray text before the first range)
			continue
		}
		textLines = append(textLines, line)
	}
	flush()
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read subtitles: %w", err)
	}
	return units, nil
}

// Normalize produces the canonical unit sequence: style/annotation markers
// stripped, empty units dropped, units ordered by start, and the timestamp
// scale heuristic applied.
//
// The scale heuristic treats all values as milliseconds when the maximum end
// exceeds 1000. This misreads genuinely long recordings (>1000s of
// second-based timings); it is kept as-is for compatibility with the
// engine's mixed output formats.
func Normalize(units []types.TimedUnit) []types.TimedUnit {
	out := make([]types.TimedUnit, 0, len(units))
	for _, u := range units {
		u.Text = CleanText(u.Text)
		if u.Text == "" {
			continue
		}
		if u.End < u.Start {
			u.End = u.Start
		}
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return scaleToSeconds(out)
}

// CleanText strips bracketed style/annotation markers and collapses the
// remaining whitespace.
func CleanText(s string) string {
	s = reBracketMarker.ReplaceAllString(s, "")
	s = reBraceMarker.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

func scaleToSeconds(units []types.TimedUnit) []types.TimedUnit {
	maxEnd := 0.0
	for _, u := range units {
		if u.End > maxEnd {
			maxEnd = u.End
		}
	}
	if maxEnd <= 1000 {
		return units
	}
	for i := range units {
		units[i].Start *= 0.001
		units[i].End *= 0.001
	}
	return units
}

func isMarkerToken(s string) bool {
	return strings.HasPrefix(s, "[_") && strings.HasSuffix(s, "]")
}

func isPunctuationOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func srtSeconds(h, m, s, ms string) float64 {
	hi, _ := strconv.Atoi(h)
	mi, _ := strconv.Atoi(m)
	si, _ := strconv.Atoi(s)
	// ms may be 1-3 digits; right-pad to milliseconds
	for len(ms) < 3 {
		ms += "0"
	}
	msi, _ := strconv.Atoi(ms)
	return float64(hi*3600+mi*60+si) + float64(msi)/1000
}
