// Package subtitles renders caption events into an ASS document the encoder
// burns in.
package subtitles

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"clipshort/internal/types"
)

// Canvas must match the encoder's final crop, or burned captions land at the
// wrong scale.
const (
	CanvasWidth  = 1080
	CanvasHeight = 1920
)

const styleName = "Caption"

// ASS alignment codes (numpad layout).
const (
	alignBottomCenter = 2
	alignMiddleCenter = 5
)

var reOverride = regexp.MustCompile(`\{[^}]*\}`)

// Build renders events into a complete ASS document using one named style.
// position is "bottom" or "middle"; anything else falls back to bottom.
func Build(events []types.CaptionEvent, style Style, position string, size int) string {
	sorted := make([]types.CaptionEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	p := style.Profile(size)

	var b strings.Builder
	writeHeader(&b, p, alignment(position))
	b.WriteString("\n[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, ev := range sorted {
		text := sanitizeASS(ev.Text)
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,%s,,0,0,0,,%s\n",
			assTime(dur(ev.Start)), assTime(dur(ev.End)), styleName, text)
	}
	return b.String()
}

func alignment(position string) int {
	switch position {
	case "middle":
		return alignMiddleCenter
	default:
		return alignBottomCenter
	}
}

func writeHeader(b *strings.Builder, p Profile, align int) {
	fmt.Fprintf(b, `[Script Info]
ScriptType: v4.00+
PlayResX: %d
PlayResY: %d
ScaledBorderAndShadow: yes

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: %s,%s,%d,%s,&H00FFFFFF,%s,%s,%d,0,0,0,100,100,0,0,%d,%d,%d,%d,80,80,120,1
`,
		CanvasWidth, CanvasHeight,
		styleName, p.Font, p.Size, p.PrimaryColour, p.OutlineColour, p.BackColour,
		p.Bold, p.BorderStyle, p.Outline, p.Shadow, align)
}

func assTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hs := int(d / time.Hour)
	d -= time.Duration(hs) * time.Hour
	ms := int(d / time.Minute)
	d -= time.Duration(ms) * time.Minute
	s := int(d / time.Second)
	d -= time.Duration(s) * time.Second
	cs := int(d / (10 * time.Millisecond))
	return fmt.Sprintf("%d:%02d:%02d.%02d", hs, ms, s, cs)
}

// sanitizeASS removes residual override blocks and defuses characters the
// renderer would treat as directives.
func sanitizeASS(s string) string {
	s = reOverride.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	return strings.TrimSpace(s)
}

func dur(sec float64) time.Duration { return time.Duration(sec * float64(time.Second)) }
