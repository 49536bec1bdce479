package config

import (
	"fmt"
	"strings"
)

var speechModels = map[string]bool{
	"tiny":   true,
	"base":   true,
	"small":  true,
	"medium": true,
	"large":  true,
}

var captionStyles = map[string]bool{
	"clean":  true,
	"neon":   true,
	"boxed":  true,
	"punchy": true,
}

// Validate checks every setting against its allowed range. It reports the
// first violation so the CLI can surface one actionable message.
func (c Config) Validate() error {
	if c.TargetDurationSec < 15 || c.TargetDurationSec > 60 {
		return fmt.Errorf("target_duration_sec must be in 15..60, got %d", c.TargetDurationSec)
	}
	if !captionStyles[c.Captions.Style] {
		return fmt.Errorf("captions.style must be one of clean|neon|boxed|punchy, got %q", c.Captions.Style)
	}
	if c.Captions.Size <= 0 {
		return fmt.Errorf("captions.size must be > 0, got %d", c.Captions.Size)
	}
	switch c.Captions.Position {
	case "bottom", "middle":
	default:
		return fmt.Errorf("captions.position must be bottom or middle, got %q", c.Captions.Position)
	}
	if c.Captions.MaxWords < 1 {
		return fmt.Errorf("captions.max_words must be >= 1, got %d", c.Captions.MaxWords)
	}
	if c.Captions.MaxChars < 4 {
		return fmt.Errorf("captions.max_chars must be >= 4, got %d", c.Captions.MaxChars)
	}
	if c.Captions.OffsetMs < -1000 || c.Captions.OffsetMs > 1000 {
		return fmt.Errorf("captions.offset_ms must be in -1000..1000, got %d", c.Captions.OffsetMs)
	}
	if c.Captions.SpeedPercent < 80 || c.Captions.SpeedPercent > 140 {
		return fmt.Errorf("captions.speed_percent must be in 80..140, got %d", c.Captions.SpeedPercent)
	}
	if c.Captions.MinWordDurMs < 50 || c.Captions.MinWordDurMs > 300 {
		return fmt.Errorf("captions.min_word_duration_ms must be in 50..300, got %d", c.Captions.MinWordDurMs)
	}
	if strings.TrimSpace(c.Speech.Language) == "" {
		return fmt.Errorf("speech.language must be a language code or \"auto\"")
	}
	if !speechModels[c.Speech.Model] {
		return fmt.Errorf("speech.model must be one of tiny|base|small|medium|large, got %q", c.Speech.Model)
	}
	if strings.TrimSpace(c.Speech.ModelPath) == "" {
		return fmt.Errorf("speech.model_path is required")
	}
	return nil
}
