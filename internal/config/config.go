package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Captions contains caption rendering and timing configuration.
type Captions struct {
	Burn         bool   `toml:"burn"`
	Style        string `toml:"style"`
	Size         int    `toml:"size"`
	Position     string `toml:"position"`
	MaxWords     int    `toml:"max_words"`
	MaxChars     int    `toml:"max_chars"`
	WordLevel    bool   `toml:"word_level"`
	OffsetMs     int    `toml:"offset_ms"`
	AutoOffset   bool   `toml:"auto_offset"`
	SpeedPercent int    `toml:"speed_percent"`
	MinWordDurMs int    `toml:"min_word_duration_ms"`
}

// Speech contains speech-engine configuration.
type Speech struct {
	Language       string `toml:"language"`
	Model          string `toml:"model"`
	UseAccelerator bool   `toml:"use_accelerator"`
	BinaryPath     string `toml:"binary_path"`
	ModelPath      string `toml:"model_path"`
}

// Paths contains tool and directory configuration.
type Paths struct {
	FFmpeg   string `toml:"ffmpeg"`
	FFprobe  string `toml:"ffprobe"`
	CacheDir string `toml:"cache_dir"`
	OutDir   string `toml:"out_dir"`
}

// Config is the full runtime configuration for one run. It is passed
// explicitly into the pipeline; nothing here is process-global.
type Config struct {
	TargetDurationSec int      `toml:"target_duration_sec"`
	Captions          Captions `toml:"captions"`
	Speech            Speech   `toml:"speech"`
	Paths             Paths    `toml:"paths"`
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error; callers get the defaults back.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
