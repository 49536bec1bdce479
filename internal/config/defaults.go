package config

const (
	defaultTargetDurationSec = 30
	defaultCaptionStyle      = "clean"
	defaultCaptionSize       = 72
	defaultCaptionPosition   = "bottom"
	defaultCaptionMaxWords   = 6
	defaultCaptionMaxChars   = 36
	defaultCaptionSpeed      = 100
	defaultMinWordDurMs      = 120
	defaultSpeechLanguage    = "auto"
	defaultSpeechModel       = "base"
	defaultSpeechBinary      = ".cache/bin/whisper-cli"
	defaultSpeechModelPath   = ".cache/models/ggml-base.bin"
	defaultFFmpeg            = "ffmpeg"
	defaultFFprobe           = "ffprobe"
	defaultCacheDir          = ".cache"
	defaultOutDir            = "out"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TargetDurationSec: defaultTargetDurationSec,
		Captions: Captions{
			Burn:         true,
			Style:        defaultCaptionStyle,
			Size:         defaultCaptionSize,
			Position:     defaultCaptionPosition,
			MaxWords:     defaultCaptionMaxWords,
			MaxChars:     defaultCaptionMaxChars,
			WordLevel:    true,
			OffsetMs:     0,
			AutoOffset:   false,
			SpeedPercent: defaultCaptionSpeed,
			MinWordDurMs: defaultMinWordDurMs,
		},
		Speech: Speech{
			Language:   defaultSpeechLanguage,
			Model:      defaultSpeechModel,
			BinaryPath: defaultSpeechBinary,
			ModelPath:  defaultSpeechModelPath,
		},
		Paths: Paths{
			FFmpeg:   defaultFFmpeg,
			FFprobe:  defaultFFprobe,
			CacheDir: defaultCacheDir,
			OutDir:   defaultOutDir,
		},
	}
}
