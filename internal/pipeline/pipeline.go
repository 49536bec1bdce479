// Package pipeline wires the adapters into the clip usecase and owns run
// workspace naming.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"clipshort/internal/config"
	"clipshort/internal/domain/window"
	"clipshort/internal/ports/adapters/ffmpeg"
	"clipshort/internal/ports/adapters/whispercpp"
	"clipshort/internal/types"
	"clipshort/internal/usecase"
)

type Config struct {
	SourcePath string
	// OutputPath overrides the derived <out_dir>/<name>-short.mp4 location.
	OutputPath string
	Settings   config.Config
	Logger     *slog.Logger
	OnProgress types.ProgressFunc
}

func (c Config) Validate() error {
	if c.SourcePath == "" {
		return errors.New("source path is empty")
	}
	if _, err := os.Stat(c.SourcePath); err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	return c.Settings.Validate()
}

// Run executes one full pipeline invocation. The run either completes with
// an output file or fails with no partial output left behind.
func Run(ctx context.Context, cfg Config) (types.Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	set := cfg.Settings
	outputPath := cfg.OutputPath
	if outputPath == "" {
		name := normalizePathSegment(stem(cfg.SourcePath))
		if name == "" {
			name = "clip"
		}
		outputPath = filepath.Join(set.Paths.OutDir, name+"-short.mp4")
	}
	// output dir before the workspace: a setup failure leaves nothing behind
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return types.Result{}, fmt.Errorf("create output dir: %w", err)
	}

	workDir := buildWorkspaceDir(set.Paths.CacheDir, cfg.SourcePath, time.Now().UTC())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return types.Result{}, fmt.Errorf("create workspace: %w", err)
	}
	logger.Info("workspace ready", "dir", workDir)

	uc := usecase.New(usecase.Deps{
		Video:  ffmpeg.New(set.Paths.FFmpeg, set.Paths.FFprobe),
		Speech: whispercpp.New(set.Speech.BinaryPath, set.Speech.ModelPath, set.Speech.UseAccelerator),
		Window: window.FixedStart{},
	})

	res, err := uc.Run(ctx, usecase.Input{
		SourcePath: cfg.SourcePath,
		OutputPath: outputPath,
		WorkDir:    workDir,
		Settings:   set,
		OnProgress: cfg.OnProgress,
	})
	if err != nil {
		logger.Error("run failed", "error", err)
		return types.Result{}, err
	}
	logger.Info("run finished", "output", res.OutputPath, "caption_events", res.CaptionEvents)
	return res, nil
}

// buildWorkspaceDir names the run workspace <name>-<stamp>-<uuid8>. The uuid
// keeps concurrent runs on the same source within one time quantum from
// colliding.
func buildWorkspaceDir(cacheRoot, sourcePath string, now time.Time) string {
	name := normalizePathSegment(stem(sourcePath))
	if name == "" {
		name = "input"
	}
	ts := now.UTC().Format("20060102-150405Z")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return filepath.Join(cacheRoot, "runs", fmt.Sprintf("%s-%s-%s", name, ts, suffix))
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
