package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"clipshort/internal/config"
	"clipshort/internal/pipeline"
)

func run(cmd *cobra.Command, input string) error {
	flags := cmd.Flags()
	cfgPath, _ := flags.GetString("config")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	output, _ := flags.GetString("output")

	verbose, _ := flags.GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Hour)
	defer cancel()

	tty := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	progress := newProgressPrinter(os.Stderr, tty)

	pcfg := pipeline.Config{
		SourcePath: absIn,
		OutputPath: output,
		Settings:   cfg,
		Logger:     logger,
		OnProgress: progress.update,
	}
	if err := pcfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	res, err := pipeline.Run(ctx, pcfg)
	progress.finish()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(res))
	return nil
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("duration") {
		cfg.TargetDurationSec, _ = flags.GetInt("duration")
	}
	if flags.Changed("no-captions") {
		noCaptions, _ := flags.GetBool("no-captions")
		cfg.Captions.Burn = !noCaptions
	}
	if flags.Changed("style") {
		cfg.Captions.Style, _ = flags.GetString("style")
	}
	if flags.Changed("position") {
		cfg.Captions.Position, _ = flags.GetString("position")
	}
	if flags.Changed("offset-ms") {
		cfg.Captions.OffsetMs, _ = flags.GetInt("offset-ms")
	}
	if flags.Changed("auto-offset") {
		cfg.Captions.AutoOffset, _ = flags.GetBool("auto-offset")
	}
	if flags.Changed("speed") {
		cfg.Captions.SpeedPercent, _ = flags.GetInt("speed")
	}
	if flags.Changed("lang") {
		cfg.Speech.Language, _ = flags.GetString("lang")
	}
	if flags.Changed("model") {
		cfg.Speech.Model, _ = flags.GetString("model")
	}
	if flags.Changed("accelerator") {
		cfg.Speech.UseAccelerator, _ = flags.GetBool("accelerator")
	}
}
