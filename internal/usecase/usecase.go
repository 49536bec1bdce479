// Package usecase runs one clip pipeline: resolve the selection window,
// transcribe, normalize, remap into caption events, emit the subtitle
// document, and encode. Stages are strictly sequential.
package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"clipshort/internal/config"
	"clipshort/internal/domain/captions"
	"clipshort/internal/domain/subtitles"
	"clipshort/internal/domain/transcript"
	"clipshort/internal/domain/window"
	"clipshort/internal/ports"
	"clipshort/internal/types"
)

// Progress milestones; the encode consumes the remainder up to 100.
const (
	pctWindow     = 5
	pctExtracted  = 15
	pctTranscribe = 30
	pctCaptions   = 45
	pctEncode     = 55
)

type Deps struct {
	Video  ports.VideoTool
	Speech ports.SpeechEngine
	Window window.Resolver
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	SourcePath string
	OutputPath string
	// WorkDir is the run workspace. Run owns it: every artifact created
	// there is deleted on every exit path, success or not.
	WorkDir    string
	Settings   config.Config
	OnProgress types.ProgressFunc
}

func (u Usecase) Run(ctx context.Context, in Input) (types.Result, error) {
	report := in.OnProgress
	if report == nil {
		report = func(int, string) {}
	}
	// cleanup errors never mask the run's outcome
	defer func() { _ = os.RemoveAll(in.WorkDir) }()

	report(0, "probing source")
	srcDur, err := u.d.Video.ProbeDuration(ctx, in.SourcePath)
	if err != nil {
		return types.Result{}, fmt.Errorf("probe source: %w", err)
	}
	win := u.d.Window.Resolve(srcDur, float64(in.Settings.TargetDurationSec))
	report(pctWindow, fmt.Sprintf("selected window %.1fs-%.1fs", win.Start, win.End()))

	var (
		subtitlePath string
		eventCount   int
	)
	if in.Settings.Captions.Burn {
		subtitlePath, eventCount, err = u.buildCaptions(ctx, in, win, report)
		if err != nil {
			return types.Result{}, err
		}
	}

	report(pctEncode, "encoding clip")
	err = u.d.Video.Encode(ctx, ports.EncodeRequest{
		SourcePath:   in.SourcePath,
		Window:       win,
		OutputPath:   in.OutputPath,
		SubtitlePath: subtitlePath,
		OnProgress: func(enginePct float64) {
			pct := pctEncode + int(enginePct*(100-pctEncode)/100)
			if pct > 100 {
				pct = 100
			}
			report(pct, "encoding clip")
		},
	})
	if err != nil {
		return types.Result{}, err
	}

	report(100, "done")
	return types.Result{
		OutputPath:    in.OutputPath,
		Window:        win,
		CaptionEvents: eventCount,
		CaptionsBurnt: subtitlePath != "",
	}, nil
}

// buildCaptions runs the speech stages and writes the ASS document into the
// workspace, returning its path and the number of caption events.
func (u Usecase) buildCaptions(ctx context.Context, in Input, win types.SelectionWindow, report types.ProgressFunc) (string, int, error) {
	set := in.Settings

	wav := filepath.Join(in.WorkDir, "audio.wav")
	report(pctWindow, "extracting audio")
	if err := u.d.Video.ExtractAudioWindow(ctx, in.SourcePath, win, wav); err != nil {
		return "", 0, fmt.Errorf("extract audio: %w", err)
	}
	report(pctExtracted, "transcribing audio")

	artifacts, err := u.d.Speech.Transcribe(ctx, ports.TranscribeRequest{
		AudioPath: wav,
		WorkDir:   in.WorkDir,
		Language:  set.Speech.Language,
		WordLevel: set.Captions.WordLevel,
		OnMessage: func(msg string) { report(pctTranscribe, msg) },
	})
	if err != nil {
		return "", 0, err
	}

	units, err := loadUnits(artifacts, func(msg string) { report(pctCaptions, msg) })
	if err != nil {
		return "", 0, err
	}
	report(pctCaptions, "building captions")

	autoOffset := 0.0
	if set.Captions.AutoOffset {
		off, err := u.d.Video.DetectLeadingSilence(ctx, wav)
		if err != nil {
			report(pctCaptions, "silence analysis failed, captions keep original timing")
		} else {
			autoOffset = off
		}
	}

	events := captions.Remap(units, win, captions.RemapOptions{
		ManualOffsetMs: set.Captions.OffsetMs,
		AutoOffsetSec:  autoOffset,
		SpeedPercent:   set.Captions.SpeedPercent,
		MinDurationSec: float64(set.Captions.MinWordDurMs) / 1000,
		MaxWords:       set.Captions.MaxWords,
		MaxChars:       set.Captions.MaxChars,
	})

	doc := subtitles.Build(events, subtitles.ParseStyle(set.Captions.Style), set.Captions.Position, set.Captions.Size)
	path := filepath.Join(in.WorkDir, "captions.ass")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", 0, fmt.Errorf("write subtitle document: %w", err)
	}
	return path, len(events), nil
}

// unitProvider is one candidate transcript source. Providers are tried in
// order and the first that yields units wins; the rest are ignored.
type unitProvider struct {
	name string
	path string
	load func(path string) ([]types.TimedUnit, error)
}

// loadUnits resolves the canonical timed units from whichever artifact the
// transcription run produced, degrading from word timing to token data to
// subtitle lines. Only exhausting every provider is fatal.
func loadUnits(a types.TranscriptArtifacts, onMessage func(string)) ([]types.TimedUnit, error) {
	providers := []unitProvider{
		{name: "word timing", path: a.WordTimingPath, load: loadWordLines},
		{name: "token data", path: a.TokenDataPath, load: loadTokenJSON},
		{name: "subtitle lines", path: a.LineSubtitlePath, load: loadSRT},
	}
	for _, p := range providers {
		if p.path == "" {
			continue
		}
		units, err := p.load(p.path)
		if err != nil || len(units) == 0 {
			if onMessage != nil {
				onMessage(fmt.Sprintf("%s unusable, trying next transcript source", p.name))
			}
			continue
		}
		return transcript.Normalize(units), nil
	}
	return nil, &ports.MissingArtifactError{Artifact: "transcript", Dir: filepath.Dir(a.LineSubtitlePath)}
}

func loadWordLines(path string) ([]types.TimedUnit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return transcript.ParseWordLines(f)
}

func loadTokenJSON(path string) ([]types.TimedUnit, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return transcript.ParseTokenJSON(b)
}

func loadSRT(path string) ([]types.TimedUnit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return transcript.ParseSRT(f)
}
