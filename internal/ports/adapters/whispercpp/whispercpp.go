// Package whispercpp drives the whisper.cpp binary and recovers its output
// artifacts.
//
// Contract with the engine, given an output prefix P: P.srt holds line-based
// subtitles (always requested); when word-level output is requested, P.wts
// holds "<start> <end> <text>" word timing lines and P.json holds the
// token-level JSON. Word-level artifacts are best effort — their absence
// degrades, never fails.
package whispercpp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"clipshort/internal/ports"
	"clipshort/internal/types"
)

const artifactPrefix = "transcript"

// sigillSignature marks the known startup crash of accelerator builds on
// CPUs without the matching instruction set.
const sigillSignature = "illegal instruction"

type Adapter struct {
	bin         string
	model       string
	accelerator bool
}

func New(binPath, modelPath string, useAccelerator bool) *Adapter {
	return &Adapter{bin: binPath, model: modelPath, accelerator: useAccelerator}
}

func (a *Adapter) Transcribe(ctx context.Context, req ports.TranscribeRequest) (types.TranscriptArtifacts, error) {
	if _, err := os.Stat(a.bin); err != nil {
		return types.TranscriptArtifacts{}, &ports.ProvisioningError{Component: "speech engine binary", Path: a.bin}
	}
	if _, err := os.Stat(a.model); err != nil {
		return types.TranscriptArtifacts{}, &ports.ProvisioningError{Component: "speech model", Path: a.model}
	}

	prefix := filepath.Join(req.WorkDir, artifactPrefix)
	args := []string{
		"-m", a.model,
		"-f", req.AudioPath,
		"-of", prefix,
		"-osrt",
	}
	if lang := strings.TrimSpace(req.Language); lang != "" && lang != "auto" {
		args = append(args, "-l", lang)
	}
	if req.WordLevel {
		args = append(args, "-oj", "-owts")
	}
	if !a.accelerator {
		args = append(args, "-ng")
	}

	cmd := exec.CommandContext(ctx, a.bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return types.TranscriptArtifacts{}, transcriptionError(err, string(out))
	}

	artifacts := types.TranscriptArtifacts{AudioPath: req.AudioPath}

	srt := prefix + ".srt"
	if _, err := os.Stat(srt); err != nil {
		// engines have been seen writing next to the audio instead of the
		// requested prefix; take the freshest match before giving up
		recovered, ok := newestMatch(req.WorkDir, "*.srt")
		if !ok {
			return types.TranscriptArtifacts{}, &ports.MissingArtifactError{Artifact: "line subtitle", Dir: req.WorkDir}
		}
		notify(req, "line subtitles recovered from %s", filepath.Base(recovered))
		srt = recovered
	}
	artifacts.LineSubtitlePath = srt

	if req.WordLevel {
		if wts := prefix + ".wts"; fileExists(wts) {
			artifacts.WordTimingPath = wts
		} else {
			notify(req, "word timing unavailable, trying token data")
		}
		if tj := prefix + ".json"; fileExists(tj) {
			artifacts.TokenDataPath = tj
		} else if artifacts.WordTimingPath == "" {
			notify(req, "token data unavailable, captions fall back to subtitle lines")
		}
	}
	return artifacts, nil
}

func transcriptionError(err error, output string) error {
	te := &ports.TranscriptionError{Err: err, Output: output}
	if strings.Contains(strings.ToLower(output), sigillSignature) ||
		strings.Contains(strings.ToLower(err.Error()), sigillSignature) {
		te.Hint = "engine binary crashed at startup; rebuild it without accelerator support or disable use_accelerator"
	}
	return te
}

func notify(req ports.TranscribeRequest, format string, args ...any) {
	if req.OnMessage != nil {
		req.OnMessage(fmt.Sprintf(format, args...))
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// newestMatch returns the most recently modified file in dir matching the
// glob pattern.
func newestMatch(dir, pattern string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	best := ""
	var bestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); best == "" || mod > bestMod {
			best, bestMod = m, mod
		}
	}
	return best, best != ""
}

var _ ports.SpeechEngine = (*Adapter)(nil)
