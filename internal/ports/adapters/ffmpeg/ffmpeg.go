// Package ffmpeg adapts the ffmpeg/ffprobe binaries to the encoder-engine
// port: probing, window-scoped audio extraction, silence analysis, and the
// final scale/crop/burn encode with incremental progress.
package ffmpeg

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"clipshort/internal/domain/subtitles"
	"clipshort/internal/ports"
	"clipshort/internal/types"
)

// Audio the speech engine expects: mono, low fixed sample rate.
const (
	audioChannels   = "1"
	audioSampleRate = "16000"
)

// silencedetect tuning for the leading-silence probe.
const (
	silenceNoiseDB = "-30dB"
	silenceMinSec  = "0.3"
	// leadingSilenceMaxStart is how far from 0 a silence may begin and still
	// count as leading.
	leadingSilenceMaxStart = 0.25
)

var (
	reSilenceStart = regexp.MustCompile(`silence_start:\s*(-?[\d.]+)`)
	reSilenceEnd   = regexp.MustCompile(`silence_end:\s*([\d.]+)`)
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

func (a *Adapter) ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return sec, nil
}

func (a *Adapter) ExtractAudioWindow(ctx context.Context, sourcePath string, win types.SelectionWindow, outWav string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", fmtSeconds(win.Start),
		"-t", fmtSeconds(win.Duration),
		"-i", sourcePath,
		"-vn",
		"-sn",
		"-dn",
		"-ac", audioChannels,
		"-ar", audioSampleRate,
		"-c:a", "pcm_s16le",
		outWav,
	)
	if b, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w\n%s", err, strings.TrimSpace(string(b)))
	}
	return nil
}

// DetectLeadingSilence runs silencedetect over the extracted audio and
// returns the end of a silence that begins at (or next to) zero. Audio that
// opens with speech yields 0.
func (a *Adapter) DetectLeadingSilence(ctx context.Context, wavPath string) (float64, error) {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-hide_banner",
		"-i", wavPath,
		"-af", "silencedetect=noise="+silenceNoiseDB+":d="+silenceMinSec,
		"-f", "null", "-",
	)
	// silencedetect writes to stderr; ffmpeg may exit non-zero even when the
	// analysis output is usable, so the output is parsed either way.
	b, err := cmd.CombinedOutput()
	if len(b) == 0 && err != nil {
		return 0, fmt.Errorf("ffmpeg silencedetect: %w", err)
	}
	return parseLeadingSilence(string(b)), nil
}

// parseLeadingSilence pulls the end of the opening silence out of
// silencedetect's diagnostics. Silences that begin later than the leading
// tolerance don't count, and neither does an absent end marker.
func parseLeadingSilence(out string) float64 {
	ms := reSilenceStart.FindStringSubmatch(out)
	me := reSilenceEnd.FindStringSubmatch(out)
	if ms == nil || me == nil {
		return 0
	}
	start, err := strconv.ParseFloat(ms[1], 64)
	if err != nil || start > leadingSilenceMaxStart {
		return 0
	}
	end, err := strconv.ParseFloat(me[1], 64)
	if err != nil || end <= 0 {
		return 0
	}
	return end
}

// Encode performs the single encoder run: seek to the window, scale to cover
// the vertical canvas, center-crop, optionally burn the subtitle document,
// and re-encode with fixed codecs. Progress percentages stream out of the
// diagnostic output as it arrives.
func (a *Adapter) Encode(ctx context.Context, req ports.EncodeRequest) error {
	filters := chain{
		scaleCover{w: subtitles.CanvasWidth, h: subtitles.CanvasHeight},
		centerCrop{w: subtitles.CanvasWidth, h: subtitles.CanvasHeight},
	}
	if req.SubtitlePath != "" {
		filters = append(filters, burnSubtitles{path: req.SubtitlePath})
	}

	args := []string{
		"-y",
		"-hide_banner",
		"-ss", fmtSeconds(req.Window.Start),
		"-i", req.SourcePath,
		"-t", fmtSeconds(req.Window.Duration),
		"-vf", filters.render(),
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "18",
		"-c:a", "aac",
		"-b:a", "192k",
		"-af", "aresample=async=1",
		"-avoid_negative_ts", "make_zero",
		req.OutputPath,
	}
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	parser := progressParser{maxSec: req.Window.Duration}
	var tail []string
	sc := bufio.NewScanner(stderr)
	sc.Split(scanStatusLines)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) != "" {
			tail = append(tail, line)
			if len(tail) > 12 {
				tail = tail[1:]
			}
		}
		if pct, ok := parser.feed(line); ok && req.OnProgress != nil {
			req.OnProgress(pct)
		}
	}

	scanErr := sc.Err()

	if err := cmd.Wait(); err != nil {
		// a failed run must not leave a partial file at the output path
		_ = os.Remove(req.OutputPath)
		detail := strings.Join(tail, "\n")
		if scanErr != nil {
			detail = strings.TrimSpace(detail + "\ndiagnostic stream: " + scanErr.Error())
		}
		return &ports.EncodingError{Err: err, Detail: detail}
	}
	if req.OnProgress != nil {
		req.OnProgress(100)
	}
	return nil
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

var _ ports.VideoTool = (*Adapter)(nil)
