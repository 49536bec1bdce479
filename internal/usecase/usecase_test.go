package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clipshort/internal/config"
	"clipshort/internal/domain/window"
	"clipshort/internal/ports"
	"clipshort/internal/types"
)

type fakeVideo struct {
	probeDur  float64
	silence   float64
	encodeErr error

	encodeReq *ports.EncodeRequest
	assDoc    string
}

func (f *fakeVideo) ProbeDuration(context.Context, string) (float64, error) {
	return f.probeDur, nil
}

func (f *fakeVideo) ExtractAudioWindow(_ context.Context, _ string, _ types.SelectionWindow, outWav string) error {
	return os.WriteFile(outWav, []byte("wav"), 0o644)
}

func (f *fakeVideo) DetectLeadingSilence(context.Context, string) (float64, error) {
	return f.silence, nil
}

func (f *fakeVideo) Encode(_ context.Context, req ports.EncodeRequest) error {
	f.encodeReq = &req
	if req.SubtitlePath != "" {
		b, err := os.ReadFile(req.SubtitlePath)
		if err != nil {
			return err
		}
		f.assDoc = string(b)
	}
	if f.encodeErr != nil {
		return f.encodeErr
	}
	if req.OnProgress != nil {
		req.OnProgress(50)
		req.OnProgress(100)
	}
	return nil
}

type fakeSpeech struct {
	called    bool
	err       error
	artifacts func(workDir string) types.TranscriptArtifacts
}

func (f *fakeSpeech) Transcribe(_ context.Context, req ports.TranscribeRequest) (types.TranscriptArtifacts, error) {
	f.called = true
	if f.err != nil {
		return types.TranscriptArtifacts{}, f.err
	}
	return f.artifacts(req.WorkDir), nil
}

func writeFileT(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func wordArtifacts(t *testing.T, body string) func(string) types.TranscriptArtifacts {
	return func(workDir string) types.TranscriptArtifacts {
		return types.TranscriptArtifacts{
			LineSubtitlePath: writeFileT(t, filepath.Join(workDir, "transcript.srt"), "1\n00:00:00,000 --> 00:00:01,000\nfallback\n\n"),
			WordTimingPath:   writeFileT(t, filepath.Join(workDir, "transcript.wts"), body),
		}
	}
}

func testInput(t *testing.T, set config.Config) Input {
	t.Helper()
	tmp := t.TempDir()
	workDir := filepath.Join(tmp, "work")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return Input{
		SourcePath: filepath.Join(tmp, "in.mp4"),
		OutputPath: filepath.Join(tmp, "out.mp4"),
		WorkDir:    workDir,
		Settings:   set,
	}
}

func TestRun_WithCaptions(t *testing.T) {
	t.Parallel()

	video := &fakeVideo{probeDur: 120}
	speech := &fakeSpeech{artifacts: wordArtifacts(t, "0.00 0.40 hello\n0.40 0.90 world\n")}
	uc := New(Deps{Video: video, Speech: speech, Window: window.FixedStart{}})

	in := testInput(t, config.Default())
	var lastPct int
	in.OnProgress = func(pct int, _ string) {
		if pct < lastPct {
			t.Fatalf("progress went backwards: %d after %d", pct, lastPct)
		}
		lastPct = pct
	}

	res, err := uc.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !speech.called {
		t.Fatal("speech engine was not invoked")
	}
	if video.encodeReq == nil || video.encodeReq.SubtitlePath == "" {
		t.Fatal("encode must receive the subtitle document path")
	}
	if !strings.Contains(video.assDoc, "hello") || !strings.Contains(video.assDoc, "world") {
		t.Fatalf("caption words missing from document:\n%s", video.assDoc)
	}
	if !strings.Contains(video.assDoc, "0:00:00.40,0:00:00.90") {
		t.Fatalf("word timing not preserved:\n%s", video.assDoc)
	}
	if res.CaptionEvents != 2 || !res.CaptionsBurnt {
		t.Fatalf("unexpected result: %+v", res)
	}
	if lastPct != 100 {
		t.Fatalf("progress never reached 100, stopped at %d", lastPct)
	}
	if _, err := os.Stat(in.WorkDir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("workspace must be removed after a successful run: %v", err)
	}
}

func TestRun_NoCaptionsSkipsSpeech(t *testing.T) {
	t.Parallel()

	video := &fakeVideo{probeDur: 120}
	speech := &fakeSpeech{}
	uc := New(Deps{Video: video, Speech: speech, Window: window.FixedStart{}})

	set := config.Default()
	set.Captions.Burn = false
	res, err := uc.Run(context.Background(), testInput(t, set))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if speech.called {
		t.Fatal("speech engine must not run when captions are off")
	}
	if video.encodeReq.SubtitlePath != "" {
		t.Fatal("no subtitle path expected")
	}
	if res.CaptionsBurnt || res.CaptionEvents != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRun_EncodeFailureCleansWorkspace(t *testing.T) {
	t.Parallel()

	video := &fakeVideo{probeDur: 120, encodeErr: &ports.EncodingError{Err: errors.New("exit status 1")}}
	speech := &fakeSpeech{artifacts: wordArtifacts(t, "0.00 0.40 hi\n")}
	uc := New(Deps{Video: video, Speech: speech, Window: window.FixedStart{}})

	in := testInput(t, config.Default())
	_, err := uc.Run(context.Background(), in)
	var ee *ports.EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EncodingError, got %v", err)
	}
	if _, statErr := os.Stat(in.WorkDir); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("workspace must be removed after a failed run: %v", statErr)
	}
}

func TestRun_TranscriptionFailureIsFatal(t *testing.T) {
	t.Parallel()

	video := &fakeVideo{probeDur: 120}
	speech := &fakeSpeech{err: &ports.TranscriptionError{Err: errors.New("exit status 1")}}
	uc := New(Deps{Video: video, Speech: speech, Window: window.FixedStart{}})

	_, err := uc.Run(context.Background(), testInput(t, config.Default()))
	var te *ports.TranscriptionError
	if !errors.As(err, &te) {
		t.Fatalf("expected TranscriptionError, got %v", err)
	}
	if video.encodeReq != nil {
		t.Fatal("encode must not run after a fatal transcription failure")
	}
}

func TestRun_AutoOffsetShiftsCaptions(t *testing.T) {
	t.Parallel()

	video := &fakeVideo{probeDur: 120, silence: 0.5}
	speech := &fakeSpeech{artifacts: wordArtifacts(t, "0.00 0.40 hello\n")}
	uc := New(Deps{Video: video, Speech: speech, Window: window.FixedStart{}})

	set := config.Default()
	set.Captions.AutoOffset = true
	_, err := uc.Run(context.Background(), testInput(t, set))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(video.assDoc, "0:00:00.50,0:00:00.90") {
		t.Fatalf("auto offset not applied:\n%s", video.assDoc)
	}
}

func TestLoadUnits_FallsBackToSubtitleLines(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	a := types.TranscriptArtifacts{
		WordTimingPath:   writeFileT(t, filepath.Join(tmp, "t.wts"), "garbage line\n"),
		LineSubtitlePath: writeFileT(t, filepath.Join(tmp, "t.srt"), "1\n00:00:00,000 --> 00:00:01,000\nhello\n\n"),
	}
	var messages []string
	units, err := loadUnits(a, func(m string) { messages = append(messages, m) })
	if err != nil {
		t.Fatalf("fallback must succeed: %v", err)
	}
	if len(units) != 1 || units[0].Text != "hello" {
		t.Fatalf("unexpected units: %+v", units)
	}
	if len(messages) != 1 || !strings.Contains(messages[0], "word timing") {
		t.Fatalf("degradation must be reported, got %q", messages)
	}
}

func TestLoadUnits_NothingUsable(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	a := types.TranscriptArtifacts{
		LineSubtitlePath: writeFileT(t, filepath.Join(tmp, "t.srt"), "no time ranges here\n"),
	}
	_, err := loadUnits(a, nil)
	var me *ports.MissingArtifactError
	if !errors.As(err, &me) {
		t.Fatalf("expected MissingArtifactError, got %v", err)
	}
}
