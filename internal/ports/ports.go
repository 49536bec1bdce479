package ports

import (
	"context"

	"clipshort/internal/types"
)

// EncodeRequest describes one encoder invocation.
type EncodeRequest struct {
	SourcePath   string
	Window       types.SelectionWindow
	OutputPath   string
	SubtitlePath string // empty disables caption burn-in
	// OnProgress receives the encoder's own completion percentage (0..100)
	// as its diagnostic stream is consumed.
	OnProgress func(percent float64)
}

// TranscribeRequest describes one speech-engine invocation over an already
// extracted audio window.
type TranscribeRequest struct {
	AudioPath string
	WorkDir   string
	Language  string
	WordLevel bool
	// OnMessage receives human-readable notes, e.g. fallback degradations.
	OnMessage func(message string)
}

// VideoTool is the encoder-engine port: probing, audio extraction, silence
// analysis, and the final encode.
type VideoTool interface {
	ProbeDuration(ctx context.Context, path string) (float64, error)
	ExtractAudioWindow(ctx context.Context, sourcePath string, win types.SelectionWindow, outWav string) error
	// DetectLeadingSilence returns the end of the first leading silence in
	// seconds, or 0 when the audio opens with speech.
	DetectLeadingSilence(ctx context.Context, wavPath string) (float64, error)
	Encode(ctx context.Context, req EncodeRequest) error
}

// SpeechEngine is the transcription port.
type SpeechEngine interface {
	Transcribe(ctx context.Context, req TranscribeRequest) (types.TranscriptArtifacts, error)
}
