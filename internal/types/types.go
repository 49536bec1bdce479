package types

// TimedUnit is one spoken token or subtitle block on the source timeline.
// Times are seconds from the start of the transcribed audio.
type TimedUnit struct {
	Start float64
	End   float64
	Text  string
}

// SelectionWindow is the source sub-range kept in the output clip.
type SelectionWindow struct {
	Start    float64
	Duration float64
}

// End returns the exclusive end of the window on the source timeline.
func (w SelectionWindow) End() float64 { return w.Start + w.Duration }

// CaptionEvent is one renderable subtitle line in output-relative time.
type CaptionEvent struct {
	Start float64
	End   float64
	Text  string
}

// TranscriptArtifacts holds the files a transcription run produced. Only
// LineSubtitlePath is guaranteed; the word-level paths are empty when the
// engine did not emit them.
type TranscriptArtifacts struct {
	LineSubtitlePath string
	WordTimingPath   string
	TokenDataPath    string
	AudioPath        string
}

// ProgressFunc receives pipeline progress as (percent 0..100, message).
type ProgressFunc func(percent int, message string)

// Result is what a successful pipeline run hands back to the caller.
type Result struct {
	OutputPath    string
	Window        SelectionWindow
	CaptionEvents int
	CaptionsBurnt bool
}
