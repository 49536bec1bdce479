// Package captions turns canonical timed units into output-relative caption
// events, bounded by word/character budgets.
package captions

import "clipshort/internal/types"

// RemapOptions tune the unit-to-event transformation.
type RemapOptions struct {
	// ManualOffsetMs shifts all events, user-chosen.
	ManualOffsetMs int
	// AutoOffsetSec shifts all events by the detected leading-silence end.
	AutoOffsetSec float64
	// SpeedPercent rescales event time for speed-changed output (100 = as-is).
	SpeedPercent int
	// MinDurationSec is the floor every event's visible duration is raised to.
	MinDurationSec float64
	// MaxWords and MaxChars bound each rendered caption chunk.
	MaxWords int
	MaxChars int
}

// Remap clips units to the selection window, rebases them to output-relative
// time, applies speed scaling and offsets, and splits over-long unit text
// into chunked events.
//
// A unit whose text chunks into N pieces has no per-word timing to lean on,
// so its output duration is divided into N equal slices. That is a deliberate
// approximation, not true word alignment.
func Remap(units []types.TimedUnit, win types.SelectionWindow, opts RemapOptions) []types.CaptionEvent {
	speed := opts.SpeedPercent
	if speed <= 0 {
		speed = 100
	}
	scale := 100.0 / float64(speed)
	offset := float64(opts.ManualOffsetMs)/1000 + opts.AutoOffsetSec

	var events []types.CaptionEvent
	for _, u := range units {
		if u.End <= win.Start || u.Start >= win.End() {
			continue
		}
		start := u.Start
		end := u.End
		if start < win.Start {
			start = win.Start
		}
		if end > win.End() {
			end = win.End()
		}
		start = (start-win.Start)*scale + offset
		end = (end-win.Start)*scale + offset
		if start < 0 {
			start = 0
		}
		if end < 0 {
			end = 0
		}

		chunks := Chunk(u.Text, opts.MaxWords, opts.MaxChars)
		if len(chunks) == 0 {
			continue
		}
		slice := (end - start) / float64(len(chunks))
		for i, text := range chunks {
			cs := start + slice*float64(i)
			ce := start + slice*float64(i+1)
			if ce-cs < opts.MinDurationSec {
				ce = cs + opts.MinDurationSec
			}
			events = append(events, types.CaptionEvent{Start: cs, End: ce, Text: text})
		}
	}
	return events
}
