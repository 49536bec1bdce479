package ffmpeg

import (
	"bufio"
	"math"
	"strings"
	"testing"
)

func TestProgressParser_DurationThenTime(t *testing.T) {
	p := progressParser{}
	if _, ok := p.feed("frame=1 time=00:00:01.00"); ok {
		t.Fatal("time marker before a duration marker must be ignored")
	}
	if _, ok := p.feed("  Duration: 00:00:20.00, start: 0.0, bitrate: 1 kb/s"); ok {
		t.Fatal("duration marker itself reports no progress")
	}
	pct, ok := p.feed("frame=120 fps=30 time=00:00:05.00 bitrate=1k speed=1x")
	if !ok || math.Abs(pct-25) > 1e-9 {
		t.Fatalf("expected 25%%, got %v ok=%v", pct, ok)
	}
}

func TestProgressParser_WindowCapsDenominator(t *testing.T) {
	p := progressParser{maxSec: 10}
	p.feed("Duration: 00:01:00.00")
	pct, ok := p.feed("time=00:00:05.00")
	if !ok || math.Abs(pct-50) > 1e-9 {
		t.Fatalf("expected 50%% against the window, got %v ok=%v", pct, ok)
	}
}

func TestProgressParser_ClampsOverrun(t *testing.T) {
	p := progressParser{maxSec: 10}
	p.feed("Duration: 00:00:10.00")
	pct, ok := p.feed("time=00:00:12.00")
	if !ok || pct != 100 {
		t.Fatalf("overrun must clamp to 100, got %v ok=%v", pct, ok)
	}
}

func TestScanStatusLines_SplitsCarriageReturns(t *testing.T) {
	in := "Duration: 00:00:10.00\ntime=00:00:02.00\rtime=00:00:04.00\rtail"
	sc := bufio.NewScanner(strings.NewReader(in))
	sc.Split(scanStatusLines)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	if lines[2] != "time=00:00:04.00" {
		t.Fatalf("carriage-return update not split: %q", lines[2])
	}
}

func TestClockSeconds_FractionDigits(t *testing.T) {
	if got := clockSeconds("0", "01", "01", "23"); math.Abs(got-61.23) > 1e-9 {
		t.Fatalf("centiseconds: got %v", got)
	}
	if got := clockSeconds("0", "00", "01", "500"); math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("milliseconds: got %v", got)
	}
}
