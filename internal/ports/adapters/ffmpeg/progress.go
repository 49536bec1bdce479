package ffmpeg

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
)

// ffmpeg reports "Duration: HH:MM:SS.cc" once per input and then repeats
// "time=HH:MM:SS.cc" on its status line as the encode advances.
var (
	reDuration = regexp.MustCompile(`Duration:\s*(\d+):(\d{2}):(\d{2})\.(\d+)`)
	reTime     = regexp.MustCompile(`time=\s*(\d+):(\d{2}):(\d{2})\.(\d+)`)
)

// progressParser turns the encoder's diagnostic lines into percentages. The
// first duration marker seen fixes the denominator; later time markers map
// onto it. maxSec caps the denominator, since the encode is limited to the
// selection window while the duration marker describes the whole input.
type progressParser struct {
	maxSec   float64
	totalSec float64
}

// feed consumes one diagnostic line and reports (percent, true) when the
// line advanced the encode position.
func (p *progressParser) feed(line string) (float64, bool) {
	if p.totalSec == 0 {
		if m := reDuration.FindStringSubmatch(line); m != nil {
			p.totalSec = clockSeconds(m[1], m[2], m[3], m[4])
			if p.maxSec > 0 && p.totalSec > p.maxSec {
				p.totalSec = p.maxSec
			}
			return 0, false
		}
	}
	m := reTime.FindStringSubmatch(line)
	if m == nil || p.totalSec <= 0 {
		return 0, false
	}
	cur := clockSeconds(m[1], m[2], m[3], m[4])
	pct := cur / p.totalSec * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct, true
}

func clockSeconds(h, m, s, frac string) float64 {
	hi, _ := strconv.Atoi(h)
	mi, _ := strconv.Atoi(m)
	si, _ := strconv.Atoi(s)
	// fraction may be centiseconds or longer; normalize by digit count
	fi, _ := strconv.Atoi(frac)
	div := 1.0
	for range frac {
		div *= 10
	}
	return float64(hi*3600+mi*60+si) + float64(fi)/div
}

// scanStatusLines splits on both LF and CR so ffmpeg's carriage-return
// status updates arrive as they are written, not when the line finally ends.
func scanStatusLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var _ bufio.SplitFunc = scanStatusLines
