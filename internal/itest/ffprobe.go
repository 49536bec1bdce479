//go:build integration

package itest

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// probeDurationSeconds asks ffprobe for the container duration of a rendered
// clip.
func probeDurationSeconds(path string) (float64, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("probe clip: %w\n%s", err, string(out))
	}
	raw := strings.TrimSpace(string(out))
	sec, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("probe clip: parse %q: %w", raw, err)
	}
	return sec, nil
}
