package ffmpeg

import (
	"fmt"
	"path/filepath"
	"strings"
)

// filter is one stage of the -vf chain. Stages are kept structured and only
// serialized to ffmpeg's filter grammar at the call boundary.
type filter interface {
	render() string
}

type chain []filter

func (c chain) render() string {
	parts := make([]string, 0, len(c))
	for _, f := range c {
		parts = append(parts, f.render())
	}
	return strings.Join(parts, ",")
}

// scaleCover scales so the target canvas is fully covered, preserving aspect.
type scaleCover struct {
	w, h int
}

func (f scaleCover) render() string {
	return fmt.Sprintf("scale=w=%d:h=%d:force_original_aspect_ratio=increase", f.w, f.h)
}

// centerCrop crops to the exact target resolution around the center.
type centerCrop struct {
	w, h int
}

func (f centerCrop) render() string {
	return fmt.Sprintf("crop=%d:%d", f.w, f.h)
}

// burnSubtitles overlays an ASS document onto the video.
type burnSubtitles struct {
	path string
}

func (f burnSubtitles) render() string {
	return "subtitles=" + escapeFilterPath(f.path)
}

// escapeFilterPath makes a filesystem path safe inside ffmpeg's filter
// grammar: separators normalized, then the characters the grammar reserves
// escaped.
func escapeFilterPath(p string) string {
	p = filepath.ToSlash(p)
	var b strings.Builder
	for _, r := range p {
		switch r {
		case '\\', ':', '\'', ',', '[', ']', ';':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
