package subtitles

import "testing"

func TestParseStyle(t *testing.T) {
	tests := map[string]Style{
		"clean":   StyleClean,
		"neon":    StyleNeon,
		"boxed":   StyleBoxed,
		"punchy":  StylePunchy,
		"":        StyleClean,
		"sparkly": StyleClean,
	}
	for name, want := range tests {
		if got := ParseStyle(name); got != want {
			t.Fatalf("ParseStyle(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestProfile_SizeOverride(t *testing.T) {
	p := StyleClean.Profile(90)
	if p.Size != 90 {
		t.Fatalf("size override ignored, got %d", p.Size)
	}
	p = StyleClean.Profile(0)
	if p.Size <= 0 {
		t.Fatalf("preset default must apply for size 0, got %d", p.Size)
	}
}

func TestProfile_OutOfRangeStyleFallsBack(t *testing.T) {
	p := Style(99).Profile(0)
	if p != StyleClean.Profile(0) {
		t.Fatalf("unknown style value must get the clean profile")
	}
}
