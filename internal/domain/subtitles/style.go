package subtitles

// Style is the closed set of caption looks.
type Style int

const (
	StyleClean Style = iota
	StyleNeon
	StyleBoxed
	StylePunchy
)

// Profile is the rendering bundle one Style expands to. Colours use the ASS
// &HAABBGGRR form.
type Profile struct {
	Font          string
	Size          int
	PrimaryColour string
	OutlineColour string
	BackColour    string
	Bold          int
	BorderStyle   int
	Outline       int
	Shadow        int
}

// ParseStyle maps a style name to its Style. Unknown names resolve to
// StyleClean so a stale settings file never breaks a run.
func ParseStyle(name string) Style {
	switch name {
	case "neon":
		return StyleNeon
	case "boxed":
		return StyleBoxed
	case "punchy":
		return StylePunchy
	default:
		return StyleClean
	}
}

// Profile returns the preset bundle, with size overriding the preset default
// when positive.
func (s Style) Profile(size int) Profile {
	var p Profile
	switch s {
	case StyleNeon:
		p = Profile{
			Font:          "Arial Black",
			Size:          72,
			PrimaryColour: "&H00FFF200",
			OutlineColour: "&H00730073",
			BackColour:    "&H00000000",
			Bold:          1,
			BorderStyle:   1,
			Outline:       3,
			Shadow:        0,
		}
	case StyleBoxed:
		p = Profile{
			Font:          "Arial",
			Size:          72,
			PrimaryColour: "&H00FFFFFF",
			OutlineColour: "&H96000000",
			BackColour:    "&H96000000",
			Bold:          0,
			BorderStyle:   3,
			Outline:       2,
			Shadow:        0,
		}
	case StylePunchy:
		p = Profile{
			Font:          "Impact",
			Size:          80,
			PrimaryColour: "&H0000D7FF",
			OutlineColour: "&H00000000",
			BackColour:    "&H64000000",
			Bold:          1,
			BorderStyle:   1,
			Outline:       4,
			Shadow:        2,
		}
	default: // StyleClean and anything out of range
		p = Profile{
			Font:          "Arial",
			Size:          68,
			PrimaryColour: "&H00FFFFFF",
			OutlineColour: "&H00000000",
			BackColour:    "&H64000000",
			Bold:          1,
			BorderStyle:   1,
			Outline:       3,
			Shadow:        0,
		}
	}
	if size > 0 {
		p.Size = size
	}
	return p
}
