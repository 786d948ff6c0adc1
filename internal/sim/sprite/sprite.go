package sprite

import "fmt"

// Portal points a tile at another world. The generator stores it verbatim;
// teleport semantics belong to the client.
type Portal struct {
	Seed string `json:"seed"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Sprite is a user-authored pixel-art record. The world generator treats it
// as an opaque payload apart from the ID.
type Sprite struct {
	ID      string         `json:"id"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Palette map[int]string `json:"palette"` // palette index -> #rrggbb
	Pixels  []int          `json:"pixels"`  // row-major palette indices, len = Width*Height
	Solid   bool           `json:"solid,omitempty"`
	Portal  *Portal        `json:"portal,omitempty"`
}

// MaxSide bounds sprite dimensions accepted from the authoring surface.
const MaxSide = 64

// Validate checks structural sanity of an authored sprite: dimensions,
// pixel count, and that every pixel references a palette entry. Index 0 is
// always accepted as transparent.
func Validate(s Sprite) error {
	if s.ID == "" {
		return fmt.Errorf("sprite: empty id")
	}
	if s.Width <= 0 || s.Height <= 0 || s.Width > MaxSide || s.Height > MaxSide {
		return fmt.Errorf("sprite %s: bad dimensions %dx%d", s.ID, s.Width, s.Height)
	}
	if len(s.Pixels) != s.Width*s.Height {
		return fmt.Errorf("sprite %s: %d pixels, want %d", s.ID, len(s.Pixels), s.Width*s.Height)
	}
	for i, p := range s.Pixels {
		if p == 0 {
			continue
		}
		if p < 0 {
			return fmt.Errorf("sprite %s: negative palette index at pixel %d", s.ID, i)
		}
		if _, ok := s.Palette[p]; !ok {
			return fmt.Errorf("sprite %s: pixel %d references missing palette entry %d", s.ID, i, p)
		}
	}
	return nil
}
