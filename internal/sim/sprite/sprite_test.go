package sprite

import "testing"

func valid() Sprite {
	return Sprite{
		ID:      "flower",
		Width:   2,
		Height:  3,
		Palette: map[int]string{1: "#ff0000", 2: "#00ff00"},
		Pixels:  []int{0, 1, 2, 1, 0, 2},
	}
}

func TestValidateOK(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("valid sprite rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Sprite)
	}{
		{"empty id", func(s *Sprite) { s.ID = "" }},
		{"zero width", func(s *Sprite) { s.Width = 0 }},
		{"negative height", func(s *Sprite) { s.Height = -1 }},
		{"oversize", func(s *Sprite) { s.Width = MaxSide + 1 }},
		{"pixel count", func(s *Sprite) { s.Pixels = s.Pixels[:4] }},
		{"missing palette entry", func(s *Sprite) { s.Pixels[1] = 9 }},
		{"negative index", func(s *Sprite) { s.Pixels[1] = -2 }},
	}
	for _, c := range cases {
		s := valid()
		c.mutate(&s)
		if err := Validate(s); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestValidateAllowsTransparentZero(t *testing.T) {
	s := valid()
	s.Pixels = []int{0, 0, 0, 0, 0, 0}
	s.Palette = nil
	if err := Validate(s); err != nil {
		t.Fatalf("all-transparent sprite rejected: %v", err)
	}
}

func TestPortalCarriedVerbatim(t *testing.T) {
	s := valid()
	s.Portal = &Portal{Seed: "other-world", X: 4, Y: -9}
	if err := Validate(s); err != nil {
		t.Fatalf("sprite with portal rejected: %v", err)
	}
	if s.Portal.Seed != "other-world" || s.Portal.X != 4 || s.Portal.Y != -9 {
		t.Fatalf("portal fields changed: %+v", s.Portal)
	}
}
