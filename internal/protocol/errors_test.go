package protocol

import "testing"

func TestIsKnownCode(t *testing.T) {
	for _, code := range []string{
		ErrProtoBadRequest, ErrBadRequest, ErrBadSprite, ErrRegionTooBig,
		ErrRateLimit, ErrSlotNotFound, ErrOverlayFull, ErrInternal, "",
	} {
		if !IsKnownCode(code) {
			t.Errorf("IsKnownCode(%q) = false", code)
		}
	}
	if IsKnownCode("E_MADE_UP") {
		t.Error("unknown code accepted")
	}
}

func TestNewError(t *testing.T) {
	e := NewError(ErrBadSprite, "pixels do not match dimensions")
	if e.Type != TypeError || e.Code != ErrBadSprite || e.Message == "" {
		t.Errorf("unexpected error message: %+v", e)
	}
}
