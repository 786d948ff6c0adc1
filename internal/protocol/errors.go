package protocol

const (
	// Protocol/transport validation.
	ErrProtoBadRequest = "E_PROTO_BAD_REQUEST"

	// Request layer.
	ErrBadRequest   = "E_BAD_REQUEST"
	ErrBadSprite    = "E_BAD_SPRITE"
	ErrRegionTooBig = "E_REGION_TOO_BIG"
	ErrRateLimit    = "E_RATE_LIMIT"
	ErrSlotNotFound = "E_SLOT_NOT_FOUND"
	ErrOverlayFull  = "E_OVERLAY_FULL"
	ErrInternal     = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrProtoBadRequest: {},
	ErrBadRequest:      {},
	ErrBadSprite:       {},
	ErrRegionTooBig:    {},
	ErrRateLimit:       {},
	ErrSlotNotFound:    {},
	ErrOverlayFull:     {},
	ErrInternal:        {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
