package protocol

import "encoding/json"

const Version = "1.0"

// Message types.
const (
	TypeHello     = "HELLO"
	TypeWelcome   = "WELCOME"
	TypeGetRegion = "GET_REGION"
	TypeRegion    = "REGION"
	TypePlace     = "PLACE"
	TypePlaced    = "PLACED"
	TypeSaveGame  = "SAVE_GAME"
	TypeSaved     = "SAVED"
	TypeLoadGame  = "LOAD_GAME"
	TypeLoaded    = "LOADED"
	TypeListSaves = "LIST_SAVES"
	TypeSaves     = "SAVES"
	TypeError     = "ERROR"
)

// BaseMessage lets us route unknown JSON messages by type.
type BaseMessage struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version,omitempty"`
}

func DecodeBase(b []byte) (BaseMessage, error) {
	var m BaseMessage
	err := json.Unmarshal(b, &m)
	return m, err
}
