package protocol

import (
	"tileworld.gg/internal/sim/sprite"
)

// HELLO (client -> server)
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ClientName      string `json:"client_name,omitempty"`
}

// WELCOME (server -> client)
type WelcomeMsg struct {
	Type            string         `json:"type"`
	ProtocolVersion string         `json:"protocol_version"`
	Seed            string         `json:"seed"`
	WorldParams     WorldParams    `json:"world_params"`
	Catalogs        CatalogDigests `json:"catalogs"`
}

type WorldParams struct {
	ViewRadius   int `json:"view_radius"`
	VariantCount int `json:"variant_count"`
}

type CatalogDigests struct {
	TerrainDigest string `json:"terrain_digest"`
	ObjectsDigest string `json:"objects_digest"`
}

// GET_REGION (client -> server): a square of tiles centered on (x,y).
type GetRegionMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	X               int    `json:"x"`
	Y               int    `json:"y"`
	Radius          int    `json:"radius"`
}

// REGION (server -> client)
type RegionMsg struct {
	Type   string    `json:"type"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Radius int       `json:"radius"`
	Tiles  []TileMsg `json:"tiles"` // row-major, top-left first
}

type TileMsg struct {
	X       int            `json:"x"`
	Y       int            `json:"y"`
	Terrain string         `json:"terrain"`
	Biome   string         `json:"biome"`
	Object  string         `json:"object,omitempty"`
	Variant int            `json:"variant"`
	Custom  *sprite.Sprite `json:"custom,omitempty"`
}

// PLACE (client -> server)
type PlaceMsg struct {
	Type            string        `json:"type"`
	ProtocolVersion string        `json:"protocol_version"`
	X               int           `json:"x"`
	Y               int           `json:"y"`
	Sprite          sprite.Sprite `json:"sprite"`
}

// PLACED (server -> client)
type PlacedMsg struct {
	Type     string `json:"type"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	SpriteID string `json:"sprite_id"`
}

// SAVE_GAME (client -> server)
type SaveGameMsg struct {
	Type            string      `json:"type"`
	ProtocolVersion string      `json:"protocol_version"`
	Slot            string      `json:"slot"`
	Player          PlayerState `json:"player"`
}

// PlayerState is caller-owned context stored with a save; the server
// persists it without interpreting it.
type PlayerState struct {
	X         int            `json:"x"`
	Y         int            `json:"y"`
	Direction string         `json:"direction,omitempty"`
	Distance  float64        `json:"distance_traveled,omitempty"`
	Explored  *Bounds        `json:"explored,omitempty"`
	Inventory map[string]int `json:"inventory,omitempty"`
}

// Bounds is the axis-aligned rectangle of tiles the player has seen.
type Bounds struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// SAVED (server -> client)
type SavedMsg struct {
	Type   string `json:"type"`
	Slot   string `json:"slot"`
	Placed int    `json:"placed_objects"`
}

// LOAD_GAME (client -> server)
type LoadGameMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Slot            string `json:"slot"`
}

// LOADED (server -> client)
type LoadedMsg struct {
	Type    string      `json:"type"`
	Slot    string      `json:"slot"`
	Seed    string      `json:"seed"`
	Player  PlayerState `json:"player"`
	Placed  int         `json:"placed_objects"`
	Skipped int         `json:"skipped_entries,omitempty"`
}

// LIST_SAVES (client -> server)
type ListSavesMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
}

// SAVES (server -> client)
type SavesMsg struct {
	Type  string    `json:"type"`
	Saves []SaveRef `json:"saves"`
}

type SaveRef struct {
	Slot    string `json:"slot"`
	Seed    string `json:"seed"`
	SavedAt string `json:"saved_at"`
	Placed  int    `json:"placed_objects"`
}

// ERROR (server -> client)
type ErrorMsg struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func NewError(code, message string) ErrorMsg {
	return ErrorMsg{Type: TypeError, Code: code, Message: message}
}
