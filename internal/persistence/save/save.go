// Package save reads and writes save-game files: a JSON header line followed
// by a gob body, both inside one zstd stream. The placed-object overlay is
// the part the world consumes; player fields belong to the session.
package save

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"tileworld.gg/internal/sim/sprite"
	"tileworld.gg/internal/sim/world"
)

const Version = 1

type Header struct {
	Version int    `json:"version"`
	Slot    string `json:"slot"`
	SavedAt string `json:"saved_at"` // RFC 3339 UTC
}

// PlayerV1 carries the session-owned state stored alongside the overlay.
type PlayerV1 struct {
	X         int            `json:"x"`
	Y         int            `json:"y"`
	Direction string         `json:"direction,omitempty"`
	Distance  float64        `json:"distance_traveled,omitempty"`
	MinX      int            `json:"min_x,omitempty"`
	MaxX      int            `json:"max_x,omitempty"`
	MinY      int            `json:"min_y,omitempty"`
	MaxY      int            `json:"max_y,omitempty"`
	Inventory map[string]int `json:"inventory,omitempty"`
}

type SaveV1 struct {
	Header Header

	Seed   string
	Player PlayerV1
	Placed []world.PlacedObject
}

// NewSave assembles a SaveV1 for the given slot and world.
func NewSave(slot string, w *world.World, player PlayerV1) SaveV1 {
	return SaveV1{
		Header: Header{Version: Version, Slot: slot, SavedAt: time.Now().UTC().Format(time.RFC3339)},
		Seed:   w.Seed(),
		Player: player,
		Placed: w.PlacedObjects(),
	}
}

func Write(path string, s SaveV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 64*1024)
	defer bw.Flush()

	hb, _ := json.Marshal(s.Header)
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&s); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

// Read loads a save file. Placed entries whose sprites fail structural
// validation are dropped rather than failing the whole load; the second
// return value reports how many were skipped.
func Read(path string) (SaveV1, int, error) {
	var s SaveV1
	f, err := os.Open(path)
	if err != nil {
		return s, 0, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return s, 0, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)

	// Header line is informational; the gob body carries it too.
	_, _ = br.ReadBytes('\n')

	if err := gob.NewDecoder(br).Decode(&s); err != nil {
		return s, 0, fmt.Errorf("gob decode: %w", err)
	}

	kept := s.Placed[:0]
	skipped := 0
	for _, p := range s.Placed {
		if sprite.Validate(p.Sprite) != nil {
			skipped++
			continue
		}
		kept = append(kept, p)
	}
	s.Placed = kept
	return s, skipped, nil
}

// ReadHeader decodes just the JSON header line of a save file.
func ReadHeader(path string) (Header, error) {
	var h Header
	f, err := os.Open(path)
	if err != nil {
		return h, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return h, err
	}
	defer dec.Close()

	line, err := bufio.NewReader(dec).ReadBytes('\n')
	if err != nil {
		return h, err
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, fmt.Errorf("save header: %w", err)
	}
	return h, nil
}
