package ws

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"tileworld.gg/internal/persistence/indexdb"
	persistlog "tileworld.gg/internal/persistence/log"
	"tileworld.gg/internal/persistence/save"
	"tileworld.gg/internal/protocol"
	"tileworld.gg/internal/sim/catalogs"
	"tileworld.gg/internal/sim/sprite"
	"tileworld.gg/internal/sim/tuning"
	"tileworld.gg/internal/sim/world"
	"tileworld.gg/internal/sim/world/gen"
)

// Server serves one world to rendering clients over a websocket. Loading a
// save with a different seed swaps the world in place; every session sees
// the swap on its next query.
type Server struct {
	tune    tuning.Tuning
	cats    catalogs.Catalogs
	saveDir string
	idx     *indexdb.SaveIndex
	audit   *persistlog.AuditLogger
	log     *log.Logger

	mu  sync.RWMutex
	wld *world.World

	upgrader websocket.Upgrader
}

func NewServer(w *world.World, tune tuning.Tuning, cats catalogs.Catalogs, saveDir string, idx *indexdb.SaveIndex, audit *persistlog.AuditLogger, logger *log.Logger) *Server {
	return &Server{
		tune:    tune,
		cats:    cats,
		saveDir: saveDir,
		idx:     idx,
		audit:   audit,
		log:     logger,
		wld:     w,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// World returns the currently served world.
func (s *Server) World() *world.World {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wld
}

func (s *Server) swapWorld(w *world.World) {
	s.mu.Lock()
	s.wld = w
	s.mu.Unlock()
}

type session struct {
	srv  *Server
	conn *websocket.Conn
	name string

	player protocol.PlayerState

	// Fixed-window limiter for placements.
	windowStart time.Time
	windowCount int
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		sess := &session{srv: s, conn: conn}
		if !sess.handshake() {
			return
		}
		s.log.Printf("session open client=%s", sess.name)
		sess.loop()
		s.log.Printf("session closed client=%s", sess.name)
	}
}

func (sess *session) handshake() bool {
	_ = sess.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := sess.conn.ReadMessage()
	if err != nil {
		return false
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		_ = sess.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected HELLO"),
			time.Now().Add(time.Second))
		return false
	}
	if err := protocol.ValidateClient(protocol.TypeHello, msg); err != nil {
		_ = sess.writeJSON(protocol.NewError(protocol.ErrProtoBadRequest, err.Error()))
		return false
	}

	var hello protocol.HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil {
		return false
	}
	if hello.ProtocolVersion != protocol.Version {
		_ = sess.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "bad protocol_version"),
			time.Now().Add(time.Second))
		return false
	}
	sess.name = hello.ClientName
	if sess.name == "" {
		sess.name = "client"
	}

	return sess.writeJSON(sess.welcome()) == nil
}

func (sess *session) welcome() protocol.WelcomeMsg {
	return protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		Seed:            sess.srv.World().Seed(),
		WorldParams: protocol.WorldParams{
			ViewRadius:   sess.srv.tune.ViewRadius,
			VariantCount: gen.VariantCount,
		},
		Catalogs: protocol.CatalogDigests{
			TerrainDigest: sess.srv.cats.Terrain.Digest,
			ObjectsDigest: sess.srv.cats.Objects.Digest,
		},
	}
}

func (sess *session) loop() {
	for {
		_ = sess.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		_, msg, err := sess.conn.ReadMessage()
		if err != nil {
			return
		}
		base, err := protocol.DecodeBase(msg)
		if err != nil {
			_ = sess.writeJSON(protocol.NewError(protocol.ErrProtoBadRequest, "not a message"))
			continue
		}
		if err := protocol.ValidateClient(base.Type, msg); err != nil {
			_ = sess.writeJSON(protocol.NewError(protocol.ErrProtoBadRequest, err.Error()))
			continue
		}

		switch base.Type {
		case protocol.TypeGetRegion:
			var m protocol.GetRegionMsg
			if json.Unmarshal(msg, &m) == nil {
				sess.handleGetRegion(m)
			}
		case protocol.TypePlace:
			var m protocol.PlaceMsg
			if json.Unmarshal(msg, &m) == nil {
				sess.handlePlace(m)
			}
		case protocol.TypeSaveGame:
			var m protocol.SaveGameMsg
			if json.Unmarshal(msg, &m) == nil {
				sess.handleSave(m)
			}
		case protocol.TypeLoadGame:
			var m protocol.LoadGameMsg
			if json.Unmarshal(msg, &m) == nil {
				sess.handleLoad(m)
			}
		case protocol.TypeListSaves:
			sess.handleListSaves()
		default:
			_ = sess.writeJSON(protocol.NewError(protocol.ErrBadRequest, "unknown type "+base.Type))
		}
	}
}

func (sess *session) handleGetRegion(m protocol.GetRegionMsg) {
	if m.Radius > sess.srv.tune.ViewRadius {
		_ = sess.writeJSON(protocol.NewError(protocol.ErrRegionTooBig,
			fmt.Sprintf("radius %d exceeds view radius %d", m.Radius, sess.srv.tune.ViewRadius)))
		return
	}
	w := sess.srv.World()

	side := 2*m.Radius + 1
	tiles := make([]protocol.TileMsg, 0, side*side)
	for y := m.Y - m.Radius; y <= m.Y+m.Radius; y++ {
		for x := m.X - m.Radius; x <= m.X+m.Radius; x++ {
			t := w.GetTile(x, y)
			tiles = append(tiles, protocol.TileMsg{
				X:       t.X,
				Y:       t.Y,
				Terrain: string(t.Terrain),
				Biome:   string(t.Biome),
				Object:  string(t.Object),
				Variant: t.Variant,
				Custom:  t.Custom,
			})
		}
	}
	_ = sess.writeJSON(protocol.RegionMsg{
		Type: protocol.TypeRegion, X: m.X, Y: m.Y, Radius: m.Radius, Tiles: tiles,
	})
}

func (sess *session) handlePlace(m protocol.PlaceMsg) {
	if !sess.allowPlace() {
		_ = sess.writeJSON(protocol.NewError(protocol.ErrRateLimit, "too many placements"))
		return
	}
	if err := sprite.Validate(m.Sprite); err != nil {
		_ = sess.writeJSON(protocol.NewError(protocol.ErrBadSprite, err.Error()))
		return
	}
	w := sess.srv.World()
	if limit := sess.srv.tune.MaxPlacedTotal; limit > 0 && w.PlacedCount() >= limit {
		_ = sess.writeJSON(protocol.NewError(protocol.ErrOverlayFull,
			fmt.Sprintf("overlay holds %d objects", w.PlacedCount())))
		return
	}

	w.PlaceObject(m.X, m.Y, m.Sprite)
	if sess.srv.audit != nil {
		_ = sess.srv.audit.WriteAudit(persistlog.AuditEntry{
			Actor: sess.name, Action: "place", X: m.X, Y: m.Y, Sprite: m.Sprite.ID,
		})
	}
	_ = sess.writeJSON(protocol.PlacedMsg{
		Type: protocol.TypePlaced, X: m.X, Y: m.Y, SpriteID: m.Sprite.ID,
	})
}

func (sess *session) handleSave(m protocol.SaveGameMsg) {
	w := sess.srv.World()
	sess.player = m.Player

	p := save.PlayerV1{
		X:         m.Player.X,
		Y:         m.Player.Y,
		Direction: m.Player.Direction,
		Distance:  m.Player.Distance,
		Inventory: m.Player.Inventory,
	}
	if b := m.Player.Explored; b != nil {
		p.MinX, p.MaxX, p.MinY, p.MaxY = b.MinX, b.MaxX, b.MinY, b.MaxY
	}
	rec := save.NewSave(m.Slot, w, p)
	path := sess.srv.savePath(m.Slot)
	if err := save.Write(path, rec); err != nil {
		sess.srv.log.Printf("save %s: %v", m.Slot, err)
		_ = sess.writeJSON(protocol.NewError(protocol.ErrInternal, "save failed"))
		return
	}
	if err := sess.srv.idx.RecordSave(m.Slot, path, w.Seed(), len(rec.Placed)); err != nil {
		// Index is a read model; the save file on disk is what matters.
		sess.srv.log.Printf("index save %s: %v", m.Slot, err)
	}
	if sess.srv.audit != nil {
		_ = sess.srv.audit.WriteAudit(persistlog.AuditEntry{
			Actor: sess.name, Action: "save", Slot: m.Slot, Seed: w.Seed(),
		})
	}
	_ = sess.writeJSON(protocol.SavedMsg{
		Type: protocol.TypeSaved, Slot: m.Slot, Placed: len(rec.Placed),
	})
}

func (sess *session) handleLoad(m protocol.LoadGameMsg) {
	path := sess.srv.savePath(m.Slot)
	if _, err := os.Stat(path); err != nil {
		_ = sess.writeJSON(protocol.NewError(protocol.ErrSlotNotFound, m.Slot))
		return
	}
	rec, skipped, err := save.Read(path)
	if err != nil {
		sess.srv.log.Printf("load %s: %v", m.Slot, err)
		_ = sess.writeJSON(protocol.NewError(protocol.ErrInternal, "load failed"))
		return
	}

	w := sess.srv.World()
	if rec.Seed != w.Seed() {
		w = world.New(rec.Seed)
		sess.srv.swapWorld(w)
	}
	w.SetPlacedObjects(rec.Placed)

	sess.player = protocol.PlayerState{
		X:         rec.Player.X,
		Y:         rec.Player.Y,
		Direction: rec.Player.Direction,
		Distance:  rec.Player.Distance,
		Inventory: rec.Player.Inventory,
	}
	if rec.Player.MinX != 0 || rec.Player.MaxX != 0 || rec.Player.MinY != 0 || rec.Player.MaxY != 0 {
		sess.player.Explored = &protocol.Bounds{
			MinX: rec.Player.MinX, MaxX: rec.Player.MaxX,
			MinY: rec.Player.MinY, MaxY: rec.Player.MaxY,
		}
	}
	if sess.srv.audit != nil {
		_ = sess.srv.audit.WriteAudit(persistlog.AuditEntry{
			Actor: sess.name, Action: "load", Slot: m.Slot, Seed: rec.Seed,
		})
	}
	_ = sess.writeJSON(protocol.LoadedMsg{
		Type:    protocol.TypeLoaded,
		Slot:    m.Slot,
		Seed:    rec.Seed,
		Player:  sess.player,
		Placed:  len(rec.Placed),
		Skipped: skipped,
	})
}

func (sess *session) handleListSaves() {
	rows, err := sess.srv.idx.ListSaves()
	if err != nil {
		sess.srv.log.Printf("list saves: %v", err)
		_ = sess.writeJSON(protocol.NewError(protocol.ErrInternal, "list failed"))
		return
	}
	refs := make([]protocol.SaveRef, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, protocol.SaveRef{
			Slot: r.Slot, Seed: r.Seed, SavedAt: r.SavedAt, Placed: r.Placed,
		})
	}
	_ = sess.writeJSON(protocol.SavesMsg{Type: protocol.TypeSaves, Saves: refs})
}

func (sess *session) allowPlace() bool {
	rl := sess.srv.tune.RateLimits
	if rl.PlaceMax <= 0 || rl.PlaceWindowSeconds <= 0 {
		return true
	}
	now := time.Now()
	window := time.Duration(rl.PlaceWindowSeconds) * time.Second
	if now.Sub(sess.windowStart) >= window {
		sess.windowStart = now
		sess.windowCount = 0
	}
	sess.windowCount++
	return sess.windowCount <= rl.PlaceMax
}

func (s *Server) savePath(slot string) string {
	return filepath.Join(s.saveDir, slot+".sav.zst")
}

func (sess *session) writeJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = sess.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return sess.conn.WriteMessage(websocket.TextMessage, b)
}
