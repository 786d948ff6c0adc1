package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"tileworld.gg/internal/persistence/indexdb"
	persistlog "tileworld.gg/internal/persistence/log"
	"tileworld.gg/internal/persistence/save"
	"tileworld.gg/internal/sim/catalogs"
	"tileworld.gg/internal/sim/tuning"
	"tileworld.gg/internal/sim/world"
	"tileworld.gg/internal/transport/ws"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		seed       = flag.String("seed", "default", "world seed (used when no save is loaded)")
		configDir  = flag.String("configs", "./configs", "config directory")
		dataDir    = flag.String("data", "./data", "runtime data directory")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		loadSlot   = flag.String("load", "", "save slot to load at startup (optional)")
		disableDB  = flag.Bool("disable_db", false, "disable the sqlite save index")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune, err := tuning.Load(tp)
	if err != nil {
		logger.Printf("tuning: %v (using defaults)", err)
		tune = tuning.Default()
	}

	cats, err := catalogs.Load(*configDir)
	if err != nil {
		logger.Fatalf("load catalogs: %v", err)
	}

	saveDir := filepath.Join(*dataDir, "saves")
	_ = os.MkdirAll(saveDir, 0o755)

	var idx *indexdb.SaveIndex
	if !*disableDB {
		idx, err = indexdb.Open(filepath.Join(*dataDir, "index.db"))
		if err != nil {
			logger.Fatalf("open save index: %v", err)
		}
		defer idx.Close()
	}

	audit := persistlog.NewAuditLogger(*dataDir)
	defer audit.Close()

	// Fresh world, or resume from a save slot.
	w := world.New(*seed)
	if *loadSlot != "" {
		path := filepath.Join(saveDir, *loadSlot+".sav.zst")
		rec, skipped, err := save.Read(path)
		if err != nil {
			logger.Fatalf("load slot %s: %v", *loadSlot, err)
		}
		w = world.New(rec.Seed)
		w.SetPlacedObjects(rec.Placed)
		logger.Printf("resumed slot=%s seed=%q placed=%d skipped=%d",
			*loadSlot, rec.Seed, len(rec.Placed), skipped)
	} else {
		logger.Printf("fresh world seed=%q", *seed)
	}

	srv := ws.NewServer(w, tune, cats, saveDir, idx, audit, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/ws", srv.Handler())
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)

	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("listening on %s", *addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http: %v", err)
		}
	}()

	// Autosave keeps the working slot warm without client involvement.
	stopAutosave := make(chan struct{})
	if tune.AutosaveSeconds > 0 {
		go func() {
			t := time.NewTicker(time.Duration(tune.AutosaveSeconds) * time.Second)
			defer t.Stop()
			for {
				select {
				case <-stopAutosave:
					return
				case <-t.C:
					cur := srv.World()
					rec := save.NewSave("autosave", cur, save.PlayerV1{})
					path := filepath.Join(saveDir, "autosave.sav.zst")
					if err := save.Write(path, rec); err != nil {
						logger.Printf("autosave: %v", err)
						continue
					}
					if err := idx.RecordSave("autosave", path, cur.Seed(), len(rec.Placed)); err != nil {
						logger.Printf("autosave index: %v", err)
					}
				}
			}
		}()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	close(stopAutosave)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)
	logger.Printf("shutdown complete")
}
