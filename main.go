// main.go
//
// Process entry point.
//   - Loads configuration and sets the log level.
//   - Loads word lists, optionally backed by the sqlite word database.
//   - Serves the match API until SIGINT or SIGTERM, expiring idle sessions.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/lingo/assets"
	"github.com/robalobadob/lingo/internal/config"
	"github.com/robalobadob/lingo/internal/db"
	"github.com/robalobadob/lingo/internal/game"
	"github.com/robalobadob/lingo/internal/httpserver"
	"github.com/robalobadob/lingo/internal/store"
	"github.com/robalobadob/lingo/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	lists, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	var source game.WordSource = lists
	wordStats := func(context.Context) (map[int]int, error) { return lists.Stats(), nil }

	if cfg.WordsDB != "" {
		sqlDB, err := db.Open(cfg.WordsDB)
		if err != nil {
			log.Fatal().Err(err).Str("dsn", cfg.WordsDB).Msg("open word database")
		}
		defer sqlDB.Close()
		if err := db.Migrate(sqlDB, assets.Migrations()); err != nil {
			log.Fatal().Err(err).Msg("migrate word database")
		}
		wdb := words.NewSQLite(sqlDB)
		added, err := wdb.Seed(context.Background(), lists.All())
		if err != nil {
			log.Fatal().Err(err).Msg("seed word database")
		}
		log.Info().Int("added", added).Msg("word database seeded")
		source, wordStats = wdb, wdb.Stats
	}

	mem := store.NewMemoryStore(store.WithIdleTTL(cfg.SessionTTL))
	srv := httpserver.New(mem, httpserver.Options{
		Match:        cfg.Game(),
		Source:       source,
		Lists:        lists,
		Salt:         cfg.WordsSalt,
		Seats:        httpserver.NewSeatSigner(cfg.SeatSecret, cfg.SeatTTL),
		Tick:         cfg.TickInterval,
		ClientOrigin: cfg.ClientOrigin,
		WordStats:    wordStats,
	})
	defer srv.Close()

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go store.RunSweeper(sweepCtx, mem, cfg.SweepEvery)

	hs := &http.Server{Addr: ":" + cfg.Port, Handler: srv.Handler()}
	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting lingo server")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server stopped")
}
