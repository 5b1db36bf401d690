package main

import (
	"context"
	"net/http"
	"time"

	"klaver-telraam/internal/app/history"
	"klaver-telraam/internal/app/score"
	"klaver-telraam/internal/config"
	"klaver-telraam/internal/logging"
	"klaver-telraam/internal/store"
	httptransport "klaver-telraam/internal/transport/http"

	"github.com/rs/zerolog/log"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}
	if err := st.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("ensure schema failed")
	}

	scoreSvc := score.NewService(st, cfg.GameSlot)
	if err := scoreSvc.Load(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("load active game failed")
	}
	histSvc := history.NewService(st)

	r := httptransport.NewRouter(st, cfg, scoreSvc, histSvc)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
