package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/weegigs/wee-store-go/connectors/wehttp"
	"github.com/weegigs/wee-store-go/samples/shuffleboard"
	"github.com/weegigs/wee-store-go/support"
)

type ScoreboardHandler http.Handler

func Logger(cfg *support.Config) *zerolog.Logger {
	return cfg.Logger()
}

func NewScoreboardHandler(scoreboard *shuffleboard.Scoreboard, log *zerolog.Logger) ScoreboardHandler {
	api := wehttp.NewHandler[shuffleboard.Scores, shuffleboard.Action](
		scoreboard,
		shuffleboard.Decoder(),
		wehttp.Logger[shuffleboard.Scores, shuffleboard.Action](log),
	)

	r := chi.NewRouter()
	r.Method("GET", "/healthz", wehttp.WithTelemetry(http.HandlerFunc(healthz), "healthz"))
	r.Mount("/", api)

	return withLogging(r)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

var Live = wire.NewSet(
	Logger,
	shuffleboard.NewScoreboard,
	NewScoreboardHandler,
)
