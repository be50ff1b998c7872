package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/history"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	db, err := history.Open(getEnv("HISTORY_DB", "./data/solver.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open history database")
	}
	defer db.Close()

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, history.NewStore(db), dict)
	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Int("words", len(dict)).Msg("starting solver-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
