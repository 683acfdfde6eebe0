package main

import (
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/logging"
	"storefront/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logging.New(cfg.Env, cfg.LogLevel)
	log.Info().Str("env", cfg.Env).Msg("starting storefront")

	gdb, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("unwrap database handle")
	}
	defer sqlDB.Close()

	r := web.NewRouter(gdb, log, cfg)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
