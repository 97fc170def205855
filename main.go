package main

import (
	"os"

	"github.com/MiraiSubject/CoteValentines2023/bot"
	"github.com/MiraiSubject/CoteValentines2023/config"
	"github.com/MiraiSubject/CoteValentines2023/db"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A .env file is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	if config.Cfg.Token == "" {
		log.Fatal().Msg("TOKEN is empty, set it in config.yaml or the environment")
	}

	db.InitDB(config.Cfg.DatabasePath)

	bot.Run()
}
