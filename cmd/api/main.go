package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Missing .env is fine: production injects real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment")
	}

	Serve()
}
