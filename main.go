package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/scastellanosl/coinary-backend/internal/events"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/internal/reminders"
	"github.com/scastellanosl/coinary-backend/internal/router"
)

func main() {
	// Load a .env file if one exists. The environment always wins.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate all models
	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dsn = filepath.Join(dataDir, "coinary.db")
	}

	err = models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Publish record events when a broker is configured
	if url, ok := os.LookupEnv("AMQP_URL"); ok {
		publisher, err := events.NewPublisher(url)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		defer publisher.Close()

		events.Default = publisher
		log.Info().Msg("record events enabled")
	}

	// Schedule the reminders
	scheduler := reminders.New(models.DB)
	count, err := scheduler.Start()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer scheduler.Stop()

	reminders.Default = scheduler
	log.Info().Int("count", count).Msg("reminders scheduled")

	r, err := router.Router()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
