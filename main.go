package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/portfolio-admin/api"
	"github.com/rpupo63/portfolio-admin/config"
	"github.com/rpupo63/portfolio-admin/database"
	"github.com/rpupo63/portfolio-admin/models"
	"github.com/rpupo63/portfolio-admin/storage"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setupLogger(c)
	log.Info().Msg("Initializing app...")

	db, err := database.Open(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	if config.GetBool(c, "AUTO_MIGRATE", false) {
		if err := models.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("Error migrating schema")
		}
		log.Info().Msg("Schema migrated")
	}

	currentDB := database.New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if config.GetBool(c, "SEED_LOOKUPS", false) {
		if err := database.SeedLookups(ctx, currentDB); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("Error seeding types and technologies")
		}
		log.Info().Msg("Types and technologies seeded")
	}

	files, err := storage.New(ctx, c)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing file storage")
	}

	// Start still reports ErrServerClosed after shutdown, so leave room for it
	errChannel := make(chan error, 2)

	server, err := api.NewServer(currentDB, files)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

func setupLogger(c map[string]string) {
	level, err := zerolog.ParseLevel(config.GetString(c, "LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetBool(c, "LOG_PRETTY", false) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
