package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/docdiff/internal/config"
	"github.com/agenthands/docdiff/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("No config file at %s, relying on environment variables: %v", cfgPath, err)
		cfg = &config.Config{}
	}
	cfg.ApplyEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := server.NewServer(cfg)
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
