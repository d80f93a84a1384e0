// @title Chat Rooms
// @version 0.1
// @description Web chat: rooms, messages and read tracking.

// @host localhost:8080
// @BasePath /
// @query.collection.format multi
// @schemes http

package main

import (
	"log"

	"github.com/GurshaanDaula/Assignment2-Database/internal/app"
	"github.com/GurshaanDaula/Assignment2-Database/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	app.Run(cfg)
}
