package main

import (
	"log"
	"os"

	"github.com/saiydurnetcom/nexuspm/internal/infrastructure/database"
	"github.com/saiydurnetcom/nexuspm/pkg/config"
)

func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	switch direction {
	case "up":
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	case "down":
		if err := database.MigrateDown(db); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
	default:
		log.Fatalf("Unknown direction %q: use up or down", direction)
	}
}
