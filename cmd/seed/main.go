package main

import (
	"log"

	"dreamsproperty/internal/config"
	"dreamsproperty/internal/database"
	"dreamsproperty/internal/repository"

	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.Database.DSN())
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migration...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Seeding demo properties...")
	for _, p := range repository.DemoProperties() {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&p).Error; err != nil {
			log.Fatal("Seed failed:", err)
		}
		log.Printf("Seeded property %d: %s", p.ID, p.Title)
	}

	log.Println("Done.")
}
