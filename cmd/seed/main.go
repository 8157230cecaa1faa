package main

import (
	"context"
	"log"

	"coride/internal/config"
	"coride/internal/db"
	"coride/internal/fixture"
	"coride/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()
	if cfg.DataSource == config.DataSourceFixtures {
		log.Fatalf("DATA_SOURCE is %q; set it to %q or %q to seed a database",
			cfg.DataSource, config.DataSourceMySQL, config.DataSourcePostgres)
	}

	// Connect to database
	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Printf("Connected to %s database", cfg.DataSource)

	// Run migrations to ensure schema is up to date
	seeder := seed.NewSeeder(gormDB)
	if err := seeder.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ds := fixture.Load()
	log.Printf("Seeding %d users, %d rides, %d requests, %d messages, %d notifications...",
		len(ds.Users), len(ds.Rides), len(ds.RideRequests), len(ds.Messages), len(ds.Notifications))

	res, err := seeder.Seed(context.Background(), ds)
	if err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New records created: %d", res.Created)
	log.Printf("  - Existing records updated: %d", res.Updated)
	log.Printf("  - Total records processed: %d", res.Created+res.Updated)
}
