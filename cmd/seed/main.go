// Command main runs the database seeder for Ripple.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	numProfiles := flag.Int("profiles", 50, "Number of accounts to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords (fast bulk seeding, login disabled)")
	fixtures := flag.String("fixtures", "", "Apply a fixtures YAML file instead of random generation")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	if *fixtures != "" {
		log.Printf("Applying fixtures: %s (ignoring count flags)\n", *fixtures)
	} else {
		log.Printf("Target: %d accounts, %d posts, clean=%v\n", *numProfiles, *numPosts, *shouldClean)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{SkipBcrypt: *skipBcrypt})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if *fixtures != "" {
		fx, err := seed.LoadFixtures(*fixtures)
		if err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		if err := s.ApplyFixtures(fx); err != nil {
			log.Fatalf("Fixture seeding failed: %v", err)
		}
	} else {
		profiles, err := s.SeedSocialMesh(*numProfiles)
		if err != nil {
			log.Fatalf("Account seeding failed: %v", err)
		}
		if _, err := s.SeedEngagement(profiles, *numPosts); err != nil {
			log.Fatalf("Engagement seeding failed: %v", err)
		}
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All generated accounts have the password: password123")
}
