package main

import (
	"fmt"
	"log"
	"os"

	"matchpoint-api/config"
	"matchpoint-api/fixtures"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	fixtureManager := fixtures.NewFixtures(db)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "generate":
		if err := fixtureManager.GenerateTestData(); err != nil {
			log.Fatal("Fixtures generation failed:", err)
		}
	case "clean":
		if err := fixtureManager.Clean(); err != nil {
			log.Fatal("Clean failed:", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate - Generate demo matches")
	fmt.Println("  go run ./cmd/fixtures clean    - Remove all data")
}
