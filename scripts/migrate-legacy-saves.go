package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/questforge/adventure-api/internal/gamestate"
)

// Minimal envelope to probe the stored shape without full decoding
type storedGameState struct {
	ID           string          `json:"id"`
	ProgressData json.RawMessage `json:"progress_data"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for legacy game state data...")

	store, err := gamestate.New(&gamestate.Config{})
	if err != nil {
		log.Fatal("Failed to create state store:", err)
	}

	iter := client.Scan(ctx, 0, "gamestate:*", 0).Iterator()

	var legacyKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			// Index sets also match the pattern, skip non-string keys
			if err == redis.Nil || strings.HasPrefix(err.Error(), "WRONGTYPE") {
				checkedCount--
				continue
			}
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var stored storedGameState
		if err := json.Unmarshal([]byte(data), &stored); err != nil {
			fmt.Printf("✗ Undecodable record in %s\n", key)
			legacyKeys = append(legacyKeys, key)
			continue
		}

		if !gamestate.ValidateRaw(stored.ProgressData) {
			fmt.Printf("✗ Legacy progress shape in %s\n", key)
			legacyKeys = append(legacyKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d legacy entries\n", checkedCount, len(legacyKeys))

	if len(legacyKeys) == 0 {
		fmt.Println("No legacy data found!")
		return
	}

	fmt.Println("\nLegacy keys:")
	for _, key := range legacyKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to MIGRATE these entries in place? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range legacyKeys {
		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Failed to re-read %s: %v\n", key, err)
			continue
		}

		rec, err := store.Deserialize(data)
		if err != nil {
			fmt.Printf("Skipping %s, record is not recoverable: %v\n", key, err)
			continue
		}

		healed, err := store.Serialize(rec)
		if err != nil {
			fmt.Printf("Failed to re-encode %s: %v\n", key, err)
			continue
		}

		if err := client.Set(ctx, key, healed, 0).Err(); err != nil {
			fmt.Printf("Failed to write %s: %v\n", key, err)
		} else {
			fmt.Printf("Migrated %s\n", key)
		}
	}

	fmt.Println("\nMigration complete!")
}
