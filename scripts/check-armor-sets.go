package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	armorset "github.com/KirkDiggler/armor-builder/internal/repositories/armor_set"
)

// namesKey mirrors the ordered set name list kept by the redis set store
const namesKey = "armor_sets"

var (
	redisURL string
	fix      bool
)

var rootCmd = &cobra.Command{
	Use:   "check-armor-sets",
	Short: "Find stored armor sets that no longer decode",
	Long: `Scan every armor_set:* key, decode it as a set record and report the keys that fail.
With --fix the failing keys are deleted and their names dropped from the set list.`,
	RunE: run,
}

func main() {
	defaultURL := os.Getenv("REDIS_URL")
	if defaultURL == "" {
		defaultURL = "redis://localhost:6379"
	}
	rootCmd.Flags().StringVar(&redisURL, "redis-url", defaultURL, "Redis URL (defaults to $REDIS_URL)")
	rootCmd.Flags().BoolVar(&fix, "fix", false, "Delete corrupted sets")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	defer func() { _ = client.Close() }()
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Connected to Redis:", redisURL)
	fmt.Fprintln(out, "Scanning for corrupted armor sets...")

	corrupted, checked, err := scan(ctx, client, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nChecked %d keys, found %d corrupted sets\n", checked, len(corrupted))
	if len(corrupted) == 0 {
		return nil
	}

	fmt.Fprintln(out, "\nCorrupted keys:")
	for _, key := range corrupted {
		fmt.Fprintf(out, "  - %s\n", key)
	}

	if !fix {
		fmt.Fprintln(out, "\nRun again with --fix to delete them")
		return nil
	}

	for _, key := range corrupted {
		name := strings.TrimPrefix(key, armorset.GetKey(""))
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.LRem(ctx, namesKey, 0, name)
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Fprintf(out, "Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Fprintf(out, "Deleted %s\n", key)
	}
	return nil
}

// scan decodes every set key and returns the ones that fail
func scan(ctx context.Context, client *redis.Client, out io.Writer) ([]string, int, error) {
	iter := client.Scan(ctx, 0, armorset.GetKey("*"), 0).Iterator()

	var corrupted []string
	checked := 0
	for iter.Next(ctx) {
		key := iter.Val()
		checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Fprintf(out, "Error reading %s: %v\n", key, err)
			continue
		}

		var record armor.SetRecord
		if err := json.Unmarshal(data, &record); err != nil {
			fmt.Fprintf(out, "✗ Corrupted JSON in %s: %v\n", key, err)
			corrupted = append(corrupted, key)
			continue
		}
		if _, err := armor.DeserializeSet(&record); err != nil {
			fmt.Fprintf(out, "✗ Invalid set in %s: %v\n", key, err)
			corrupted = append(corrupted, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, checked, fmt.Errorf("error during scan: %w", err)
	}

	return corrupted, checked, nil
}
