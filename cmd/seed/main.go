// Package main provides a tool to check a movie dataset before the server seeds from it.
//
// It runs every record through the same field rules the API enforces, reports
// per-genre counts and duplicate ids, and can print the dataset back with ids
// filled in for records that lack one.
//
// Usage:
//
//	go run ./cmd/seed                          # check the embedded dataset
//	go run ./cmd/seed -path ./movies.json      # check a custom dataset
//	go run ./cmd/seed -path ./movies.json -emit > seeded.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"

	"golang.org/x/text/cases"

	"github.com/moviesapp/movies-server/internal/domain"
	"github.com/moviesapp/movies-server/internal/seed"
	"github.com/moviesapp/movies-server/internal/store"
	"github.com/moviesapp/movies-server/internal/validation"
)

var (
	path = flag.String("path", "", "Dataset to check (default: embedded)")
	emit = flag.Bool("emit", false, "Print the dataset with generated ids as JSON on stdout")
)

func main() {
	flag.Parse()

	movies, err := seed.Load(*path, validation.New())
	if err != nil {
		log.Fatalf("Invalid dataset: %v", err)
	}

	// NewCatalog rejects duplicate ids the same way the server does at startup.
	if _, err := store.NewCatalog(movies); err != nil {
		log.Fatalf("Invalid dataset: %v", err)
	}

	if *emit {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(movies); err != nil {
			log.Fatalf("Failed to write dataset: %v", err)
		}
		return
	}

	printSummary(movies)
}

func printSummary(movies []domain.Movie) {
	fmt.Fprintf(os.Stderr, "%d movies OK\n", len(movies))

	// Count genres the way the list filter matches them.
	fold := cases.Fold()
	counts := make(map[string]int)
	labels := make(map[string]string)
	for _, m := range movies {
		for _, g := range m.Genre {
			key := fold.String(g)
			if _, ok := labels[key]; !ok {
				labels[key] = g
			}
			counts[key]++
		}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		fmt.Fprintf(os.Stderr, "  %-12s %d\n", labels[k], counts[k])
	}
}
