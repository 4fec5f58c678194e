// Package main provides a tool to seed the database with sample catalog data.
//
// It registers a few members, adds a small catalog, and opens a couple of
// loans so the statistics endpoints have something to show.
//
// Usage:
//
//	DB_PATH=~/OpenShelf/data/db go run ./cmd/seed
//	DB_PATH=~/OpenShelf/data/db go run ./cmd/seed --with-loans=false
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/service"
	"github.com/openshelf/openshelf-server/internal/store"
)

var withLoans = flag.Bool("with-loans", true, "Open sample loans after seeding")

type seedBook struct {
	title, author, isbn string
}

var books = []seedBook{
	{"The Go Programming Language", "Alan Donovan", "9780134190440"},
	{"Learning Go", "Jon Bodner", "9781492077213"},
	{"Dune", "Frank Herbert", "9780441172719"},
	{"Dune Messiah", "Frank Herbert", "9780441172696"},
	{"Neuromancer", "William Gibson", "9780441569595"},
}

var members = []string{"alice", "bob", "carol"}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/OpenShelf/data/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	lib := service.NewLibraryService(s, logger.Discard().Logger)
	ctx := context.Background()

	for _, name := range members {
		if _, err := lib.Users.Register(ctx, name, "password"); err != nil {
			fmt.Printf("skip user %s: %v\n", name, err)
			continue
		}
		fmt.Printf("registered %s\n", name)
	}

	var ids []int64
	for _, b := range books {
		book, err := lib.Catalog.Add(ctx, b.title, b.author, b.isbn)
		if err != nil {
			fmt.Printf("skip book %q: %v\n", b.title, err)
			continue
		}
		ids = append(ids, book.ID)
		fmt.Printf("added %q (id=%d)\n", book.Title, book.ID)
	}

	if *withLoans && len(ids) >= 2 {
		for i, user := range []string{"alice", "bob"} {
			if _, err := lib.Circulation.Borrow(ctx, user, ids[i]); err != nil {
				fmt.Printf("skip loan for %s: %v\n", user, err)
				continue
			}
			fmt.Printf("%s borrowed book %d\n", user, ids[i])
		}
	}

	fmt.Println("Done.")
}
