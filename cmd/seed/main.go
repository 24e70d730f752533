// Command seed creates the listings schema and imports vehicles from a JSON or
// XLSX file.
//
//	seed -db autolot.db -file listings.xlsx -reset
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/premier-auto/site/config"
	"github.com/premier-auto/site/db"
	"github.com/premier-auto/site/listing"
	"github.com/premier-auto/site/logging"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stdout)
	dbURL := fs.String("db", "", "database URL or sqlite path (default: configured database.url)")
	file := fs.String("file", "", "listings file, .json or .xlsx (default: built-in sample inventory)")
	reset := fs.Bool("reset", false, "delete existing listings before importing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	log := logging.Component(logging.New(cfg.Log, stdout), "seed")

	if *dbURL == "" {
		*dbURL = cfg.Database.URL
	}

	listings, err := readListings(*file)
	if err != nil {
		return err
	}
	log.Info("listings parsed", "count", len(listings), "source", sourceName(*file))

	conn, dialect, err := db.Open(ctx, *dbURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn, dialect, log); err != nil {
		return err
	}

	store := listing.NewStore(conn)
	if *reset {
		n, err := store.DeleteAll(ctx)
		if err != nil {
			return err
		}
		log.Info("existing listings deleted", "count", n)
	}

	inserted, err := insertAll(ctx, store, listings, time.Now().UTC(), log)
	if err != nil {
		return err
	}
	log.Info("import complete", "inserted", inserted, "dialect", dialect)
	return nil
}

type inserter interface {
	Insert(ctx context.Context, l listing.Listing) (listing.Listing, error)
}

// insertAll stores listings in file order. Listings without a creation time are
// stamped a minute apart from now backwards so the first entry is the newest.
func insertAll(ctx context.Context, store inserter, listings []listing.Listing, now time.Time, log *slog.Logger) (int, error) {
	for i, l := range listings {
		if l.CreatedAt.IsZero() {
			l.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		}
		saved, err := store.Insert(ctx, l)
		if err != nil {
			return i, fmt.Errorf("listing %d (%s): %w", i+1, l.Title(), err)
		}
		log.Debug("listing inserted", "id", saved.ID, "title", saved.Title())
	}
	return len(listings), nil
}

func sourceName(file string) string {
	if file == "" {
		return "sample"
	}
	return file
}
