package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/premier-auto/site/listing"
)

// ErrLoadFailure wraps any error from the listing store during a load.
var ErrLoadFailure = errors.New("failed to load listings")

// Source is the listing store as seen by the loader.
type Source interface {
	ListNewestFirst(ctx context.Context) ([]listing.Listing, error)
}

// Load fetches all listings, newest first. A store failure is logged and yields
// an empty collection; it is never returned to the caller.
func Load(ctx context.Context, src Source, logger *slog.Logger) []listing.Listing {
	listings, err := src.ListNewestFirst(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrLoadFailure, err)
		logger.Error("error fetching listings", "error", err)
		return []listing.Listing{}
	}
	if listings == nil {
		return []listing.Listing{}
	}
	return listings
}
