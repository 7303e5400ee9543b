// Package importers holds placeholder clients for external listing sources.
// The upstream APIs are partner-only or undocumented, so these are swappable
// data-ingestion plugins behind the store's CreateProperty contract, not part
// of any core flow.
package importers

import "context"

// systemUserID attributes imported listings to the default system user.
const systemUserID = 1

// Importer fetches listings from one external source and stores them.
type Importer interface {
	Name() string
	// Run returns the number of listings created. No retry or backoff is
	// applied; a fetch failure surfaces as the error.
	Run(ctx context.Context) (int, error)
}
