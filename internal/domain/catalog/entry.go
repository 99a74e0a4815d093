package catalog

import "context"

// CatalogEntry is one item produced by a full catalog ingestion. Entries are
// rebuilt on every ingestion run and are never persisted as-is; SyncCatalog
// turns them into Products.
type CatalogEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// EntryRef is a lightweight reference returned by the listing endpoint of the
// catalog source. The detail for each reference is fetched separately.
type EntryRef struct {
	Name string
	URL  string
}

// ListingPage is one page of the paginated listing endpoint.
type ListingPage struct {
	Results []EntryRef
	// Next is the URL of the following page, empty on the last page.
	Next string
}

// Source is the external catalog the ingestor pulls from.
type Source interface {
	// ListPage fetches one page of the listing. url is the absolute page URL;
	// an empty url means the configured first page.
	ListPage(ctx context.Context, url string) (*ListingPage, error)
	// FetchDetail fetches the detail document behind one EntryRef and maps it
	// to a CatalogEntry.
	FetchDetail(ctx context.Context, ref EntryRef) (*CatalogEntry, error)
}
