package model

import "time"

// Platform identifies one external marketplace.
type Platform string

const (
	PlatformWallapop Platform = "wallapop"
	PlatformEbay     Platform = "ebay"
	PlatformVinted   Platform = "vinted"
	PlatformCatawiki Platform = "catawiki"
)

// AllPlatforms is the configured platform set, in stable output order.
// Every search reports one stats entry per platform in this list.
var AllPlatforms = []Platform{
	PlatformWallapop,
	PlatformEbay,
	PlatformVinted,
	PlatformCatawiki,
}

// Listing is a normalized marketplace listing. Immutable once constructed;
// downstream stages build new records instead of mutating it.
type Listing struct {
	Platform  Platform  `json:"platform"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	URL       string    `json:"url"`
	ImageURL  string    `json:"image_url,omitempty"`
	Location  string    `json:"location,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}
