package platform

import (
	"context"
	"net/url"
	"strings"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

const (
	wallapopSearchURL = "https://api.wallapop.com/api/v3/general/search"
	wallapopItemBase  = "https://es.wallapop.com/item/"
)

// wallapopItem mirrors the relevant part of the wallapop search API payload.
type wallapopItem struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	WebSlug  string  `json:"web_slug"`
	Images   []struct {
		Small string `json:"small"`
	} `json:"images"`
	Location struct {
		City string `json:"city"`
	} `json:"location"`
}

type wallapopResponse struct {
	SearchObjects []wallapopItem `json:"search_objects"`
}

// WallapopAdapter searches the wallapop public search API.
type WallapopAdapter struct{}

func NewWallapopAdapter() *WallapopAdapter { return &WallapopAdapter{} }

func (a *WallapopAdapter) Platform() model.Platform { return model.PlatformWallapop }

func (a *WallapopAdapter) Search(ctx context.Context, keywords []string, limit int) ([]RawListing, error) {
	query := url.Values{}
	query.Set("keywords", strings.Join(keywords, " "))
	query.Set("order_by", "most_relevance")

	var payload wallapopResponse
	if err := getJSON(ctx, wallapopSearchURL+"?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	raws := make([]RawListing, 0, len(payload.SearchObjects))
	for _, item := range payload.SearchObjects {
		raw := RawListing{
			Title:    item.Title,
			Price:    item.Price,
			Currency: item.Currency,
			URL:      wallapopItemBase + item.WebSlug,
			Location: item.Location.City,
		}
		if len(item.Images) > 0 {
			raw.ImageURL = item.Images[0].Small
		}
		raws = append(raws, raw)
	}
	return capped(raws, limit), nil
}
