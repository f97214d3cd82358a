package platform

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

const (
	vintedBase      = "https://www.vinted.es"
	vintedSearchURL = vintedBase + "/api/v2/catalog/items"
)

type vintedItem struct {
	Title string `json:"title"`
	Price struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currency_code"`
	} `json:"price"`
	URL   string `json:"url"`
	Photo *struct {
		URL string `json:"url"`
	} `json:"photo"`
	City string `json:"city"`
}

type vintedResponse struct {
	Items []vintedItem `json:"items"`
}

// VintedAdapter searches the vinted catalog API.
type VintedAdapter struct{}

func NewVintedAdapter() *VintedAdapter { return &VintedAdapter{} }

func (a *VintedAdapter) Platform() model.Platform { return model.PlatformVinted }

func (a *VintedAdapter) Search(ctx context.Context, keywords []string, limit int) ([]RawListing, error) {
	query := url.Values{}
	query.Set("search_text", strings.Join(keywords, " "))
	query.Set("per_page", strconv.Itoa(limit))
	query.Set("order", "relevance")

	var payload vintedResponse
	if err := getJSON(ctx, vintedSearchURL+"?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	raws := make([]RawListing, 0, len(payload.Items))
	for _, item := range payload.Items {
		itemURL := item.URL
		if itemURL != "" && !strings.HasPrefix(itemURL, "http") {
			itemURL = vintedBase + itemURL
		}
		raw := RawListing{
			Title:     item.Title,
			PriceText: item.Price.Amount,
			Currency:  item.Price.CurrencyCode,
			URL:       itemURL,
			Location:  item.City,
		}
		if item.Photo != nil {
			raw.ImageURL = item.Photo.URL
		}
		raws = append(raws, raw)
	}
	return capped(raws, limit), nil
}
