package platform

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

const (
	catawikiBase      = "https://www.catawiki.com"
	catawikiSearchURL = catawikiBase + "/buyer/api/v3/search"
)

type catawikiLot struct {
	Title            string  `json:"title"`
	URLPath          string  `json:"url_path"`
	CurrentBidAmount float64 `json:"current_bid_amount"`
	Currency         string  `json:"currency_code"`
	Image            struct {
		URL string `json:"url"`
	} `json:"image"`
}

type catawikiResponse struct {
	Lots []catawikiLot `json:"lots"`
}

// CatawikiAdapter searches closed catawiki auctions; closing bids stand in
// for achieved sale prices.
type CatawikiAdapter struct{}

func NewCatawikiAdapter() *CatawikiAdapter { return &CatawikiAdapter{} }

func (a *CatawikiAdapter) Platform() model.Platform { return model.PlatformCatawiki }

func (a *CatawikiAdapter) Search(ctx context.Context, keywords []string, limit int) ([]RawListing, error) {
	query := url.Values{}
	query.Set("q", strings.Join(keywords, " "))
	query.Set("status", "closed")
	query.Set("per_page", strconv.Itoa(limit))

	var payload catawikiResponse
	if err := getJSON(ctx, catawikiSearchURL+"?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	raws := make([]RawListing, 0, len(payload.Lots))
	for _, lot := range payload.Lots {
		lotURL := lot.URLPath
		if lotURL != "" && !strings.HasPrefix(lotURL, "http") {
			lotURL = catawikiBase + lotURL
		}
		raws = append(raws, RawListing{
			Title:    lot.Title,
			Price:    lot.CurrentBidAmount,
			Currency: lot.Currency,
			URL:      lotURL,
			ImageURL: lot.Image.URL,
			Location: "Internacional",
		})
	}
	return capped(raws, limit), nil
}
