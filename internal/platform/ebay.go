package platform

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

const ebayFindingURL = "https://svcs.ebay.com/services/search/FindingService/v1"

// ebayFindingResponse mirrors the Finding API JSON envelope, which wraps
// every field in a single-element array.
type ebayFindingResponse struct {
	FindCompletedItemsResponse []struct {
		SearchResult []struct {
			Item []struct {
				Title         []string `json:"title"`
				ViewItemURL   []string `json:"viewItemURL"`
				GalleryURL    []string `json:"galleryURL"`
				Location      []string `json:"location"`
				SellingStatus []struct {
					CurrentPrice []struct {
						Value      string `json:"__value__"`
						CurrencyID string `json:"@currencyId"`
					} `json:"currentPrice"`
				} `json:"sellingStatus"`
			} `json:"item"`
		} `json:"searchResult"`
	} `json:"findCompletedItemsResponse"`
}

// EbayAdapter searches completed (sold) items through the eBay Finding API.
// Completed sales approximate realistic resale prices better than live asks.
type EbayAdapter struct {
	appID string
}

// NewEbayAdapter creates the adapter. An empty appID is allowed; searches
// will fail per request and the orchestrator degrades that platform to a
// zero-count entry.
func NewEbayAdapter(appID string) *EbayAdapter {
	return &EbayAdapter{appID: appID}
}

func (a *EbayAdapter) Platform() model.Platform { return model.PlatformEbay }

func (a *EbayAdapter) Search(ctx context.Context, keywords []string, limit int) ([]RawListing, error) {
	if a.appID == "" {
		return nil, fmt.Errorf("ebay: EBAY_APP_ID not configured")
	}

	query := url.Values{}
	query.Set("OPERATION-NAME", "findCompletedItems")
	query.Set("SERVICE-VERSION", "1.13.0")
	query.Set("SECURITY-APPNAME", a.appID)
	query.Set("RESPONSE-DATA-FORMAT", "JSON")
	query.Set("GLOBAL-ID", "EBAY-ES")
	query.Set("keywords", strings.Join(keywords, " "))
	query.Set("itemFilter(0).name", "SoldItemsOnly")
	query.Set("itemFilter(0).value", "true")
	query.Set("paginationInput.entriesPerPage", strconv.Itoa(limit))

	var payload ebayFindingResponse
	if err := getJSON(ctx, ebayFindingURL+"?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	var raws []RawListing
	for _, resp := range payload.FindCompletedItemsResponse {
		for _, result := range resp.SearchResult {
			for _, item := range result.Item {
				raw := RawListing{}
				if len(item.Title) > 0 {
					raw.Title = item.Title[0]
				}
				if len(item.ViewItemURL) > 0 {
					raw.URL = item.ViewItemURL[0]
				}
				if len(item.GalleryURL) > 0 {
					raw.ImageURL = item.GalleryURL[0]
				}
				if len(item.Location) > 0 {
					raw.Location = item.Location[0]
				}
				if len(item.SellingStatus) > 0 && len(item.SellingStatus[0].CurrentPrice) > 0 {
					price := item.SellingStatus[0].CurrentPrice[0]
					raw.PriceText = price.Value
					raw.Currency = price.CurrencyID
				}
				raws = append(raws, raw)
			}
		}
	}
	return capped(raws, limit), nil
}
