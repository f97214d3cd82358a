package engine

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/platform"
)

// Normalize maps raw adapter records into canonical listings. A single
// malformed record never aborts the batch: listings without a usable title or
// price are dropped with a log line.
func Normalize(raws []platform.RawListing, p model.Platform, fetchedAt time.Time) []model.Listing {
	listings := make([]model.Listing, 0, len(raws))

	for _, raw := range raws {
		title := strings.TrimSpace(raw.Title)
		if title == "" {
			continue
		}

		price := raw.Price
		if price == 0 && raw.PriceText != "" {
			parsed, err := ParsePrice(raw.PriceText)
			if err != nil {
				log.Printf("[Normalize] Dropping %s listing with unparsable price %q: %v", p, raw.PriceText, err)
				continue
			}
			price = parsed
		}
		if price <= 0 {
			continue
		}

		currency := raw.Currency
		if currency == "" {
			currency = "EUR"
		}

		listings = append(listings, model.Listing{
			Platform:  p,
			Title:     title,
			Price:     round2(price),
			Currency:  currency,
			URL:       raw.URL,
			ImageURL:  raw.ImageURL,
			Location:  raw.Location,
			FetchedAt: fetchedAt,
		})
	}

	return listings
}

// ParsePrice extracts a decimal amount from marketplace price text such as
// "1.234,56 €" or "EUR 60.00". European formatting is assumed when both
// separators appear; a lone comma is a decimal comma.
func ParsePrice(text string) (float64, error) {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma > lastDot:
		// comma is the decimal separator, dots are thousands
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case lastComma >= 0:
		// dot is the decimal separator, commas are thousands
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	return strconv.ParseFloat(cleaned, 64)
}
