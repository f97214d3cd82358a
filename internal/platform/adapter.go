package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
	"github.com/valyala/fasthttp"
)

const (
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"

	defaultRequestTimeout = 10 * time.Second
)

// RawListing is one platform-specific search hit before normalization.
// Price is set when the marketplace returns a numeric amount, PriceText when
// it returns display text; the normalizer reconciles the two.
type RawListing struct {
	Title     string
	Price     float64
	PriceText string
	Currency  string
	URL       string
	ImageURL  string
	Location  string
}

// Adapter is the single capability every marketplace exposes: search listings
// by keywords. One implementation per platform; the orchestrator treats them
// uniformly and never branches on the platform name.
type Adapter interface {
	Platform() model.Platform
	Search(ctx context.Context, keywords []string, limit int) ([]RawListing, error)
}

var client = &fasthttp.Client{
	ReadTimeout:         defaultRequestTimeout,
	WriteTimeout:        defaultRequestTimeout,
	MaxConnsPerHost:     16,
	MaxIdleConnDuration: time.Minute,
}

// getJSON performs a browser-like GET and decodes the JSON body into out.
// The context deadline bounds the whole request.
func getJSON(ctx context.Context, url string, out interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(defaultRequestTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := client.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// capped truncates hits to the requested limit.
func capped(raws []RawListing, limit int) []RawListing {
	if limit > 0 && len(raws) > limit {
		return raws[:limit]
	}
	return raws
}
