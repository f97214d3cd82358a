package engine

import (
	"math"
	"testing"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

func TestTitleSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "iPhone 12 Pro 128GB", "iPhone 12 Pro 128GB", 1.0},
		{"case and fillers", "Nintendo Switch nueva", "nintendo switch", 1.0},
		{"split vs joined brand", "Game Boy Color Azul", "Gameboy Color blue handheld", 0.5},
		{"unrelated", "bicicleta de montaña", "cafetera italiana", 0.0},
		{"empty", "", "iphone", 0.0},
		{"only stopwords", "de la en con", "iphone 12", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TitleSimilarity(%q, %q) = %.4f, want %.4f", tt.a, tt.b, got, tt.want)
			}
			// commutative
			if rev := TitleSimilarity(tt.b, tt.a); math.Abs(rev-got) > 1e-9 {
				t.Errorf("TitleSimilarity not symmetric: %.4f vs %.4f", got, rev)
			}
		})
	}
}

func TestMatchCrossPlatformPairing(t *testing.T) {
	listings := []model.Listing{
		{Platform: model.PlatformWallapop, Title: "Game Boy Color Azul", Price: 30},
		{Platform: model.PlatformEbay, Title: "Gameboy Color blue handheld", Price: 65},
	}

	pairs := NewMatcher().Match(listings)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].Buy.Platform != model.PlatformWallapop || pairs[0].Sell.Platform != model.PlatformEbay {
		t.Errorf("pair direction %s -> %s, want wallapop -> ebay",
			pairs[0].Buy.Platform, pairs[0].Sell.Platform)
	}
}

func TestMatchNeverPairsSamePlatform(t *testing.T) {
	listings := []model.Listing{
		{Platform: model.PlatformWallapop, Title: "gameboy color", Price: 30},
		{Platform: model.PlatformWallapop, Title: "gameboy color", Price: 80},
		{Platform: model.PlatformWallapop, Title: "gameboy color", Price: 120},
	}

	if pairs := NewMatcher().Match(listings); len(pairs) != 0 {
		t.Errorf("same-platform listings produced %d pairs, want 0", len(pairs))
	}
}

func TestMatchPriceHeadroom(t *testing.T) {
	listings := []model.Listing{
		{Platform: model.PlatformWallapop, Title: "gameboy color", Price: 30},
		// exactly at the ratio boundary, not above it
		{Platform: model.PlatformEbay, Title: "gameboy color", Price: 36},
	}

	if pairs := NewMatcher().Match(listings); len(pairs) != 0 {
		t.Errorf("sell at exactly ratio*buy produced %d pairs, want 0", len(pairs))
	}
}

func TestMatchKeepsCheapestSellPerPlatform(t *testing.T) {
	listings := []model.Listing{
		{Platform: model.PlatformWallapop, Title: "gameboy color", Price: 30},
		{Platform: model.PlatformEbay, Title: "gameboy color", Price: 65, URL: "https://e/expensive"},
		{Platform: model.PlatformEbay, Title: "gameboy color", Price: 60, URL: "https://e/cheap"},
		{Platform: model.PlatformVinted, Title: "gameboy color", Price: 70, URL: "https://v/1"},
	}

	pairs := NewMatcher().Match(listings)
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2 (one per sell platform)", len(pairs))
	}
	for _, p := range pairs {
		if p.Sell.Platform == model.PlatformEbay && p.Sell.Price != 60 {
			t.Errorf("ebay sell candidate price %.2f, want the cheaper 60", p.Sell.Price)
		}
	}
}

func TestMatchBelowThreshold(t *testing.T) {
	listings := []model.Listing{
		{Platform: model.PlatformWallapop, Title: "gameboy color azul", Price: 30},
		{Platform: model.PlatformEbay, Title: "playstation 5 mando", Price: 120},
	}

	if pairs := NewMatcher().Match(listings); len(pairs) != 0 {
		t.Errorf("dissimilar titles produced %d pairs, want 0", len(pairs))
	}
}
