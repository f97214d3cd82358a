package engine

import (
	"strings"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

// stopwords are tokens that carry no product identity: articles, fillers and
// condition words in Spanish and English.
var stopwords = map[string]struct{}{
	"de": {}, "la": {}, "el": {}, "los": {}, "las": {}, "un": {}, "una": {},
	"en": {}, "y": {}, "con": {}, "para": {}, "por": {}, "sin": {},
	"the": {}, "a": {}, "an": {}, "of": {}, "for": {}, "in": {}, "and": {}, "with": {},
	"nuevo": {}, "nueva": {}, "nuevos": {}, "nuevas": {}, "como": {},
	"new": {}, "used": {}, "usado": {}, "usada": {}, "segunda": {}, "mano": {},
	"original": {}, "envio": {}, "gratis": {},
}

// Pair is a candidate arbitrage: buy cheap on one platform, resell on another.
type Pair struct {
	Buy  model.Listing
	Sell model.Listing
}

// Matcher correlates listings that describe the same physical product across
// platforms. Similarity-based: the same item is listed with different
// phrasing, casing and filler words on each marketplace, so exact title
// equality would match almost nothing.
type Matcher struct {
	// Threshold is the minimum title similarity for two listings to count
	// as the same product.
	Threshold float64
	// MinPriceRatio discards pairs without profit headroom before costing
	// (sell must exceed buy by this factor). The cost model remains the
	// source of truth for profitability.
	MinPriceRatio float64
}

// NewMatcher returns a matcher with the production defaults.
func NewMatcher() Matcher {
	return Matcher{Threshold: 0.5, MinPriceRatio: 1.2}
}

// tokenSet lowercases a title, strips punctuation inside tokens and drops
// stopwords. It returns the base token set and a folded set that also joins
// each adjacent token pair, so "game boy" and "gameboy" meet in the middle.
func tokenSet(title string) (base, folded map[string]struct{}) {
	base = make(map[string]struct{})
	folded = make(map[string]struct{})

	var kept []string
	for _, field := range strings.Fields(strings.ToLower(title)) {
		var b strings.Builder
		for _, r := range field {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r > 127 {
				b.WriteRune(r)
			}
		}
		tok := b.String()
		if tok == "" {
			continue
		}
		if _, skip := stopwords[tok]; skip {
			continue
		}
		kept = append(kept, tok)
		base[tok] = struct{}{}
		folded[tok] = struct{}{}
	}

	for i := 0; i+1 < len(kept); i++ {
		folded[kept[i]+kept[i+1]] = struct{}{}
	}
	return base, folded
}

// TitleSimilarity scores two titles in [0,1] using the overlap coefficient of
// their folded token sets: |A∩B| / min(|A|,|B|) over base token counts.
func TitleSimilarity(a, b string) float64 {
	baseA, foldedA := tokenSet(a)
	baseB, foldedB := tokenSet(b)

	minLen := len(baseA)
	if len(baseB) < minLen {
		minLen = len(baseB)
	}
	if minLen == 0 {
		return 0
	}

	shared := 0
	small, large := foldedA, foldedB
	if len(foldedB) < len(foldedA) {
		small, large = foldedB, foldedA
	}
	for tok := range small {
		if _, ok := large[tok]; ok {
			shared++
		}
	}

	sim := float64(shared) / float64(minLen)
	if sim > 1 {
		sim = 1
	}
	return sim
}

// Match pairs each listing with its resale candidates on other platforms.
// Platform is a hard partition: a pair never has buy and sell on the same
// marketplace. To bound the pair count, only the cheapest qualifying sell
// candidate per platform is kept for each buy listing.
func (m Matcher) Match(listings []model.Listing) []Pair {
	var pairs []Pair

	for i, buy := range listings {
		// cheapest qualifying sell candidate per platform
		best := make(map[model.Platform]int)

		for j, sell := range listings {
			if i == j || sell.Platform == buy.Platform {
				continue
			}
			if sell.Price <= buy.Price*m.MinPriceRatio {
				continue
			}
			if TitleSimilarity(buy.Title, sell.Title) < m.Threshold {
				continue
			}
			if cur, ok := best[sell.Platform]; !ok || sell.Price < listings[cur].Price {
				best[sell.Platform] = j
			}
		}

		for _, p := range model.AllPlatforms {
			if j, ok := best[p]; ok {
				pairs = append(pairs, Pair{Buy: buy, Sell: listings[j]})
			}
		}
	}

	return pairs
}
