package repository

import (
	"context"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"
)

// HistoryRepository stores search history: what was searched and what came
// back. Opportunities themselves are intentionally not persisted - each
// search request is independent.
type HistoryRepository interface {
	// SaveSearch records one performed search.
	SaveSearch(ctx context.Context, record *model.SearchRecord) error

	// RecentSearches returns the most recent searches, newest first.
	RecentSearches(ctx context.Context, limit int) ([]model.SearchRecord, error)

	// Close closes the repository connection.
	Close() error
}
