package model

import "time"

// SearchRecord is one line of search history: what was searched and what
// came back. Opportunities themselves are never persisted.
type SearchRecord struct {
	ID            int64     `json:"id"`
	Keywords      string    `json:"keywords"`
	PlatformsJSON string    `json:"platforms_searched"`
	Opportunities int       `json:"opportunities"`
	BestScore     float64   `json:"best_score"`
	CreatedAt     time.Time `json:"created_at"`
}
