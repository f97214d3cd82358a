package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteHistoryRepository implements HistoryRepository using SQLite.
// Thread-safe with WAL mode for high-concurrency reads.
type SQLiteHistoryRepository struct {
	db *sql.DB
}

// NewSQLiteHistoryRepository creates a new SQLite history repository.
// dbPath is the path to the SQLite database file (e.g., "./data/history.db")
func NewSQLiteHistoryRepository(dbPath string) (*SQLiteHistoryRepository, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := createHistoryTable(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("[SQLiteHistoryRepository] Initialized with database: %s", dbPath)
	return &SQLiteHistoryRepository{db: db}, nil
}

func createHistoryTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS search_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		keywords TEXT NOT NULL,
		platforms_json TEXT NOT NULL,
		opportunities INTEGER NOT NULL DEFAULT 0,
		best_score REAL NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_created ON search_history(created_at);
	`
	_, err := db.Exec(query)
	return err
}

// SaveSearch records one performed search.
func (r *SQLiteHistoryRepository) SaveSearch(ctx context.Context, record *model.SearchRecord) error {
	query := `
		INSERT INTO search_history (keywords, platforms_json, opportunities, best_score, created_at)
		VALUES (?, ?, ?, ?, datetime('now'))`

	result, err := r.db.ExecContext(ctx, query,
		record.Keywords, record.PlatformsJSON, record.Opportunities, record.BestScore)
	if err != nil {
		return fmt.Errorf("failed to save search: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		record.ID = id
	}
	return nil
}

// RecentSearches returns the most recent searches, newest first.
func (r *SQLiteHistoryRepository) RecentSearches(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	query := `
		SELECT id, keywords, platforms_json, opportunities, best_score, created_at
		FROM search_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	records := []model.SearchRecord{}
	for rows.Next() {
		var rec model.SearchRecord
		var createdAt sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.Keywords, &rec.PlatformsJSON,
			&rec.Opportunities, &rec.BestScore, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if createdAt.Valid {
			rec.CreatedAt = createdAt.Time
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (r *SQLiteHistoryRepository) Close() error {
	return r.db.Close()
}
