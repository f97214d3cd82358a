package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/model"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLHistoryRepository implements HistoryRepository using MySQL, for
// deployments where several instances share one history store.
type MySQLHistoryRepository struct {
	db *sql.DB
}

// NewMySQLHistoryRepository opens a MySQL connection and prepares the schema.
func NewMySQLHistoryRepository(dsn string) (*MySQLHistoryRepository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("MySQL ping failed: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS search_history (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		keywords VARCHAR(512) NOT NULL,
		platforms_json TEXT NOT NULL,
		opportunities INT NOT NULL DEFAULT 0,
		best_score DOUBLE NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		INDEX idx_history_created (created_at)
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Println("[MySQLHistoryRepository] Initialized")
	return &MySQLHistoryRepository{db: db}, nil
}

// SaveSearch records one performed search.
func (r *MySQLHistoryRepository) SaveSearch(ctx context.Context, record *model.SearchRecord) error {
	query := `
		INSERT INTO search_history (keywords, platforms_json, opportunities, best_score, created_at)
		VALUES (?, ?, ?, ?, UTC_TIMESTAMP())`

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
func (r *MySQLHistoryRepository) RecentSearches(ctx context.Context, limit int) ([]model.SearchRecord, error) {
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
func (r *MySQLHistoryRepository) Close() error {
	return r.db.Close()
}
