package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/passforge/passforge-go/internal/model"
)

// EventRepository persists generation events.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const createEventsTable = `CREATE TABLE IF NOT EXISTS generation_events (
	id         CHAR(36)     NOT NULL PRIMARY KEY,
	length     INT          NOT NULL,
	pool_size  INT          NOT NULL,
	classes    VARCHAR(64)  NOT NULL,
	entropy    INT          NOT NULL,
	strength   VARCHAR(16)  NOT NULL,
	source     VARCHAR(16)  NOT NULL,
	created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
	INDEX idx_generation_events_created_at (created_at)
)`

// OpenEventRepository wraps db and makes sure the events table exists. The
// repository is returned even when migrating fails, so callers decide whether
// a missing table is fatal.
func OpenEventRepository(ctx context.Context, db *sql.DB) (*EventRepository, error) {
	repo := NewEventRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return repo, fmt.Errorf("migrating generation_events: %w", err)
	}
	return repo, nil
}

// Migrate creates the events table if it does not exist.
func (r *EventRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createEventsTable)
	return err
}

// Insert stores a generation event.
func (r *EventRepository) Insert(ctx context.Context, e *model.GenerationEvent) error {
	query := `INSERT INTO generation_events (id, length, pool_size, classes, entropy, strength, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Length,
		e.PoolSize,
		e.Classes,
		e.Entropy,
		e.Strength,
		e.Source,
		e.CreatedAt,
	)
	return err
}

// CountByStrength returns the number of events per strength label.
func (r *EventRepository) CountByStrength(ctx context.Context) ([]model.StrengthCount, error) {
	query := `SELECT strength, COUNT(*) FROM generation_events GROUP BY strength ORDER BY strength`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []model.StrengthCount
	for rows.Next() {
		var c model.StrengthCount
		if err := rows.Scan(&c.Strength, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// AverageEntropy returns the mean entropy over all events, or 0 when there are none.
func (r *EventRepository) AverageEntropy(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(AVG(entropy), 0) FROM generation_events`

	var avg float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

// ListRecent retrieves the most recent events, newest first.
func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]model.GenerationEvent, error) {
	query := `SELECT id, length, pool_size, classes, entropy, strength, source, created_at
		FROM generation_events ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.GenerationEvent
	for rows.Next() {
		var e model.GenerationEvent
		if err := rows.Scan(
			&e.ID, &e.Length, &e.PoolSize, &e.Classes,
			&e.Entropy, &e.Strength, &e.Source, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
