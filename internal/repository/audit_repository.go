package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// AuditRepository appends to the log_entries table. Append-only; entries
// are never updated or deleted.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.LogEntry) error
	ListByEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]domain.LogEntry, error)
	List(ctx context.Context, limit, offset int) ([]domain.LogEntry, error)
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository instantiates repository.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	const query = `
        INSERT INTO log_entries (actor_user_id, action, entity_type, entity_id, details, origin)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		entry.ActorID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Details,
		entry.Origin,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *auditRepository) ListByEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]domain.LogEntry, error) {
	const query = `
        SELECT id, actor_user_id, action, entity_type, entity_id, details, origin, created_at
        FROM log_entries
        WHERE entity_type = $1 AND entity_id = $2
        ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.list(ctx, query, []any{entityType, entityID}, limit, offset)
}

func (r *auditRepository) List(ctx context.Context, limit, offset int) ([]domain.LogEntry, error) {
	const query = `
        SELECT id, actor_user_id, action, entity_type, entity_id, details, origin, created_at
        FROM log_entries
        ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, nil, limit, offset)
}

func (r *auditRepository) list(ctx context.Context, query string, args []any, limit, offset int) ([]domain.LogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LogEntry
	for rows.Next() {
		var entry domain.LogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.ActorID,
			&entry.Action,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Details,
			&entry.Origin,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
