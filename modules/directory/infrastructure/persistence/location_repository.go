package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
	"github.com/orgkit/orgconsole/modules/directory/infrastructure/persistence/models"
)

const (
	locationFindQuery = `
        SELECT
            l.id,
            l.tenant_id,
            l.name,
            l.created_at
        FROM locations l
        WHERE l.tenant_id = $1
        ORDER BY l.name`
)

type PgLocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) directory.LocationRepository {
	return &PgLocationRepository{pool: pool}
}

func (r *PgLocationRepository) GetAll(ctx context.Context, tenantID uuid.UUID) ([]directory.Location, error) {
	rows, err := r.pool.Query(ctx, locationFindQuery, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	var out []directory.Location
	for rows.Next() {
		var m models.Location
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, toDomainLocation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return out, nil
}
