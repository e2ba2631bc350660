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
	profileFindQuery = `
        SELECT
            u.id,
            COALESCE(u.full_name, ''),
            COALESCE(u.username, ''),
            u.email
        FROM users u
        WHERE u.tenant_id = $1
        ORDER BY u.email`
)

// PgProfileRepository reads the manager-lookup projection of existing
// users.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) directory.ProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) GetAll(ctx context.Context, tenantID uuid.UUID) ([]directory.Profile, error) {
	rows, err := r.pool.Query(ctx, profileFindQuery, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var out []directory.Profile
	for rows.Next() {
		var m models.Profile
		if err := rows.Scan(&m.ID, &m.FullName, &m.Username, &m.Email); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, toDomainProfile(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}
