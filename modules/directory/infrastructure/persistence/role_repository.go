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
	roleFindActiveQuery = `
        SELECT
            r.id,
            r.tenant_id,
            r.name,
            COALESCE(r.description, ''),
            r.department_id,
            r.is_active,
            r.created_at
        FROM roles r
        WHERE r.tenant_id = $1 AND r.is_active = TRUE
        ORDER BY r.name`

	roleInsertQuery = `
        INSERT INTO roles (id, tenant_id, name, description, department_id, is_active)
        VALUES ($1, $2, $3, NULLIF($4, ''), $5, TRUE)
        RETURNING created_at`
)

type PgRoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) directory.RoleRepository {
	return &PgRoleRepository{pool: pool}
}

func (r *PgRoleRepository) GetAllActive(ctx context.Context, tenantID uuid.UUID) ([]directory.Role, error) {
	rows, err := r.pool.Query(ctx, roleFindActiveQuery, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	var out []directory.Role
	for rows.Next() {
		var m models.Role
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Name, &m.Description, &m.DepartmentID, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		out = append(out, toDomainRole(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	return out, nil
}

func (r *PgRoleRepository) Create(ctx context.Context, tenantID uuid.UUID, data directory.CreateRole) (directory.Role, error) {
	m := models.Role{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Name:         data.Name,
		Description:  data.Description,
		DepartmentID: data.DepartmentID,
		IsActive:     true,
	}
	if err := r.pool.QueryRow(
		ctx,
		roleInsertQuery,
		m.ID, m.TenantID, m.Name, m.Description, m.DepartmentID,
	).Scan(&m.CreatedAt); err != nil {
		return directory.Role{}, fmt.Errorf("insert role %q: %w", data.Name, err)
	}
	return toDomainRole(m), nil
}
