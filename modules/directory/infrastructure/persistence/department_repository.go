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
	departmentFindQuery = `
        SELECT
            d.id,
            d.tenant_id,
            d.name,
            COALESCE(d.description, ''),
            d.manager_id,
            d.created_at
        FROM departments d
        WHERE d.tenant_id = $1
        ORDER BY d.name`

	departmentInsertQuery = `
        INSERT INTO departments (id, tenant_id, name, description, manager_id)
        VALUES ($1, $2, $3, NULLIF($4, ''), $5)
        RETURNING created_at`
)

type PgDepartmentRepository struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepository(pool *pgxpool.Pool) directory.DepartmentRepository {
	return &PgDepartmentRepository{pool: pool}
}

func (r *PgDepartmentRepository) GetAll(ctx context.Context, tenantID uuid.UUID) ([]directory.Department, error) {
	rows, err := r.pool.Query(ctx, departmentFindQuery, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query departments: %w", err)
	}
	defer rows.Close()

	var out []directory.Department
	for rows.Next() {
		var m models.Department
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Name, &m.Description, &m.ManagerID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		out = append(out, toDomainDepartment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate departments: %w", err)
	}
	return out, nil
}

func (r *PgDepartmentRepository) Create(ctx context.Context, tenantID uuid.UUID, data directory.CreateDepartment) (directory.Department, error) {
	m := models.Department{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Name:        data.Name,
		Description: data.Description,
		ManagerID:   data.ManagerID,
	}
	if err := r.pool.QueryRow(
		ctx,
		departmentInsertQuery,
		m.ID, m.TenantID, m.Name, m.Description, m.ManagerID,
	).Scan(&m.CreatedAt); err != nil {
		return directory.Department{}, fmt.Errorf("insert department %q: %w", data.Name, err)
	}
	return toDomainDepartment(m), nil
}
