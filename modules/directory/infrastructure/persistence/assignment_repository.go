package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
)

const (
	locationAccessInsertQuery = `
        INSERT INTO physical_location_access (id, tenant_id, user_id, location_id)
        VALUES ($1, $2, $3, $4)`

	userDepartmentInsertQuery = `
        INSERT INTO user_departments (id, tenant_id, user_id, department_id, pairing_id, is_primary)
        VALUES ($1, $2, $3, $4, $5, FALSE)
        RETURNING id`

	userDepartmentCountQuery = `
        SELECT COUNT(*) FROM user_departments WHERE tenant_id = $1 AND user_id = $2`

	userDepartmentMarkPrimaryQuery = `
        UPDATE user_departments SET is_primary = TRUE WHERE tenant_id = $1 AND id = $2`

	userRoleInsertQuery = `
        INSERT INTO user_roles (id, tenant_id, user_id, role_id, pairing_id, is_primary)
        VALUES ($1, $2, $3, $4, $5, FALSE)
        RETURNING id`

	userRoleCountQuery = `
        SELECT COUNT(*) FROM user_roles WHERE tenant_id = $1 AND user_id = $2`

	userRoleMarkPrimaryQuery = `
        UPDATE user_roles SET is_primary = TRUE WHERE tenant_id = $1 AND id = $2`
)

type PgAssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) directory.AssignmentRepository {
	return &PgAssignmentRepository{pool: pool}
}

func (r *PgAssignmentRepository) GrantLocationAccess(ctx context.Context, tenantID uuid.UUID, userID, locationID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, locationAccessInsertQuery, uuid.New(), tenantID, userID, locationID); err != nil {
		return fmt.Errorf("insert physical_location_access: %w", err)
	}
	return nil
}

func (r *PgAssignmentRepository) AssignDepartment(ctx context.Context, tenantID uuid.UUID, data directory.DepartmentAssignment) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.pool.QueryRow(
		ctx,
		userDepartmentInsertQuery,
		uuid.New(), tenantID, data.UserID, data.DepartmentID, data.PairingID,
	).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("insert user_departments: %w", err)
	}
	return id, nil
}

func (r *PgAssignmentRepository) CountDepartmentAssignments(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, userDepartmentCountQuery, tenantID, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count user_departments: %w", err)
	}
	return count, nil
}

func (r *PgAssignmentRepository) MarkDepartmentPrimary(ctx context.Context, tenantID uuid.UUID, assignmentID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, userDepartmentMarkPrimaryQuery, tenantID, assignmentID)
	if err != nil {
		return fmt.Errorf("mark user_departments primary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return directory.ErrAssignmentNotFound
	}
	return nil
}

func (r *PgAssignmentRepository) AssignRole(ctx context.Context, tenantID uuid.UUID, data directory.RoleAssignment) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.pool.QueryRow(
		ctx,
		userRoleInsertQuery,
		uuid.New(), tenantID, data.UserID, data.RoleID, data.PairingID,
	).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("insert user_roles: %w", err)
	}
	return id, nil
}

func (r *PgAssignmentRepository) CountRoleAssignments(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, userRoleCountQuery, tenantID, userID).Scan(&count); err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("count user_roles: %w", err)
	}
	return count, nil
}

func (r *PgAssignmentRepository) MarkRolePrimary(ctx context.Context, tenantID uuid.UUID, assignmentID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, userRoleMarkPrimaryQuery, tenantID, assignmentID)
	if err != nil {
		return fmt.Errorf("mark user_roles primary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return directory.ErrAssignmentNotFound
	}
	return nil
}
