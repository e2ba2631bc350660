package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
)

const (
	userInsertQuery = `
        INSERT INTO users (
            id, tenant_id, email, first_name, last_name, full_name,
            username, phone, employee_id, access_level, manager_id
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11)
        RETURNING id`
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) directory.UserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, tenantID uuid.UUID, data directory.CreateUser) (uuid.UUID, error) {
	id := uuid.New()
	fullName := strings.TrimSpace(data.FullName)
	if fullName == "" {
		fullName = strings.TrimSpace(data.FirstName + " " + data.LastName)
	}
	username := data.Email
	if at := strings.IndexByte(data.Email, '@'); at > 0 {
		username = data.Email[:at]
	}

	var createdID uuid.UUID
	if err := r.pool.QueryRow(
		ctx,
		userInsertQuery,
		id,
		tenantID,
		strings.ToLower(strings.TrimSpace(data.Email)),
		data.FirstName,
		data.LastName,
		fullName,
		username,
		data.Phone,
		data.EmployeeID,
		data.AccessLevel,
		data.ManagerID,
	).Scan(&createdID); err != nil {
		return uuid.Nil, fmt.Errorf("insert user %s: %w", data.Email, err)
	}
	return createdID, nil
}
