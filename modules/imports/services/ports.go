package services

import (
	"context"

	"github.com/google/uuid"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
	imports "github.com/orgkit/orgconsole/modules/imports/domain"
)

// Store is everything a row processor needs from the backing data
// service: the primary creation calls and the dependent-record writes.
// *services.DirectoryService satisfies it; tests use an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, tenantID uuid.UUID, data directory.CreateUser) (uuid.UUID, error)
	CreateRole(ctx context.Context, tenantID uuid.UUID, data directory.CreateRole) (uuid.UUID, error)
	CreateDepartment(ctx context.Context, tenantID uuid.UUID, data directory.CreateDepartment) (uuid.UUID, error)

	GrantLocationAccess(ctx context.Context, tenantID uuid.UUID, userID, locationID uuid.UUID) error

	AssignDepartment(ctx context.Context, tenantID uuid.UUID, data directory.DepartmentAssignment) (uuid.UUID, error)
	CountDepartmentAssignments(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID) (int, error)
	MarkDepartmentPrimary(ctx context.Context, tenantID uuid.UUID, assignmentID uuid.UUID) error

	AssignRole(ctx context.Context, tenantID uuid.UUID, data directory.RoleAssignment) (uuid.UUID, error)
	CountRoleAssignments(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID) (int, error)
	MarkRolePrimary(ctx context.Context, tenantID uuid.UUID, assignmentID uuid.UUID) error
}

// RowProcessor turns one ImportRow into exactly one RowOutcome,
// performing writes as a side effect.
type RowProcessor interface {
	Kind() imports.Kind
	Process(ctx context.Context, row imports.ImportRow) imports.RowOutcome
}
