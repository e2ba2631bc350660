package directory

import (
	"context"

	"github.com/google/uuid"
)

type LocationRepository interface {
	GetAll(ctx context.Context, tenantID uuid.UUID) ([]Location, error)
}

type DepartmentRepository interface {
	GetAll(ctx context.Context, tenantID uuid.UUID) ([]Department, error)
	Create(ctx context.Context, tenantID uuid.UUID, data CreateDepartment) (Department, error)
}

type RoleRepository interface {
	GetAllActive(ctx context.Context, tenantID uuid.UUID) ([]Role, error)
	Create(ctx context.Context, tenantID uuid.UUID, data CreateRole) (Role, error)
}

type ProfileRepository interface {
	GetAll(ctx context.Context, tenantID uuid.UUID) ([]Profile, error)
}

type UserRepository interface {
	Create(ctx context.Context, tenantID uuid.UUID, data CreateUser) (uuid.UUID, error)
}

// AssignmentRepository covers the dependent-record writes performed after
// a user is created. Primary designation is a separate step: the caller
// inserts, counts the user's assignments, and marks the first one
// primary.
type AssignmentRepository interface {
	GrantLocationAccess(ctx context.Context, tenantID uuid.UUID, userID, locationID uuid.UUID) error

	AssignDepartment(ctx context.Context, tenantID uuid.UUID, data DepartmentAssignment) (uuid.UUID, error)
	CountDepartmentAssignments(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID) (int, error)
	MarkDepartmentPrimary(ctx context.Context, tenantID uuid.UUID, assignmentID uuid.UUID) error

	AssignRole(ctx context.Context, tenantID uuid.UUID, data RoleAssignment) (uuid.UUID, error)
	CountRoleAssignments(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID) (int, error)
	MarkRolePrimary(ctx context.Context, tenantID uuid.UUID, assignmentID uuid.UUID) error
}
