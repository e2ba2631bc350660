package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
)

// DirectoryService fronts the organisation reference data store. The
// import engine talks to it for snapshot loading, primary entity
// creation, and dependent-record writes.
type DirectoryService struct {
	locations   directory.LocationRepository
	departments directory.DepartmentRepository
	roles       directory.RoleRepository
	profiles    directory.ProfileRepository
	users       directory.UserRepository
	assignments directory.AssignmentRepository
	log         *logrus.Logger
}

func NewDirectoryService(
	locations directory.LocationRepository,
	departments directory.DepartmentRepository,
	roles directory.RoleRepository,
	profiles directory.ProfileRepository,
	users directory.UserRepository,
	assignments directory.AssignmentRepository,
	log *logrus.Logger,
) *DirectoryService {
	return &DirectoryService{
		locations:   locations,
		departments: departments,
		roles:       roles,
		profiles:    profiles,
		users:       users,
		assignments: assignments,
		log:         log,
	}
}

// LoadSnapshot fetches the reference data for one import session. The
// returned snapshot is never refreshed mid-batch.
func (s *DirectoryService) LoadSnapshot(ctx context.Context, tenantID uuid.UUID) (directory.Snapshot, error) {
	locations, err := s.locations.GetAll(ctx, tenantID)
	if err != nil {
		return directory.Snapshot{}, err
	}
	departments, err := s.departments.GetAll(ctx, tenantID)
	if err != nil {
		return directory.Snapshot{}, err
	}
	roles, err := s.roles.GetAllActive(ctx, tenantID)
	if err != nil {
		return directory.Snapshot{}, err
	}
	profiles, err := s.profiles.GetAll(ctx, tenantID)
	if err != nil {
		return directory.Snapshot{}, err
	}

	s.log.WithFields(logrus.Fields{
		"tenant":      tenantID,
		"locations":   len(locations),
		"departments": len(departments),
		"roles":       len(roles),
		"profiles":    len(profiles),
	}).Debug("directory snapshot loaded")

	return directory.Snapshot{
		Locations:   locations,
		Departments: departments,
		Roles:       roles,
		Profiles:    profiles,
	}, nil
}

func (s *DirectoryService) CreateUser(ctx context.Context, tenantID uuid.UUID, data directory.CreateUser) (uuid.UUID, error) {
	return s.users.Create(ctx, tenantID, data)
}

func (s *DirectoryService) CreateRole(ctx context.Context, tenantID uuid.UUID, data directory.CreateRole) (uuid.UUID, error) {
	role, err := s.roles.Create(ctx, tenantID, data)
	if err != nil {
		return uuid.Nil, err
	}
	return role.ID, nil
}

func (s *DirectoryService) CreateDepartment(ctx context.Context, tenantID uuid.UUID, data directory.CreateDepartment) (uuid.UUID, error) {
	department, err := s.departments.Create(ctx, tenantID, data)
	if err != nil {
		return uuid.Nil, err
	}
	return department.ID, nil
}

func (s *DirectoryService) GrantLocationAccess(ctx context.Context, tenantID uuid.UUID, userID, locationID uuid.UUID) error {
	return s.assignments.GrantLocationAccess(ctx, tenantID, userID, locationID)
}

func (s *DirectoryService) AssignDepartment(ctx context.Context, tenantID uuid.UUID, data directory.DepartmentAssignment) (uuid.UUID, error) {
	return s.assignments.AssignDepartment(ctx, tenantID, data)
}

func (s *DirectoryService) CountDepartmentAssignments(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID) (int, error) {
	return s.assignments.CountDepartmentAssignments(ctx, tenantID, userID)
}

func (s *DirectoryService) MarkDepartmentPrimary(ctx context.Context, tenantID uuid.UUID, assignmentID uuid.UUID) error {
	return s.assignments.MarkDepartmentPrimary(ctx, tenantID, assignmentID)
}

func (s *DirectoryService) AssignRole(ctx context.Context, tenantID uuid.UUID, data directory.RoleAssignment) (uuid.UUID, error) {
	return s.assignments.AssignRole(ctx, tenantID, data)
}

func (s *DirectoryService) CountRoleAssignments(ctx context.Context, tenantID uuid.UUID, userID uuid.UUID) (int, error) {
	return s.assignments.CountRoleAssignments(ctx, tenantID, userID)
}

func (s *DirectoryService) MarkRolePrimary(ctx context.Context, tenantID uuid.UUID, assignmentID uuid.UUID) error {
	return s.assignments.MarkRolePrimary(ctx, tenantID, assignmentID)
}
