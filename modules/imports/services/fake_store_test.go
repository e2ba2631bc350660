package services_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
)

func newSilentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// fakeStore records every write and lets tests inject failures per
// operation. Counts are derived from recorded assignments unless
// overridden. Guarded by mu so tests may observe it while a batch runs.
type fakeStore struct {
	mu sync.Mutex

	createUserErr error
	createRoleErr error
	createDeptErr error
	grantErr      error
	assignDeptErr error
	countDeptErr  error
	markDeptErr   error
	assignRoleErr error
	countRoleErr  error
	markRoleErr   error

	deptCountOverride *int
	roleCountOverride *int

	usersCreated       []directory.CreateUser
	rolesCreated       []directory.CreateRole
	departmentsCreated []directory.CreateDepartment

	locationGrants  []uuid.UUID // location ids granted, in order
	deptAssignments []directory.DepartmentAssignment
	roleAssignments []directory.RoleAssignment

	deptAssignmentIDs   []uuid.UUID
	roleAssignmentIDs   []uuid.UUID
	deptPrimaryMarked   []uuid.UUID
	rolePrimaryMarked   []uuid.UUID
	lastCreatedUserID   uuid.UUID
	lastCreatedEntityID uuid.UUID
}

func (f *fakeStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.usersCreated) + len(f.rolesCreated) + len(f.departmentsCreated) +
		len(f.locationGrants) + len(f.deptAssignments) + len(f.roleAssignments)
}

func (f *fakeStore) createdUserCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.usersCreated)
}

func (f *fakeStore) CreateUser(_ context.Context, _ uuid.UUID, data directory.CreateUser) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createUserErr != nil {
		return uuid.Nil, f.createUserErr
	}
	f.usersCreated = append(f.usersCreated, data)
	f.lastCreatedUserID = uuid.New()
	return f.lastCreatedUserID, nil
}

func (f *fakeStore) CreateRole(_ context.Context, _ uuid.UUID, data directory.CreateRole) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createRoleErr != nil {
		return uuid.Nil, f.createRoleErr
	}
	f.rolesCreated = append(f.rolesCreated, data)
	f.lastCreatedEntityID = uuid.New()
	return f.lastCreatedEntityID, nil
}

func (f *fakeStore) CreateDepartment(_ context.Context, _ uuid.UUID, data directory.CreateDepartment) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createDeptErr != nil {
		return uuid.Nil, f.createDeptErr
	}
	f.departmentsCreated = append(f.departmentsCreated, data)
	f.lastCreatedEntityID = uuid.New()
	return f.lastCreatedEntityID, nil
}

func (f *fakeStore) GrantLocationAccess(_ context.Context, _ uuid.UUID, _, locationID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.grantErr != nil {
		return f.grantErr
	}
	f.locationGrants = append(f.locationGrants, locationID)
	return nil
}

func (f *fakeStore) AssignDepartment(_ context.Context, _ uuid.UUID, data directory.DepartmentAssignment) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assignDeptErr != nil {
		return uuid.Nil, f.assignDeptErr
	}
	f.deptAssignments = append(f.deptAssignments, data)
	id := uuid.New()
	f.deptAssignmentIDs = append(f.deptAssignmentIDs, id)
	return id, nil
}

func (f *fakeStore) CountDepartmentAssignments(_ context.Context, _ uuid.UUID, userID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countDeptErr != nil {
		return 0, f.countDeptErr
	}
	if f.deptCountOverride != nil {
		return *f.deptCountOverride, nil
	}
	count := 0
	for _, a := range f.deptAssignments {
		if a.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) MarkDepartmentPrimary(_ context.Context, _ uuid.UUID, assignmentID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markDeptErr != nil {
		return f.markDeptErr
	}
	f.deptPrimaryMarked = append(f.deptPrimaryMarked, assignmentID)
	return nil
}

func (f *fakeStore) AssignRole(_ context.Context, _ uuid.UUID, data directory.RoleAssignment) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assignRoleErr != nil {
		return uuid.Nil, f.assignRoleErr
	}
	f.roleAssignments = append(f.roleAssignments, data)
	id := uuid.New()
	f.roleAssignmentIDs = append(f.roleAssignmentIDs, id)
	return id, nil
}

func (f *fakeStore) CountRoleAssignments(_ context.Context, _ uuid.UUID, userID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countRoleErr != nil {
		return 0, f.countRoleErr
	}
	if f.roleCountOverride != nil {
		return *f.roleCountOverride, nil
	}
	count := 0
	for _, a := range f.roleAssignments {
		if a.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) MarkRolePrimary(_ context.Context, _ uuid.UUID, assignmentID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markRoleErr != nil {
		return f.markRoleErr
	}
	f.rolePrimaryMarked = append(f.rolePrimaryMarked, assignmentID)
	return nil
}
