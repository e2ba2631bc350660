package services_test

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
	imports "github.com/orgkit/orgconsole/modules/imports/domain"
	"github.com/orgkit/orgconsole/modules/imports/services"
	"github.com/orgkit/orgconsole/modules/imports/validation"
)

var (
	tenantID  = uuid.New()
	hqID      = uuid.New()
	salesID   = uuid.New()
	engID     = uuid.New()
	aeRoleID  = uuid.New() // bound to Sales
	ceoRoleID = uuid.New() // bound to Engineering
	obsRoleID = uuid.New() // general role
	adaID     = uuid.New()
)

func usersSnapshot() directory.Snapshot {
	return directory.Snapshot{
		Locations: []directory.Location{{ID: hqID, Name: "HQ"}},
		Departments: []directory.Department{
			{ID: salesID, Name: "Sales"},
			{ID: engID, Name: "Engineering"},
		},
		Roles: []directory.Role{
			{ID: aeRoleID, Name: "Account Executive", DepartmentID: &salesID, Active: true},
			{ID: ceoRoleID, Name: "CEO", DepartmentID: &engID, Active: true},
			{ID: obsRoleID, Name: "Observer", Active: true},
		},
		Profiles: []directory.Profile{
			{ID: adaID, FullName: "Ada Lovelace", Username: "ada", Email: "ada@x.com"},
		},
	}
}

func userRow(fields map[string]string) imports.ImportRow {
	return imports.NewRow(2, fields)
}

func newUserProcessor(store *fakeStore) *services.UserRowProcessor {
	return services.NewUserRowProcessor(
		tenantID, usersSnapshot(), store, validation.AccessLevelUser, newSilentLogger())
}

func TestUserRow_ValidLocationCreatesAccessRecord(t *testing.T) {
	store := &fakeStore{}
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail:    "a@x.com",
		imports.ColLocation: "HQ",
	}))

	require.True(t, outcome.Succeeded())
	assert.Empty(t, outcome.Warnings)
	assert.Equal(t, "a@x.com", outcome.Identifier)
	require.Len(t, store.usersCreated, 1)
	require.Len(t, store.locationGrants, 1)
	assert.Equal(t, hqID, store.locationGrants[0])
}

func TestUserRow_UnknownLocationIsFatal(t *testing.T) {
	store := &fakeStore{}
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail:    "b@x.com",
		imports.ColLocation: "Nowhere",
	}))

	require.False(t, outcome.Succeeded())
	assert.Empty(t, outcome.Failure.Field)
	assert.Equal(t, `Location "Nowhere" does not exist`, outcome.Failure.Message)
	assert.Zero(t, store.writeCount(), "no writes may occur for a failed row")
}

func TestUserRow_MissingEmailIsFatal(t *testing.T) {
	store := &fakeStore{}
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColFullName: "No Email",
	}))

	require.False(t, outcome.Succeeded())
	assert.Equal(t, "Email", outcome.Failure.Field)
	assert.Zero(t, store.writeCount())
}

func TestUserRow_UnresolvedManagerIsWarningOnly(t *testing.T) {
	store := &fakeStore{}
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail:   "c@x.com",
		imports.ColManager: "nobody@x.com",
	}))

	require.True(t, outcome.Succeeded())
	require.Len(t, outcome.Warnings, 1)
	assert.Equal(t, "Manager", outcome.Warnings[0].Field)
	require.Len(t, store.usersCreated, 1)
	assert.Nil(t, store.usersCreated[0].ManagerID)
}

func TestUserRow_ResolvedManagerIsLinked(t *testing.T) {
	store := &fakeStore{}
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail:   "d@x.com",
		imports.ColManager: "Ada Lovelace",
	}))

	require.True(t, outcome.Succeeded())
	assert.Empty(t, outcome.Warnings)
	require.Len(t, store.usersCreated, 1)
	require.NotNil(t, store.usersCreated[0].ManagerID)
	assert.Equal(t, adaID, *store.usersCreated[0].ManagerID)
}

func TestUserRow_PairingMismatchIsFatalWithNoWrites(t *testing.T) {
	store := &fakeStore{}
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail:      "e@x.com",
		imports.ColDepartment: "Sales",
		imports.ColRole:       "CEO",
	}))

	require.False(t, outcome.Succeeded())
	assert.Contains(t, outcome.Failure.Message, "different department")
	assert.Zero(t, store.writeCount())
}

func TestUserRow_DepartmentRolePairShareAPairingID(t *testing.T) {
	store := &fakeStore{}
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail:      "f@x.com",
		imports.ColDepartment: "Sales",
		imports.ColRole:       "Account Executive",
	}))

	require.True(t, outcome.Succeeded())
	require.Len(t, store.deptAssignments, 1)
	require.Len(t, store.roleAssignments, 1)
	require.NotNil(t, store.deptAssignments[0].PairingID)
	require.NotNil(t, store.roleAssignments[0].PairingID)
	assert.Equal(t, *store.deptAssignments[0].PairingID, *store.roleAssignments[0].PairingID)

	// First assignments become primary.
	assert.Len(t, store.deptPrimaryMarked, 1)
	assert.Len(t, store.rolePrimaryMarked, 1)
}

func TestUserRow_GeneralRoleAloneHasNoPairingID(t *testing.T) {
	store := &fakeStore{}
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail: "g@x.com",
		imports.ColRole:  "Observer",
	}))

	require.True(t, outcome.Succeeded())
	require.Len(t, store.roleAssignments, 1)
	assert.Nil(t, store.roleAssignments[0].PairingID)
	assert.Empty(t, store.deptAssignments)
}

func TestUserRow_SubsequentAssignmentIsNotPrimary(t *testing.T) {
	store := &fakeStore{}
	two := 2
	store.deptCountOverride = &two
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail:      "h@x.com",
		imports.ColDepartment: "Sales",
	}))

	require.True(t, outcome.Succeeded())
	require.Len(t, store.deptAssignments, 1)
	assert.Empty(t, store.deptPrimaryMarked)
}

func TestUserRow_DependentWriteFailureIsWarning(t *testing.T) {
	store := &fakeStore{}
	store.assignDeptErr = errors.New("unexpected database error")
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail:      "i@x.com",
		imports.ColDepartment: "Sales",
	}))

	require.True(t, outcome.Succeeded(), "user exists; missing enrichment is a warning")
	require.Len(t, outcome.Warnings, 1)
	assert.Equal(t, "Department", outcome.Warnings[0].Field)
	assert.Contains(t, outcome.Warnings[0].Message, "A database error occurred")
	require.Len(t, store.usersCreated, 1)
}

func TestUserRow_PrimaryDesignationFailureIsWarning(t *testing.T) {
	store := &fakeStore{}
	store.markRoleErr = errors.New("unexpected database error")
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail: "j@x.com",
		imports.ColRole:  "Observer",
	}))

	require.True(t, outcome.Succeeded())
	require.Len(t, outcome.Warnings, 1)
	assert.Contains(t, outcome.Warnings[0].Message, "primary designation failed")
	assert.Len(t, store.roleAssignments, 1)
}

func TestUserRow_CreateUserFailureIsTranslated(t *testing.T) {
	store := &fakeStore{}
	store.createUserErr = errors.New(`duplicate key value violates unique constraint "users_email_key"`)
	p := newUserProcessor(store)

	outcome := p.Process(context.Background(), userRow(map[string]string{
		imports.ColEmail: "k@x.com",
	}))

	require.False(t, outcome.Succeeded())
	assert.Equal(t, "A user with this email address already exists", outcome.Failure.Message)
}

func TestUserRow_AccessLevelMapping(t *testing.T) {
	t.Run("alias maps silently", func(t *testing.T) {
		store := &fakeStore{}
		p := newUserProcessor(store)
		outcome := p.Process(context.Background(), userRow(map[string]string{
			imports.ColEmail:       "l@x.com",
			imports.ColAccessLevel: "Client Admin",
		}))
		require.True(t, outcome.Succeeded())
		assert.Empty(t, outcome.Warnings)
		assert.Equal(t, validation.AccessLevelClientAdmin, store.usersCreated[0].AccessLevel)
	})

	t.Run("unknown level warns and defaults", func(t *testing.T) {
		store := &fakeStore{}
		p := newUserProcessor(store)
		outcome := p.Process(context.Background(), userRow(map[string]string{
			imports.ColEmail:       "m@x.com",
			imports.ColAccessLevel: "Grand Vizier",
		}))
		require.True(t, outcome.Succeeded())
		require.Len(t, outcome.Warnings, 1)
		assert.Equal(t, "Access Level", outcome.Warnings[0].Field)
		assert.Equal(t, validation.AccessLevelUser, store.usersCreated[0].AccessLevel)
	})
}
