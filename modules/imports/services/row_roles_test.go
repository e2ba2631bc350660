package services_test

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imports "github.com/orgkit/orgconsole/modules/imports/domain"
	"github.com/orgkit/orgconsole/modules/imports/services"
)

func TestRoleRow_CreatesGeneralRole(t *testing.T) {
	store := &fakeStore{}
	p := services.NewRoleRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColName:        "Auditor",
		imports.ColDescription: "Read-only audits",
	}))

	require.True(t, outcome.Succeeded())
	require.Len(t, store.rolesCreated, 1)
	assert.Equal(t, "Auditor", store.rolesCreated[0].Name)
	assert.Nil(t, store.rolesCreated[0].DepartmentID)
}

func TestRoleRow_CreatesDepartmentBoundRole(t *testing.T) {
	store := &fakeStore{}
	p := services.NewRoleRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColName:       "SDR",
		imports.ColDepartment: "sales",
	}))

	require.True(t, outcome.Succeeded())
	require.Len(t, store.rolesCreated, 1)
	require.NotNil(t, store.rolesCreated[0].DepartmentID)
	assert.Equal(t, salesID, *store.rolesCreated[0].DepartmentID)
}

func TestRoleRow_UnknownDepartmentIsFatal(t *testing.T) {
	store := &fakeStore{}
	p := services.NewRoleRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColName:       "SDR",
		imports.ColDepartment: "Nowhere",
	}))

	require.False(t, outcome.Succeeded())
	assert.Equal(t, `Department "Nowhere" does not exist`, outcome.Failure.Message)
	assert.Zero(t, store.writeCount())
}

func TestRoleRow_DuplicateNameIsFatal(t *testing.T) {
	store := &fakeStore{}
	p := services.NewRoleRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColName: "Observer",
	}))

	require.False(t, outcome.Succeeded())
	assert.Equal(t, `Role "Observer" already exists`, outcome.Failure.Message)
	assert.Zero(t, store.writeCount())
}

func TestRoleRow_MissingNameIsFatal(t *testing.T) {
	store := &fakeStore{}
	p := services.NewRoleRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColDescription: "nameless",
	}))

	require.False(t, outcome.Succeeded())
	assert.Equal(t, "Name", outcome.Failure.Field)
}

func TestRoleRow_CreateFailureIsTranslated(t *testing.T) {
	store := &fakeStore{}
	store.createRoleErr = errors.New("unexpected database error")
	p := services.NewRoleRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColName: "Auditor",
	}))

	require.False(t, outcome.Succeeded())
	assert.Equal(t, "A database error occurred while saving the record", outcome.Failure.Message)
}

func TestDepartmentRow_CreatesDepartmentWithManager(t *testing.T) {
	store := &fakeStore{}
	p := services.NewDepartmentRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColName:    "Finance",
		imports.ColManager: "ada@x.com",
	}))

	require.True(t, outcome.Succeeded())
	assert.Empty(t, outcome.Warnings)
	require.Len(t, store.departmentsCreated, 1)
	require.NotNil(t, store.departmentsCreated[0].ManagerID)
	assert.Equal(t, adaID, *store.departmentsCreated[0].ManagerID)
}

func TestDepartmentRow_UnresolvedManagerIsWarning(t *testing.T) {
	store := &fakeStore{}
	p := services.NewDepartmentRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColName:    "Finance",
		imports.ColManager: "nobody",
	}))

	require.True(t, outcome.Succeeded())
	require.Len(t, outcome.Warnings, 1)
	assert.Equal(t, "Manager", outcome.Warnings[0].Field)
	require.Len(t, store.departmentsCreated, 1)
	assert.Nil(t, store.departmentsCreated[0].ManagerID)
}

func TestDepartmentRow_DuplicateNameIsFatal(t *testing.T) {
	store := &fakeStore{}
	p := services.NewDepartmentRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColName: "Sales",
	}))

	require.False(t, outcome.Succeeded())
	assert.Equal(t, `Department "Sales" already exists`, outcome.Failure.Message)
	assert.Zero(t, store.writeCount())
}

func TestDepartmentRow_MissingNameIsFatal(t *testing.T) {
	store := &fakeStore{}
	p := services.NewDepartmentRowProcessor(tenantID, usersSnapshot(), store, newSilentLogger())

	outcome := p.Process(context.Background(), imports.NewRow(2, map[string]string{
		imports.ColDescription: "nameless",
	}))

	require.False(t, outcome.Succeeded())
	assert.Equal(t, "Name", outcome.Failure.Field)
	assert.Zero(t, store.writeCount())
}
