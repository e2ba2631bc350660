package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
	imports "github.com/orgkit/orgconsole/modules/imports/domain"
	"github.com/orgkit/orgconsole/modules/imports/validation"
)

// RoleRowProcessor imports one role row. A role may optionally name the
// department it belongs to; a role without one is a general role.
type RoleRowProcessor struct {
	tenantID uuid.UUID
	snapshot directory.Snapshot
	store    Store
	log      *logrus.Logger
}

func NewRoleRowProcessor(tenantID uuid.UUID, snapshot directory.Snapshot, store Store, log *logrus.Logger) *RoleRowProcessor {
	return &RoleRowProcessor{tenantID: tenantID, snapshot: snapshot, store: store, log: log}
}

func (p *RoleRowProcessor) Kind() imports.Kind {
	return imports.KindRoles
}

func (p *RoleRowProcessor) Process(ctx context.Context, row imports.ImportRow) imports.RowOutcome {
	identifier := row.Identifier(imports.KindRoles)

	name := row.Get(imports.ColName)
	if name == "" {
		return imports.FailureOutcome(row.Number, identifier,
			imports.DisplayName(imports.ColName), "A role name is required", row.Raw())
	}

	var departmentID *uuid.UUID
	department := validation.Department(p.snapshot.Departments, row.Get(imports.ColDepartment))
	if department.Provided {
		if !department.Valid() {
			return imports.FailureOutcome(row.Number, identifier, "", department.Err, row.Raw())
		}
		id := department.ID
		departmentID = &id
	}

	if existing := validation.Role(p.snapshot.Roles, name); existing.Valid() {
		return imports.FailureOutcome(row.Number, identifier, "",
			fmt.Sprintf("Role %q already exists", name), row.Raw())
	}

	if _, err := p.store.CreateRole(ctx, p.tenantID, directory.CreateRole{
		Name:         name,
		Description:  row.Get(imports.ColDescription),
		DepartmentID: departmentID,
	}); err != nil {
		return imports.FailureOutcome(row.Number, identifier, "", Translate(err), row.Raw())
	}

	return imports.SuccessOutcome(row.Number, identifier, nil)
}
