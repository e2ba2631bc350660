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

// DepartmentRowProcessor imports one department row. The manager column
// is resolved like the users importer's manager: a miss is a warning,
// the department is still created.
type DepartmentRowProcessor struct {
	tenantID uuid.UUID
	snapshot directory.Snapshot
	store    Store
	log      *logrus.Logger
}

func NewDepartmentRowProcessor(tenantID uuid.UUID, snapshot directory.Snapshot, store Store, log *logrus.Logger) *DepartmentRowProcessor {
	return &DepartmentRowProcessor{tenantID: tenantID, snapshot: snapshot, store: store, log: log}
}

func (p *DepartmentRowProcessor) Kind() imports.Kind {
	return imports.KindDepartments
}

func (p *DepartmentRowProcessor) Process(ctx context.Context, row imports.ImportRow) imports.RowOutcome {
	identifier := row.Identifier(imports.KindDepartments)

	name := row.Get(imports.ColName)
	if name == "" {
		return imports.FailureOutcome(row.Number, identifier,
			imports.DisplayName(imports.ColName), "A department name is required", row.Raw())
	}

	if existing := validation.Department(p.snapshot.Departments, name); existing.Valid() {
		return imports.FailureOutcome(row.Number, identifier, "",
			fmt.Sprintf("Department %q already exists", name), row.Raw())
	}

	var warnings []imports.Warning

	managerRaw := row.Get(imports.ColManager)
	var managerID *uuid.UUID
	if managerRaw != "" {
		if id, found := validation.Manager(p.snapshot.Profiles, managerRaw); found {
			managerID = &id
		} else {
			warnings = append(warnings, imports.Warning{
				Field:   imports.DisplayName(imports.ColManager),
				Value:   managerRaw,
				Message: fmt.Sprintf("Manager %q could not be found, department created without a manager", managerRaw),
			})
		}
	}

	if _, err := p.store.CreateDepartment(ctx, p.tenantID, directory.CreateDepartment{
		Name:        name,
		Description: row.Get(imports.ColDescription),
		ManagerID:   managerID,
	}); err != nil {
		return imports.FailureOutcome(row.Number, identifier, "", Translate(err), row.Raw())
	}

	return imports.SuccessOutcome(row.Number, identifier, warnings)
}
