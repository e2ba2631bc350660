package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
	imports "github.com/orgkit/orgconsole/modules/imports/domain"
	"github.com/orgkit/orgconsole/modules/imports/resolution"
	"github.com/orgkit/orgconsole/modules/imports/validation"
)

// UserRowProcessor imports one user row: validate against the snapshot,
// create the user, then perform the dependent writes (location access,
// department assignment, role assignment). Fatal vs warning follows
// recoverability: anything that would leave no usable user is fatal,
// anything where the user exists but an enrichment is missing is a
// warning.
type UserRowProcessor struct {
	tenantID           uuid.UUID
	snapshot           directory.Snapshot
	store              Store
	defaultAccessLevel string
	log                *logrus.Logger
}

func NewUserRowProcessor(
	tenantID uuid.UUID,
	snapshot directory.Snapshot,
	store Store,
	defaultAccessLevel string,
	log *logrus.Logger,
) *UserRowProcessor {
	if defaultAccessLevel == "" {
		defaultAccessLevel = validation.AccessLevelUser
	}
	return &UserRowProcessor{
		tenantID:           tenantID,
		snapshot:           snapshot,
		store:              store,
		defaultAccessLevel: defaultAccessLevel,
		log:                log,
	}
}

func (p *UserRowProcessor) Kind() imports.Kind {
	return imports.KindUsers
}

func (p *UserRowProcessor) Process(ctx context.Context, row imports.ImportRow) imports.RowOutcome {
	identifier := row.Identifier(imports.KindUsers)

	email := row.Get(imports.ColEmail)
	if email == "" {
		return imports.FailureOutcome(row.Number, identifier,
			imports.DisplayName(imports.ColEmail), "An email address is required", row.Raw())
	}

	var warnings []imports.Warning

	accessRaw := row.Get(imports.ColAccessLevel)
	accessLevel, warned := validation.AccessLevel(accessRaw, p.defaultAccessLevel)
	if warned {
		warnings = append(warnings, imports.Warning{
			Field:   imports.DisplayName(imports.ColAccessLevel),
			Value:   accessRaw,
			Message: fmt.Sprintf("Unknown access level %q, defaulted to %q", accessRaw, p.defaultAccessLevel),
		})
	}

	location := validation.Location(p.snapshot.Locations, row.Get(imports.ColLocation))
	if location.Provided && !location.Valid() {
		return imports.FailureOutcome(row.Number, identifier, "", location.Err, row.Raw())
	}

	pairing, err := resolution.ResolvePairing(
		p.snapshot, row.Get(imports.ColDepartment), row.Get(imports.ColRole))
	if err != nil {
		return imports.FailureOutcome(row.Number, identifier, "", err.Error(), row.Raw())
	}

	managerRaw := row.Get(imports.ColManager)
	var managerID *uuid.UUID
	if managerRaw != "" {
		if id, found := validation.Manager(p.snapshot.Profiles, managerRaw); found {
			managerID = &id
		} else {
			warnings = append(warnings, imports.Warning{
				Field:   imports.DisplayName(imports.ColManager),
				Value:   managerRaw,
				Message: fmt.Sprintf("Manager %q could not be found, user created without a manager", managerRaw),
			})
		}
	}

	userID, err := p.store.CreateUser(ctx, p.tenantID, directory.CreateUser{
		Email:       email,
		FirstName:   row.Get(imports.ColFirstName),
		LastName:    row.Get(imports.ColLastName),
		FullName:    row.Get(imports.ColFullName),
		Phone:       row.Get(imports.ColPhone),
		EmployeeID:  row.Get(imports.ColEmployeeID),
		AccessLevel: accessLevel,
		ManagerID:   managerID,
	})
	if err != nil {
		return imports.FailureOutcome(row.Number, identifier, "", Translate(err), row.Raw())
	}

	// From here the user exists; every remaining miss is a warning
	// because undoing the creation is not attempted.
	if location.Valid() {
		if err := p.store.GrantLocationAccess(ctx, p.tenantID, userID, location.ID); err != nil {
			p.log.WithError(err).WithField("row", row.Number).Warn("location access grant failed")
			warnings = append(warnings, imports.Warning{
				Field:   imports.DisplayName(imports.ColLocation),
				Value:   row.Get(imports.ColLocation),
				Message: fmt.Sprintf("Location access could not be granted: %s", Translate(err)),
			})
		}
	}

	if pairing.DepartmentID != nil {
		warnings = append(warnings, p.assignDepartment(ctx, row, userID, pairing)...)
	}
	if pairing.RoleID != nil {
		warnings = append(warnings, p.assignRole(ctx, row, userID, pairing)...)
	}

	return imports.SuccessOutcome(row.Number, identifier, warnings)
}

func (p *UserRowProcessor) assignDepartment(
	ctx context.Context,
	row imports.ImportRow,
	userID uuid.UUID,
	pairing resolution.Pairing,
) []imports.Warning {
	assignmentID, err := p.store.AssignDepartment(ctx, p.tenantID, directory.DepartmentAssignment{
		UserID:       userID,
		DepartmentID: *pairing.DepartmentID,
		PairingID:    pairing.PairingID,
	})
	if err != nil {
		p.log.WithError(err).WithField("row", row.Number).Warn("department assignment failed")
		return []imports.Warning{{
			Field:   imports.DisplayName(imports.ColDepartment),
			Value:   row.Get(imports.ColDepartment),
			Message: fmt.Sprintf("Department could not be assigned: %s", Translate(err)),
		}}
	}

	// First assignment becomes the primary one; the count runs after the
	// insert so the freshly written record is included.
	count, err := p.store.CountDepartmentAssignments(ctx, p.tenantID, userID)
	if err == nil && count == 1 {
		err = p.store.MarkDepartmentPrimary(ctx, p.tenantID, assignmentID)
	}
	if err != nil {
		p.log.WithError(err).WithField("row", row.Number).Warn("primary department designation failed")
		return []imports.Warning{{
			Field:   imports.DisplayName(imports.ColDepartment),
			Value:   row.Get(imports.ColDepartment),
			Message: fmt.Sprintf("Department assigned but primary designation failed: %s", Translate(err)),
		}}
	}
	return nil
}

func (p *UserRowProcessor) assignRole(
	ctx context.Context,
	row imports.ImportRow,
	userID uuid.UUID,
	pairing resolution.Pairing,
) []imports.Warning {
	assignmentID, err := p.store.AssignRole(ctx, p.tenantID, directory.RoleAssignment{
		UserID:    userID,
		RoleID:    *pairing.RoleID,
		PairingID: pairing.PairingID,
	})
	if err != nil {
		p.log.WithError(err).WithField("row", row.Number).Warn("role assignment failed")
		return []imports.Warning{{
			Field:   imports.DisplayName(imports.ColRole),
			Value:   row.Get(imports.ColRole),
			Message: fmt.Sprintf("Role could not be assigned: %s", Translate(err)),
		}}
	}

	count, err := p.store.CountRoleAssignments(ctx, p.tenantID, userID)
	if err == nil && count == 1 {
		err = p.store.MarkRolePrimary(ctx, p.tenantID, assignmentID)
	}
	if err != nil {
		p.log.WithError(err).WithField("row", row.Number).Warn("primary role designation failed")
		return []imports.Warning{{
			Field:   imports.DisplayName(imports.ColRole),
			Value:   row.Get(imports.ColRole),
			Message: fmt.Sprintf("Role assigned but primary designation failed: %s", Translate(err)),
		}}
	}
	return nil
}
