// Package resolution validates the department/role pairing of one import
// row and produces the resolved foreign keys the row processor writes
// with.
package resolution

import (
	"fmt"

	"github.com/google/uuid"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
	"github.com/orgkit/orgconsole/modules/imports/validation"
)

// Pairing is the resolved department/role combination of one row.
// PairingID is set only when both a department and a role were assigned
// together; the two assignment writes then share it so they can later be
// identified as a logically atomic pair. It is not a transaction id.
type Pairing struct {
	DepartmentID *uuid.UUID
	RoleID       *uuid.UUID
	PairingID    *uuid.UUID
}

// ResolvePairing implements the four-way department × role split:
//
//  1. neither provided: nothing to resolve;
//  2. department only: resolve it, fatal if unknown;
//  3. role only: resolve it, fatal if unknown or if the role belongs to
//     a department (a department-bound role cannot be assigned alone);
//  4. both: resolve each, fatal if either is unknown or if the role is
//     bound to a different department. A general role pairs with any
//     department.
//
// Note: branch 4 accepts a general role (nil department id) next to any
// supplied department; the role is attached alongside the department,
// not nested under it. Preserved as shipped, pending product
// confirmation.
func ResolvePairing(snapshot directory.Snapshot, departmentName, roleName string) (Pairing, error) {
	dept := validation.Department(snapshot.Departments, departmentName)
	role := validation.Role(snapshot.Roles, roleName)

	switch {
	case !dept.Provided && !role.Provided:
		return Pairing{}, nil

	case dept.Provided && !role.Provided:
		if !dept.Valid() {
			return Pairing{}, fmt.Errorf("%s", dept.Err)
		}
		id := dept.ID
		return Pairing{DepartmentID: &id}, nil

	case !dept.Provided && role.Provided:
		if !role.Valid() {
			return Pairing{}, fmt.Errorf("%s", role.Err)
		}
		if role.DepartmentID != nil {
			return Pairing{}, fmt.Errorf(
				"Role %q belongs to a department; specify the department or use a general role", roleName)
		}
		id := role.ID
		return Pairing{RoleID: &id}, nil

	default:
		if !dept.Valid() {
			return Pairing{}, fmt.Errorf("%s", dept.Err)
		}
		if !role.Valid() {
			return Pairing{}, fmt.Errorf("%s", role.Err)
		}
		if role.DepartmentID != nil && *role.DepartmentID != dept.ID {
			return Pairing{}, fmt.Errorf(
				"Role %q belongs to a different department than %q", roleName, departmentName)
		}
		deptID := dept.ID
		roleID := role.ID
		pairingID := uuid.New()
		return Pairing{
			DepartmentID: &deptID,
			RoleID:       &roleID,
			PairingID:    &pairingID,
		}, nil
	}
}
