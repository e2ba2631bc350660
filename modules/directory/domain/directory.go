// Package directory holds the organisation reference data the import
// engine validates against: locations, departments, roles and existing
// user profiles, plus the write-side records created during an import.
package directory

import "github.com/google/uuid"

type Location struct {
	ID   uuid.UUID
	Name string
}

type Department struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// Role is a grantable role. DepartmentID is nil for general roles, which
// can be assigned regardless of the user's department.
type Role struct {
	ID           uuid.UUID
	Name         string
	Description  string
	DepartmentID *uuid.UUID
	Active       bool
}

// Profile is an existing user as seen by manager lookup.
type Profile struct {
	ID       uuid.UUID
	FullName string
	Username string
	Email    string
}

// CreateUser is the payload for the primary user creation write.
type CreateUser struct {
	Email       string
	FirstName   string
	LastName    string
	FullName    string
	Phone       string
	EmployeeID  string
	AccessLevel string
	ManagerID   *uuid.UUID
}

type CreateRole struct {
	Name         string
	Description  string
	DepartmentID *uuid.UUID
}

type CreateDepartment struct {
	Name        string
	Description string
	ManagerID   *uuid.UUID
}

// DepartmentAssignment links a user to a department. PairingID is set
// when the department was assigned together with a role in one import
// row; both assignment records then carry the same id.
type DepartmentAssignment struct {
	UserID       uuid.UUID
	DepartmentID uuid.UUID
	PairingID    *uuid.UUID
}

type RoleAssignment struct {
	UserID    uuid.UUID
	RoleID    uuid.UUID
	PairingID *uuid.UUID
}
