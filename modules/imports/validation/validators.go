// Package validation holds the pure per-field validators of the import
// engine. Each validator takes a raw CSV value and the relevant slice of
// the reference snapshot and resolves it to an id; none of them perform
// writes.
package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	directory "github.com/orgkit/orgconsole/modules/directory/domain"
)

// FieldResult is the outcome of validating one field. A value that was
// not provided is neither valid nor an error.
type FieldResult struct {
	Provided bool
	ID       uuid.UUID
	Err      string
}

func (r FieldResult) Valid() bool {
	return r.Provided && r.Err == ""
}

// Location matches the raw value case-insensitively against the
// snapshot's location names. Empty input means "not provided".
func Location(locations []directory.Location, raw string) FieldResult {
	value := strings.TrimSpace(raw)
	if value == "" {
		return FieldResult{}
	}
	for _, l := range locations {
		if strings.EqualFold(l.Name, value) {
			return FieldResult{Provided: true, ID: l.ID}
		}
	}
	return FieldResult{
		Provided: true,
		Err:      fmt.Sprintf("Location %q does not exist", value),
	}
}

func Department(departments []directory.Department, raw string) FieldResult {
	value := strings.TrimSpace(raw)
	if value == "" {
		return FieldResult{}
	}
	for _, d := range departments {
		if strings.EqualFold(d.Name, value) {
			return FieldResult{Provided: true, ID: d.ID}
		}
	}
	return FieldResult{
		Provided: true,
		Err:      fmt.Sprintf("Department %q does not exist", value),
	}
}

// RoleResult carries the matched role's department, nil for general
// roles.
type RoleResult struct {
	FieldResult
	DepartmentID *uuid.UUID
}

// Role matches against active roles only.
func Role(roles []directory.Role, raw string) RoleResult {
	value := strings.TrimSpace(raw)
	if value == "" {
		return RoleResult{}
	}
	for _, r := range roles {
		if !r.Active {
			continue
		}
		if strings.EqualFold(r.Name, value) {
			return RoleResult{
				FieldResult:  FieldResult{Provided: true, ID: r.ID},
				DepartmentID: r.DepartmentID,
			}
		}
	}
	return RoleResult{
		FieldResult: FieldResult{
			Provided: true,
			Err:      fmt.Sprintf("Role %q does not exist", value),
		},
	}
}

// Manager resolves a manager identifier against existing profiles. The
// identifier may be an email, full name, or username; all three are
// compared case-insensitively with no priority between them, first
// matching profile wins. An unresolved manager is the caller's warning,
// never an error.
func Manager(profiles []directory.Profile, raw string) (uuid.UUID, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return uuid.Nil, false
	}
	for _, p := range profiles {
		if strings.EqualFold(p.Email, value) ||
			strings.EqualFold(p.FullName, value) ||
			strings.EqualFold(p.Username, value) {
			return p.ID, true
		}
	}
	return uuid.Nil, false
}
