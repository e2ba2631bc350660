// Package imports defines the data model of the bulk CSV import engine:
// normalized rows, per-row outcomes, and the aggregated batch report.
package imports

import "strings"

// Kind selects the importer-specific column set and row semantics.
type Kind string

const (
	KindUsers       Kind = "users"
	KindRoles       Kind = "roles"
	KindDepartments Kind = "departments"
)

func (k Kind) Valid() bool {
	switch k {
	case KindUsers, KindRoles, KindDepartments:
		return true
	}
	return false
}

// Canonical column keys. CSV headers are matched case-insensitively and
// normalized to these before any validation runs, so a file may say
// "EMAIL" or "email" and the engine sees one canonical column.
const (
	ColEmail       = "email"
	ColFullName    = "full name"
	ColFirstName   = "first name"
	ColLastName    = "last name"
	ColPhone       = "phone"
	ColEmployeeID  = "employee id"
	ColAccessLevel = "access level"
	ColLocation    = "location"
	ColDepartment  = "department"
	ColRole        = "role"
	ColManager     = "manager"
	ColName        = "name"
	ColDescription = "description"
)

var usersColumns = []string{
	ColEmail, ColFullName, ColFirstName, ColLastName, ColPhone,
	ColEmployeeID, ColAccessLevel, ColLocation, ColDepartment, ColRole, ColManager,
}

var rolesColumns = []string{ColName, ColDescription, ColDepartment}

var departmentsColumns = []string{ColName, ColDescription, ColManager}

// Columns returns the known column set for the importer kind. Unknown
// CSV columns are ignored; missing optional columns read as "".
func Columns(kind Kind) []string {
	switch kind {
	case KindUsers:
		return usersColumns
	case KindRoles:
		return rolesColumns
	case KindDepartments:
		return departmentsColumns
	}
	return nil
}

var displayNames = map[string]string{
	ColEmail:       "Email",
	ColFullName:    "Full Name",
	ColFirstName:   "First Name",
	ColLastName:    "Last Name",
	ColPhone:       "Phone",
	ColEmployeeID:  "Employee ID",
	ColAccessLevel: "Access Level",
	ColLocation:    "Location",
	ColDepartment:  "Department",
	ColRole:        "Role",
	ColManager:     "Manager",
	ColName:        "Name",
	ColDescription: "Description",
}

// DisplayName returns the operator-facing column name used in reports.
func DisplayName(col string) string {
	if name, ok := displayNames[col]; ok {
		return name
	}
	return col
}

// CanonicalColumn normalizes a raw CSV header cell to a canonical key.
func CanonicalColumn(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}
