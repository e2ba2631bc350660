package imports

import "strings"

// ImportRow is one CSV record normalized to canonical column keys.
// Number is the 1-based source line; the header is row 1, so the first
// data row is 2.
type ImportRow struct {
	Number int
	fields map[string]string
}

func NewRow(number int, fields map[string]string) ImportRow {
	if fields == nil {
		fields = map[string]string{}
	}
	return ImportRow{Number: number, fields: fields}
}

// Get returns the trimmed value of a canonical column, "" when absent.
func (r ImportRow) Get(col string) string {
	return strings.TrimSpace(r.fields[col])
}

// Raw returns a copy of the row's fields for failure reporting.
func (r ImportRow) Raw() map[string]string {
	out := make(map[string]string, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// HasIdentity reports whether the row carries any identifying data.
// Rows without identity are skipped before processing and appear in
// neither errors nor warnings.
func (r ImportRow) HasIdentity(kind Kind) bool {
	switch kind {
	case KindUsers:
		return r.Get(ColEmail) != "" ||
			r.Get(ColFullName) != "" ||
			r.Get(ColFirstName) != "" ||
			r.Get(ColLastName) != ""
	case KindRoles, KindDepartments:
		return r.Get(ColName) != "" || r.Get(ColDescription) != ""
	}
	return false
}

// Identifier returns the value the operator recognizes the row by in the
// outcome report.
func (r ImportRow) Identifier(kind Kind) string {
	switch kind {
	case KindUsers:
		if email := r.Get(ColEmail); email != "" {
			return email
		}
		if full := r.Get(ColFullName); full != "" {
			return full
		}
		return strings.TrimSpace(r.Get(ColFirstName) + " " + r.Get(ColLastName))
	case KindRoles, KindDepartments:
		return r.Get(ColName)
	}
	return ""
}
