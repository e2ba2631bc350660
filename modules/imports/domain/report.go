package imports

// ReportWarning ties a Warning to the row it came from for the
// downloadable report.
type ReportWarning struct {
	RowNumber  int
	Identifier string
	Warning
}

// BatchReport is the terminal artifact of one import session.
// SuccessCount + len(Errors) <= TotalCount; skipped identity-less rows
// account for the remainder.
type BatchReport struct {
	SuccessCount int
	TotalCount   int
	Errors       []Failure
	Warnings     []ReportWarning
}

func (r BatchReport) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}
