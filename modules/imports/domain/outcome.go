package imports

// Warning is a soft defect: the row's primary record exists but an
// enrichment is missing or fell back to a default. Warnings never abort
// a row.
type Warning struct {
	Field   string
	Value   string
	Message string
}

// Failure is a hard defect: the row produced no usable record. Field is
// the offending column's display name, empty when the failure is not
// tied to one column.
type Failure struct {
	RowNumber  int
	Identifier string
	Field      string
	Message    string
	Raw        map[string]string
}

// RowOutcome is the single result every processed row yields: a success
// carrying zero or more warnings, or a failure.
type RowOutcome struct {
	RowNumber  int
	Identifier string
	Failure    *Failure
	Warnings   []Warning
}

func (o RowOutcome) Succeeded() bool {
	return o.Failure == nil
}

func SuccessOutcome(rowNumber int, identifier string, warnings []Warning) RowOutcome {
	return RowOutcome{
		RowNumber:  rowNumber,
		Identifier: identifier,
		Warnings:   warnings,
	}
}

func FailureOutcome(rowNumber int, identifier, field, message string, raw map[string]string) RowOutcome {
	return RowOutcome{
		RowNumber:  rowNumber,
		Identifier: identifier,
		Failure: &Failure{
			RowNumber:  rowNumber,
			Identifier: identifier,
			Field:      field,
			Message:    message,
			Raw:        raw,
		},
	}
}
