// Package reporting renders a finished batch report as a downloadable
// artifact. Error rows come first, then warning rows, both in row order.
package reporting

import (
	"fmt"
	"time"

	imports "github.com/orgkit/orgconsole/modules/imports/domain"
)

var header = []string{"Row Number", "Identifier", "Field", "Type", "Message"}

// FileName builds the artifact name for one import session, e.g.
// "users-import-20260828-150405.csv".
func FileName(kind imports.Kind, at time.Time, ext string) string {
	return fmt.Sprintf("%s-import-%s.%s", kind, at.Format("20060102-150405"), ext)
}

func rows(report imports.BatchReport) [][]string {
	out := make([][]string, 0, len(report.Errors)+len(report.Warnings))
	for _, e := range report.Errors {
		out = append(out, []string{
			fmt.Sprintf("%d", e.RowNumber), e.Identifier, e.Field, "Error", e.Message,
		})
	}
	for _, w := range report.Warnings {
		out = append(out, []string{
			fmt.Sprintf("%d", w.RowNumber), w.Identifier, w.Warning.Field, "Warning", w.Warning.Message,
		})
	}
	return out
}
