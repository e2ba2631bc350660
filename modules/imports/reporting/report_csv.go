package reporting

import (
	"encoding/csv"
	"io"

	imports "github.com/orgkit/orgconsole/modules/imports/domain"
)

// WriteCSV writes the report header and rows to w.
func WriteCSV(w io.Writer, report imports.BatchReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows(report) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
