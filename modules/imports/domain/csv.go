package imports

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-faster/errors"
)

// ErrNoData signals a parsed file with a header but no data rows (or no
// header at all). It is a structural failure, not a BatchReport.
var ErrNoData = errors.New("no data rows found")

// Parse tokenizes a CSV stream into normalized ImportRows for the given
// importer kind. Headers are matched case-insensitively against the
// kind's column set; unknown columns are dropped. Row numbers are source
// line numbers with the header as row 1.
func Parse(r io.Reader, kind Kind) ([]ImportRow, error) {
	br := stripUTF8BOM(bufio.NewReader(r))

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	known := make(map[string]struct{}, len(Columns(kind)))
	for _, col := range Columns(kind) {
		known[col] = struct{}{}
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		col := CanonicalColumn(h)
		if _, ok := known[col]; !ok {
			continue
		}
		if _, dup := idx[col]; dup {
			continue
		}
		idx[col] = i
	}

	var rows []ImportRow
	line := 1
	for {
		line++
		rec, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) == 0 {
			continue
		}

		fields := make(map[string]string, len(idx))
		for col, i := range idx {
			if i < len(rec) {
				fields[col] = rec[i]
			}
		}
		rows = append(rows, NewRow(line, fields))
	}

	if len(rows) == 0 {
		return nil, ErrNoData
	}
	return rows, nil
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
