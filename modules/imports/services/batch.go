package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	imports "github.com/orgkit/orgconsole/modules/imports/domain"
)

// Coordinator drives one import session: Parsing -> Processing ->
// Reporting. Rows are processed strictly sequentially with a fixed
// inter-row delay; a concurrent variant would race the first-assignment
// primary designation and overwhelm the data service's quotas.
type Coordinator struct {
	processor RowProcessor
	delay     time.Duration
	notifier  Notifier
	log       *logrus.Logger
}

func NewCoordinator(processor RowProcessor, delay time.Duration, notifier Notifier, log *logrus.Logger) *Coordinator {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Coordinator{
		processor: processor,
		delay:     delay,
		notifier:  notifier,
		log:       log,
	}
}

// Run processes one CSV stream to completion and returns the batch
// report. Structural failures (no data, malformed CSV) abort before any
// row is processed and return an error instead of a report. A cancelled
// context stops the batch between rows and returns the partial report
// with ctx.Err().
func (c *Coordinator) Run(ctx context.Context, r io.Reader) (imports.BatchReport, error) {
	kind := c.processor.Kind()

	rows, err := imports.Parse(r, kind)
	if err != nil {
		if errors.Is(err, imports.ErrNoData) {
			c.notifier.Notify(ctx, Notice{
				Kind:    NoticeNoData,
				Message: "The file contains no data to import",
			})
			return imports.BatchReport{}, err
		}
		c.notifier.Notify(ctx, Notice{
			Kind:    NoticeParseFailure,
			Message: fmt.Sprintf("The file could not be parsed: %s", Translate(err)),
		})
		return imports.BatchReport{}, err
	}

	report := imports.BatchReport{TotalCount: len(rows)}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !row.HasIdentity(kind) {
			c.log.WithField("row", row.Number).Debug("skipping row without identifying data")
			continue
		}

		outcome := c.processor.Process(ctx, row)
		if outcome.Succeeded() {
			report.SuccessCount++
			for _, w := range outcome.Warnings {
				report.Warnings = append(report.Warnings, imports.ReportWarning{
					RowNumber:  outcome.RowNumber,
					Identifier: outcome.Identifier,
					Warning:    w,
				})
			}
		} else {
			report.Errors = append(report.Errors, *outcome.Failure)
		}

		if c.delay > 0 && i < len(rows)-1 {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(c.delay):
			}
		}
	}

	c.notifier.Notify(ctx, c.completionNotice(report))
	c.log.WithFields(logrus.Fields{
		"kind":     string(kind),
		"total":    report.TotalCount,
		"success":  report.SuccessCount,
		"errors":   len(report.Errors),
		"warnings": len(report.Warnings),
	}).Info("import batch finished")

	return report, nil
}

func (c *Coordinator) completionNotice(report imports.BatchReport) Notice {
	r := report
	switch {
	case len(report.Errors) == 0 && len(report.Warnings) == 0:
		return Notice{
			Kind:    NoticeSuccess,
			Message: fmt.Sprintf("Import completed: %d of %d records imported", report.SuccessCount, report.TotalCount),
			Report:  &r,
		}
	case len(report.Errors) > 0 && len(report.Warnings) > 0:
		return Notice{
			Kind: NoticeMixed,
			Message: fmt.Sprintf("Import completed with %d errors and %d warnings (%d of %d imported)",
				len(report.Errors), len(report.Warnings), report.SuccessCount, report.TotalCount),
			Report: &r,
		}
	case len(report.Errors) > 0:
		return Notice{
			Kind: NoticeErrors,
			Message: fmt.Sprintf("Import completed with %d errors (%d of %d imported)",
				len(report.Errors), report.SuccessCount, report.TotalCount),
			Report: &r,
		}
	default:
		return Notice{
			Kind: NoticeWarnings,
			Message: fmt.Sprintf("Import completed with %d warnings (%d of %d imported)",
				len(report.Warnings), report.SuccessCount, report.TotalCount),
			Report: &r,
		}
	}
}
