package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/orgkit/orgconsole/modules/directory/infrastructure/persistence"
	directoryservices "github.com/orgkit/orgconsole/modules/directory/services"
	imports "github.com/orgkit/orgconsole/modules/imports/domain"
	"github.com/orgkit/orgconsole/modules/imports/reporting"
	"github.com/orgkit/orgconsole/modules/imports/services"
	"github.com/orgkit/orgconsole/pkg/configuration"
	"github.com/orgkit/orgconsole/pkg/eventbus"
)

type importOptions struct {
	tenantID  uuid.UUID
	kind      imports.Kind
	filePath  string
	reportDir string
	xlsx      bool
}

type importSummary struct {
	Kind         string `json:"kind"`
	Total        int    `json:"total"`
	Success      int    `json:"success"`
	Errors       int    `json:"errors"`
	Warnings     int    `json:"warnings"`
	ReportPath   string `json:"report_path,omitempty"`
	DurationMS   int64  `json:"duration_ms"`
	DelayPerRow  string `json:"delay_per_row"`
	SnapshotRows int    `json:"snapshot_profiles"`
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import --file <path> --kind <users|roles|departments> --tenant <uuid>",
		Short: "Run one CSV import batch and write an error report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, opts)
		},
	}

	var tenant, kind string
	cmd.Flags().StringVar(&opts.filePath, "file", "", "CSV file to import (required)")
	cmd.Flags().StringVar(&kind, "kind", "", "import kind: users, roles or departments (required)")
	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant UUID (required)")
	cmd.Flags().StringVar(&opts.reportDir, "report-dir", "", "report output directory (default from IMPORT_REPORT_DIR)")
	cmd.Flags().BoolVar(&opts.xlsx, "xlsx", false, "write the report as .xlsx instead of .csv")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("tenant")

	cmd.PreRunE = func(_ *cobra.Command, _ []string) error {
		id, err := uuid.Parse(strings.TrimSpace(tenant))
		if err != nil {
			return withCode(exitUsage, fmt.Errorf("invalid --tenant: %w", err))
		}
		opts.tenantID = id

		opts.kind = imports.Kind(strings.ToLower(strings.TrimSpace(kind)))
		if !opts.kind.Valid() {
			return withCode(exitUsage, fmt.Errorf("invalid --kind %q: expected users, roles or departments", kind))
		}
		return nil
	}

	return cmd
}

func runImport(cmd *cobra.Command, opts importOptions) error {
	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f, err := os.Open(opts.filePath)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("open input: %w", err))
	}
	defer f.Close()

	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		return withCode(exitDB, fmt.Errorf("connect database: %w", err))
	}
	defer pool.Close()

	svc := directoryservices.NewDirectoryService(
		persistence.NewLocationRepository(pool),
		persistence.NewDepartmentRepository(pool),
		persistence.NewRoleRepository(pool),
		persistence.NewProfileRepository(pool),
		persistence.NewUserRepository(pool),
		persistence.NewAssignmentRepository(pool),
		logger,
	)

	snapshot, err := svc.LoadSnapshot(ctx, opts.tenantID)
	if err != nil {
		return withCode(exitDB, fmt.Errorf("load reference data: %w", err))
	}

	var processor services.RowProcessor
	switch opts.kind {
	case imports.KindUsers:
		processor = services.NewUserRowProcessor(opts.tenantID, snapshot, svc, conf.Import.DefaultAccessLevel, logger)
	case imports.KindRoles:
		processor = services.NewRoleRowProcessor(opts.tenantID, snapshot, svc, logger)
	case imports.KindDepartments:
		processor = services.NewDepartmentRowProcessor(opts.tenantID, snapshot, svc, logger)
	}

	notifier := services.NewEventNotifier(eventbus.NewEventPublisher(logger), logger)
	coordinator := services.NewCoordinator(processor, conf.Import.RowDelay, notifier, logger)

	started := time.Now()
	report, err := coordinator.Run(ctx, f)
	if err != nil {
		return withCode(exitValidation, err)
	}

	reportPath := ""
	if !report.Clean() {
		reportPath, err = writeReport(opts, conf, report)
		if err != nil {
			return err
		}
	}

	return writeJSONLine(importSummary{
		Kind:         string(opts.kind),
		Total:        report.TotalCount,
		Success:      report.SuccessCount,
		Errors:       len(report.Errors),
		Warnings:     len(report.Warnings),
		ReportPath:   reportPath,
		DurationMS:   time.Since(started).Milliseconds(),
		DelayPerRow:  conf.Import.RowDelay.String(),
		SnapshotRows: len(snapshot.Profiles),
	})
}

func writeReport(opts importOptions, conf *configuration.Configuration, report imports.BatchReport) (string, error) {
	dir := opts.reportDir
	if dir == "" {
		dir = conf.Import.ReportDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", withCode(exitValidation, fmt.Errorf("create report dir: %w", err))
	}

	if opts.xlsx {
		path := filepath.Join(dir, reporting.FileName(opts.kind, time.Now(), "xlsx"))
		if err := reporting.WriteXLSX(path, report); err != nil {
			return "", withCode(exitValidation, fmt.Errorf("write report: %w", err))
		}
		return path, nil
	}

	path := filepath.Join(dir, reporting.FileName(opts.kind, time.Now(), "csv"))
	out, err := os.Create(path)
	if err != nil {
		return "", withCode(exitValidation, fmt.Errorf("write report: %w", err))
	}
	defer out.Close()
	if err := reporting.WriteCSV(out, report); err != nil {
		return "", withCode(exitValidation, fmt.Errorf("write report: %w", err))
	}
	return path, nil
}
