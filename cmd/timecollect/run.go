package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukaji3/timecollect-go/internal/config"
	"github.com/ukaji3/timecollect-go/internal/logging"
	"github.com/ukaji3/timecollect-go/pkg/timecollect"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/output"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/schedule"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/source"
)

type runFlags struct {
	configPath  string
	outputPath  string
	format      string
	workbookDir string
	sheets      []string
	sheetsDir   string
	pretty      bool
}

func newRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Collect timesheets and write the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (default: timecollect.yaml or configs/timecollect.yaml)")
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (overrides config)")
	cmd.Flags().StringVar(&flags.format, "format", "", "Output format: xlsx or json (overrides config)")
	cmd.Flags().StringVar(&flags.workbookDir, "workbook-dir", "", "Read <dir>/<spreadsheet id>.xlsx files instead of the Sheets API")
	cmd.Flags().StringSliceVar(&flags.sheets, "sheets", nil, "Reporting sheets to process, e.g. 202509,202510 (overrides config)")
	cmd.Flags().StringVar(&flags.sheetsDir, "sheets-dir", "", "Directory for per-sheet JSON files")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func run(cmd *cobra.Command, flags runFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logs, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logs.Close()
	logger := logs.WithRun()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader, err := newReader(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to create reader", slog.Any("error", err))
		return err
	}

	opts, err := pipelineOptions(cfg)
	if err != nil {
		return err
	}

	logger.Info("collection started",
		slog.Any("sheets", opts.SheetNames),
		slog.Time("schedule_start", opts.ScheduleStart),
		slog.Int("workers", opts.Workers))

	report, err := timecollect.New(reader, opts, logger).Run(ctx)
	if err != nil {
		logger.Error("collection failed", slog.Any("error", err))
		return fmt.Errorf("collection failed: %w", err)
	}

	if err := writeReport(cmd, cfg.Output, report, flags); err != nil {
		logger.Error("failed to write report", slog.Any("error", err))
		return err
	}
	logger.Info("report written",
		slog.String("file", cfg.Output.File),
		slog.String("format", cfg.Output.Format),
		slog.Int("entries", report.EntryCount()))
	return nil
}

// applyFlags overrides cfg with the flags that were set.
func applyFlags(cfg *config.Config, flags runFlags) {
	if flags.outputPath != "" {
		cfg.Output.File = flags.outputPath
	}
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.workbookDir != "" {
		cfg.Timesheet.WorkbookDir = flags.workbookDir
	}
	if len(flags.sheets) > 0 {
		cfg.Timesheet.Sheets = flags.sheets
	}
}

func newReader(ctx context.Context, cfg *config.Config, logger *slog.Logger) (source.ValueReader, error) {
	if cfg.Timesheet.WorkbookDir != "" {
		return source.NewWorkbookReader(cfg.Timesheet.WorkbookDir, logger), nil
	}
	return source.NewSheetsReader(ctx, source.SheetsOptions{
		CredentialsFile:   cfg.Google.CredentialsFile,
		RequestsPerSecond: cfg.Google.RequestsPerSecond,
		Burst:             cfg.Google.Burst,
	}, logger)
}

func pipelineOptions(cfg *config.Config) (timecollect.Options, error) {
	start, err := schedule.Date(cfg.Schedule.StartYear, cfg.Schedule.StartMonth, cfg.Schedule.StartDay)
	if err != nil {
		return timecollect.Options{}, fmt.Errorf("invalid schedule start: %w", err)
	}

	opts := timecollect.DefaultOptions()
	opts.ProjectSpreadsheetID = cfg.Google.ProjectSpreadsheetID
	opts.ProjectRange = cfg.Google.ProjectRange
	opts.EmployeesSpreadsheetID = cfg.Google.EmployeesSpreadsheetID
	opts.SheetNames = cfg.Timesheet.Sheets
	opts.TimesheetRange = cfg.Timesheet.DataRange
	opts.DirectoryRange = cfg.Timesheet.DirectoryRange
	opts.ScheduleStart = start
	opts.Workers = cfg.Timesheet.Workers
	if len(cfg.Timesheet.DropColumns) > 0 {
		opts.Layout.DropColumns = cfg.Timesheet.DropColumns
	}
	return opts, nil
}

func writeReport(cmd *cobra.Command, cfg config.OutputConfig, report *models.Report, flags runFlags) error {
	switch cfg.Format {
	case "json":
		jsonData, err := output.ToJSON(report, flags.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if cfg.File == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		} else {
			if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(cfg.File, jsonData, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	default:
		if err := output.WriteWorkbook(cfg.File, report); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	if flags.sheetsDir != "" {
		if err := writeSheetFiles(report, flags.sheetsDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}
	return nil
}

func writeSheetFiles(report *models.Report, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range report.Sheets {
		sheet := &report.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}
	return nil
}
