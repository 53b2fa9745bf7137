package timecollect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/timecollect-go/pkg/timecollect/models"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/schedule"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/source"
	"github.com/ukaji3/timecollect-go/pkg/timecollect/transform"
)

// Pipeline collects every employee's timesheet for the configured sheets.
type Pipeline struct {
	reader source.ValueReader
	opts   Options
	logger *slog.Logger
}

// New creates a Pipeline reading through reader.
func New(reader source.ValueReader, opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		reader: reader,
		opts:   opts,
		logger: logger.With(slog.String("component", "pipeline")),
	}
}

// Run builds the report. Failing to read the project list or to build the
// schedule aborts the run; a failing roster or timesheet only skips that
// sheet or employee. Sheets without entries are left out of the report.
func (p *Pipeline) Run(ctx context.Context) (*models.Report, error) {
	if len(p.opts.SheetNames) == 0 {
		return nil, ErrNoSheets
	}
	started := time.Now()

	tr, err := p.transformer(ctx)
	if err != nil {
		return nil, err
	}

	report := &models.Report{}
	var total transform.Stats
	for _, sheet := range p.opts.SheetNames {
		entries, stats, err := p.collectSheet(ctx, tr, sheet)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			p.logger.ErrorContext(ctx, "skipping sheet", slog.String("sheet", sheet), slog.Any("error", err))
			continue
		}
		total.Add(stats)
		if len(entries) == 0 {
			p.logger.WarnContext(ctx, "sheet has no entries", slog.String("sheet", sheet))
			continue
		}
		report.Sheets = append(report.Sheets, models.SheetReport{Name: sheet, Entries: entries})
	}

	p.logger.InfoContext(ctx, "collection finished",
		slog.Int("sheets", len(report.Sheets)),
		slog.Int("entries", report.EntryCount()),
		slog.Int("invalid_dates", total.InvalidDates),
		slog.Int("unclassified", total.Unclassified),
		slog.Int("unparseable_hours", total.UnparseableHours),
		slog.Int("out_of_layout", total.OutOfLayout),
		slog.Duration("elapsed", time.Since(started)))
	return report, nil
}

// transformer fetches the project list and builds the week schedule.
func (p *Pipeline) transformer(ctx context.Context) (*transform.Transformer, error) {
	rows, err := p.reader.Values(ctx, p.opts.ProjectSpreadsheetID, p.opts.ProjectRange)
	if err != nil {
		return nil, NewStageError("", "", StageProjects, err)
	}
	clients := transform.NewClientIndex(rows)
	p.logger.InfoContext(ctx, "projects loaded", slog.Int("projects", clients.Len()))

	periods, err := schedule.Generate(p.opts.ScheduleStart)
	if err != nil {
		return nil, NewStageError("", "", StageSchedule, err)
	}
	p.logger.DebugContext(ctx, "schedule generated",
		slog.Int("periods", len(periods)),
		slog.Time("first", periods[0].Start),
		slog.Time("last", periods[len(periods)-1].End))

	return transform.New(periods, clients, p.opts.Layout), nil
}

// collectSheet processes the roster of one sheet. Entries keep roster order
// regardless of which worker finished first.
func (p *Pipeline) collectSheet(ctx context.Context, tr *transform.Transformer, sheet string) ([]models.TimesheetEntry, transform.Stats, error) {
	rows, err := p.reader.Values(ctx, p.opts.EmployeesSpreadsheetID, p.opts.directoryRange(sheet))
	if err != nil {
		return nil, transform.Stats{}, NewStageError(sheet, "", StageRoster, err)
	}
	employees := ParseEmployees(rows, p.logger.With(slog.String("sheet", sheet)))
	p.logger.InfoContext(ctx, "roster loaded", slog.String("sheet", sheet), slog.Int("employees", len(employees)))

	results := make([][]models.TimesheetEntry, len(employees))
	stats := make([]transform.Stats, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.workers())
	for i, employee := range employees {
		i, employee := i, employee
		g.Go(func() error {
			entries, st, err := p.collectEmployee(gctx, tr, sheet, employee)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				p.logger.ErrorContext(gctx, "skipping employee", slog.Any("error", err))
				return nil
			}
			results[i] = entries
			stats[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, transform.Stats{}, err
	}

	var (
		entries []models.TimesheetEntry
		total   transform.Stats
	)
	for i := range results {
		entries = append(entries, results[i]...)
		total.Add(stats[i])
	}
	return entries, total, nil
}

// collectEmployee reads and transforms one employee's timesheet.
func (p *Pipeline) collectEmployee(ctx context.Context, tr *transform.Transformer, sheet string, employee models.Employee) ([]models.TimesheetEntry, transform.Stats, error) {
	label := fmt.Sprintf("%d %s", employee.ID, employee.Nickname)
	if employee.SpreadsheetID == "" || employee.SpreadsheetID == source.BlankCell {
		return nil, transform.Stats{}, NewStageError(sheet, label, StageTimesheet, errors.New("no spreadsheet id"))
	}

	raw, err := p.reader.Values(ctx, employee.SpreadsheetID, p.opts.timesheetRange(sheet))
	if err != nil {
		return nil, transform.Stats{}, NewStageError(sheet, label, StageTimesheet, err)
	}

	entries, stats := tr.TransformStats(raw, employee)
	p.logger.DebugContext(ctx, "timesheet transformed",
		slog.String("sheet", sheet),
		slog.Int("employee_id", employee.ID),
		slog.String("employee", employee.Nickname),
		slog.Int("data_rows", stats.DataRows),
		slog.Int("entries", stats.Entries),
		slog.Int("invalid_dates", stats.InvalidDates),
		slog.Int("unclassified", stats.Unclassified))
	return entries, stats, nil
}
