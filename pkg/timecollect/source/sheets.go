package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsOptions configures a SheetsReader.
type SheetsOptions struct {
	// CredentialsFile is a service account (or authorized user) JSON key.
	CredentialsFile string
	// RequestsPerSecond paces calls to the Sheets API; zero disables pacing.
	RequestsPerSecond float64
	// Burst is the number of calls allowed at once.
	Burst int
}

// SheetsReader reads ranges through the Google Sheets v4 API.
type SheetsReader struct {
	service *sheets.Service
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewSheetsReader creates a read-only Sheets client from opts.
func NewSheetsReader(ctx context.Context, opts SheetsOptions, logger *slog.Logger) (*SheetsReader, error) {
	credentialsJSON, err := os.ReadFile(opts.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return NewSheetsReaderFromService(service, opts, logger), nil
}

// NewSheetsReaderFromService wraps an existing service, e.g. one pointed at a
// test endpoint with option.WithEndpoint.
func NewSheetsReaderFromService(service *sheets.Service, opts SheetsOptions, logger *slog.Logger) *SheetsReader {
	if logger == nil {
		logger = slog.Default()
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	return &SheetsReader{
		service: service,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger.With(slog.String("component", "sheets_reader")),
	}
}

// Values implements ValueReader.
func (r *SheetsReader) Values(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := r.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get %s of %s: %w", readRange, spreadsheetID, err)
	}

	values := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				cells[j] = fmt.Sprint(v)
			}
		}
		values[i] = cells
	}

	r.logger.DebugContext(ctx, "sheets range read",
		slog.String("spreadsheet_id", spreadsheetID),
		slog.String("range", readRange),
		slog.Int("rows", len(values)))
	return Normalize(values), nil
}
