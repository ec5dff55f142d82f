// Package http exposes the report catalog and export endpoints.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pressroom-erp/pressroom/internal/observability"
	"github.com/pressroom-erp/pressroom/internal/reports"
	"github.com/pressroom-erp/pressroom/internal/reports/export"
	"github.com/pressroom-erp/pressroom/internal/shared"
)

// Service runs report exports end to end: snapshot, transform, encode.
// Concurrent requests for the same kind, format and filter selection share
// one generation instead of repeating the work.
type Service struct {
	logger  *slog.Logger
	agg     *reports.Aggregator
	org     export.Organization
	metrics *observability.Metrics
}

func NewService(logger *slog.Logger, agg *reports.Aggregator, org export.Organization, metrics *observability.Metrics) *Service {
	return &Service{logger: logger, agg: agg, org: org, metrics: metrics}
}

// Result is a finished export plus the notices collected while building it.
type Result struct {
	File    *export.File
	Notices []shared.Notice
}

// Export generates one report download. The file is fully encoded in memory
// before anything reaches the caller, so a failure never produces a partial
// download.
func (s *Service) Export(ctx context.Context, kindID string, format reports.Format, opts reports.Options) (*Result, error) {
	kind, err := reports.Lookup(kindID)
	if err != nil {
		return nil, err
	}
	if !format.Valid() || !kind.Supports(format) {
		return nil, fmt.Errorf("%w: %q", reports.ErrUnknownFormat, format)
	}

	key := exportKey(kindID, format, opts)
	v, err, sharedRun := exportGroup(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.generate(ctx, kind, format, opts)
	})
	if err != nil {
		return nil, err
	}
	if sharedRun {
		s.logger.Debug("export shared with concurrent request", slog.String("key", key))
	}
	return v.(*Result), nil
}

func (s *Service) generate(ctx context.Context, kind reports.Descriptor, format reports.Format, opts reports.Options) (*Result, error) {
	runID := uuid.NewString()
	started := time.Now()
	log := s.logger.With(slog.String("run_id", runID), slog.String("report", kind.ID), slog.String("format", string(format)))

	bag, err := s.agg.Load(ctx)
	if err != nil {
		s.observe(kind.ID, format, "error", started)
		log.Error("report data load failed", slog.Any("error", err))
		return nil, err
	}

	rep := kind.Build(bag, opts)

	var file *export.File
	switch format {
	case reports.FormatCSV:
		file, err = export.CSV(rep)
	case reports.FormatExcel:
		file, err = export.Excel(s.org, rep)
	case reports.FormatPDF:
		file, err = export.PDF(log, s.org, rep)
	default:
		err = fmt.Errorf("%w: %q", reports.ErrUnknownFormat, format)
	}
	if err != nil {
		s.observe(kind.ID, format, "error", started)
		log.Error("report encode failed", slog.Any("error", err))
		return nil, fmt.Errorf("encode %s as %s: %w", kind.ID, format, err)
	}

	s.observe(kind.ID, format, "ok", started)
	log.Info("report generated",
		slog.String("file", file.Name),
		slog.Int("bytes", len(file.Data)),
		slog.Int("documents", len(rep.Documents)),
		slog.Duration("elapsed", time.Since(started)))
	return &Result{File: file, Notices: rep.Notices}, nil
}

func (s *Service) observe(kind string, format reports.Format, result string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveReport(kind, string(format), result, time.Since(started))
}

// exportKey canonicalizes a request so equivalent filter selections collapse
// onto one in-flight generation.
func exportKey(kindID string, format reports.Format, opts reports.Options) string {
	parts := []string{kindID, string(format)}
	if !opts.Start.IsZero() {
		parts = append(parts, "from="+opts.Start.Format("2006-01-02"))
	}
	if !opts.End.IsZero() {
		parts = append(parts, "to="+opts.End.Format("2006-01-02"))
	}
	names := make([]string, 0, len(opts.Filters))
	for name := range opts.Filters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v, ok := opts.Filter(name); ok {
			parts = append(parts, name+"="+v)
		}
	}
	return strings.Join(parts, "|")
}
