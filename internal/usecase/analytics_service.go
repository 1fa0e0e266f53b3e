package usecase

import (
	"context"
	"fmt"

	"github.com/cricsight-io/cricsight/internal/domain/catalogue"
	"github.com/cricsight-io/cricsight/internal/domain/record"
)

const (
	defaultDatasetLimit = 100
	maxDatasetLimit     = 1000
)

// QueryStore runs read queries against the materialized dataset.
type QueryStore interface {
	Execute(ctx context.Context, query string) (record.ResultTable, error)
}

// DatasetSummary holds the dashboard headline counts.
type DatasetSummary struct {
	Players int64 `json:"players"`
	Matches int64 `json:"matches"`
	Venues  int64 `json:"venues"`
	Teams   int64 `json:"teams"`
}

type AnalyticsService struct {
	catalogue *catalogue.Catalogue
	store     QueryStore
}

func NewAnalyticsService(cat *catalogue.Catalogue, store QueryStore) *AnalyticsService {
	return &AnalyticsService{catalogue: cat, store: store}
}

// ListQueries returns the catalogue query names in their fixed order.
func (s *AnalyticsService) ListQueries(ctx context.Context) []string {
	_, span := startUsecaseSpan(ctx, "AnalyticsService.ListQueries")
	defer span.End()

	return s.catalogue.Names()
}

func (s *AnalyticsService) RunQuery(ctx context.Context, name string) (record.ResultTable, error) {
	ctx, span := startUsecaseSpan(ctx, "AnalyticsService.RunQuery")
	defer span.End()

	query, err := s.catalogue.Get(name)
	if err != nil {
		return record.ResultTable{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	result, err := s.store.Execute(ctx, query.SQL)
	if err != nil {
		return record.ResultTable{}, fmt.Errorf("run query %q: %w", name, err)
	}

	return result, nil
}

// DatasetTable returns up to limit raw dataset rows for the explorer view.
func (s *AnalyticsService) DatasetTable(ctx context.Context, limit int) (record.ResultTable, error) {
	ctx, span := startUsecaseSpan(ctx, "AnalyticsService.DatasetTable")
	defer span.End()

	if limit <= 0 {
		limit = defaultDatasetLimit
	}
	if limit > maxDatasetLimit {
		return record.ResultTable{}, fmt.Errorf("%w: limit must be at most %d", ErrInvalidInput, maxDatasetLimit)
	}

	result, err := s.store.Execute(ctx, fmt.Sprintf("SELECT * FROM cricket_data LIMIT %d", limit))
	if err != nil {
		return record.ResultTable{}, fmt.Errorf("read dataset table: %w", err)
	}

	return result, nil
}

func (s *AnalyticsService) DatasetSummary(ctx context.Context) (DatasetSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "AnalyticsService.DatasetSummary")
	defer span.End()

	counts, err := s.store.Execute(ctx, `SELECT COUNT(DISTINCT player_id) AS players,
       COUNT(DISTINCT match_id) AS matches,
       COUNT(DISTINCT venue_name) AS venues
FROM cricket_data`)
	if err != nil {
		return DatasetSummary{}, fmt.Errorf("summarize dataset: %w", err)
	}
	if counts.RowCount() != 1 || len(counts.Rows[0]) != 3 {
		return DatasetSummary{}, fmt.Errorf("summarize dataset: unexpected result shape")
	}

	teams, err := s.store.Execute(ctx, `SELECT COUNT(*) AS teams
FROM (SELECT team1 AS team FROM cricket_data UNION SELECT team2 FROM cricket_data)`)
	if err != nil {
		return DatasetSummary{}, fmt.Errorf("count teams: %w", err)
	}
	if teams.RowCount() != 1 || len(teams.Rows[0]) != 1 {
		return DatasetSummary{}, fmt.Errorf("count teams: unexpected result shape")
	}

	summary := DatasetSummary{
		Players: asInt64(counts.Rows[0][0]),
		Matches: asInt64(counts.Rows[0][1]),
		Venues:  asInt64(counts.Rows[0][2]),
		Teams:   asInt64(teams.Rows[0][0]),
	}
	return summary, nil
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}
